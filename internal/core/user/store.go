// Copyright (c) 2026 Daleel Balady. All rights reserved.

package user

import "context"

type Repository interface {
	GetByName(context context.Context, name string) (*User, error)
	Create(context context.Context, user *User) error
}
