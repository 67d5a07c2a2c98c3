// Copyright (c) 2026 Daleel Balady. All rights reserved.

package tag

import "context"

type Repository interface {
	GetByName(context context.Context, name string) (*Tag, error)
	ListByService(context context.Context, serviceID string) ([]Tag, error)
	Create(context context.Context, tag *Tag) error
}
