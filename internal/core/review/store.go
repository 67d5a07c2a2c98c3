// Copyright (c) 2026 Daleel Balady. All rights reserved.

package review

import "context"

type Repository interface {
	GetByCommentAndService(context context.Context, comment, serviceID string) (*Review, error)
	ListByService(context context.Context, serviceID string) ([]*Review, error)
	Create(context context.Context, review *Review) error
}
