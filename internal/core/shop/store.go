// Copyright (c) 2026 Daleel Balady. All rights reserved.

package shop

import (
	"context"

	"github.com/daleelbalady/daleel/pkg/pagination"
)

type Repository interface {
	GetByNameAndOwner(context context.Context, name, ownerID string) (*Shop, error)
	GetBySlug(context context.Context, slug string) (*Shop, error)
	List(context context.Context, params pagination.Params, city string) ([]*Shop, int, error)
	SlugTaken(context context.Context, slug string) (bool, error)
	CreateTranslation(context context.Context, translation *Translation) error
	Create(context context.Context, shop *Shop) error
}
