// Copyright (c) 2026 Daleel Balady. All rights reserved.

package service

import (
	"context"

	"github.com/daleelbalady/daleel/pkg/pagination"
)

type Repository interface {
	GetByShopAndEmbedding(context context.Context, shopID, embeddingText string) (*Service, error)
	GetByID(context context.Context, id string) (*Service, error)
	List(context context.Context, params pagination.Params, city, categoryID string) ([]*Service, int, error)
	CreateTranslation(context context.Context, translation *Translation) error
	Create(context context.Context, service *Service) error
}
