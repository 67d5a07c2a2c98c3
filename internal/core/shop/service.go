// Copyright (c) 2026 Daleel Balady. All rights reserved.

package shop

import (
	"context"
	"log/slog"

	"github.com/daleelbalady/daleel/pkg/pagination"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListShops(context context.Context, params pagination.Params, city string) ([]*Shop, int, error) {
	return service.repo.List(context, params, city)
}

func (service *Service) GetShopBySlug(context context.Context, slug string) (*Shop, error) {
	return service.repo.GetBySlug(context, slug)
}
