// Copyright (c) 2026 Daleel Balady. All rights reserved.

package taxonomy

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

// ListCategories returns a page of categories with their subcategory trees loaded.
func (service *Service) ListCategories(context context.Context, params pagination.Params) ([]*Category, int, error) {
	categories, total, err := service.repo.ListCategories(context, params)
	if err != nil {
		return nil, 0, err
	}

	for _, category := range categories {
		subCategories, err := service.repo.ListSubCategories(context, category.ID)
		if err != nil {
			return nil, 0, err
		}
		category.SubCategories = subCategories
	}
	return categories, total, nil
}

func (service *Service) GetCategory(context context.Context, id string) (*Category, error) {
	category, err := service.repo.GetCategoryByID(context, id)
	if err != nil {
		return nil, err
	}

	subCategories, err := service.repo.ListSubCategories(context, category.ID)
	if err != nil {
		return nil, err
	}
	category.SubCategories = subCategories
	return category, nil
}
