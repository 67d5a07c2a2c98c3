// Copyright (c) 2026 Daleel Balady. All rights reserved.

package taxonomy

import (
	"context"

	"github.com/daleelbalady/daleel/pkg/pagination"
)

type Repository interface {
	// Categories
	GetCategoryByIDOrName(context context.Context, id, name string) (*Category, error)
	GetCategoryByID(context context.Context, id string) (*Category, error)
	GetCategoryByName(context context.Context, name string) (*Category, error)
	GetFirstCategory(context context.Context) (*Category, error)
	ListCategories(context context.Context, params pagination.Params) ([]*Category, int, error)
	CreateCategory(context context.Context, category *Category) error
	SetCategoryDesign(context context.Context, categoryID, designID string) error

	// SubCategories
	GetSubCategory(context context.Context, id, name, categoryID string, slugs []string) (*SubCategory, error)
	GetSubCategoryByID(context context.Context, id string) (*SubCategory, error)
	ListSubCategories(context context.Context, categoryID string) ([]SubCategory, error)
	CreateSubCategory(context context.Context, subCategory *SubCategory) error

	// Designs
	GetDesignBySlug(context context.Context, slug string) (*Design, error)
	GetFirstDesign(context context.Context) (*Design, error)
	CreateDesign(context context.Context, design *Design) error
	SetDesignCategory(context context.Context, designID, categoryID string) error
}
