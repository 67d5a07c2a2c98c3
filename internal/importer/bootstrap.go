// Copyright (c) 2026 Daleel Balady. All rights reserved.

package importer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/daleelbalady/daleel/internal/core/taxonomy"
	"github.com/daleelbalady/daleel/pkg/slug"
	"github.com/daleelbalady/daleel/pkg/uuidv7"
)

// bootstrapTaxonomy prepares the category tree before any entry runs.
//
// Category and Design reference each other, so new categories go through
// two phases: created pointing at the default design, then repointed at
// their own freshly created design. Rerunning against an already seeded
// store creates nothing.
func (imp *Importer) bootstrapTaxonomy(ctx context.Context, categories []CategoryInput) error {
	if len(categories) > 0 {
		return imp.bootstrapFromDataset(ctx, categories)
	}
	return imp.bootstrapDefaults(ctx)
}

func (imp *Importer) bootstrapFromDataset(ctx context.Context, categories []CategoryInput) error {
	imp.logger.Info("bootstrapping_taxonomy", slog.Int("categories", len(categories)))

	defaultDesign, err := imp.ensureDefaultDesign(ctx)
	if err != nil {
		return err
	}

	for _, input := range categories {
		category, created, err := FirstOrCreate(ctx,
			[]Clause[taxonomy.Category]{
				Lookup(func(ctx context.Context) (*taxonomy.Category, error) {
					return imp.stores.Taxonomy.GetCategoryByIDOrName(ctx, input.ID, input.Name)
				}),
			},
			func(ctx context.Context) (*taxonomy.Category, error) {
				category := &taxonomy.Category{
					ID:          input.ID,
					Name:        input.Name,
					Slug:        strings.ToLower(input.ID),
					Description: input.Name,
					DesignID:    defaultDesign.ID,
				}
				if err := imp.stores.Taxonomy.CreateCategory(ctx, category); err != nil {
					return nil, err
				}
				return category, nil
			},
		)
		if err != nil {
			return fmt.Errorf("bootstrap category %q: %w", input.Name, err)
		}

		if created {
			// Phase two: give the category its own design and repoint it.
			design := &taxonomy.Design{
				ID:          uuidv7.Must(),
				Name:        input.Name,
				Description: "Design for " + input.Name,
				Slug:        strings.ToLower(input.ID),
				CategoryID:  category.ID,
			}
			if err := imp.stores.Taxonomy.CreateDesign(ctx, design); err != nil {
				return fmt.Errorf("bootstrap design for %q: %w", input.Name, err)
			}
			if err := imp.stores.Taxonomy.SetCategoryDesign(ctx, category.ID, design.ID); err != nil {
				return fmt.Errorf("link category %q to design: %w", input.Name, err)
			}
			imp.logger.Info("category_created", slog.String("name", input.Name))
		} else {
			imp.logger.Info("category_exists", slog.String("name", input.Name))
		}

		for _, subInput := range input.SubCategories {
			if err := imp.ensureSubCategory(ctx, category, subInput); err != nil {
				return err
			}
		}
	}
	return nil
}

func (imp *Importer) ensureSubCategory(ctx context.Context, category *taxonomy.Category, input SubCategoryInput) error {
	// Slug candidates: the id-derived slug is what new rows get; the
	// name-derived one catches rows created by earlier dataset versions.
	idSlug := slug.Localized(input.ID)
	nameSlug := slug.Localized(input.Name)

	_, created, err := FirstOrCreate(ctx,
		[]Clause[taxonomy.SubCategory]{
			Lookup(func(ctx context.Context) (*taxonomy.SubCategory, error) {
				return imp.stores.Taxonomy.GetSubCategory(ctx, input.ID, input.Name, category.ID, []string{idSlug, nameSlug})
			}),
		},
		func(ctx context.Context) (*taxonomy.SubCategory, error) {
			subCategory := &taxonomy.SubCategory{
				ID:         input.ID,
				Name:       input.Name,
				Slug:       idSlug,
				CategoryID: category.ID,
			}
			if err := imp.stores.Taxonomy.CreateSubCategory(ctx, subCategory); err != nil {
				return nil, err
			}
			return subCategory, nil
		},
	)
	if err != nil {
		return fmt.Errorf("bootstrap subcategory %q: %w", input.Name, err)
	}

	if created {
		imp.logger.Info("subcategory_created", slog.String("name", input.Name))
	} else {
		imp.logger.Info("subcategory_exists", slog.String("name", input.Name))
	}
	return nil
}

// bootstrapDefaults seeds the minimal taxonomy when the dataset carries no
// categories: one Default category with a General subcategory, tied to the
// default design.
func (imp *Importer) bootstrapDefaults(ctx context.Context) error {
	imp.logger.Warn("no_categories_in_dataset_using_defaults")

	design, err := imp.ensureDefaultDesign(ctx)
	if err != nil {
		return err
	}

	_, created, err := FirstOrCreate(ctx,
		[]Clause[taxonomy.Category]{
			Lookup(func(ctx context.Context) (*taxonomy.Category, error) {
				return imp.stores.Taxonomy.GetCategoryByName(ctx, "Default")
			}),
		},
		func(ctx context.Context) (*taxonomy.Category, error) {
			category := &taxonomy.Category{
				ID:          uuidv7.Must(),
				Name:        "Default",
				Slug:        "default",
				Description: "Default category",
				DesignID:    design.ID,
			}
			if err := imp.stores.Taxonomy.CreateCategory(ctx, category); err != nil {
				return nil, err
			}

			general := &taxonomy.SubCategory{
				ID:         uuidv7.Must(),
				Name:       "General",
				Slug:       "general",
				CategoryID: category.ID,
			}
			if err := imp.stores.Taxonomy.CreateSubCategory(ctx, general); err != nil {
				return nil, err
			}
			return category, nil
		},
	)
	if err != nil {
		return fmt.Errorf("bootstrap default category: %w", err)
	}

	if created {
		category, err := imp.stores.Taxonomy.GetCategoryByName(ctx, "Default")
		if err != nil {
			return fmt.Errorf("reload default category: %w", err)
		}
		if err := imp.stores.Taxonomy.SetDesignCategory(ctx, design.ID, category.ID); err != nil {
			return fmt.Errorf("link default design: %w", err)
		}
	}
	return nil
}

func (imp *Importer) ensureDefaultDesign(ctx context.Context) (*taxonomy.Design, error) {
	design, _, err := FirstOrCreate(ctx,
		[]Clause[taxonomy.Design]{
			Lookup(func(ctx context.Context) (*taxonomy.Design, error) {
				return imp.stores.Taxonomy.GetDesignBySlug(ctx, "default")
			}),
		},
		func(ctx context.Context) (*taxonomy.Design, error) {
			design := &taxonomy.Design{
				ID:          uuidv7.Must(),
				Name:        "Default",
				Description: "Default design",
				Slug:        "default",
				CategoryID:  taxonomy.DesignPlaceholderCategory,
			}
			if err := imp.stores.Taxonomy.CreateDesign(ctx, design); err != nil {
				return nil, err
			}
			imp.logger.Info("default_design_created")
			return design, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("ensure default design: %w", err)
	}
	return design, nil
}
