// Copyright (c) 2026 Daleel Balady. All rights reserved.

package importer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daleelbalady/daleel/internal/core/taxonomy"
	"github.com/daleelbalady/daleel/internal/platform/memory"
	"github.com/daleelbalady/daleel/pkg/pagination"
)

/*
TestImporter_Bootstrap_ResolvesCategoryDesignCycle verifies the two-phase
creation that untangles the Category/Design mutual reference: a new category
first points at the default design, then gets its own design pointing back.
*/
func TestImporter_Bootstrap_ResolvesCategoryDesignCycle(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	dataset := testDataset(t, `{
		"categories": [
			{
				"id": "MEDICAL",
				"name": "Medical",
				"sub_categories": [
					{"id": "DENTAL", "name": "Dental"},
					{"id": "DERMA", "name": "Dermatology"}
				]
			}
		],
		"entries": []
	}`)

	_, err := testImporter(store).Run(ctx, dataset)
	require.NoError(t, err)

	// 1. The default design exists, still on its placeholder category
	defaultDesign, err := store.Taxonomy().GetDesignBySlug(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, taxonomy.DesignPlaceholderCategory, defaultDesign.CategoryID)

	// 2. The category ends up on its own design, not the default one
	category, err := store.Taxonomy().GetCategoryByID(ctx, "MEDICAL")
	require.NoError(t, err)
	assert.Equal(t, "medical", category.Slug)
	assert.NotEqual(t, defaultDesign.ID, category.DesignID)

	// 3. That design points back at the category, closing the cycle
	ownDesign, err := store.Taxonomy().GetDesignBySlug(ctx, "medical")
	require.NoError(t, err)
	assert.Equal(t, ownDesign.ID, category.DesignID)
	assert.Equal(t, category.ID, ownDesign.CategoryID)

	// 4. Subcategories attach under the category with id-derived slugs
	subCategories, err := store.Taxonomy().ListSubCategories(ctx, category.ID)
	require.NoError(t, err)
	require.Len(t, subCategories, 2)
	assert.Equal(t, "dental", subCategories[0].Slug)
	assert.Equal(t, "derma", subCategories[1].Slug)
}

/*
TestImporter_Bootstrap_RerunCreatesNothing verifies that bootstrapping an
already seeded taxonomy resolves every row instead of duplicating it.
*/
func TestImporter_Bootstrap_RerunCreatesNothing(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	raw := `{
		"categories": [
			{"id": "MEDICAL", "name": "Medical", "sub_categories": [{"id": "DENTAL", "name": "Dental"}]},
			{"id": "BEAUTY", "name": "Beauty", "sub_categories": []}
		],
		"entries": []
	}`

	// 1. Seed, remembering the created design
	_, err := testImporter(store).Run(ctx, testDataset(t, raw))
	require.NoError(t, err)

	firstDesign, err := store.Taxonomy().GetDesignBySlug(ctx, "medical")
	require.NoError(t, err)

	// 2. Rerun over the same dataset
	_, err = testImporter(store).Run(ctx, testDataset(t, raw))
	require.NoError(t, err)

	// 3. Category count is unchanged and the design row is the same one
	_, total, err := store.Taxonomy().ListCategories(ctx, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	secondDesign, err := store.Taxonomy().GetDesignBySlug(ctx, "medical")
	require.NoError(t, err)
	assert.Equal(t, firstDesign.ID, secondDesign.ID)

	subCategories, err := store.Taxonomy().ListSubCategories(ctx, "MEDICAL")
	require.NoError(t, err)
	assert.Len(t, subCategories, 1)
}

/*
TestImporter_Bootstrap_MatchesSubCategoryBySlug verifies that a subcategory
row created by an earlier dataset version, keyed only by its name-derived
slug, is still recognized instead of duplicated.
*/
func TestImporter_Bootstrap_MatchesSubCategoryBySlug(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	// 1. Pre-seed a row the way an older import would have written it:
	//    different id, slug derived from the name
	require.NoError(t, store.Taxonomy().CreateSubCategory(ctx, &taxonomy.SubCategory{
		ID:         "legacy-7",
		Name:       "Dental Care",
		Slug:       "dental-care",
		CategoryID: "MEDICAL",
	}))

	dataset := testDataset(t, `{
		"categories": [
			{"id": "MEDICAL", "name": "Medical", "sub_categories": [{"id": "DENTAL", "name": "Dental Care"}]}
		],
		"entries": []
	}`)

	_, err := testImporter(store).Run(ctx, dataset)
	require.NoError(t, err)

	// 2. The legacy row was matched, no sibling created
	subCategories, err := store.Taxonomy().ListSubCategories(ctx, "MEDICAL")
	require.NoError(t, err)
	require.Len(t, subCategories, 1)
	assert.Equal(t, "legacy-7", subCategories[0].ID)
}
