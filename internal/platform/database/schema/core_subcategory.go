// Copyright (c) 2026 Daleel Balady. All rights reserved.

package schema

// CoreSubCategoryTable represents the 'core.subcategory' table
type CoreSubCategoryTable struct {
	Table      string
	ID         string
	Name       string
	Slug       string
	CategoryID string
	CreatedAt  string
	UpdatedAt  string
}

// CoreSubCategory is the schema definition for core.subcategory
var CoreSubCategory = CoreSubCategoryTable{
	Table:      "core.subcategory",
	ID:         "id",
	Name:       "name",
	Slug:       "slug",
	CategoryID: "categoryid",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
}

func (t CoreSubCategoryTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug, t.CategoryID, t.CreatedAt, t.UpdatedAt}
}
