// Copyright (c) 2026 Daleel Balady. All rights reserved.

package schema

// CoreCategoryTable represents the 'core.category' table
type CoreCategoryTable struct {
	Table       string
	ID          string
	Name        string
	Slug        string
	Description string
	DesignID    string
	CreatedAt   string
	UpdatedAt   string
}

// CoreCategory is the schema definition for core.category
var CoreCategory = CoreCategoryTable{
	Table:       "core.category",
	ID:          "id",
	Name:        "name",
	Slug:        "slug",
	Description: "description",
	DesignID:    "designid",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t CoreCategoryTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug, t.Description, t.DesignID, t.CreatedAt, t.UpdatedAt}
}
