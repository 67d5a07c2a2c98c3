// Copyright (c) 2026 Daleel Balady. All rights reserved.

package schema

// CoreDesignTable represents the 'core.design' table
type CoreDesignTable struct {
	Table       string
	ID          string
	Name        string
	Description string
	Slug        string
	CategoryID  string
	CreatedAt   string
	UpdatedAt   string
}

// CoreDesign is the schema definition for core.design
var CoreDesign = CoreDesignTable{
	Table:       "core.design",
	ID:          "id",
	Name:        "name",
	Description: "description",
	Slug:        "slug",
	CategoryID:  "categoryid",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t CoreDesignTable) Columns() []string {
	return []string{t.ID, t.Name, t.Description, t.Slug, t.CategoryID, t.CreatedAt, t.UpdatedAt}
}
