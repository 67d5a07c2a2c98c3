// Copyright (c) 2026 Daleel Balady. All rights reserved.

// Package taxonomy defines the category tree the directory is browsed by.
//
// # Architecture
//
// Three records form the taxonomy: Category (top-level browse node),
// SubCategory (child of exactly one category), and Design (the storefront
// theme attached to a category). Category and Design reference each other,
// so bootstrap code creates them in two phases and backfills the link.
package taxonomy

import "time"

// DesignPlaceholderCategory is the categoryid a design carries before its
// owning category exists. Bootstrap backfills the real id afterwards.
const DesignPlaceholderCategory = "temp"

// Category is a top-level browse node (e.g. "Doctors", "Pharmacies").
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	DesignID    string    `json:"design_id"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`

	// SubCategories is populated by queries that load the full tree.
	SubCategories []SubCategory `json:"sub_categories,omitempty"`
}

// SubCategory is a child browse node under one category.
type SubCategory struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	CategoryID string    `json:"category_id"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// Design is the storefront theme attached to a category.
type Design struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Slug        string    `json:"slug"`
	CategoryID  string    `json:"category_id"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
