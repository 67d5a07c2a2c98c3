// Copyright (c) 2026 Daleel Balady. All rights reserved.

// Package service defines the offerings a shop lists in the directory.
//
// A Service carries the searchable embedding text the original extraction
// produced, a bilingual translation row, and links into the taxonomy and
// tag tables.
package service

import "time"

// Translation holds the bilingual name and description text for a service.
type Translation struct {
	ID            string `json:"id"`
	NameEN        string `json:"name_en"`
	NameAR        string `json:"name_ar"`
	DescriptionEN string `json:"description_en"`
	DescriptionAR string `json:"description_ar"`
}

// Service represents one offering listed under a shop.
type Service struct {
	ID            string    `json:"id"`
	EmbeddingText string    `json:"embedding_text"`
	Phone         *string   `json:"phone,omitempty"`
	City          string    `json:"city"`
	Price         *float64  `json:"price,omitempty"`
	ShopID        string    `json:"shop_id"`
	OwnerUserID   string    `json:"owner_user_id"`
	TranslationID string    `json:"-"`
	CategoryID    *string   `json:"category_id,omitempty"`
	SubCategoryID *string   `json:"sub_category_id,omitempty"`
	DesignID      *string   `json:"design_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"-"`

	// Translation is populated by queries that join the translation row.
	Translation *Translation `json:"translation,omitempty"`

	// TagIDs holds the linked tag ids; set before Create to persist the links.
	TagIDs []string `json:"tag_ids,omitempty"`
}
