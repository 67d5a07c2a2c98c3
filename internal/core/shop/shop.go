// Copyright (c) 2026 Daleel Balady. All rights reserved.

// Package shop defines the storefront records providers publish under.
package shop

import "time"

// Translation holds the bilingual address text for a shop.
type Translation struct {
	ID     string `json:"id"`
	TextEN string `json:"text_en"`
	TextAR string `json:"text_ar"`
}

// Shop represents a provider's storefront in the directory.
type Shop struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Phone       *string   `json:"phone,omitempty"`
	Email       *string   `json:"email,omitempty"`
	City        string    `json:"city"`
	Description *string   `json:"description,omitempty"`
	AddressID   string    `json:"-"`
	OwnerID     string    `json:"owner_id"`
	DesignID    *string   `json:"design_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`

	// Address is populated by queries that join the translation row.
	Address *Translation `json:"address,omitempty"`
}
