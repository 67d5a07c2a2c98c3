// Copyright (c) 2026 Daleel Balady. All rights reserved.

// Package user defines the directory's account records.
//
// Imported providers and anonymous reviewers both live here; the role field
// separates them. Imports mark provider accounts verified at creation time.
package user

import "time"

// Roles a directory account can hold.
const (
	RoleCustomer  = "CUSTOMER"
	RoleProvider  = "PROVIDER"
	RoleShopOwner = "SHOP_OWNER"
)

// User represents a directory account (business owner or reviewer).
type User struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      *string    `json:"email,omitempty"`
	Phone      *string    `json:"phone,omitempty"`
	Role       string     `json:"role"`
	IsVerified bool       `json:"is_verified"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
	CreatedAt  time.Time  `json:"-"`
	UpdatedAt  time.Time  `json:"-"`
}
