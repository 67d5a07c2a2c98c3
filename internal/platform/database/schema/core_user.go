// Copyright (c) 2026 Daleel Balady. All rights reserved.

// Package schema holds column-reference definitions for every table the
// application touches. Query builders reference these instead of string
// literals so a schema rename is a one-file change.
package schema

// CoreUserTable represents the 'core.user' table
type CoreUserTable struct {
	Table      string
	ID         string
	Name       string
	Email      string
	Phone      string
	Role       string
	IsVerified string
	VerifiedAt string
	CreatedAt  string
	UpdatedAt  string
}

// CoreUser is the schema definition for core.user
var CoreUser = CoreUserTable{
	Table:      `core."user"`,
	ID:         "id",
	Name:       "name",
	Email:      "email",
	Phone:      "phone",
	Role:       "role",
	IsVerified: "isverified",
	VerifiedAt: "verifiedat",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
}

func (t CoreUserTable) Columns() []string {
	return []string{t.ID, t.Name, t.Email, t.Phone, t.Role, t.IsVerified, t.VerifiedAt, t.CreatedAt, t.UpdatedAt}
}
