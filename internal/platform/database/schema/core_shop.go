// Copyright (c) 2026 Daleel Balady. All rights reserved.

package schema

// CoreShopTable represents the 'core.shop' table
type CoreShopTable struct {
	Table       string
	ID          string
	Name        string
	Slug        string
	Phone       string
	Email       string
	City        string
	Description string
	AddressID   string
	OwnerID     string
	DesignID    string
	CreatedAt   string
	UpdatedAt   string
}

// CoreShop is the schema definition for core.shop
var CoreShop = CoreShopTable{
	Table:       "core.shop",
	ID:          "id",
	Name:        "name",
	Slug:        "slug",
	Phone:       "phone",
	Email:       "email",
	City:        "city",
	Description: "description",
	AddressID:   "addressid",
	OwnerID:     "ownerid",
	DesignID:    "designid",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t CoreShopTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Slug, t.Phone, t.Email, t.City, t.Description,
		t.AddressID, t.OwnerID, t.DesignID, t.CreatedAt, t.UpdatedAt,
	}
}
