// Copyright (c) 2026 Daleel Balady. All rights reserved.

package schema

// CoreServiceTable represents the 'core.service' table
type CoreServiceTable struct {
	Table         string
	ID            string
	EmbeddingText string
	Phone         string
	City          string
	Price         string
	ShopID        string
	OwnerUserID   string
	TranslationID string
	CategoryID    string
	SubCategoryID string
	DesignID      string
	CreatedAt     string
	UpdatedAt     string
}

// CoreService is the schema definition for core.service
var CoreService = CoreServiceTable{
	Table:         "core.service",
	ID:            "id",
	EmbeddingText: "embeddingtext",
	Phone:         "phone",
	City:          "city",
	Price:         "price",
	ShopID:        "shopid",
	OwnerUserID:   "owneruserid",
	TranslationID: "translationid",
	CategoryID:    "categoryid",
	SubCategoryID: "subcategoryid",
	DesignID:      "designid",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

func (t CoreServiceTable) Columns() []string {
	return []string{
		t.ID, t.EmbeddingText, t.Phone, t.City, t.Price, t.ShopID, t.OwnerUserID,
		t.TranslationID, t.CategoryID, t.SubCategoryID, t.DesignID, t.CreatedAt, t.UpdatedAt,
	}
}
