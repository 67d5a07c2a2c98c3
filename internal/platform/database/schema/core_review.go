// Copyright (c) 2026 Daleel Balady. All rights reserved.

package schema

// CoreReviewTable represents the 'core.review' table
type CoreReviewTable struct {
	Table      string
	ID         string
	AuthorID   string
	Rating     string
	Comment    string
	ServiceID  string
	ShopID     string
	IsVerified string
	CreatedAt  string
}

// CoreReview is the schema definition for core.review
var CoreReview = CoreReviewTable{
	Table:      "core.review",
	ID:         "id",
	AuthorID:   "authorid",
	Rating:     "rating",
	Comment:    "comment",
	ServiceID:  "serviceid",
	ShopID:     "shopid",
	IsVerified: "isverified",
	CreatedAt:  "createdat",
}

func (t CoreReviewTable) Columns() []string {
	return []string{t.ID, t.AuthorID, t.Rating, t.Comment, t.ServiceID, t.ShopID, t.IsVerified, t.CreatedAt}
}
