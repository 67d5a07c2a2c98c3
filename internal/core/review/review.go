// Copyright (c) 2026 Daleel Balady. All rights reserved.

// Package review defines customer feedback attached to services.
package review

import "time"

// Review is one customer's rating and comment on a service. Imported reviews
// are marked verified since they come from the provider's public record.
type Review struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"author_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	ServiceID  string    `json:"service_id"`
	ShopID     string    `json:"shop_id"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}
