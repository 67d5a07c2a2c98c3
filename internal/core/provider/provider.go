// Copyright (c) 2026 Daleel Balady. All rights reserved.

// Package provider defines the records that turn a user into an approved
// business: the subscription the provider is on and the application that
// admitted them.
package provider

import "time"

// Subscription plan types.
const (
	PlanBasicFree = "BASIC_FREE"
)

// Application statuses.
const (
	StatusApproved = "APPROVED"
	StatusPending  = "PENDING"
	StatusRejected = "REJECTED"
)

// Subscription is a provider's plan record. One per provider.
type Subscription struct {
	ID                  string    `json:"id"`
	ProviderID          string    `json:"provider_id"`
	PlanType            string    `json:"plan_type"`
	PricePerYear        float64   `json:"price_per_year"`
	CanTakeBookings     bool      `json:"can_take_bookings"`
	CanListProducts     bool      `json:"can_list_products"`
	SearchPriority      int       `json:"search_priority"`
	HasPriorityBadge    bool      `json:"has_priority_badge"`
	HasPromotionalVideo bool      `json:"has_promotional_video"`
	TotalDiscount       float64   `json:"total_discount"`
	IsActive            bool      `json:"is_active"`
	AutoRenew           bool      `json:"auto_renew"`
	CreatedAt           time.Time `json:"-"`
}

// Application is a business registration request. Imports create these
// pre-approved.
type Application struct {
	ID              string     `json:"id"`
	ApplicantID     string     `json:"applicant_id"`
	BusinessName    string     `json:"business_name"`
	BusinessEmail   string     `json:"business_email"`
	BusinessPhone   string     `json:"business_phone"`
	Description     string     `json:"description"`
	BusinessAddress string     `json:"business_address"`
	BusinessCity    string     `json:"business_city"`
	BusinessType    string     `json:"business_type"`
	Status          string     `json:"status"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	ReviewedBy      string     `json:"reviewed_by"`
	StatusNotes     string     `json:"status_notes"`
	CreatedAt       time.Time  `json:"-"`
}
