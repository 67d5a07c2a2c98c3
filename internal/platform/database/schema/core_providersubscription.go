// Copyright (c) 2026 Daleel Balady. All rights reserved.

package schema

// CoreProviderSubscriptionTable represents the 'core.providersubscription' table
type CoreProviderSubscriptionTable struct {
	Table               string
	ID                  string
	ProviderID          string
	PlanType            string
	PricePerYear        string
	CanTakeBookings     string
	CanListProducts     string
	SearchPriority      string
	HasPriorityBadge    string
	HasPromotionalVideo string
	TotalDiscount       string
	IsActive            string
	AutoRenew           string
	CreatedAt           string
}

// CoreProviderSubscription is the schema definition for core.providersubscription
var CoreProviderSubscription = CoreProviderSubscriptionTable{
	Table:               "core.providersubscription",
	ID:                  "id",
	ProviderID:          "providerid",
	PlanType:            "plantype",
	PricePerYear:        "priceperyear",
	CanTakeBookings:     "cantakebookings",
	CanListProducts:     "canlistproducts",
	SearchPriority:      "searchpriority",
	HasPriorityBadge:    "hasprioritybadge",
	HasPromotionalVideo: "haspromotionalvideo",
	TotalDiscount:       "totaldiscount",
	IsActive:            "isactive",
	AutoRenew:           "autorenew",
	CreatedAt:           "createdat",
}

func (t CoreProviderSubscriptionTable) Columns() []string {
	return []string{
		t.ID, t.ProviderID, t.PlanType, t.PricePerYear, t.CanTakeBookings, t.CanListProducts,
		t.SearchPriority, t.HasPriorityBadge, t.HasPromotionalVideo, t.TotalDiscount,
		t.IsActive, t.AutoRenew, t.CreatedAt,
	}
}
