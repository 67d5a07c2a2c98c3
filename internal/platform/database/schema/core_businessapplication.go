// Copyright (c) 2026 Daleel Balady. All rights reserved.

package schema

// CoreBusinessApplicationTable represents the 'core.businessapplication' table
type CoreBusinessApplicationTable struct {
	Table           string
	ID              string
	ApplicantID     string
	BusinessName    string
	BusinessEmail   string
	BusinessPhone   string
	Description     string
	BusinessAddress string
	BusinessCity    string
	BusinessType    string
	Status          string
	ApprovedAt      string
	ReviewedBy      string
	StatusNotes     string
	CreatedAt       string
}

// CoreBusinessApplication is the schema definition for core.businessapplication
var CoreBusinessApplication = CoreBusinessApplicationTable{
	Table:           "core.businessapplication",
	ID:              "id",
	ApplicantID:     "applicantid",
	BusinessName:    "businessname",
	BusinessEmail:   "businessemail",
	BusinessPhone:   "businessphone",
	Description:     "description",
	BusinessAddress: "businessaddress",
	BusinessCity:    "businesscity",
	BusinessType:    "businesstype",
	Status:          "status",
	ApprovedAt:      "approvedat",
	ReviewedBy:      "reviewedby",
	StatusNotes:     "statusnotes",
	CreatedAt:       "createdat",
}

func (t CoreBusinessApplicationTable) Columns() []string {
	return []string{
		t.ID, t.ApplicantID, t.BusinessName, t.BusinessEmail, t.BusinessPhone,
		t.Description, t.BusinessAddress, t.BusinessCity, t.BusinessType,
		t.Status, t.ApprovedAt, t.ReviewedBy, t.StatusNotes, t.CreatedAt,
	}
}
