// Copyright (c) 2026 Daleel Balady. All rights reserved.

package schema

// CoreServiceTagTable represents the 'core.servicetag' junction table
type CoreServiceTagTable struct {
	Table     string
	ServiceID string
	TagID     string
}

// CoreServiceTag is the schema definition for core.servicetag
var CoreServiceTag = CoreServiceTagTable{
	Table:     "core.servicetag",
	ServiceID: "serviceid",
	TagID:     "tagid",
}

func (t CoreServiceTagTable) Columns() []string {
	return []string{t.ServiceID, t.TagID}
}
