// Copyright (c) 2026 Daleel Balady. All rights reserved.

package schema

// CoreServiceTranslationTable represents the 'core.servicetranslation' table
type CoreServiceTranslationTable struct {
	Table         string
	ID            string
	NameEN        string
	NameAR        string
	DescriptionEN string
	DescriptionAR string
}

// CoreServiceTranslation is the schema definition for core.servicetranslation
var CoreServiceTranslation = CoreServiceTranslationTable{
	Table:         "core.servicetranslation",
	ID:            "id",
	NameEN:        "nameen",
	NameAR:        "namear",
	DescriptionEN: "descriptionen",
	DescriptionAR: "descriptionar",
}

func (t CoreServiceTranslationTable) Columns() []string {
	return []string{t.ID, t.NameEN, t.NameAR, t.DescriptionEN, t.DescriptionAR}
}
