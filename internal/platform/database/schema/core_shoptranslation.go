// Copyright (c) 2026 Daleel Balady. All rights reserved.

package schema

// CoreShopTranslationTable represents the 'core.shoptranslation' table
type CoreShopTranslationTable struct {
	Table  string
	ID     string
	TextEN string
	TextAR string
}

// CoreShopTranslation is the schema definition for core.shoptranslation
var CoreShopTranslation = CoreShopTranslationTable{
	Table:  "core.shoptranslation",
	ID:     "id",
	TextEN: "texten",
	TextAR: "textar",
}

func (t CoreShopTranslationTable) Columns() []string {
	return []string{t.ID, t.TextEN, t.TextAR}
}
