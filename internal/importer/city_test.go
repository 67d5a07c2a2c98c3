// Copyright (c) 2026 Daleel Balady. All rights reserved.

package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daleelbalady/daleel/internal/importer"
)

/*
TestExtractCity_StructuredFieldsWin verifies the precedence of the structured
city fields: the shop's city beats the service's, and both beat any city
mentioned in free text.
*/
func TestExtractCity_StructuredFieldsWin(t *testing.T) {
	entry := &importer.Entry{}
	entry.Shop.City = "طنطا"
	entry.Service.City = "أسوان"
	entry.Service.DescriptionAR = "عيادة في القاهرة"

	// 1. Shop city wins over everything
	assert.Equal(t, "طنطا", importer.ExtractCity(entry))

	// 2. Without it, the service city is next
	entry.Shop.City = ""
	assert.Equal(t, "أسوان", importer.ExtractCity(entry))
}

/*
TestExtractCity_ScansFreeText verifies the gazetteer scan over the entry's
Arabic description, search text and address, in that combined haystack.
*/
func TestExtractCity_ScansFreeText(t *testing.T) {
	entry := &importer.Entry{}
	entry.Shop.AddressAR = "شارع الجمهورية، المنصورة"

	// 1. A city named only in the address is still found
	assert.Equal(t, "المنصورة", importer.ExtractCity(entry))

	// 2. The search text is scanned too
	entry.Shop.AddressAR = ""
	entry.Service.EmbeddingText = "عيادة أسنان في دمياط"
	assert.Equal(t, "دمياط", importer.ExtractCity(entry))
}

/*
TestExtractCity_PriorityOrder verifies that when the text mentions several
cities, the gazetteer's order decides, not the position in the text.
*/
func TestExtractCity_PriorityOrder(t *testing.T) {
	entry := &importer.Entry{}
	entry.Service.DescriptionAR = "فرع أسوان وفرع القاهرة"

	// القاهرة ranks above أسوان regardless of mention order
	assert.Equal(t, "القاهرة", importer.ExtractCity(entry))
}

/*
TestExtractCity_CountryFallback verifies that an entry with no structured city
and no recognizable mention falls back to the country.
*/
func TestExtractCity_CountryFallback(t *testing.T) {
	entry := &importer.Entry{}
	entry.Service.DescriptionAR = "خدمات طبية متخصصة"

	assert.Equal(t, "مصر", importer.ExtractCity(entry))
}
