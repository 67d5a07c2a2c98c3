// Copyright (c) 2026 Daleel Balady. All rights reserved.

package importer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// gazetteer lists the cities the medical dataset mentions, in match
// priority order. Earlier entries win when a text mentions several.
var gazetteer = []string{
	"القاهرة", "الإسكندرية", "الجيزة", "طنطا", "دمنهور",
	"كفر الشيخ", "المنصورة", "الزقازيق", "بورسعيد", "الإسماعيلية",
	"أسيوط", "سوهاج", "قنا", "الأقصر", "أسوان",
	"دمياط", "الفيوم", "بني سويف", "المنيا", "شبين الكوم",
}

// countryFallback is returned when no city can be determined.
const countryFallback = "مصر"

// ExtractCity determines an entry's city: the structured shop or service
// field when present, otherwise a gazetteer scan over the entry's Arabic
// free text, otherwise the country fallback. Pure function.
func ExtractCity(entry *Entry) string {
	if entry.Shop.City != "" {
		return entry.Shop.City
	}
	if entry.Service.City != "" {
		return entry.Service.City
	}

	// Arabic text arrives in mixed normalization forms depending on the
	// source page; NFC both sides so substring matching is reliable.
	haystack := entry.Service.DescriptionAR + " " + entry.Service.EmbeddingText + " " + entry.Shop.AddressAR
	haystack = norm.NFC.String(strings.ToLower(haystack))

	for _, city := range gazetteer {
		if strings.Contains(haystack, norm.NFC.String(city)) {
			return city
		}
	}
	return countryFallback
}
