// Copyright (c) 2026 Daleel Balady. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daleelbalady/daleel/pkg/slug"
)

/*
TestFrom verifies ASCII slug generation: lowercasing, accent stripping,
hyphenation, and the empty result for non-Latin input.
*/
func TestFrom(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Cairo Dental Center", "cairo-dental-center"},
		{"accents", "Café Délice", "cafe-delice"},
		{"punctuation", "Dr. Ahmed's  Clinic!", "dr-ahmed-s-clinic"},
		{"surrounding junk", "  --Laser Center--  ", "laser-center"},
		{"digits kept", "Clinic 24/7", "clinic-24-7"},
		{"arabic reduces to empty", "عيادة الأسنان", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, slug.From(tc.input))
		})
	}
}

/*
TestLocalized verifies the lossless variant: non-Latin letters survive, only
casing and whitespace are normalized.
*/
func TestLocalized(t *testing.T) {
	// 1. Arabic input keeps its letters
	assert.Equal(t, "عيادة-الأسنان", slug.Localized("عيادة الأسنان"))

	// 2. Latin input lowercases and hyphenates
	assert.Equal(t, "dental-clinics", slug.Localized("  Dental   Clinics "))

	// 3. Distinct inputs stay distinct
	assert.NotEqual(t, slug.Localized("Dental Clinics"), slug.Localized("عيادات الأسنان"))
}
