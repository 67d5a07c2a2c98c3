// Copyright (c) 2026 Daleel Balady. All rights reserved.

// Package slug generates URL slugs from arbitrary Unicode strings.
//
// # Usage
//
// ASCII slugs ([From]) are used as human-readable identifiers for shops
// (e.g., "cairo-dental-center"). Because much of the directory's source data
// is Arabic, [Localized] offers a lossless variant that lowercases and
// hyphenates without stripping non-Latin letters, so taxonomy identifiers
// like subcategory names survive slugification intact.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches any sequence of non-alphanumeric, non-hyphen characters.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
	// whitespaceRun matches any run of whitespace characters.
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Converts to lowercase.
// 4. Replaces non-alphanumeric characters with hyphens.
// 5. Collapses multiple hyphens and trims leading/trailing hyphens.
//
// Strings with no Latin letters or digits (e.g., purely Arabic names)
// reduce to the empty string; callers needing a non-empty identifier
// should fall back to an id-derived slug.
func From(s string) string {
	// 1. Normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	// 2. Lowercase
	result = strings.ToLower(result)

	// 3. Replace whitespace and special chars with hyphens
	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, result)

	// 4. Clean up hyphenation
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}

// Localized converts a string into a lowercase, hyphen-separated identifier
// without dropping non-Latin letters.
//
// Unlike [From], Arabic (or any non-Latin) input keeps its letters, so
// "عيادات الأسنان" and "Dental Clinics" both yield stable, distinct slugs.
// Only whitespace runs become hyphens; everything else is preserved.
func Localized(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = whitespaceRun.ReplaceAllString(result, "-")
	return result
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
