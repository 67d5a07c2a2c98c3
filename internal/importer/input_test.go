// Copyright (c) 2026 Daleel Balady. All rights reserved.

package importer_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daleelbalady/daleel/internal/importer"
)

/*
TestRating_Coercion verifies the tolerant rating parser across the shapes the
extraction emits: numbers, numeric strings, decorated strings and garbage.
A numeric zero means "no rating", while the string "0" is a rating that
coerces to the default.
*/
func TestRating_Coercion(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		present bool
		value   int
	}{
		{"number", `{"rating": 4}`, true, 4},
		{"numeric string", `{"rating": "4"}`, true, 4},
		{"decorated string", `{"rating": "4.5 stars"}`, true, 4},
		{"number zero is absent", `{"rating": 0}`, false, 0},
		{"string zero coerces to default", `{"rating": "0"}`, true, 5},
		{"null is absent", `{"rating": null}`, false, 0},
		{"missing is absent", `{}`, false, 0},
		{"garbage string defaults", `{"rating": "ممتاز"}`, true, 5},
		{"clamps high", `{"rating": 9}`, true, 5},
		{"clamps negative", `{"rating": "-3"}`, true, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var input importer.ReviewInput
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &input))

			assert.Equal(t, tc.present, input.Rating.Present())
			if tc.present {
				assert.Equal(t, tc.value, input.Rating.Value())
			}
		})
	}
}

/*
TestLoadDataset verifies reading and decoding an extraction file, including
the mixed-type rating field.
*/
func TestLoadDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"categories": [{"id": "MEDICAL", "name": "Medical", "sub_categories": []}],
		"entries": [
			{
				"user": {"name": "دكتور أحمد"},
				"shop": {"name": "Clinic", "tags": ["أسنان"]},
				"service": {"name_ar": "رعاية", "price": 99.5, "embeddingText": "care"},
				"reviews": [{"author": "محمد", "rating": "5", "comment": "ممتاز"}]
			}
		]
	}`), 0o644))

	dataset, err := importer.LoadDataset(path)
	require.NoError(t, err)

	// 1. Structure survives the round trip
	require.Len(t, dataset.Categories, 1)
	require.Len(t, dataset.Entries, 1)

	entry := dataset.Entries[0]
	assert.Equal(t, "دكتور أحمد", entry.User.Name)
	assert.Equal(t, []string{"أسنان"}, entry.Shop.Tags)
	require.NotNil(t, entry.Service.Price)
	assert.Equal(t, 99.5, *entry.Service.Price)

	// 2. The string rating decoded as present
	require.Len(t, entry.Reviews, 1)
	assert.True(t, entry.Reviews[0].Rating.Present())
	assert.Equal(t, 5, entry.Reviews[0].Rating.Value())
}

/*
TestLoadDataset_MissingFile verifies the error for a nonexistent path.
*/
func TestLoadDataset_MissingFile(t *testing.T) {
	_, err := importer.LoadDataset(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
