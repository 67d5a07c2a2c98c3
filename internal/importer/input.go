// Copyright (c) 2026 Daleel Balady. All rights reserved.

package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/daleelbalady/daleel/internal/platform/constants"
)

// Dataset is the root of the extraction file (data.json).
type Dataset struct {
	Entries    []Entry         `json:"entries"`
	Categories []CategoryInput `json:"categories"`
}

// Entry bundles one provider's user, shop, service and reviews.
type Entry struct {
	User    UserInput     `json:"user"`
	Shop    ShopInput     `json:"shop"`
	Service ServiceInput  `json:"service"`
	Reviews []ReviewInput `json:"reviews"`
}

type UserInput struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

type ShopInput struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	City        string   `json:"city"`
	AddressAR   string   `json:"address_ar"`
	AddressEN   string   `json:"address_en"`
	Tags        []string `json:"tags"`
}

type ServiceInput struct {
	ID            string   `json:"id"`
	NameAR        string   `json:"name_ar"`
	NameEN        string   `json:"name_en"`
	DescriptionAR string   `json:"description_ar"`
	DescriptionEN string   `json:"description_en"`
	Phone         string   `json:"phone"`
	City          string   `json:"city"`
	CategoryID    string   `json:"category_id"`
	SubCategoryID string   `json:"sub_category_id"`
	Tags          []string `json:"tags"`
	Price         *float64 `json:"price"`
	EmbeddingText string   `json:"embeddingText"`
}

type ReviewInput struct {
	Author  string `json:"author"`
	Rating  Rating `json:"rating"`
	Comment string `json:"comment"`
}

type CategoryInput struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	SubCategories []SubCategoryInput `json:"sub_categories"`
}

type SubCategoryInput struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Rating accepts both `"rating": 4` and `"rating": "4"` since the extraction
// emits either depending on the source page.
type Rating struct {
	raw      string
	isString bool
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		r.raw = s
		r.isString = true
		return nil
	}
	r.raw = string(data)
	return nil
}

// Present reports whether a usable rating arrived at all. A numeric zero
// counts as absent; the string "0" is present but coerces to the default.
func (r Rating) Present() bool {
	if r.raw == "" || r.raw == "null" {
		return false
	}
	if !r.isString && leadingInt(r.raw) == 0 {
		return false
	}
	return true
}

// Value coerces the raw rating to a star count. Unparseable or zero values
// fall back to the default, everything else clamps to [1, 5].
func (r Rating) Value() int {
	n := leadingInt(strings.TrimSpace(r.raw))
	if n == 0 {
		return constants.DefaultReviewRating
	}
	if n < 1 {
		return 1
	}
	if n > 5 {
		return 5
	}
	return n
}

// leadingInt parses the leading integer of s, ignoring any trailing text
// ("4.5 stars" reads as 4). Returns 0 when no digits lead the string.
func leadingInt(s string) int {
	i := 0
	sign := 1
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}

	n := 0
	digits := false
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		digits = true
		i++
		if n > 1<<30 {
			break
		}
	}
	if !digits {
		return 0
	}
	return sign * n
}

// LoadDataset reads and decodes the extraction file at path.
func LoadDataset(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}

	dataset := &Dataset{}
	if err := json.Unmarshal(raw, dataset); err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", path, err)
	}
	return dataset, nil
}
