// Copyright (c) 2026 Daleel Balady. All rights reserved.

// Package tag defines the free-form labels attached to services.
package tag

import "time"

// Tag is a free-form label shared across services (e.g. "أسنان", "doctors").
// Names are unique; imports reuse an existing tag before creating one.
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"-"`
}
