// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ImagePlacement controls where the photo grid goes relative to the
// template text when a share template includes images.
type ImagePlacement string

const (
	PlacementBeforeText   ImagePlacement = "before_text"
	PlacementAfterText    ImagePlacement = "after_text"
	PlacementIntercalated ImagePlacement = "intercalated"
)

// Valid reports whether the placement is one of the known values.
func (p ImagePlacement) Valid() bool {
	switch p {
	case PlacementBeforeText, PlacementAfterText, PlacementIntercalated:
		return true
	}
	return false
}

// ShareTemplate is an operator-authored message template bound to one
// target platform. MessageFormat is HTML containing {{field}} tokens that
// are substituted at share/export time. Templates are archived rather
// than destroyed so past share events keep a valid reference.
type ShareTemplate struct {
	ID            uuid.UUID      `json:"id"`
	CompanyID     uuid.UUID      `json:"company_id"`
	Name          string         `json:"name"`
	Platform      Platform       `json:"platform"`
	MessageFormat string         `json:"message_format"`
	Fields        []string       `json:"fields"`
	IncludeImages bool           `json:"include_images"`
	MaxImages     int            `json:"max_images"`
	ImageColumns  int            `json:"image_columns"`
	Placement     ImagePlacement `json:"image_placement"`
	ArchivedAt    *time.Time     `json:"archived_at,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// Archived reports whether the template has been soft-deleted.
func (t *ShareTemplate) Archived() bool {
	return t.ArchivedAt != nil
}

// FieldsColumn flattens the Fields slice for the comma-separated text
// column it is stored in.
func (t *ShareTemplate) FieldsColumn() string {
	return strings.Join(t.Fields, ",")
}

// SetFieldsColumn parses the comma-separated text column back into the
// Fields slice, dropping empty entries.
func (t *ShareTemplate) SetFieldsColumn(col string) {
	t.Fields = nil
	for _, f := range strings.Split(col, ",") {
		if f = strings.TrimSpace(f); f != "" {
			t.Fields = append(t.Fields, f)
		}
	}
}
