// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"testing"
	"time"
)

func TestFieldsColumnRoundTrip(t *testing.T) {
	tmpl := &ShareTemplate{Fields: []string{"title", "price", "bedrooms"}}
	col := tmpl.FieldsColumn()
	if col != "title,price,bedrooms" {
		t.Errorf("column = %q", col)
	}

	var parsed ShareTemplate
	parsed.SetFieldsColumn(col)
	if len(parsed.Fields) != 3 || parsed.Fields[1] != "price" {
		t.Errorf("fields = %v", parsed.Fields)
	}
}

func TestSetFieldsColumnDropsEmpties(t *testing.T) {
	var tmpl ShareTemplate
	tmpl.SetFieldsColumn(" title , ,price,")
	if len(tmpl.Fields) != 2 || tmpl.Fields[0] != "title" || tmpl.Fields[1] != "price" {
		t.Errorf("fields = %v", tmpl.Fields)
	}

	tmpl.SetFieldsColumn("")
	if tmpl.Fields != nil {
		t.Errorf("empty column should clear fields, got %v", tmpl.Fields)
	}
}

func TestImagePlacementValid(t *testing.T) {
	for _, p := range []ImagePlacement{PlacementBeforeText, PlacementAfterText, PlacementIntercalated} {
		if !p.Valid() {
			t.Errorf("%s should be valid", p)
		}
	}
	if ImagePlacement("floating").Valid() {
		t.Error("unknown placement should be invalid")
	}
}

func TestArchived(t *testing.T) {
	tmpl := &ShareTemplate{}
	if tmpl.Archived() {
		t.Error("fresh template is not archived")
	}
	now := time.Now()
	tmpl.ArchivedAt = &now
	if !tmpl.Archived() {
		t.Error("template with ArchivedAt is archived")
	}
}

func TestPlatformValid(t *testing.T) {
	for _, p := range []Platform{PlatformWhatsApp, PlatformEmail, PlatformFacebook, PlatformInstagram, PlatformMessenger, PlatformPrint} {
		if !p.Valid() {
			t.Errorf("%s should be valid", p)
		}
	}
	if Platform("telegram").Valid() {
		t.Error("telegram is not a supported platform")
	}
}
