// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"imoguru/internal/models"
)

func TestTemplateLifecycle(t *testing.T) {
	db := testDB(t)
	companyID := testCompany(t, db)
	templates := NewTemplateStore(db)

	created, err := templates.Create(&models.ShareTemplate{
		CompanyID:     companyID,
		Name:          "WhatsApp padrão",
		Platform:      models.PlatformWhatsApp,
		MessageFormat: "<p>{{title}} — {{price}}</p>",
		Fields:        []string{"title", "price"},
		IncludeImages: true,
		MaxImages:     4,
		ImageColumns:  2,
		Placement:     models.PlacementAfterText,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(created.Fields) != 2 || created.Fields[0] != "title" {
		t.Errorf("fields round trip broke: %v", created.Fields)
	}

	active, err := templates.List(companyID, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("active templates = %d, want 1", len(active))
	}

	// Platform filter.
	byPlatform, err := templates.List(companyID, models.PlatformEmail)
	if err != nil {
		t.Fatalf("list by platform: %v", err)
	}
	if len(byPlatform) != 0 {
		t.Errorf("email templates = %d, want 0", len(byPlatform))
	}

	created.Name = "WhatsApp novo"
	if err := templates.Update(created); err != nil {
		t.Fatalf("update: %v", err)
	}

	if err := templates.Archive(companyID, created.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}

	// Archived templates disappear from lists but stay readable.
	active, err = templates.List(companyID, "")
	if err != nil {
		t.Fatalf("list after archive: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("active after archive = %d, want 0", len(active))
	}

	archived, err := templates.FindByID(companyID, created.ID)
	if err != nil {
		t.Fatalf("find archived: %v", err)
	}
	if archived == nil || !archived.Archived() {
		t.Errorf("archived template should stay readable: %+v", archived)
	}
	if archived.Name != "WhatsApp novo" {
		t.Errorf("update not persisted: %q", archived.Name)
	}
}
