// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"testing"

	"imoguru/internal/models"
)

func validProperty() models.Property {
	return models.Property{
		Code:    "IMV-0001",
		Title:   "Casa com 3 quartos",
		Purpose: models.PurposeSale,
		Status:  models.StatusAvailable,
	}
}

func TestValidateProperty(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Property)
		ok     bool
	}{
		{"valid", func(*models.Property) {}, true},
		{"missing code", func(p *models.Property) { p.Code = "  " }, false},
		{"missing title", func(p *models.Property) { p.Title = "" }, false},
		{"bad purpose", func(p *models.Property) { p.Purpose = "lease" }, false},
		{"bad status", func(p *models.Property) { p.Status = "gone" }, false},
		{"negative price", func(p *models.Property) { v := -1.0; p.SalePrice = &v }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProperty()
			tt.mutate(&p)
			msg := validateProperty(&p)
			if tt.ok && msg != "" {
				t.Errorf("unexpected error: %q", msg)
			}
			if !tt.ok && msg == "" {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestValidatePropertyTrimsFields(t *testing.T) {
	p := validProperty()
	p.Code = "  IMV-0001  "
	if msg := validateProperty(&p); msg != "" {
		t.Fatalf("unexpected error: %q", msg)
	}
	if p.Code != "IMV-0001" {
		t.Errorf("code not trimmed: %q", p.Code)
	}
}

func TestValidateTemplate(t *testing.T) {
	valid := func() models.ShareTemplate {
		return models.ShareTemplate{
			Name:          "WhatsApp padrão",
			Platform:      models.PlatformWhatsApp,
			MessageFormat: "{{title}} — {{price}}",
		}
	}

	tests := []struct {
		name   string
		mutate func(*models.ShareTemplate)
		ok     bool
	}{
		{"valid", func(*models.ShareTemplate) {}, true},
		{"missing name", func(tm *models.ShareTemplate) { tm.Name = " " }, false},
		{"missing format", func(tm *models.ShareTemplate) { tm.MessageFormat = "" }, false},
		{"bad platform", func(tm *models.ShareTemplate) { tm.Platform = "telegram" }, false},
		{"bad placement", func(tm *models.ShareTemplate) {
			tm.IncludeImages = true
			tm.Placement = "floating"
		}, false},
		{"negative max images", func(tm *models.ShareTemplate) {
			tm.IncludeImages = true
			tm.Placement = models.PlacementAfterText
			tm.MaxImages = -1
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := valid()
			tt.mutate(&tm)
			msg := validateTemplate(&tm)
			if tt.ok && msg != "" {
				t.Errorf("unexpected error: %q", msg)
			}
			if !tt.ok && msg == "" {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestValidateTemplateImageDefaults(t *testing.T) {
	tm := models.ShareTemplate{
		Name:          "Com fotos",
		Platform:      models.PlatformPrint,
		MessageFormat: "{{title}}",
		IncludeImages: true,
	}
	if msg := validateTemplate(&tm); msg != "" {
		t.Fatalf("unexpected error: %q", msg)
	}
	if tm.Placement != models.PlacementAfterText {
		t.Errorf("placement default = %q", tm.Placement)
	}
	if tm.ImageColumns != 2 {
		t.Errorf("columns default = %d", tm.ImageColumns)
	}
}
