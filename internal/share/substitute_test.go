// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package share

import (
	"strings"
	"testing"
	"time"

	"imoguru/internal/branding"
	"imoguru/internal/models"
)

func f64(v float64) *float64 { return &v }
func str(s string) *string   { return &s }
func i(n int) *int           { return &n }

func testProperty() *models.Property {
	return &models.Property{
		Code:      "IMV-0001",
		Title:     "Casa X",
		Purpose:   models.PurposeSale,
		Status:    models.StatusAvailable,
		SalePrice: f64(100000),
		Bedrooms:  i(3),
		City:      str("São Paulo"),
	}
}

func TestSubstituteDoubleAndSingleBraces(t *testing.T) {
	p := testProperty()
	out := Substitute("{{code}} / {code}", p, Context{}, ModeExport)
	if out != "IMV-0001 / IMV-0001" {
		t.Errorf("got %q", out)
	}
}

func TestSubstituteAsymmetricBraces(t *testing.T) {
	// "{{key}" is not a token: the inner "{key}" substitutes and the
	// stranded outer brace stays as literal text.
	p := testProperty()
	out := Substitute("{{code}", p, Context{}, ModeExport)
	if out != "{IMV-0001" {
		t.Errorf("got %q", out)
	}
}

func TestSubstituteEndToEnd(t *testing.T) {
	p := testProperty()
	p.OwnerName = nil // unresolved token

	format := "Olá {{owner_name}}, o imóvel {{title}} custa {{price}}"
	out := Substitute(format, p, Context{}, ModeExport)
	want := "Olá , o imóvel Casa X custa R$ 100.000,00"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestSubstituteNoTokenSurvives(t *testing.T) {
	p := testProperty()
	format := "{{title}} {{nonexistent}} {also_missing} {{bedrooms}}"

	for _, mode := range []Mode{ModeExport, ModePreview} {
		out := Substitute(format, p, Context{}, mode)
		if strings.ContainsAny(out, "{}") {
			t.Errorf("mode %d: tokens survived in %q", mode, out)
		}
	}
}

func TestSubstitutePreviewMarker(t *testing.T) {
	p := testProperty()
	out := Substitute("{{owner_name}}", p, Context{}, ModePreview)
	if out != "[not available]" {
		t.Errorf("got %q", out)
	}

	out = Substitute("{{owner_name}}", p, Context{}, ModeExport)
	if out != "" {
		t.Errorf("export mode got %q, want empty", out)
	}
}

func TestSubstituteEmptyValueTreatedAsMissing(t *testing.T) {
	p := testProperty()
	p.OwnerName = str("")
	out := Substitute("{{owner_name}}", p, Context{}, ModePreview)
	if out != "[not available]" {
		t.Errorf("got %q", out)
	}
}

func TestReplacementsPriceFollowsPurpose(t *testing.T) {
	tests := []struct {
		name    string
		purpose models.Purpose
		sale    *float64
		rental  *float64
		want    string
	}{
		{"sale listing", models.PurposeSale, f64(450000), nil, "R$ 450.000,00"},
		{"rent listing", models.PurposeRent, nil, f64(2500), "R$ 2.500,00/mês"},
		{"sale_rent prefers sale", models.PurposeSaleRent, f64(450000), f64(2500), "R$ 450.000,00"},
		{"sale_rent rental only", models.PurposeSaleRent, nil, f64(2500), "R$ 2.500,00/mês"},
		{"no prices", models.PurposeSale, nil, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProperty()
			p.Purpose = tt.purpose
			p.SalePrice = tt.sale
			p.RentalPrice = tt.rental
			repl := Replacements(p, Context{})
			if repl["price"] != tt.want {
				t.Errorf("price = %q, want %q", repl["price"], tt.want)
			}
		})
	}
}

func TestReplacementsSystemTokens(t *testing.T) {
	p := testProperty()
	ctx := Context{
		Branding:    branding.Branding{AppName: "ImoGuru", AgencyName: "Imobiliária Demo", LogoURL: "https://cdn/logo.png"},
		PropertyURL: "https://demo/imoveis/IMV-0001",
		Now:         time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
	}
	repl := Replacements(p, ctx)

	checks := map[string]string{
		"app_name":     "ImoGuru",
		"agency_name":  "Imobiliária Demo",
		"company_logo": "https://cdn/logo.png",
		"property_url": "https://demo/imoveis/IMV-0001",
		"current_date": "31/08/2026",
		"line_break":   "<br>",
	}
	for key, want := range checks {
		if repl[key] != want {
			t.Errorf("%s = %q, want %q", key, repl[key], want)
		}
	}
}

func TestSubstituteNoRecursiveExpansion(t *testing.T) {
	p := testProperty()
	p.Notes = str("{{title}}")
	out := Substitute("{{notes}}", p, Context{}, ModeExport)
	if out != "{{title}}" {
		t.Errorf("got %q, substitution must not recurse", out)
	}
}
