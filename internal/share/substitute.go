// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package share implements the listing share/export pipeline: placeholder
// substitution of template tokens, per-channel message formatting, and
// platform dispatch with usage tracking.
package share

import (
	"regexp"
	"time"

	"imoguru/internal/branding"
	"imoguru/internal/models"
)

// Mode selects how unresolved tokens are rendered.
type Mode int

const (
	// ModeExport replaces unresolved tokens with the empty string.
	// Used for everything an end customer sees.
	ModeExport Mode = iota

	// ModePreview replaces unresolved tokens with a visible marker so
	// operators can spot missing data while authoring a template.
	ModePreview
)

// missingMarker is what operators see in preview mode for a token that
// has no value.
const missingMarker = "[not available]"

// tokenRe matches {{key}} and {key} tokens. The grammar is strict: a
// token is a \w+ key wrapped in matching single or double braces. An
// asymmetric form like "{{key}" is not a token — its inner "{key}" is,
// and the stranded outer brace stays as literal text.
var tokenRe = regexp.MustCompile(`\{\{(\w+)\}\}|\{(\w+)\}`)

// Context carries the non-property values available to one substitution
// call: resolved branding, the public listing URL, and the clock.
type Context struct {
	Branding    branding.Branding
	PropertyURL string

	// Now overrides the wall clock for the current_date token. Zero
	// means time.Now().
	Now time.Time
}

// Replacements builds the ephemeral token→value map for one export call.
// It merges the property's scalar fields, locale-formatted currency
// overrides, and the system/branding fields. The map is never persisted.
func Replacements(p *models.Property, ctx Context) map[string]string {
	repl := p.Fields()

	if p.SalePrice != nil {
		repl["sale_price"] = FormatValue("sale_price", *p.SalePrice)
	} else {
		repl["sale_price"] = ""
	}
	if p.RentalPrice != nil {
		repl["rental_price"] = FormatValue("rental_price", *p.RentalPrice)
	} else {
		repl["rental_price"] = ""
	}
	if p.CondoPrice != nil {
		repl["condo_price"] = FormatValue("condo_price", *p.CondoPrice)
	} else {
		repl["condo_price"] = ""
	}
	if p.IPTUPrice != nil {
		repl["iptu_price"] = FormatValue("iptu_price", *p.IPTUPrice)
	} else {
		repl["iptu_price"] = ""
	}

	// The generic price token follows the listing's purpose: sale price
	// when selling, rental price when renting. Sale wins when both are
	// set on a sale_rent listing.
	switch {
	case p.Purpose == models.PurposeRent && p.RentalPrice != nil:
		repl["price"] = repl["rental_price"]
	case p.SalePrice != nil:
		repl["price"] = repl["sale_price"]
	case p.RentalPrice != nil:
		repl["price"] = repl["rental_price"]
	default:
		repl["price"] = ""
	}

	now := ctx.Now
	if now.IsZero() {
		now = time.Now()
	}

	repl["app_name"] = ctx.Branding.AppName
	repl["agency_name"] = ctx.Branding.AgencyName
	repl["company_logo"] = ctx.Branding.LogoURL
	repl["property_url"] = ctx.PropertyURL
	repl["current_date"] = now.Format("02/01/2006")
	repl["line_break"] = "<br>"

	return repl
}

// Substitute fills every {{key}} and {key} token in format with the
// matching replacement value. Lookup is literal and case-sensitive with
// no recursive expansion. Tokens without a value render per mode: empty
// in ModeExport, a visible marker in ModePreview. No token survives in
// the output either way.
func Substitute(format string, p *models.Property, ctx Context, mode Mode) string {
	repl := Replacements(p, ctx)
	return SubstituteMap(format, repl, mode)
}

// SubstituteMap is Substitute over an already-built replacement map.
// Template preview uses it to substitute sample data without a property.
func SubstituteMap(format string, repl map[string]string, mode Mode) string {
	return tokenRe.ReplaceAllStringFunc(format, func(tok string) string {
		key := tokenRe.FindStringSubmatch(tok)
		name := key[1]
		if name == "" {
			name = key[2]
		}
		if v := repl[name]; v != "" {
			return v
		}
		if mode == ModePreview {
			return missingMarker
		}
		return ""
	})
}
