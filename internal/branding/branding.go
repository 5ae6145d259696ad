// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package branding resolves the system and company branding values that
// feed template substitution: app name, agency name, and logo. Resolution
// is deliberately failure-proof — any storage error degrades to the
// configured defaults so a share never breaks over branding.
package branding

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"imoguru/internal/cache"
	"imoguru/internal/models"
	"imoguru/internal/store"
)

// Setting keys read from the site_settings table.
const (
	KeyAppName = "app_name"
	KeyLogoURL = "app_logo_url"
)

// Branding holds the resolved values for one company.
type Branding struct {
	AppName    string `json:"app_name"`
	AgencyName string `json:"agency_name"`
	LogoURL    string `json:"logo_url"`
}

// Resolver loads branding from site settings and the company record,
// with a short-lived Valkey cache in front.
type Resolver struct {
	settings  *store.SiteSettingStore
	companies *store.CompanyStore
	cache     *cache.BrandingCache

	// defaultAppName is the fallback when settings are unreachable or
	// unset. Comes from configuration, not a literal here.
	defaultAppName string
}

// NewResolver creates a branding resolver. The cache may be nil, in which
// case every call hits the database.
func NewResolver(settings *store.SiteSettingStore, companies *store.CompanyStore, c *cache.BrandingCache, defaultAppName string) *Resolver {
	return &Resolver{
		settings:       settings,
		companies:      companies,
		cache:          c,
		defaultAppName: defaultAppName,
	}
}

// Defaults returns the built-in branding used when nothing can be loaded.
func (r *Resolver) Defaults() Branding {
	return Branding{AppName: r.defaultAppName}
}

// Resolve returns the branding for a company. It never returns an error:
// a settings or company fetch failure is logged and degraded to defaults
// so the share pipeline always proceeds.
func (r *Resolver) Resolve(ctx context.Context, companyID uuid.UUID) Branding {
	if r.cache != nil {
		if payload, ok := r.cache.Get(ctx, companyID.String()); ok {
			var b Branding
			if err := json.Unmarshal(payload, &b); err == nil {
				return b
			}
		}
	}

	b := r.Defaults()

	settings, err := r.settings.All()
	if err != nil {
		slog.Warn("branding settings fetch failed, using defaults", "error", err)
		settings = models.SiteSettings{}
	}
	b.AppName = settings.Get(KeyAppName, r.defaultAppName)
	b.LogoURL = settings.Get(KeyLogoURL, "")

	company, err := r.companies.FindByID(companyID)
	if err != nil {
		slog.Warn("branding company fetch failed, using defaults", "company_id", companyID, "error", err)
	}
	if company != nil {
		b.AgencyName = company.Name
		if company.LogoURL != nil && *company.LogoURL != "" {
			b.LogoURL = *company.LogoURL
		}
	}

	if r.cache != nil {
		if payload, err := json.Marshal(b); err == nil {
			r.cache.Set(ctx, companyID.String(), payload)
		}
	}

	return b
}
