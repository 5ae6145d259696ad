// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"imoguru/internal/cache"
	"imoguru/internal/middleware"
	"imoguru/internal/models"
	"imoguru/internal/store"
)

// Settings serves the system branding settings and the company profile.
// Writes invalidate the branding cache so the next share picks them up.
type Settings struct {
	settings  *store.SiteSettingStore
	companies *store.CompanyStore
	cache     *cache.BrandingCache
}

// NewSettings creates a new Settings handler group.
func NewSettings(settings *store.SiteSettingStore, companies *store.CompanyStore, c *cache.BrandingCache) *Settings {
	return &Settings{settings: settings, companies: companies, cache: c}
}

// Get returns all site settings.
func (h *Settings) Get(w http.ResponseWriter, r *http.Request) {
	all, err := h.settings.All()
	if err != nil {
		slog.Error("load settings failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusOK, all)
}

// Update upserts the posted settings. Admin only (enforced by the router).
func (h *Settings) Update(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var values map[string]string
	if err := decodeJSON(r, &values); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	for key, value := range values {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if err := h.settings.Set(key, value); err != nil {
			slog.Error("save setting failed", "key", key, "error", err)
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}
	}

	if h.cache != nil {
		h.cache.Invalidate(r.Context(), sess.CompanyID.String())
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Company returns the session company's profile.
func (h *Settings) Company(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	c, err := h.companies.FindByID(sess.CompanyID)
	if err != nil {
		slog.Error("find company failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if c == nil {
		respondError(w, http.StatusNotFound, "company not found")
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// UpdateCompany modifies the session company's profile. Admin only.
func (h *Settings) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var c models.Company
	if err := decodeJSON(r, &c); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c.ID = sess.CompanyID

	if strings.TrimSpace(c.Name) == "" {
		respondError(w, http.StatusUnprocessableEntity, "name is required")
		return
	}

	if err := h.companies.Update(&c); err != nil {
		slog.Error("update company failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if h.cache != nil {
		h.cache.Invalidate(r.Context(), sess.CompanyID.String())
	}

	updated, err := h.companies.FindByID(sess.CompanyID)
	if err != nil {
		slog.Error("reload company failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}
