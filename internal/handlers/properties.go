// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"imoguru/internal/middleware"
	"imoguru/internal/models"
	"imoguru/internal/store"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// Properties groups the listing CRUD handlers. Every operation is scoped
// to the session's company.
type Properties struct {
	properties *store.PropertyStore
	media      *store.MediaStore
}

// NewProperties creates a new Properties handler group.
func NewProperties(properties *store.PropertyStore, media *store.MediaStore) *Properties {
	return &Properties{properties: properties, media: media}
}

// List returns a page of the company's listings.
func (h *Properties) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	limit := defaultPageSize
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = min(v, maxPageSize)
	}
	offset := 0
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		offset = v
	}

	items, err := h.properties.List(sess.CompanyID, limit, offset)
	if err != nil {
		slog.Error("list properties failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if items == nil {
		items = []models.Property{}
	}
	respondJSON(w, http.StatusOK, items)
}

// Get returns one listing with its images and documents attached.
func (h *Properties) Get(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	id, err := uuidParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	p, err := h.properties.FindByID(sess.CompanyID, id)
	if err != nil {
		slog.Error("find property failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if p == nil {
		respondError(w, http.StatusNotFound, "property not found")
		return
	}

	images, err := h.media.ListImages(p.ID)
	if err != nil {
		slog.Error("list property images failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	p.Images = images

	respondJSON(w, http.StatusOK, p)
}

// Create inserts a new listing.
func (h *Properties) Create(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var p models.Property
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p.CompanyID = sess.CompanyID

	if msg := validateProperty(&p); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	if existing, err := h.properties.FindByCode(sess.CompanyID, p.Code); err != nil {
		slog.Error("check property code failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	} else if existing != nil {
		respondError(w, http.StatusConflict, "a property with this code already exists")
		return
	}

	created, err := h.properties.Create(&p)
	if err != nil {
		slog.Error("create property failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// Update modifies an existing listing.
func (h *Properties) Update(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	id, err := uuidParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	existing, err := h.properties.FindByID(sess.CompanyID, id)
	if err != nil {
		slog.Error("find property failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if existing == nil {
		respondError(w, http.StatusNotFound, "property not found")
		return
	}

	var p models.Property
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p.ID = id
	p.CompanyID = sess.CompanyID

	if msg := validateProperty(&p); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	if err := h.properties.Update(&p); err != nil {
		slog.Error("update property failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	updated, err := h.properties.FindByID(sess.CompanyID, id)
	if err != nil {
		slog.Error("reload property failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// Delete removes a listing. Images, documents, and share counters cascade.
func (h *Properties) Delete(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	id, err := uuidParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	if err := h.properties.Delete(sess.CompanyID, id); err != nil {
		slog.Error("delete property failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
