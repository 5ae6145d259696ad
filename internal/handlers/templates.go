// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"imoguru/internal/branding"
	"imoguru/internal/middleware"
	"imoguru/internal/models"
	"imoguru/internal/share"
	"imoguru/internal/store"
)

// templatePolicy sanitizes operator-authored template HTML on save and
// preview. UGC covers the formatting tags templates use (p, br, lists,
// emphasis, anchors) and strips scripts and event handlers.
var templatePolicy = bluemonday.UGCPolicy()

// Templates groups the share template handlers.
type Templates struct {
	templates  *store.TemplateStore
	properties *store.PropertyStore
	media      *store.MediaStore
	branding   *branding.Resolver

	// baseURL builds the property_url token for previews.
	baseURL string
}

// NewTemplates creates a new Templates handler group.
func NewTemplates(templates *store.TemplateStore, properties *store.PropertyStore, media *store.MediaStore, b *branding.Resolver, baseURL string) *Templates {
	return &Templates{
		templates:  templates,
		properties: properties,
		media:      media,
		branding:   b,
		baseURL:    baseURL,
	}
}

// List returns the company's active templates, optionally filtered by the
// platform query parameter.
func (h *Templates) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	platform := models.Platform(r.URL.Query().Get("platform"))
	if platform != "" && !platform.Valid() {
		respondError(w, http.StatusBadRequest, "unknown platform")
		return
	}

	items, err := h.templates.List(sess.CompanyID, platform)
	if err != nil {
		slog.Error("list templates failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if items == nil {
		items = []models.ShareTemplate{}
	}
	respondJSON(w, http.StatusOK, items)
}

// Get returns one template, archived or not.
func (h *Templates) Get(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	id, err := uuidParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid template id")
		return
	}

	t, err := h.templates.FindByID(sess.CompanyID, id)
	if err != nil {
		slog.Error("find template failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if t == nil {
		respondError(w, http.StatusNotFound, "template not found")
		return
	}
	respondJSON(w, http.StatusOK, t)
}

// Create inserts a new template. The message format is sanitized before
// it is stored.
func (h *Templates) Create(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var t models.ShareTemplate
	if err := decodeJSON(r, &t); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	t.CompanyID = sess.CompanyID
	t.MessageFormat = templatePolicy.Sanitize(t.MessageFormat)

	if msg := validateTemplate(&t); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	created, err := h.templates.Create(&t)
	if err != nil {
		slog.Error("create template failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// Update modifies an existing template.
func (h *Templates) Update(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	id, err := uuidParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid template id")
		return
	}

	existing, err := h.templates.FindByID(sess.CompanyID, id)
	if err != nil {
		slog.Error("find template failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if existing == nil {
		respondError(w, http.StatusNotFound, "template not found")
		return
	}
	if existing.Archived() {
		respondError(w, http.StatusConflict, "template is archived")
		return
	}

	var t models.ShareTemplate
	if err := decodeJSON(r, &t); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	t.ID = id
	t.CompanyID = sess.CompanyID
	t.MessageFormat = templatePolicy.Sanitize(t.MessageFormat)

	if msg := validateTemplate(&t); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	if err := h.templates.Update(&t); err != nil {
		slog.Error("update template failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	updated, err := h.templates.FindByID(sess.CompanyID, id)
	if err != nil {
		slog.Error("reload template failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// Archive soft-deletes a template.
func (h *Templates) Archive(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	id, err := uuidParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid template id")
		return
	}

	if err := h.templates.Archive(sess.CompanyID, id); err != nil {
		slog.Error("archive template failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

type previewRequest struct {
	MessageFormat string          `json:"message_format"`
	Platform      models.Platform `json:"platform"`

	// PropertyID previews against a real listing. Empty previews against
	// built-in sample data.
	PropertyID string `json:"property_id,omitempty"`
}

type previewResponse struct {
	Content string `json:"content"`
}

// Preview substitutes a draft message format without saving it. Missing
// values render as a visible marker so operators can spot gaps.
func (h *Templates) Preview(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req previewRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Platform != "" && !req.Platform.Valid() {
		respondError(w, http.StatusBadRequest, "unknown platform")
		return
	}

	format := templatePolicy.Sanitize(req.MessageFormat)
	ctx := share.Context{
		Branding: h.branding.Resolve(r.Context(), sess.CompanyID),
	}

	var content string
	if req.PropertyID != "" {
		p, err := h.loadPreviewProperty(r, sess.CompanyID, req.PropertyID)
		if err != nil {
			respondError(w, http.StatusNotFound, "property not found")
			return
		}
		ctx.PropertyURL = h.baseURL + "/imoveis/" + p.Code
		content = share.Substitute(format, p, ctx, share.ModePreview)
	} else {
		repl := samplePreviewData()
		repl["app_name"] = ctx.Branding.AppName
		repl["agency_name"] = ctx.Branding.AgencyName
		content = share.SubstituteMap(format, repl, share.ModePreview)
	}

	if req.Platform != "" {
		content = share.ToChannelFormat(content, share.PlatformFormat(req.Platform))
	}
	respondJSON(w, http.StatusOK, previewResponse{Content: content})
}

func (h *Templates) loadPreviewProperty(r *http.Request, companyID uuid.UUID, rawID string) (*models.Property, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, err
	}
	p, err := h.properties.FindByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errInvalidID
	}
	images, err := h.media.ListImages(p.ID)
	if err == nil {
		p.Images = images
	}
	return p, nil
}

// samplePreviewData is a representative listing for previewing templates
// before any property exists.
func samplePreviewData() map[string]string {
	return map[string]string{
		"code":         "IMV-0001",
		"title":        "Casa com 3 quartos no Centro",
		"purpose":      "Venda",
		"status":       "Disponível",
		"price":        share.FormatValue("sale_price", 450000),
		"sale_price":   share.FormatValue("sale_price", 450000),
		"bedrooms":     "3",
		"bathrooms":    "2",
		"total_area":   "180 m²",
		"neighborhood": "Centro",
		"city":         "São Paulo",
		"state":        "SP",
		"address":      "Rua das Flores, 123 - Centro - São Paulo, SP",
		"current_date": time.Now().Format("02/01/2006"),
		"line_break":   "<br>",
	}
}
