// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"imoguru/internal/branding"
	"imoguru/internal/compose"
	"imoguru/internal/middleware"
	"imoguru/internal/models"
	"imoguru/internal/share"
	"imoguru/internal/slug"
	"imoguru/internal/store"
)

// Share groups the share and export handlers — the endpoints that turn a
// listing plus a template into a platform-ready message or artifact.
type Share struct {
	properties *store.PropertyStore
	media      *store.MediaStore
	templates  *store.TemplateStore
	events     *store.ShareEventStore
	branding   *branding.Resolver
	dispatcher *share.Dispatcher
	loader     compose.ImageLoader
	baseURL    string
}

// NewShare creates a new Share handler group.
func NewShare(
	properties *store.PropertyStore,
	media *store.MediaStore,
	templates *store.TemplateStore,
	events *store.ShareEventStore,
	b *branding.Resolver,
	dispatcher *share.Dispatcher,
	loader compose.ImageLoader,
	baseURL string,
) *Share {
	return &Share{
		properties: properties,
		media:      media,
		templates:  templates,
		events:     events,
		branding:   b,
		dispatcher: dispatcher,
		loader:     loader,
		baseURL:    baseURL,
	}
}

// shareContext is everything both endpoints need: the listing with its
// photos, the template, and the substituted, channel-formatted message.
type shareContext struct {
	property *models.Property
	template *models.ShareTemplate
	message  string
	link     string
}

// load resolves the route property and the request template, substitutes
// the message, and formats it for the template's platform. Writes the
// error response itself and returns nil on failure.
func (h *Share) load(w http.ResponseWriter, r *http.Request, templateID uuid.UUID) *shareContext {
	sess := middleware.SessionFromCtx(r.Context())

	id, err := uuidParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid property id")
		return nil
	}

	p, err := h.properties.FindByID(sess.CompanyID, id)
	if err != nil {
		slog.Error("find property failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return nil
	}
	if p == nil {
		respondError(w, http.StatusNotFound, "property not found")
		return nil
	}

	images, err := h.media.ListImages(p.ID)
	if err != nil {
		slog.Error("list property images failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return nil
	}
	p.Images = images

	t, err := h.templates.FindByID(sess.CompanyID, templateID)
	if err != nil {
		slog.Error("find template failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return nil
	}
	if t == nil {
		respondError(w, http.StatusNotFound, "template not found")
		return nil
	}
	if t.Archived() {
		respondError(w, http.StatusConflict, "template is archived")
		return nil
	}

	link := h.baseURL + "/imoveis/" + p.Code
	content := share.Substitute(t.MessageFormat, p, share.Context{
		Branding:    h.branding.Resolve(r.Context(), sess.CompanyID),
		PropertyURL: link,
	}, share.ModeExport)
	content = share.ToChannelFormat(content, share.PlatformFormat(t.Platform))

	return &shareContext{property: p, template: t, message: content, link: link}
}

// templateImages selects the photo URLs a template wants attached.
func templateImages(sc *shareContext) []string {
	if !sc.template.IncludeImages {
		return nil
	}
	max := sc.template.MaxImages
	if max <= 0 {
		max = -1 // unlimited
	}
	images := compose.SelectImages(sc.property, max)
	urls := make([]string, len(images))
	for i, img := range images {
		urls[i] = img.URL
	}
	return urls
}

type shareRequest struct {
	TemplateID   uuid.UUID `json:"template_id"`
	EmailTo      string    `json:"email_to,omitempty"`
	EmailSubject string    `json:"email_subject,omitempty"`
}

// Dispatch shares one listing through the template's platform. The
// response tells the client what to do next: open a deep link, copy the
// message, or nothing when the share already went out server-side.
func (h *Share) Dispatch(w http.ResponseWriter, r *http.Request) {
	var req shareRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TemplateID == uuid.Nil {
		respondError(w, http.StatusUnprocessableEntity, "template_id is required")
		return
	}

	sc := h.load(w, r, req.TemplateID)
	if sc == nil {
		return
	}

	subject := req.EmailSubject
	if subject == "" {
		subject = sc.property.Title
	}

	action, err := h.dispatcher.Dispatch(r.Context(), share.Request{
		Platform:     sc.template.Platform,
		PropertyID:   sc.property.ID,
		Message:      sc.message,
		Link:         sc.link,
		Images:       templateImages(sc),
		EmailTo:      req.EmailTo,
		EmailSubject: subject,
	})
	if err != nil {
		switch {
		case err == share.ErrEmptyMessage:
			respondError(w, http.StatusUnprocessableEntity, "template produced an empty message")
		default:
			slog.Error("share dispatch failed", "platform", sc.template.Platform, "error", err)
			respondError(w, http.StatusBadGateway, "share dispatch failed")
		}
		return
	}
	respondJSON(w, http.StatusOK, action)
}

type exportRequest struct {
	TemplateID uuid.UUID `json:"template_id"`
	Format     string    `json:"format"` // "jpeg" or "pdf"
}

type exportResponse struct {
	DataURL  string `json:"data_url"`
	Filename string `json:"filename"`
}

// Export composes the listing message and photos into a downloadable
// artifact: a JPEG data URL or a single-page A4 PDF.
func (h *Share) Export(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TemplateID == uuid.Nil {
		respondError(w, http.StatusUnprocessableEntity, "template_id is required")
		return
	}
	if req.Format != "jpeg" && req.Format != "pdf" {
		respondError(w, http.StatusUnprocessableEntity, "format must be jpeg or pdf")
		return
	}

	sc := h.load(w, r, req.TemplateID)
	if sc == nil {
		return
	}

	// Artifacts render text, so the message is flattened regardless of
	// the template's platform.
	content := share.ToChannelFormat(sc.message, share.FormatPlainText)

	maxImages := sc.template.MaxImages
	if maxImages <= 0 {
		maxImages = -1
	}
	var images []compose.Image
	if sc.template.IncludeImages {
		images = compose.SelectImages(sc.property, maxImages)
	}

	columns := sc.template.ImageColumns
	if columns < 1 {
		columns = 2
	}
	doc := compose.Compose(content, images, compose.Layout{
		Columns:   columns,
		Placement: sc.template.Placement,
		MaxImages: maxImages,
	})
	doc.QRURL = sc.link

	stem := slug.Filename(sc.property.Code + " " + sc.property.Title)
	if stem == "" {
		stem = "listing"
	}

	if err := h.events.Increment(sc.property.ID, models.PlatformPrint); err != nil {
		slog.Warn("export tracking failed", "property_id", sc.property.ID, "error", err)
	}

	switch req.Format {
	case "pdf":
		pdf, err := doc.RenderPDF(r.Context(), h.loader)
		if err != nil {
			slog.Error("pdf export failed", "property_id", sc.property.ID, "error", err)
			respondError(w, http.StatusInternalServerError, "export failed")
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", stem+".pdf"))
		w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
		w.Write(pdf)

	default:
		dataURL, err := doc.RenderJPEG(r.Context(), h.loader)
		if err != nil {
			slog.Error("jpeg export failed", "property_id", sc.property.ID, "error", err)
			respondError(w, http.StatusInternalServerError, "export failed")
			return
		}
		respondJSON(w, http.StatusOK, exportResponse{
			DataURL:  dataURL,
			Filename: stem + ".jpg",
		})
	}
}
