// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"imoguru/internal/metrics"
	"imoguru/internal/middleware"
	"imoguru/internal/models"
	"imoguru/internal/store"
)

// Dashboard serves the company metrics endpoints.
type Dashboard struct {
	aggregator *metrics.Aggregator
	events     *store.ShareEventStore
	properties *store.PropertyStore
}

// NewDashboard creates a new Dashboard handler group.
func NewDashboard(aggregator *metrics.Aggregator, events *store.ShareEventStore, properties *store.PropertyStore) *Dashboard {
	return &Dashboard{aggregator: aggregator, events: events, properties: properties}
}

// Overview returns the company's aggregate dashboard figures.
func (h *Dashboard) Overview(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	d, err := h.aggregator.Dashboard(sess.CompanyID)
	if err != nil {
		slog.Error("dashboard aggregation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusOK, d)
}

// PropertyShares returns the per-platform share counters of one listing.
func (h *Dashboard) PropertyShares(w http.ResponseWriter, r *http.Request) {
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

	events, err := h.events.ForProperty(p.ID)
	if err != nil {
		slog.Error("property share events failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if events == nil {
		events = []models.ShareEvent{}
	}
	respondJSON(w, http.StatusOK, events)
}
