// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package metrics aggregates the per-company dashboard figures: listing
// counts by status and purpose, share totals per platform, and the most
// shared properties.
package metrics

import (
	"fmt"

	"github.com/google/uuid"

	"imoguru/internal/models"
	"imoguru/internal/store"
)

// MostSharedLimit is how many top properties the dashboard shows.
const MostSharedLimit = 5

// Dashboard is the aggregate returned by the dashboard endpoint.
type Dashboard struct {
	TotalProperties  int                           `json:"total_properties"`
	ByStatus         map[models.PropertyStatus]int `json:"by_status"`
	ByPurpose        map[models.Purpose]int        `json:"by_purpose"`
	SharesByPlatform []models.PlatformCount        `json:"shares_by_platform"`
	MostShared       []models.PropertyShareCount   `json:"most_shared"`
}

// Aggregator computes dashboard metrics from the stores.
type Aggregator struct {
	properties *store.PropertyStore
	shares     *store.ShareEventStore
}

// NewAggregator creates a dashboard aggregator.
func NewAggregator(properties *store.PropertyStore, shares *store.ShareEventStore) *Aggregator {
	return &Aggregator{properties: properties, shares: shares}
}

// Dashboard computes the company's dashboard figures.
func (a *Aggregator) Dashboard(companyID uuid.UUID) (*Dashboard, error) {
	byStatus, err := a.properties.CountByStatus(companyID)
	if err != nil {
		return nil, fmt.Errorf("dashboard status counts: %w", err)
	}

	byPurpose, err := a.properties.CountByPurpose(companyID)
	if err != nil {
		return nil, fmt.Errorf("dashboard purpose counts: %w", err)
	}

	shares, err := a.shares.CountsByPlatform(companyID)
	if err != nil {
		return nil, fmt.Errorf("dashboard share counts: %w", err)
	}

	top, err := a.shares.MostShared(companyID, MostSharedLimit)
	if err != nil {
		return nil, fmt.Errorf("dashboard most shared: %w", err)
	}

	total := 0
	for _, n := range byStatus {
		total += n
	}

	return &Dashboard{
		TotalProperties:  total,
		ByStatus:         byStatus,
		ByPurpose:        byPurpose,
		SharesByPlatform: shares,
		MostShared:       top,
	}, nil
}
