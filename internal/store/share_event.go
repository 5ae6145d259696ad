// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"imoguru/internal/models"
)

// ShareEventStore handles the per-property-per-platform share counters.
// Increments are best-effort telemetry — callers log failures and move on.
type ShareEventStore struct {
	db *sql.DB
}

// NewShareEventStore creates a new ShareEventStore with the given database connection.
func NewShareEventStore(db *sql.DB) *ShareEventStore {
	return &ShareEventStore{db: db}
}

// Increment bumps the share counter for one property/platform pair,
// creating the row on first use.
func (s *ShareEventStore) Increment(propertyID uuid.UUID, platform models.Platform) error {
	_, err := s.db.Exec(`
		INSERT INTO share_events (property_id, platform, count, last_shared_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (property_id, platform)
		DO UPDATE SET count = share_events.count + 1, last_shared_at = NOW()
	`, propertyID, platform)
	if err != nil {
		return fmt.Errorf("increment share counter: %w", err)
	}
	return nil
}

// CountsByPlatform returns the company's total share counts per platform.
func (s *ShareEventStore) CountsByPlatform(companyID uuid.UUID) ([]models.PlatformCount, error) {
	rows, err := s.db.Query(`
		SELECT e.platform, COALESCE(SUM(e.count), 0)
		FROM share_events e
		JOIN properties p ON p.id = e.property_id
		WHERE p.company_id = $1
		GROUP BY e.platform
		ORDER BY e.platform
	`, companyID)
	if err != nil {
		return nil, fmt.Errorf("share counts by platform: %w", err)
	}
	defer rows.Close()

	var counts []models.PlatformCount
	for rows.Next() {
		var pc models.PlatformCount
		if err := rows.Scan(&pc.Platform, &pc.Count); err != nil {
			return nil, fmt.Errorf("scan platform count: %w", err)
		}
		counts = append(counts, pc)
	}
	return counts, rows.Err()
}

// ForProperty returns the share counters of one property.
func (s *ShareEventStore) ForProperty(propertyID uuid.UUID) ([]models.ShareEvent, error) {
	rows, err := s.db.Query(`
		SELECT property_id, platform, count, last_shared_at
		FROM share_events WHERE property_id = $1 ORDER BY platform
	`, propertyID)
	if err != nil {
		return nil, fmt.Errorf("share events for property: %w", err)
	}
	defer rows.Close()

	var events []models.ShareEvent
	for rows.Next() {
		var e models.ShareEvent
		if err := rows.Scan(&e.PropertyID, &e.Platform, &e.Count, &e.LastSharedAt); err != nil {
			return nil, fmt.Errorf("scan share event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// MostShared returns the company's top properties by total share count.
func (s *ShareEventStore) MostShared(companyID uuid.UUID, limit int) ([]models.PropertyShareCount, error) {
	rows, err := s.db.Query(`
		SELECT p.code, p.title, COALESCE(SUM(e.count), 0) AS total
		FROM share_events e
		JOIN properties p ON p.id = e.property_id
		WHERE p.company_id = $1
		GROUP BY p.code, p.title
		ORDER BY total DESC
		LIMIT $2
	`, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("most shared properties: %w", err)
	}
	defer rows.Close()

	var counts []models.PropertyShareCount
	for rows.Next() {
		var pc models.PropertyShareCount
		if err := rows.Scan(&pc.Code, &pc.Title, &pc.Count); err != nil {
			return nil, fmt.Errorf("scan most shared: %w", err)
		}
		counts = append(counts, pc)
	}
	return counts, rows.Err()
}
