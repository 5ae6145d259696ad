// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ShareEvent is a per-property-per-platform usage counter. It is
// best-effort telemetry — a failed increment never fails a share.
type ShareEvent struct {
	PropertyID   uuid.UUID `json:"property_id"`
	Platform     Platform  `json:"platform"`
	Count        int       `json:"count"`
	LastSharedAt time.Time `json:"last_shared_at"`
}

// PlatformCount pairs a platform with its aggregate share count for
// the dashboard.
type PlatformCount struct {
	Platform Platform `json:"platform"`
	Count    int      `json:"count"`
}

// PropertyShareCount pairs a listing code with its total share count
// across platforms.
type PropertyShareCount struct {
	Code  string `json:"code"`
	Title string `json:"title"`
	Count int    `json:"count"`
}
