// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"imoguru/internal/models"
)

func TestShareEventIncrementAndCounts(t *testing.T) {
	db := testDB(t)
	companyID := testCompany(t, db)
	events := NewShareEventStore(db)

	p1 := testListing(t, db, companyID, "IMV-T030")
	p2 := testListing(t, db, companyID, "IMV-T031")

	for range 3 {
		if err := events.Increment(p1.ID, models.PlatformWhatsApp); err != nil {
			t.Fatalf("increment: %v", err)
		}
	}
	if err := events.Increment(p1.ID, models.PlatformEmail); err != nil {
		t.Fatalf("increment: %v", err)
	}
	if err := events.Increment(p2.ID, models.PlatformWhatsApp); err != nil {
		t.Fatalf("increment: %v", err)
	}

	forProperty, err := events.ForProperty(p1.ID)
	if err != nil {
		t.Fatalf("for property: %v", err)
	}
	counts := map[models.Platform]int{}
	for _, e := range forProperty {
		counts[e.Platform] = e.Count
	}
	if counts[models.PlatformWhatsApp] != 3 || counts[models.PlatformEmail] != 1 {
		t.Errorf("per-property counts = %v", counts)
	}

	byPlatform, err := events.CountsByPlatform(companyID)
	if err != nil {
		t.Fatalf("counts by platform: %v", err)
	}
	totals := map[models.Platform]int{}
	for _, pc := range byPlatform {
		totals[pc.Platform] = pc.Count
	}
	if totals[models.PlatformWhatsApp] != 4 {
		t.Errorf("whatsapp total = %d, want 4", totals[models.PlatformWhatsApp])
	}

	top, err := events.MostShared(companyID, 5)
	if err != nil {
		t.Fatalf("most shared: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("most shared = %d entries, want 2", len(top))
	}
	if top[0].Code != "IMV-T030" || top[0].Count != 4 {
		t.Errorf("top entry = %+v", top[0])
	}
}
