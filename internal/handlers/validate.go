// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"

	"imoguru/internal/models"
)

// validateProperty checks the fields a listing cannot be saved without.
// Returns an empty string when the listing is valid.
func validateProperty(p *models.Property) string {
	p.Code = strings.TrimSpace(p.Code)
	p.Title = strings.TrimSpace(p.Title)

	switch {
	case p.Code == "":
		return "code is required"
	case p.Title == "":
		return "title is required"
	}

	switch p.Purpose {
	case models.PurposeSale, models.PurposeRent, models.PurposeSaleRent:
	default:
		return "purpose must be one of: sale, rent, sale_rent"
	}

	switch p.Status {
	case models.StatusAvailable, models.StatusReserved, models.StatusSold,
		models.StatusRented, models.StatusInactive:
	default:
		return "status must be one of: available, reserved, sold, rented, inactive"
	}

	for _, price := range []*float64{p.SalePrice, p.RentalPrice, p.CondoPrice, p.IPTUPrice} {
		if price != nil && *price < 0 {
			return "prices must not be negative"
		}
	}

	return ""
}

// validateTemplate checks a share template before save. Returns an empty
// string when the template is valid.
func validateTemplate(t *models.ShareTemplate) string {
	t.Name = strings.TrimSpace(t.Name)

	switch {
	case t.Name == "":
		return "name is required"
	case strings.TrimSpace(t.MessageFormat) == "":
		return "message_format is required"
	case !t.Platform.Valid():
		return "platform must be one of: whatsapp, email, facebook, instagram, messenger, print"
	}

	if t.IncludeImages {
		if t.Placement == "" {
			t.Placement = models.PlacementAfterText
		}
		if !t.Placement.Valid() {
			return "image_placement must be one of: before_text, after_text, intercalated"
		}
		if t.MaxImages < 0 {
			return "max_images must not be negative"
		}
		if t.ImageColumns < 1 {
			t.ImageColumns = 2
		}
	}

	return ""
}
