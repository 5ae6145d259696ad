// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Purpose is the commercial purpose of a listing.
type Purpose string

const (
	PurposeSale     Purpose = "sale"
	PurposeRent     Purpose = "rent"
	PurposeSaleRent Purpose = "sale_rent"
)

// PurposeLabels maps purpose codes to their display strings. Codes outside
// this map pass through unchanged in templates.
var PurposeLabels = map[Purpose]string{
	PurposeSale:     "Venda",
	PurposeRent:     "Aluguel",
	PurposeSaleRent: "Venda e Aluguel",
}

// PropertyStatus is the availability state of a listing.
type PropertyStatus string

const (
	StatusAvailable PropertyStatus = "available"
	StatusReserved  PropertyStatus = "reserved"
	StatusSold      PropertyStatus = "sold"
	StatusRented    PropertyStatus = "rented"
	StatusInactive  PropertyStatus = "inactive"
)

// StatusLabels maps status codes to their display strings. Codes outside
// this map pass through unchanged in templates.
var StatusLabels = map[PropertyStatus]string{
	StatusAvailable: "Disponível",
	StatusReserved:  "Reservado",
	StatusSold:      "Vendido",
	StatusRented:    "Alugado",
	StatusInactive:  "Inativo",
}

// Property represents a single real-estate listing owned by a company.
// Nearly every descriptive field is optional — listings are created
// incrementally and many fields never get filled in.
type Property struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	Code      string    `json:"code"`
	Title     string    `json:"title"`

	Purpose      Purpose        `json:"purpose"`
	Status       PropertyStatus `json:"status"`
	PropertyType *string        `json:"property_type,omitempty"`
	Description  *string        `json:"description,omitempty"`

	SalePrice   *float64 `json:"sale_price,omitempty"`
	RentalPrice *float64 `json:"rental_price,omitempty"`
	CondoPrice  *float64 `json:"condo_price,omitempty"`
	IPTUPrice   *float64 `json:"iptu_price,omitempty"`

	TotalArea  *float64 `json:"total_area,omitempty"`
	UsableArea *float64 `json:"usable_area,omitempty"`
	LandArea   *float64 `json:"land_area,omitempty"`

	Bedrooms      *int `json:"bedrooms,omitempty"`
	Suites        *int `json:"suites,omitempty"`
	Bathrooms     *int `json:"bathrooms,omitempty"`
	ParkingSpaces *int `json:"parking_spaces,omitempty"`
	Floors        *int `json:"floors,omitempty"`
	YearBuilt     *int `json:"year_built,omitempty"`

	Street       *string `json:"street,omitempty"`
	Number       *string `json:"number,omitempty"`
	Complement   *string `json:"complement,omitempty"`
	Neighborhood *string `json:"neighborhood,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	ZipCode      *string `json:"zip_code,omitempty"`
	Condominium  *string `json:"condominium,omitempty"`

	OwnerName  *string `json:"owner_name,omitempty"`
	OwnerPhone *string `json:"owner_phone,omitempty"`
	OwnerEmail *string `json:"owner_email,omitempty"`

	VideoURL *string `json:"video_url,omitempty"`
	Notes    *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Images is populated separately from the property_images table,
	// ordered by display_order with the cover flagged.
	Images []PropertyImage `json:"images,omitempty"`
}

// PurposeLabel returns the display string for the listing's purpose,
// or the raw code when it isn't in the closed vocabulary.
func (p *Property) PurposeLabel() string {
	if label, ok := PurposeLabels[p.Purpose]; ok {
		return label
	}
	return string(p.Purpose)
}

// StatusLabel returns the display string for the listing's status,
// or the raw code when it isn't in the closed vocabulary.
func (p *Property) StatusLabel() string {
	if label, ok := StatusLabels[p.Status]; ok {
		return label
	}
	return string(p.Status)
}

// CoverImage returns the image flagged as cover, or the first image in
// display order, or nil when the listing has no photos.
func (p *Property) CoverImage() *PropertyImage {
	for i := range p.Images {
		if p.Images[i].IsCover {
			return &p.Images[i]
		}
	}
	if len(p.Images) > 0 {
		return &p.Images[0]
	}
	return nil
}

// ImageURLs returns the listing's photo URLs with the cover first,
// then the remaining photos in display order.
func (p *Property) ImageURLs() []string {
	urls := make([]string, 0, len(p.Images))
	if cover := p.CoverImage(); cover != nil {
		urls = append(urls, cover.URL)
		for i := range p.Images {
			if p.Images[i].ID != cover.ID {
				urls = append(urls, p.Images[i].URL)
			}
		}
	}
	return urls
}

// FullAddress joins the available address parts into a single line.
func (p *Property) FullAddress() string {
	var out string
	appendPart := func(part *string, sep string) {
		if part == nil || *part == "" {
			return
		}
		if out != "" {
			out += sep
		}
		out += *part
	}
	appendPart(p.Street, ", ")
	appendPart(p.Number, ", ")
	appendPart(p.Complement, " - ")
	appendPart(p.Neighborhood, " - ")
	appendPart(p.City, ", ")
	appendPart(p.State, "/")
	return out
}

// Fields returns the listing's scalar fields as strings keyed by their
// template token names. Nil fields map to the empty string so templates
// never see a dangling token. Price fields are raw here — the share
// package layers locale-formatted overrides on top.
func (p *Property) Fields() map[string]string {
	f := map[string]string{
		"code":          p.Code,
		"title":         p.Title,
		"purpose":       p.PurposeLabel(),
		"status":        p.StatusLabel(),
		"property_type": strVal(p.PropertyType),
		"description":   strVal(p.Description),

		"total_area":  areaVal(p.TotalArea),
		"usable_area": areaVal(p.UsableArea),
		"land_area":   areaVal(p.LandArea),

		"bedrooms":       intVal(p.Bedrooms),
		"suites":         intVal(p.Suites),
		"bathrooms":      intVal(p.Bathrooms),
		"parking_spaces": intVal(p.ParkingSpaces),
		"floors":         intVal(p.Floors),
		"year_built":     intVal(p.YearBuilt),

		"street":       strVal(p.Street),
		"number":       strVal(p.Number),
		"complement":   strVal(p.Complement),
		"neighborhood": strVal(p.Neighborhood),
		"city":         strVal(p.City),
		"state":        strVal(p.State),
		"zip_code":     strVal(p.ZipCode),
		"condominium":  strVal(p.Condominium),
		"address":      p.FullAddress(),

		"owner_name":  strVal(p.OwnerName),
		"owner_phone": strVal(p.OwnerPhone),
		"owner_email": strVal(p.OwnerEmail),

		"video_url": strVal(p.VideoURL),
		"notes":     strVal(p.Notes),
	}
	return f
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intVal(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func areaVal(a *float64) string {
	if a == nil {
		return ""
	}
	return fmt.Sprintf("%s m²", strconv.FormatFloat(*a, 'f', -1, 64))
}
