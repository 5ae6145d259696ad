// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"imoguru/internal/models"
)

// TemplateStore handles share template database operations. Templates
// are archived (soft delete) rather than destroyed.
type TemplateStore struct {
	db *sql.DB
}

// NewTemplateStore creates a new TemplateStore with the given database connection.
func NewTemplateStore(db *sql.DB) *TemplateStore {
	return &TemplateStore{db: db}
}

const templateColumns = `id, company_id, name, platform, message_format, fields,
	include_images, max_images, image_columns, image_placement,
	archived_at, created_at, updated_at`

func scanTemplate(scanner interface{ Scan(...any) error }) (*models.ShareTemplate, error) {
	var t models.ShareTemplate
	var fields string
	err := scanner.Scan(
		&t.ID, &t.CompanyID, &t.Name, &t.Platform, &t.MessageFormat, &fields,
		&t.IncludeImages, &t.MaxImages, &t.ImageColumns, &t.Placement,
		&t.ArchivedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.SetFieldsColumn(fields)
	return &t, nil
}

// List returns the company's active (non-archived) templates, optionally
// filtered by platform. Pass an empty platform for all.
func (s *TemplateStore) List(companyID uuid.UUID, platform models.Platform) ([]models.ShareTemplate, error) {
	rows, err := s.db.Query(`
		SELECT `+templateColumns+`
		FROM share_templates
		WHERE company_id = $1
		  AND archived_at IS NULL
		  AND ($2 = '' OR platform = $2)
		ORDER BY name ASC
	`, companyID, platform)
	if err != nil {
		return nil, fmt.Errorf("list share templates: %w", err)
	}
	defer rows.Close()

	var items []models.ShareTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan share template: %w", err)
		}
		items = append(items, *t)
	}
	return items, rows.Err()
}

// FindByID retrieves a company's template by its UUID, archived or not.
// Returns nil if not found.
func (s *TemplateStore) FindByID(companyID, id uuid.UUID) (*models.ShareTemplate, error) {
	t, err := scanTemplate(s.db.QueryRow(`
		SELECT `+templateColumns+`
		FROM share_templates WHERE company_id = $1 AND id = $2
	`, companyID, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find share template: %w", err)
	}
	return t, nil
}

// Create inserts a new template and returns it with the generated ID.
func (s *TemplateStore) Create(t *models.ShareTemplate) (*models.ShareTemplate, error) {
	created, err := scanTemplate(s.db.QueryRow(`
		INSERT INTO share_templates (company_id, name, platform, message_format,
			fields, include_images, max_images, image_columns, image_placement)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+templateColumns,
		t.CompanyID, t.Name, t.Platform, t.MessageFormat,
		t.FieldsColumn(), t.IncludeImages, t.MaxImages, t.ImageColumns, t.Placement,
	))
	if err != nil {
		return nil, fmt.Errorf("create share template: %w", err)
	}
	return created, nil
}

// Update modifies an existing template.
func (s *TemplateStore) Update(t *models.ShareTemplate) error {
	_, err := s.db.Exec(`
		UPDATE share_templates SET
			name = $1, platform = $2, message_format = $3, fields = $4,
			include_images = $5, max_images = $6, image_columns = $7,
			image_placement = $8, updated_at = NOW()
		WHERE company_id = $9 AND id = $10
	`, t.Name, t.Platform, t.MessageFormat, t.FieldsColumn(),
		t.IncludeImages, t.MaxImages, t.ImageColumns, t.Placement,
		t.CompanyID, t.ID,
	)
	if err != nil {
		return fmt.Errorf("update share template: %w", err)
	}
	return nil
}

// Archive soft-deletes a template. Archived templates stay readable so
// past share events keep a valid reference.
func (s *TemplateStore) Archive(companyID, id uuid.UUID) error {
	_, err := s.db.Exec(`
		UPDATE share_templates SET archived_at = $1, updated_at = NOW()
		WHERE company_id = $2 AND id = $3 AND archived_at IS NULL
	`, time.Now(), companyID, id)
	if err != nil {
		return fmt.Errorf("archive share template: %w", err)
	}
	return nil
}
