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

// CompanyStore handles tenant company database operations.
type CompanyStore struct {
	db *sql.DB
}

// NewCompanyStore creates a new CompanyStore with the given database connection.
func NewCompanyStore(db *sql.DB) *CompanyStore {
	return &CompanyStore{db: db}
}

const companyColumns = `id, name, logo_url, site_url, phone, email, created_at, updated_at`

func scanCompany(scanner interface{ Scan(...any) error }) (*models.Company, error) {
	var c models.Company
	err := scanner.Scan(
		&c.ID, &c.Name, &c.LogoURL, &c.SiteURL, &c.Phone, &c.Email,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindByID retrieves a company by its UUID. Returns nil if not found.
func (s *CompanyStore) FindByID(id uuid.UUID) (*models.Company, error) {
	c, err := scanCompany(s.db.QueryRow(`
		SELECT `+companyColumns+` FROM companies WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find company by id: %w", err)
	}
	return c, nil
}

// Create inserts a new company and returns it with the generated ID.
func (s *CompanyStore) Create(c *models.Company) (*models.Company, error) {
	created, err := scanCompany(s.db.QueryRow(`
		INSERT INTO companies (name, logo_url, site_url, phone, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+companyColumns,
		c.Name, c.LogoURL, c.SiteURL, c.Phone, c.Email,
	))
	if err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}
	return created, nil
}

// Update modifies an existing company.
func (s *CompanyStore) Update(c *models.Company) error {
	_, err := s.db.Exec(`
		UPDATE companies SET
			name = $1, logo_url = $2, site_url = $3, phone = $4, email = $5,
			updated_at = NOW()
		WHERE id = $6
	`, c.Name, c.LogoURL, c.SiteURL, c.Phone, c.Email, c.ID)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}
