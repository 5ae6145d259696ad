// Package store provides database access methods for all ImoGuru
// entities. Each store struct wraps a *sql.DB and exposes typed query methods.
package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"imoguru/internal/models"
)

// PropertyStore handles all property-related database operations.
// Every query is scoped by company — tenants never see each other's rows.
type PropertyStore struct {
	db *sql.DB
}

// NewPropertyStore creates a new PropertyStore with the given database connection.
func NewPropertyStore(db *sql.DB) *PropertyStore {
	return &PropertyStore{db: db}
}

// propertyColumns lists the columns selected in property queries.
const propertyColumns = `id, company_id, code, title, purpose, status, property_type, description,
	sale_price, rental_price, condo_price, iptu_price,
	total_area, usable_area, land_area,
	bedrooms, suites, bathrooms, parking_spaces, floors, year_built,
	street, number, complement, neighborhood, city, state, zip_code, condominium,
	owner_name, owner_phone, owner_email, video_url, notes,
	created_at, updated_at`

// scanProperty scans a property row from the result set.
func scanProperty(scanner interface{ Scan(...any) error }) (*models.Property, error) {
	var p models.Property
	err := scanner.Scan(
		&p.ID, &p.CompanyID, &p.Code, &p.Title, &p.Purpose, &p.Status, &p.PropertyType, &p.Description,
		&p.SalePrice, &p.RentalPrice, &p.CondoPrice, &p.IPTUPrice,
		&p.TotalArea, &p.UsableArea, &p.LandArea,
		&p.Bedrooms, &p.Suites, &p.Bathrooms, &p.ParkingSpaces, &p.Floors, &p.YearBuilt,
		&p.Street, &p.Number, &p.Complement, &p.Neighborhood, &p.City, &p.State, &p.ZipCode, &p.Condominium,
		&p.OwnerName, &p.OwnerPhone, &p.OwnerEmail, &p.VideoURL, &p.Notes,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns a page of the company's properties, newest first.
func (s *PropertyStore) List(companyID uuid.UUID, limit, offset int) ([]models.Property, error) {
	rows, err := s.db.Query(`
		SELECT `+propertyColumns+`
		FROM properties
		WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	var items []models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByID retrieves a company's property by its UUID. Returns nil if not found.
func (s *PropertyStore) FindByID(companyID, id uuid.UUID) (*models.Property, error) {
	p, err := scanProperty(s.db.QueryRow(`
		SELECT `+propertyColumns+`
		FROM properties WHERE company_id = $1 AND id = $2
	`, companyID, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find property by id: %w", err)
	}
	return p, nil
}

// FindByCode retrieves a company's property by its listing code.
// Returns nil if not found.
func (s *PropertyStore) FindByCode(companyID uuid.UUID, code string) (*models.Property, error) {
	p, err := scanProperty(s.db.QueryRow(`
		SELECT `+propertyColumns+`
		FROM properties WHERE company_id = $1 AND code = $2
	`, companyID, code))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find property by code: %w", err)
	}
	return p, nil
}

// Create inserts a new property and returns it with the generated ID.
func (s *PropertyStore) Create(p *models.Property) (*models.Property, error) {
	created, err := scanProperty(s.db.QueryRow(`
		INSERT INTO properties (company_id, code, title, purpose, status, property_type, description,
			sale_price, rental_price, condo_price, iptu_price,
			total_area, usable_area, land_area,
			bedrooms, suites, bathrooms, parking_spaces, floors, year_built,
			street, number, complement, neighborhood, city, state, zip_code, condominium,
			owner_name, owner_phone, owner_email, video_url, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
			$18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33)
		RETURNING `+propertyColumns,
		p.CompanyID, p.Code, p.Title, p.Purpose, p.Status, p.PropertyType, p.Description,
		p.SalePrice, p.RentalPrice, p.CondoPrice, p.IPTUPrice,
		p.TotalArea, p.UsableArea, p.LandArea,
		p.Bedrooms, p.Suites, p.Bathrooms, p.ParkingSpaces, p.Floors, p.YearBuilt,
		p.Street, p.Number, p.Complement, p.Neighborhood, p.City, p.State, p.ZipCode, p.Condominium,
		p.OwnerName, p.OwnerPhone, p.OwnerEmail, p.VideoURL, p.Notes,
	))
	if err != nil {
		return nil, fmt.Errorf("create property: %w", err)
	}
	return created, nil
}

// Update modifies an existing property.
func (s *PropertyStore) Update(p *models.Property) error {
	_, err := s.db.Exec(`
		UPDATE properties SET
			code = $1, title = $2, purpose = $3, status = $4, property_type = $5, description = $6,
			sale_price = $7, rental_price = $8, condo_price = $9, iptu_price = $10,
			total_area = $11, usable_area = $12, land_area = $13,
			bedrooms = $14, suites = $15, bathrooms = $16, parking_spaces = $17, floors = $18, year_built = $19,
			street = $20, number = $21, complement = $22, neighborhood = $23, city = $24,
			state = $25, zip_code = $26, condominium = $27,
			owner_name = $28, owner_phone = $29, owner_email = $30, video_url = $31, notes = $32,
			updated_at = NOW()
		WHERE company_id = $33 AND id = $34
	`,
		p.Code, p.Title, p.Purpose, p.Status, p.PropertyType, p.Description,
		p.SalePrice, p.RentalPrice, p.CondoPrice, p.IPTUPrice,
		p.TotalArea, p.UsableArea, p.LandArea,
		p.Bedrooms, p.Suites, p.Bathrooms, p.ParkingSpaces, p.Floors, p.YearBuilt,
		p.Street, p.Number, p.Complement, p.Neighborhood, p.City,
		p.State, p.ZipCode, p.Condominium,
		p.OwnerName, p.OwnerPhone, p.OwnerEmail, p.VideoURL, p.Notes,
		p.CompanyID, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}
	return nil
}

// Delete removes a company's property by ID. Images, documents, and
// share counters cascade.
func (s *PropertyStore) Delete(companyID, id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM properties WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	return nil
}

// CountByStatus returns the number of the company's properties per status.
func (s *PropertyStore) CountByStatus(companyID uuid.UUID) (map[models.PropertyStatus]int, error) {
	rows, err := s.db.Query(`
		SELECT status, COUNT(*) FROM properties WHERE company_id = $1 GROUP BY status
	`, companyID)
	if err != nil {
		return nil, fmt.Errorf("count properties by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.PropertyStatus]int)
	for rows.Next() {
		var status models.PropertyStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

// CountByPurpose returns the number of the company's properties per purpose.
func (s *PropertyStore) CountByPurpose(companyID uuid.UUID) (map[models.Purpose]int, error) {
	rows, err := s.db.Query(`
		SELECT purpose, COUNT(*) FROM properties WHERE company_id = $1 GROUP BY purpose
	`, companyID)
	if err != nil {
		return nil, fmt.Errorf("count properties by purpose: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.Purpose]int)
	for rows.Next() {
		var purpose models.Purpose
		var n int
		if err := rows.Scan(&purpose, &n); err != nil {
			return nil, fmt.Errorf("scan purpose count: %w", err)
		}
		counts[purpose] = n
	}
	return counts, rows.Err()
}
