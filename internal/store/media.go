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

// MediaStore handles property image and document database operations.
// The files themselves live in object storage; these rows are metadata.
type MediaStore struct {
	db *sql.DB
}

// NewMediaStore creates a new MediaStore with the given database connection.
func NewMediaStore(db *sql.DB) *MediaStore {
	return &MediaStore{db: db}
}

const imageColumns = `id, property_id, s3_key, thumb_s3_key, url, content_type,
	size_bytes, is_cover, display_order, created_at`

func scanImage(scanner interface{ Scan(...any) error }) (*models.PropertyImage, error) {
	var img models.PropertyImage
	err := scanner.Scan(
		&img.ID, &img.PropertyID, &img.S3Key, &img.ThumbS3Key, &img.URL,
		&img.ContentType, &img.SizeBytes, &img.IsCover, &img.DisplayOrder, &img.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

// ListImages returns a property's images ordered for display, cover first.
func (s *MediaStore) ListImages(propertyID uuid.UUID) ([]models.PropertyImage, error) {
	rows, err := s.db.Query(`
		SELECT `+imageColumns+`
		FROM property_images
		WHERE property_id = $1
		ORDER BY is_cover DESC, display_order ASC, created_at ASC
	`, propertyID)
	if err != nil {
		return nil, fmt.Errorf("list property images: %w", err)
	}
	defer rows.Close()

	var images []models.PropertyImage
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan property image: %w", err)
		}
		images = append(images, *img)
	}
	return images, rows.Err()
}

// CreateImage inserts a new image record. The first image of a property
// automatically becomes the cover.
func (s *MediaStore) CreateImage(img *models.PropertyImage) (*models.PropertyImage, error) {
	var existing int
	if err := s.db.QueryRow(
		`SELECT COUNT(*) FROM property_images WHERE property_id = $1`, img.PropertyID,
	).Scan(&existing); err != nil {
		return nil, fmt.Errorf("count property images: %w", err)
	}
	if existing == 0 {
		img.IsCover = true
	}
	img.DisplayOrder = existing

	created, err := scanImage(s.db.QueryRow(`
		INSERT INTO property_images (property_id, s3_key, thumb_s3_key, url,
			content_type, size_bytes, is_cover, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+imageColumns,
		img.PropertyID, img.S3Key, img.ThumbS3Key, img.URL,
		img.ContentType, img.SizeBytes, img.IsCover, img.DisplayOrder,
	))
	if err != nil {
		return nil, fmt.Errorf("create property image: %w", err)
	}
	return created, nil
}

// FindImage retrieves one image by ID. Returns nil if not found.
func (s *MediaStore) FindImage(id uuid.UUID) (*models.PropertyImage, error) {
	img, err := scanImage(s.db.QueryRow(`
		SELECT `+imageColumns+` FROM property_images WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find property image: %w", err)
	}
	return img, nil
}

// SetCover flags one image as the property's cover and clears the flag
// on every other image, in a single transaction.
func (s *MediaStore) SetCover(propertyID, imageID uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("set cover begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`UPDATE property_images SET is_cover = FALSE WHERE property_id = $1`, propertyID,
	); err != nil {
		return fmt.Errorf("clear cover: %w", err)
	}
	if _, err := tx.Exec(
		`UPDATE property_images SET is_cover = TRUE WHERE property_id = $1 AND id = $2`,
		propertyID, imageID,
	); err != nil {
		return fmt.Errorf("set cover: %w", err)
	}
	return tx.Commit()
}

// Reorder rewrites the display order of a property's images to match the
// given ID sequence. IDs not in the list keep their position relative order.
func (s *MediaStore) Reorder(propertyID uuid.UUID, orderedIDs []uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("reorder begin: %w", err)
	}
	defer tx.Rollback()

	for i, id := range orderedIDs {
		if _, err := tx.Exec(
			`UPDATE property_images SET display_order = $1 WHERE property_id = $2 AND id = $3`,
			i, propertyID, id,
		); err != nil {
			return fmt.Errorf("reorder image: %w", err)
		}
	}
	return tx.Commit()
}

// DeleteImage removes one image record.
func (s *MediaStore) DeleteImage(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM property_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete property image: %w", err)
	}
	return nil
}

const documentColumns = `id, property_id, original_name, s3_key, content_type,
	size_bytes, uploader_id, created_at`

func scanDocument(scanner interface{ Scan(...any) error }) (*models.PropertyDocument, error) {
	var d models.PropertyDocument
	err := scanner.Scan(
		&d.ID, &d.PropertyID, &d.OriginalName, &d.S3Key, &d.ContentType,
		&d.SizeBytes, &d.UploaderID, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListDocuments returns a property's documents, newest first.
func (s *MediaStore) ListDocuments(propertyID uuid.UUID) ([]models.PropertyDocument, error) {
	rows, err := s.db.Query(`
		SELECT `+documentColumns+`
		FROM property_documents
		WHERE property_id = $1
		ORDER BY created_at DESC
	`, propertyID)
	if err != nil {
		return nil, fmt.Errorf("list property documents: %w", err)
	}
	defer rows.Close()

	var docs []models.PropertyDocument
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan property document: %w", err)
		}
		docs = append(docs, *d)
	}
	return docs, rows.Err()
}

// CreateDocument inserts a new document record.
func (s *MediaStore) CreateDocument(d *models.PropertyDocument) (*models.PropertyDocument, error) {
	created, err := scanDocument(s.db.QueryRow(`
		INSERT INTO property_documents (property_id, original_name, s3_key,
			content_type, size_bytes, uploader_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+documentColumns,
		d.PropertyID, d.OriginalName, d.S3Key, d.ContentType, d.SizeBytes, d.UploaderID,
	))
	if err != nil {
		return nil, fmt.Errorf("create property document: %w", err)
	}
	return created, nil
}

// FindDocument retrieves one document by ID. Returns nil if not found.
func (s *MediaStore) FindDocument(id uuid.UUID) (*models.PropertyDocument, error) {
	d, err := scanDocument(s.db.QueryRow(`
		SELECT `+documentColumns+` FROM property_documents WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find property document: %w", err)
	}
	return d, nil
}

// DeleteDocument removes one document record.
func (s *MediaStore) DeleteDocument(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM property_documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete property document: %w", err)
	}
	return nil
}
