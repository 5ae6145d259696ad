package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates the database with initial development data.
// It creates a demo company and a default admin user if none exist.
// The admin will be prompted to set up 2FA on first login.
func Seed(db *sql.DB) error {
	// Check if any users exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	var companyID string
	err := db.QueryRow(`
		INSERT INTO companies (name, site_url, email)
		VALUES ($1, $2, $3)
		RETURNING id
	`, "Imobiliária Demo", "https://demo.imoguru.local", "contato@demo.imoguru.local").Scan(&companyID)
	if err != nil {
		return fmt.Errorf("seed insert company: %w", err)
	}

	// Hash the default admin password.
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	// Insert default admin user. 2FA is not enabled — they must set it up
	// on first login.
	_, err = db.Exec(`
		INSERT INTO users (company_id, email, password_hash, display_name, role, totp_enabled)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, companyID, "admin@imoguru.local", string(hash), "Admin", "admin", false)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	slog.Info("database seeded with demo company and admin user",
		"email", "admin@imoguru.local",
		"password", "admin",
	)

	return nil
}
