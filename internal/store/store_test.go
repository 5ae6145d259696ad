// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"imoguru/internal/database"
	"imoguru/internal/models"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "imoguru")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "imoguru")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testCompany creates a throwaway company and registers its cleanup.
// Properties, users, and templates hanging off it cascade on delete.
func testCompany(t *testing.T, db *sql.DB) uuid.UUID {
	t.Helper()

	companies := NewCompanyStore(db)
	c, err := companies.Create(&models.Company{Name: "Test Agency " + uuid.NewString()[:8]})
	if err != nil {
		t.Fatalf("create test company: %v", err)
	}

	t.Cleanup(func() {
		db.Exec("DELETE FROM companies WHERE id = $1", c.ID)
	})
	return c.ID
}

// testListing inserts a minimal property for the given company.
func testListing(t *testing.T, db *sql.DB, companyID uuid.UUID, code string) *models.Property {
	t.Helper()

	properties := NewPropertyStore(db)
	p, err := properties.Create(&models.Property{
		CompanyID: companyID,
		Code:      code,
		Title:     "Casa de teste " + code,
		Purpose:   models.PurposeSale,
		Status:    models.StatusAvailable,
	})
	if err != nil {
		t.Fatalf("create test property: %v", err)
	}
	return p
}
