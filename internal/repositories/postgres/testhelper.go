package postgres

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/asakaida/banken/internal/infrastructure/config"
	"github.com/asakaida/banken/internal/infrastructure/database"
	_ "github.com/lib/pq"
)

// associationTables lists every table the stores in this package touch.
var associationTables = []string{"user_roles", "role_permissions", "service_roles"}

// SetupTestDB connects to the test database from .env.test, applies the
// schema and clears the association tables so rows left by a crashed
// earlier run cannot leak into this one. The test is skipped when no
// test database is configured or reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	if err := config.InitConfig("test"); err != nil {
		t.Fatalf("Failed to init config: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Skipf("Test database not configured: %v", err)
	}

	pg, err := database.NewPostgres(&cfg.Database)
	if err != nil {
		t.Skipf("Test database not reachable: %v", err)
	}

	if err := pg.RunMigrations("../../../internal/infrastructure/database/migrations/postgres"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	truncateTables(t, pg.DB)
	return pg.DB
}

// CleanupTestDB clears the association tables and closes the connection.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	t.Helper()

	truncateTables(t, db)
	if err := db.Close(); err != nil {
		t.Logf("Warning: failed to close database: %v", err)
	}
}

func truncateTables(t *testing.T, db *sql.DB) {
	t.Helper()

	query := "TRUNCATE " + strings.Join(associationTables, ", ")
	if _, err := db.Exec(query); err != nil {
		t.Logf("Warning: failed to truncate association tables: %v", err)
	}
}
