package testdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/lib/pq"

	"github.com/selivandex/stock-sentiment/internal/adapters/database"
)

// TestDB wraps a migrated test database that is emptied after each test
type TestDB struct {
	DB *database.DB
}

// Setup connects to TEST_DATABASE_URL and applies migrations.
// Tests are skipped when no test database is configured.
func Setup(t *testing.T) *TestDB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}

	db, err := database.Connect(context.Background(), dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := database.RunMigrations(db.Conn(), migrationsPath(t)); err != nil {
		db.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	testDB := &TestDB{DB: db}
	testDB.Truncate(t)

	t.Cleanup(func() {
		testDB.Teardown(t)
	})

	return testDB
}

// Teardown removes test data and closes connection
func (tdb *TestDB) Teardown(t *testing.T) {
	t.Helper()

	if tdb.DB == nil {
		return
	}
	tdb.Truncate(t)
	if err := tdb.DB.Close(); err != nil {
		t.Logf("warning: failed to close database: %v", err)
	}
}

// Truncate empties every table written by the repository
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()

	if _, err := tdb.DB.Conn().Exec(`TRUNCATE scored_headlines, daily_sentiment`); err != nil {
		t.Fatalf("failed to truncate test tables: %v", err)
	}
}

// CountRows returns the number of rows in table
func (tdb *TestDB) CountRows(t *testing.T, table string) int {
	t.Helper()

	var count int
	if err := tdb.DB.DB().Get(&count, "SELECT COUNT(*) FROM "+table); err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	return count
}

// migrationsPath walks up from the working directory to the module root
func migrationsPath(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, "migrations")
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("module root not found")
		}
		dir = parent
	}
}
