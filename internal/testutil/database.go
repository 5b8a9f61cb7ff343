package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the production migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Investment table
		CREATE TABLE IF NOT EXISTS investment (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			description TEXT,
			type VARCHAR(20) NOT NULL,
			fd_type VARCHAR(50),
			principal FLOAT NOT NULL,
			annual_rate FLOAT NOT NULL,
			tenure_months INTEGER NOT NULL,
			start_date DATE NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_investment_type ON investment(type);
		CREATE INDEX IF NOT EXISTS idx_investment_start_date ON investment(start_date);

		-- Portfolio snapshot table
		CREATE TABLE IF NOT EXISTS portfolio_snapshot (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			date VARCHAR(10) NOT NULL UNIQUE,
			total_invested FLOAT NOT NULL,
			total_maturity FLOAT NOT NULL,
			total_profit FLOAT NOT NULL,
			investment_count INTEGER NOT NULL,
			calculated_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_portfolio_snapshot_date ON portfolio_snapshot(date);
	`

	_, err := db.Exec(schema)
	return err
}

// CleanDatabase removes all rows from all tables. Useful when one test
// function exercises several scenarios against the same database.
//
// Example usage:
//
//	func TestMultipleThings(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // ... first scenario ...
//	    testutil.CleanDatabase(t, db)
//	    // ... second scenario ...
//	}
func CleanDatabase(t *testing.T, db *sql.DB) {
	t.Helper()

	tables := []string{
		"portfolio_snapshot",
		"investment",
	}

	for _, table := range tables {
		query := "DELETE FROM " + table
		if _, err := db.Exec(query); err != nil {
			t.Fatalf("Failed to clean table %s: %v", table, err)
		}
	}
}

// CountRows returns the number of rows in the given table.
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var count int
	query := "SELECT COUNT(*) FROM " + table
	err := db.QueryRow(query).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}

	return count
}

// AssertRowCount fails the test if the table does not hold exactly the
// expected number of rows.
func AssertRowCount(t *testing.T, db *sql.DB, table string, expected int) {
	t.Helper()

	actual := CountRows(t, db, table)
	if actual != expected {
		t.Errorf("Expected %d rows in %s, got %d", expected, table, actual)
	}
}
