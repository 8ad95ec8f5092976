package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/database"
)

var testDB *database.DB

// setupTestDB connects to TEST_DATABASE_URL, applies the schema and empties
// every table. Tests are skipped when the variable is unset.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	if testDB == nil {
		db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolConfig{MaxConns: 4, MinConns: 1})
		if err != nil {
			t.Fatalf("failed to connect to test database: %v", err)
		}
		if err := applySchema(ctx, db); err != nil {
			t.Fatalf("failed to apply schema: %v", err)
		}
		testDB = db
	}

	if err := truncateAllTables(ctx, testDB); err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
	return testDB
}

func applySchema(ctx context.Context, db *database.DB) error {
	_, file, _, _ := runtime.Caller(0)
	path := filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "migrations", "0001_init.sql")
	sql, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, string(sql))
	return err
}

func truncateAllTables(ctx context.Context, db *database.DB) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"adjustments",
		"employees",
		"refresh_tokens",
		"managers",
	}

	for _, table := range tables {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}
