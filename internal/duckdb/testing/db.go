// Package duckdbtesting opens schema-initialized DuckDB databases for tests.
package duckdbtesting

import (
	"database/sql"
	"time"

	"annostat/internal/duckdb"
	"annostat/internal/testutil"
)

const defaultTimeout = 2 * time.Second

// Open returns an in-memory database with the history schema applied. The
// connection closes when the test ends.
func Open(t testutil.TB) *sql.DB {
	t.Helper()
	ctx := testutil.Context(t, defaultTimeout)
	db, err := duckdb.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open duckdb: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}
