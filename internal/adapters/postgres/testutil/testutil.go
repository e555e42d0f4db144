// Package testutil provides a migrated database pool for postgres adapter
// tests. Tests calling OpenMigratedPool are skipped unless TEST_DATABASE_URL
// points at a disposable database.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/wanderlab/trip-budget-api/internal/adapters/postgres"
)

const schema = `
CREATE TABLE IF NOT EXISTS bookings (
	external_id         uuid PRIMARY KEY,
	booking_type        text NOT NULL,
	confirmation_number text NOT NULL,
	price               double precision,
	notes               text,
	details             jsonb NOT NULL,
	created_at          timestamptz NOT NULL
);
`

// OpenMigratedPool connects to TEST_DATABASE_URL, applies the schema, and
// truncates tables so each test starts clean. The pool is closed via t.Cleanup.
func OpenMigratedPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping postgres tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolOptions{MaxConns: 4})
	if err != nil {
		t.Fatalf("open test pool: %v", err)
	}
	t.Cleanup(pool.Close)

	if _, err := pool.Exec(ctx, schema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE bookings`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return pool
}
