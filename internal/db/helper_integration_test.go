package db

import (
	"context"
	"testing"
)

// withTx gives each test a Repository bound to its own transaction, rolled
// back on cleanup so the shared test database stays clean.
func withTx(t *testing.T) (context.Context, *Repository) {
	t.Helper()
	ctx := context.Background()

	tx, err := testDB.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	return ctx, New(tx)
}
