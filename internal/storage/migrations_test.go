package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/Veraticus/monthly-budget/internal/common"
)

func TestMigrate_ReachesExpectedVersion(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	version, err := store.SchemaVersion(context.Background())
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if version != ExpectedSchemaVersion {
		t.Errorf("schema version = %d, want %d", version, ExpectedSchemaVersion)
	}
}

func TestMigrate_IsIdempotent(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	if err := store.Set(ctx, "expenses", "[]"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate failed: %v", err)
	}

	value, ok, err := store.Get(ctx, "expenses")
	if err != nil || !ok || value != "[]" {
		t.Errorf("data lost across re-migration: %q, %v, %v", value, ok, err)
	}
}

func TestMigrate_CreatesTables(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	for _, table := range []string{"kv", "users"} {
		var count int
		err := store.db.QueryRow(
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&count)
		if err != nil {
			t.Fatalf("Failed to check table %s: %v", table, err)
		}
		if count != 1 {
			t.Errorf("table %s was not created", table)
		}
	}
}

func TestMigrate_RejectsNewerSchema(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := store.db.ExecContext(ctx, "PRAGMA user_version = 99"); err != nil {
		t.Fatalf("failed to set schema version: %v", err)
	}

	err := store.Migrate(ctx)
	if !errors.Is(err, common.ErrDatabaseCorrupted) {
		t.Errorf("Migrate error = %v, want ErrDatabaseCorrupted", err)
	}
}
