// Package testutil provides test utilities for the monthly-budget project:
// isolated SQLite databases and fluent builders for budget fixtures.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/monthly-budget/internal/model"
	"github.com/Veraticus/monthly-budget/internal/storage"
	"github.com/Veraticus/monthly-budget/internal/testutil/budgets"
)

// TestDB represents a test database with associated test utilities.
type TestDB struct {
	Storage *storage.SQLiteStorage
	t       *testing.T
	Budget  model.BudgetState
}

// SetupTestDB creates a new in-memory test database.
// It automatically handles migrations and cleanup.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		_ = store.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestDB{
		Storage: store,
		t:       t,
	}
}

// SetupTestDBWithBudget creates a test database seeded with the budget the
// configure function builds.
//
// Example:
//
//	db := testutil.SetupTestDBWithBudget(t, func(b *budgets.Builder) *budgets.Builder {
//		return b.WithSalary("2000").WithExpense("Rent", "800")
//	})
func SetupTestDBWithBudget(t *testing.T, configure func(*budgets.Builder) *budgets.Builder) *TestDB {
	t.Helper()

	db := SetupTestDB(t)

	builder := budgets.NewBuilder()
	if configure != nil {
		builder = configure(builder)
	}

	state, err := builder.Seed(context.Background(), db.Storage)
	if err != nil {
		t.Fatalf("failed to seed budget: %v", err)
	}
	db.Budget = state

	return db
}

// MustGet returns the raw stored value of key or fails the test.
func (db *TestDB) MustGet(key string) string {
	db.t.Helper()
	value, ok, err := db.Storage.Get(context.Background(), key)
	if err != nil {
		db.t.Fatalf("failed to read %q: %v", key, err)
	}
	if !ok {
		db.t.Fatalf("key %q not stored", key)
	}
	return value
}
