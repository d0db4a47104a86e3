// Package testutil provides test helpers for setting up seeded ledger
// databases with proper isolation and cleanup.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ledgerlite/ledgerlite/internal/model"
	"github.com/ledgerlite/ledgerlite/internal/service"
	"github.com/ledgerlite/ledgerlite/internal/storage"
)

// TestDB bundles a migrated storage instance with the entities seeded into
// it.
type TestDB struct {
	Storage    service.Storage
	User       *model.User
	Categories map[string]*model.Category
	t          *testing.T
}

// SeedCategory describes a category to create for the test user.
type SeedCategory struct {
	Name string
	Type model.CategoryType
}

// SetupTestDB creates a migrated SQLite database in a temp directory,
// registers one user, and creates the given categories for them. Cleanup is
// registered automatically.
func SetupTestDB(t *testing.T, seed ...SeedCategory) *TestDB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	user, err := store.CreateUser(ctx, "Test User", "test@example.com", "hash:test", "tester")
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	cats := make(map[string]*model.Category, len(seed))
	for _, sc := range seed {
		cat, err := store.CreateCategory(ctx, user.ID, sc.Name, sc.Type)
		if err != nil {
			t.Fatalf("failed to seed category %q: %v", sc.Name, err)
		}
		cats[sc.Name] = cat
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestDB{
		Storage:    store,
		User:       user,
		Categories: cats,
		t:          t,
	}
}

// MustCategory returns the seeded category with the given name or fails the
// test.
func (db *TestDB) MustCategory(name string) *model.Category {
	db.t.Helper()
	cat, ok := db.Categories[name]
	if !ok {
		db.t.Fatalf("category %q was not seeded", name)
	}
	return cat
}
