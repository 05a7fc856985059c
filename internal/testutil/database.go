package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/limit-gauge/internal/model"
	"github.com/Veraticus/limit-gauge/internal/storage"
)

// TestDB is a design history seeded for a test.
type TestDB struct {
	Storage *storage.SQLiteStorage
	t       *testing.T
	Designs []*model.Design
}

// TestDBOptions configures SetupTestDBWithOptions.
type TestDBOptions struct {
	CustomSetup    func(context.Context, *storage.SQLiteStorage) error
	Path           string
	Parts          []Part
	SkipMigrations bool
}

// SetupTestDB creates a migrated design history in a temporary directory
// and saves one design per part, in order.
//
// Example:
//
//	db := testutil.SetupTestDB(t, testutil.ShaftIT6, testutil.HoleIT6)
//	design := db.MustGetDesign(db.Designs[0].ID)
func SetupTestDB(t *testing.T, parts ...Part) *TestDB {
	t.Helper()
	return SetupTestDBWithOptions(t, TestDBOptions{Parts: parts})
}

// SetupTestDBWithOptions creates a design history with custom options. An
// empty Path uses a file in a temporary directory.
func SetupTestDBWithOptions(t *testing.T, opts TestDBOptions) *TestDB {
	t.Helper()

	path := opts.Path
	if path == "" {
		path = filepath.Join(t.TempDir(), "gauge.db")
	}

	store, err := storage.NewSQLiteStorage(path)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	ctx := context.Background()
	if !opts.SkipMigrations {
		if err := store.Migrate(ctx); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}
	}

	db := &TestDB{Storage: store, t: t}
	for _, p := range opts.Parts {
		design, err := store.SaveDesign(ctx, MustCompute(t, p))
		if err != nil {
			t.Fatalf("failed to seed design %+v: %v", p, err)
		}
		db.Designs = append(db.Designs, design)
	}

	if opts.CustomSetup != nil {
		if err := opts.CustomSetup(ctx, store); err != nil {
			t.Fatalf("custom setup failed: %v", err)
		}
	}

	return db
}

// MustGetDesign returns the stored design with id or fails the test.
func (db *TestDB) MustGetDesign(id string) *model.Design {
	db.t.Helper()
	design, err := db.Storage.GetDesign(context.Background(), id)
	if err != nil {
		db.t.Fatalf("failed to get design %s: %v", id, err)
	}
	return design
}
