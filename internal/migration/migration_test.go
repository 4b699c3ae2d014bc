package migration

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestApplyRunsInOrder(t *testing.T) {
	db := newTestDB(t)
	fsys := fstest.MapFS{
		"002_add_column.sql": {Data: []byte("ALTER TABLE items ADD COLUMN name TEXT")},
		"001_create.sql":     {Data: []byte("CREATE TABLE items (id INTEGER PRIMARY KEY)")},
	}

	runner := NewRunner(db, fsys)
	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 2 {
		t.Errorf("version = %d, want 2", version)
	}

	// The column from 002 only exists if 001 ran first
	if _, err := db.Exec("INSERT INTO items (name) VALUES ('x')"); err != nil {
		t.Errorf("schema incomplete after Apply: %v", err)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	fsys := fstest.MapFS{
		"001_create.sql": {Data: []byte("CREATE TABLE items (id INTEGER PRIMARY KEY)")},
	}

	runner := NewRunner(db, fsys)
	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("first Apply failed: %v", err)
	}

	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("second Apply failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("second Apply ran %d migrations, want 0", applied)
	}
}

func TestApplyRollsBackFailedMigration(t *testing.T) {
	db := newTestDB(t)
	fsys := fstest.MapFS{
		"001_create.sql": {Data: []byte("CREATE TABLE items (id INTEGER PRIMARY KEY)")},
		"002_broken.sql": {Data: []byte("THIS IS NOT SQL")},
	}

	runner := NewRunner(db, fsys)
	applied, err := runner.Apply(nil)
	if err == nil {
		t.Fatal("Apply should fail on broken SQL")
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1 before the failure", applied)
	}

	// The failed migration must not bump the version
	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 1 {
		t.Errorf("version = %d, want 1 after rollback", version)
	}
}

func TestLoadRejectsBadFilenames(t *testing.T) {
	db := newTestDB(t)

	tests := []struct {
		name string
		file string
	}{
		{"no version prefix", "create.sql"},
		{"non-numeric version", "abc_create.sql"},
		{"zero version", "000_create.sql"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{tt.file: {Data: []byte("SELECT 1")}}
			if _, err := NewRunner(db, fsys).Load(); err == nil {
				t.Errorf("Load should reject %q", tt.file)
			}
		})
	}
}

func TestLoadRejectsDuplicateVersions(t *testing.T) {
	db := newTestDB(t)
	fsys := fstest.MapFS{
		"001_first.sql":  {Data: []byte("SELECT 1")},
		"001_second.sql": {Data: []byte("SELECT 1")},
	}

	if _, err := NewRunner(db, fsys).Load(); err == nil {
		t.Error("Load should reject duplicate versions")
	}
}

func TestLoadIgnoresNonSQLFiles(t *testing.T) {
	db := newTestDB(t)
	fsys := fstest.MapFS{
		"001_create.sql": {Data: []byte("CREATE TABLE items (id INTEGER PRIMARY KEY)")},
		"README.md":      {Data: []byte("not a migration")},
	}

	migrations, err := NewRunner(db, fsys).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(migrations) != 1 {
		t.Errorf("Load returned %d migrations, want 1", len(migrations))
	}
}

func TestValidateVersionRejectsNewerSchema(t *testing.T) {
	db := newTestDB(t)
	fsys := fstest.MapFS{
		"001_create.sql": {Data: []byte("CREATE TABLE items (id INTEGER PRIMARY KEY)")},
	}

	runner := NewRunner(db, fsys)
	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("failed to fake future version: %v", err)
	}

	err := runner.ValidateVersion()
	if err == nil {
		t.Fatal("ValidateVersion should reject a schema from the future")
	}
	if !strings.Contains(err.Error(), "newer") {
		t.Errorf("error = %q, want mention of newer schema", err)
	}
}

func TestCurrentVersionFreshDatabase(t *testing.T) {
	db := newTestDB(t)

	version, err := NewRunner(db, fstest.MapFS{}).CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("version = %d, want 0 for a fresh database", version)
	}
}
