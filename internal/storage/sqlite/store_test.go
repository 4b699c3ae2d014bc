package sqlite

import (
	"database/sql"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/quartr/migrations"
)

// newTestStore initializes a fresh store in a per-test directory
func newTestStore(t *testing.T) *Store {
	t.Helper()

	store := NewStore(filepath.Join(t.TempDir(), "quartr.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInitIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "quartr.db")

	store := NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("first Init failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}

	store = NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	defer store.Close()

	for _, table := range []string{"projects", "weekly_actions", "monthly_plans", "cycles"} {
		var count int
		err := store.db.QueryRow(
			"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&count)
		if err != nil {
			t.Fatalf("failed to check table %s: %v", table, err)
		}
		if count != 1 {
			t.Errorf("table %s missing after re-init", table)
		}
	}
}

func TestLoadRequiresInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "quartr.db"))
	err := store.Load()
	if err == nil {
		store.Close()
		t.Fatal("Load() on a nonexistent database should fail")
	}
	if !strings.Contains(err.Error(), "not initialized") {
		t.Errorf("Load() error = %q, want mention of initialization", err)
	}
}

func TestLoadAddsOptionalColumnsToLegacySchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "quartr.db")

	// Build a database at the base schema by hand, without the columns
	// later revisions introduced.
	baseSQL, err := fs.ReadFile(migrations.FS, "sqlite/001_init.sql")
	if err != nil {
		t.Fatalf("failed to read base schema: %v", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if _, err := db.Exec(string(baseSQL)); err != nil {
		t.Fatalf("failed to apply base schema: %v", err)
	}
	if _, err := db.Exec("CREATE TABLE schema_version (version INTEGER PRIMARY KEY)"); err != nil {
		t.Fatalf("failed to create version table: %v", err)
	}
	if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (1)"); err != nil {
		t.Fatalf("failed to set schema version: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("failed to close database: %v", err)
	}

	store := NewStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer store.Close()

	for _, c := range optionalColumns {
		exists, err := store.columnExists(c.table, c.column)
		if err != nil {
			t.Fatalf("failed to inspect %s.%s: %v", c.table, c.column, err)
		}
		if !exists {
			t.Errorf("column %s.%s missing after Load", c.table, c.column)
		}
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "quartr.db")

	store := NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	store.Close()

	for i := 0; i < 3; i++ {
		store = NewStore(dbPath)
		if err := store.Load(); err != nil {
			t.Fatalf("Load #%d failed: %v", i+1, err)
		}
		store.Close()
	}
}

func TestSecondStoreCannotAcquireLock(t *testing.T) {
	store := newTestStore(t)

	other := NewStore(store.GetConfigPath())
	err := other.Load()
	if err == nil {
		other.Close()
		t.Fatal("Load() should fail while another store holds the lock")
	}
	if !strings.Contains(err.Error(), "locked") {
		t.Errorf("Load() error = %q, want lock error", err)
	}
}

func TestRepositoryMethodsFailBeforeOpen(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "quartr.db"))

	if _, err := store.GetProjects(2025, 1); err == nil {
		t.Error("GetProjects() should fail before Init/Load")
	}
	if _, err := store.GetCurrentCycle(); err == nil {
		t.Error("GetCurrentCycle() should fail before Init/Load")
	}
	if err := store.DeleteAction(1); err == nil {
		t.Error("DeleteAction() should fail before Init/Load")
	}
}
