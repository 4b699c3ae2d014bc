// Package sqlite implements storage.Provider on a single embedded SQLite
// database file.
package sqlite

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"github.com/julianstephens/quartr/internal/constants"
	"github.com/julianstephens/quartr/internal/logger"
	"github.com/julianstephens/quartr/internal/migration"
	"github.com/julianstephens/quartr/migrations"
)

type Store struct {
	path string
	db   *sql.DB
	lock *flock.Flock
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

// Init creates the database file, applies all migrations, and leaves the
// store ready for use. Safe to run against an already-initialized database.
func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.acquireLock(); err != nil {
		return err
	}

	if err := s.open(); err != nil {
		return err
	}

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	s.ensureColumns()
	return nil
}

// Load opens an existing database. It fails if the store was never
// initialized, and validates that the schema is not newer than the binary.
func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'quartr init' first")
	}

	if err := s.acquireLock(); err != nil {
		return err
	}

	if err := s.open(); err != nil {
		return err
	}

	if err := s.validateSchemaVersion(); err != nil {
		return err
	}

	s.ensureColumns()
	return nil
}

func (s *Store) Close() error {
	if s.lock != nil {
		_ = s.lock.Unlock()
		s.lock = nil
	}
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

// acquireLock takes the single-writer lock file next to the database.
// The store assumes exactly one process mutates the file at a time; a held
// lock means another quartr instance is running.
func (s *Store) acquireLock() error {
	if s.lock != nil {
		return nil
	}

	lock := flock.New(filepath.Join(filepath.Dir(s.path), constants.LockfileName))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire database lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("database is locked by another quartr process")
	}
	s.lock = lock
	return nil
}

func (s *Store) open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// WAL for durability and concurrent readers; foreign keys are off by
	// default in SQLite and the cascade deletes depend on them.
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	s.db = db
	return nil
}

// ready guards repository methods against use before Init/Load
func (s *Store) ready() error {
	if s.db == nil {
		return fmt.Errorf("store not initialized")
	}
	return nil
}

func (s *Store) migrationFS() (fs.FS, error) {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return subFS, nil
}

func (s *Store) runMigrations() error {
	subFS, err := s.migrationFS()
	if err != nil {
		return err
	}

	runner := migration.NewRunner(s.db, subFS)
	applied, err := runner.Apply(func(msg string) {
		logger.Info(msg)
	})
	if err != nil {
		return err
	}
	if applied > 0 {
		logger.Info("Database migrated", "applied", applied)
	}
	return nil
}

func (s *Store) validateSchemaVersion() error {
	subFS, err := s.migrationFS()
	if err != nil {
		return err
	}
	return migration.NewRunner(s.db, subFS).ValidateVersion()
}

// optionalColumns are additive columns that later revisions introduced.
// They are reconciled on every open by introspecting the live schema, so
// the upgrade is idempotent and order-independent.
var optionalColumns = []struct {
	table  string
	column string
	ddl    string
}{
	{"weekly_actions", "due_date", "ALTER TABLE weekly_actions ADD COLUMN due_date TEXT"},
	{"weekly_actions", "priority", "ALTER TABLE weekly_actions ADD COLUMN priority TEXT NOT NULL DEFAULT 'none'"},
	{"projects", "note", "ALTER TABLE projects ADD COLUMN note TEXT"},
}

// ensureColumns adds any missing optional column. A failure for a single
// column is logged and skipped rather than failing the open: the rest of the
// application degrades gracefully without it.
func (s *Store) ensureColumns() {
	for _, c := range optionalColumns {
		exists, err := s.columnExists(c.table, c.column)
		if err != nil {
			logger.Warn("Failed to inspect column", "table", c.table, "column", c.column, "error", err)
			continue
		}
		if exists {
			continue
		}
		if _, err := s.db.Exec(c.ddl); err != nil {
			logger.Warn("Failed to add column", "table", c.table, "column", c.column, "error", err)
			continue
		}
		logger.Info("Added column", "table", c.table, "column", c.column)
	}
}

// columnExists introspects the table metadata rather than probing with an
// ALTER and catching the failure.
func (s *Store) columnExists(table, column string) (bool, error) {
	rows, err := s.db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid        int
			name       string
			colType    string
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &defaultVal, &pk); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

func (s *Store) GetConfigPath() string {
	return s.path
}

// GetDB returns the underlying database connection, or nil before Init/Load.
func (s *Store) GetDB() *sql.DB {
	return s.db
}
