// Package backup manages timestamped copies of the database file with a
// fixed retention window.
package backup

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/quartr/internal/constants"
	"github.com/julianstephens/quartr/internal/logger"
)

const timestampFormat = "20060102-150405"

// Info describes one backup file
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles backup operations for one database file
type Manager struct {
	dbPath    string
	backupDir string
}

// NewManager creates a backup manager for the given database path
func NewManager(dbPath string) *Manager {
	return &Manager{
		dbPath:    dbPath,
		backupDir: filepath.Join(filepath.Dir(dbPath), constants.BackupDirName),
	}
}

// BackupDir returns the backup directory path
func (m *Manager) BackupDir() string {
	return m.backupDir
}

// Create writes a new backup and rotates old ones past the retention limit.
// Returns the path of the created backup.
func (m *Manager) Create() (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}
	if _, err := os.Stat(m.dbPath); os.IsNotExist(err) {
		return "", fmt.Errorf("database does not exist: %s", m.dbPath)
	}

	name := constants.BackupFilePrefix + time.Now().Format(timestampFormat) + constants.BackupFileSuffix
	dest := filepath.Join(m.backupDir, name)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(dest); os.IsNotExist(err) {
			break
		}
		dest = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s",
			constants.BackupFilePrefix, time.Now().Format(timestampFormat), counter, constants.BackupFileSuffix))
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
	}

	if err := m.snapshot(dest); err != nil {
		return "", fmt.Errorf("failed to back up database: %w", err)
	}

	if err := m.rotate(); err != nil {
		logger.Warn("Failed to rotate old backups", "error", err)
	}
	return dest, nil
}

// snapshot copies the live database. VACUUM INTO produces a clean, compacted
// copy even while the WAL is hot; a plain file copy is the fallback for
// SQLite builds without it.
func (m *Manager) snapshot(dest string) error {
	src, err := sql.Open("sqlite", m.dbPath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer src.Close()

	var count int
	if err := src.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}

	if _, err := src.Exec("VACUUM INTO ?", dest); err != nil {
		return copyFile(m.dbPath, dest)
	}
	return nil
}

// List returns all backups sorted newest first
func (m *Manager) List() ([]Info, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
			continue
		}

		stamp := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), constants.BackupFileSuffix)
		// Strip the -N collision counter if present
		if idx := strings.LastIndex(stamp, "-"); idx > len(timestampFormat)-1 {
			stamp = stamp[:idx]
		}

		ts, err := time.Parse(timestampFormat, stamp)
		if err != nil {
			continue
		}

		path := filepath.Join(m.backupDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		backups = append(backups, Info{Path: path, Timestamp: ts, Size: info.Size()})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// Restore replaces the live database with a backup. A safety snapshot of the
// current database is taken first so a bad restore is recoverable.
func (m *Manager) Restore(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupPath)
	}

	// Verify the backup is a readable SQLite database before touching the
	// live file
	check, err := sql.Open("sqlite", backupPath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open backup: %w", err)
	}
	var count int
	if err := check.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		check.Close()
		return fmt.Errorf("backup appears to be corrupted: %w", err)
	}
	check.Close()

	if _, err := os.Stat(m.dbPath); err == nil {
		if _, err := m.Create(); err != nil {
			return fmt.Errorf("failed to create safety backup before restore: %w", err)
		}
	}

	return copyFile(backupPath, m.dbPath)
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
