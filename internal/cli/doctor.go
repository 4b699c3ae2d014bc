package cli

import (
	"fmt"
	"os"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/quartr/internal/backup"
	"github.com/julianstephens/quartr/internal/constants"
	"github.com/julianstephens/quartr/internal/storage/sqlite"
)

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	check := func(name string, err error) {
		if err != nil {
			fmt.Printf("❌ %s: FAIL\n   Error: %v\n", name, err)
			hasError = true
		} else {
			fmt.Printf("✓ %s: OK\n", name)
		}
	}

	check("Database reachable", c.checkReachable(ctx))
	check("Optional columns present", c.checkColumns(ctx))
	check("Single active cycle", c.checkActiveCycle(ctx))
	check("No orphaned rows", c.checkOrphans(ctx))

	if err := c.checkBackups(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	if err := c.checkProcesses(); err != nil {
		fmt.Printf("⚠ Concurrent processes: WARNING\n   %v\n", err)
	} else {
		fmt.Printf("✓ Concurrent processes: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Println("All diagnostics passed!")
	return nil
}

func (c *DoctorCmd) sqliteStore(ctx *Context) (*sqlite.Store, error) {
	store, ok := ctx.Store.(*sqlite.Store)
	if !ok || store.GetDB() == nil {
		return nil, fmt.Errorf("database connection is not available")
	}
	return store, nil
}

func (c *DoctorCmd) checkReachable(ctx *Context) error {
	store, err := c.sqliteStore(ctx)
	if err != nil {
		return err
	}
	var result int
	if err := store.GetDB().QueryRow("SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func (c *DoctorCmd) checkColumns(ctx *Context) error {
	store, err := c.sqliteStore(ctx)
	if err != nil {
		return err
	}

	var missing []string
	for _, probe := range []struct{ table, column string }{
		{"weekly_actions", "due_date"},
		{"weekly_actions", "priority"},
		{"projects", "note"},
	} {
		query := fmt.Sprintf("SELECT COUNT(*) FROM pragma_table_info('%s') WHERE name = '%s'", probe.table, probe.column)
		var count int
		if err := store.GetDB().QueryRow(query).Scan(&count); err != nil {
			return err
		}
		if count == 0 {
			missing = append(missing, probe.table+"."+probe.column)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing columns: %s (run 'quartr migrate')", strings.Join(missing, ", "))
	}
	return nil
}

func (c *DoctorCmd) checkActiveCycle(ctx *Context) error {
	store, err := c.sqliteStore(ctx)
	if err != nil {
		return err
	}
	var active int
	if err := store.GetDB().QueryRow("SELECT COUNT(*) FROM cycles WHERE is_active = 1").Scan(&active); err != nil {
		return err
	}
	if active > 1 {
		return fmt.Errorf("%d cycles are flagged active; expected at most one", active)
	}
	return nil
}

func (c *DoctorCmd) checkOrphans(ctx *Context) error {
	store, err := c.sqliteStore(ctx)
	if err != nil {
		return err
	}

	for _, table := range []string{"weekly_actions", "monthly_plans"} {
		query := fmt.Sprintf(
			"SELECT COUNT(*) FROM %s WHERE project_id NOT IN (SELECT id FROM projects)", table)
		var orphans int
		if err := store.GetDB().QueryRow(query).Scan(&orphans); err != nil {
			return err
		}
		if orphans > 0 {
			return fmt.Errorf("%d orphaned rows in %s", orphans, table)
		}
	}
	return nil
}

func (c *DoctorCmd) checkBackups(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found; consider running 'quartr backup'")
	}
	return nil
}

// checkProcesses looks for other running quartr instances. The store is
// single-writer; a second process holding the database open risks lock
// contention.
func (c *DoctorCmd) checkProcesses() error {
	procs, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	self := os.Getpid()
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		if strings.Contains(p.Executable(), constants.AppName) {
			return fmt.Errorf("another %s process is running (pid %d)", constants.AppName, p.Pid())
		}
	}
	return nil
}
