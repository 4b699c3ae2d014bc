package cli

import (
	"fmt"

	"github.com/julianstephens/quartr/internal/backup"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	path, err := mgr.Create()
	if err != nil {
		return err
	}
	fmt.Printf("Created backup: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return err
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	fmt.Println(headerStyle.Render("Backups (newest first):"))
	for _, b := range backups {
		fmt.Printf("  %s  %s  %.1f KB\n", b.Timestamp.Format("2006-01-02 15:04:05"), b.Path, float64(b.Size)/1024)
	}
	return nil
}

type BackupRestoreCmd struct {
	Path string `arg:"" help:"Backup file to restore from."`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	if !c.Yes {
		fmt.Printf("Overwrite the current database with %s? [y/N] ", c.Path)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	// The live connection must be closed before the file is replaced
	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close database before restore: %w", err)
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if err := mgr.Restore(c.Path); err != nil {
		return err
	}
	fmt.Printf("Restored database from: %s\n", c.Path)
	return nil
}
