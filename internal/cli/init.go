package cli

import (
	"fmt"
	"os"
)

type InitCmd struct {
	Force bool `help:"Delete any existing database before initializing."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized quartr storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *Context) error {
	// Init is idempotent: it applies pending migrations and reconciles
	// optional columns against an already-initialized database.
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Println("Database schema is up to date.")
	return nil
}
