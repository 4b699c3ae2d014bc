package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/quartr/internal/cli"
	"github.com/julianstephens/quartr/internal/constants"
	apperrors "github.com/julianstephens/quartr/internal/errors"
	"github.com/julianstephens/quartr/internal/logger"
	"github.com/julianstephens/quartr/internal/state"
	"github.com/julianstephens/quartr/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path." default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging to stderr."`
	Weeks   int    `help:"Cycle length in weeks used to cap the derived week number (0 disables the cap)." default:"${cycle_weeks}"`

	Init    cli.InitCmd    `cmd:"" help:"Initialize quartr storage."`
	Migrate cli.MigrateCmd `cmd:"" help:"Apply pending schema migrations."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Week    cli.WeekCmd    `cmd:"" help:"Show the current cycle week."`
	Project struct {
		Add  cli.ProjectAddCmd  `cmd:"" help:"Add a quarterly project."`
		List cli.ProjectListCmd `cmd:"" help:"List projects for a quarter."`
		Edit cli.ProjectEditCmd `cmd:"" help:"Edit a project."`
		Rm   cli.ProjectRmCmd   `cmd:"" help:"Delete a project and its children."`
	} `cmd:"" help:"Manage quarterly projects."`
	Action struct {
		Add  cli.ActionAddCmd  `cmd:"" help:"Add a weekly action."`
		List cli.ActionListCmd `cmd:"" help:"List a project's actions."`
		Done cli.ActionDoneCmd `cmd:"" help:"Mark an action completed."`
		Edit cli.ActionEditCmd `cmd:"" help:"Edit an action."`
		Rm   cli.ActionRmCmd   `cmd:"" help:"Delete an action."`
	} `cmd:"" help:"Manage weekly actions."`
	Plan struct {
		Add     cli.PlanAddCmd     `cmd:"" help:"Add a monthly plan."`
		List    cli.PlanListCmd    `cmd:"" help:"List a project's monthly plans."`
		Rm      cli.PlanRmCmd      `cmd:"" help:"Delete a monthly plan."`
		Primary cli.PlanPrimaryCmd `cmd:"" help:"Flag a plan as the month's primary entry."`
	} `cmd:"" help:"Manage monthly plans."`
	Cycle struct {
		New  cli.CycleNewCmd  `cmd:"" help:"Start a new plan cycle."`
		Edit cli.CycleEditCmd `cmd:"" help:"Edit a cycle's title or dates."`
		Show cli.CycleShowCmd `cmd:"" help:"Show the current cycle." default:"1"`
	} `cmd:"" help:"Manage plan cycles."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
}

// expandPath resolves a leading ~ against the user's home directory
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Quarterly planning companion: projects, weekly actions, monthly plans"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
			"cycle_weeks": fmt.Sprintf("%d", constants.DefaultCycleWeeks),
		},
	)

	dbPath := expandPath(CLI.Config)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(dbPath)}); err != nil {
		apperrors.Fatalf("failed to initialize logger: %v", err)
	}

	store := sqlite.NewStore(dbPath)
	appCtx := &cli.Context{
		Store: store,
		State: state.New(store, CLI.Weeks),
		Weeks: CLI.Weeks,
	}

	// Load the store before running the command; init and migrate open (or
	// create) the database themselves.
	cmd := ctx.Selected()
	if cmd != nil && cmd.Name != "init" && cmd.Name != "migrate" {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
	}

	err := ctx.Run(appCtx)
	store.Close()
	if err != nil {
		apperrors.Fatal(err)
	}
}
