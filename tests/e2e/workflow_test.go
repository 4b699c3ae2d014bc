package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// findBinary locates the quartr binary: QUARTR_BIN overrides, otherwise
// ../../bin/quartr relative to this directory.
func findBinary(t *testing.T) string {
	t.Helper()

	if path := os.Getenv("QUARTR_BIN"); path != "" {
		return path
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get cwd: %v", err)
	}
	path, _ := filepath.Abs(filepath.Join(cwd, "..", "..", "bin", "quartr"))
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Skipf("quartr binary not found at %s; build it or set QUARTR_BIN", path)
	}
	return path
}

func runCLI(t *testing.T, bin, dbPath string, args ...string) string {
	t.Helper()

	full := append([]string{"--config", dbPath}, args...)
	cmd := exec.Command(bin, full...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("quartr %s failed: %v\noutput:\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func TestEndToEndWorkflow(t *testing.T) {
	bin := findBinary(t)
	dbPath := filepath.Join(t.TempDir(), "quartr.db")

	// Initialize storage
	out := runCLI(t, bin, dbPath, "init")
	if !strings.Contains(out, "Initialized") {
		t.Errorf("init output: %s", out)
	}

	// Start a cycle dated so the current week is deterministic (week 2)
	start := time.Now().AddDate(0, 0, -7).Format("2006-01-02")
	out = runCLI(t, bin, dbPath, "cycle", "new", "Push quarter", "--start", start)
	if !strings.Contains(out, "now active") {
		t.Errorf("cycle new output: %s", out)
	}
	if !strings.Contains(out, "Current week: 2") {
		t.Errorf("cycle new output: %s", out)
	}

	// Add a project; it inherits the cycle's year and quarter
	out = runCLI(t, bin, dbPath, "project", "add", "Ship the beta", "-d", "Get it out the door")
	if !strings.Contains(out, "Created project #1") {
		t.Errorf("project add output: %s", out)
	}

	// Add actions and complete one
	runCLI(t, bin, dbPath, "action", "add", "1", "Write announcement", "-p", "high")
	runCLI(t, bin, dbPath, "action", "add", "1", "Cut the release", "--due", time.Now().AddDate(0, 0, 3).Format("2006-01-02"))
	out = runCLI(t, bin, dbPath, "action", "done", "1", "1")
	if !strings.Contains(out, "Completed action #1") {
		t.Errorf("action done output: %s", out)
	}

	out = runCLI(t, bin, dbPath, "action", "list", "1")
	if !strings.Contains(out, "[x]") || !strings.Contains(out, "[ ]") {
		t.Errorf("action list output: %s", out)
	}

	// Monthly plans
	runCLI(t, bin, dbPath, "plan", "add", "1", "1", "Land the beta with ten pilot users")
	out = runCLI(t, bin, dbPath, "plan", "primary", "1", "1")
	if !strings.Contains(out, "primary") {
		t.Errorf("plan primary output: %s", out)
	}

	// Backups and diagnostics
	out = runCLI(t, bin, dbPath, "backup", "create")
	if !strings.Contains(out, "Created backup") {
		t.Errorf("backup create output: %s", out)
	}
	out = runCLI(t, bin, dbPath, "doctor")
	if !strings.Contains(out, "All diagnostics passed") {
		t.Errorf("doctor output: %s", out)
	}

	// Destructive path: delete the project, children go with it
	out = runCLI(t, bin, dbPath, "project", "rm", "1", "-y")
	if !strings.Contains(out, "Deleted project #1") {
		t.Errorf("project rm output: %s", out)
	}
	out = runCLI(t, bin, dbPath, "project", "list")
	if !strings.Contains(out, "No projects yet") {
		t.Errorf("project list output: %s", out)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	bin := findBinary(t)
	dbPath := filepath.Join(t.TempDir(), "quartr.db")

	runCLI(t, bin, dbPath, "init")
	for i := 0; i < 2; i++ {
		out := runCLI(t, bin, dbPath, "migrate")
		if !strings.Contains(out, "up to date") {
			t.Errorf("migrate output: %s", out)
		}
	}
}

func TestCommandsFailBeforeInit(t *testing.T) {
	bin := findBinary(t)
	dbPath := filepath.Join(t.TempDir(), "quartr.db")

	cmd := exec.Command(bin, "--config", dbPath, "project", "list")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err == nil {
		t.Fatalf("project list should fail before init, output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "not initialized") {
		t.Errorf("error output: %s", out.String())
	}
}
