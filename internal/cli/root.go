package cli

import (
	"github.com/julianstephens/quartr/internal/backup"
	"github.com/julianstephens/quartr/internal/logger"
	"github.com/julianstephens/quartr/internal/state"
	"github.com/julianstephens/quartr/internal/storage"
)

// Context is the shared dependency bundle injected into every command
type Context struct {
	Store storage.Provider
	State *state.Cache
	Weeks int // cycle length cap; 0 disables the clamp
}

// PerformAutomaticBackup creates a backup before destructive operations and
// silently handles errors so the user's workflow is never interrupted.
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}
