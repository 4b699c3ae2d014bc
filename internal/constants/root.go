package constants

// Priority represents the priority of a weekly action
type Priority string

const (
	AppName           = "quartr"
	Version           = "v0.3.0"
	DefaultConfigPath = "~/.config/quartr/quartr.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DefaultCycleWeeks is the default length of a plan cycle in weeks.
	// A value of 0 disables the upper clamp on the current week.
	DefaultCycleWeeks = 12

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "quartr-"
	BackupFileSuffix = ".db"

	// LockfileName is the single-writer lock placed next to the database
	LockfileName = "quartr.lock"

	// Priority constants
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
	PriorityNone   Priority = "none"
)

// Priorities lists every valid action priority
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow, PriorityNone}

// ValidPriority reports whether p is one of the known priority values
func ValidPriority(p Priority) bool {
	for _, v := range Priorities {
		if p == v {
			return true
		}
	}
	return false
}
