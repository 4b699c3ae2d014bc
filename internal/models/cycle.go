package models

// PlanCycle represents a named, dated planning period (typically 12 weeks).
// At most one cycle is active at a time; exclusivity is enforced inside the
// store's create/update transactions, not by a schema constraint.
type PlanCycle struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	StartDate string `json:"start_date"` // YYYY-MM-DD format
	EndDate   string `json:"end_date"`   // YYYY-MM-DD format
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"` // RFC3339 timestamp
}

// NewCycle carries the fields accepted when creating a plan cycle.
// A freshly created cycle is always activated.
type NewCycle struct {
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// CyclePatch updates an existing cycle. All three fields are required by the
// CLI; Reactivate additionally deactivates every other cycle in the same
// transaction.
type CyclePatch struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reactivate bool   `json:"reactivate,omitempty"`
}
