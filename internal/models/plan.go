package models

// MonthlyPlan represents a narrative plan entry scoped to one project and one
// calendar month. is_primary is a per-row flag with no uniqueness constraint;
// the UI treats the most recently flagged plan as the headline entry.
type MonthlyPlan struct {
	ID        int64  `json:"id"`
	ProjectID int64  `json:"project_id"`
	Month     int    `json:"month"`
	Content   string `json:"content"`
	IsPrimary bool   `json:"is_primary"`
	CreatedAt string `json:"created_at"` // RFC3339 timestamp
}

// NewMonthlyPlan carries the fields accepted when creating a monthly plan
type NewMonthlyPlan struct {
	ProjectID int64  `json:"project_id"`
	Month     int    `json:"month"`
	Content   string `json:"content"`
	IsPrimary bool   `json:"is_primary"`
}
