package models

import "github.com/julianstephens/quartr/internal/constants"

// WeeklyAction represents a task scoped to one project and one week of a cycle
type WeeklyAction struct {
	ID          int64               `json:"id"`
	ProjectID   int64               `json:"project_id"`
	WeekNumber  int                 `json:"week_number"`
	Content     string              `json:"content"`
	DueDate     string              `json:"due_date,omitempty"` // YYYY-MM-DD format
	Priority    constants.Priority  `json:"priority"`
	IsCompleted bool                `json:"is_completed"`
	CreatedAt   string              `json:"created_at"` // RFC3339 timestamp
}

// NewAction carries the fields accepted when creating a weekly action
type NewAction struct {
	ProjectID  int64              `json:"project_id"`
	WeekNumber int                `json:"week_number"`
	Content    string             `json:"content"`
	DueDate    string             `json:"due_date,omitempty"`
	Priority   constants.Priority `json:"priority,omitempty"`
}

// ActionPatch is a partial update for a weekly action. Nil fields are left
// untouched, so a sparse patch never clobbers existing values.
type ActionPatch struct {
	ID         int64               `json:"id"`
	Content    *string             `json:"content,omitempty"`
	DueDate    *string             `json:"due_date,omitempty"`
	Priority   *constants.Priority `json:"priority,omitempty"`
	WeekNumber *int                `json:"week_number,omitempty"`
}
