package models

// Project represents a quarterly goal tracked across one plan cycle
type Project struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Tactics     string `json:"tactics"`
	Deadline    string `json:"deadline,omitempty"` // YYYY-MM-DD format
	Note        string `json:"note,omitempty"`
	Year        int    `json:"year"`
	Quarter     int    `json:"quarter"`
	CreatedAt   string `json:"created_at"` // RFC3339 timestamp
}

// NewProject carries the fields accepted when creating a project.
// Year and quarter are immutable after creation.
type NewProject struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Tactics     string `json:"tactics"`
	Deadline    string `json:"deadline,omitempty"`
	Year        int    `json:"year"`
	Quarter     int    `json:"quarter"`
}

// ProjectPatch is a partial update for a project. Nil fields are left
// untouched; year and quarter cannot be patched.
type ProjectPatch struct {
	ID          int64   `json:"id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Deadline    *string `json:"deadline,omitempty"`
	Note        *string `json:"note,omitempty"`
}
