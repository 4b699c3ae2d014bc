// Package validation checks request payloads before any storage access.
// Every check here is synchronous and purely structural; referential
// integrity (e.g. project_id pointing at a real project) is left to the
// database's foreign keys.
package validation

import (
	"fmt"

	"github.com/julianstephens/quartr/internal/constants"
	"github.com/julianstephens/quartr/internal/models"
	"github.com/julianstephens/quartr/internal/utils"
)

// NewProject validates a project creation payload
func NewProject(p models.NewProject) error {
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	if p.Year == 0 {
		return fmt.Errorf("year is required")
	}
	if p.Quarter < 1 || p.Quarter > 4 {
		return fmt.Errorf("quarter must be between 1 and 4")
	}
	if p.Deadline != "" && !utils.ValidateDateFormat(p.Deadline) {
		return fmt.Errorf("invalid deadline (expected YYYY-MM-DD): %s", p.Deadline)
	}
	return nil
}

// NewAction validates a weekly action creation payload
func NewAction(a models.NewAction) error {
	if a.ProjectID == 0 {
		return fmt.Errorf("project id is required")
	}
	if a.WeekNumber < 1 {
		return fmt.Errorf("week number must be at least 1")
	}
	if a.Content == "" {
		return fmt.Errorf("content is required")
	}
	if a.DueDate != "" && !utils.ValidateDateFormat(a.DueDate) {
		return fmt.Errorf("invalid due date (expected YYYY-MM-DD): %s", a.DueDate)
	}
	if a.Priority != "" && !constants.ValidPriority(a.Priority) {
		return fmt.Errorf("invalid priority: %s (expected high|medium|low|none)", a.Priority)
	}
	return nil
}

// ActionPatch validates a partial action update
func ActionPatch(p models.ActionPatch) error {
	if p.ID == 0 {
		return fmt.Errorf("action id is required")
	}
	if p.WeekNumber != nil && *p.WeekNumber < 1 {
		return fmt.Errorf("week number must be at least 1")
	}
	if p.DueDate != nil && *p.DueDate != "" && !utils.ValidateDateFormat(*p.DueDate) {
		return fmt.Errorf("invalid due date (expected YYYY-MM-DD): %s", *p.DueDate)
	}
	if p.Priority != nil && !constants.ValidPriority(*p.Priority) {
		return fmt.Errorf("invalid priority: %s (expected high|medium|low|none)", *p.Priority)
	}
	return nil
}

// ProjectPatch validates a partial project update
func ProjectPatch(p models.ProjectPatch) error {
	if p.ID == 0 {
		return fmt.Errorf("project id is required")
	}
	if p.Title != nil && *p.Title == "" {
		return fmt.Errorf("title cannot be cleared")
	}
	if p.Deadline != nil && *p.Deadline != "" && !utils.ValidateDateFormat(*p.Deadline) {
		return fmt.Errorf("invalid deadline (expected YYYY-MM-DD): %s", *p.Deadline)
	}
	return nil
}

// NewMonthlyPlan validates a monthly plan creation payload
func NewMonthlyPlan(p models.NewMonthlyPlan) error {
	if p.ProjectID == 0 {
		return fmt.Errorf("project id is required")
	}
	if p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("month must be between 1 and 12")
	}
	if p.Content == "" {
		return fmt.Errorf("content is required")
	}
	return nil
}

// NewCycle validates a plan cycle creation payload
func NewCycle(c models.NewCycle) error {
	if c.Title == "" {
		return fmt.Errorf("title is required")
	}
	if err := cycleDates(c.StartDate, c.EndDate); err != nil {
		return err
	}
	return nil
}

// CyclePatch validates a cycle update payload
func CyclePatch(p models.CyclePatch) error {
	if p.ID == 0 {
		return fmt.Errorf("cycle id is required")
	}
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	return cycleDates(p.StartDate, p.EndDate)
}

func cycleDates(start, end string) error {
	if start == "" || end == "" {
		return fmt.Errorf("start and end dates are required")
	}
	startDate, err := utils.ParseDate(start)
	if err != nil {
		return fmt.Errorf("invalid start date: %w", err)
	}
	endDate, err := utils.ParseDate(end)
	if err != nil {
		return fmt.Errorf("invalid end date: %w", err)
	}
	if !startDate.Before(endDate) {
		return fmt.Errorf("start date must be before end date")
	}
	return nil
}
