package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/julianstephens/quartr/internal/constants"
	"github.com/julianstephens/quartr/internal/logger"
	"github.com/julianstephens/quartr/internal/models"
	"github.com/julianstephens/quartr/internal/validation"
)

const actionColumns = "id, project_id, week_number, content, due_date, priority, is_completed, created_at"

func scanAction(row interface{ Scan(...any) error }) (models.WeeklyAction, error) {
	var a models.WeeklyAction
	var dueDate sql.NullString
	var priority sql.NullString
	var completed bool

	err := row.Scan(&a.ID, &a.ProjectID, &a.WeekNumber, &a.Content, &dueDate, &priority, &completed, &a.CreatedAt)
	if err != nil {
		return models.WeeklyAction{}, err
	}

	if dueDate.Valid {
		a.DueDate = dueDate.String
	}
	a.Priority = constants.PriorityNone
	if priority.Valid && priority.String != "" {
		a.Priority = constants.Priority(priority.String)
	}
	a.IsCompleted = completed
	return a, nil
}

func (s *Store) queryActions(query string, args ...any) ([]models.WeeklyAction, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var actions []models.WeeklyAction
	for rows.Next() {
		a, err := scanAction(rows)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, rows.Err()
}

// GetActions lists one project's actions for a single week, oldest first.
func (s *Store) GetActions(projectID int64, weekNumber int) ([]models.WeeklyAction, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	actions, err := s.queryActions(
		"SELECT "+actionColumns+" FROM weekly_actions WHERE project_id = ? AND week_number = ? ORDER BY created_at ASC",
		projectID, weekNumber)
	if err != nil {
		logger.Error("Failed to fetch actions", "project_id", projectID, "week", weekNumber, "error", err)
	}
	return actions, err
}

// GetAllActions lists every action of a project across all weeks.
func (s *Store) GetAllActions(projectID int64) ([]models.WeeklyAction, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	actions, err := s.queryActions(
		"SELECT "+actionColumns+" FROM weekly_actions WHERE project_id = ? ORDER BY week_number ASC, created_at ASC",
		projectID)
	if err != nil {
		logger.Error("Failed to fetch all actions", "project_id", projectID, "error", err)
	}
	return actions, err
}

// CreateAction inserts a new weekly action and returns the stored row.
// Priority defaults to "none" when absent.
func (s *Store) CreateAction(a models.NewAction) (models.WeeklyAction, error) {
	if err := s.ready(); err != nil {
		return models.WeeklyAction{}, err
	}
	if err := validation.NewAction(a); err != nil {
		return models.WeeklyAction{}, err
	}

	priority := a.Priority
	if priority == "" {
		priority = constants.PriorityNone
	}

	res, err := s.db.Exec(`
		INSERT INTO weekly_actions (project_id, week_number, content, due_date, priority, is_completed)
		VALUES (?, ?, ?, ?, ?, 0)`,
		a.ProjectID, a.WeekNumber, a.Content, nullable(a.DueDate), string(priority))
	if err != nil {
		logger.Error("Failed to create action", "project_id", a.ProjectID, "error", err)
		return models.WeeklyAction{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.WeeklyAction{}, err
	}

	row := s.db.QueryRow("SELECT "+actionColumns+" FROM weekly_actions WHERE id = ?", id)
	return scanAction(row)
}

// UpdateAction applies a partial update; nil patch fields are untouched.
func (s *Store) UpdateAction(patch models.ActionPatch) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := validation.ActionPatch(patch); err != nil {
		return err
	}

	var sets []string
	var args []any
	if patch.Content != nil {
		sets = append(sets, "content = ?")
		args = append(args, *patch.Content)
	}
	if patch.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, nullable(*patch.DueDate))
	}
	if patch.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, string(*patch.Priority))
	}
	if patch.WeekNumber != nil {
		sets = append(sets, "week_number = ?")
		args = append(args, *patch.WeekNumber)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, patch.ID)
	res, err := s.db.Exec("UPDATE weekly_actions SET "+joinSets(sets)+" WHERE id = ?", args...)
	if err != nil {
		logger.Error("Failed to update action", "id", patch.ID, "error", err)
		return err
	}
	return requireRow(res, fmt.Sprintf("action %d not found", patch.ID))
}

// ToggleAction sets the completion flag of one action.
func (s *Store) ToggleAction(id int64, completed bool) error {
	if err := s.ready(); err != nil {
		return err
	}

	res, err := s.db.Exec("UPDATE weekly_actions SET is_completed = ? WHERE id = ?", boolToInt(completed), id)
	if err != nil {
		logger.Error("Failed to toggle action", "id", id, "error", err)
		return err
	}
	return requireRow(res, fmt.Sprintf("action %d not found", id))
}

// DeleteAction removes one action.
func (s *Store) DeleteAction(id int64) error {
	if err := s.ready(); err != nil {
		return err
	}

	res, err := s.db.Exec("DELETE FROM weekly_actions WHERE id = ?", id)
	if err != nil {
		logger.Error("Failed to delete action", "id", id, "error", err)
		return err
	}
	return requireRow(res, fmt.Sprintf("action %d not found", id))
}
