package sqlite

import (
	"fmt"

	"github.com/julianstephens/quartr/internal/logger"
	"github.com/julianstephens/quartr/internal/models"
	"github.com/julianstephens/quartr/internal/validation"
)

const planColumns = "id, project_id, month, content, is_primary, created_at"

func scanPlan(row interface{ Scan(...any) error }) (models.MonthlyPlan, error) {
	var p models.MonthlyPlan
	var primary bool

	err := row.Scan(&p.ID, &p.ProjectID, &p.Month, &p.Content, &primary, &p.CreatedAt)
	if err != nil {
		return models.MonthlyPlan{}, err
	}
	p.IsPrimary = primary
	return p, nil
}

// GetMonthlyPlans lists one project's plans ordered by month then creation.
func (s *Store) GetMonthlyPlans(projectID int64) ([]models.MonthlyPlan, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		"SELECT "+planColumns+" FROM monthly_plans WHERE project_id = ? ORDER BY month ASC, created_at ASC",
		projectID)
	if err != nil {
		logger.Error("Failed to fetch monthly plans", "project_id", projectID, "error", err)
		return nil, err
	}
	defer rows.Close()

	var plans []models.MonthlyPlan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			logger.Error("Failed to scan monthly plan", "error", err)
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

// CreateMonthlyPlan inserts a new plan and returns the stored row.
func (s *Store) CreateMonthlyPlan(p models.NewMonthlyPlan) (models.MonthlyPlan, error) {
	if err := s.ready(); err != nil {
		return models.MonthlyPlan{}, err
	}
	if err := validation.NewMonthlyPlan(p); err != nil {
		return models.MonthlyPlan{}, err
	}

	res, err := s.db.Exec(`
		INSERT INTO monthly_plans (project_id, month, content, is_primary)
		VALUES (?, ?, ?, ?)`,
		p.ProjectID, p.Month, p.Content, boolToInt(p.IsPrimary))
	if err != nil {
		logger.Error("Failed to create monthly plan", "project_id", p.ProjectID, "error", err)
		return models.MonthlyPlan{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.MonthlyPlan{}, err
	}

	row := s.db.QueryRow("SELECT "+planColumns+" FROM monthly_plans WHERE id = ?", id)
	return scanPlan(row)
}

// DeleteMonthlyPlan removes one plan.
func (s *Store) DeleteMonthlyPlan(id int64) error {
	if err := s.ready(); err != nil {
		return err
	}

	res, err := s.db.Exec("DELETE FROM monthly_plans WHERE id = ?", id)
	if err != nil {
		logger.Error("Failed to delete monthly plan", "id", id, "error", err)
		return err
	}
	return requireRow(res, fmt.Sprintf("monthly plan %d not found", id))
}

// SetMonthlyPlanPrimary flips the primary flag of one plan. There is no
// at-most-one-primary constraint; flagging a plan leaves others untouched.
func (s *Store) SetMonthlyPlanPrimary(id int64, primary bool) error {
	if err := s.ready(); err != nil {
		return err
	}

	res, err := s.db.Exec("UPDATE monthly_plans SET is_primary = ? WHERE id = ?", boolToInt(primary), id)
	if err != nil {
		logger.Error("Failed to set monthly plan primary", "id", id, "error", err)
		return err
	}
	return requireRow(res, fmt.Sprintf("monthly plan %d not found", id))
}
