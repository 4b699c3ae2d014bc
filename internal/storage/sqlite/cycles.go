package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/julianstephens/quartr/internal/logger"
	"github.com/julianstephens/quartr/internal/models"
	"github.com/julianstephens/quartr/internal/validation"
)

const cycleColumns = "id, title, start_date, end_date, is_active, created_at"

func scanCycle(row interface{ Scan(...any) error }) (models.PlanCycle, error) {
	var c models.PlanCycle
	var active bool

	err := row.Scan(&c.ID, &c.Title, &c.StartDate, &c.EndDate, &active, &c.CreatedAt)
	if err != nil {
		return models.PlanCycle{}, err
	}
	c.IsActive = active
	return c, nil
}

// GetCurrentCycle returns the active cycle. When no cycle carries the active
// flag it falls back to the most recently created one; with no cycles at all
// it returns nil without error.
func (s *Store) GetCurrentCycle() (*models.PlanCycle, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	row := s.db.QueryRow("SELECT " + cycleColumns + " FROM cycles WHERE is_active = 1 ORDER BY created_at DESC LIMIT 1")
	c, err := scanCycle(row)
	if err == nil {
		return &c, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		logger.Error("Failed to fetch current cycle", "error", err)
		return nil, err
	}

	row = s.db.QueryRow("SELECT " + cycleColumns + " FROM cycles ORDER BY created_at DESC, id DESC LIMIT 1")
	c, err = scanCycle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("Failed to fetch fallback cycle", "error", err)
		return nil, err
	}
	return &c, nil
}

// CreateCycle inserts a new cycle and activates it. Deactivating every other
// cycle and inserting the new one happen in a single transaction, so exactly
// one cycle is active afterward no matter how many were active before.
func (s *Store) CreateCycle(c models.NewCycle) (models.PlanCycle, error) {
	if err := s.ready(); err != nil {
		return models.PlanCycle{}, err
	}
	if err := validation.NewCycle(c); err != nil {
		return models.PlanCycle{}, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return models.PlanCycle{}, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("UPDATE cycles SET is_active = 0"); err != nil {
		logger.Error("Failed to deactivate cycles", "error", err)
		return models.PlanCycle{}, err
	}

	res, err := tx.Exec(
		"INSERT INTO cycles (title, start_date, end_date, is_active) VALUES (?, ?, ?, 1)",
		c.Title, c.StartDate, c.EndDate)
	if err != nil {
		logger.Error("Failed to create cycle", "title", c.Title, "error", err)
		return models.PlanCycle{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.PlanCycle{}, err
	}

	created, err := scanCycle(tx.QueryRow("SELECT "+cycleColumns+" FROM cycles WHERE id = ?", id))
	if err != nil {
		return models.PlanCycle{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.PlanCycle{}, err
	}
	return created, nil
}

// UpdateCycle updates a cycle's title and dates. With Reactivate set it also
// flags the cycle active, deactivating all others in the same transaction
// (scoped WHERE id != target so the row itself is never cleared).
func (s *Store) UpdateCycle(patch models.CyclePatch) (models.PlanCycle, error) {
	if err := s.ready(); err != nil {
		return models.PlanCycle{}, err
	}
	if err := validation.CyclePatch(patch); err != nil {
		return models.PlanCycle{}, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return models.PlanCycle{}, err
	}
	defer tx.Rollback()

	if patch.Reactivate {
		if _, err := tx.Exec("UPDATE cycles SET is_active = 0 WHERE id != ?", patch.ID); err != nil {
			logger.Error("Failed to deactivate other cycles", "id", patch.ID, "error", err)
			return models.PlanCycle{}, err
		}
	}

	query := "UPDATE cycles SET title = ?, start_date = ?, end_date = ? WHERE id = ?"
	args := []any{patch.Title, patch.StartDate, patch.EndDate, patch.ID}
	if patch.Reactivate {
		query = "UPDATE cycles SET title = ?, start_date = ?, end_date = ?, is_active = 1 WHERE id = ?"
	}

	res, err := tx.Exec(query, args...)
	if err != nil {
		logger.Error("Failed to update cycle", "id", patch.ID, "error", err)
		return models.PlanCycle{}, err
	}
	if err := requireRow(res, fmt.Sprintf("cycle %d not found", patch.ID)); err != nil {
		return models.PlanCycle{}, err
	}

	updated, err := scanCycle(tx.QueryRow("SELECT "+cycleColumns+" FROM cycles WHERE id = ?", patch.ID))
	if err != nil {
		return models.PlanCycle{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.PlanCycle{}, err
	}
	return updated, nil
}
