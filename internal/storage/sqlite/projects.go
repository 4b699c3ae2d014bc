package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/julianstephens/quartr/internal/logger"
	"github.com/julianstephens/quartr/internal/models"
	"github.com/julianstephens/quartr/internal/validation"
)

const projectColumns = "id, title, description, tactics, deadline, note, year, quarter, created_at"

func scanProject(row interface{ Scan(...any) error }) (models.Project, error) {
	var p models.Project
	var deadline, note sql.NullString

	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Tactics, &deadline, &note, &p.Year, &p.Quarter, &p.CreatedAt)
	if err != nil {
		return models.Project{}, err
	}

	if deadline.Valid {
		p.Deadline = deadline.String
	}
	if note.Valid {
		p.Note = note.String
	}
	return p, nil
}

// GetProjects lists the projects for one year/quarter, newest first.
func (s *Store) GetProjects(year, quarter int) ([]models.Project, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		"SELECT "+projectColumns+" FROM projects WHERE year = ? AND quarter = ? ORDER BY created_at DESC",
		year, quarter)
	if err != nil {
		logger.Error("Failed to fetch projects", "year", year, "quarter", quarter, "error", err)
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			logger.Error("Failed to scan project", "error", err)
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (s *Store) getProject(id int64) (models.Project, error) {
	row := s.db.QueryRow("SELECT "+projectColumns+" FROM projects WHERE id = ?", id)
	return scanProject(row)
}

// CreateProject inserts a new project and returns the stored row.
func (s *Store) CreateProject(p models.NewProject) (models.Project, error) {
	if err := s.ready(); err != nil {
		return models.Project{}, err
	}
	if err := validation.NewProject(p); err != nil {
		return models.Project{}, err
	}

	var deadline sql.NullString
	if p.Deadline != "" {
		deadline = sql.NullString{String: p.Deadline, Valid: true}
	}

	res, err := s.db.Exec(`
		INSERT INTO projects (title, description, tactics, deadline, year, quarter)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.Title, p.Description, p.Tactics, deadline, p.Year, p.Quarter)
	if err != nil {
		logger.Error("Failed to create project", "title", p.Title, "error", err)
		return models.Project{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Project{}, err
	}
	return s.getProject(id)
}

// UpdateProject applies a partial update. Only non-nil patch fields appear in
// the SET clause, so unspecified fields are never clobbered.
func (s *Store) UpdateProject(patch models.ProjectPatch) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := validation.ProjectPatch(patch); err != nil {
		return err
	}

	var sets []string
	var args []any
	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Deadline != nil {
		sets = append(sets, "deadline = ?")
		args = append(args, nullable(*patch.Deadline))
	}
	if patch.Note != nil {
		sets = append(sets, "note = ?")
		args = append(args, nullable(*patch.Note))
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, patch.ID)
	res, err := s.db.Exec("UPDATE projects SET "+joinSets(sets)+" WHERE id = ?", args...)
	if err != nil {
		logger.Error("Failed to update project", "id", patch.ID, "error", err)
		return err
	}
	return requireRow(res, fmt.Sprintf("project %d not found", patch.ID))
}

// DeleteProject removes a project; weekly actions and monthly plans cascade.
func (s *Store) DeleteProject(id int64) error {
	if err := s.ready(); err != nil {
		return err
	}

	res, err := s.db.Exec("DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		logger.Error("Failed to delete project", "id", id, "error", err)
		return err
	}
	return requireRow(res, fmt.Sprintf("project %d not found", id))
}
