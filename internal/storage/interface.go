package storage

import "github.com/julianstephens/quartr/internal/models"

// Provider is the repository surface the rest of the application talks to.
// The handle is constructed once in main and injected everywhere; there is
// no package-level store.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Projects
	GetProjects(year, quarter int) ([]models.Project, error)
	CreateProject(models.NewProject) (models.Project, error)
	UpdateProject(models.ProjectPatch) error
	DeleteProject(id int64) error

	// Weekly actions
	GetActions(projectID int64, weekNumber int) ([]models.WeeklyAction, error)
	GetAllActions(projectID int64) ([]models.WeeklyAction, error)
	CreateAction(models.NewAction) (models.WeeklyAction, error)
	UpdateAction(models.ActionPatch) error
	ToggleAction(id int64, completed bool) error
	DeleteAction(id int64) error

	// Monthly plans
	GetMonthlyPlans(projectID int64) ([]models.MonthlyPlan, error)
	CreateMonthlyPlan(models.NewMonthlyPlan) (models.MonthlyPlan, error)
	DeleteMonthlyPlan(id int64) error
	SetMonthlyPlanPrimary(id int64, primary bool) error

	// Plan cycles
	GetCurrentCycle() (*models.PlanCycle, error)
	CreateCycle(models.NewCycle) (models.PlanCycle, error)
	UpdateCycle(models.CyclePatch) (models.PlanCycle, error)

	// Utils
	GetConfigPath() string
}
