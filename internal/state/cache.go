// Package state holds the client-side mirror of repository data that the
// CLI and TUI render from. Mutations are write-through: the repository call
// must succeed before the equivalent local change is applied, so views never
// need to re-fetch after a write. Fetches replace the cached collection
// wholesale and swallow failures (logged) so a broken read degrades to an
// empty view instead of an error.
//
// The cache is driven from a single goroutine (the TUI update loop or one
// CLI command); it carries no locking.
package state

import (
	"github.com/julianstephens/quartr/internal/cycle"
	"github.com/julianstephens/quartr/internal/logger"
	"github.com/julianstephens/quartr/internal/models"
	"github.com/julianstephens/quartr/internal/storage"
	"github.com/julianstephens/quartr/internal/utils"
)

type Cache struct {
	store    storage.Provider
	maxWeeks int

	CurrentYear    int
	CurrentQuarter int
	CurrentWeek    int
	CurrentCycle   *models.PlanCycle

	Projects []models.Project
	Actions  map[int64][]models.WeeklyAction
	Plans    map[int64][]models.MonthlyPlan
}

// New creates a cache bound to the given store. maxWeeks caps the derived
// week number; 0 disables the cap.
func New(store storage.Provider, maxWeeks int) *Cache {
	today := utils.Today()
	return &Cache{
		store:          store,
		maxWeeks:       maxWeeks,
		CurrentYear:    today.Year(),
		CurrentQuarter: cycle.QuarterOf(today),
		CurrentWeek:    1,
		Actions:        make(map[int64][]models.WeeklyAction),
		Plans:          make(map[int64][]models.MonthlyPlan),
	}
}

// Refresh re-derives the temporal context from the current cycle and reloads
// the project list for it.
func (c *Cache) Refresh() {
	c.FetchCurrentCycle()
	c.FetchProjects()
}

// FetchCurrentCycle loads the active (or most recent) cycle and updates
// year/quarter/week accordingly. Failures are logged and swallowed.
func (c *Cache) FetchCurrentCycle() {
	cur, err := c.store.GetCurrentCycle()
	if err != nil {
		logger.Warn("Failed to fetch current cycle", "error", err)
		return
	}
	c.setCycle(cur)
}

func (c *Cache) setCycle(cur *models.PlanCycle) {
	c.CurrentCycle = cur
	ctx := cycle.Resolve(cur, utils.Today(), c.maxWeeks)
	c.CurrentYear = ctx.Year
	c.CurrentQuarter = ctx.Quarter
	c.CurrentWeek = ctx.Week
}

// FetchProjects replaces the cached project list for the current
// year/quarter. Failures are logged and swallowed.
func (c *Cache) FetchProjects() {
	projects, err := c.store.GetProjects(c.CurrentYear, c.CurrentQuarter)
	if err != nil {
		logger.Warn("Failed to fetch projects", "year", c.CurrentYear, "quarter", c.CurrentQuarter, "error", err)
		return
	}
	c.Projects = projects
}

// AddProject creates a project and prepends it to the cached list.
func (c *Cache) AddProject(p models.NewProject) (models.Project, error) {
	created, err := c.store.CreateProject(p)
	if err != nil {
		return models.Project{}, err
	}
	c.Projects = append([]models.Project{created}, c.Projects...)
	return created, nil
}

// UpdateProject patches a project and mirrors the change locally.
func (c *Cache) UpdateProject(patch models.ProjectPatch) error {
	if err := c.store.UpdateProject(patch); err != nil {
		return err
	}
	for i := range c.Projects {
		if c.Projects[i].ID != patch.ID {
			continue
		}
		if patch.Title != nil {
			c.Projects[i].Title = *patch.Title
		}
		if patch.Description != nil {
			c.Projects[i].Description = *patch.Description
		}
		if patch.Deadline != nil {
			c.Projects[i].Deadline = *patch.Deadline
		}
		if patch.Note != nil {
			c.Projects[i].Note = *patch.Note
		}
		break
	}
	return nil
}

// DeleteProject removes a project and drops its cached children.
func (c *Cache) DeleteProject(id int64) error {
	if err := c.store.DeleteProject(id); err != nil {
		return err
	}
	for i := range c.Projects {
		if c.Projects[i].ID == id {
			c.Projects = append(c.Projects[:i], c.Projects[i+1:]...)
			break
		}
	}
	delete(c.Actions, id)
	delete(c.Plans, id)
	return nil
}

// FetchActions replaces the cached actions of a project with the current
// week's actions. Failures are logged and swallowed.
func (c *Cache) FetchActions(projectID int64) {
	actions, err := c.store.GetActions(projectID, c.CurrentWeek)
	if err != nil {
		logger.Warn("Failed to fetch actions", "project_id", projectID, "error", err)
		return
	}
	c.Actions[projectID] = actions
}

// FetchAllActions replaces the cached actions of a project with every week's
// actions. Failures are logged and swallowed.
func (c *Cache) FetchAllActions(projectID int64) {
	actions, err := c.store.GetAllActions(projectID)
	if err != nil {
		logger.Warn("Failed to fetch all actions", "project_id", projectID, "error", err)
		return
	}
	c.Actions[projectID] = actions
}

// AddAction creates an action and appends it to the project's cached list.
func (c *Cache) AddAction(a models.NewAction) (models.WeeklyAction, error) {
	created, err := c.store.CreateAction(a)
	if err != nil {
		return models.WeeklyAction{}, err
	}
	c.Actions[a.ProjectID] = append(c.Actions[a.ProjectID], created)
	return created, nil
}

// UpdateAction patches an action and mirrors the change locally.
func (c *Cache) UpdateAction(projectID int64, patch models.ActionPatch) error {
	if err := c.store.UpdateAction(patch); err != nil {
		return err
	}
	actions := c.Actions[projectID]
	for i := range actions {
		if actions[i].ID != patch.ID {
			continue
		}
		if patch.Content != nil {
			actions[i].Content = *patch.Content
		}
		if patch.DueDate != nil {
			actions[i].DueDate = *patch.DueDate
		}
		if patch.Priority != nil {
			actions[i].Priority = *patch.Priority
		}
		if patch.WeekNumber != nil {
			actions[i].WeekNumber = *patch.WeekNumber
		}
		break
	}
	return nil
}

// ToggleAction flips completion and mirrors it locally.
func (c *Cache) ToggleAction(projectID, actionID int64, completed bool) error {
	if err := c.store.ToggleAction(actionID, completed); err != nil {
		return err
	}
	actions := c.Actions[projectID]
	for i := range actions {
		if actions[i].ID == actionID {
			actions[i].IsCompleted = completed
			break
		}
	}
	return nil
}

// DeleteAction removes an action from the store and the cache.
func (c *Cache) DeleteAction(projectID, actionID int64) error {
	if err := c.store.DeleteAction(actionID); err != nil {
		return err
	}
	actions := c.Actions[projectID]
	for i := range actions {
		if actions[i].ID == actionID {
			c.Actions[projectID] = append(actions[:i], actions[i+1:]...)
			break
		}
	}
	return nil
}

// FetchMonthlyPlans replaces the cached plans of a project. Failures are
// logged and swallowed.
func (c *Cache) FetchMonthlyPlans(projectID int64) {
	plans, err := c.store.GetMonthlyPlans(projectID)
	if err != nil {
		logger.Warn("Failed to fetch monthly plans", "project_id", projectID, "error", err)
		return
	}
	c.Plans[projectID] = plans
}

// AddMonthlyPlan creates a plan and appends it to the project's cached list.
func (c *Cache) AddMonthlyPlan(p models.NewMonthlyPlan) (models.MonthlyPlan, error) {
	created, err := c.store.CreateMonthlyPlan(p)
	if err != nil {
		return models.MonthlyPlan{}, err
	}
	c.Plans[p.ProjectID] = append(c.Plans[p.ProjectID], created)
	return created, nil
}

// DeleteMonthlyPlan removes a plan from the store and the cache.
func (c *Cache) DeleteMonthlyPlan(projectID, planID int64) error {
	if err := c.store.DeleteMonthlyPlan(planID); err != nil {
		return err
	}
	plans := c.Plans[projectID]
	for i := range plans {
		if plans[i].ID == planID {
			c.Plans[projectID] = append(plans[:i], plans[i+1:]...)
			break
		}
	}
	return nil
}

// SetPlanPrimary flips the primary flag and mirrors it locally.
func (c *Cache) SetPlanPrimary(projectID, planID int64, primary bool) error {
	if err := c.store.SetMonthlyPlanPrimary(planID, primary); err != nil {
		return err
	}
	plans := c.Plans[projectID]
	for i := range plans {
		if plans[i].ID == planID {
			plans[i].IsPrimary = primary
			break
		}
	}
	return nil
}

// CreateCycle creates and activates a cycle, then re-derives the temporal
// context and reloads projects for the new period.
func (c *Cache) CreateCycle(n models.NewCycle) (models.PlanCycle, error) {
	created, err := c.store.CreateCycle(n)
	if err != nil {
		return models.PlanCycle{}, err
	}
	c.setCycle(&created)
	c.FetchProjects()
	return created, nil
}

// UpdateCycle updates a cycle; when it is the current one the temporal
// context follows the new dates.
func (c *Cache) UpdateCycle(patch models.CyclePatch) (models.PlanCycle, error) {
	updated, err := c.store.UpdateCycle(patch)
	if err != nil {
		return models.PlanCycle{}, err
	}
	if c.CurrentCycle != nil && c.CurrentCycle.ID == updated.ID {
		c.setCycle(&updated)
	}
	return updated, nil
}
