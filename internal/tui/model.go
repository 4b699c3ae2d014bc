// Package tui is the interactive dashboard: projects for the current quarter
// on the left, the selected project's current-week actions on the right. All
// data flows through the state cache, so every mutation here hits the store
// first and the panes re-render from the mirrored copy.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/quartr/internal/models"
	"github.com/julianstephens/quartr/internal/state"
)

type SessionState int

const (
	StateBrowse SessionState = iota
	StateAddProject
	StateAddAction
	StateConfirmDelete
)

type pane int

const (
	paneProjects pane = iota
	paneActions
)

type ProjectFormModel struct {
	Title       string
	Description string
	Deadline    string
}

type ActionFormModel struct {
	Content  string
	Priority string
	DueDate  string
}

type Model struct {
	cache *state.Cache

	session SessionState
	focus   pane
	keys    KeyMap
	help    help.Model

	projectCursor int
	actionCursor  int

	form        *huh.Form
	projectForm *ProjectFormModel
	actionForm  *ActionFormModel

	// pending delete target; which pane had focus decides project vs action
	deleteTarget int64
	deletePane   pane

	status   string
	quitting bool
	width    int
	height   int
}

func NewModel(cache *state.Cache) Model {
	cache.Refresh()

	m := Model{
		cache:   cache,
		session: StateBrowse,
		focus:   paneProjects,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.loadSelectedActions()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) selectedProject() *models.Project {
	if m.projectCursor < 0 || m.projectCursor >= len(m.cache.Projects) {
		return nil
	}
	return &m.cache.Projects[m.projectCursor]
}

func (m *Model) selectedActions() []models.WeeklyAction {
	p := m.selectedProject()
	if p == nil {
		return nil
	}
	return m.cache.Actions[p.ID]
}

func (m *Model) selectedAction() *models.WeeklyAction {
	actions := m.selectedActions()
	if m.actionCursor < 0 || m.actionCursor >= len(actions) {
		return nil
	}
	return &actions[m.actionCursor]
}

func (m *Model) loadSelectedActions() {
	if p := m.selectedProject(); p != nil {
		m.cache.FetchActions(p.ID)
	}
	m.clampCursors()
}

func (m *Model) clampCursors() {
	if m.projectCursor >= len(m.cache.Projects) {
		m.projectCursor = len(m.cache.Projects) - 1
	}
	if m.projectCursor < 0 {
		m.projectCursor = 0
	}
	actions := m.selectedActions()
	if m.actionCursor >= len(actions) {
		m.actionCursor = len(actions) - 1
	}
	if m.actionCursor < 0 {
		m.actionCursor = 0
	}
}

func (m *Model) newProjectForm() *huh.Form {
	m.projectForm = &ProjectFormModel{}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&m.projectForm.Title),
			huh.NewInput().
				Title("Description").
				Value(&m.projectForm.Description),
			huh.NewInput().
				Title("Deadline (YYYY-MM-DD, optional)").
				Value(&m.projectForm.Deadline),
		),
	)
}

func (m *Model) newActionForm() *huh.Form {
	m.actionForm = &ActionFormModel{Priority: "none"}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Action").
				Value(&m.actionForm.Content),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("none", "none"),
					huh.NewOption("high", "high"),
					huh.NewOption("medium", "medium"),
					huh.NewOption("low", "low"),
				).
				Value(&m.actionForm.Priority),
			huh.NewInput().
				Title("Due date (YYYY-MM-DD, optional)").
				Value(&m.actionForm.DueDate),
		),
	)
}
