package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/quartr/internal/constants"
	"github.com/julianstephens/quartr/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.help.Width = size.Width
	}

	switch m.session {
	case StateAddProject, StateAddAction:
		return m.updateForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}
	return m.updateBrowse(msg)
}

func (m Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.status = ""

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(keyMsg, m.keys.Tab):
		if m.focus == paneProjects {
			m.focus = paneActions
		} else {
			m.focus = paneProjects
		}

	case key.Matches(keyMsg, m.keys.Up):
		if m.focus == paneProjects && m.projectCursor > 0 {
			m.projectCursor--
			m.actionCursor = 0
			m.loadSelectedActions()
		} else if m.focus == paneActions && m.actionCursor > 0 {
			m.actionCursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.focus == paneProjects && m.projectCursor < len(m.cache.Projects)-1 {
			m.projectCursor++
			m.actionCursor = 0
			m.loadSelectedActions()
		} else if m.focus == paneActions && m.actionCursor < len(m.selectedActions())-1 {
			m.actionCursor++
		}

	case key.Matches(keyMsg, m.keys.Enter):
		if m.focus == paneProjects && m.selectedProject() != nil {
			m.focus = paneActions
			m.loadSelectedActions()
		}

	case key.Matches(keyMsg, m.keys.Toggle):
		if a := m.selectedAction(); a != nil {
			p := m.selectedProject()
			if err := m.cache.ToggleAction(p.ID, a.ID, !a.IsCompleted); err != nil {
				m.status = err.Error()
			}
		}

	case key.Matches(keyMsg, m.keys.Add):
		if m.selectedProject() != nil {
			m.session = StateAddAction
			m.form = m.newActionForm()
			return m, m.form.Init()
		}
		m.status = "Create a project first"

	case key.Matches(keyMsg, m.keys.New):
		m.session = StateAddProject
		m.form = m.newProjectForm()
		return m, m.form.Init()

	case key.Matches(keyMsg, m.keys.Delete):
		if m.focus == paneActions {
			if a := m.selectedAction(); a != nil {
				m.session = StateConfirmDelete
				m.deleteTarget = a.ID
				m.deletePane = paneActions
			}
		} else if p := m.selectedProject(); p != nil {
			m.session = StateConfirmDelete
			m.deleteTarget = p.ID
			m.deletePane = paneProjects
		}

	case key.Matches(keyMsg, m.keys.Refresh):
		m.cache.Refresh()
		m.loadSelectedActions()
	}

	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.session == StateAddProject {
			m.submitProject()
		} else {
			m.submitAction()
		}
		m.session = StateBrowse
		m.form = nil
		return m, nil
	case huh.StateAborted:
		m.session = StateBrowse
		m.form = nil
		return m, nil
	}

	return m, cmd
}

func (m *Model) submitProject() {
	created, err := m.cache.AddProject(models.NewProject{
		Title:       m.projectForm.Title,
		Description: m.projectForm.Description,
		Deadline:    m.projectForm.Deadline,
		Year:        m.cache.CurrentYear,
		Quarter:     m.cache.CurrentQuarter,
	})
	if err != nil {
		m.status = err.Error()
		return
	}
	m.projectCursor = 0
	m.actionCursor = 0
	m.loadSelectedActions()
	m.status = fmt.Sprintf("Created project #%d", created.ID)
}

func (m *Model) submitAction() {
	p := m.selectedProject()
	if p == nil {
		return
	}
	created, err := m.cache.AddAction(models.NewAction{
		ProjectID:  p.ID,
		WeekNumber: m.cache.CurrentWeek,
		Content:    m.actionForm.Content,
		DueDate:    m.actionForm.DueDate,
		Priority:   constants.Priority(m.actionForm.Priority),
	})
	if err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("Created action #%d", created.ID)
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		var err error
		if m.deletePane == paneActions {
			err = m.cache.DeleteAction(m.selectedProject().ID, m.deleteTarget)
		} else {
			err = m.cache.DeleteProject(m.deleteTarget)
		}
		if err != nil {
			m.status = err.Error()
		}
		m.session = StateBrowse
		m.clampCursors()
		m.loadSelectedActions()
	case "n", "N", "esc", "q":
		m.session = StateBrowse
	}

	return m, nil
}
