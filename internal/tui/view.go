package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/quartr/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.session {
	case StateAddProject, StateAddAction:
		return m.form.View()
	case StateConfirmDelete:
		return m.viewConfirmDelete()
	}

	sections := []string{
		m.viewHeader(),
		lipgloss.JoinHorizontal(lipgloss.Top, m.viewProjects(), m.viewActions()),
	}
	if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewHeader() string {
	header := fmt.Sprintf("Q%d %d · Week %d", m.cache.CurrentQuarter, m.cache.CurrentYear, m.cache.CurrentWeek)
	if m.cache.CurrentCycle != nil {
		header += " · " + m.cache.CurrentCycle.Title
	} else {
		header += " · " + "no cycle"
	}
	return headerStyle.Render(header)
}

func (m Model) paneWidth() int {
	w := m.width/2 - 4
	if w < 30 {
		w = 30
	}
	return w
}

func (m Model) viewProjects() string {
	var b strings.Builder
	b.WriteString("Projects\n\n")

	if len(m.cache.Projects) == 0 {
		b.WriteString(dimStyle.Render("No projects this quarter.\nPress p to create one."))
	}
	for i, p := range m.cache.Projects {
		line := p.Title
		if p.Deadline != "" {
			line += " " + dimStyle.Render("("+p.Deadline+")")
		}
		if i == m.projectCursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	style := inactivePaneStyle
	if m.focus == paneProjects {
		style = activePaneStyle
	}
	return style.Width(m.paneWidth()).Render(b.String())
}

func (m Model) viewActions() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Week %d actions\n\n", m.cache.CurrentWeek)

	actions := m.selectedActions()
	if len(actions) == 0 {
		b.WriteString(dimStyle.Render("No actions this week.\nPress a to add one."))
	}
	for i, a := range actions {
		check := "[ ]"
		content := a.Content
		if a.IsCompleted {
			check = "[x]"
			content = doneStyle.Render(content)
		}
		line := check + " " + content
		if a.Priority != constants.PriorityNone {
			line += " " + dimStyle.Render("("+string(a.Priority)+")")
		}
		if a.DueDate != "" {
			line += " " + dimStyle.Render("due "+a.DueDate)
		}
		if i == m.actionCursor && m.focus == paneActions {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	style := inactivePaneStyle
	if m.focus == paneActions {
		style = activePaneStyle
	}
	return style.Width(m.paneWidth()).Render(b.String())
}

func (m Model) viewConfirmDelete() string {
	what := "project (and all its actions and plans)"
	if m.deletePane == paneActions {
		what = "action"
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete this %s?", what)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
