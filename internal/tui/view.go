package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/moodlogapp/moodlog/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == constants.StateLogin {
		header := "Sign in to your journal"
		body := m.form.View()
		if m.statusMsg != "" {
			body = statusStyle.Render(m.statusMsg) + "\n\n" + body
		}
		return lipgloss.Place(m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Left, header, "", body),
		)
	}

	var content string
	switch m.state {
	case constants.StateArchive:
		content = docStyle.Render(m.archive.View())
	case constants.StateDetail:
		content = docStyle.Render(m.detailModel.View())
	case constants.StateDashboard:
		content = docStyle.Render(m.dashboardModel.View())
	case constants.StateCompose:
		content = m.form.View()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	case constants.StateTechniques:
		content = docStyle.Render(m.viewTechniques())
	}

	var banner string
	if m.offline {
		banner = offlineStyle.Render("OFFLINE — showing cached archive")
	} else if m.statusMsg != "" {
		banner = statusStyle.Render(m.statusMsg)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		banner,
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for _, tab := range []struct {
		title string
		state constants.SessionState
	}{
		{"Journal", constants.StateArchive},
		{"Dashboard", constants.StateDashboard},
	} {
		active := m.state == tab.state
		// Detail, compose, and confirm screens belong to the journal tab.
		if tab.state == constants.StateArchive &&
			(m.state == constants.StateDetail ||
				m.state == constants.StateCompose ||
				m.state == constants.StateTechniques ||
				m.state == constants.StateConfirmDelete) {
			active = true
		}
		if active {
			tabs = append(tabs, activeTabStyle.Render(tab.title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(tab.title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete entry #%d?", m.entryToDeleteID)),
			"This cannot be undone.",
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m Model) viewTechniques() string {
	if m.techniquesLoading {
		return "\n  Fetching techniques…"
	}
	if m.techniques == nil {
		return "\n  No techniques available.\n  Press esc to go back."
	}

	b := m.techniques
	var sb strings.Builder
	sb.WriteString(b.DistortionName + "\n")
	if b.DistortionDescription != "" {
		sb.WriteString(b.DistortionDescription + "\n")
	}
	if b.PersonalizedAdvice != "" {
		sb.WriteString("\n" + b.PersonalizedAdvice + "\n")
	}
	for i, t := range b.Techniques {
		sb.WriteString(fmt.Sprintf("\n%d. %s\n", i+1, t.Title))
		if t.Description != "" {
			sb.WriteString("   " + t.Description + "\n")
		}
		if t.Exercise != "" {
			sb.WriteString("   Exercise: " + t.Exercise + "\n")
		}
	}
	if len(b.NextSteps) > 0 {
		sb.WriteString("\nNext steps:\n")
		for _, s := range b.NextSteps {
			sb.WriteString("  - " + s + "\n")
		}
	}
	sb.WriteString("\nPress esc to go back.")
	return sb.String()
}
