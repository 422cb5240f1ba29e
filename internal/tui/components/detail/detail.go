package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/moodlogapp/moodlog/internal/constants"
	"github.com/moodlogapp/moodlog/internal/models"
	"github.com/moodlogapp/moodlog/internal/present"
)

type BackMsg struct{}

type TechniquesMsg struct {
	DistortionType string
	UserContext    string
}

type KeyMap struct {
	Back       key.Binding
	Next       key.Binding
	Prev       key.Binding
	Techniques key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "n"),
			key.WithHelp("n", "next distortion"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "p"),
			key.WithHelp("p", "prev distortion"),
		),
		Techniques: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "techniques"),
		),
	}
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type Model struct {
	entry    models.Entry
	display  present.DisplayModel
	selected int
	keys     KeyMap
	viewport viewport.Model
}

func New(width, height int) Model {
	return Model{
		keys:     DefaultKeyMap(),
		viewport: viewport.New(width, height),
	}
}

// SetEntry swaps the entry on display and resets distortion selection.
func (m *Model) SetEntry(entry models.Entry) {
	m.entry = entry
	m.display = present.Analysis(entry.Analysis)
	m.selected = 0
	m.viewport.SetContent(m.render())
	m.viewport.GotoTop()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return BackMsg{} }
		case key.Matches(msg, m.keys.Next):
			if n := len(m.display.Distortions); n > 0 {
				m.selected = (m.selected + 1) % n
				m.viewport.SetContent(m.render())
			}
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			if n := len(m.display.Distortions); n > 0 {
				m.selected = (m.selected - 1 + n) % n
				m.viewport.SetContent(m.render())
			}
			return m, nil
		case key.Matches(msg, m.keys.Techniques):
			if m.selected < len(m.display.Distortions) {
				d := m.display.Distortions[m.selected]
				return m, func() tea.Msg {
					return TechniquesMsg{
						DistortionType: d.Type,
						UserContext:    d.Sentence,
					}
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.viewport.SetContent(m.render())
}

func (m Model) render() string {
	var b strings.Builder

	mood := present.MoodView(m.entry.MoodScore)
	b.WriteString(titleStyle.Render(fmt.Sprintf("Entry #%d — %s",
		m.entry.ID, m.entry.CreatedAt.Format(constants.DateTimeFormat))))
	b.WriteString(fmt.Sprintf("\nMood: %s %s\n\n", mood.Icon, mood.Style.Render(mood.Label)))
	b.WriteString(m.entry.Text)
	b.WriteString("\n\n")

	if m.entry.Analysis == nil {
		b.WriteString(dimStyle.Render("No analysis recorded for this entry."))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Risk: %s %s\n",
		m.display.Risk.Style.Render(m.display.Risk.Label),
		present.ProgressBar(m.display.Risk.Progress, 20)))

	if len(m.display.Distortions) == 0 {
		b.WriteString("\nNo cognitive distortions detected.\n")
	}
	for i, d := range m.display.Distortions {
		marker := "  "
		render := func(s string) string { return s }
		if i == m.selected {
			marker = "> "
			render = func(s string) string { return selectedStyle.Render(s) }
		}
		b.WriteString(fmt.Sprintf("\n%s%s", marker, render(d.Type)))
		if d.ConfidenceLabel != "" {
			b.WriteString(dimStyle.Render(" " + d.ConfidenceLabel))
		}
		b.WriteString("\n")
		if d.Sentence != "" {
			b.WriteString(fmt.Sprintf("    \"%s\"\n", d.Sentence))
		}
		if d.Explanation != "" {
			b.WriteString(fmt.Sprintf("    %s\n", d.Explanation))
		}
		if d.Alternative != "" {
			b.WriteString(fmt.Sprintf("    Try instead: %s\n", d.Alternative))
		}
	}

	if len(m.display.Recommendations) > 0 {
		b.WriteString("\nRecommendations:\n")
		for _, r := range m.display.Recommendations {
			b.WriteString(fmt.Sprintf("  - %s\n", r))
		}
	}
	if m.display.AnalyzedAt != "" {
		b.WriteString(dimStyle.Render(fmt.Sprintf("\nAnalyzed at %s\n", m.display.AnalyzedAt)))
	}
	return b.String()
}
