package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/moodlogapp/moodlog/internal/models"
	"github.com/moodlogapp/moodlog/internal/present"
	"github.com/moodlogapp/moodlog/internal/stats"
)

type InsightsMsg struct{}

type KeyMap struct {
	Insights key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Insights: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "insights"),
		),
	}
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var sparkRunes = []rune("▁▂▄▆█")

type Model struct {
	summary  models.StatisticsSummary
	insights string
	loaded   bool
	keys     KeyMap
	viewport viewport.Model
}

func New(width, height int) Model {
	return Model{
		keys:     DefaultKeyMap(),
		viewport: viewport.New(width, height),
	}
}

// SetSummary replaces the aggregated view; stale insights are kept until
// a fresh narrative arrives.
func (m *Model) SetSummary(summary models.StatisticsSummary) {
	m.summary = summary
	m.loaded = true
	m.viewport.SetContent(m.render())
}

// SetInsights attaches the generated narrative below the numbers.
func (m *Model) SetInsights(text string) {
	m.insights = strings.TrimSpace(text)
	m.viewport.SetContent(m.render())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Insights) {
			return m, func() tea.Msg { return InsightsMsg{} }
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.loaded {
		return "\n  Loading statistics…"
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	if m.loaded {
		m.viewport.SetContent(m.render())
	}
}

func (m Model) render() string {
	s := m.summary
	var b strings.Builder

	if s.EntryCount == 0 {
		return "\n  No entries yet. Write one and the dashboard fills in."
	}

	b.WriteString(headingStyle.Render("Overview"))
	b.WriteString(fmt.Sprintf("\nEntries: %d (%d analyzed)\n", s.EntryCount, s.AnalyzedEntries))
	b.WriteString(fmt.Sprintf("Distortions found: %d\n", s.TotalDistortions))
	if s.AverageConfidence > 0 {
		b.WriteString(fmt.Sprintf("Average detection confidence: %d%%\n", s.AverageConfidence))
	}

	if len(s.DistortionFreq) > 0 {
		b.WriteString("\n" + headingStyle.Render("Most frequent distortions") + "\n")
		for _, f := range s.DistortionFreq {
			b.WriteString(fmt.Sprintf("  %-24s %3d  %s %d%%\n",
				f.Type, f.Count, present.ProgressBar(f.Percentage, 20), f.Percentage))
		}
	}

	b.WriteString("\n" + headingStyle.Render("Risk") + "\n")
	for _, row := range []struct {
		level string
		count int
	}{
		{"low", s.RiskDistribution.Low},
		{"medium", s.RiskDistribution.Medium},
		{"high", s.RiskDistribution.High},
	} {
		risk := present.RiskView(row.level)
		b.WriteString(fmt.Sprintf("  %s %d\n",
			risk.Style.Render(fmt.Sprintf("%-8s", risk.Label)), row.count))
	}
	if s.RiskDistribution.Unknown > 0 {
		b.WriteString(fmt.Sprintf("  %s %d\n",
			dimStyle.Render(fmt.Sprintf("%-8s", "UNKNOWN")), s.RiskDistribution.Unknown))
	}
	b.WriteString(fmt.Sprintf("High risk: %d%%  Medium or above: %d%%\n",
		s.HighRiskPercentage, s.MediumPlusRiskPercent))

	if len(s.MoodDistribution) > 0 {
		b.WriteString("\n" + headingStyle.Render("Mood") + "\n")
		for _, md := range s.MoodDistribution {
			b.WriteString(fmt.Sprintf("  %-12s %3d  %s %d%%\n",
				md.Label, md.Count, present.ProgressBar(md.Percentage, 20), md.Percentage))
		}
		if s.DominantMood != "" {
			b.WriteString(fmt.Sprintf("Dominant mood: %s\n", s.DominantMood))
		}
	}

	if len(s.MoodTimeline) > 1 {
		b.WriteString(fmt.Sprintf("\nTrend: %s", s.MoodTrend.Direction))
		if s.MoodTrend.Direction != stats.TrendFlat && s.MoodTrend.Percentage > 0 {
			b.WriteString(fmt.Sprintf(" by %d%%", s.MoodTrend.Percentage))
		}
		b.WriteString("\nTimeline: " + sparkline(s.MoodTimeline) + "\n")
	}

	if m.insights != "" {
		b.WriteString("\n" + headingStyle.Render("Insights") + "\n")
		b.WriteString(m.insights + "\n")
	} else {
		b.WriteString(dimStyle.Render("\nPress 'i' for generated insights.\n"))
	}

	return b.String()
}

func sparkline(points []models.MoodPoint) string {
	var b strings.Builder
	for _, p := range points {
		idx := p.MoodScore - 1
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkRunes) {
			idx = len(sparkRunes) - 1
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}
