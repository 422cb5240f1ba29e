package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/moodlogapp/moodlog/internal/models"
)

const requestTimeout = 30 * time.Second

// Every command carries the sequence number it was issued with. A
// response whose sequence no longer matches the model's counter belongs
// to an abandoned screen and is dropped in Update.
type entriesLoadedMsg struct {
	seq     int
	entries []models.Entry
}

type entryComposedMsg struct {
	seq    int
	entry  models.Entry
	degErr error // non-nil when the entry was saved without analysis
}

type entryDeletedMsg struct {
	seq int
	id  int64
}

type statsLoadedMsg struct {
	seq     int
	summary models.StatisticsSummary
}

type insightsLoadedMsg struct {
	seq  int
	text string
}

type techniquesLoadedMsg struct {
	seq    int
	bundle models.TechniqueBundle
}

type loginDoneMsg struct {
	seq int
}

type requestFailedMsg struct {
	seq int
	err error
}

func (m Model) loadEntries(seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		entries, err := m.client.ListEntries(ctx)
		if err != nil {
			return requestFailedMsg{seq: seq, err: err}
		}
		return entriesLoadedMsg{seq: seq, entries: entries}
	}
}

func (m Model) composeEntry(seq int, text string, mood *int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		res, err := m.client.ComposeEntry(ctx, text, mood)
		if err != nil {
			return requestFailedMsg{seq: seq, err: err}
		}
		return entryComposedMsg{seq: seq, entry: res.Entry, degErr: res.AnalysisErr}
	}
}

func (m Model) deleteEntry(seq int, id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if err := m.client.DeleteEntry(ctx, id); err != nil {
			return requestFailedMsg{seq: seq, err: err}
		}
		return entryDeletedMsg{seq: seq, id: id}
	}
}

func (m Model) loadStatistics(seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		summary, err := m.client.Statistics(ctx)
		if err != nil {
			return requestFailedMsg{seq: seq, err: err}
		}
		return statsLoadedMsg{seq: seq, summary: summary}
	}
}

func (m Model) loadInsights(seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		insights, err := m.client.Insights(ctx)
		if err != nil {
			return requestFailedMsg{seq: seq, err: err}
		}
		return insightsLoadedMsg{seq: seq, text: insights.AIInsights}
	}
}

func (m Model) loadTechniques(seq int, distortionType, userContext string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		bundle, err := m.client.Techniques(ctx, distortionType, userContext)
		if err != nil {
			return requestFailedMsg{seq: seq, err: err}
		}
		return techniquesLoadedMsg{seq: seq, bundle: bundle}
	}
}

func (m Model) login(seq int, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if err := m.client.Login(ctx, email, password); err != nil {
			return requestFailedMsg{seq: seq, err: err}
		}
		return loginDoneMsg{seq: seq}
	}
}
