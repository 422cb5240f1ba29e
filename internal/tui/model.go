// Package tui is the interactive journal: an archive list, an entry
// detail view, and the statistics dashboard, all backed by the HTTP
// client with the sqlite mirror as the offline fallback.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/moodlogapp/moodlog/internal/api"
	"github.com/moodlogapp/moodlog/internal/constants"
	"github.com/moodlogapp/moodlog/internal/models"
	"github.com/moodlogapp/moodlog/internal/storage"
	"github.com/moodlogapp/moodlog/internal/tui/components/dashboard"
	"github.com/moodlogapp/moodlog/internal/tui/components/detail"
	"github.com/moodlogapp/moodlog/internal/tui/components/entrylist"
)

type Model struct {
	client *api.Client
	cache  storage.Cache

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	archive        entrylist.Model
	detailModel    detail.Model
	dashboardModel dashboard.Model

	form        *huh.Form
	loginForm   *LoginFormModel
	composeForm *ComposeFormModel

	techniques        *models.TechniqueBundle
	techniquesLoading bool

	entryToDeleteID int64

	// seq invalidates in-flight requests: bumped whenever the screen they
	// were issued for is abandoned.
	seq int

	offline   bool
	statusMsg string
	quitting  bool
	width     int
	height    int
}

func NewModel(client *api.Client, cache storage.Cache) Model {
	m := Model{
		client:         client,
		cache:          cache,
		keys:           DefaultKeyMap(),
		help:           help.New(),
		archive:        entrylist.New(nil, 0, 0),
		detailModel:    detail.New(0, 0),
		dashboardModel: dashboard.New(0, 0),
	}

	if client.Session().Authenticated() {
		m.state = constants.StateArchive
	} else {
		m.state = constants.StateLogin
		m.loginForm = &LoginFormModel{}
		m.form = newLoginForm(m.loginForm)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.state == constants.StateLogin {
		return m.form.Init()
	}
	return tea.Batch(m.loadEntries(m.seq), m.loadStatistics(m.seq))
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help},
		{m.keys.Up, m.keys.Down, m.keys.Enter},
	}
}
