package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/moodlogapp/moodlog/internal/api"
	"github.com/moodlogapp/moodlog/internal/constants"
	"github.com/moodlogapp/moodlog/internal/logger"
	"github.com/moodlogapp/moodlog/internal/stats"
	"github.com/moodlogapp/moodlog/internal/tui/components/dashboard"
	"github.com/moodlogapp/moodlog/internal/tui/components/detail"
	"github.com/moodlogapp/moodlog/internal/tui/components/entrylist"
	"github.com/moodlogapp/moodlog/internal/validation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle Login State
	if m.state == constants.StateLogin {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			if msg.Type == tea.KeyCtrlC {
				m.quitting = true
				return m, tea.Quit
			}
		case loginDoneMsg:
			if msg.seq != m.seq {
				return m, nil
			}
			m.state = constants.StateArchive
			m.statusMsg = ""
			m.seq++
			return m, tea.Batch(m.loadEntries(m.seq), m.loadStatistics(m.seq))
		case requestFailedMsg:
			if msg.seq != m.seq {
				return m, nil
			}
			m.statusMsg = msg.err.Error()
			m.loginForm = &LoginFormModel{Email: m.loginForm.Email}
			m.form = newLoginForm(m.loginForm)
			return m, m.form.Init()
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		if m.form.State == huh.StateCompleted {
			email := strings.TrimSpace(m.loginForm.Email)
			if err := validation.Email(email); err != nil {
				m.statusMsg = err.Error()
				m.loginForm = &LoginFormModel{Email: email}
				m.form = newLoginForm(m.loginForm)
				return m, m.form.Init()
			}
			m.statusMsg = "Signing in…"
			return m, m.login(m.seq, email, m.loginForm.Password)
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Compose State
	if m.state == constants.StateCompose {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = constants.StateArchive
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			if err := validation.EntryText(m.composeForm.Text); err != nil {
				m.statusMsg = err.Error()
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}
			var mood *int
			if n, err := strconv.Atoi(m.composeForm.Mood); err == nil && n != 0 {
				mood = &n
			}
			m.state = constants.StateArchive
			m.statusMsg = "Analyzing entry…"
			return m, m.composeEntry(m.seq, strings.TrimSpace(m.composeForm.Text), mood)
		case huh.StateAborted:
			m.state = constants.StateArchive
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Confirm Delete State
	if m.state == constants.StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				m.state = constants.StateArchive
				m.statusMsg = "Deleting entry…"
				return m, m.deleteEntry(m.seq, m.entryToDeleteID)
			case "n", "N", "esc", "q":
				m.state = constants.StateArchive
				m.entryToDeleteID = 0
			}
			return m, nil
		}
	}

	// Handle Techniques State
	if m.state == constants.StateTechniques {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "esc", "backspace", "q":
				m.techniques = nil
				m.state = constants.StateDetail
				return m, nil
			}
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		contentHeight := msg.Height - 4 // tabs + help

		h, v := docStyle.GetFrameSize()
		m.archive.SetSize(msg.Width-h, contentHeight-v)
		m.detailModel.SetSize(msg.Width-h, contentHeight-v)
		m.dashboardModel.SetSize(msg.Width-h, contentHeight-v)

	case entriesLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.offline = false
		m.statusMsg = ""
		m.archive.SetEntries(msg.entries)
		if m.cache != nil {
			if err := m.cache.ReplaceEntries(msg.entries); err != nil {
				logger.Warn("Local cache update failed", "op", "replace", "error", err)
			}
		}
		return m, nil

	case entryComposedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		if msg.degErr != nil {
			m.statusMsg = "Saved; analysis was unavailable"
		} else {
			m.statusMsg = "Saved"
		}
		return m, tea.Batch(m.loadEntries(m.seq), m.loadStatistics(m.seq))

	case entryDeletedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.statusMsg = ""
		m.entryToDeleteID = 0
		if m.cache != nil {
			if err := m.cache.RemoveEntry(msg.id); err != nil {
				logger.Warn("Local cache update failed", "op", "remove", "error", err)
			}
		}
		return m, tea.Batch(m.loadEntries(m.seq), m.loadStatistics(m.seq))

	case statsLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.dashboardModel.SetSummary(msg.summary)
		return m, nil

	case insightsLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.dashboardModel.SetInsights(msg.text)
		return m, nil

	case techniquesLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.techniquesLoading = false
		m.techniques = &msg.bundle
		return m, nil

	case requestFailedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		return m.handleRequestFailure(msg.err)

	case entrylist.ComposeMsg:
		m.composeForm = &ComposeFormModel{Mood: "0"}
		m.form = newComposeForm(m.composeForm)
		m.previousState = m.state
		m.state = constants.StateCompose
		return m, m.form.Init()

	case entrylist.OpenEntryMsg:
		m.detailModel.SetEntry(msg.Entry)
		m.state = constants.StateDetail
		return m, nil

	case entrylist.DeleteEntryMsg:
		m.entryToDeleteID = msg.ID
		m.state = constants.StateConfirmDelete
		return m, nil

	case entrylist.RefreshMsg:
		m.seq++
		m.statusMsg = "Refreshing…"
		return m, tea.Batch(m.loadEntries(m.seq), m.loadStatistics(m.seq))

	case detail.BackMsg:
		m.state = constants.StateArchive
		return m, nil

	case detail.TechniquesMsg:
		m.techniques = nil
		m.techniquesLoading = true
		m.state = constants.StateTechniques
		return m, m.loadTechniques(m.seq, msg.DistortionType, msg.UserContext)

	case dashboard.InsightsMsg:
		return m, m.loadInsights(m.seq)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
			if m.state == constants.StateArchive {
				m.state = constants.StateDashboard
			} else if m.state == constants.StateDashboard {
				m.state = constants.StateArchive
			}
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateArchive:
		m.archive, cmd = m.archive.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateDetail:
		m.detailModel, cmd = m.detailModel.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateDashboard:
		m.dashboardModel, cmd = m.dashboardModel.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleRequestFailure routes a failed request: an expired session drops
// back to the login screen once, anything else falls back to the local
// mirror so the archive stays browsable offline.
func (m Model) handleRequestFailure(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, api.ErrUnauthenticated) {
		m.seq++
		m.state = constants.StateLogin
		m.statusMsg = "Session expired, please log in again"
		m.loginForm = &LoginFormModel{}
		m.form = newLoginForm(m.loginForm)
		return m, m.form.Init()
	}

	m.statusMsg = err.Error()
	if m.cache != nil && !m.offline {
		if cached, cacheErr := m.cache.Entries(); cacheErr == nil && len(cached) > 0 {
			m.offline = true
			m.archive.SetEntries(cached)
			m.dashboardModel.SetSummary(stats.Aggregate(cached))
		}
	}
	return m, nil
}
