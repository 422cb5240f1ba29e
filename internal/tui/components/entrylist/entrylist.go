package entrylist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/moodlogapp/moodlog/internal/constants"
	"github.com/moodlogapp/moodlog/internal/models"
	"github.com/moodlogapp/moodlog/internal/present"
	"github.com/moodlogapp/moodlog/internal/view"
)

type OpenEntryMsg struct {
	Entry models.Entry
}

type DeleteEntryMsg struct {
	ID int64
}

type ComposeMsg struct{}

type RefreshMsg struct{}

type Item struct {
	Entry models.Entry
}

func (i Item) Title() string {
	mood := present.MoodView(i.Entry.MoodScore)
	return fmt.Sprintf("%s %s", mood.Icon, present.Truncate(i.Entry.Text, 60))
}

func (i Item) Description() string {
	desc := i.Entry.CreatedAt.Format(constants.DateTimeFormat)
	if i.Entry.Analysis != nil {
		risk := present.RiskView(i.Entry.Analysis.RiskLevel)
		desc += fmt.Sprintf("  %s, %d distortion(s)",
			risk.Style.Render(risk.Label), len(i.Entry.Analysis.Distortions))
	}
	return desc
}

func (i Item) FilterValue() string { return i.Entry.Text }

type KeyMap struct {
	Compose key.Binding
	Open    key.Binding
	Delete  key.Binding
	Sort    key.Binding
	Refresh key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Compose: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "new entry"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle sort"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "refresh"),
		),
	}
}

// substringFilter ranks targets by case-insensitive substring match, the
// ordering the view package applies everywhere else.
func substringFilter(term string, targets []string) []list.Rank {
	needle := strings.ToLower(term)
	var ranks []list.Rank
	for i, target := range targets {
		idx := strings.Index(strings.ToLower(target), needle)
		if idx < 0 {
			continue
		}
		matched := make([]int, len(needle))
		for j := range matched {
			matched[j] = idx + j
		}
		ranks = append(ranks, list.Rank{Index: i, MatchedIndexes: matched})
	}
	return ranks
}

type Model struct {
	list    list.Model
	keys    KeyMap
	entries []models.Entry
	sortKey constants.SortKey
	sortIdx int
}

func New(entries []models.Entry, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Journal"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	// Same match rule as 'entry list --search': case-insensitive
	// substring, not fuzzy.
	l.Filter = substringFilter

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Compose, keys.Open, keys.Delete, keys.Sort}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Compose, keys.Open, keys.Delete, keys.Sort, keys.Refresh}
	}

	m := Model{
		list:    l,
		keys:    keys,
		sortKey: constants.SortNewest,
	}
	m.SetEntries(entries)
	return m
}

// SetEntries replaces the backing archive and re-applies the current
// ordering. The search filter is the list's own fuzzy filter.
func (m *Model) SetEntries(entries []models.Entry) {
	m.entries = entries
	m.applyOrder()
}

func (m *Model) applyOrder() {
	ordered := view.View(m.entries, "", m.sortKey)
	items := make([]list.Item, len(ordered))
	for i, e := range ordered {
		items[i] = Item{Entry: e}
	}
	m.list.SetItems(items)
}

// SortKey returns the ordering currently applied.
func (m Model) SortKey() constants.SortKey { return m.sortKey }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Compose):
			return m, func() tea.Msg { return ComposeMsg{} }
		case key.Matches(msg, m.keys.Open):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return OpenEntryMsg{Entry: i.Entry} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteEntryMsg{ID: i.Entry.ID} }
			}
		case key.Matches(msg, m.keys.Sort):
			m.sortIdx = (m.sortIdx + 1) % len(constants.SortKeys)
			m.sortKey = constants.SortKeys[m.sortIdx]
			m.applyOrder()
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, func() tea.Msg { return RefreshMsg{} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No entries yet.\n  Press 'a' to write one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
