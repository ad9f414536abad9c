package mood

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lifelens/lifelens-cli/internal/models"
)

type LogMoodMsg struct{}

type Item struct {
	Entry models.MoodEntry
}

func (i Item) Title() string { return i.Entry.Date + "  " + i.Entry.Mood }

func (i Item) Description() string {
	if i.Entry.Note == "" {
		return "no note"
	}
	return i.Entry.Note
}

func (i Item) FilterValue() string { return i.Entry.Mood }

type KeyMap struct {
	Log key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Log: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "log mood"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(entries []models.MoodEntry, width, height int) Model {
	l := list.New(toItems(entries), list.NewDefaultDelegate(), width, height)
	l.Title = "Mood"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	return Model{list: l, keys: DefaultKeyMap()}
}

func toItems(entries []models.MoodEntry) []list.Item {
	// Newest first.
	items := make([]list.Item, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		items = append(items, Item{Entry: entries[i]})
	}
	return items
}

// SetEntries replaces the listed entries.
func (m *Model) SetEntries(entries []models.MoodEntry) {
	m.list.SetItems(toItems(entries))
}

// SetSize resizes the underlying list.
func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keys.Log) {
			return m, func() tea.Msg { return LogMoodMsg{} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
