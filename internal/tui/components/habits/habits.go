package habits

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lifelens/lifelens-cli/internal/models"
)

type AddHabitMsg struct{}

type MarkHabitMsg struct {
	ID string
}

type SyncHabitsMsg struct{}

type Item struct {
	Habit models.Habit
}

func (i Item) Title() string {
	if i.Habit.CompletedToday() {
		return "✓ " + i.Habit.Name
	}
	return "○ " + i.Habit.Name
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%s · streak %d (best %d)", i.Habit.Frequency, i.Habit.CurrentStreak, i.Habit.BestStreak)
	if i.Habit.CompletedToday() {
		return desc + " · done today"
	}
	return desc
}

func (i Item) FilterValue() string { return i.Habit.Name }

type KeyMap struct {
	Add  key.Binding
	Mark key.Binding
	Sync key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Mark: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mark done"),
		),
		Sync: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sync"),
		),
	}
}

type Model struct {
	list  list.Model
	keys  KeyMap
	today string
}

func New(habits []models.Habit, width, height int) Model {
	items := toItems(habits)

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return Model{
		list:  l,
		keys:  DefaultKeyMap(),
		today: time.Now().Format("2006-01-02"),
	}
}

func toItems(habits []models.Habit) []list.Item {
	items := make([]list.Item, 0, len(habits))
	for _, h := range habits {
		items = append(items, Item{Habit: h})
	}
	return items
}

// SetHabits replaces the listed habits.
func (m *Model) SetHabits(habits []models.Habit) {
	m.list.SetItems(toItems(habits))
}

// SetSize resizes the underlying list.
func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Selected returns the habit under the cursor.
func (m Model) Selected() (models.Habit, bool) {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return models.Habit{}, false
	}
	return item.Habit, true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		switch {
		case key.Matches(keyMsg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(keyMsg, m.keys.Mark):
			if habit, ok := m.Selected(); ok {
				return m, func() tea.Msg { return MarkHabitMsg{ID: habit.ID} }
			}
		case key.Matches(keyMsg, m.keys.Sync):
			return m, func() tea.Msg { return SyncHabitsMsg{} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
