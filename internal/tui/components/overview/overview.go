package overview

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lifelens/lifelens-cli/internal/constants"
	"github.com/lifelens/lifelens-cli/internal/render"
	"github.com/lifelens/lifelens-cli/internal/workflow"
)

type RefreshMsg struct{}

type DeleteGoalMsg struct{}

type CleanupMsg struct{}

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			MarginRight(1)

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	incompleteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

type KeyMap struct {
	Refresh key.Binding
	Delete  key.Binding
	Cleanup key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete goal"),
		),
		Cleanup: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clean up data"),
		),
	}
}

type Model struct {
	viewport viewport.Model
	keys     KeyMap
	snap     workflow.Snapshot
	loaded   bool
	loading  bool
	width    int
}

func New(width, height int) Model {
	vp := viewport.New(width, height)
	vp.SetContent("Loading goals and plan...")
	return Model{
		viewport: vp,
		keys:     DefaultKeyMap(),
		loading:  true,
		width:    width,
	}
}

// SetSnapshot installs a fresh reconciled snapshot.
func (m *Model) SetSnapshot(snap workflow.Snapshot) {
	m.snap = snap
	m.loaded = true
	m.loading = false
	m.viewport.SetContent(m.renderContent())
	m.viewport.GotoTop()
}

// SetFailed shows a refresh failure without discarding the last snapshot.
func (m *Model) SetFailed(message string) {
	m.loading = false
	if m.loaded {
		m.viewport.SetContent(m.renderContent())
		return
	}
	m.viewport.SetContent(incompleteStyle.Render("Could not load goals: "+message) + "\nPress 'r' to retry.")
}

// SetLoading marks a refresh in flight.
func (m *Model) SetLoading() {
	m.loading = true
	m.viewport.SetContent("Loading goals and plan...")
}

// SetSize resizes the viewport.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.viewport.Width = width
	m.viewport.Height = height
	if m.loaded {
		m.viewport.SetContent(m.renderContent())
	}
}

// Snapshot returns the last installed snapshot.
func (m Model) Snapshot() workflow.Snapshot {
	return m.snap
}

// State returns the reconciled data state, or plan-pending before the
// first load.
func (m Model) State() constants.DataState {
	if !m.loaded {
		return constants.DataPlanPending
	}
	return m.snap.State
}

func (m Model) renderContent() string {
	var b strings.Builder

	if len(m.snap.Cards) > 0 {
		var cards []string
		for _, card := range m.snap.Cards {
			cards = append(cards, cardStyle.Render(
				card.Title+"\n"+card.Description+"\n"+card.Category+" · "+card.Date,
			))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
		b.WriteString("\n\n")
	}

	switch m.snap.State {
	case constants.DataReady:
		b.WriteString(render.Markdown(*m.snap.Plan.GeneratedPlan, m.width))
	case constants.DataPlanPending:
		b.WriteString(pendingStyle.Render("No plan generated yet. Run 'lifelens plan create' to make one."))
	case constants.DataIncomplete:
		b.WriteString(incompleteStyle.Render("No goals and no plan found."))
		b.WriteString("\nIf this is unexpected the account data may be incomplete.")
		b.WriteString("\nPress 'c' to clean up (deletes ALL backend data).")
	}

	return b.String()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Refresh):
			return m, func() tea.Msg { return RefreshMsg{} }
		case key.Matches(keyMsg, m.keys.Delete):
			if m.loaded && !m.snap.Plan.Missing() {
				return m, func() tea.Msg { return DeleteGoalMsg{} }
			}
		case key.Matches(keyMsg, m.keys.Cleanup):
			if m.State() == constants.DataIncomplete {
				return m, func() tea.Msg { return CleanupMsg{} }
			}
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}
