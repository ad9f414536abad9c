package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/lifelens/lifelens-cli/internal/api"
	"github.com/lifelens/lifelens-cli/internal/constants"
	"github.com/lifelens/lifelens-cli/internal/models"
	"github.com/lifelens/lifelens-cli/internal/storage"
	"github.com/lifelens/lifelens-cli/internal/tui/components/chat"
	"github.com/lifelens/lifelens-cli/internal/tui/components/habits"
	"github.com/lifelens/lifelens-cli/internal/tui/components/mood"
	"github.com/lifelens/lifelens-cli/internal/tui/components/overview"
	"github.com/lifelens/lifelens-cli/internal/validation"
)

type HabitFormModel struct {
	Name      string
	Frequency string
	Category  string
}

type MoodFormModel struct {
	Mood string
	Note string
}

// tabStates are the states reachable by tab cycling, in display order.
var tabStates = []constants.SessionState{
	constants.StateOverview,
	constants.StateProfile,
	constants.StateHabits,
	constants.StateMood,
	constants.StateChat,
}

var tabNames = map[constants.SessionState]string{
	constants.StateOverview: "overview",
	constants.StateProfile:  "profile",
	constants.StateHabits:   "habits",
	constants.StateMood:     "mood",
	constants.StateChat:     "chat",
}

func stateForTab(name string) constants.SessionState {
	for state, n := range tabNames {
		if n == name {
			return state
		}
	}
	return constants.StateOverview
}

type Model struct {
	store         storage.Provider
	client        *api.Client
	validator     *validation.Validator
	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	overviewModel overview.Model
	habitsModel   habits.Model
	moodModel     mood.Model
	chatModel     chat.Model

	form      *huh.Form
	habitForm *HabitFormModel
	moodForm  *MoodFormModel

	profile       models.UserProfile
	profileLoaded bool

	// ctx is cancelled on quit so in-flight requests abort with the program.
	ctx    context.Context
	cancel context.CancelFunc

	notice   string
	noticeID int
	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, client *api.Client) Model {
	habitList, err := store.GetHabits()
	if err != nil {
		habitList = []models.Habit{}
	}
	moodEntries, err := store.GetMoodEntries()
	if err != nil {
		moodEntries = []models.MoodEntry{}
	}

	state := constants.StateOverview
	if ui, err := store.GetUIState(); err == nil {
		state = stateForTab(ui.ActiveTab)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		ctx:           ctx,
		cancel:        cancel,
		store:         store,
		client:        client,
		validator:     validation.New(),
		state:         state,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		overviewModel: overview.New(0, 0),
		habitsModel:   habits.New(habitList, 0, 0),
		moodModel:     mood.New(moodEntries, 0, 0),
		chatModel:     chat.New(0, 0),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateOverview:
		ov := overview.DefaultKeyMap()
		keys = append(keys, ov.Refresh, ov.Delete)
	case constants.StateHabits:
		hk := habits.DefaultKeyMap()
		keys = append(keys, hk.Add, hk.Mark, hk.Sync)
	case constants.StateMood:
		keys = append(keys, mood.DefaultKeyMap().Log)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case constants.StateOverview:
		ov := overview.DefaultKeyMap()
		actions = []key.Binding{ov.Refresh, ov.Delete, ov.Cleanup}
	case constants.StateHabits:
		hk := habits.DefaultKeyMap()
		actions = []key.Binding{hk.Add, hk.Mark, hk.Sync}
	case constants.StateMood:
		actions = []key.Binding{mood.DefaultKeyMap().Log}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		refreshOverviewCmd(m.ctx, m.client),
		fetchProfileCmd(m.ctx, m.client),
		fetchChatCmd(m.ctx, m.client),
	)
}

// setNotice installs a transient notice and returns the command that
// expires it. A newer notice invalidates pending expiries.
func (m *Model) setNotice(text string) tea.Cmd {
	m.notice = text
	m.noticeID++
	id := m.noticeID
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return clearNoticeMsg{id: id}
	})
}

// persistUIState saves the active tab so the next launch resumes there.
func (m *Model) persistUIState() tea.Cmd {
	ui, err := m.store.GetUIState()
	if err != nil {
		ui = models.DefaultUIState()
	}
	if name, ok := tabNames[m.state]; ok {
		ui.ActiveTab = name
	}
	if err := m.store.SaveUIState(ui); err != nil {
		return m.setNotice("could not save UI state: " + err.Error())
	}
	return nil
}

// saveHabits writes the habit list and refreshes the component.
func (m *Model) saveHabits(habitList []models.Habit) tea.Cmd {
	if err := m.store.SaveHabits(habitList); err != nil {
		return m.setNotice("could not save habits: " + err.Error())
	}
	m.habitsModel.SetHabits(habitList)
	return nil
}

func newHabitForm(data *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(&data.Name),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("Daily", constants.FrequencyDaily),
					huh.NewOption("Weekly", constants.FrequencyWeekly),
					huh.NewOption("Monthly", constants.FrequencyMonthly),
				).
				Value(&data.Frequency),
			huh.NewInput().
				Title("Category").
				Value(&data.Category),
		),
	)
}

func newMoodForm(data *MoodFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How are you feeling?").
				Options(
					huh.NewOption("Great", "great"),
					huh.NewOption("Good", "good"),
					huh.NewOption("Okay", "okay"),
					huh.NewOption("Low", "low"),
					huh.NewOption("Awful", "awful"),
				).
				Value(&data.Mood),
			huh.NewInput().
				Title("Note (optional)").
				Value(&data.Note),
		),
	)
}
