package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/lifelens/lifelens-cli/internal/constants"
	"github.com/lifelens/lifelens-cli/internal/models"
	"github.com/lifelens/lifelens-cli/internal/tui/components/chat"
	"github.com/lifelens/lifelens-cli/internal/tui/components/habits"
	"github.com/lifelens/lifelens-cli/internal/tui/components/mood"
	"github.com/lifelens/lifelens-cli/internal/tui/components/overview"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		contentHeight := msg.Height - 6
		m.overviewModel.SetSize(msg.Width-4, contentHeight)
		m.habitsModel.SetSize(msg.Width-4, contentHeight)
		m.moodModel.SetSize(msg.Width-4, contentHeight)
		m.chatModel.SetSize(msg.Width-4, contentHeight)
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case clearNoticeMsg:
		if msg.id == m.noticeID {
			m.notice = ""
		}
		return m, nil

	case overviewMsg:
		if msg.err != nil {
			m.overviewModel.SetFailed(msg.err.Error())
			return m, m.setNotice(msg.err.Error())
		}
		m.overviewModel.SetSnapshot(msg.snap)
		return m, nil

	case profileMsg:
		if msg.err != nil {
			return m, m.setNotice(msg.err.Error())
		}
		m.profile = msg.profile
		m.profileLoaded = true
		return m, nil

	case chatHistoryMsg:
		if msg.err != nil {
			m.chatModel.SetWaiting(false)
			return m, m.setNotice(msg.err.Error())
		}
		m.chatModel.SetMessages(msg.messages)
		return m, nil

	case goalDeletedMsg:
		if msg.err != nil {
			return m, m.setNotice(msg.err.Error())
		}
		m.overviewModel.SetLoading()
		return m, tea.Batch(
			m.setNotice("goal record deleted"),
			refreshOverviewCmd(m.ctx, m.client),
		)

	case cleanupDoneMsg:
		if msg.err != nil {
			return m, m.setNotice(msg.err.Error())
		}
		m.overviewModel.SetLoading()
		return m, tea.Batch(
			m.setNotice("backend data cleaned up"),
			refreshOverviewCmd(m.ctx, m.client),
		)

	case habitSyncedMsg:
		if msg.err != nil {
			return m, m.setNotice(msg.err.Error())
		}
		return m, tea.Batch(
			m.setNotice("habits synced"),
			m.saveHabits(msg.habits),
		)

	case overview.RefreshMsg:
		m.overviewModel.SetLoading()
		return m, refreshOverviewCmd(m.ctx, m.client)

	case overview.DeleteGoalMsg:
		m.previousState = m.state
		m.state = constants.StateConfirmDelete
		return m, nil

	case overview.CleanupMsg:
		m.previousState = m.state
		m.state = constants.StateConfirmCleanup
		return m, nil

	case habits.AddHabitMsg:
		m.previousState = m.state
		m.state = constants.StateAddHabit
		m.habitForm = &HabitFormModel{Frequency: constants.FrequencyDaily}
		m.form = newHabitForm(m.habitForm)
		return m, m.form.Init()

	case habits.MarkHabitMsg:
		return m.markHabit(msg.ID)

	case habits.SyncHabitsMsg:
		habitList, err := m.store.GetHabits()
		if err != nil {
			return m, m.setNotice(err.Error())
		}
		return m, tea.Batch(
			m.setNotice("syncing habits..."),
			syncHabitsCmd(m.ctx, m.client, habitList),
		)

	case mood.LogMoodMsg:
		m.previousState = m.state
		m.state = constants.StateLogMood
		m.moodForm = &MoodFormModel{}
		m.form = newMoodForm(m.moodForm)
		return m, m.form.Init()

	case chat.SendMsg:
		if result := m.validator.ValidateChatMessage(msg.Message); !result.Valid() {
			return m, m.setNotice(result.FormatReport())
		}
		m.chatModel.SetWaiting(true)
		return m, sendChatCmd(m.ctx, m.client, msg.Message)
	}

	// huh drives its own internal messages; while a form is open every
	// message belongs to it.
	if m.state == constants.StateAddHabit || m.state == constants.StateLogMood {
		return m.updateForm(msg)
	}

	return m.updateActiveComponent(msg)
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Form and confirm states swallow all keys.
	switch m.state {
	case constants.StateAddHabit, constants.StateLogMood:
		return m.updateForm(msg)
	case constants.StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	case constants.StateConfirmCleanup:
		return m.updateConfirmCleanup(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		// The chat input wants plain "q"; only ctrl+c quits there.
		if m.state == constants.StateChat && msg.String() == "q" {
			break
		}
		m.quitting = true
		m.persistUIState()
		m.cancel()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Tab):
		m.state = nextTab(m.state, 1)
		return m, m.persistUIState()
	case key.Matches(msg, m.keys.ShiftTab):
		m.state = nextTab(m.state, -1)
		return m, m.persistUIState()
	case key.Matches(msg, m.keys.Help):
		if m.state != constants.StateChat {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	return m.updateActiveComponent(msg)
}

func nextTab(state constants.SessionState, delta int) constants.SessionState {
	for i, s := range tabStates {
		if s == state {
			return tabStates[(i+delta+len(tabStates))%len(tabStates)]
		}
	}
	return constants.StateOverview
}

func (m Model) updateActiveComponent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case constants.StateOverview:
		m.overviewModel, cmd = m.overviewModel.Update(msg)
	case constants.StateHabits:
		m.habitsModel, cmd = m.habitsModel.Update(msg)
	case constants.StateMood:
		m.moodModel, cmd = m.moodModel.Update(msg)
	case constants.StateChat:
		m.chatModel, cmd = m.chatModel.Update(msg)
	}
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		state := m.state
		m.state = m.previousState
		m.form = nil
		if state == constants.StateAddHabit {
			return m.addHabit()
		}
		return m.logMood()
	case huh.StateAborted:
		m.state = m.previousState
		m.form = nil
		return m, nil
	}

	return m, cmd
}

func (m Model) addHabit() (tea.Model, tea.Cmd) {
	habitList, err := m.store.GetHabits()
	if err != nil {
		return m, m.setNotice(err.Error())
	}

	habit := models.Habit{
		ID:             uuid.NewString(),
		Name:           m.habitForm.Name,
		Frequency:      m.habitForm.Frequency,
		Category:       m.habitForm.Category,
		CompletedDates: []string{},
		CreatedAt:      time.Now(),
	}
	if result := m.validator.ValidateHabit(habit, habitList); !result.Valid() {
		return m, m.setNotice(result.FormatReport())
	}

	return m, m.saveHabits(append(habitList, habit))
}

func (m Model) logMood() (tea.Model, tea.Cmd) {
	entries, err := m.store.GetMoodEntries()
	if err != nil {
		return m, m.setNotice(err.Error())
	}

	entry := models.MoodEntry{
		ID:        uuid.NewString(),
		Mood:      m.moodForm.Mood,
		Note:      m.moodForm.Note,
		Date:      time.Now().Format(constants.DateFormat),
		CreatedAt: time.Now(),
	}
	if result := m.validator.ValidateMoodEntry(entry); !result.Valid() {
		return m, m.setNotice(result.FormatReport())
	}

	entries = models.UpsertMood(entries, entry)
	if err := m.store.SaveMoodEntries(entries); err != nil {
		return m, m.setNotice(err.Error())
	}
	m.moodModel.SetEntries(entries)
	return m, nil
}

func (m Model) markHabit(id string) (tea.Model, tea.Cmd) {
	habitList, err := m.store.GetHabits()
	if err != nil {
		return m, m.setNotice(err.Error())
	}

	today := time.Now().Format(constants.DateFormat)
	for i := range habitList {
		if habitList[i].ID == id {
			if !habitList[i].MarkComplete(today) {
				return m, m.setNotice("already done today")
			}
			break
		}
	}
	return m, m.saveHabits(habitList)
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.state = m.previousState
		return m, deleteGoalCmd(m.ctx, m.client, m.overviewModel.Snapshot())
	case "n", "N", "esc", "q":
		m.state = m.previousState
		return m, nil
	}
	return m, nil
}

func (m Model) updateConfirmCleanup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.state = m.previousState
		return m, cleanupCmd(m.ctx, m.client)
	case "n", "N", "esc", "q":
		m.state = m.previousState
		return m, nil
	}
	return m, nil
}
