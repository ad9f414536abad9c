package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lifelens/lifelens-cli/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case constants.StateOverview:
		content = docStyle.Render(m.overviewModel.View())
	case constants.StateProfile:
		content = docStyle.Render(m.viewProfile())
	case constants.StateHabits:
		content = docStyle.Render(m.habitsModel.View())
	case constants.StateMood:
		content = docStyle.Render(m.moodModel.View())
	case constants.StateChat:
		content = docStyle.Render(m.chatModel.View())
	case constants.StateAddHabit, constants.StateLogMood:
		content = docStyle.Render(m.form.View())
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	case constants.StateConfirmCleanup:
		content = m.viewConfirmCleanup()
	}

	sections := []string{m.viewTabs(), content}
	if m.notice != "" {
		sections = append(sections, noticeStyle.Render(m.notice))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	titles := map[constants.SessionState]string{
		constants.StateOverview: "Overview",
		constants.StateProfile:  "Profile",
		constants.StateHabits:   "Habits",
		constants.StateMood:     "Mood",
		constants.StateChat:     "Chat",
	}

	var tabs []string
	for _, state := range tabStates {
		title := titles[state]
		active := m.state == state
		// Forms and confirms overlay the tab they were opened from.
		if m.state > constants.StateChat && m.previousState == state {
			active = true
		}
		if active {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewProfile() string {
	if !m.profileLoaded {
		return "Loading profile..."
	}
	if m.profile.Empty() {
		return "No profile saved yet. Run 'lifelens profile save' or 'lifelens plan create' to set one up."
	}

	var b strings.Builder
	row := func(label, value string) {
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(&b, "%-10s %s\n", label, value)
	}

	row("Name", strDeref(m.profile.FullName))
	row("Age", intDeref(m.profile.Age))
	row("Gender", strDeref(m.profile.Gender))
	row("Height", intDeref(m.profile.Height))
	row("Weight", intDeref(m.profile.Weight))
	return b.String()
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intDeref(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete the stored goal record?"),
			"The generated plan and its goals will be removed from the backend.",
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m Model) viewConfirmCleanup() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete ALL backend data for this account?"),
			"This removes the profile, goals, habits, moods and chat history.",
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
