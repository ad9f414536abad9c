package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lifelens/lifelens-cli/internal/api"
	"github.com/lifelens/lifelens-cli/internal/models"
	"github.com/lifelens/lifelens-cli/internal/workflow"
)

// Messages delivered by the async commands below. Every command carries
// its error in the message rather than failing the program; the root
// model turns errors into notices.

type overviewMsg struct {
	snap workflow.Snapshot
	err  error
}

type profileMsg struct {
	profile models.UserProfile
	err     error
}

type chatHistoryMsg struct {
	messages []models.ChatMessage
	err      error
}

type goalDeletedMsg struct {
	err error
}

type cleanupDoneMsg struct {
	err error
}

type habitSyncedMsg struct {
	habits []models.Habit
	err    error
}

type clearNoticeMsg struct {
	id int
}

func refreshOverviewCmd(ctx context.Context, client *api.Client) tea.Cmd {
	return func() tea.Msg {
		snap, err := workflow.NewOverview(client).Refresh(ctx)
		return overviewMsg{snap: snap, err: err}
	}
}

func fetchProfileCmd(ctx context.Context, client *api.Client) tea.Cmd {
	return func() tea.Msg {
		profile, err := client.GetProfile(ctx)
		return profileMsg{profile: profile, err: err}
	}
}

func fetchChatCmd(ctx context.Context, client *api.Client) tea.Cmd {
	return func() tea.Msg {
		messages, err := client.ChatHistory(ctx)
		return chatHistoryMsg{messages: messages, err: err}
	}
}

// sendChatCmd posts the message and refetches the whole conversation, so
// the view always shows the backend's ordering.
func sendChatCmd(ctx context.Context, client *api.Client, message string) tea.Cmd {
	return func() tea.Msg {
		if _, err := client.SendChat(ctx, message); err != nil {
			return chatHistoryMsg{err: err}
		}
		messages, err := client.ChatHistory(ctx)
		return chatHistoryMsg{messages: messages, err: err}
	}
}

func deleteGoalCmd(ctx context.Context, client *api.Client, snap workflow.Snapshot) tea.Cmd {
	return func() tea.Msg {
		err := workflow.NewOverview(client).DeleteGoal(ctx, snap)
		return goalDeletedMsg{err: err}
	}
}

func cleanupCmd(ctx context.Context, client *api.Client) tea.Cmd {
	return func() tea.Msg {
		err := workflow.NewOverview(client).Cleanup(ctx)
		return cleanupDoneMsg{err: err}
	}
}

// syncHabitsCmd pushes local habits unknown to the backend and returns
// the union, mirroring 'lifelens habit sync'.
func syncHabitsCmd(ctx context.Context, client *api.Client, local []models.Habit) tea.Cmd {
	return func() tea.Msg {
		remote, err := client.ListHabits(ctx)
		if err != nil {
			return habitSyncedMsg{err: err}
		}

		known := make(map[string]bool, len(remote))
		for _, h := range remote {
			known[h.Name] = true
		}
		for _, h := range local {
			if known[h.Name] {
				continue
			}
			if err := client.SaveHabit(ctx, h); err != nil {
				return habitSyncedMsg{err: err}
			}
		}

		seen := make(map[string]bool, len(local))
		merged := local
		for _, h := range local {
			seen[h.Name] = true
		}
		for _, h := range remote {
			if !seen[h.Name] {
				merged = append(merged, h)
			}
		}
		return habitSyncedMsg{habits: merged}
	}
}
