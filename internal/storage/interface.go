package storage

import "github.com/lifelens/lifelens-cli/internal/models"

// Provider is the local store behind the non-backend pages. Lists are read
// and written wholesale; there is no per-item CRUD and the last write wins.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	GetHabits() ([]models.Habit, error)
	SaveHabits([]models.Habit) error

	// Tasks
	GetTasks() ([]models.Task, error)
	SaveTasks([]models.Task) error

	// Mood entries
	GetMoodEntries() ([]models.MoodEntry, error)
	SaveMoodEntries([]models.MoodEntry) error

	// Finances
	GetFinance() ([]models.FinanceMonth, error)
	SaveFinance([]models.FinanceMonth) error

	// UI state
	GetUIState() (models.UIState, error)
	SaveUIState(models.UIState) error

	// Utils
	GetConfigPath() string
}
