package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lifelens/lifelens-cli/internal/models"
)

type Store struct {
	Version     int                   `json:"version"`
	Habits      []models.Habit        `json:"habits"`
	Tasks       []models.Task         `json:"tasks"`
	MoodEntries []models.MoodEntry    `json:"mood_entries"`
	Finance     []models.FinanceMonth `json:"finance"`
	UIState     models.UIState        `json:"ui_state"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:     1,
		Habits:      []models.Habit{},
		Tasks:       []models.Task{},
		MoodEntries: []models.MoodEntry{},
		Finance:     []models.FinanceMonth{},
		UIState:     models.DefaultUIState(),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'lifelens init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure lists are initialized
	if s.store.Habits == nil {
		s.store.Habits = []models.Habit{}
	}
	if s.store.Tasks == nil {
		s.store.Tasks = []models.Task{}
	}
	if s.store.MoodEntries == nil {
		s.store.MoodEntries = []models.MoodEntry{}
	}
	if s.store.Finance == nil {
		s.store.Finance = []models.FinanceMonth{}
	}
	if s.store.UIState == (models.UIState{}) {
		s.store.UIState = models.DefaultUIState()
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetHabits() ([]models.Habit, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.store.Habits, nil
}

func (s *JSONStore) SaveHabits(habits []models.Habit) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Habits = habits
	return s.save()
}

func (s *JSONStore) GetTasks() ([]models.Task, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.store.Tasks, nil
}

func (s *JSONStore) SaveTasks(tasks []models.Task) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Tasks = tasks
	return s.save()
}

func (s *JSONStore) GetMoodEntries() ([]models.MoodEntry, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.store.MoodEntries, nil
}

func (s *JSONStore) SaveMoodEntries(entries []models.MoodEntry) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.MoodEntries = entries
	return s.save()
}

func (s *JSONStore) GetFinance() ([]models.FinanceMonth, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.store.Finance, nil
}

func (s *JSONStore) SaveFinance(months []models.FinanceMonth) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Finance = months
	return s.save()
}

func (s *JSONStore) GetUIState() (models.UIState, error) {
	if s.store == nil {
		return models.UIState{}, fmt.Errorf("storage not loaded")
	}
	return s.store.UIState, nil
}

func (s *JSONStore) SaveUIState(state models.UIState) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.UIState = state
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
