package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lifelens/lifelens-cli/internal/models"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the same wholesale list semantics as the JSON store.
// Each save replaces a table's rows inside one transaction; position
// columns preserve list order across round trips.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS habits (
	position INTEGER PRIMARY KEY,
	id TEXT NOT NULL,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	frequency TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	target_count INTEGER NOT NULL DEFAULT 0,
	current_streak INTEGER NOT NULL DEFAULT 0,
	best_streak INTEGER NOT NULL DEFAULT 0,
	completed_dates TEXT NOT NULL DEFAULT '[]',
	created_at TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS tasks (
	position INTEGER PRIMARY KEY,
	id TEXT NOT NULL,
	title TEXT NOT NULL,
	done INTEGER NOT NULL DEFAULT 0,
	priority TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS mood_entries (
	position INTEGER PRIMARY KEY,
	id TEXT NOT NULL,
	mood TEXT NOT NULL,
	note TEXT NOT NULL DEFAULT '',
	date TEXT NOT NULL,
	created_at TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS finance (
	position INTEGER PRIMARY KEY,
	id TEXT NOT NULL,
	month TEXT NOT NULL,
	income REAL NOT NULL DEFAULT 0,
	expenses TEXT NOT NULL DEFAULT '[]',
	savings REAL NOT NULL DEFAULT 0,
	goals TEXT NOT NULL DEFAULT '[]'
);
CREATE TABLE IF NOT EXISTS ui_state (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	active_tab TEXT NOT NULL,
	planner_mode TEXT NOT NULL
);
`

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if _, err := s.GetUIState(); err != nil {
		if err := s.SaveUIState(models.DefaultUIState()); err != nil {
			return fmt.Errorf("failed to save default UI state: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'lifelens init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// replaceAll deletes a table's rows and re-inserts the given list inside
// one transaction, so readers never observe a half-written list.
func (s *SQLiteStore) replaceAll(table string, insert func(tx *sql.Tx) error) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM " + table); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}
	if err := insert(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetHabits() ([]models.Habit, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`SELECT id, name, description, frequency, category,
		target_count, current_streak, best_streak, completed_dates, created_at
		FROM habits ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	habits := []models.Habit{}
	for rows.Next() {
		var h models.Habit
		var dates, createdAt string
		if err := rows.Scan(&h.ID, &h.Name, &h.Description, &h.Frequency, &h.Category,
			&h.TargetCount, &h.CurrentStreak, &h.BestStreak, &dates, &createdAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(dates), &h.CompletedDates); err != nil {
			return nil, fmt.Errorf("failed to parse completed dates: %w", err)
		}
		h.CreatedAt = parseTime(createdAt)
		habits = append(habits, h)
	}

	return habits, rows.Err()
}

func (s *SQLiteStore) SaveHabits(habits []models.Habit) error {
	return s.replaceAll("habits", func(tx *sql.Tx) error {
		for i, h := range habits {
			dates, err := json.Marshal(h.CompletedDates)
			if err != nil {
				return fmt.Errorf("failed to serialize completed dates: %w", err)
			}
			_, err = tx.Exec(`INSERT INTO habits (position, id, name, description, frequency,
				category, target_count, current_streak, best_streak, completed_dates, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				i, h.ID, h.Name, h.Description, h.Frequency, h.Category,
				h.TargetCount, h.CurrentStreak, h.BestStreak, string(dates), formatTime(h.CreatedAt))
			if err != nil {
				return fmt.Errorf("failed to insert habit: %w", err)
			}
		}
		return nil
	})
}

func (s *SQLiteStore) GetTasks() ([]models.Task, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query("SELECT id, title, done, priority, created_at FROM tasks ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		var createdAt string
		if err := rows.Scan(&t.ID, &t.Title, &t.Done, &t.Priority, &createdAt); err != nil {
			return nil, err
		}
		t.CreatedAt = parseTime(createdAt)
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

func (s *SQLiteStore) SaveTasks(tasks []models.Task) error {
	return s.replaceAll("tasks", func(tx *sql.Tx) error {
		for i, t := range tasks {
			_, err := tx.Exec("INSERT INTO tasks (position, id, title, done, priority, created_at) VALUES (?, ?, ?, ?, ?, ?)",
				i, t.ID, t.Title, t.Done, t.Priority, formatTime(t.CreatedAt))
			if err != nil {
				return fmt.Errorf("failed to insert task: %w", err)
			}
		}
		return nil
	})
}

func (s *SQLiteStore) GetMoodEntries() ([]models.MoodEntry, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query("SELECT id, mood, note, date, created_at FROM mood_entries ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.MoodEntry{}
	for rows.Next() {
		var e models.MoodEntry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Mood, &e.Note, &e.Date, &createdAt); err != nil {
			return nil, err
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (s *SQLiteStore) SaveMoodEntries(entries []models.MoodEntry) error {
	return s.replaceAll("mood_entries", func(tx *sql.Tx) error {
		for i, e := range entries {
			_, err := tx.Exec("INSERT INTO mood_entries (position, id, mood, note, date, created_at) VALUES (?, ?, ?, ?, ?, ?)",
				i, e.ID, e.Mood, e.Note, e.Date, formatTime(e.CreatedAt))
			if err != nil {
				return fmt.Errorf("failed to insert mood entry: %w", err)
			}
		}
		return nil
	})
}

func (s *SQLiteStore) GetFinance() ([]models.FinanceMonth, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query("SELECT id, month, income, expenses, savings, goals FROM finance ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	months := []models.FinanceMonth{}
	for rows.Next() {
		var m models.FinanceMonth
		var expenses, goals string
		if err := rows.Scan(&m.ID, &m.Month, &m.Income, &expenses, &m.Savings, &goals); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(expenses), &m.Expenses); err != nil {
			return nil, fmt.Errorf("failed to parse expenses: %w", err)
		}
		if err := json.Unmarshal([]byte(goals), &m.Goals); err != nil {
			return nil, fmt.Errorf("failed to parse savings goals: %w", err)
		}
		months = append(months, m)
	}

	return months, rows.Err()
}

func (s *SQLiteStore) SaveFinance(months []models.FinanceMonth) error {
	return s.replaceAll("finance", func(tx *sql.Tx) error {
		for i, m := range months {
			expenses, err := json.Marshal(m.Expenses)
			if err != nil {
				return fmt.Errorf("failed to serialize expenses: %w", err)
			}
			goals, err := json.Marshal(m.Goals)
			if err != nil {
				return fmt.Errorf("failed to serialize savings goals: %w", err)
			}
			_, err = tx.Exec("INSERT INTO finance (position, id, month, income, expenses, savings, goals) VALUES (?, ?, ?, ?, ?, ?, ?)",
				i, m.ID, m.Month, m.Income, string(expenses), m.Savings, string(goals))
			if err != nil {
				return fmt.Errorf("failed to insert finance month: %w", err)
			}
		}
		return nil
	})
}

func (s *SQLiteStore) GetUIState() (models.UIState, error) {
	if s.db == nil {
		return models.UIState{}, fmt.Errorf("storage not loaded")
	}

	var state models.UIState
	err := s.db.QueryRow("SELECT active_tab, planner_mode FROM ui_state WHERE id = 1").
		Scan(&state.ActiveTab, &state.PlannerMode)
	if err != nil {
		return models.UIState{}, err
	}
	return state, nil
}

func (s *SQLiteStore) SaveUIState(state models.UIState) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec(`INSERT INTO ui_state (id, active_tab, planner_mode) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET active_tab = excluded.active_tab, planner_mode = excluded.planner_mode`,
		state.ActiveTab, state.PlannerMode)
	return err
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
