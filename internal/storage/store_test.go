package storage

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/lifelens/lifelens-cli/internal/models"
)

func newTestStores(t *testing.T) map[string]Provider {
	t.Helper()
	dir := t.TempDir()

	jsonStore := NewJSONStore(filepath.Join(dir, "lifelens.json"))
	sqliteStore := NewSQLiteStore(filepath.Join(dir, "lifelens.db"))

	stores := map[string]Provider{
		"json":   jsonStore,
		"sqlite": sqliteStore,
	}
	for name, s := range stores {
		if err := s.Init(); err != nil {
			t.Fatalf("%s Init: %v", name, err)
		}
		t.Cleanup(func() { s.Close() })
	}
	return stores
}

func sampleHabits() []models.Habit {
	return []models.Habit{
		{
			ID: "h1", Name: "meditate", Description: "10 min", Frequency: "daily",
			Category: "health", TargetCount: 1, CurrentStreak: 3, BestStreak: 7,
			CompletedDates: []string{"2026-08-25", "2026-08-26", "2026-08-27"},
			CreatedAt:      time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
		},
		{ID: "h2", Name: "journal", Frequency: "weekly", CompletedDates: []string{}},
	}
}

func TestHabitRoundTrip(t *testing.T) {
	for name, store := range newTestStores(t) {
		t.Run(name, func(t *testing.T) {
			want := sampleHabits()
			if err := store.SaveHabits(want); err != nil {
				t.Fatalf("SaveHabits: %v", err)
			}

			got, err := store.GetHabits()
			if err != nil {
				t.Fatalf("GetHabits: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("round trip changed the list:\ngot  %+v\nwant %+v", got, want)
			}
		})
	}
}

func TestHabitOrderPreserved(t *testing.T) {
	for name, store := range newTestStores(t) {
		t.Run(name, func(t *testing.T) {
			habits := []models.Habit{
				{ID: "z", Name: "zeta", CompletedDates: []string{}},
				{ID: "a", Name: "alpha", CompletedDates: []string{}},
				{ID: "m", Name: "mid", CompletedDates: []string{}},
			}
			if err := store.SaveHabits(habits); err != nil {
				t.Fatalf("SaveHabits: %v", err)
			}

			got, err := store.GetHabits()
			if err != nil {
				t.Fatalf("GetHabits: %v", err)
			}
			for i, h := range habits {
				if got[i].ID != h.ID {
					t.Fatalf("order not preserved: got %v", got)
				}
			}
		})
	}
}

func TestSaveReplacesWholesale(t *testing.T) {
	for name, store := range newTestStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.SaveHabits(sampleHabits()); err != nil {
				t.Fatalf("SaveHabits: %v", err)
			}
			// A shorter list replaces the longer one entirely.
			if err := store.SaveHabits([]models.Habit{{ID: "only", Name: "only", CompletedDates: []string{}}}); err != nil {
				t.Fatalf("SaveHabits: %v", err)
			}

			got, err := store.GetHabits()
			if err != nil {
				t.Fatalf("GetHabits: %v", err)
			}
			if len(got) != 1 || got[0].ID != "only" {
				t.Errorf("got %+v, want the single replacement habit", got)
			}
		})
	}
}

func TestTasksAndMoodsRoundTrip(t *testing.T) {
	for name, store := range newTestStores(t) {
		t.Run(name, func(t *testing.T) {
			tasks := []models.Task{
				{ID: "t1", Title: "pay rent", Done: true, Priority: "high", CreatedAt: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)},
				{ID: "t2", Title: "call dentist"},
			}
			if err := store.SaveTasks(tasks); err != nil {
				t.Fatalf("SaveTasks: %v", err)
			}
			gotTasks, err := store.GetTasks()
			if err != nil {
				t.Fatalf("GetTasks: %v", err)
			}
			if !reflect.DeepEqual(gotTasks, tasks) {
				t.Errorf("tasks round trip:\ngot  %+v\nwant %+v", gotTasks, tasks)
			}

			moods := []models.MoodEntry{
				{ID: "m1", Mood: "Good", Date: "2026-08-27", CreatedAt: time.Date(2026, 8, 27, 20, 0, 0, 0, time.UTC)},
			}
			if err := store.SaveMoodEntries(moods); err != nil {
				t.Fatalf("SaveMoodEntries: %v", err)
			}
			gotMoods, err := store.GetMoodEntries()
			if err != nil {
				t.Fatalf("GetMoodEntries: %v", err)
			}
			if !reflect.DeepEqual(gotMoods, moods) {
				t.Errorf("moods round trip:\ngot  %+v\nwant %+v", gotMoods, moods)
			}
		})
	}
}

func TestFinanceRoundTrip(t *testing.T) {
	for name, store := range newTestStores(t) {
		t.Run(name, func(t *testing.T) {
			months := []models.FinanceMonth{
				{
					ID: "f1", Month: "2026-08", Income: 3000, Savings: 500,
					Expenses: []models.Expense{
						{Category: "rent", Amount: 1200, Kind: "fixed"},
						{Category: "food", Amount: 400, Kind: "flexible"},
					},
					Goals: []models.SavingsGoal{{Name: "emergency fund", Target: 5000, Current: 1500}},
				},
			}
			if err := store.SaveFinance(months); err != nil {
				t.Fatalf("SaveFinance: %v", err)
			}

			got, err := store.GetFinance()
			if err != nil {
				t.Fatalf("GetFinance: %v", err)
			}
			if !reflect.DeepEqual(got, months) {
				t.Errorf("finance round trip:\ngot  %+v\nwant %+v", got, months)
			}
		})
	}
}

func TestUIStateDefaultsAndSave(t *testing.T) {
	for name, store := range newTestStores(t) {
		t.Run(name, func(t *testing.T) {
			state, err := store.GetUIState()
			if err != nil {
				t.Fatalf("GetUIState: %v", err)
			}
			if state != models.DefaultUIState() {
				t.Errorf("fresh store UI state = %+v, want defaults", state)
			}

			state.ActiveTab = "habits"
			state.PlannerMode = "weekly"
			if err := store.SaveUIState(state); err != nil {
				t.Fatalf("SaveUIState: %v", err)
			}

			got, err := store.GetUIState()
			if err != nil {
				t.Fatalf("GetUIState: %v", err)
			}
			if got != state {
				t.Errorf("UI state = %+v, want %+v", got, state)
			}
		})
	}
}

func TestLoadBeforeInit(t *testing.T) {
	dir := t.TempDir()

	stores := map[string]Provider{
		"json":   NewJSONStore(filepath.Join(dir, "missing.json")),
		"sqlite": NewSQLiteStore(filepath.Join(dir, "missing.db")),
	}
	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			err := store.Load()
			if err == nil {
				t.Fatal("Load on a missing store should fail")
			}
			if !strings.Contains(err.Error(), "lifelens init") {
				t.Errorf("error should point at init, got %v", err)
			}
		})
	}
}

func TestJSONStorePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifelens.json")

	first := NewJSONStore(path)
	if err := first.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := first.SaveHabits(sampleHabits()); err != nil {
		t.Fatalf("SaveHabits: %v", err)
	}
	first.Close()

	second := NewJSONStore(path)
	if err := second.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	got, err := second.GetHabits()
	if err != nil {
		t.Fatalf("GetHabits: %v", err)
	}
	if !reflect.DeepEqual(got, sampleHabits()) {
		t.Errorf("habits did not survive a reload: %+v", got)
	}
}

func TestJSONInitRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifelens.json")

	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := NewJSONStore(path).Init(); err == nil {
		t.Error("second Init over an existing file should fail")
	}
}
