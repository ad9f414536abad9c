package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lifelens/lifelens-cli/internal/constants"
	"github.com/lifelens/lifelens-cli/internal/models"
)

type HabitCmd struct {
	Add  HabitAddCmd  `cmd:"" help:"Add a new habit."`
	List HabitListCmd `cmd:"" help:"List habits." default:"1"`
	Done HabitDoneCmd `cmd:"" help:"Mark a habit complete for a day."`
	Log  HabitLogCmd  `cmd:"" help:"Show a habit's completion history."`
	Sync HabitSyncCmd `cmd:"" help:"Push local habits to the backend and pull remote ones."`
}

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `help:"What the habit involves."`
	Frequency   string `help:"daily, weekly, or monthly." default:"daily"`
	Category    string `help:"Free-form category." default:"general"`
	Target      int    `help:"Completions per period." default:"1"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	habits, err := ctx.Store.GetHabits()
	if err != nil {
		return err
	}

	habit := models.Habit{
		ID:             uuid.New().String(),
		Name:           c.Name,
		Description:    c.Description,
		Frequency:      c.Frequency,
		Category:       c.Category,
		TargetCount:    c.Target,
		CompletedDates: []string{},
		CreatedAt:      time.Now(),
	}
	if result := ctx.Validator.ValidateHabit(habit, habits); !result.Valid() {
		return fmt.Errorf("invalid habit:\n%s", result.FormatReport())
	}

	if err := ctx.Store.SaveHabits(append(habits, habit)); err != nil {
		return err
	}
	fmt.Printf("Added habit: %s\n", c.Name)
	return nil
}

type HabitListCmd struct {
	Remote bool `help:"List habits stored on the backend instead of the local store."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	var habits []models.Habit
	var err error
	if c.Remote {
		habits, err = ctx.API.ListHabits(context.Background())
	} else {
		if err := ctx.Store.Load(); err != nil {
			return err
		}
		habits, err = ctx.Store.GetHabits()
	}
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits yet. Add one with 'lifelens habit add <name>'.")
		return nil
	}

	today := time.Now().Format(constants.DateFormat)
	w := newTabWriter()
	fmt.Fprintln(w, "NAME\tFREQUENCY\tSTREAK\tBEST\tTODAY")
	for _, h := range habits {
		mark := " "
		if h.CompletedOn(today) {
			mark = "x"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t[%s]\n", h.Name, h.Frequency, h.CurrentStreak, h.BestStreak, mark)
	}
	return w.Flush()
}

type HabitDoneCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Day to mark (YYYY-MM-DD), defaults to today."`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	habits, err := ctx.Store.GetHabits()
	if err != nil {
		return err
	}

	day := c.Date
	if day == "" {
		day = time.Now().Format(constants.DateFormat)
	}

	for i := range habits {
		if !strings.EqualFold(habits[i].Name, c.Name) {
			continue
		}
		if !habits[i].MarkComplete(day) {
			fmt.Printf("%s was already marked for %s.\n", habits[i].Name, day)
			return nil
		}
		if err := ctx.Store.SaveHabits(habits); err != nil {
			return err
		}
		fmt.Printf("Marked %s done for %s (streak: %d).\n", habits[i].Name, day, habits[i].CurrentStreak)
		return nil
	}
	return fmt.Errorf("habit not found: %s", c.Name)
}

type HabitLogCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitLogCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	habits, err := ctx.Store.GetHabits()
	if err != nil {
		return err
	}

	for _, h := range habits {
		if !strings.EqualFold(h.Name, c.Name) {
			continue
		}
		if len(h.CompletedDates) == 0 {
			fmt.Printf("%s has no completions yet.\n", h.Name)
			return nil
		}
		fmt.Printf("%s (%d completions, best streak %d):\n", h.Name, len(h.CompletedDates), h.BestStreak)
		for _, d := range h.CompletedDates {
			fmt.Printf("  %s\n", d)
		}
		return nil
	}
	return fmt.Errorf("habit not found: %s", c.Name)
}

type HabitSyncCmd struct{}

func (c *HabitSyncCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	local, err := ctx.Store.GetHabits()
	if err != nil {
		return err
	}

	bg := context.Background()
	remote, err := ctx.API.ListHabits(bg)
	if err != nil {
		return err
	}

	// Push local habits the backend does not know by name, then adopt the
	// union locally. Name is the identity across the two sides; remote
	// integer row ids never collide with local uuids.
	known := make(map[string]bool, len(remote))
	for _, h := range remote {
		known[strings.ToLower(h.Name)] = true
	}

	pushed := 0
	for _, h := range local {
		if known[strings.ToLower(h.Name)] {
			continue
		}
		if err := ctx.API.SaveHabit(bg, h); err != nil {
			return fmt.Errorf("failed to push habit %q: %w", h.Name, err)
		}
		pushed++
	}

	merged := local
	seen := make(map[string]bool, len(local))
	for _, h := range local {
		seen[strings.ToLower(h.Name)] = true
	}
	pulled := 0
	for _, h := range remote {
		if seen[strings.ToLower(h.Name)] {
			continue
		}
		merged = append(merged, h)
		pulled++
	}
	if err := ctx.Store.SaveHabits(merged); err != nil {
		return err
	}

	fmt.Printf("Sync complete: pushed %d, pulled %d, %d total.\n", pushed, pulled, len(merged))
	return nil
}
