package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifelens/lifelens-cli/internal/constants"
	"github.com/lifelens/lifelens-cli/internal/models"
)

type MoodCmd struct {
	Log  MoodLogCmd  `cmd:"" help:"Log today's mood."`
	List MoodListCmd `cmd:"" help:"Show logged moods." default:"1"`
}

type MoodLogCmd struct {
	Mood string `arg:"" help:"Mood label, e.g. Great, Good, Okay, Low."`
	Note string `help:"Optional note."`
	Push bool   `help:"Also send the entry to the backend."`
}

func (c *MoodLogCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	entry := models.MoodEntry{
		ID:        uuid.New().String(),
		Mood:      c.Mood,
		Note:      c.Note,
		Date:      time.Now().Format(constants.DateFormat),
		CreatedAt: time.Now(),
	}
	if result := ctx.Validator.ValidateMoodEntry(entry); !result.Valid() {
		return fmt.Errorf("invalid mood entry:\n%s", result.FormatReport())
	}

	entries, err := ctx.Store.GetMoodEntries()
	if err != nil {
		return err
	}
	// One entry per day locally; logging again replaces it.
	if err := ctx.Store.SaveMoodEntries(models.UpsertMood(entries, entry)); err != nil {
		return err
	}
	fmt.Printf("Logged mood %q for %s.\n", c.Mood, entry.Date)

	if c.Push {
		if err := ctx.API.SaveMood(context.Background(), c.Mood, c.Note); err != nil {
			return fmt.Errorf("saved locally but backend push failed: %w", err)
		}
		fmt.Println("Pushed to backend.")
	}
	return nil
}

type MoodListCmd struct {
	Remote bool `help:"List the backend mood log instead of the local one."`
}

func (c *MoodListCmd) Run(ctx *Context) error {
	w := newTabWriter()

	if c.Remote {
		records, err := ctx.API.ListMoods(context.Background())
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No moods on the backend yet.")
			return nil
		}
		fmt.Fprintln(w, "DATE\tMOOD\tNOTE")
		for _, r := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.CreatedAt.Format(constants.DateFormat), r.Mood, r.Note)
		}
		return w.Flush()
	}

	if err := ctx.Store.Load(); err != nil {
		return err
	}
	entries, err := ctx.Store.GetMoodEntries()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No moods logged yet. Run 'lifelens mood log <mood>'.")
		return nil
	}
	fmt.Fprintln(w, "DATE\tMOOD\tNOTE")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Date, e.Mood, e.Note)
	}
	return w.Flush()
}
