package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lifelens/lifelens-cli/internal/models"
)

type TaskCmd struct {
	Add    TaskAddCmd    `cmd:"" help:"Add a task."`
	List   TaskListCmd   `cmd:"" help:"List tasks." default:"1"`
	Toggle TaskToggleCmd `cmd:"" help:"Toggle a task done/undone."`
	Delete TaskDeleteCmd `cmd:"" help:"Remove a task."`
}

type TaskAddCmd struct {
	Title    []string `arg:"" help:"Task title."`
	Priority string   `help:"low, medium, or high." default:"medium" enum:"low,medium,high"`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	tasks, err := ctx.Store.GetTasks()
	if err != nil {
		return err
	}

	title := strings.Join(c.Title, " ")
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("task title is required")
	}

	task := models.Task{
		ID:        uuid.New().String(),
		Title:     title,
		Priority:  c.Priority,
		CreatedAt: time.Now(),
	}
	if err := ctx.Store.SaveTasks(append(tasks, task)); err != nil {
		return err
	}
	fmt.Printf("Added task: %s\n", title)
	return nil
}

type TaskListCmd struct {
	All bool `help:"Include completed tasks."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	tasks, err := ctx.Store.GetTasks()
	if err != nil {
		return err
	}

	shown := 0
	w := newTabWriter()
	fmt.Fprintln(w, "DONE\tPRIORITY\tTITLE")
	for _, t := range tasks {
		if t.Done && !c.All {
			continue
		}
		mark := " "
		if t.Done {
			mark = "x"
		}
		fmt.Fprintf(w, "[%s]\t%s\t%s\n", mark, t.Priority, t.Title)
		shown++
	}
	if shown == 0 {
		fmt.Println("No open tasks.")
		return nil
	}
	return w.Flush()
}

type TaskToggleCmd struct {
	Title []string `arg:"" help:"Task title."`
}

func (c *TaskToggleCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	tasks, err := ctx.Store.GetTasks()
	if err != nil {
		return err
	}

	title := strings.Join(c.Title, " ")
	for i := range tasks {
		if !strings.EqualFold(tasks[i].Title, title) {
			continue
		}
		tasks[i].Done = !tasks[i].Done
		if err := ctx.Store.SaveTasks(tasks); err != nil {
			return err
		}
		state := "open"
		if tasks[i].Done {
			state = "done"
		}
		fmt.Printf("Task %q is now %s.\n", tasks[i].Title, state)
		return nil
	}
	return fmt.Errorf("task not found: %s", title)
}

type TaskDeleteCmd struct {
	Title []string `arg:"" help:"Task title."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	tasks, err := ctx.Store.GetTasks()
	if err != nil {
		return err
	}

	title := strings.Join(c.Title, " ")
	for i := range tasks {
		if !strings.EqualFold(tasks[i].Title, title) {
			continue
		}
		remaining := append(tasks[:i:i], tasks[i+1:]...)
		if err := ctx.Store.SaveTasks(remaining); err != nil {
			return err
		}
		fmt.Printf("Removed task: %s\n", title)
		return nil
	}
	return fmt.Errorf("task not found: %s", title)
}
