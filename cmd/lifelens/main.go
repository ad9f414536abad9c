package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/lifelens/lifelens-cli/internal/api"
	"github.com/lifelens/lifelens-cli/internal/cli"
	"github.com/lifelens/lifelens-cli/internal/config"
	"github.com/lifelens/lifelens-cli/internal/constants"
	apperrors "github.com/lifelens/lifelens-cli/internal/errors"
	"github.com/lifelens/lifelens-cli/internal/logger"
	"github.com/lifelens/lifelens-cli/internal/session"
	"github.com/lifelens/lifelens-cli/internal/storage"
	"github.com/lifelens/lifelens-cli/internal/validation"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path (.json or .db)." type:"path" default:"~/.config/lifelens/lifelens.json"`

	Init    cli.InitCmd    `cmd:"" help:"Initialize lifelens storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Check storage, keyring, session and backend health."`
	Auth    cli.AuthCmd    `cmd:"" help:"Manage the stored session."`
	Profile cli.ProfileCmd `cmd:"" help:"Manage the user profile."`
	Plan    cli.PlanCmd    `cmd:"" help:"Create and inspect the AI plan."`
	Habit   cli.HabitCmd   `cmd:"" help:"Track habits."`
	Mood    cli.MoodCmd    `cmd:"" help:"Log moods."`
	Chat    cli.ChatCmd    `cmd:"" help:"Talk to the AI assistant."`
	Task    cli.TaskCmd    `cmd:"" help:"Manage local tasks."`
	Finance cli.FinanceCmd `cmd:"" help:"Track monthly finances."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal goal, habit and mood tracker with AI planning"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	cfg := config.Load()

	if err := logger.Init(logger.Config{
		Debug:     cfg.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Storage backend follows the file extension.
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".db") {
		store = storage.NewSQLiteStore(CLI.Config)
	} else {
		store = storage.NewJSONStore(CLI.Config)
	}

	sess := session.NewStore()

	appCtx := &cli.Context{
		Store:     store,
		API:       api.New(cfg, sess),
		Session:   sess,
		Config:    cfg,
		Validator: validation.New(),
	}

	// Most commands expect initialized storage. Init creates it, doctor
	// loads on its own so it can report the failure instead of dying on
	// it, and auth only touches the keyring.
	command := ctx.Command()
	root := strings.Fields(command)[0]
	if root != "init" && root != "doctor" && root != "auth" {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}
