package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/lifelens/lifelens-cli/internal/api"
	"github.com/lifelens/lifelens-cli/internal/session"
)

type InitCmd struct {
	Force bool `help:"Delete existing storage before initializing."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if c.Force {
		path := ctx.Store.GetConfigPath()
		if _, err := os.Stat(path); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing storage: %w", err)
			}
			fmt.Printf("Deleted existing storage at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing storage: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized lifelens storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: local storage loads
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("FAIL local storage: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("ok   local storage (%s)\n", ctx.Store.GetConfigPath())
	}

	// Check 2: keyring available
	if session.IsAvailable() {
		fmt.Println("ok   OS keyring")
	} else {
		fmt.Println("FAIL OS keyring not available")
		hasError = true
	}

	// Check 3: session present
	if ctx.Session.IsAuthenticated() {
		fmt.Printf("ok   session (%s)\n", ctx.Session.UserID())
	} else {
		fmt.Println("warn no session; backend commands will fail until 'lifelens auth login'")
	}

	// Check 4: backend reachable (only with a session)
	if ctx.Session.IsAuthenticated() {
		if _, err := ctx.API.GetProfile(context.Background()); err != nil && !errors.Is(err, api.ErrNotAuthenticated) {
			fmt.Printf("FAIL backend (%s): %v\n", ctx.Config.APIURL, err)
			hasError = true
		} else {
			fmt.Printf("ok   backend (%s)\n", ctx.Config.APIURL)
		}
	} else {
		fmt.Printf("skip backend check (%s), not logged in\n", ctx.Config.APIURL)
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}
