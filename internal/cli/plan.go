package cli

import (
	"context"
	"fmt"

	"github.com/lifelens/lifelens-cli/internal/constants"
	"github.com/lifelens/lifelens-cli/internal/render"
	"github.com/lifelens/lifelens-cli/internal/workflow"
)

type PlanCmd struct {
	Create  PlanCreateCmd  `cmd:"" help:"Fill in the profile and generate a plan."`
	Show    PlanShowCmd    `cmd:"" help:"Show the generated plan and goal cards." default:"1"`
	Delete  PlanDeleteCmd  `cmd:"" help:"Delete the goal record behind the plan."`
	Cleanup PlanCleanupCmd `cmd:"" help:"Delete all backend data after a corrupted state."`
}

type PlanCreateCmd struct {
	SkipGenerate bool `help:"Save the profile without generating a plan."`
}

func (c *PlanCreateCmd) Run(ctx *Context) error {
	bg := context.Background()

	// One goal record at a time: refuse a second create while the current
	// one exists.
	snap, err := workflow.NewOverview(ctx.API).Refresh(bg)
	if err != nil {
		return err
	}
	if !snap.Goals.Empty() {
		return fmt.Errorf("a goal record already exists; run 'lifelens plan delete' before creating a new one")
	}

	w := workflow.NewPlanWorkflow(ctx.API)

	form := w.Form()
	if err := profileForm(&form).Run(); err != nil {
		return err
	}
	if err := w.SetForm(form); err != nil {
		return err
	}

	if result := ctx.Validator.ValidateProfileForm(form); !result.Valid() {
		return fmt.Errorf("profile form invalid:\n%s", result.FormatReport())
	}

	fmt.Println("Saving profile...")
	if err := w.Save(bg); err != nil {
		return err
	}
	fmt.Println("Profile saved.")

	if c.SkipGenerate {
		return nil
	}

	fmt.Println("Generating plan (this can take a while)...")
	if err := w.Generate(bg); err != nil {
		return err
	}
	fmt.Println("Plan generated. Run 'lifelens plan show' to read it.")
	return w.Continue()
}

type PlanShowCmd struct {
	Raw bool `help:"Print the raw markdown without rendering."`
}

func (c *PlanShowCmd) Run(ctx *Context) error {
	o := workflow.NewOverview(ctx.API)
	snap, err := o.Refresh(context.Background())
	if err != nil {
		return err
	}

	switch snap.State {
	case constants.DataIncomplete:
		fmt.Println("No goals and no plan found. If you just deleted your data this is expected;")
		fmt.Println("otherwise the account data may be incomplete. 'lifelens plan cleanup' wipes it.")
		return nil
	case constants.DataPlanPending:
		printCards(snap)
		fmt.Println("\nNo plan generated yet. Run 'lifelens plan create'.")
		return nil
	}

	printCards(snap)
	fmt.Println()
	if c.Raw {
		fmt.Println(*snap.Plan.GeneratedPlan)
		return nil
	}
	fmt.Print(render.Markdown(*snap.Plan.GeneratedPlan, TermWidth()))
	return nil
}

func printCards(snap workflow.Snapshot) {
	if len(snap.Cards) == 0 {
		return
	}
	w := newTabWriter()
	fmt.Fprintln(w, "GOAL\tFOCUS\tPACE\tSINCE")
	for _, card := range snap.Cards {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", card.Title, card.Description, card.Category, card.Date)
	}
	w.Flush()
}

type PlanDeleteCmd struct {
	Yes bool `help:"Skip confirmation."`
}

func (c *PlanDeleteCmd) Run(ctx *Context) error {
	o := workflow.NewOverview(ctx.API)
	bg := context.Background()

	snap, err := o.Refresh(bg)
	if err != nil {
		return err
	}
	if !c.Yes && !confirm("Delete the goal record and its plan?") {
		fmt.Println("Aborted.")
		return nil
	}
	if err := o.DeleteGoal(bg, snap); err != nil {
		return err
	}
	fmt.Println("Goal record deleted.")
	return nil
}

type PlanCleanupCmd struct {
	Yes bool `help:"Skip confirmation."`
}

func (c *PlanCleanupCmd) Run(ctx *Context) error {
	o := workflow.NewOverview(ctx.API)
	bg := context.Background()

	snap, err := o.Refresh(bg)
	if err != nil {
		return err
	}
	if snap.State != constants.DataIncomplete {
		fmt.Println("Data looks consistent; nothing to clean up.")
		return nil
	}
	if !c.Yes && !confirm("Delete ALL backend data for this account?") {
		fmt.Println("Aborted.")
		return nil
	}
	if err := o.Cleanup(bg); err != nil {
		return err
	}
	fmt.Println("All backend data deleted.")
	return nil
}
