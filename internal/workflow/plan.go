package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/lifelens/lifelens-cli/internal/constants"
	"github.com/lifelens/lifelens-cli/internal/logger"
	"github.com/lifelens/lifelens-cli/internal/models"
)

var (
	// ErrFormIncomplete means a save was attempted with required fields
	// still blank. The service is never called in that case.
	ErrFormIncomplete = errors.New("profile form is incomplete")

	// ErrInvalidTransition means the requested step is not legal from the
	// workflow's current state.
	ErrInvalidTransition = errors.New("invalid workflow transition")
)

// PlanService is the slice of the API client the workflow needs.
type PlanService interface {
	SaveAllUserData(ctx context.Context, data models.AllUserData) error
	GeneratePlan(ctx context.Context, data models.AllUserData) error
}

// PlanWorkflow drives the profile-save and plan-generation sequence:
// form, saving, saved, generating, generated. A failed save falls back to
// form and a failed generation falls back to saved; those are the only
// recovery paths. Requests honor ctx, so abandoning the workflow cancels
// anything in flight.
type PlanWorkflow struct {
	svc   PlanService
	state constants.FlowState
	form  models.ProfileForm
}

func NewPlanWorkflow(svc PlanService) *PlanWorkflow {
	return &PlanWorkflow{
		svc:   svc,
		state: constants.FlowForm,
	}
}

// State returns the current workflow state.
func (w *PlanWorkflow) State() constants.FlowState {
	return w.state
}

// Form returns the form as last set.
func (w *PlanWorkflow) Form() models.ProfileForm {
	return w.form
}

// SetForm replaces the working form. Edits are only legal while the
// workflow sits in the form state; everything in flight or beyond is
// frozen.
func (w *PlanWorkflow) SetForm(form models.ProfileForm) error {
	if w.state != constants.FlowForm {
		return fmt.Errorf("%w: cannot edit form in state %q", ErrInvalidTransition, w.state)
	}
	w.form = form
	return nil
}

// Save uploads the full profile. The form must be complete before any
// network traffic happens; on failure the workflow returns to the form
// state with the form intact.
func (w *PlanWorkflow) Save(ctx context.Context) error {
	if w.state != constants.FlowForm {
		return fmt.Errorf("%w: cannot save from state %q", ErrInvalidTransition, w.state)
	}
	if !w.form.Complete() {
		return fmt.Errorf("%w: missing %v", ErrFormIncomplete, w.form.MissingFields())
	}

	w.state = constants.FlowSaving
	if err := w.svc.SaveAllUserData(ctx, w.form.Flatten()); err != nil {
		w.state = constants.FlowForm
		logger.Warn("profile save failed", "err", err)
		return err
	}

	w.state = constants.FlowSaved
	logger.Info("profile saved")
	return nil
}

// Generate asks the backend for a plan built from the saved profile. Only
// reachable after a successful save; on failure the workflow stays saved
// so generation can be retried without re-entering the form.
func (w *PlanWorkflow) Generate(ctx context.Context) error {
	if w.state != constants.FlowSaved {
		return fmt.Errorf("%w: cannot generate from state %q", ErrInvalidTransition, w.state)
	}

	w.state = constants.FlowGenerating
	if err := w.svc.GeneratePlan(ctx, w.form.Flatten()); err != nil {
		w.state = constants.FlowSaved
		logger.Warn("plan generation failed", "err", err)
		return err
	}

	w.state = constants.FlowGenerated
	logger.Info("plan generated")
	return nil
}

// Continue acknowledges the generated plan. The state is terminal; the
// caller navigates to the overview, the workflow does not reset.
func (w *PlanWorkflow) Continue() error {
	if w.state != constants.FlowGenerated {
		return fmt.Errorf("%w: cannot continue from state %q", ErrInvalidTransition, w.state)
	}
	return nil
}
