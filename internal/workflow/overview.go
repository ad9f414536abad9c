package workflow

import (
	"context"
	"errors"

	"github.com/lifelens/lifelens-cli/internal/constants"
	"github.com/lifelens/lifelens-cli/internal/logger"
	"github.com/lifelens/lifelens-cli/internal/models"
)

// ErrNoDeletableGoal means a delete was requested before any plan fetch
// produced a deletable record id.
var ErrNoDeletableGoal = errors.New("no goal record to delete, generate a plan first")

// OverviewService is the slice of the API client the overview needs.
type OverviewService interface {
	GetLifeGoals(ctx context.Context) (models.LifeGoals, error)
	GetPlan(ctx context.Context) (models.AIPlan, error)
	DeletePlanGoal(ctx context.Context, planID string) error
	DeleteUserData(ctx context.Context) error
}

// Snapshot is one reconciled view of the user's goals and plan.
type Snapshot struct {
	Goals models.LifeGoals
	Plan  models.AIPlan
	Cards []models.GoalCard
	State constants.DataState
}

// Overview fetches the goal record and the plan and classifies the result.
// The goal record is always fetched first; the plan fetch follows only
// once the goals resolve, so a snapshot never pairs a fresh plan with
// stale goals.
type Overview struct {
	svc OverviewService
}

func NewOverview(svc OverviewService) *Overview {
	return &Overview{svc: svc}
}

// Refresh fetches goals then plan and reconciles them.
func (o *Overview) Refresh(ctx context.Context) (Snapshot, error) {
	goals, err := o.svc.GetLifeGoals(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	plan, err := o.svc.GetPlan(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		Goals: goals,
		Plan:  plan,
		Cards: models.BuildGoalCards(goals),
		State: Reconcile(goals, plan),
	}
	logger.Debug("overview refreshed", "state", snap.State, "cards", len(snap.Cards))
	return snap, nil
}

// Reconcile classifies the goals/plan pair. A present plan always wins; a
// missing plan is normal while goals exist, and only the combination of no
// goals and no plan marks the data as incomplete. Cleanup is offered for
// the incomplete state alone, never forced.
func Reconcile(goals models.LifeGoals, plan models.AIPlan) constants.DataState {
	if !plan.Missing() {
		return constants.DataReady
	}
	if !goals.Empty() {
		return constants.DataPlanPending
	}
	return constants.DataIncomplete
}

// DeleteGoal deletes the goal record behind the snapshot. Card ids are
// synthetic display artifacts; the single stored record is only deletable
// through the plan id captured by the last refresh.
func (o *Overview) DeleteGoal(ctx context.Context, snap Snapshot) error {
	if snap.Plan.ID == nil || *snap.Plan.ID == "" {
		return ErrNoDeletableGoal
	}
	if err := o.svc.DeletePlanGoal(ctx, *snap.Plan.ID); err != nil {
		return err
	}
	logger.Info("goal record deleted", "plan_id", *snap.Plan.ID)
	return nil
}

// Cleanup deletes every backend record for the user. This is the manual
// repair for the incomplete state; callers must confirm with the user
// before invoking it.
func (o *Overview) Cleanup(ctx context.Context) error {
	if err := o.svc.DeleteUserData(ctx); err != nil {
		return err
	}
	logger.Info("user data cleaned up")
	return nil
}
