package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/lifelens/lifelens-cli/internal/constants"
	"github.com/lifelens/lifelens-cli/internal/models"
)

type fakeOverviewService struct {
	goals models.LifeGoals
	plan  models.AIPlan

	goalsErr error
	planErr  error

	planFetched      bool
	goalsFetched     bool
	goalsBeforePlan  bool
	deletedPlanID    string
	userDataDeleted  bool
	deletePlanErr    error
	deleteUserErr    error
}

func (f *fakeOverviewService) GetLifeGoals(ctx context.Context) (models.LifeGoals, error) {
	f.goalsFetched = true
	f.goalsBeforePlan = !f.planFetched
	return f.goals, f.goalsErr
}

func (f *fakeOverviewService) GetPlan(ctx context.Context) (models.AIPlan, error) {
	f.planFetched = true
	return f.plan, f.planErr
}

func (f *fakeOverviewService) DeletePlanGoal(ctx context.Context, planID string) error {
	f.deletedPlanID = planID
	return f.deletePlanErr
}

func (f *fakeOverviewService) DeleteUserData(ctx context.Context) error {
	f.userDataDeleted = true
	return f.deleteUserErr
}

func planWith(id, text string) models.AIPlan {
	return models.AIPlan{ID: &id, GeneratedPlan: &text}
}

func goalsWith(short, long []string) models.LifeGoals {
	g := models.EmptyLifeGoals("user-1")
	g.ShortTerm = short
	g.LongTerm = long
	return g
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name  string
		goals models.LifeGoals
		plan  models.AIPlan
		want  constants.DataState
	}{
		{"goals and plan", goalsWith([]string{"run"}, nil), planWith("p1", "# Plan"), constants.DataReady},
		{"plan without goals", goalsWith(nil, nil), planWith("p1", "# Plan"), constants.DataReady},
		{"goals without plan", goalsWith([]string{"run"}, []string{"house"}), models.AIPlan{}, constants.DataPlanPending},
		{"neither", goalsWith(nil, nil), models.AIPlan{}, constants.DataIncomplete},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reconcile(tt.goals, tt.plan); got != tt.want {
				t.Errorf("Reconcile() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRefreshSequencesGoalsBeforePlan(t *testing.T) {
	svc := &fakeOverviewService{
		goals: goalsWith([]string{"run 10k"}, []string{"buy a house"}),
		plan:  planWith("p1", "# Plan"),
	}
	o := NewOverview(svc)

	snap, err := o.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if !svc.goalsBeforePlan {
		t.Error("plan fetch must wait for the goals fetch")
	}
	if snap.State != constants.DataReady {
		t.Errorf("state = %q, want ready", snap.State)
	}
	if len(snap.Cards) != 2 {
		t.Errorf("cards = %d, want 2", len(snap.Cards))
	}
}

func TestRefreshGoalsErrorSkipsPlanFetch(t *testing.T) {
	svc := &fakeOverviewService{goalsErr: errors.New("backend down")}
	o := NewOverview(svc)

	if _, err := o.Refresh(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if svc.planFetched {
		t.Error("plan fetch should not run after a failed goals fetch")
	}
}

func TestCleanupPromptOnlyWhenNoGoals(t *testing.T) {
	// Goals present but no plan: a normal pending state, never incomplete.
	svc := &fakeOverviewService{goals: goalsWith([]string{"run"}, nil)}
	snap, err := NewOverview(svc).Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if snap.State != constants.DataPlanPending {
		t.Errorf("state = %q, want plan_pending", snap.State)
	}

	// No goals and no plan: the one case that offers cleanup.
	svc = &fakeOverviewService{goals: goalsWith(nil, nil)}
	snap, err = NewOverview(svc).Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if snap.State != constants.DataIncomplete {
		t.Errorf("state = %q, want incomplete", snap.State)
	}
}

func TestDeleteGoalUsesPlanID(t *testing.T) {
	svc := &fakeOverviewService{
		goals: goalsWith([]string{"a", "b"}, []string{"c"}),
		plan:  planWith("plan-42", "# Plan"),
	}
	o := NewOverview(svc)

	snap, err := o.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if err := o.DeleteGoal(context.Background(), snap); err != nil {
		t.Fatalf("DeleteGoal: %v", err)
	}
	// Regardless of which of the synthetic cards is selected, the delete
	// targets the one real record via the captured plan id.
	if svc.deletedPlanID != "plan-42" {
		t.Errorf("deleted id = %q, want plan-42", svc.deletedPlanID)
	}
}

func TestDeleteGoalWithoutPlanID(t *testing.T) {
	o := NewOverview(&fakeOverviewService{})

	err := o.DeleteGoal(context.Background(), Snapshot{})
	if !errors.Is(err, ErrNoDeletableGoal) {
		t.Errorf("err = %v, want ErrNoDeletableGoal", err)
	}
}

func TestCleanup(t *testing.T) {
	svc := &fakeOverviewService{}
	if err := NewOverview(svc).Cleanup(context.Background()); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if !svc.userDataDeleted {
		t.Error("cleanup should delete all user data")
	}
}
