package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/lifelens/lifelens-cli/internal/models"
)

// ErrNoPlanData is returned when the plan endpoint answers success but the
// data array is empty.
var ErrNoPlanData = errors.New("no AI plan received")

// GeneratePlan asks the backend to generate a plan from the full profile.
// The call blocks until generation finishes; cancel via ctx.
func (c *Client) GeneratePlan(ctx context.Context, data models.AllUserData) error {
	return c.do(ctx, http.MethodPost, "/api/v1/ai_gen/create_ai_gen/"+c.UserID(), data, nil)
}

// GetPlan fetches the generated plan. Any 403 means the user has no plan
// rows and yields the zero plan; an empty data array on success is an
// error, matching the backend's own distinction between the two.
func (c *Client) GetPlan(ctx context.Context) (models.AIPlan, error) {
	var rows []models.AIPlanRecord
	err := c.do(ctx, http.MethodGet, "/api/v1/ai_gen/ai_gen/"+c.UserID(), nil, &rows)
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusForbidden {
		return models.AIPlan{}, nil
	}
	if err != nil {
		return models.AIPlan{}, err
	}
	if len(rows) == 0 {
		return models.AIPlan{}, ErrNoPlanData
	}
	return models.AIPlan{ID: &rows[0].ID, GeneratedPlan: &rows[0].GeneratedPlan}, nil
}

// DeletePlanGoal deletes the plan row (and its goal record) by plan id.
// The synthetic card ids used for display are not valid here.
func (c *Client) DeletePlanGoal(ctx context.Context, planID string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/ai_gen/goal/"+planID, nil, nil)
}
