package api

import (
	"context"
	"net/http"

	"github.com/lifelens/lifelens-cli/internal/models"
)

// GetLifeGoals fetches the user's single goal record. A 403 whose message
// contains "cannot get life goal data" means no record exists yet and
// yields a synthesized empty record. Other endpoints do not share this
// convention.
func (c *Client) GetLifeGoals(ctx context.Context) (models.LifeGoals, error) {
	var goals models.LifeGoals
	err := c.do(ctx, http.MethodGet, "/api/v1/lifegoals/users/"+c.UserID(), nil, &goals)
	if isMissingData(err, "cannot get life goal data") {
		return models.EmptyLifeGoals(c.UserID()), nil
	}
	if err != nil {
		return models.LifeGoals{}, err
	}
	if goals.UserID == "" && goals.ID == "" {
		return models.EmptyLifeGoals(c.UserID()), nil
	}
	return goals, nil
}

type deleteGoalRequest struct {
	GoalID string          `json:"goalId"`
	Type   models.GoalType `json:"type"`
}

// DeleteLifeGoal removes one goal entry from the record by id and term.
func (c *Client) DeleteLifeGoal(ctx context.Context, goalID string, goalType models.GoalType) error {
	path := "/api/v1/lifegoals/users/" + c.UserID() + "/goal"
	return c.do(ctx, http.MethodDelete, path, deleteGoalRequest{GoalID: goalID, Type: goalType}, nil)
}
