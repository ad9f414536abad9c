package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lifelens/lifelens-cli/internal/models"
)

type moodPayload struct {
	Mood   string `json:"mood"`
	Note   string `json:"note"`
	UserID string `json:"user_id"`
}

// SaveMood appends one mood row to the backend log.
func (c *Client) SaveMood(ctx context.Context, mood, note string) error {
	body := moodPayload{Mood: mood, Note: note, UserID: c.UserID()}
	return c.do(ctx, http.MethodPost, "/api/v1/users/mood/"+c.UserID(), body, nil)
}

// ListMoods fetches the user's mood log. The endpoint returns an array when
// the user has several rows and a bare object when there is exactly one.
func (c *Client) ListMoods(ctx context.Context) ([]models.MoodRecord, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/v1/users/mood/"+c.UserID(), nil, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var records []models.MoodRecord
	if err := json.Unmarshal(raw, &records); err == nil {
		return records, nil
	}
	var single models.MoodRecord
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, err
	}
	return []models.MoodRecord{single}, nil
}
