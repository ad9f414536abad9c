package api

import (
	"context"
	"net/http"

	"github.com/lifelens/lifelens-cli/internal/constants"
	"github.com/lifelens/lifelens-cli/internal/models"
)

type chatRequest struct {
	Message string `json:"message"`
	Sender  string `json:"sender"`
}

// ChatHistory fetches the full conversation, oldest first.
func (c *Client) ChatHistory(ctx context.Context) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	if err := c.do(ctx, http.MethodGet, "/api/v1/ai_gen/chat/"+c.UserID(), nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// SendChat posts one user message and returns the AI reply rows the
// backend produced for it.
func (c *Client) SendChat(ctx context.Context, message string) ([]models.ChatMessage, error) {
	body := chatRequest{Message: message, Sender: string(constants.SenderUser)}
	var replies []models.ChatMessage
	if err := c.do(ctx, http.MethodPost, "/api/v1/ai_gen/chat/"+c.UserID(), body, &replies); err != nil {
		return nil, err
	}
	return replies, nil
}

// ClearChat deletes the whole conversation.
func (c *Client) ClearChat(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/ai_gen/chat/"+c.UserID(), nil, nil)
}
