package models

import "time"

// ChatMessage is one message in the per-user AI chat history, ordered by
// creation time.
type ChatMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Sender    string    `json:"sender"` // "user" or "ai"
	CreatedAt time.Time `json:"created_at"`
}
