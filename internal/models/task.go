package models

import "time"

// Task is a local-only checklist item. Tasks never touch the backend.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	Priority  string    `json:"priority,omitempty"` // low, medium, high
	CreatedAt time.Time `json:"created_at"`
}
