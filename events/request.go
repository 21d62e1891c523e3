package events

import (
	"time"

	"github.com/google/uuid"
)

// TaskRequestMessage decouples the HTTP queue front from the worker that
// eventually executes the create. RequestID allows tracing a request across
// both processes.
type TaskRequestMessage struct {
	Title            string `json:"title"`
	Description      string `json:"description,omitempty"`
	RequestTimestamp string `json:"requestTimestamp"`
	RequestID        string `json:"requestId"`
}

// NewTaskRequestMessage maps raw request fields to a queue message.
func NewTaskRequestMessage(title, description string) TaskRequestMessage {
	return TaskRequestMessage{
		Title:            title,
		Description:      description,
		RequestTimestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID:        "req_" + uuid.NewString(),
	}
}
