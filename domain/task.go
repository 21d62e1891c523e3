package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task represents a single unit of work tracked by the system.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewTask builds a fresh task with a generated id and equal timestamps.
func NewTask(title, description string) *Task {
	now := time.Now().UTC()
	return &Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Edit replaces the title and description and refreshes UpdatedAt.
func (t *Task) Edit(title, description string) {
	t.Title = title
	t.Description = description
	t.touch()
}

// Complete marks the task as done.
func (t *Task) Complete() {
	t.Completed = true
	t.touch()
}

// Uncomplete reopens a finished task.
func (t *Task) Uncomplete() {
	t.Completed = false
	t.touch()
}

func (t *Task) touch() {
	t.UpdatedAt = time.Now().UTC()
}
