package transport

// CreateTaskRequest is the POST /api/tasks body.
type CreateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// UpdateTaskRequest is the PUT /api/tasks/{id} body. Pointer fields let the
// handler reject requests with missing or mistyped members outright.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// QueueTaskRequest is the POST /api/queue/tasks body.
type QueueTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
