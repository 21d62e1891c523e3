package transport

import "encoding/json"

// Envelope is the standard API response wrapper used for both success and
// error payloads.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// NewSuccess returns a success envelope carrying data.
func NewSuccess(data interface{}) Envelope {
	return Envelope{
		Success: true,
		Data:    data,
	}
}

// NewMessage returns a success envelope carrying only a confirmation message.
func NewMessage(message string) Envelope {
	return Envelope{
		Success: true,
		Message: message,
	}
}

// NewError returns an error envelope. detail is omitted in production.
func NewError(message, detail string) Envelope {
	return Envelope{
		Success: false,
		Message: message,
		Error:   detail,
	}
}

// String returns the JSON representation (best-effort) for logging purposes.
func (e Envelope) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}
