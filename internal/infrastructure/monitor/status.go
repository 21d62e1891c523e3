package monitor

import "time"

type Status struct {
	Store     bool      `json:"store"`
	Queue     bool      `json:"queue"`
	LastCheck time.Time `json:"last_check"`
}

// Healthy reports whether every configured dependency is reachable.
func (s Status) Healthy() bool {
	return s.Store && s.Queue
}
