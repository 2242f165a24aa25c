package models

import "time"

// RequestLog represents a logged assistant request
type RequestLog struct {
	Timestamp  time.Time `json:"ts"`
	ReqID      string    `json:"req_id"`
	Source     string    `json:"source"`
	Message    string    `json:"message"`
	Reply      string    `json:"reply"`
	MessageLen int       `json:"message_len"`
	Provider   string    `json:"provider"`
	DurationMs int64     `json:"dur_ms"`
	Status     string    `json:"status"`
	Error      string    `json:"error"`
}
