package dto

import "time"

// APIError is the error payload carried inside a failed envelope.
type APIError struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Envelope is the uniform response wrapper for every API endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// OK wraps data in a successful envelope.
func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

// Fail wraps an error code and message in a failed envelope.
func Fail(code, message string) Envelope {
	return Envelope{
		Success: false,
		Error: &APIError{
			Code:      code,
			Message:   message,
			Timestamp: time.Now(),
		},
	}
}
