package dto

import "time"

// ErrorResponse is the JSON error envelope returned by every endpoint.
//
// Fields:
//   - Message: short, user-facing description of the failure.
//   - ErrorDetails: underlying error text, when one exists.
//   - Timestamp: when the response was built.
type ErrorResponse struct {
	Message      string    `json:"message" example:"no trades recorded in window"`
	ErrorDetails string    `json:"error,omitempty" example:"no trades: POP"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface so an ErrorResponse can travel as a
// plain error where convenient.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// wrapped error.
func NewErrorResponse(message string, err error) ErrorResponse {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return ErrorResponse{
		Message:      message,
		ErrorDetails: details,
		Timestamp:    time.Now(),
	}
}
