package dto

import "time"

// ErrorResponse is the standardized JSON error body returned by every
// failing endpoint.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message      string    `json:"message" example:"no data found"`
	ErrorDetails string    `json:"error,omitempty" example:"record 3: missing date field"`
	Timestamp    time.Time `json:"timestamp" example:"2024-07-01T12:00:00Z"`
}

// Error implements the error interface so an ErrorResponse can travel
// through gin's c.Error chain.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse from a human-readable message and
// an optional inner error.
func NewErrorResponse(message string, err error) ErrorResponse {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return ErrorResponse{
		Message:      message,
		ErrorDetails: details,
		Timestamp:    time.Now().UTC(),
	}
}
