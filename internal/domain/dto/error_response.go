package dto

import "time"

// ErrorResponse is the JSON body returned for every failed request.
//
// Fields:
//   - Message: short human-readable description (e.g. "fecha is required").
//   - ErrorDetails: optional underlying error text.
//   - Timestamp: server time when the error was produced.
type ErrorResponse struct {
	Message      string    `json:"error" example:"invalid year"`
	ErrorDetails string    `json:"details,omitempty" example:"strconv.Atoi: parsing \"abc\": invalid syntax"`
	Timestamp    time.Time `json:"timestamp" example:"2026-04-06T12:00:00Z"`
}

// Error implements the error interface so an ErrorResponse can travel
// through gin's c.Error chain.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse stamped with the current time.
// err may be nil.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message, Timestamp: time.Now()}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
