package domain

import (
	"fmt"
	"time"
)

// Error codes for different failure scenarios
const (
	ErrInvalidInput   = "INVALID_INPUT"
	ErrValidation     = "VALIDATION_ERROR"
	ErrRateLimit      = "RATE_LIMIT_EXCEEDED"
	ErrInternalServer = "INTERNAL_SERVER_ERROR"
)

// APIError represents a standardized error response returned by the
// service adapter.
type APIError struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAPIError creates a new APIError with timestamp
func NewAPIError(code, message, details, requestID string) *APIError {
	return &APIError{
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
		RequestID: requestID,
	}
}

// AgeOutOfRangeError reports an age outside the 1-12 screening window.
// It is a normal ineligible outcome, not a processing failure: adapters
// render the reason instead of treating the request as broken.
type AgeOutOfRangeError struct {
	Age    float64 `json:"age"`
	Reason string  `json:"reason"`
}

// Error implements the error interface
func (e *AgeOutOfRangeError) Error() string {
	return fmt.Sprintf("age %.1f out of range: %s", e.Age, e.Reason)
}

// InvalidRatingError reports a symptom rating outside the 0-4 scale.
type InvalidRatingError struct {
	Key    SymptomKey `json:"key"`
	Rating int        `json:"rating"`
}

// Error implements the error interface
func (e *InvalidRatingError) Error() string {
	return fmt.Sprintf("invalid rating %d for symptom '%s': must be between 0 and 4", e.Rating, e.Key)
}

// IncompleteInputError reports a catalog criterion with no rating supplied.
type IncompleteInputError struct {
	Domain  SymptomDomain `json:"domain"`
	Missing SymptomKey    `json:"missing"`
}

// Error implements the error interface
func (e *IncompleteInputError) Error() string {
	return fmt.Sprintf("missing rating for %s symptom '%s'", e.Domain, e.Missing)
}

// MalformedInputError reports a request whose shape or field values cannot
// be interpreted at the boundary.
type MalformedInputError struct {
	Detail string `json:"detail"`
}

// Error implements the error interface
func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input: %s", e.Detail)
}
