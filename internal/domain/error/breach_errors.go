// Package error defines domain-specific errors for the Password Auditor application.
package error

import "errors"

// Breach lookup domain errors.
var (
	// ErrLookupTimeout is returned when the breach-database request times out.
	ErrLookupTimeout = errors.New("breach lookup timed out")

	// ErrLookupUnavailable is returned when the breach database cannot be reached
	// or answers with a non-success status.
	ErrLookupUnavailable = errors.New("breach database unavailable")

	// ErrMalformedResponse is returned when the breach-database response cannot
	// be parsed.
	ErrMalformedResponse = errors.New("malformed breach database response")

	// ErrLookupDisabled is returned when the breach lookup is disabled by
	// configuration.
	ErrLookupDisabled = errors.New("breach lookup is disabled")
)

// BreachErrorCode defines error codes for breach lookup errors.
// Format: BREACH-XXYYYY where XX is category and YYYY is specific error.
type BreachErrorCode string

const (
	// Transport errors (01XXXX)
	ErrCodeLookupTimeout     BreachErrorCode = "BREACH-010001"
	ErrCodeLookupUnavailable BreachErrorCode = "BREACH-010002"

	// Response errors (02XXXX)
	ErrCodeMalformedResponse BreachErrorCode = "BREACH-020001"

	// Configuration errors (03XXXX)
	ErrCodeLookupDisabled BreachErrorCode = "BREACH-030001"
)

// BreachError represents a breach lookup error with code and message.
type BreachError struct {
	Code    BreachErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BreachError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BreachError) Unwrap() error {
	return e.Err
}

// NewBreachError creates a new BreachError with the given code and message.
func NewBreachError(code BreachErrorCode, message string, err error) *BreachError {
	return &BreachError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
