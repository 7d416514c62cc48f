// Package errors defines stable error codes for crit's CLI boundary.
//
// Inside the crawl and review packages, absence (unresolvable import, no
// test file, deleted changed file) is a normal result, not an error. Coded
// errors exist only for conditions the CLI must explain to the user.
package errors

import (
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// WorkspaceNotFound indicates the workspace root does not exist
	WorkspaceNotFound ErrorCode = "WORKSPACE_NOT_FOUND"
	// ConfigInvalid indicates the config file could not be parsed
	ConfigInvalid ErrorCode = "CONFIG_INVALID"
	// DepthInvalid indicates an unknown analysis depth was requested
	DepthInvalid ErrorCode = "DEPTH_INVALID"
	// FormatInvalid indicates an unknown output format was requested
	FormatInvalid ErrorCode = "FORMAT_INVALID"
	// RulesInvalid indicates the custom rules manifest could not be parsed
	RulesInvalid ErrorCode = "RULES_INVALID"
	// ReportWriteFailed indicates the report could not be exported
	ReportWriteFailed ErrorCode = "REPORT_WRITE_FAILED"
	// InternalError indicates an unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// CritError is an error with a stable code, suitable for JSON output
type CritError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	cause   error       // Underlying error (not exported to JSON)
}

// New creates a new CritError
func New(code ErrorCode, message string, cause error) *CritError {
	return &CritError{
		Code:    code,
		Message: message,
		cause:   cause,
	}
}

// Error implements the error interface
func (e *CritError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *CritError) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *CritError) WithDetails(details interface{}) *CritError {
	e.Details = details
	return e
}
