package errors

import (
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// ErrorTypeNotFound is missing state, such as no config before feed
	ErrorTypeNotFound ErrorType = iota
	// ErrorTypePermission means a file could not be opened or written for lack of access
	ErrorTypePermission
	// ErrorTypeStorage is any other filesystem failure
	ErrorTypeStorage
	// ErrorTypeCorrupted is a log file that exists but is not a readable table
	ErrorTypeCorrupted
	// ErrorTypeMalformed is a config record that does not decode
	ErrorTypeMalformed
	// ErrorTypeInvalidConfig is a decoded config that breaks a feeding invariant
	ErrorTypeInvalidConfig
)

var errorTypeNames = [...]string{
	ErrorTypeNotFound:      "not_found",
	ErrorTypePermission:    "permission",
	ErrorTypeStorage:       "storage",
	ErrorTypeCorrupted:     "corrupted",
	ErrorTypeMalformed:     "malformed",
	ErrorTypeInvalidConfig: "invalid_config",
}

func (et ErrorType) known() bool {
	return et >= 0 && int(et) < len(errorTypeNames)
}

// String returns the snake_case name used in logs
func (et ErrorType) String() string {
	if !et.known() {
		return "unknown"
	}
	return errorTypeNames[et]
}

// IsSystem reports whether the error type is caused by the environment rather than the user
func (et ErrorType) IsSystem() bool {
	switch et {
	case ErrorTypePermission, ErrorTypeStorage, ErrorTypeCorrupted:
		return true
	default:
		return false
	}
}

// ExitCode returns the process exit status for this error type
func (et ErrorType) ExitCode() int {
	if et.IsSystem() {
		return ExitSystemError
	}
	return ExitUserError
}

// AppError represents a structured application error
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Hint    string
	Cause   error
	Context map[string]any
}

// Error renders type, message and cause for the diagnostic log
func (e *AppError) Error() string {
	msg := e.Type.String() + ": " + e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (caused by: %v)", msg, e.Cause)
	}
	return msg
}

// Unwrap exposes the cause to errors.Is and errors.As
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches another AppError with the same type and code
func (e *AppError) Is(target error) bool {
	other, ok := target.(*AppError)
	return ok && e.Type == other.Type && e.Code == other.Code
}

// IsType checks if this error is of the specified type
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// WithHint attaches a remediation hint shown to the user
func (e *AppError) WithHint(hint string) *AppError {
	e.Hint = hint
	return e
}
