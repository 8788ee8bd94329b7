package errors

import (
	"errors"
	"fmt"
)

// Exit codes returned by the sourdough binary.
const (
	ExitSuccess     = 0
	ExitUserError   = 1
	ExitSystemError = 2
)

// InitHint tells the user how to create missing state.
const InitHint = "run 'sourdough init' first"

// newAppError builds an AppError whose context is filled from alternating key/value pairs
func newAppError(errorType ErrorType, code, message string, cause error, kv ...any) *AppError {
	e := &AppError{
		Type:    errorType,
		Message: message,
		Code:    code,
		Cause:   cause,
		Context: make(map[string]any, len(kv)/2),
	}
	for i := 0; i+1 < len(kv); i += 2 {
		if key, ok := kv[i].(string); ok {
			e.Context[key] = kv[i+1]
		}
	}
	return e
}

// NewNotFoundError reports state that has to exist before a command can run
func NewNotFoundError(resource string, identifier string) *AppError {
	return newAppError(ErrorTypeNotFound, "NOT_FOUND",
		fmt.Sprintf("%s not found: %s", resource, identifier), nil,
		"resource", resource, "identifier", identifier)
}

// NewPermissionError creates a new permission error
func NewPermissionError(operation string, resource string, cause error) *AppError {
	return newAppError(ErrorTypePermission, "PERMISSION_DENIED",
		fmt.Sprintf("permission denied for %s on %s", operation, resource), cause,
		"operation", operation, "resource", resource)
}

// NewStorageError creates a new error for failed file operations
func NewStorageError(operation string, resource string, cause error) *AppError {
	return newAppError(ErrorTypeStorage, "STORAGE_ERROR",
		fmt.Sprintf("could not %s %s", operation, resource), cause,
		"operation", operation, "resource", resource)
}

// NewCorruptedError creates a new error for a file that cannot be read as a table
func NewCorruptedError(resource string, cause error) *AppError {
	return newAppError(ErrorTypeCorrupted, "CORRUPTED",
		fmt.Sprintf("%s is corrupted and cannot be read", resource), cause,
		"resource", resource)
}

// NewMalformedError creates a new error for a record that does not decode
func NewMalformedError(resource string, reason string, cause error) *AppError {
	return newAppError(ErrorTypeMalformed, "MALFORMED",
		fmt.Sprintf("%s is malformed: %s", resource, reason), cause,
		"resource", resource, "reason", reason)
}

// NewInvalidConfigError creates a new error for a config that breaks a domain invariant
func NewInvalidConfigError(field string, value any, reason string) *AppError {
	return newAppError(ErrorTypeInvalidConfig, "INVALID_CONFIG",
		fmt.Sprintf("configuration field %s %s", field, reason), nil,
		"field", field, "value", value, "reason", reason)
}

// AsAppError finds the first AppError in err's chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.IsType(errorType)
}

// GetUserMessage returns the text shown to the user. Causes are never included.
func GetUserMessage(err error) string {
	appErr, ok := AsAppError(err)
	if !ok {
		return err.Error()
	}

	var msg string
	switch {
	case appErr.Type == ErrorTypeStorage:
		msg = appErr.Message + ". See the diagnostic log for details."
	case appErr.Type.known():
		msg = appErr.Message
	default:
		msg = "An unexpected error occurred. Please try again."
	}
	if appErr.Hint != "" {
		msg += " (" + appErr.Hint + ")"
	}
	return msg
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ExitCode maps an error to the process exit status.
// Errors that are not AppErrors count as user errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr.Type.ExitCode()
	}
	return ExitUserError
}
