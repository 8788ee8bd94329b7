package validation

import (
	"fmt"
	"strings"
)

// ValidationErrorType represents the type of validation error
type ValidationErrorType string

const (
	ErrorTypeRequired      ValidationErrorType = "required"
	ErrorTypeInvalidFormat ValidationErrorType = "invalid_format"
	ErrorTypeInvalidValue  ValidationErrorType = "invalid_value"
	ErrorTypeInvalidRange  ValidationErrorType = "invalid_range"
)

// FieldError is one rejected command line flag
type FieldError struct {
	Field   string // flag name without dashes
	Type    ValidationErrorType
	Message string
	Value   interface{}
}

// Error implements the error interface for FieldError
func (fe *FieldError) Error() string {
	return fe.Message
}

// ValidationError collects every rejected flag of one command invocation
type ValidationError struct {
	Errors []FieldError
}

// NewValidationError creates a new ValidationError
func NewValidationError() *ValidationError {
	return &ValidationError{
		Errors: make([]FieldError, 0),
	}
}

// Error implements the error interface for ValidationError
func (ve *ValidationError) Error() string {
	if len(ve.Errors) == 0 {
		return "invalid input"
	}
	messages := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		messages[i] = fe.Message
	}
	return "invalid input: " + strings.Join(messages, "; ")
}

// HasErrors returns true if any flag was rejected
func (ve *ValidationError) HasErrors() bool {
	return len(ve.Errors) > 0
}

// add records a rejected flag; the message always leads with the flag as typed
func (ve *ValidationError) add(field string, errorType ValidationErrorType, value interface{}, format string, args ...interface{}) {
	ve.Errors = append(ve.Errors, FieldError{
		Field:   field,
		Type:    errorType,
		Message: "--" + field + " " + fmt.Sprintf(format, args...),
		Value:   value,
	})
}

// AddRequiredError records a missing flag
func (ve *ValidationError) AddRequiredError(field string) {
	ve.add(field, ErrorTypeRequired, nil, "is required")
}

// AddInvalidFormatError records a flag whose text cannot be parsed
func (ve *ValidationError) AddInvalidFormatError(field string, value interface{}, expectedFormat string) {
	ve.add(field, ErrorTypeInvalidFormat, value, "must look like %s, got %q", expectedFormat, fmt.Sprint(value))
}

// AddInvalidValueError records a parsed flag whose value is not allowed
func (ve *ValidationError) AddInvalidValueError(field string, value interface{}, reason string) {
	ve.add(field, ErrorTypeInvalidValue, value, "%s", reason)
}

// AddInvalidRangeError records a flag outside its permitted range
func (ve *ValidationError) AddInvalidRangeError(field string, value interface{}, reason string) {
	ve.add(field, ErrorTypeInvalidRange, value, "%s, got %v", reason, value)
}

// GetUserFriendlyMessage returns the messages as shown on the terminal
func (ve *ValidationError) GetUserFriendlyMessage() string {
	switch len(ve.Errors) {
	case 0:
		return "Input validation failed"
	case 1:
		return ve.Errors[0].Message
	}

	lines := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		lines[i] = "- " + fe.Message
	}
	return "Multiple validation errors occurred:\n" + strings.Join(lines, "\n")
}
