package cli

import (
	stderrors "errors"
	"fmt"
	"log/slog"

	"sourdough-tracker/internal/errors"
	"sourdough-tracker/internal/validation"
)

// CommandError is the user-facing form of a failed command.
// Error() never includes the underlying cause, but the cause stays reachable through Unwrap.
type CommandError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *CommandError) Error() string {
	return fmt.Sprintf("failed to %s: %s", e.Operation, e.Message)
}

// Unwrap returns the original error so exit codes can be derived from it
func (e *CommandError) Unwrap() error {
	return e.Err
}

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct {
	logger *slog.Logger
}

// NewErrorHandler creates a new error handler that records failures in logger
func NewErrorHandler(logger *slog.Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle logs the full error and returns a user-friendly error for operation
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}

	attrs := []any{
		"operation", operation,
		"code", errors.GetErrorCode(err),
		"exit_code", errors.ExitCode(err),
		"error", err,
	}
	if appErr, ok := errors.AsAppError(err); ok && len(appErr.Context) > 0 {
		attrs = append(attrs, "context", appErr.Context)
	}
	eh.logger.Error("command failed", attrs...)

	return &CommandError{
		Operation: operation,
		Message:   eh.userMessage(err),
		Err:       err,
	}
}

// userMessage picks the message shown to the user for err
func (eh *ErrorHandler) userMessage(err error) string {
	var validationErr *validation.ValidationError
	if stderrors.As(err, &validationErr) {
		return validationErr.GetUserFriendlyMessage()
	}
	return errors.GetUserMessage(err)
}
