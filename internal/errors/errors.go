package errors

import (
	stderrors "errors"
	"fmt"
)

// GrepError is the structured error type for minigrep.
// It provides rich context for error handling, logging, and user presentation.
type GrepError struct {
	// Code is the unique error code (e.g., "ERR_201_FILE_NOT_FOUND").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, IO, Argument, Internal).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable suggestion for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *GrepError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *GrepError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
// This enables errors.Is() to work with GrepError.
func (e *GrepError) Is(target error) bool {
	if t, ok := target.(*GrepError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *GrepError) WithDetail(key, value string) *GrepError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
// Returns the error for method chaining.
func (e *GrepError) WithSuggestion(suggestion string) *GrepError {
	e.Suggestion = suggestion
	return e
}

// New creates a new GrepError with the given code and message.
// Category and severity are derived from the code.
func New(code string, message string, cause error) *GrepError {
	return &GrepError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a GrepError from an existing error.
// The error's message becomes the GrepError message.
func Wrap(code string, err error) *GrepError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// ConfigError creates a settings-related error.
func ConfigError(message string, cause error) *GrepError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// IOError creates an I/O-related error with the given code.
func IOError(code, message string, cause error) *GrepError {
	return New(code, message, cause)
}

// ArgumentError creates a command-line argument error.
func ArgumentError(message string) *GrepError {
	return New(ErrCodeMissingArguments, message, nil)
}

// FlagError creates an error for a malformed command-line flag.
func FlagError(cause error) *GrepError {
	return New(ErrCodeInvalidFlag, cause.Error(), cause)
}

// InternalError creates an internal error.
func InternalError(message string, cause error) *GrepError {
	return New(ErrCodeInternal, message, cause)
}

// GetCode extracts the error code from a GrepError anywhere in the chain.
// Returns empty string if there is none.
func GetCode(err error) string {
	if ge, ok := As(err); ok {
		return ge.Code
	}
	return ""
}

// GetCategory extracts the category from a GrepError anywhere in the chain.
// Returns empty string if there is none.
func GetCategory(err error) Category {
	if ge, ok := As(err); ok {
		return ge.Category
	}
	return ""
}

// As finds the first GrepError in err's chain.
func As(err error) (*GrepError, bool) {
	var ge *GrepError
	if stderrors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}
