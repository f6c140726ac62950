// Package errors provides structured error handling for minigrep.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 2XX: IO errors (file, disk)
//   - 4XX: Argument and validation errors
//   - 5XX: Internal errors
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates settings-related errors.
	CategoryConfig Category = "CONFIG"
	// CategoryIO indicates file I/O errors.
	CategoryIO Category = "IO"
	// CategoryArgument indicates command-line argument errors.
	CategoryArgument Category = "ARGUMENT"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityFatal indicates the run cannot continue.
	SeverityFatal Severity = "FATAL"
	// SeverityError indicates the operation failed.
	SeverityError Severity = "ERROR"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeConfigNotFound = "ERR_101_CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  = "ERR_102_CONFIG_INVALID"

	// IO errors (200-299)
	ErrCodeFileNotFound   = "ERR_201_FILE_NOT_FOUND"
	ErrCodeFilePermission = "ERR_202_FILE_PERMISSION"
	ErrCodeFileNotText    = "ERR_206_FILE_NOT_TEXT"
	ErrCodeFileUnreadable = "ERR_207_FILE_UNREADABLE"

	// Argument errors (400-499)
	ErrCodeMissingArguments = "ERR_401_MISSING_ARGUMENTS"
	ErrCodeInvalidFlag      = "ERR_402_INVALID_FLAG"

	// Internal errors (500-599)
	ErrCodeInternal = "ERR_501_INTERNAL"
)

// categoryFromCode extracts category from error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}

	// "ERR_201_FILE_NOT_FOUND" -> '2'
	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryIO
	case '4':
		return CategoryArgument
	default:
		return CategoryInternal
	}
}

// severityFromCode determines severity based on error code.
// Every error aborts a run, so argument and I/O failures are fatal.
func severityFromCode(code string) Severity {
	switch categoryFromCode(code) {
	case CategoryIO, CategoryArgument:
		return SeverityFatal
	default:
		return SeverityError
	}
}
