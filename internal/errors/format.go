package errors

import (
	"fmt"
	"strings"
)

// FormatForUser returns a user-friendly error message.
// If debug is true, the underlying cause and details are included.
func FormatForUser(err error, debug bool) string {
	if err == nil {
		return ""
	}

	ge, ok := As(err)
	if !ok {
		return err.Error()
	}

	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(ge.Message)
	sb.WriteString("\n")

	if ge.Suggestion != "" {
		sb.WriteString("\nSuggestion: ")
		sb.WriteString(ge.Suggestion)
		sb.WriteString("\n")
	}

	if debug {
		if ge.Cause != nil {
			sb.WriteString(fmt.Sprintf("\nCause: %v\n", ge.Cause))
		}
		for k, v := range ge.Details {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, v))
		}
	}

	sb.WriteString(fmt.Sprintf("\n[%s]", ge.Code))

	return sb.String()
}

// FormatForCLI formats an error for CLI output.
// Uses a concise format suitable for terminal display.
func FormatForCLI(err error) string {
	if err == nil {
		return ""
	}

	ge, ok := As(err)
	if !ok {
		ge = Wrap(ErrCodeInternal, err)
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Error: %s\n", ge.Message))

	if ge.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("  Hint: %s\n", ge.Suggestion))
	}

	sb.WriteString(fmt.Sprintf("  Code: %s\n", ge.Code))

	return sb.String()
}

// FormatForLog formats an error as slog attribute key-values.
// The result can be passed straight to slog.Error(msg, FormatForLog(err)...).
func FormatForLog(err error) []any {
	if err == nil {
		return nil
	}

	ge, ok := As(err)
	if !ok {
		return []any{"error", err.Error()}
	}

	attrs := []any{
		"error_code", ge.Code,
		"message", ge.Message,
		"category", string(ge.Category),
		"severity", string(ge.Severity),
	}

	if ge.Cause != nil {
		attrs = append(attrs, "cause", ge.Cause.Error())
	}

	for k, v := range ge.Details {
		attrs = append(attrs, "detail_"+k, v)
	}

	return attrs
}
