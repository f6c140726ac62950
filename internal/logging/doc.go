// Package logging provides opt-in file-based logging with rotation for minigrep.
// When the --debug flag is set, or a log file is configured, JSON logs are written
// to ~/.minigrep/logs/ for troubleshooting.
//
// By default logging is discarded so that stdout carries only matching lines and
// stderr only user-facing diagnostics.
package logging
