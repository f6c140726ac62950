package logging

import (
	"os"
	"path/filepath"
)

// DefaultLogDir returns the default log directory (~/.minigrep/logs/).
// Falls back to temp directory if home directory is unavailable.
func DefaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".minigrep", "logs")
	}
	return filepath.Join(home, ".minigrep", "logs")
}

// DefaultLogPath returns the default log file path.
func DefaultLogPath() string {
	return filepath.Join(DefaultLogDir(), "minigrep.log")
}
