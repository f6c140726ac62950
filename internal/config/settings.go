package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Aman-CERP/minigrep/internal/errors"
)

// Settings holds the defaults that apply before command-line arguments.
type Settings struct {
	Version int             `yaml:"version" json:"version"`
	Search  SearchSettings  `yaml:"search" json:"search"`
	Output  OutputSettings  `yaml:"output" json:"output"`
	Logging LoggingSettings `yaml:"logging" json:"logging"`
}

// SearchSettings configures matching defaults.
type SearchSettings struct {
	// CaseSensitive is the default matching mode. Nil means true.
	CaseSensitive *bool `yaml:"case_sensitive,omitempty" json:"case_sensitive,omitempty"`
}

// OutputSettings configures match output.
type OutputSettings struct {
	// Color is auto, always or never.
	Color string `yaml:"color" json:"color"`
}

// LoggingSettings configures the optional log file.
type LoggingSettings struct {
	Level      string `yaml:"level" json:"level"`
	File       string `yaml:"file" json:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" json:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" json:"max_age_days"`
	Compress   bool   `yaml:"compress" json:"compress"`
}

// DefaultSettings returns settings with sensible defaults.
func DefaultSettings() *Settings {
	caseSensitive := true
	return &Settings{
		Version: 1,
		Search: SearchSettings{
			CaseSensitive: &caseSensitive,
		},
		Output: OutputSettings{
			Color: "auto",
		},
		Logging: LoggingSettings{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 5,
		},
	}
}

// GetUserConfigPath returns the path to the user configuration file.
// It follows XDG Base Directory specification:
//   - $XDG_CONFIG_HOME/minigrep/config.yaml (if XDG_CONFIG_HOME is set)
//   - ~/.config/minigrep/config.yaml (default)
func GetUserConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "minigrep", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".config", "minigrep", "config.yaml")
	}
	return filepath.Join(home, ".config", "minigrep", "config.yaml")
}

// Load loads settings in order of increasing precedence:
//  1. Hardcoded defaults
//  2. The settings file: path if non-empty (must exist), else the user config file
//  3. Environment variables (MINIGREP_*)
func Load(path string) (*Settings, error) {
	s := DefaultSettings()

	if path != "" {
		if err := s.loadYAML(path); err != nil {
			return nil, err
		}
	} else if userPath := GetUserConfigPath(); fileExists(userPath) {
		if err := s.loadYAML(userPath); err != nil {
			return nil, err
		}
	}

	s.applyEnvOverrides()

	if err := s.Validate(); err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("invalid configuration: %v", err), err)
	}

	return s, nil
}

// loadYAML loads and merges settings from a YAML file.
func (s *Settings) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.New(errors.ErrCodeConfigNotFound,
			fmt.Sprintf("failed to read config file %s", path), err).
			WithDetail("path", path)
	}

	var parsed Settings
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return errors.ConfigError(fmt.Sprintf("failed to parse config file %s: %v", path, err), err).
			WithDetail("path", path)
	}

	s.mergeWith(&parsed)
	return nil
}

// mergeWith merges non-zero values from other into s.
func (s *Settings) mergeWith(other *Settings) {
	if other.Version != 0 {
		s.Version = other.Version
	}
	if other.Search.CaseSensitive != nil {
		v := *other.Search.CaseSensitive
		s.Search.CaseSensitive = &v
	}
	if other.Output.Color != "" {
		s.Output.Color = other.Output.Color
	}
	if other.Logging.Level != "" {
		s.Logging.Level = other.Logging.Level
	}
	if other.Logging.File != "" {
		s.Logging.File = other.Logging.File
	}
	if other.Logging.MaxSizeMB != 0 {
		s.Logging.MaxSizeMB = other.Logging.MaxSizeMB
	}
	if other.Logging.MaxBackups != 0 {
		s.Logging.MaxBackups = other.Logging.MaxBackups
	}
	if other.Logging.MaxAgeDays != 0 {
		s.Logging.MaxAgeDays = other.Logging.MaxAgeDays
	}
	if other.Logging.Compress {
		s.Logging.Compress = true
	}
}

// applyEnvOverrides applies MINIGREP_* environment variable overrides.
func (s *Settings) applyEnvOverrides() {
	if v := os.Getenv("MINIGREP_CASE_SENSITIVE"); v != "" {
		if b, ok := parseBool(v); ok {
			s.Search.CaseSensitive = &b
		}
	}
	// MINIGREP_IGNORE_CASE wins over MINIGREP_CASE_SENSITIVE
	if v := os.Getenv("MINIGREP_IGNORE_CASE"); v != "" {
		caseSensitive := false
		s.Search.CaseSensitive = &caseSensitive
	}
	if v := os.Getenv("MINIGREP_COLOR"); v != "" {
		s.Output.Color = v
	}
	if v := os.Getenv("MINIGREP_LOG_LEVEL"); v != "" {
		s.Logging.Level = v
	}
	if v := os.Getenv("MINIGREP_LOG_FILE"); v != "" {
		s.Logging.File = v
	}
}

// Validate validates the settings and returns an error if invalid.
func (s *Settings) Validate() error {
	validColors := map[string]bool{"auto": true, "always": true, "never": true}
	if !validColors[strings.ToLower(s.Output.Color)] {
		return fmt.Errorf("output.color must be 'auto', 'always', or 'never', got %s", s.Output.Color)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(s.Logging.Level)] {
		return fmt.Errorf("logging.level must be 'debug', 'info', 'warn', or 'error', got %s", s.Logging.Level)
	}

	if s.Logging.MaxSizeMB < 0 {
		return fmt.Errorf("logging.max_size_mb must be non-negative, got %d", s.Logging.MaxSizeMB)
	}
	if s.Logging.MaxBackups < 0 {
		return fmt.Errorf("logging.max_backups must be non-negative, got %d", s.Logging.MaxBackups)
	}
	if s.Logging.MaxAgeDays < 0 {
		return fmt.Errorf("logging.max_age_days must be non-negative, got %d", s.Logging.MaxAgeDays)
	}

	return nil
}

// DefaultCaseSensitive reports the configured default matching mode.
func (s *Settings) DefaultCaseSensitive() bool {
	return s.Search.CaseSensitive == nil || *s.Search.CaseSensitive
}

func parseBool(v string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes", "on":
		return true, true
	case "false", "0", "no", "off":
		return false, true
	default:
		return false, false
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
