// Package config builds the per-run search configuration from command-line
// arguments, on top of defaults loaded from the settings file and environment.
package config

import (
	"strings"

	"github.com/Aman-CERP/minigrep/internal/errors"
)

// Usage is the positional argument synopsis.
const Usage = "minigrep <query> <filename> [flags...]"

// Config is the configuration of a single search run.
type Config struct {
	// Query is the substring to search for.
	Query string
	// Filename is the path of the file to search.
	Filename string
	// CaseSensitive selects exact-case matching. Defaults to true.
	CaseSensitive bool
	// Flags lists the recognized flags that were applied, in order.
	Flags []string
	// Ignored lists flag-like arguments with no registered effect.
	Ignored []string
}

// flagEffect applies one recognized flag to a Config under construction.
type flagEffect func(*Config)

// flagRegistry maps every recognized flag to its effect.
var flagRegistry = map[string]flagEffect{
	"-i":               ignoreCase,
	"--ignore-case":    ignoreCase,
	"-s":               matchCase,
	"--case-sensitive": matchCase,
}

func ignoreCase(c *Config) { c.CaseSensitive = false }

func matchCase(c *Config) { c.CaseSensitive = true }

// RecognizedFlags returns the registered flag names.
func RecognizedFlags() []string {
	return []string{"-i", "--ignore-case", "-s", "--case-sensitive"}
}

// New builds a Config from args using the built-in defaults.
// args[0] is the program name, args[1] the query and args[2] the filename.
func New(args []string) (Config, error) {
	return Parse(args, DefaultSettings())
}

// Parse builds a Config from args on top of the defaults in s.
// Arguments after the filename that begin with "-" are flags; the rest are ignored.
func Parse(args []string, s *Settings) (Config, error) {
	if len(args) < 3 {
		return Config{}, errors.ArgumentError("not enough arguments").
			WithDetail("given", strings.Join(args[min(1, len(args)):], " ")).
			WithSuggestion("usage: " + Usage)
	}

	cfg := Config{
		Query:         args[1],
		Filename:      args[2],
		CaseSensitive: true,
	}
	if s != nil {
		cfg.CaseSensitive = s.DefaultCaseSensitive()
	}

	for _, arg := range args[3:] {
		if !isFlag(arg) {
			continue
		}
		effect, ok := flagRegistry[arg]
		if !ok {
			cfg.Ignored = append(cfg.Ignored, arg)
			continue
		}
		effect(&cfg)
		cfg.Flags = append(cfg.Flags, arg)
	}

	return cfg, nil
}

// HasFlagArgs reports whether any flag-like argument was supplied.
func (c Config) HasFlagArgs() bool {
	return len(c.Flags) > 0 || len(c.Ignored) > 0
}

// Mode names the matching mode for logs.
func (c Config) Mode() string {
	if c.CaseSensitive {
		return "case-sensitive"
	}
	return "case-insensitive"
}

func isFlag(arg string) bool {
	return strings.HasPrefix(arg, "-")
}
