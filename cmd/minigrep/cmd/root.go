// Package cmd provides the CLI command for minigrep.
package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/minigrep/configs"
	"github.com/Aman-CERP/minigrep/internal/config"
	mgerrors "github.com/Aman-CERP/minigrep/internal/errors"
	"github.com/Aman-CERP/minigrep/internal/logging"
	"github.com/Aman-CERP/minigrep/internal/output"
	"github.com/Aman-CERP/minigrep/internal/search"
	"github.com/Aman-CERP/minigrep/pkg/version"
)

// rootOptions holds global flags and the state set up before a run.
type rootOptions struct {
	debug       bool
	configPath  string
	color       string
	printConfig bool

	settings       *config.Settings
	loggingCleanup func()
}

// NewRootCmd creates the root command for the minigrep CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "minigrep [global flags] <query> <filename> [flags...]",
		Short: "Print the lines of a file that contain a query",
		Long: `minigrep prints every line of <filename> that contains <query>.

Matching is case-sensitive unless a trailing flag or the settings file
says otherwise. Flags after <filename>:
  ` + strings.Join(config.RecognizedFlags(), ", ") + `

Unrecognized trailing flags are reported and ignored. Global flags are
only read before <query>; use -- to search for a query that starts with -.

Examples:
  minigrep duct poem.txt
  minigrep DUCT poem.txt -i
  minigrep -- -x notes.txt
  minigrep --color=always to poem.txt | less -R`,
		Version:       version.String(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer opts.stopLogging()
			if opts.printConfig {
				_, err := fmt.Fprint(cmd.OutOrStdout(), configs.SettingsTemplate)
				return err
			}
			return runSearch(cmd, opts, args)
		},
		PersistentPreRunE: opts.setup,
	}

	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return mgerrors.FlagError(err).WithSuggestion("run 'minigrep --help' for usage")
	})

	// Global flags are only parsed before <query>; everything after it is
	// positional so trailing flags reach the search configuration.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging to ~/.minigrep/logs/")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Settings file (default $XDG_CONFIG_HOME/minigrep/config.yaml)")
	cmd.Flags().StringVar(&opts.color, "color", "", "Highlight matches: auto, always, never")
	cmd.Flags().BoolVar(&opts.printConfig, "print-config", false, "Print an example settings file and exit")

	return cmd
}

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	return executeRoot(NewRootCmd())
}

// executeRoot runs root and reports a failure in the concise CLI form, or with
// cause and details when --debug is set.
func executeRoot(root *cobra.Command) error {
	err := root.Execute()
	if err == nil {
		return nil
	}

	if debug, _ := root.Flags().GetBool("debug"); debug {
		_, _ = fmt.Fprintln(root.ErrOrStderr(), mgerrors.FormatForUser(err, true))
	} else {
		_, _ = fmt.Fprint(root.ErrOrStderr(), mgerrors.FormatForCLI(err))
	}
	return err
}

// setup loads settings and installs the run's logger.
// --print-config skips it so a broken settings file can still be replaced.
func (o *rootOptions) setup(_ *cobra.Command, _ []string) error {
	if o.printConfig {
		return nil
	}

	settings, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	if o.color != "" {
		if _, err := output.ParseColorMode(o.color); err != nil {
			return mgerrors.ConfigError(err.Error(), err).WithDetail("flag", "--color")
		}
		settings.Output.Color = o.color
	}
	o.settings = settings

	logCfg := logging.Config{
		Level:      settings.Logging.Level,
		FilePath:   settings.Logging.File,
		MaxSizeMB:  settings.Logging.MaxSizeMB,
		MaxBackups: settings.Logging.MaxBackups,
		MaxAgeDays: settings.Logging.MaxAgeDays,
		Compress:   settings.Logging.Compress,
	}
	if o.debug {
		logCfg = debugLogging(settings.Logging)
	}

	logger, cleanup, err := logging.Setup(logCfg)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	o.loggingCleanup = cleanup
	slog.SetDefault(logger)

	if logCfg.FilePath != "" {
		slog.Debug("Logging enabled",
			slog.String("log_file", logCfg.FilePath),
			slog.String("version", version.Short()))
	}

	return nil
}

// debugLogging starts from the debug defaults and keeps the configured file and
// rotation settings.
func debugLogging(s config.LoggingSettings) logging.Config {
	cfg := logging.DebugConfig()
	if s.File != "" {
		cfg.FilePath = s.File
	}
	if s.MaxSizeMB > 0 {
		cfg.MaxSizeMB = s.MaxSizeMB
	}
	if s.MaxBackups > 0 {
		cfg.MaxBackups = s.MaxBackups
	}
	cfg.MaxAgeDays = s.MaxAgeDays
	cfg.Compress = s.Compress
	return cfg
}

func (o *rootOptions) stopLogging() {
	if o.loggingCleanup != nil {
		o.loggingCleanup()
		o.loggingCleanup = nil
	}
}

// runSearch builds the run configuration from args and searches.
func runSearch(cmd *cobra.Command, opts *rootOptions, args []string) error {
	cfg, err := config.Parse(append([]string{cmd.Name()}, args...), opts.settings)
	if err != nil {
		slog.Error("config_failed", mgerrors.FormatForLog(err)...)
		return err
	}

	if cfg.HasFlagArgs() {
		diag := output.New(cmd.ErrOrStderr())
		diag.Statusf("🚩", "flags: %v", cfg.Flags)
		for _, f := range cfg.Ignored {
			diag.Warningf("ignoring unrecognized flag %q", f)
		}
	}
	slog.Debug("config_parsed",
		slog.Any("flags", cfg.Flags),
		slog.Any("ignored", cfg.Ignored),
		slog.Bool("case_sensitive", cfg.CaseSensitive))

	mode, err := output.ParseColorMode(opts.settings.Output.Color)
	if err != nil {
		return mgerrors.ConfigError(err.Error(), err)
	}
	out := output.New(cmd.OutOrStdout(), output.WithColor(mode))

	return search.Run(cfg, out)
}
