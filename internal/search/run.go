package search

import (
	"log/slog"
	"time"

	"github.com/Aman-CERP/minigrep/internal/config"
	mgerrors "github.com/Aman-CERP/minigrep/internal/errors"
	"github.com/Aman-CERP/minigrep/internal/output"
)

// Run loads cfg.Filename, searches it with cfg.Query and writes every matching
// line to out in file order. Nothing is written unless the file loads.
func Run(cfg config.Config, out *output.Writer) error {
	start := time.Now()
	slog.Info("search_started",
		slog.String("query", cfg.Query),
		slog.String("file", cfg.Filename),
		slog.String("mode", cfg.Mode()))

	contents, err := LoadContent(cfg.Filename)
	if err != nil {
		slog.Error("load_failed", mgerrors.FormatForLog(err)...)
		return err
	}

	var results []string
	if cfg.CaseSensitive {
		results = Search(cfg.Query, contents)
	} else {
		results = SearchCaseInsensitive(cfg.Query, contents)
	}

	for _, line := range results {
		if err := writeMatch(out, cfg, line); err != nil {
			return mgerrors.InternalError("failed to write results", err)
		}
	}

	slog.Info("search_complete",
		slog.Int("bytes", len(contents)),
		slog.Int("matches", len(results)),
		slog.Duration("duration", time.Since(start)))
	return nil
}

func writeMatch(out *output.Writer, cfg config.Config, line string) error {
	if !out.UseColor() {
		return out.Line(line)
	}
	return out.Match(line, Spans(line, cfg.Query, cfg.CaseSensitive))
}
