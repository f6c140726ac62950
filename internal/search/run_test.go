package search

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/minigrep/internal/config"
	mgerrors "github.com/Aman-CERP/minigrep/internal/errors"
	"github.com/Aman-CERP/minigrep/internal/output"
)

func TestRun_CaseSensitive(t *testing.T) {
	// Given: a poem on disk and a case-sensitive config
	path := writeTemp(t, []byte("I'm nobody! Who are you?\nAre you nobody, too?\nThen there's a pair of us - don't tell!\nHow dreary to be somebody!\n"))
	cfg, err := config.New([]string{"minigrep", "body", path})
	require.NoError(t, err)
	buf := &bytes.Buffer{}

	// When: running the search
	err = Run(cfg, output.New(buf))

	// Then: matching lines are printed in file order
	require.NoError(t, err)
	assert.Equal(t, "I'm nobody! Who are you?\nAre you nobody, too?\nHow dreary to be somebody!\n", buf.String())
}

func TestRun_IgnoreCaseFlag(t *testing.T) {
	path := writeTemp(t, []byte(poem))
	cfg, err := config.New([]string{"minigrep", "DUCT", path, "-i"})
	require.NoError(t, err)
	buf := &bytes.Buffer{}

	require.NoError(t, Run(cfg, output.New(buf)))

	assert.Equal(t, "safe, fast, productive.\n", buf.String())
}

func TestRun_NoMatchesIsNotAnError(t *testing.T) {
	path := writeTemp(t, []byte(poem))
	cfg, err := config.New([]string{"minigrep", "DUCT", path})
	require.NoError(t, err)
	buf := &bytes.Buffer{}

	require.NoError(t, Run(cfg, output.New(buf)))

	assert.Empty(t, buf.String())
}

func TestRun_MissingFileWritesNothing(t *testing.T) {
	cfg, err := config.New([]string{"minigrep", "duct", filepath.Join(t.TempDir(), "missing.txt")})
	require.NoError(t, err)
	buf := &bytes.Buffer{}

	err = Run(cfg, output.New(buf))

	require.Error(t, err)
	assert.Equal(t, mgerrors.ErrCodeFileNotFound, mgerrors.GetCode(err))
	assert.Empty(t, buf.String())
}

func TestRun_HighlightsWhenColorForced(t *testing.T) {
	path := writeTemp(t, []byte(poem))
	cfg, err := config.New([]string{"minigrep", "DUCT", path, "--ignore-case"})
	require.NoError(t, err)
	buf := &bytes.Buffer{}

	require.NoError(t, Run(cfg, output.New(buf, output.WithColor(output.ColorAlways))))

	out := buf.String()
	assert.Contains(t, out, "safe, fast, pro")
	assert.Contains(t, out, "\x1b[")
	assert.NotContains(t, out, "Rust:")
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, assert.AnError }

func TestRun_WriteFailureIsReported(t *testing.T) {
	path := writeTemp(t, []byte(poem))
	cfg, err := config.New([]string{"minigrep", "", path})
	require.NoError(t, err)

	err = Run(cfg, output.New(brokenWriter{}))

	require.Error(t, err)
	assert.Equal(t, mgerrors.ErrCodeInternal, mgerrors.GetCode(err))
	assert.ErrorIs(t, err, assert.AnError)
}
