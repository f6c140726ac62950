package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Line_WritesLineWithNewline(t *testing.T) {
	// Given: a writer with a buffer
	buf := &bytes.Buffer{}
	w := New(buf)

	// When: writing two lines
	require.NoError(t, w.Line("safe, fast, productive."))
	require.NoError(t, w.Line(""))

	// Then: each line is terminated
	assert.Equal(t, "safe, fast, productive.\n\n", buf.String())
}

func TestWriter_Line_KeepsCarriageReturn(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf)

	require.NoError(t, w.Line("windows\r"))

	assert.Equal(t, "windows\r\n", buf.String())
}

func TestWriter_Match_PlainIgnoresSpans(t *testing.T) {
	// Given: a writer without color
	buf := &bytes.Buffer{}
	w := New(buf)

	// When: writing a match with spans
	require.NoError(t, w.Match("safe, fast, productive.", []Span{{Start: 15, End: 19}}))

	// Then: the line is written unchanged
	assert.Equal(t, "safe, fast, productive.\n", buf.String())
	assert.False(t, w.UseColor())
}

func TestWriter_Match_AlwaysHighlights(t *testing.T) {
	// Given: a writer forced into color mode
	buf := &bytes.Buffer{}
	w := New(buf, WithColor(ColorAlways))
	require.True(t, w.UseColor())

	// When: writing a match
	require.NoError(t, w.Match("safe, fast, productive.", []Span{{Start: 15, End: 19}}))

	// Then: surrounding text is intact and escape codes are present
	out := buf.String()
	assert.Contains(t, out, "safe, fast, pro")
	assert.Contains(t, out, "duct")
	assert.Contains(t, out, "ive.\n")
	assert.Contains(t, out, "\x1b[")
}

func TestWriter_Match_NoSpansWritesPlainLine(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf, WithColor(ColorAlways))

	require.NoError(t, w.Match("Rust:", nil))

	assert.Equal(t, "Rust:\n", buf.String())
}

func TestWithColor_AutoIsOffForBuffers(t *testing.T) {
	w := New(&bytes.Buffer{}, WithColor(ColorAuto))
	assert.False(t, w.UseColor())

	w = New(&bytes.Buffer{}, WithColor(ColorNever))
	assert.False(t, w.UseColor())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWriter_Line_ReturnsWriteError(t *testing.T) {
	w := New(failingWriter{})

	assert.EqualError(t, w.Line("x"), "broken pipe")
}

func TestWriter_Status_PrintsIconAndMessage(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf)

	w.Statusf("🚩", "flags: %v", []string{"-i"})

	assert.Equal(t, "🚩 flags: [-i]\n", buf.String())
}

func TestWriter_Warning_PrintsWarningIcon(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf)

	w.Warningf("ignoring unrecognized flag %q", "-x")

	output := buf.String()
	assert.Contains(t, output, "⚠️")
	assert.Contains(t, output, `ignoring unrecognized flag "-x"`)
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input   string
		want    ColorMode
		wantErr bool
	}{
		{"auto", ColorAuto, false},
		{"ALWAYS", ColorAlways, false},
		{"never", ColorNever, false},
		{"sometimes", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColorMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
