package search

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mgerrors "github.com/Aman-CERP/minigrep/internal/errors"
)

func writeTemp(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "poem.txt")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestLoadContent_ReadsWholeFile(t *testing.T) {
	path := writeTemp(t, []byte(poem+"\n"))

	contents, err := LoadContent(path)

	require.NoError(t, err)
	assert.Equal(t, poem+"\n", contents)
}

func TestLoadContent_EmptyFile(t *testing.T) {
	path := writeTemp(t, nil)

	contents, err := LoadContent(path)

	require.NoError(t, err)
	assert.Empty(t, contents)
}

func TestLoadContent_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		path     func(t *testing.T) string
		wantCode string
	}{
		{
			name:     "missing file",
			path:     func(*testing.T) string { return filepath.Join(dir, "nope.txt") },
			wantCode: mgerrors.ErrCodeFileNotFound,
		},
		{
			name:     "directory",
			path:     func(*testing.T) string { return dir },
			wantCode: mgerrors.ErrCodeFileUnreadable,
		},
		{
			name:     "invalid utf-8",
			path:     func(t *testing.T) string { return writeTemp(t, []byte{0xff, 0xfe, 'a', '\n'}) },
			wantCode: mgerrors.ErrCodeFileNotText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.path(t)

			contents, err := LoadContent(path)

			require.Error(t, err)
			assert.Empty(t, contents)
			assert.Equal(t, tt.wantCode, mgerrors.GetCode(err))
			assert.Equal(t, mgerrors.CategoryIO, mgerrors.GetCategory(err))

			ge, ok := mgerrors.As(err)
			require.True(t, ok)
			assert.Equal(t, path, ge.Details["path"])
		})
	}
}

func TestLoadContent_PermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read any file")
	}
	path := writeTemp(t, []byte("secret"))
	require.NoError(t, os.Chmod(path, 0o000))

	_, err := LoadContent(path)

	require.Error(t, err)
	assert.Equal(t, mgerrors.ErrCodeFilePermission, mgerrors.GetCode(err))
}
