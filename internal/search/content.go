package search

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	mgerrors "github.com/Aman-CERP/minigrep/internal/errors"
)

// LoadContent reads the whole file at path and returns it as text.
// The file must be valid UTF-8.
func LoadContent(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", readError(path, err)
	}

	if !utf8.Valid(data) {
		return "", mgerrors.IOError(mgerrors.ErrCodeFileNotText,
			fmt.Sprintf("%s is not valid UTF-8 text", path), nil).
			WithDetail("path", path)
	}

	return string(data), nil
}

func readError(path string, err error) error {
	var ge *mgerrors.GrepError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		ge = mgerrors.IOError(mgerrors.ErrCodeFileNotFound,
			fmt.Sprintf("file not found: %s", path), err).
			WithSuggestion("check the <filename> argument")
	case errors.Is(err, fs.ErrPermission):
		ge = mgerrors.IOError(mgerrors.ErrCodeFilePermission,
			fmt.Sprintf("permission denied: %s", path), err)
	default:
		ge = mgerrors.IOError(mgerrors.ErrCodeFileUnreadable,
			fmt.Sprintf("cannot read %s", path), err)
	}
	return ge.WithDetail("path", path)
}
