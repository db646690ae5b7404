package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Alain-L/cookielog/parser"
)

// validateLogFile checks that path names a non-empty regular file.
// The stdin marker is accepted as is.
func validateLogFile(path string) error {
	if path == parser.StdinName {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("file not found: %s", path)
		}
		return fmt.Errorf("cannot access %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("path is not a file: %s", path)
	}
	if info.Size() == 0 {
		return fmt.Errorf("file is empty: %s", path)
	}
	return nil
}

// inputSize returns the size of the file at path, or -1 for stdin and
// files that cannot be stat'ed.
func inputSize(path string) int64 {
	if path == parser.StdinName {
		return -1
	}
	fi, err := os.Stat(path)
	if err != nil {
		return -1
	}
	return fi.Size()
}
