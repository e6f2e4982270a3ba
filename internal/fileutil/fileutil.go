// Package fileutil provides shared file operation helpers.
package fileutil

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// ReadInput returns the contents of path, or of standard input for Stdin.
func ReadInput(path string) ([]byte, error) {
	if path == Stdin {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading standard input: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	return data, nil
}

// SplitLines returns the non-blank lines of data with surrounding whitespace removed.
// The lines alias data.
func SplitLines(data []byte) [][]byte {
	var lines [][]byte

	for _, line := range bytes.Split(data, []byte("\n")) {
		if line = bytes.TrimSpace(line); len(line) > 0 {
			lines = append(lines, line)
		}
	}

	return lines
}

// WriteAtomic writes data to a temporary file next to outPath and renames it into
// place, so readers never observe a partial file. It returns the written size.
func WriteAtomic(outPath string, data []byte, perm os.FileMode) (size int64, err error) {
	tmpFile, err := os.CreateTemp(filepath.Dir(outPath), ".tmp-*")
	if err != nil {
		return 0, fmt.Errorf("creating temporary file: %w", err)
	}

	tmpName := tmpFile.Name()

	defer func() {
		tmpFile.Close() //nolint:errcheck,gosec // best-effort cleanup

		if err != nil {
			os.Remove(tmpName) //nolint:errcheck,gosec // best-effort cleanup
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return 0, fmt.Errorf("writing temporary file: %w", err)
	}

	if err := tmpFile.Chmod(perm); err != nil {
		return 0, fmt.Errorf("setting file permissions: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return 0, fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(tmpName, outPath); err != nil {
		return 0, fmt.Errorf("renaming output file: %w", err)
	}

	return int64(len(data)), nil
}
