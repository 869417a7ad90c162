// Package fileutil provides shared file operation helpers.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const executableBits = 0o111

// Source describes an input file read fully into memory.
type Source struct {
	Data    []byte
	ModTime time.Time
	IsExec  bool
}

// Read loads filename fully into memory along with the metadata needed to write its output.
func Read(filename string) (*Source, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return nil, fmt.Errorf("getting file info for %q: %w", filename, err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("reading %q: is a directory", filename)
	}

	data, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", filename, err)
	}

	return &Source{
		Data:    data,
		ModTime: info.ModTime(),
		IsExec:  info.Mode()&executableBits != 0,
	}, nil
}

// Perm returns the output permissions: owner read-write, plus execute bits if requested.
func Perm(executable bool) os.FileMode {
	const ownerReadWrite = 0o600

	perm := os.FileMode(ownerReadWrite)

	if executable {
		perm |= executableBits
	}

	return perm
}

// WriteAtomic writes data to a temporary file next to outPath and renames it into place.
// On any failure the temporary file is removed and outPath is left untouched.
func WriteAtomic(outPath string, data []byte, perm os.FileMode) (err error) {
	tmpFile, err := os.CreateTemp(filepath.Dir(outPath), ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}

	tmpName := tmpFile.Name()

	defer func() {
		tmpFile.Close() //nolint:errcheck,gosec // best-effort cleanup

		if err != nil {
			os.Remove(tmpName) //nolint:errcheck,gosec // best-effort cleanup
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		return fmt.Errorf("writing temporary file: %w", err)
	}

	if err = os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("setting file permissions: %w", err)
	}

	if err = tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temporary file: %w", err)
	}

	if err = os.Rename(tmpName, outPath); err != nil {
		return fmt.Errorf("renaming output file: %w", err)
	}

	return nil
}

// FinalizeOutput optionally preserves timestamps and returns the output file size.
func FinalizeOutput(outPath string, preserveTimestamps bool, modTime time.Time) (int64, error) {
	if preserveTimestamps {
		if err := os.Chtimes(outPath, modTime, modTime); err != nil {
			return 0, fmt.Errorf("preserving timestamps: %w", err)
		}
	}

	outInfo, err := os.Stat(outPath)
	if err != nil {
		return 0, fmt.Errorf("stat output %q: %w", outPath, err)
	}

	return outInfo.Size(), nil
}
