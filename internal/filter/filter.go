// Package filter resolves positional arguments into the list of files to process.
package filter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoFiles is returned when no file survives resolution.
var ErrNoFiles = errors.New("no files matched")

// Keep decides whether a file found while walking a directory is selected.
type Keep func(path string) bool

// All keeps every file.
func All(string) bool { return true }

// WithSuffix keeps files ending in suffix.
func WithSuffix(suffix string) Keep {
	return func(path string) bool {
		return strings.HasSuffix(path, suffix)
	}
}

// WithoutSuffix keeps files not ending in suffix.
func WithoutSuffix(suffix string) Keep {
	return func(path string) bool {
		return !strings.HasSuffix(path, suffix)
	}
}

// Resolve takes positional args (files/directories).
// Files are added directly (bypassing keep). Directories are walked and filtered.
// Returns matched files and total candidates scanned.
func Resolve(args []string, keep Keep) (files []string, scanned int, err error) {
	seen := make(map[string]struct{})

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, arg := range args {
		arg = filepath.Clean(arg)

		info, err := os.Stat(arg)
		if err != nil {
			return nil, 0, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			scanned++

			add(arg)

			continue
		}

		walked, total, err := walkDir(arg, keep)
		if err != nil {
			return nil, 0, err
		}

		scanned += total

		for _, path := range walked {
			add(path)
		}
	}

	if len(files) == 0 {
		return nil, scanned, fmt.Errorf("%w: %v", ErrNoFiles, args)
	}

	return files, scanned, nil
}

// walkDir walks root recursively, returning the regular files that keep selects.
func walkDir(root string, keep Keep) (files []string, total int, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.Type().IsRegular() {
			return nil
		}

		total++

		if keep(path) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("walking %q: %w", root, err)
	}

	return files, total, nil
}
