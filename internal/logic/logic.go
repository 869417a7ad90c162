// Package logic implements the run modes of goshift on top of the shift cipher.
package logic

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/idelchi/goshift/internal/config"
	"github.com/idelchi/goshift/internal/encryption"
	"github.com/idelchi/goshift/internal/filter"
)

// Run encrypts or decrypts every resolved file.
func Run(cfg *config.Config, log zerolog.Logger) error {
	scanned, excluded, start, done, err := preamble(cfg)
	if done || err != nil {
		return err
	}

	proc := encryption.NewProcessor(cfg, log)

	processed, errored, totalSize, err := proc.ProcessFiles()

	if cfg.Stats {
		printStats(scanned, excluded, processed, errored, totalSize, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

// preamble resolves files and handles dry run. Returns done=true if dry run was executed.
func preamble(cfg *config.Config) (int, int, time.Time, bool, error) {
	start := time.Now()

	keep := filter.WithoutSuffix(cfg.EncryptSuffix)
	if cfg.Decrypt {
		keep = filter.WithSuffix(cfg.EncryptSuffix)
	}

	files, scanned, err := filter.Resolve(cfg.Files, keep)
	if err != nil {
		return 0, 0, start, false, fmt.Errorf("resolving files: %w", err)
	}

	cfg.Files = files

	excluded := scanned - len(cfg.Files)

	if cfg.Dry {
		return scanned, excluded, start, true, dryRun(cfg, scanned, excluded, start)
	}

	return scanned, excluded, start, false, nil
}

// dryRun previews what would be processed without actually encrypting/decrypting.
//
//nolint:unparam // signature kept for consistency with Run callers
func dryRun(cfg *config.Config, scanned, excluded int, start time.Time) error {
	var totalSize int64

	for _, file := range cfg.Files {
		if !cfg.Quiet {
			fmt.Printf("Would process %q -> %q\n", file, encryption.OutputPath(file, cfg)) //nolint:forbidigo
		}

		if cfg.Stats {
			if info, err := os.Stat(file); err == nil {
				totalSize += info.Size()
			}
		}
	}

	if cfg.Stats {
		printStats(scanned, excluded, len(cfg.Files), 0, totalSize, time.Since(start))
	}

	return nil
}

func printStats(scanned, excluded, processed, errored int, totalSize int64, duration time.Duration) {
	fmt.Fprintf(os.Stderr, "\nStats\n")
	fmt.Fprintf(os.Stderr, "  Scanned:   %d\n", scanned)
	fmt.Fprintf(os.Stderr, "  Excluded:  %d\n", excluded)
	fmt.Fprintf(os.Stderr, "  Processed: %d\n", processed)
	fmt.Fprintf(os.Stderr, "  Errors:    %d\n", errored)
	//nolint:gosec // totalSize is always non-negative (sum of file sizes)
	fmt.Fprintf(os.Stderr, "  Size:      %s\n", humanize.IBytes(uint64(max(0, totalSize))))
	fmt.Fprintf(os.Stderr, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
