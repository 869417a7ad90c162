package logic

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/idelchi/goshift/internal/config"
	"github.com/idelchi/goshift/internal/fileutil"
	"github.com/idelchi/goshift/internal/filter"
	"github.com/idelchi/goshift/internal/shift"
)

// RunClassify prints the encoding of every resolved file.
func RunClassify(cfg *config.Config, log zerolog.Logger) error {
	files, _, err := filter.Resolve(cfg.Files, filter.All)
	if err != nil {
		return fmt.Errorf("resolving files: %w", err)
	}

	var failures int

	for _, file := range files {
		src, err := fileutil.Read(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", file, err)

			failures++

			continue
		}

		enc := shift.SingleByteOrUnstructured

		if segments, ok := shift.Segments(src.Data); ok {
			enc = shift.MultiByteText

			log.Debug().Str("file", file).Int("sequences", len(segments)).Msg("multi-byte text")
		}

		//nolint:gosec // length is never negative
		fmt.Printf("%s: %s (%s)\n", file, enc, humanize.IBytes(uint64(len(src.Data)))) //nolint:forbidigo
	}

	if failures > 0 {
		return fmt.Errorf("%d file(s) could not be read", failures)
	}

	return nil
}
