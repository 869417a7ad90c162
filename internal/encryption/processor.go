package encryption

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/goshift/internal/config"
	"github.com/idelchi/goshift/internal/fileutil"
	"github.com/idelchi/goshift/internal/shift"
)

// Processor handles the encryption and decryption of files.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// log receives diagnostics about classification decisions
	log zerolog.Logger

	// results channels processing outcomes to the printer goroutine
	results chan Result
}

// NewProcessor creates a new Processor with the given configuration.
func NewProcessor(cfg *config.Config, log zerolog.Logger) *Processor {
	return &Processor{
		cfg:     cfg,
		log:     log,
		results: make(chan Result, len(cfg.Files)),
	}
}

// Seal encrypts data with the configured shift.
// In envelope mode the output starts with a header recording the encoding and a digest of data.
func (p *Processor) Seal(name string, data []byte, isExec bool) []byte {
	enc := shift.Classify(data)
	body := shift.Apply(enc, data, p.cfg.Shift)

	log := p.log.With().Str("file", name).Stringer("encoding", enc).Logger()
	log.Debug().Int("bytes", len(data)).Msg("encrypting")

	if p.cfg.Envelope {
		return append(newEnvelopeHeader(enc, isExec, data), body...)
	}

	if enc == shift.SingleByteOrUnstructured && shift.Classify(body) == shift.MultiByteText {
		log.Warn().Msg("ciphertext reads as multi-byte text and will not decrypt back in raw mode, use --envelope")
	}

	return body
}

// Open decrypts data with the configured shift.
// isExec is the executable state of the input, used as is in raw mode.
// In envelope mode the stored encoding and executable flag are used and the digest is verified.
func (p *Processor) Open(name string, data []byte, isExec bool) ([]byte, bool, error) {
	log := p.log.With().Str("file", name).Logger()

	if !p.cfg.Envelope {
		enc := shift.Classify(data)

		log.Debug().Stringer("encoding", enc).Int("bytes", len(data)).Msg("decrypting")

		return shift.Apply(enc, data, -p.cfg.Shift), isExec, nil
	}

	header, err := parseEnvelopeHeader(data)
	if err != nil {
		return nil, false, err
	}

	log.Debug().Stringer("encoding", header.encoding).Msg("decrypting envelope")

	plain := shift.Apply(header.encoding, data[envelopeHeaderSize:], -p.cfg.Shift)

	if !header.verify(plain) {
		return nil, false, ErrDigestMismatch
	}

	return plain, header.executable, nil
}

// ProcessFiles concurrently processes all files specified in the configuration.
// It encrypts or decrypts files based on the configuration settings.
// Returns the number of successfully processed files and the number of errors.
//
//nolint:cyclop,gocognit
func (p *Processor) ProcessFiles() (processed, errored int, totalSize int64, err error) {
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range p.results {
			if result.Error != nil {
				errored++

				fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", result.Input, result.Error)
			} else {
				processed++

				totalSize += result.OutputSize

				if !p.cfg.Quiet {
					fmt.Printf("Processed %q -> %q\n", result.Input, result.Output) //nolint:forbidigo
				}
			}

			if p.cfg.Delete && result.Error == nil {
				if err := os.Remove(result.Input); err != nil {
					fmt.Fprintf(os.Stderr, "Error deleting %q: %v\n", result.Input, err)
				} else if !p.cfg.Quiet {
					fmt.Printf("Deleted %q\n", result.Input) //nolint:forbidigo
				}
			}
		}
	}()

	for _, file := range p.cfg.Files {
		group.Go(func() error {
			outPath := OutputPath(file, p.cfg)

			size, err := p.processFile(file, outPath)
			if err != nil {
				p.results <- Result{Input: file, Error: err}

				return err
			}

			p.results <- Result{Input: file, Output: outPath, OutputSize: size}

			return nil
		})
	}

	err = group.Wait()

	close(p.results)

	<-done // Wait for printer to finish

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing files: %w", err)
	}

	return processed, errored, totalSize, nil
}

// processFile handles the encryption or decryption of a single file.
// The output is written to a temporary file and atomically renamed on completion.
func (p *Processor) processFile(filename, outPath string) (int64, error) {
	if filepath.Clean(filename) == filepath.Clean(outPath) {
		return 0, fmt.Errorf("%w: %q", ErrSameFile, filename)
	}

	src, err := fileutil.Read(filename)
	if err != nil {
		return 0, fmt.Errorf("reading input file: %w", err)
	}

	var (
		output []byte
		exec   = src.IsExec
	)

	if p.cfg.Decrypt {
		output, exec, err = p.Open(filename, src.Data, src.IsExec)
		if err != nil {
			return 0, fmt.Errorf("decrypting file: %w", err)
		}
	} else {
		output = p.Seal(filename, src.Data, src.IsExec)
	}

	if err := fileutil.WriteAtomic(outPath, output, fileutil.Perm(exec)); err != nil {
		return 0, fmt.Errorf("writing output file: %w", err)
	}

	size, err := fileutil.FinalizeOutput(outPath, p.cfg.PreserveTimestamps, src.ModTime)
	if err != nil {
		return 0, fmt.Errorf("finalizing output: %w", err)
	}

	return size, nil
}

// OutputPath generates the output file path based on the input filename
// and the configured suffixes for encryption/decryption.
func OutputPath(filename string, cfg *config.Config) string {
	ext := cfg.EncryptSuffix

	if cfg.Decrypt {
		filename = strings.TrimSuffix(filename, cfg.EncryptSuffix)
		ext = cfg.DecryptSuffix
	}

	return filepath.Join(filepath.Dir(filename), filepath.Base(filename)+ext)
}
