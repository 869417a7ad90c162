package logic

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/idelchi/goshift/internal/config"
	"github.com/idelchi/goshift/internal/encryption"
	"github.com/idelchi/goshift/internal/fileutil"
)

// DemoFiles names the files used by RunDemo.
type DemoFiles struct {
	Plain   string
	Cipher  string
	Decoded string
}

// DefaultDemoFiles are the fixed names used when goshift runs without arguments.
var DefaultDemoFiles = DemoFiles{ //nolint:gochecknoglobals
	Plain:   "plain.txt",
	Cipher:  "ciphers.txt",
	Decoded: "decode.txt",
}

// RunSingle encrypts or decrypts one input file into one output file.
// An unreadable input is an error. An output that cannot be written is reported
// and skipped without creating a file.
func RunSingle(cfg *config.Config, log zerolog.Logger, input, output string) error {
	src, err := fileutil.Read(input)
	if err != nil {
		return fmt.Errorf("cannot read input file, nothing done: %w", err)
	}

	proc := encryption.NewProcessor(cfg, log)

	var (
		data []byte
		exec = src.IsExec
	)

	if cfg.Decrypt {
		data, exec, err = proc.Open(input, src.Data, src.IsExec)
		if err != nil {
			return fmt.Errorf("decrypting %q: %w", input, err)
		}
	} else {
		data = proc.Seal(input, src.Data, src.IsExec)
	}

	if !write(output, data, exec) {
		return nil
	}

	if !cfg.Quiet {
		fmt.Printf("Done, output file is %q\n", output) //nolint:forbidigo
	}

	return nil
}

// RunDemo encrypts files.Plain into files.Cipher, then decrypts the result into files.Decoded.
// Only an unreadable plain file is an error; each write failure is reported and skipped.
func RunDemo(cfg *config.Config, log zerolog.Logger, files DemoFiles) error {
	src, err := fileutil.Read(files.Plain)
	if err != nil {
		return fmt.Errorf("cannot read %q, nothing done: %w", files.Plain, err)
	}

	proc := encryption.NewProcessor(cfg, log)

	sealed := proc.Seal(files.Plain, src.Data, src.IsExec)

	write(files.Cipher, sealed, src.IsExec)

	plain, exec, err := proc.Open(files.Cipher, sealed, src.IsExec)
	if err != nil {
		return fmt.Errorf("decrypting %q: %w", files.Cipher, err)
	}

	write(files.Decoded, plain, exec)

	if !cfg.Quiet {
		//nolint:forbidigo
		fmt.Printf("Done, if they could be created the encrypted file is %q and the decrypted file is %q\n",
			files.Cipher, files.Decoded)
	}

	return nil
}

// write stores data atomically and reports a failure instead of returning it.
func write(path string, data []byte, exec bool) bool {
	if err := fileutil.WriteAtomic(path, data, fileutil.Perm(exec)); err != nil {
		fmt.Fprintf(os.Stderr, "Cannot write %q, no file created: %v\n", path, err)

		return false
	}

	return true
}
