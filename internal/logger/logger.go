// Package logger builds the diagnostic logger shared by all commands.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	// Level is a zerolog level name, e.g. "debug" or "disabled".
	Level string

	// File, if set, additionally receives JSON records with rotation.
	File string

	// Console receives human readable records. Defaults to os.Stderr.
	Console io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger writing to the console and, optionally, a rotating file.
// The returned closer releases the file sink.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("parsing log level %q: %w", opts.Level, err)
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	writers := []io.Writer{
		zerolog.ConsoleWriter{Out: console, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}},
	}

	var closer io.Closer = nopCloser{}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o750); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("creating log directory: %w", err)
		}

		fileWriter := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    5,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		}

		writers = append(writers, fileWriter)
		closer = fileWriter
	}

	log := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	return log, closer, nil
}
