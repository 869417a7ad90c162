// Package commands provides the command-line interface for the goshift tool.
//
// It implements:
//   - the root command: `-e|-d input output`, or a demo run without arguments
//   - encryption and decryption of files and directories
//   - classification of files
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/goshift/internal/config"
	"github.com/idelchi/goshift/internal/logger"
	"github.com/idelchi/goshift/internal/shift"
)

const (
	defaultEncryptSuffix = ".enc"
	defaultLogLevel      = "warn"
)

// newViper returns a viper instance reading GOSHIFT_* environment variables.
func newViper() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix("GOSHIFT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("shift", shift.DefaultShift)
	v.SetDefault("parallel", runtime.NumCPU())
	v.SetDefault("encrypt-ext", defaultEncryptSuffix)
	v.SetDefault("log-level", defaultLogLevel)

	return v
}

// load binds the flags of cmd and unmarshals flags and environment into cfg.
func load(cmd *cobra.Command, v *viper.Viper, cfg *config.Config) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	return nil
}

// preRun returns a PreRunE handler that loads the configuration, resolves positional
// args into cfg.Files and validates the result.
func preRun(cfg *config.Config, v *viper.Viper, decrypt bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := load(cmd, v, cfg); err != nil {
			return err
		}

		cfg.Decrypt = decrypt

		if len(args) == 0 {
			cfg.Files = []string{"."}
		} else {
			cfg.Files = args
		}

		return cfg.Validate()
	}
}

// run builds the logger from cfg and hands it to fn.
func run(cmd *cobra.Command, cfg *config.Config, fn func(zerolog.Logger) error) error {
	cmd.SilenceUsage = true

	log, closer, err := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
		Console: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}

	defer closer.Close()

	return fn(log)
}

// batchFlags adds the flags shared by the encrypt and decrypt subcommands.
func batchFlags(cmd *cobra.Command) {
	cmd.Flags().Int("shift", shift.DefaultShift, "Shift amount, negative values shift backwards")
	cmd.Flags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	cmd.Flags().String("encrypt-ext", defaultEncryptSuffix, "Suffix to append to encrypted files")
	cmd.Flags().Bool("delete", false, "Delete the original file after successful encryption/decryption")
	cmd.Flags().Bool("stats", false, "Print statistics after processing")
	cmd.Flags().Bool("dry", false, "Show what would be processed without writing anything")
	cmd.Flags().Bool("preserve-timestamps", false, "Copy the modification time of inputs to outputs")
}
