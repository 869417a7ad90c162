// Package config holds the runtime configuration of goshift.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config is populated from flags and GOSHIFT_* environment variables.
type Config struct {
	// Common flags
	Envelope bool
	Quiet    bool
	LogLevel string `mapstructure:"log-level" validate:"oneof=debug info warn error disabled"`
	LogFile  string `mapstructure:"log-file"`

	// Batch flags
	Shift              int
	Parallel           int    `validate:"min=1"`
	EncryptSuffix      string `mapstructure:"encrypt-ext" validate:"required,suffix"`
	DecryptSuffix      string `mapstructure:"decrypt-ext" validate:"suffix"`
	Delete             bool
	Stats              bool
	Dry                bool
	PreserveTimestamps bool `mapstructure:"preserve-timestamps"`

	// Command-specific state
	Decrypt bool `mapstructure:"-"`

	// Positional arguments
	Files []string `mapstructure:"-" validate:"min=1"`
}

// Validate validates the configuration against the struct tags.
func (c Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := register(validate); err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	return nil
}
