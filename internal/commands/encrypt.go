package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/goshift/internal/config"
	"github.com/idelchi/goshift/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt [flags] files/directories...",
		Aliases: []string{"enc"},
		Short:   "Encrypt files",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg, v, false),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, cfg, func(log zerolog.Logger) error {
				return logic.Run(cfg, log)
			})
		},
	}

	batchFlags(cmd)

	return cmd
}
