package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/goshift/internal/config"
	"github.com/idelchi/goshift/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decrypt [flags] [files/directories...]",
		Aliases: []string{"dec"},
		Short:   "Decrypt files",
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg, v, true),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, cfg, func(log zerolog.Logger) error {
				return logic.Run(cfg, log)
			})
		},
	}

	batchFlags(cmd)

	cmd.Flags().String("decrypt-ext", "", "Suffix to append to decrypted files, after stripping the encrypted suffix")

	return cmd
}
