package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/goshift/internal/config"
	"github.com/idelchi/goshift/internal/logic"
)

// NewClassifyCommand creates a new cobra command for the classify subcommand.
func NewClassifyCommand(cfg *config.Config, v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:     "classify [flags] files/directories...",
		Aliases: []string{"cls"},
		Short:   "Report whether files are multi-byte text or unstructured bytes",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg, v, false),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, cfg, func(log zerolog.Logger) error {
				return logic.RunClassify(cfg, log)
			})
		},
	}
}
