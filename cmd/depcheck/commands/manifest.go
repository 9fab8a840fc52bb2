package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/depcheck/internal/app"
)

func (c *CLI) newManifestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manifest",
		Short: "List the required runtime dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			output, _ := cmd.Flags().GetString("output")
			return c.app.Manifest(cmd.Context(), app.ManifestOptions{
				ConfigPath: configPath,
				Output:     output,
			})
		},
	}
}
