package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/depcheck/internal/app"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that every required runtime dependency is present",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			output, _ := cmd.Flags().GetString("output")
			dir, _ := cmd.Flags().GetString("dir")
			localePack, _ := cmd.Flags().GetString("locale-pack")
			parallel, _ := cmd.Flags().GetInt("parallel")
			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				output = "json"
			}

			return c.app.Check(cmd.Context(), app.CheckOptions{
				ConfigPath:  configPath,
				BaseDir:     dir,
				LocalePack:  localePack,
				Parallelism: parallel,
				Output:      output,
			})
		},
	}
	cmd.Flags().StringP("dir", "d", "", "Directory to check (default: directory of the running executable)")
	cmd.Flags().StringP("locale-pack", "l", "", "Locale pack, absolute or relative to the checked directory (default locales/en-US.pak)")
	cmd.Flags().IntP("parallel", "p", 0, "Number of concurrent file probes")
	cmd.Flags().Bool("json", false, "Shorthand for --output json")
	return cmd
}
