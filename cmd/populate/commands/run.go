package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/populate/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Download every package listed in the requirements file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			requirements, _ := cmd.Flags().GetString("requirements")
			dest, _ := cmd.Flags().GetString("dest")
			pip, _ := cmd.Flags().GetString("pip")

			return c.app.Run(cmd.Context(), app.RunOptions{
				RequirementsPath: requirements,
				PackagesDir:      dest,
				PipCommand:       pip,
			})
		},
	}
	cmd.Flags().StringP("requirements", "r", "", "Path to the requirements file")
	cmd.Flags().StringP("dest", "d", "", "Directory to download packages into")
	cmd.Flags().String("pip", "", "Package-manager executable to invoke")
	return cmd
}
