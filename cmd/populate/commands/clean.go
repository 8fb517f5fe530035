package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/populate/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the packages directory and everything in it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dest, _ := cmd.Flags().GetString("dest")

			return c.app.Clean(cmd.Context(), app.CleanOptions{
				PackagesDir: dest,
			})
		},
	}
	cmd.Flags().StringP("dest", "d", "", "Directory to remove")
	return cmd
}
