package cmd

import (
	"github.com/spf13/cobra"

	"logmig.dev/pkg/logmig/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List manifest entries and their migration status",
		Long:  listLongDescription,
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			manifest, err := loadManifest()
			if err != nil {
				return err
			}

			return migrator.Estimate(cmd.Context(), domain.EstimateArgs{
				Manifest: manifest,
				BaseDir:  baseDir(),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
