package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"logmig.dev/pkg/logmig/internal/domain"
)

var cleanParallelFlag int

// cleanCmd represents the clean command.
var cleanCmd = newCleanCmd()

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove backup files left by a migration",
		Long:  cleanLongDescription,
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := migrator.Clean(cmd.Context(), domain.CleanArgs{
				BaseDir:      baseDir(),
				BackupSuffix: backupSuffix(),
				Parallel:     viper.GetInt(cleanParallelConfigKey),
			})

			return err
		},
	}

	configureCleanFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func configureCleanFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&cleanParallelFlag, cleanParallelFlagName, "p", viper.GetInt(cleanParallelConfigKey), "number of parallel workers for backup removal")
	bindFlagToConfig(cmd.Flags().Lookup(cleanParallelFlagName), cleanParallelConfigKey)
}
