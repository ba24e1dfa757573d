package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"logmig.dev/pkg/logmig/internal/domain"
)

var runDryRunFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the console-to-logger migration",
		Long:  runLongDescription,
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			manifest, err := loadManifest()
			if err != nil {
				return err
			}

			_, err = migrator.Migrate(cmd.Context(), domain.MigrateArgs{
				Manifest:     manifest,
				BaseDir:      baseDir(),
				BackupSuffix: backupSuffix(),
				DryRun:       viper.GetBool(dryRunFlagName),
			})

			return err
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&runDryRunFlag, dryRunFlagName, "n", viper.GetBool(dryRunFlagName), "report what would change without writing")
	bindFlagToConfig(cmd.Flags().Lookup(dryRunFlagName), dryRunFlagName)
}
