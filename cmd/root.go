// Package cmd provides the root command and CLI setup for logmig.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"logmig.dev/pkg/logmig/internal/adapter"
	"logmig.dev/pkg/logmig/internal/controller"
	"logmig.dev/pkg/logmig/internal/domain"
	m "logmig.dev/pkg/logmig/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var manifestStore adapter.ManifestStore
var ui controller.UI
var migrator domain.Migrator

// baseDirFlag is a root-level flag; manifest paths resolve against it.
var baseDirFlag string

// manifestFlag points at an external YAML manifest; empty selects the
// compiled-in default list.
var manifestFlag string

// backupSuffixFlag is appended to the full original filename of every backup.
var backupSuffixFlag string

// verboseFlag enables debug logging.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	manifestStore = adapter.NewYAMLManifestStore()
	migrator = domain.NewMigrator(fsAdapter, ui)
}

const rootLongDescription = `Logmig rewrites a fixed manifest of source files, replacing ad-hoc
console.* logging calls with calls to the centralized, scope-tagged
logger module, and keeps a backup of every file it touches.

Re-running is safe: files that already import the logger module are
skipped, so a second pass is a no-op.`

const runLongDescription = `Process every manifest entry in order: files that still contain
console.* calls get the logger import injected after their last
non-type import line, every console call rewritten, and a backup
written before the original is overwritten.

With --dry-run nothing is written; a unified diff is shown per file
that would change.`

const listLongDescription = `Show every manifest entry with its derived logger scope, the number
of console call sites, and the predicted outcome. Never writes.`

const cleanLongDescription = `Delete all backup files under the base directory. Run this after
reviewing a migration.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logmig",
		Short: "Console-to-logger migration tool",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&baseDirFlag, baseDirFlagName, "C",
			viper.GetString(baseDirFlagName),
			"base directory the manifest paths are resolved against",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(baseDirFlagName), baseDirFlagName)

	cmd.PersistentFlags().
		StringVarP(
			&manifestFlag, manifestFlagName, "m",
			viper.GetString(manifestFlagName),
			"YAML manifest of relative paths (default: built-in list)",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(manifestFlagName), manifestFlagName)

	cmd.PersistentFlags().
		StringVar(
			&backupSuffixFlag, backupSuffixFlagName,
			viper.GetString(backupSuffixFlagName),
			"suffix appended to backup files",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(backupSuffixFlagName), backupSuffixFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed
// the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen once
// to the rootCmd. The command context is cancelled on SIGINT/SIGTERM; the
// workflow checks it between manifest entries, so interrupts land between
// files, never mid-entry.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadManifest resolves the active manifest: the external YAML list when
// --manifest is set, the compiled-in default otherwise.
func loadManifest() (m.Manifest, error) {
	return manifestStore.Load(m.Path(viper.GetString(manifestFlagName)))
}

func baseDir() m.Path {
	return m.Path(viper.GetString(baseDirFlagName))
}

func backupSuffix() string {
	return viper.GetString(backupSuffixFlagName)
}
