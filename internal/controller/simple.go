package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	m "logmig.dev/pkg/logmig/internal/model"
)

// diffContextLines is the number of unchanged lines shown around each hunk in
// dry-run diffs.
const diffContextLines = 3

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// MigrationStarted prints the run header.
func (s *SimpleUI) MigrationStarted(ctx context.Context, total int, dryRun bool) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("==================================================\n")
	s.printf("Console-to-Logger Migration\n")
	s.printf("==================================================\n\n")

	if dryRun {
		s.printf("Dry run: no files will be written.\n\n")
	}

	s.printf("Processing %d manifest entries\n\n", total)
}

// FileMigrating announces the entry being rewritten.
func (s *SimpleUI) FileMigrating(ctx context.Context, record m.FileRecord) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("→ Migrating: %s\n", record.Path)
}

// FileMigrated reports a rewritten entry.
func (s *SimpleUI) FileMigrated(ctx context.Context, record m.FileRecord) {
	if err := ctx.Err(); err != nil {
		return
	}

	if record.Scope != "" {
		s.printf("✓ Migrated: %s (scope %s)\n", record.Path, record.Scope)
		return
	}

	s.printf("✓ Migrated: %s (default logger)\n", record.Path)
}

// FileWouldMigrate reports a dry-run match with a unified diff of the change.
func (s *SimpleUI) FileWouldMigrate(ctx context.Context, record m.FileRecord, before, after string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("✓ Would migrate: %s\n", record.Path)

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: string(record.Path),
		ToFile:   string(record.Path) + " (migrated)",
		Context:  diffContextLines,
	})
	if err != nil {
		s.printf("diff error: %v\n", err)
		return
	}

	s.printf("%s\n", diff)
}

// FileSkipped reports a skipped entry with the reason encoded in the outcome.
func (s *SimpleUI) FileSkipped(ctx context.Context, record m.FileRecord) {
	if err := ctx.Err(); err != nil {
		return
	}

	switch record.Outcome {
	case m.SkippedMissing:
		s.printf("⚠ File not found: %s\n", record.Path)
	case m.SkippedAlreadyMigrated:
		s.printf("⊙ Already migrated: %s\n", record.Path)
	case m.SkippedNoConsoleCalls:
		s.printf("⊙ No console statements: %s\n", record.Path)
	case m.Migrated, m.WouldMigrate:
		// Not skip outcomes; nothing to print.
	}
}

// DisplaySummary prints the aggregate summary block and post-run guidance.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	if err := ctx.Err(); err != nil {
		return
	}

	migratedLabel := "Migrated"
	if summary.DryRun {
		migratedLabel = "Would migrate"
	}

	s.printf("\n==================================================\n")
	s.printf("Migration Summary\n")
	s.printf("==================================================\n")
	s.printf("Total files: %d\n", summary.Total)
	s.printf("✓ %s: %d\n", migratedLabel, summary.Migrated)
	s.printf("⊙ Skipped: %d\n\n", summary.Skipped)

	if summary.DryRun {
		s.printf("Dry run: no files were written.\n")
		return
	}

	if summary.Migrated > 0 {
		s.printf("⚠ Review migrated files before committing!\n")
		s.printf("Backup files (%s) created for all modified files.\n\n", summary.BackupSuffix)
		s.printf("To remove backups after review:\n")
		s.printf("  logmig clean\n")
	}
}

// DisplayEstimation prints the estimation table.
func (s *SimpleUI) DisplayEstimation(ctx context.Context, records []m.FileRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderEstimationTable(records))

	return nil
}

// DisplayCleanResult reports how many backup files were removed.
func (s *SimpleUI) DisplayCleanResult(ctx context.Context, removed int) {
	if err := ctx.Err(); err != nil {
		return
	}

	if removed == 0 {
		s.printf("No backup files found.\n")
		return
	}

	s.printf("✓ Removed %d backup file(s)\n", removed)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderEstimationTable(records []m.FileRecord) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Scope", "Console Calls", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	pending := 0
	totalCalls := 0

	for _, record := range records {
		scope := record.Scope
		if scope == "" {
			scope = "(default)"
		}

		table.Append([]string{
			string(record.Path),
			scope,
			fmt.Sprintf("%d", record.CallSites),
			record.Outcome.String(),
		})

		totalCalls += record.CallSites

		if record.Outcome == m.WouldMigrate {
			pending++
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(records)),
		fmt.Sprintf("Pending %d", pending),
		fmt.Sprintf("%d", totalCalls),
		"",
	})

	table.Render()

	return tableBuffer.String()
}
