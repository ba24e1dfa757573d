// Package controller provides output adapters for displaying migration
// progress and results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "logmig.dev/pkg/logmig/internal/model"
)

// UI defines the interface for reporting migration progress and results.
// Implementations can use different output methods (simple text, TUI pager).
type UI interface {
	// MigrationStarted prints the run header before the first entry.
	MigrationStarted(ctx context.Context, total int, dryRun bool)
	// FileMigrating announces that an entry passed all checks and is being
	// rewritten.
	FileMigrating(ctx context.Context, record m.FileRecord)
	// FileMigrated reports a rewritten entry.
	FileMigrated(ctx context.Context, record m.FileRecord)
	// FileWouldMigrate reports a dry-run match together with the before/after
	// content so the implementation can render a diff.
	FileWouldMigrate(ctx context.Context, record m.FileRecord, before, after string)
	// FileSkipped reports a skipped entry; the record's outcome carries the
	// reason.
	FileSkipped(ctx context.Context, record m.FileRecord)
	// DisplaySummary prints the final aggregate summary block.
	DisplaySummary(ctx context.Context, summary m.Summary)
	// DisplayEstimation renders the per-entry estimation table.
	DisplayEstimation(ctx context.Context, records []m.FileRecord) error
	// DisplayCleanResult reports how many backup files were removed.
	DisplayCleanResult(ctx context.Context, removed int)
}

// NewUI selects the UI implementation for the current output: a paging TUI
// when attached to a terminal, plain sequential printing otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is attached to a terminal.
func IsTTY(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}

	return false
}
