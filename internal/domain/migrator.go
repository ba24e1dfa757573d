// Package domain implements the console-to-logger migration workflow.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"logmig.dev/pkg/logmig/internal/adapter"
	"logmig.dev/pkg/logmig/internal/controller"
	m "logmig.dev/pkg/logmig/internal/model"
)

// DefaultBackupSuffix is appended to the full original filename, extension
// included.
const DefaultBackupSuffix = ".bak"

// filePerm is used for backups and rewritten files.
const filePerm = os.FileMode(0o644)

// MigrateArgs contains the arguments for a migration run.
type MigrateArgs struct {
	Manifest     m.Manifest
	BaseDir      m.Path
	BackupSuffix string
	DryRun       bool
}

// EstimateArgs contains the arguments for the estimation view.
type EstimateArgs struct {
	Manifest m.Manifest
	BaseDir  m.Path
}

// CleanArgs contains the arguments for backup cleanup.
type CleanArgs struct {
	BaseDir      m.Path
	BackupSuffix string
	Parallel     int
}

// Migrator defines the migration workflow operations.
type Migrator interface {
	// Migrate processes the manifest in order, one file at a time, and returns
	// the aggregate summary. Expected per-entry conditions (missing file,
	// already migrated, no console calls) are outcomes, not errors; any I/O
	// failure aborts the remaining manifest.
	Migrate(ctx context.Context, args MigrateArgs) (m.Summary, error)

	// Estimate classifies every entry without writing anything and renders the
	// result through the UI.
	Estimate(ctx context.Context, args EstimateArgs) error

	// Clean deletes backup files under the base directory and returns the
	// number removed.
	Clean(ctx context.Context, args CleanArgs) (int, error)
}

type migrator struct {
	adapter.SourceFSAdapter
	controller.UI

	transformer *Transformer
}

// NewMigrator creates a new Migrator instance with the provided dependencies.
func NewMigrator(fsAdapter adapter.SourceFSAdapter, ui controller.UI) Migrator {
	return &migrator{
		SourceFSAdapter: fsAdapter,
		UI:              ui,
		transformer:     NewTransformer(),
	}
}

// Migrate runs the batch strictly sequentially: each entry is fully read,
// checked, backed up, transformed and written before the next one is
// considered.
func (w *migrator) Migrate(ctx context.Context, args MigrateArgs) (m.Summary, error) {
	suffix := backupSuffixOrDefault(args.BackupSuffix)
	summary := m.Summary{DryRun: args.DryRun, BackupSuffix: suffix}

	w.MigrationStarted(ctx, len(args.Manifest), args.DryRun)

	for _, entry := range args.Manifest {
		// Cancellation lands between entries, never mid-entry.
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		record, err := w.migrateFile(ctx, entry, args.BaseDir, suffix, args.DryRun)
		if err != nil {
			return summary, fmt.Errorf("migrate %s: %w", entry, err)
		}

		summary.Total++

		if record.Outcome.Skipped() {
			summary.Skipped++
		} else {
			summary.Migrated++
		}
	}

	w.DisplaySummary(ctx, summary)

	return summary, nil
}

func (w *migrator) migrateFile(ctx context.Context, entry m.Path, baseDir m.Path, suffix string, dryRun bool) (m.FileRecord, error) {
	record := m.FileRecord{Path: entry}

	fullPath := w.JoinPath(string(baseDir), string(entry))

	if _, err := w.FileInfo(fullPath); err != nil {
		if os.IsNotExist(err) {
			record.Outcome = m.SkippedMissing
			w.FileSkipped(ctx, record)
			slog.Warn("file not found", "path", entry)

			return record, nil
		}

		return record, err
	}

	raw, err := w.ReadFile(fullPath)
	if err != nil {
		return record, err
	}

	content := string(raw)

	if w.transformer.AlreadyMigrated(content) {
		record.Outcome = m.SkippedAlreadyMigrated
		w.FileSkipped(ctx, record)

		return record, nil
	}

	record.CallSites = w.transformer.CountConsoleCalls(content)
	if record.CallSites == 0 {
		record.Outcome = m.SkippedNoConsoleCalls
		w.FileSkipped(ctx, record)

		return record, nil
	}

	record.Scope = ScopeFor(entry)

	w.FileMigrating(ctx, record)

	migrated := w.transformer.Apply(content, record.Scope)

	if dryRun {
		record.Outcome = m.WouldMigrate
		w.FileWouldMigrate(ctx, record, content, migrated)

		return record, nil
	}

	// The backup must land on disk before the original is overwritten.
	backupPath := m.Path(string(fullPath) + suffix)
	if err := w.WriteFile(backupPath, raw, filePerm); err != nil {
		return record, fmt.Errorf("write backup: %w", err)
	}

	if err := w.WriteFile(fullPath, []byte(migrated), filePerm); err != nil {
		return record, fmt.Errorf("write file: %w", err)
	}

	record.Outcome = m.Migrated
	w.FileMigrated(ctx, record)
	slog.Info("migrated file", "path", entry, "scope", record.Scope, "call_sites", record.CallSites)

	return record, nil
}

// Estimate classifies every manifest entry without touching the disk beyond
// reads.
func (w *migrator) Estimate(ctx context.Context, args EstimateArgs) error {
	records := make([]m.FileRecord, 0, len(args.Manifest))

	for _, entry := range args.Manifest {
		if err := ctx.Err(); err != nil {
			return err
		}

		record := m.FileRecord{Path: entry, Scope: ScopeFor(entry)}

		fullPath := w.JoinPath(string(args.BaseDir), string(entry))

		raw, err := w.ReadFile(fullPath)

		switch {
		case os.IsNotExist(err):
			record.Outcome = m.SkippedMissing
		case err != nil:
			return fmt.Errorf("read %s: %w", entry, err)
		default:
			content := string(raw)
			record.CallSites = w.transformer.CountConsoleCalls(content)

			switch {
			case w.transformer.AlreadyMigrated(content):
				record.Outcome = m.SkippedAlreadyMigrated
			case record.CallSites == 0:
				record.Outcome = m.SkippedNoConsoleCalls
			default:
				record.Outcome = m.WouldMigrate
			}
		}

		records = append(records, record)
	}

	return w.DisplayEstimation(ctx, records)
}

// Clean removes backup files under the base directory. Deletions run on a
// bounded errgroup; the migration batch itself stays sequential.
func (w *migrator) Clean(ctx context.Context, args CleanArgs) (int, error) {
	suffix := backupSuffixOrDefault(args.BackupSuffix)

	parallel := args.Parallel
	if parallel < 1 {
		parallel = 1
	}

	var backups []m.Path

	err := w.Walk(args.BaseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		if strings.HasSuffix(path, suffix) {
			backups = append(backups, m.Path(path))
		}

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("scan backups: %w", err)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(parallel)

	for _, backup := range backups {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			if err := w.Remove(backup); err != nil {
				return fmt.Errorf("remove %s: %w", backup, err)
			}

			slog.Debug("removed backup", "path", backup)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return 0, err
	}

	w.DisplayCleanResult(ctx, len(backups))

	return len(backups), nil
}

func backupSuffixOrDefault(suffix string) string {
	if suffix == "" {
		return DefaultBackupSuffix
	}

	return suffix
}
