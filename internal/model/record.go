package model

// Outcome describes what happened to a single manifest entry.
type Outcome int

const (
	// Migrated indicates the file was rewritten and a backup was created.
	Migrated Outcome = iota
	// WouldMigrate indicates the entry matched but nothing was written (dry run
	// or estimation).
	WouldMigrate
	// SkippedAlreadyMigrated indicates the file already references the logger
	// module, so re-processing would double-import it.
	SkippedAlreadyMigrated
	// SkippedNoConsoleCalls indicates the file has no console call sites and
	// injecting an import would leave it unused.
	SkippedNoConsoleCalls
	// SkippedMissing indicates the file does not exist under the base directory.
	SkippedMissing
)

// String returns a short human-readable label for the outcome.
func (o Outcome) String() string {
	switch o {
	case Migrated:
		return "migrated"
	case WouldMigrate:
		return "pending"
	case SkippedAlreadyMigrated:
		return "already migrated"
	case SkippedNoConsoleCalls:
		return "no console calls"
	case SkippedMissing:
		return "missing"
	}

	return "unknown"
}

// Skipped reports whether the outcome counts toward the skipped total.
func (o Outcome) Skipped() bool {
	switch o {
	case SkippedAlreadyMigrated, SkippedNoConsoleCalls, SkippedMissing:
		return true
	case Migrated, WouldMigrate:
		return false
	}

	return false
}

// FileRecord is the transient per-entry processing record. It only exists
// while an entry is handled; the durable trace of a migration is the rewritten
// file plus its backup.
type FileRecord struct {
	Path      Path
	Scope     string // empty means the file uses the default shared logger
	CallSites int
	Outcome   Outcome
}

// Summary accumulates the batch counters. Migrated + Skipped always equals
// Total.
type Summary struct {
	Total    int
	Migrated int
	Skipped  int

	DryRun       bool
	BackupSuffix string
}
