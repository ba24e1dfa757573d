package domain

import (
	"regexp"
	"strings"
)

// loggerModule is the import specifier of the centralized logger module.
const loggerModule = "@/lib/logger"

// consoleCallPattern matches console call sites eligible for rewriting.
var consoleCallPattern = regexp.MustCompile(`console\.(log|error|warn|info|debug)\(`)

// callReplacements maps console call prefixes to logger calls. console.log
// intentionally maps to logger.info; the other levels map one-to-one.
var callReplacements = []struct {
	old string
	new string
}{
	{"console.log(", "logger.info("},
	{"console.error(", "logger.error("},
	{"console.warn(", "logger.warn("},
	{"console.info(", "logger.info("},
	{"console.debug(", "logger.debug("},
}

// Transformer performs the textual rewriting of a single file. The surface is
// deliberately narrow: orchestration hands it content and a scope and gets
// content back, so the line/text matching can later be swapped for a
// structure-aware editor without touching the workflow.
//
// Matching is purely textual. Calls inside comments or string literals are
// rewritten too; the per-file backup is the safety net for that imprecision.
type Transformer struct{}

// NewTransformer constructs a Transformer.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// AlreadyMigrated reports whether content already references the logger
// module, with either quoting style.
func (t *Transformer) AlreadyMigrated(content string) bool {
	return strings.Contains(content, "'"+loggerModule+"'") ||
		strings.Contains(content, `"`+loggerModule+`"`)
}

// CountConsoleCalls returns the number of console call sites in content.
func (t *Transformer) CountConsoleCalls(content string) int {
	return len(consoleCallPattern.FindAllStringIndex(content, -1))
}

// Snippet builds the import/initializer block for the given scope. An empty
// scope selects the shared default logger.
func (t *Transformer) Snippet(scope string) string {
	if scope == "" {
		return "import { logger } from '" + loggerModule + "'\n"
	}

	return "import { createScopedLogger } from '" + loggerModule + "'\n\n" +
		"const logger = createScopedLogger('" + scope + "')\n"
}

// InjectImport inserts the snippet immediately after the last non-type import
// line, or prepends it (followed by a blank line) when the file has no import
// lines. Existing lines are never reflowed; this is a pure line-array
// insertion.
func (t *Transformer) InjectImport(content, scope string) string {
	snippet := t.Snippet(scope)

	lines := strings.Split(content, "\n")
	lastImportIdx := -1

	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "import ") && !strings.Contains(line, "type") {
			lastImportIdx = i
		}
	}

	if lastImportIdx < 0 {
		return snippet + "\n" + content
	}

	injected := make([]string, 0, len(lines)+1)
	injected = append(injected, lines[:lastImportIdx+1]...)
	injected = append(injected, snippet)
	injected = append(injected, lines[lastImportIdx+1:]...)

	return strings.Join(injected, "\n")
}

// RewriteCalls applies the literal call substitutions. Every occurrence is
// replaced, not just the first.
func (t *Transformer) RewriteCalls(content string) string {
	for _, replacement := range callReplacements {
		content = strings.ReplaceAll(content, replacement.old, replacement.new)
	}

	return content
}

// Apply runs the full transform: import injection followed by call rewriting.
func (t *Transformer) Apply(content, scope string) string {
	return t.RewriteCalls(t.InjectImport(content, scope))
}
