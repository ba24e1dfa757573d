package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// copyWebappFixture clones the example web application into a scratch
// directory so a test can migrate it in place.
func copyWebappFixture(t *testing.T) (baseDir, manifestPath string) {
	t.Helper()

	src, err := filepath.Abs(filepath.Join("..", "examples", "webapp"))
	require.NoError(t, err)

	baseDir = t.TempDir()
	require.NoError(t, os.CopyFS(baseDir, os.DirFS(src)))

	return baseDir, filepath.Join(baseDir, "manifest.yaml")
}

func executeCLI(t *testing.T, args ...string) string {
	t.Helper()

	root, out := newTestCLI(t, newRunCmd(), newListCmd(), newCleanCmd())
	root.SetArgs(args)

	require.NoError(t, root.Execute())

	return out.String()
}

func TestRunCmd_MigratesManifest(t *testing.T) {
	baseDir, manifestPath := copyWebappFixture(t)
	t.Chdir(t.TempDir())

	output := executeCLI(t, "run", "-C", baseDir, "-m", manifestPath)

	require.Contains(t, output, "Migration Summary")
	require.Contains(t, output, "✓ Migrated: src/services/hederaService.ts (scope service:hederaService)")

	service, err := os.ReadFile(filepath.Join(baseDir, "src", "services", "hederaService.ts"))
	require.NoError(t, err)

	assert.Contains(t, string(service), "const logger = createScopedLogger('service:hederaService')")
	assert.Contains(t, string(service), "logger.info('connecting to mirror node')")
	assert.Contains(t, string(service), "logger.debug('client ready'")
	assert.NotContains(t, string(service), "console.")

	backup, err := os.ReadFile(filepath.Join(baseDir, "src", "services", "hederaService.ts.bak"))
	require.NoError(t, err)
	assert.Contains(t, string(backup), "console.log('connecting to mirror node')")

	// No import lines: the snippet is prepended.
	env, err := os.ReadFile(filepath.Join(baseDir, "src", "config", "serverEnv.ts"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(env), "import { createScopedLogger } from '@/lib/logger'"))
	assert.Contains(t, string(env), "const logger = createScopedLogger('config:serverEnv')")

	// Outside every scope rule: the shared default logger is imported.
	hook, err := os.ReadFile(filepath.Join(baseDir, "src", "hooks", "useHistory.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(hook), "import { logger } from '@/lib/logger'")
	assert.NotContains(t, string(hook), "createScopedLogger")

	// No console calls: the file and its backup are never written.
	_, err = os.Stat(filepath.Join(baseDir, "src", "components", "process-modal.tsx.bak"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunCmd_SecondRunIsNoOp(t *testing.T) {
	baseDir, manifestPath := copyWebappFixture(t)
	t.Chdir(t.TempDir())

	executeCLI(t, "run", "-C", baseDir, "-m", manifestPath)

	servicePath := filepath.Join(baseDir, "src", "services", "hederaService.ts")
	afterFirst, err := os.ReadFile(servicePath)
	require.NoError(t, err)

	output := executeCLI(t, "run", "-C", baseDir, "-m", manifestPath)

	require.Contains(t, output, "⊙ Already migrated: src/services/hederaService.ts")
	require.NotContains(t, output, "✓ Migrated: src/services/hederaService.ts")

	afterSecond, err := os.ReadFile(servicePath)
	require.NoError(t, err)
	assert.Equal(t, string(afterFirst), string(afterSecond))
}

func TestRunCmd_MissingFileIsReportedNotFatal(t *testing.T) {
	baseDir := t.TempDir()

	manifestPath := filepath.Join(baseDir, "manifest.yaml")
	require.NoError(t, os.WriteFile(manifestPath, []byte("- src/ghost.ts\n"), 0o644))

	t.Chdir(t.TempDir())

	output := executeCLI(t, "run", "-C", baseDir, "-m", manifestPath)

	require.Contains(t, output, "⚠ File not found: src/ghost.ts")
	require.Contains(t, output, "Migration Summary")
}

func TestRunCmd_CancelledContextStopsBetweenEntries(t *testing.T) {
	baseDir, manifestPath := copyWebappFixture(t)
	t.Chdir(t.TempDir())

	root, _ := newTestCLI(t, newRunCmd())
	root.SetArgs([]string{"run", "-C", baseDir, "-m", manifestPath})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := root.ExecuteContext(ctx)
	require.ErrorIs(t, err, context.Canceled)

	// Cancelled before the first entry: nothing was written.
	_, statErr := os.Stat(filepath.Join(baseDir, "src", "services", "hederaService.ts.bak"))
	assert.True(t, os.IsNotExist(statErr))
}

// Keep this test last in the file: it flips the dry-run flag binding.
func TestRunCmd_DryRunWritesNothing(t *testing.T) {
	baseDir, manifestPath := copyWebappFixture(t)
	t.Chdir(t.TempDir())

	servicePath := filepath.Join(baseDir, "src", "services", "hederaService.ts")
	before, err := os.ReadFile(servicePath)
	require.NoError(t, err)

	output := executeCLI(t, "run", "-C", baseDir, "-m", manifestPath, "--dry-run")

	require.Contains(t, output, "✓ Would migrate: src/services/hederaService.ts")
	require.Contains(t, output, "+import { createScopedLogger } from '@/lib/logger'")
	require.Contains(t, output, "-  console.log('connecting to mirror node')")

	after, err := os.ReadFile(servicePath)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))

	_, err = os.Stat(servicePath + ".bak")
	assert.True(t, os.IsNotExist(err))
}
