package domain

import (
	"strings"
	"testing"
)

func TestTransformer_AlreadyMigrated(t *testing.T) {
	tr := NewTransformer()

	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"single quoted import", "import { logger } from '@/lib/logger'\n", true},
		{"double quoted import", `import { logger } from "@/lib/logger"` + "\n", true},
		{"scoped factory import", "import { createScopedLogger } from '@/lib/logger'\n", true},
		{"no logger import", "import { x } from 'y'\nconsole.log('hi')\n", false},
		{"mention without quotes", "// see @/lib/logger for details\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.AlreadyMigrated(tt.content); got != tt.want {
				t.Fatalf("AlreadyMigrated() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransformer_CountConsoleCalls(t *testing.T) {
	tr := NewTransformer()

	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"none", "const x = 1\n", 0},
		{"one log", "console.log('hi')\n", 1},
		{"all levels", "console.log(1)\nconsole.error(2)\nconsole.warn(3)\nconsole.info(4)\nconsole.debug(5)\n", 5},
		{"member access without call", "const f = console.log\n", 0},
		{"unsupported level", "console.trace('hi')\n", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.CountConsoleCalls(tt.content); got != tt.want {
				t.Fatalf("CountConsoleCalls() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTransformer_Snippet(t *testing.T) {
	tr := NewTransformer()

	scoped := tr.Snippet("service:hederaService")
	if !strings.Contains(scoped, "import { createScopedLogger } from '@/lib/logger'") {
		t.Fatalf("scoped snippet missing factory import: %q", scoped)
	}

	if !strings.Contains(scoped, "const logger = createScopedLogger('service:hederaService')") {
		t.Fatalf("scoped snippet missing initializer: %q", scoped)
	}

	plain := tr.Snippet("")
	if plain != "import { logger } from '@/lib/logger'\n" {
		t.Fatalf("default snippet = %q", plain)
	}
}

func TestTransformer_InjectImport_AfterLastImport(t *testing.T) {
	tr := NewTransformer()

	content := "import { a } from 'a'\n" +
		"import { b } from 'b'\n" +
		"\n" +
		"export const x = 1\n"

	got := tr.InjectImport(content, "")

	lines := strings.Split(got, "\n")
	if lines[0] != "import { a } from 'a'" {
		t.Fatalf("first line changed: %q", lines[0])
	}

	if lines[1] != "import { b } from 'b'" {
		t.Fatalf("second line changed: %q", lines[1])
	}

	if !strings.HasPrefix(lines[2], "import { logger } from '@/lib/logger'") {
		t.Fatalf("snippet not inserted after last import: %q", lines[2])
	}

	if !strings.Contains(got, "export const x = 1") {
		t.Fatalf("existing content lost: %q", got)
	}
}

func TestTransformer_InjectImport_SkipsTypeImports(t *testing.T) {
	tr := NewTransformer()

	content := "import { a } from 'a'\n" +
		"import type { T } from 't'\n" +
		"\n" +
		"export const x = 1\n"

	got := tr.InjectImport(content, "")

	lines := strings.Split(got, "\n")
	// The type-only import is not an anchor; the snippet lands after the
	// first import instead.
	if !strings.HasPrefix(lines[1], "import { logger } from '@/lib/logger'") {
		t.Fatalf("snippet not anchored to last non-type import: %q", got)
	}

	snippetIdx := strings.Index(got, "@/lib/logger")
	typeIdx := strings.Index(got, "import type { T } from 't'")

	if typeIdx < 0 {
		t.Fatalf("type import lost: %q", got)
	}

	if typeIdx < snippetIdx {
		t.Fatalf("snippet inserted after type-only import: %q", got)
	}
}

func TestTransformer_InjectImport_NoImports(t *testing.T) {
	tr := NewTransformer()

	content := "export function requireEnv(name) {\n  return process.env[name]\n}\n"

	got := tr.InjectImport(content, "config:serverEnv")

	if !strings.HasPrefix(got, "import { createScopedLogger } from '@/lib/logger'") {
		t.Fatalf("snippet not prepended: %q", got)
	}

	if !strings.HasSuffix(got, content) {
		t.Fatalf("original content not preserved verbatim: %q", got)
	}
}

func TestTransformer_RewriteCalls(t *testing.T) {
	tr := NewTransformer()

	content := "console.log(1)\nconsole.log(2)\nconsole.error(3)\nconsole.warn(4)\nconsole.info(5)\nconsole.debug(6)\n"

	got := tr.RewriteCalls(content)

	if strings.Contains(got, "console.") {
		t.Fatalf("console call survived rewriting: %q", got)
	}

	if strings.Count(got, "logger.info(") != 3 {
		t.Fatalf("expected log and info to both map to logger.info, got %q", got)
	}

	for _, want := range []string{"logger.error(3)", "logger.warn(4)", "logger.debug(6)"} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in %q", want, got)
		}
	}
}

func TestTransformer_Apply_ServiceExample(t *testing.T) {
	tr := NewTransformer()

	content := "import { x } from 'y'\n" +
		"\n" +
		"export function boom() {\n" +
		"  console.error('boom')\n" +
		"}\n"

	got := tr.Apply(content, "service:withdrawService")

	lines := strings.Split(got, "\n")
	if lines[0] != "import { x } from 'y'" {
		t.Fatalf("import line changed: %q", lines[0])
	}

	if !strings.Contains(got, "const logger = createScopedLogger('service:withdrawService')") {
		t.Fatalf("initializer missing: %q", got)
	}

	if !strings.Contains(got, "logger.error('boom')") {
		t.Fatalf("call not rewritten: %q", got)
	}

	if strings.Contains(got, "console.error(") {
		t.Fatalf("original call survived: %q", got)
	}
}
