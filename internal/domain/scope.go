package domain

import (
	"path"
	"regexp"
	"strings"

	m "logmig.dev/pkg/logmig/internal/model"
)

// scopeRule pairs a path predicate with a label builder. Rules are evaluated
// in declaration order and the first match wins.
type scopeRule struct {
	match func(rel string) bool
	label func(rel string) string
}

// apiRoutePattern extracts the first one-or-two path components after the API
// root.
var apiRoutePattern = regexp.MustCompile(`src/app/api/([^/]+(?:/[^/]+)?)`)

// scopeRules orders the classification rules. The ValidationService rule must
// stay ahead of the generic services rule: a validation service file
// classifies as validation:*, never service:*.
var scopeRules = []scopeRule{
	{
		match: func(rel string) bool { return strings.Contains(rel, "api/") },
		label: apiScope,
	},
	{
		match: func(rel string) bool {
			return strings.Contains(rel, "services/") && strings.Contains(stem(rel), "ValidationService")
		},
		label: func(rel string) string { return "validation:" + stem(rel) },
	},
	{
		match: func(rel string) bool { return strings.Contains(rel, "services/") },
		label: func(rel string) string { return "service:" + stem(rel) },
	},
	{
		match: func(rel string) bool { return strings.Contains(rel, "domain/entities/") },
		label: func(rel string) string { return "domain:entity:" + stem(rel) },
	},
	{
		match: func(rel string) bool { return strings.Contains(rel, "domain/value-objects/") },
		label: func(rel string) string { return "domain:vo:" + stem(rel) },
	},
	{
		match: func(rel string) bool { return strings.Contains(rel, "repositories/") },
		label: func(rel string) string { return "repository:" + stem(rel) },
	},
	{
		match: func(rel string) bool { return strings.Contains(rel, "config/") },
		label: func(rel string) string { return "config:" + stem(rel) },
	},
}

// ScopeFor derives the logger scope label for a manifest entry. An empty
// string means no rule matched and the file should use the default shared
// logger.
func ScopeFor(rel m.Path) string {
	normalized := strings.ReplaceAll(string(rel), "\\", "/")

	for _, rule := range scopeRules {
		if rule.match(normalized) {
			return rule.label(normalized)
		}
	}

	return ""
}

// apiScope builds api:<route-segment> labels, normalizing internal separators
// to ':'. Malformed API paths fall back to api:unknown.
func apiScope(rel string) string {
	match := apiRoutePattern.FindStringSubmatch(rel)
	if match == nil {
		return "api:unknown"
	}

	return "api:" + strings.ReplaceAll(match[1], "/", ":")
}

// stem returns the base name of rel without its extension.
func stem(rel string) string {
	base := path.Base(rel)

	return strings.TrimSuffix(base, path.Ext(base))
}
