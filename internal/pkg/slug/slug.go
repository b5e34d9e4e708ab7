// Package slug derives stable, URL-safe identifiers from display names.
package slug

import (
	"regexp"
	"strings"
)

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespace   = regexp.MustCompile(`\s+`)
	hyphenRuns   = regexp.MustCompile(`-+`)
)

// Make derives a slug from a display name: lowercased, characters outside
// [a-z0-9\s-] removed, whitespace runs collapsed to single hyphens, repeated
// hyphens collapsed, leading/trailing hyphens trimmed. Deterministic for a
// fixed input.
func Make(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = invalidChars.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
