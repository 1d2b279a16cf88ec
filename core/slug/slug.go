// Package slug maps arbitrary strings to filesystem-safe names.
// Normalize is total: it never fails, and the same input always yields
// the same output.
package slug

import (
	"regexp"
	"strings"
)

var (
	unsafeRe  = regexp.MustCompile(`[^a-z0-9.-]+`)
	repeatsRe = regexp.MustCompile(`-{2,}`)
)

// Normalize lowercases the input, turns spaces (literal and percent-encoded)
// and underscores into dashes, replaces every run of characters outside
// [a-z0-9.-] with a dash, collapses repeated dashes, and trims leading and
// trailing dashes. It can return "" for input with no safe characters;
// callers that need a non-empty name must supply their own fallback.
func Normalize(raw string) string {
	s := strings.ToLower(raw)
	s = strings.ReplaceAll(s, "%20", "-")
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")
	s = unsafeRe.ReplaceAllString(s, "-")
	s = repeatsRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
