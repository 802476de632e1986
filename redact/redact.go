// Package redact scrubs secret-shaped content out of values before they
// reach logs or diagnostics.
package redact

import (
	"regexp"
	"strings"

	"github.com/gobwas/glob"
)

// Placeholder replaces redacted values and substrings.
const Placeholder = "[redacted]"

// keyGlobs name map keys whose values must never be logged. Matching is
// against the lowercased key.
var keyGlobs = compileGlobs(
	"*token*",
	"*secret*",
	"*password*",
	"*passphrase*",
	"*apikey*",
	"*api_key*",
	"*authorization*",
	"*credential*",
	"*private*key*",
	"*cookie*",
)

var stringRes = []*regexp.Regexp{
	// Bearer credentials pasted into text.
	regexp.MustCompile(`(?i)\bbearer\s+[a-z0-9._~+/=-]{8,}`),
	// JWTs.
	regexp.MustCompile(`\beyJ[A-Za-z0-9_-]{8,}\.[A-Za-z0-9_-]{8,}(\.[A-Za-z0-9_-]+)?`),
	// Hex key material, 0x-prefixed or bare.
	regexp.MustCompile(`\b0x[0-9a-fA-F]{40,}\b`),
	regexp.MustCompile(`(?i)\b[0-9a-f]{48,}\b`),
	// Vendor-style API keys.
	regexp.MustCompile(`\bsk-[A-Za-z0-9_-]{12,}\b`),
}

func compileGlobs(patterns ...string) []glob.Glob {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		globs = append(globs, glob.MustCompile(pattern))
	}
	return globs
}

// SensitiveKey reports whether a field or map key names a value that must
// not be logged. Matching is case-insensitive.
func SensitiveKey(key string) bool {
	lowered := strings.ToLower(key)
	for _, g := range keyGlobs {
		if g.Match(lowered) {
			return true
		}
	}
	return false
}

// String scrubs secret-shaped substrings out of s.
func String(s string) string {
	for _, re := range stringRes {
		s = re.ReplaceAllString(s, Placeholder)
	}
	return s
}

// Value returns a copy of v with sensitive content replaced. Maps and
// slices are walked recursively: values under sensitive keys are replaced
// wholesale, leaf strings pass through String, everything else is kept
// as-is.
func Value(v any) any {
	switch value := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(value))
		for key, item := range value {
			if SensitiveKey(key) {
				out[key] = Placeholder
				continue
			}
			out[key] = Value(item)
		}
		return out
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = Value(item)
		}
		return out
	case string:
		return String(value)
	default:
		return v
	}
}

// Fields scrubs a structured-logging keyvals list. Values whose key is
// sensitive are replaced wholesale; the rest are walked like Value.
func Fields(keyvals ...any) []any {
	out := make([]any, len(keyvals))
	for i := range keyvals {
		out[i] = keyvals[i]
		if i%2 == 0 {
			continue
		}
		if key, ok := keyvals[i-1].(string); ok && SensitiveKey(key) {
			out[i] = Placeholder
			continue
		}
		out[i] = Value(keyvals[i])
	}
	return out
}
