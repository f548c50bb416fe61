package logger

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// MaxPathLength is the maximum length for URL paths in logs
	MaxPathLength = 500
	// MaxValueLength is the maximum length for general values in logs.
	// Reminder titles and search queries are user-typed and unbounded.
	MaxValueLength = 2000
)

// SanitizePath sanitizes a URL path for safe logging: invalid UTF-8 is
// repaired, control characters are dropped, and the result is truncated.
func SanitizePath(path string) string {
	return sanitize(path, MaxPathLength)
}

// SanitizeValue sanitizes an arbitrary user-supplied string for safe logging.
func SanitizeValue(value string) string {
	return sanitize(value, MaxValueLength)
}

func sanitize(s string, maxLen int) string {
	if s == "" {
		return ""
	}

	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "")
	}

	var builder strings.Builder
	builder.Grow(len(s))
	for _, r := range s {
		if unicode.IsPrint(r) || r == ' ' || r == '\t' {
			builder.WriteRune(r)
		}
	}
	s = builder.String()

	if len(s) > maxLen {
		s = s[:maxLen] + "..."
	}
	return s
}
