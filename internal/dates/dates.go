// Package dates parses the two due-date shapes the reminder domain carries:
// RFC 3339 timestamps with an offset, and minute-precision wall-clock values
// (2006-01-02T15:04) with no offset that are interpreted in the system's
// local timezone. Every function is total: empty or unparseable input comes
// back as false/pass-through, never as an error.
package dates

import (
	"time"
)

const (
	// WallClockLayout is the offset-less minute-precision shape used by the
	// edit form (the HTML datetime-local format).
	WallClockLayout = "2006-01-02T15:04"

	displayLayout = "2006-01-02 15:04"
	dayKeyLayout  = "2006-01-02"
)

// ParseToInstant converts a due-date string into an absolute instant.
// RFC 3339 is tried first; on failure the wall-clock shape is parsed in the
// local timezone. Empty or unparseable input reports ok == false.
func ParseToInstant(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation(WallClockLayout, s, time.Local); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// IsOverdue reports whether s parses to an instant strictly before now.
// "Now" is re-read from the wall clock on every call.
func IsOverdue(s string) bool {
	t, ok := ParseToInstant(s)
	return ok && t.Before(time.Now())
}

// FormatForDisplay renders a parseable date as "YYYY-MM-DD HH:MM" in the
// timezone the value itself carries. Unparseable input passes through
// unchanged so the consumer can still show whatever the user typed.
func FormatForDisplay(s string) string {
	t, ok := ParseToInstant(s)
	if !ok {
		return s
	}
	return t.Format(displayLayout)
}

// ToEditableLocalValue converts a parseable date into the wall-clock shape in
// local time, suitable for pre-filling an edit form. Unparseable input passes
// through unchanged.
func ToEditableLocalValue(s string) string {
	t, ok := ParseToInstant(s)
	if !ok {
		return s
	}
	return t.In(time.Local).Format(WallClockLayout)
}

// ToRFC3339 converts a wall-clock value into an RFC 3339 timestamp in the
// local timezone, the canonical shape the add/edit path persists. Input that
// is already RFC 3339, or that does not parse at all, passes through
// unchanged.
func ToRFC3339(s string) string {
	if s == "" {
		return ""
	}
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return s
	}
	if t, err := time.ParseInLocation(WallClockLayout, s, time.Local); err == nil {
		return t.Format(time.RFC3339)
	}
	return s
}

// CalendarDayKey returns the "YYYY-MM-DD" bucket key for a parseable date,
// derived in local time. Empty or unparseable input reports ok == false.
func CalendarDayKey(s string) (string, bool) {
	t, ok := ParseToInstant(s)
	if !ok {
		return "", false
	}
	return t.In(time.Local).Format(dayKeyLayout), true
}
