// Package query implements the pure view layer over a reminder collection:
// filtering, searching, ordering, aggregate statistics, and calendar
// grouping. No function here mutates its input or touches storage.
package query

import (
	"sort"
	"strings"
	"time"

	"github.com/wchklaus97/remind-me/internal/dates"
	"github.com/wchklaus97/remind-me/internal/models"
)

// sortInstant returns the instant a reminder sorts at under date ordering.
// Reminders without a usable due date sort after everything that has one.
func sortInstant(r models.Reminder) time.Time {
	t, ok := dates.ParseToInstant(r.DueDate)
	if !ok {
		return maxInstant
	}
	return t
}

// Far enough out that no real due date ever reaches it.
var maxInstant = time.Unix(1<<62, 0)

func matchesFilter(r models.Reminder, filter models.ReminderFilter) bool {
	switch filter {
	case models.FilterActive:
		return !r.Completed
	case models.FilterCompleted:
		return r.Completed
	default:
		return true
	}
}

func matchesSearch(r models.Reminder, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(r.Title), q) ||
		strings.Contains(strings.ToLower(r.Description), q)
}

// SelectAndSort returns a fresh slice of the reminders that pass filter and
// the case-insensitive title/description search, ordered by sortBy. The sort
// is stable, so reminders that compare equal keep their original relative
// order.
func SelectAndSort(reminders []models.Reminder, filter models.ReminderFilter, searchQuery string, sortBy models.ReminderSort) []models.Reminder {
	selected := make([]models.Reminder, 0, len(reminders))
	for _, r := range reminders {
		if matchesFilter(r, filter) && matchesSearch(r, searchQuery) {
			selected = append(selected, r)
		}
	}

	switch sortBy {
	case models.SortTitle:
		sort.SliceStable(selected, func(i, j int) bool {
			return selected[i].Title < selected[j].Title
		})
	case models.SortStatus:
		// Completed items sink to the bottom; within each class the
		// original order is preserved.
		sort.SliceStable(selected, func(i, j int) bool {
			return !selected[i].Completed && selected[j].Completed
		})
	default:
		sort.SliceStable(selected, func(i, j int) bool {
			return sortInstant(selected[i]).Before(sortInstant(selected[j]))
		})
	}

	return selected
}

// ComputeStatistics derives the total/active/completed/overdue counts from a
// reminder collection. Overdue only counts active reminders with a due date
// that parses and lies strictly in the past; completed reminders never count
// as overdue no matter their due date.
func ComputeStatistics(reminders []models.Reminder) models.Statistics {
	stats := models.Statistics{Total: len(reminders)}
	for _, r := range reminders {
		if r.Completed {
			stats.Completed++
			continue
		}
		stats.Active++
		if r.DueDate != "" && dates.IsOverdue(r.DueDate) {
			stats.Overdue++
		}
	}
	return stats
}

// GroupByCalendarDay buckets reminders by their local "YYYY-MM-DD" due day.
// Reminders with an empty or unparseable due date are excluded; the caller
// presents those separately as unscheduled. Each bucket is ordered ascending
// by due-date instant.
func GroupByCalendarDay(reminders []models.Reminder) map[string][]models.Reminder {
	grouped := make(map[string][]models.Reminder)
	for _, r := range reminders {
		key, ok := dates.CalendarDayKey(r.DueDate)
		if !ok {
			continue
		}
		grouped[key] = append(grouped[key], r)
	}

	for key := range grouped {
		bucket := grouped[key]
		sort.SliceStable(bucket, func(i, j int) bool {
			return sortInstant(bucket[i]).Before(sortInstant(bucket[j]))
		})
	}

	return grouped
}

// Unscheduled returns the reminders GroupByCalendarDay leaves out: those with
// an empty or unparseable due date, in their original order.
func Unscheduled(reminders []models.Reminder) []models.Reminder {
	var out []models.Reminder
	for _, r := range reminders {
		if _, ok := dates.CalendarDayKey(r.DueDate); !ok {
			out = append(out, r)
		}
	}
	return out
}
