package models

// ReminderFilter selects which reminders a view shows
type ReminderFilter string

const (
	FilterAll       ReminderFilter = "all"
	FilterActive    ReminderFilter = "active"
	FilterCompleted ReminderFilter = "completed"
)

// ParseFilter maps a filter token to a ReminderFilter. Unrecognized tokens
// fall back to FilterAll rather than failing.
func ParseFilter(s string) ReminderFilter {
	switch s {
	case string(FilterActive):
		return FilterActive
	case string(FilterCompleted):
		return FilterCompleted
	default:
		return FilterAll
	}
}

// ReminderSort selects the ordering of a reminder view
type ReminderSort string

const (
	SortDate   ReminderSort = "date"
	SortTitle  ReminderSort = "title"
	SortStatus ReminderSort = "status"
)

// ParseSort maps a sort token to a ReminderSort. Unrecognized tokens fall
// back to SortDate rather than failing.
func ParseSort(s string) ReminderSort {
	switch s {
	case string(SortTitle):
		return SortTitle
	case string(SortStatus):
		return SortStatus
	default:
		return SortDate
	}
}
