package models

import (
	"testing"
)

func TestParseFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want ReminderFilter
	}{
		{"all", "all", FilterAll},
		{"active", "active", FilterActive},
		{"completed", "completed", FilterCompleted},
		{"empty defaults to all", "", FilterAll},
		{"unknown defaults to all", "archived", FilterAll},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ParseFilter(tt.in); got != tt.want {
				t.Errorf("ParseFilter(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseSort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want ReminderSort
	}{
		{"date", "date", SortDate},
		{"title", "title", SortTitle},
		{"status", "status", SortStatus},
		{"empty defaults to date", "", SortDate},
		{"unknown defaults to date", "priority", SortDate},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ParseSort(tt.in); got != tt.want {
				t.Errorf("ParseSort(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
