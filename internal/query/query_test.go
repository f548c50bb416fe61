package query

import (
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/wchklaus97/remind-me/internal/models"
)

func TestMain(m *testing.M) {
	time.Local = time.UTC
	os.Exit(m.Run())
}

func sample() []models.Reminder {
	return []models.Reminder{
		{ID: "1", Title: "Water plants", Description: "balcony", DueDate: "2024-03-06T08:00:00Z", Completed: false},
		{ID: "2", Title: "Pay rent", Description: "", DueDate: "2024-03-01T09:00:00Z", Completed: true},
		{ID: "3", Title: "Call dentist", Description: "reschedule cleaning", DueDate: "", Completed: false},
		{ID: "4", Title: "Buy groceries", Description: "milk, eggs", DueDate: "2024-03-05T18:30", Completed: false},
	}
}

func ids(reminders []models.Reminder) []string {
	out := make([]string, 0, len(reminders))
	for _, r := range reminders {
		out = append(out, r.ID)
	}
	return out
}

func TestSelectAndSort_Filter(t *testing.T) {
	tests := []struct {
		name   string
		filter models.ReminderFilter
		want   []string
	}{
		{"all", models.FilterAll, []string{"2", "4", "1", "3"}},
		{"active", models.FilterActive, []string{"4", "1", "3"}},
		{"completed", models.FilterCompleted, []string{"2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectAndSort(sample(), tt.filter, "", models.SortDate)
			if !reflect.DeepEqual(ids(got), tt.want) {
				t.Errorf("got order %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestSelectAndSort_Search(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"title match is case-insensitive", "PAY", []string{"2"}},
		{"description match", "cleaning", []string{"3"}},
		{"empty query matches everything", "", []string{"2", "4", "1", "3"}},
		{"no match", "vacation", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectAndSort(sample(), models.FilterAll, tt.query, models.SortDate)
			if !reflect.DeepEqual(ids(got), tt.want) {
				t.Errorf("got order %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestSelectAndSort_DateOrderSpansFormats(t *testing.T) {
	// The wall-clock reminder (id 4, 18:30 local) must interleave correctly
	// with RFC 3339 values, and the date-less reminder must sort last.
	got := SelectAndSort(sample(), models.FilterAll, "", models.SortDate)
	want := []string{"2", "4", "1", "3"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("got order %v, want %v", ids(got), want)
	}
}

func TestSelectAndSort_TitleOrder(t *testing.T) {
	got := SelectAndSort(sample(), models.FilterAll, "", models.SortTitle)
	want := []string{"4", "3", "2", "1"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("got order %v, want %v", ids(got), want)
	}
}

func TestSelectAndSort_StatusOrderIsStable(t *testing.T) {
	// Incomplete reminders keep their original relative order and precede
	// the completed one.
	got := SelectAndSort(sample(), models.FilterAll, "", models.SortStatus)
	want := []string{"1", "3", "4", "2"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("got order %v, want %v", ids(got), want)
	}
}

func TestSelectAndSort_DoesNotMutateInput(t *testing.T) {
	input := sample()
	snapshot := sample()

	first := SelectAndSort(input, models.FilterActive, "e", models.SortTitle)
	second := SelectAndSort(input, models.FilterActive, "e", models.SortTitle)

	if !reflect.DeepEqual(input, snapshot) {
		t.Error("SelectAndSort mutated its input")
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("SelectAndSort is not deterministic for identical arguments")
	}
}

func TestComputeStatistics(t *testing.T) {
	reminders := []models.Reminder{
		{ID: "1", DueDate: "2000-01-01T00:00:00Z", Completed: false},
		{ID: "2", DueDate: "2000-01-01T00:00:00Z", Completed: true},
		{ID: "3", DueDate: "", Completed: false},
		{ID: "4", DueDate: "2999-01-01T00:00:00Z", Completed: false},
		{ID: "5", DueDate: "not a date", Completed: false},
	}

	got := ComputeStatistics(reminders)
	want := models.Statistics{Total: 5, Active: 4, Completed: 1, Overdue: 1}
	if got != want {
		t.Errorf("ComputeStatistics = %+v, want %+v", got, want)
	}
}

func TestComputeStatistics_Empty(t *testing.T) {
	got := ComputeStatistics(nil)
	want := models.Statistics{}
	if got != want {
		t.Errorf("ComputeStatistics(nil) = %+v, want %+v", got, want)
	}
}

func TestGroupByCalendarDay(t *testing.T) {
	reminders := []models.Reminder{
		{ID: "evening", DueDate: "2024-03-05T18:00:00Z"},
		{ID: "morning", DueDate: "2024-03-05T09:00:00Z"},
		{ID: "unscheduled", DueDate: ""},
		{ID: "broken", DueDate: "???"},
		{ID: "next-day", DueDate: "2024-03-06T10:00"},
	}

	grouped := GroupByCalendarDay(reminders)

	if len(grouped) != 2 {
		t.Fatalf("got %d buckets, want 2: %v", len(grouped), grouped)
	}

	march5 := grouped["2024-03-05"]
	if !reflect.DeepEqual(ids(march5), []string{"morning", "evening"}) {
		t.Errorf("2024-03-05 bucket order = %v, want [morning evening]", ids(march5))
	}

	if !reflect.DeepEqual(ids(grouped["2024-03-06"]), []string{"next-day"}) {
		t.Errorf("2024-03-06 bucket = %v, want [next-day]", ids(grouped["2024-03-06"]))
	}

	left := Unscheduled(reminders)
	if !reflect.DeepEqual(ids(left), []string{"unscheduled", "broken"}) {
		t.Errorf("Unscheduled = %v, want [unscheduled broken]", ids(left))
	}
}
