package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wchklaus97/remind-me/internal/dates"
	"github.com/wchklaus97/remind-me/internal/models"
	"github.com/wchklaus97/remind-me/internal/query"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var (
		filter string
		search string
		sortBy string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reminders",
		Long:  "List reminders with the same filter, search, and sort rules the API applies",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()

			engine, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			reminders, _ := engine.LoadReminders(ctx)
			view := query.SelectAndSort(reminders, models.ParseFilter(filter), search, models.ParseSort(sortBy))

			if len(view) == 0 {
				fmt.Println("No reminders")
				return nil
			}

			for _, r := range view {
				printReminder(r)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "all", "Filter: all, active, or completed")
	cmd.Flags().StringVarP(&search, "search", "q", "", "Case-insensitive title/description search")
	cmd.Flags().StringVar(&sortBy, "sort", "date", "Sort: date, title, or status")

	return cmd
}

func printReminder(r models.Reminder) {
	marks := make([]string, 0, 2)
	if r.Completed {
		marks = append(marks, "done")
	} else if dates.IsOverdue(r.DueDate) {
		marks = append(marks, "overdue")
	}
	if len(r.TagIDs) > 0 {
		marks = append(marks, fmt.Sprintf("%d tags", len(r.TagIDs)))
	}

	line := fmt.Sprintf("  %s  %s", r.ID, r.Title)
	if r.DueDate != "" {
		line += "  due " + dates.FormatForDisplay(r.DueDate)
	}
	if len(marks) > 0 {
		line += "  [" + strings.Join(marks, ", ") + "]"
	}
	fmt.Println(line)
}
