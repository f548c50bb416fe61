package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/wchklaus97/remind-me/internal/query"
)

// NewStatsCmd creates the stats command
func NewStatsCmd() *cobra.Command {
	var calendar bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show reminder statistics",
		Long:  "Show total/active/completed/overdue counts, or the calendar grouping with --calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()

			engine, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			reminders, _ := engine.LoadReminders(ctx)

			if calendar {
				days := query.GroupByCalendarDay(reminders)
				keys := make([]string, 0, len(days))
				for day := range days {
					keys = append(keys, day)
				}
				sort.Strings(keys)

				for _, day := range keys {
					fmt.Printf("%s\n", day)
					for _, r := range days[day] {
						fmt.Printf("  %s  %s\n", r.ID, r.Title)
					}
				}
				if unscheduled := query.Unscheduled(reminders); len(unscheduled) > 0 {
					fmt.Println("unscheduled")
					for _, r := range unscheduled {
						fmt.Printf("  %s  %s\n", r.ID, r.Title)
					}
				}
				return nil
			}

			stats := query.ComputeStatistics(reminders)
			fmt.Printf("Total:     %d\n", stats.Total)
			fmt.Printf("Active:    %d\n", stats.Active)
			fmt.Printf("Completed: %d\n", stats.Completed)
			fmt.Printf("Overdue:   %d\n", stats.Overdue)
			return nil
		},
	}

	cmd.Flags().BoolVar(&calendar, "calendar", false, "Group reminders by due day")

	return cmd
}
