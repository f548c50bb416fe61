package commands

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wchklaus97/remind-me/internal/dates"
	"github.com/wchklaus97/remind-me/internal/models"
)

// NewAddCmd creates the add command
func NewAddCmd() *cobra.Command {
	var (
		description string
		dueDate     string
		tagIDs      []string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a reminder",
		Long:  "Add a reminder with an optional description, due date, and tag ids",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dueDate != "" {
				if _, ok := dates.ParseToInstant(dueDate); !ok {
					return fmt.Errorf("unparseable due date %q (want RFC 3339 or YYYY-MM-DDTHH:MM)", dueDate)
				}
			}

			ctx, cancel := commandContext()
			defer cancel()

			engine, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			reminder := models.Reminder{
				ID:          uuid.NewString(),
				Title:       args[0],
				Description: description,
				DueDate:     dates.ToRFC3339(dueDate),
				CreatedAt:   time.Now().Format(time.RFC3339),
				TagIDs:      tagIDs,
			}
			if reminder.TagIDs == nil {
				reminder.TagIDs = []string{}
			}

			reminders, _ := engine.LoadReminders(ctx)
			reminders = append(reminders, reminder)
			if err := engine.SaveReminders(ctx, reminders); err != nil {
				return fmt.Errorf("failed to save reminder: %w", err)
			}

			fmt.Printf("Added reminder %s\n", reminder.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Reminder description")
	cmd.Flags().StringVar(&dueDate, "due", "", "Due date (RFC 3339 or YYYY-MM-DDTHH:MM local)")
	cmd.Flags().StringSliceVar(&tagIDs, "tags", nil, "Tag ids to attach")

	return cmd
}
