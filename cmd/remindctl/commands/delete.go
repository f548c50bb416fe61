package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDeleteCmd creates the delete command
func NewDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			ctx, cancel := commandContext()
			defer cancel()

			engine, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			reminders, _ := engine.LoadReminders(ctx)
			idx := -1
			for i := range reminders {
				if reminders[i].ID == id {
					idx = i
					break
				}
			}
			if idx < 0 {
				return fmt.Errorf("no reminder with id %s", id)
			}

			reminders = append(reminders[:idx], reminders[idx+1:]...)
			if err := engine.SaveReminders(ctx, reminders); err != nil {
				return fmt.Errorf("failed to save reminders: %w", err)
			}

			fmt.Printf("Deleted %s\n", id)
			return nil
		},
	}

	return cmd
}
