package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCompleteCmd creates the complete command
func NewCompleteCmd() *cobra.Command {
	var reopen bool

	cmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a reminder completed",
		Long:  "Mark a reminder completed, or reopen it with --reopen",
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
			found := false
			for i := range reminders {
				if reminders[i].ID == id {
					reminders[i].Completed = !reopen
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("no reminder with id %s", id)
			}

			if err := engine.SaveReminders(ctx, reminders); err != nil {
				return fmt.Errorf("failed to save reminders: %w", err)
			}

			if reopen {
				fmt.Printf("Reopened %s\n", id)
			} else {
				fmt.Printf("Completed %s\n", id)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&reopen, "reopen", false, "Mark the reminder active again")

	return cmd
}
