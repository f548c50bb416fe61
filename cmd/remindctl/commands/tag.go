package commands

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wchklaus97/remind-me/internal/models"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// NewTagCmd creates the tag command group
func NewTagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage tags",
	}

	cmd.AddCommand(newTagListCmd())
	cmd.AddCommand(newTagAddCmd())
	cmd.AddCommand(newTagDeleteCmd())

	return cmd
}

func newTagListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()

			engine, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			tags := engine.LoadTags(ctx)
			if len(tags) == 0 {
				fmt.Println("No tags")
				return nil
			}

			for _, t := range tags {
				fmt.Printf("  %s  %s  %s\n", t.ID, t.Color, t.Name)
			}
			return nil
		},
	}
}

func newTagAddCmd() *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !hexColorRe.MatchString(color) {
				return fmt.Errorf("invalid color %q (want #RRGGBB)", color)
			}

			ctx, cancel := commandContext()
			defer cancel()

			engine, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			tag := models.Tag{
				ID:    uuid.NewString(),
				Name:  args[0],
				Color: color,
			}

			tags := append(engine.LoadTags(ctx), tag)
			if err := engine.SaveTags(ctx, tags); err != nil {
				return fmt.Errorf("failed to save tags: %w", err)
			}

			fmt.Printf("Added tag %s\n", tag.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "#3b82f6", "Tag color as #RRGGBB")

	return cmd
}

func newTagDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a tag",
		Long:  "Delete a tag. Reminders referencing it keep the dangling id.",
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

			tags := engine.LoadTags(ctx)
			idx := -1
			for i := range tags {
				if tags[i].ID == id {
					idx = i
					break
				}
			}
			if idx < 0 {
				return fmt.Errorf("no tag with id %s", id)
			}

			tags = append(tags[:idx], tags[idx+1:]...)
			if err := engine.SaveTags(ctx, tags); err != nil {
				return fmt.Errorf("failed to save tags: %w", err)
			}

			fmt.Printf("Deleted tag %s\n", id)
			return nil
		},
	}
}
