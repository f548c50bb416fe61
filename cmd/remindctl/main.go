package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wchklaus97/remind-me/cmd/remindctl/commands"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "remindctl",
		Short: "Administration tool for the reminder store",
		Long:  "CLI tool for inspecting and editing reminders against the configured storage backend",
	}

	rootCmd.AddCommand(commands.NewAddCmd())
	rootCmd.AddCommand(commands.NewListCmd())
	rootCmd.AddCommand(commands.NewCompleteCmd())
	rootCmd.AddCommand(commands.NewDeleteCmd())
	rootCmd.AddCommand(commands.NewTagCmd())
	rootCmd.AddCommand(commands.NewStatsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
