// Package board holds the board subcommands.
package board

import (
	"context"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/cli"
	boardservice "github.com/thenoetrevino/taskdeck/internal/services/board"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "board",
		Aliases: []string{"boards"},
		Short:   "Manage boards",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(ActivityCmd())

	return cmd
}

func requireIDFlag(cmd *cobra.Command) {
	cmd.Flags().String("id", "", "Board ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
}

// dialogDeps routes dialog notifications through the formatter
func dialogDeps(c *cli.CLI, f *cli.OutputFormatter) boardservice.DialogDeps {
	deps := c.App.BoardDialogs(func(context.Context) error { return nil })
	deps.Notifier = f
	return deps
}
