// Package comment holds the comment subcommands.
package comment

import (
	"context"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// CommentCmd returns the comment parent command
func CommentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "comment",
		Aliases: []string{"comments"},
		Short:   "Manage task comments",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(AddCmd())
	cmd.AddCommand(EditCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

func requireFlag(cmd *cobra.Command, name, usage string) {
	cmd.Flags().String(name, "", usage)
	if err := cmd.MarkFlagRequired(name); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
}

// addTaskFlags registers the --board and --task pair that locates a task
func addTaskFlags(cmd *cobra.Command) {
	requireFlag(cmd, "board", "Board ID (required)")
	requireFlag(cmd, "task", "Task ID (required)")
}

func findTask(ctx context.Context, cmd *cobra.Command, c *cli.CLI) (*models.Task, error) {
	boardID, _ := cmd.Flags().GetString("board")
	taskID, _ := cmd.Flags().GetString("task")
	return c.App.TaskService.Find(ctx, boardID, taskID)
}
