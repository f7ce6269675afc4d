// Package task holds the task subcommands.
package task

import (
	"context"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/models"
	taskservice "github.com/thenoetrevino/taskdeck/internal/services/task"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks"},
		Short:   "Manage tasks",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(AssignCmd())
	cmd.AddCommand(UnassignCmd())

	return cmd
}

func requireFlag(cmd *cobra.Command, name, usage string) {
	cmd.Flags().String(name, "", usage)
	if err := cmd.MarkFlagRequired(name); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
}

// addTaskFlags registers the --board and --id pair that locates a task
func addTaskFlags(cmd *cobra.Command) {
	requireFlag(cmd, "board", "Board ID (required)")
	requireFlag(cmd, "id", "Task ID (required)")
}

// findTask looks up the task named by --board and --id
func findTask(ctx context.Context, cmd *cobra.Command, c *cli.CLI) (*models.Task, error) {
	boardID, _ := cmd.Flags().GetString("board")
	id, _ := cmd.Flags().GetString("id")
	return c.App.TaskService.Find(ctx, boardID, id)
}

// dialogDeps routes dialog notifications through the formatter
func dialogDeps(c *cli.CLI, f *cli.OutputFormatter) taskservice.DialogDeps {
	deps := c.App.TaskDialogs(func(context.Context) error { return nil })
	deps.Notifier = f
	return deps
}

// parseStatusFlag returns the --status value, or "" when it was not given
func parseStatusFlag(cmd *cobra.Command) (models.Status, error) {
	if !cmd.Flags().Changed("status") {
		return "", nil
	}
	raw, _ := cmd.Flags().GetString("status")
	return models.ParseStatus(raw)
}

// parsePriorityFlag returns the --priority value, or "" when it was not given
func parsePriorityFlag(cmd *cobra.Command) (models.Priority, error) {
	if !cmd.Flags().Changed("priority") {
		return "", nil
	}
	raw, _ := cmd.Flags().GetString("priority")
	return models.ParsePriority(raw)
}
