package task

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/cli/styles"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the tasks of a board",
		Long: `List the tasks of a board in creation order.

Examples:
  taskdeck task list --board <board-id>
  taskdeck task list --board <board-id> --status in-progress --mine`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunSignedIn(cmd, runList)
		},
	}

	requireFlag(cmd, "board", "Board ID (required)")
	cmd.Flags().String("status", "", "Only tasks with this status")
	cmd.Flags().String("priority", "", "Only tasks with this priority")
	cmd.Flags().String("assignee", "", "Only tasks assigned to this user ID")
	cmd.Flags().Bool("mine", false, "Only tasks assigned to you")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(ctx context.Context, cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter) error {
	flags := cmd.Flags()
	boardID, _ := flags.GetString("board")
	assignee, _ := flags.GetString("assignee")
	mine, _ := flags.GetBool("mine")

	status, err := parseStatusFlag(cmd)
	if err != nil {
		return err
	}
	priority, err := parsePriorityFlag(cmd)
	if err != nil {
		return err
	}
	if mine {
		session, err := c.RequireSession()
		if err != nil {
			return err
		}
		assignee = session.User.ID
	}

	tasks, err := c.App.TaskService.ListByBoard(ctx, boardID)
	if err != nil {
		return err
	}

	filtered := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if status != "" && t.Status != status {
			continue
		}
		if priority != "" && t.Priority != priority {
			continue
		}
		if assignee != "" && t.AssignedTo != assignee {
			continue
		}
		filtered = append(filtered, t)
	}

	return f.Success(filtered, func(w io.Writer) {
		if len(filtered) == 0 {
			fmt.Fprintln(w, "No tasks found")
			return
		}
		fmt.Fprintf(w, "Found %d tasks:\n\n", len(filtered))
		for _, t := range filtered {
			fmt.Fprintf(w, "  [%s] %s  %s  %s\n", t.ID, t.Title, styles.StatusBadge(t.Status), styles.PriorityBadge(t.Priority))
		}
	})
}
