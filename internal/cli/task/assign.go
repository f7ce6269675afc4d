package task

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/models"
	taskservice "github.com/thenoetrevino/taskdeck/internal/services/task"
)

// AssignCmd returns the task assign subcommand
func AssignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Assign a task to a user",
		Long: `Assign a task to a user. Use 'taskdeck user list' to find user IDs,
or --me to take the task yourself.

Examples:
  taskdeck task assign --board <board-id> --id <task-id> --user <user-id>
  taskdeck task assign --board <board-id> --id <task-id> --me`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunSignedIn(cmd, runAssign)
		},
	}

	addTaskFlags(cmd)
	cmd.Flags().String("user", "", "Assignee user ID")
	cmd.Flags().Bool("me", false, "Assign to yourself")
	cmd.MarkFlagsMutuallyExclusive("user", "me")
	cmd.MarkFlagsOneRequired("user", "me")

	cli.AddOutputFlags(cmd)
	return cmd
}

// UnassignCmd returns the task unassign subcommand
func UnassignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unassign",
		Short: "Remove the assignee of a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunSignedIn(cmd, runUnassign)
		},
	}
	addTaskFlags(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runAssign(ctx context.Context, cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter) error {
	userID, _ := cmd.Flags().GetString("user")
	me, _ := cmd.Flags().GetBool("me")

	var assignee *models.User
	if me {
		session, err := c.RequireSession()
		if err != nil {
			return err
		}
		user := session.User
		assignee = &user
	} else {
		user, err := c.App.API().GetUser(ctx, userID)
		if err != nil {
			return err
		}
		assignee = user
	}

	return submitAssign(ctx, cmd, c, f, assignee)
}

func runUnassign(ctx context.Context, cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter) error {
	return submitAssign(ctx, cmd, c, f, nil)
}

func submitAssign(ctx context.Context, cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter, assignee *models.User) error {
	task, err := findTask(ctx, cmd, c)
	if err != nil {
		return err
	}

	var updated *models.Task
	deps := dialogDeps(c, f)
	deps.Saved = func(t *models.Task) { updated = t }

	err = cli.Submit(ctx, taskservice.NewAssignDialog(deps), taskservice.AssignFields{Task: *task, Assignee: assignee})
	if err != nil {
		return err
	}

	return f.Success(updated, func(w io.Writer) {
		fmt.Fprintf(w, "  Task: %s\n", updated.Title)
	})
}
