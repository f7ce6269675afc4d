package task

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/cli"
	taskservice "github.com/thenoetrevino/taskdeck/internal/services/task"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a task",
		Long:  "Delete a task and its comments (requires confirmation unless --force, --json or --quiet).",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunSignedIn(cmd, runDelete)
		},
	}

	addTaskFlags(cmd)
	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(ctx context.Context, cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter) error {
	force, _ := cmd.Flags().GetBool("force")

	task, err := findTask(ctx, cmd, c)
	if err != nil {
		return err
	}

	// Ask for confirmation unless forced or scripted
	if !force && f.Human() {
		ok, err := cli.Confirm(ctx, fmt.Sprintf("Delete task '%s'?", task.Title))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(f.Out, "Cancelled")
			return nil
		}
	}

	if err := cli.Submit(ctx, taskservice.NewDeleteDialog(dialogDeps(c, f)), *task); err != nil {
		return err
	}

	return f.Success(map[string]string{"id": task.ID}, nil)
}
