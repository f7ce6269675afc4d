package task

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/cli/styles"
	"github.com/thenoetrevino/taskdeck/internal/kanban"
	taskservice "github.com/thenoetrevino/taskdeck/internal/services/task"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a task to another column",
		Long: `Move a task to another board column, the same way dragging a card does.

Examples:
  taskdeck task move --board <board-id> --id <task-id> --status done
  taskdeck task move --board <board-id> --id <task-id> --next`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunSignedIn(cmd, runMove)
		},
	}

	addTaskFlags(cmd)
	cmd.Flags().String("status", "", "Target column: todo, in-progress, done")
	cmd.Flags().Bool("next", false, "Move one column to the right")
	cmd.Flags().Bool("prev", false, "Move one column to the left")
	cmd.MarkFlagsMutuallyExclusive("status", "next", "prev")
	cmd.MarkFlagsOneRequired("status", "next", "prev")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runMove(ctx context.Context, cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter) error {
	next, _ := cmd.Flags().GetBool("next")
	prev, _ := cmd.Flags().GetBool("prev")

	target, err := parseStatusFlag(cmd)
	if err != nil {
		return err
	}

	task, err := findTask(ctx, cmd, c)
	if err != nil {
		return err
	}

	if next || prev {
		delta := 1
		if prev {
			delta = -1
		}
		status, ok := kanban.Neighbor(task.Status, delta)
		if !ok {
			return fmt.Errorf("%w: no column beyond %s", taskservice.ErrAlreadyInStatus, task.Status.Title())
		}
		target = status
	}
	if target == task.Status {
		return fmt.Errorf("%w (%s)", taskservice.ErrAlreadyInStatus, target.Title())
	}

	engine := kanban.NewEngine(c.App.TaskService, nil, f)
	if engine.Move(ctx, *task, target) != kanban.OutcomeMoved {
		return errors.New(kanban.MoveFailedMessage)
	}

	moved, err := findTask(ctx, cmd, c)
	if err != nil {
		return err
	}
	return f.Success(moved, func(w io.Writer) {
		fmt.Fprintf(w, "  %s → %s\n", styles.StatusBadge(task.Status), styles.StatusBadge(moved.Status))
	})
}
