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

var updateFlags = []string{"title", "description", "status", "priority", "due", "tags"}

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a task",
		Long: `Update a task. Only the flags given are changed; pass --due "" to clear
the due date and --tags "" to clear the tags.

Examples:
  taskdeck task update --board <board-id> --id <task-id> --title "New title"
  taskdeck task update --board <board-id> --id <task-id> --priority high --due 2025-07-01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunSignedIn(cmd, runUpdate)
		},
	}

	addTaskFlags(cmd)
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (use - for stdin)")
	cmd.Flags().String("status", "", "New status: todo, in-progress, done")
	cmd.Flags().String("priority", "", "New priority: low, medium, high")
	cmd.Flags().String("due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().String("tags", "", "Replace the tags (comma-separated)")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runUpdate(ctx context.Context, cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter) error {
	flags := cmd.Flags()

	changed := false
	for _, name := range updateFlags {
		changed = changed || flags.Changed(name)
	}
	if !changed {
		return cli.Usage(f, "nothing to update: pass at least one of --title, --description, --status, --priority, --due, --tags")
	}

	status, err := parseStatusFlag(cmd)
	if err != nil {
		return err
	}
	priority, err := parsePriorityFlag(cmd)
	if err != nil {
		return err
	}

	task, err := findTask(ctx, cmd, c)
	if err != nil {
		return err
	}

	fields := taskservice.FieldsFrom(task)
	if flags.Changed("title") {
		fields.Title, _ = flags.GetString("title")
	}
	if flags.Changed("description") {
		desc, _ := flags.GetString("description")
		if fields.Description, err = cli.ReadDescription(desc, cmd.InOrStdin()); err != nil {
			return err
		}
	}
	if status != "" {
		fields.Status = status
	}
	if priority != "" {
		fields.Priority = priority
	}
	if flags.Changed("due") {
		fields.DueDate, _ = flags.GetString("due")
	}
	if flags.Changed("tags") {
		tags, _ := flags.GetString("tags")
		fields.Tags = cli.ParseTags(tags)
		if fields.Tags == nil {
			fields.Tags = []string{}
		}
	}

	var updated *models.Task
	deps := dialogDeps(c, f)
	deps.Saved = func(t *models.Task) { updated = t }

	if err := cli.Submit(ctx, taskservice.NewEditDialog(deps), taskservice.EditFields{Task: *task, Fields: fields}); err != nil {
		return err
	}

	return f.Success(updated, func(w io.Writer) {
		fmt.Fprintf(w, "  Title: %s\n", updated.Title)
	})
}
