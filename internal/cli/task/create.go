package task

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/cli/styles"
	"github.com/thenoetrevino/taskdeck/internal/models"
	taskservice "github.com/thenoetrevino/taskdeck/internal/services/task"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task on a board",
		Long: `Create a new task. Status defaults to todo and priority to medium.

Examples:
  # Simple task (human-readable output)
  taskdeck task create --board <board-id> --title "Fix bug"

  # Quiet mode for bash capture
  TASK_ID=$(taskdeck task create --board <board-id> --title "Fix bug" --quiet)

  # Full example with all options
  taskdeck task create \
    --board <board-id> \
    --title "Add authentication" \
    --description "Implement JWT auth" \
    --status in-progress \
    --priority high \
    --due 2025-06-30 \
    --tags api,security \
    --assign <user-id>
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunSignedIn(cmd, runCreate)
		},
	}

	// Required flags
	requireFlag(cmd, "board", "Board ID (required)")
	requireFlag(cmd, "title", "Task title (required)")

	// Optional flags
	cmd.Flags().String("description", "", "Task description (use - for stdin)")
	cmd.Flags().String("status", "todo", "Status: todo, in-progress, done")
	cmd.Flags().String("priority", "medium", "Priority: low, medium, high")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().String("tags", "", "Comma-separated tags")
	cmd.Flags().String("assign", "", "Assignee user ID")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(ctx context.Context, cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter) error {
	flags := cmd.Flags()
	boardID, _ := flags.GetString("board")
	title, _ := flags.GetString("title")
	description, _ := flags.GetString("description")
	due, _ := flags.GetString("due")
	tags, _ := flags.GetString("tags")
	assignee, _ := flags.GetString("assign")

	status, err := parseStatusFlag(cmd)
	if err != nil {
		return err
	}
	priority, err := parsePriorityFlag(cmd)
	if err != nil {
		return err
	}
	if description, err = cli.ReadDescription(description, cmd.InOrStdin()); err != nil {
		return err
	}

	var created *models.Task
	deps := dialogDeps(c, f)
	deps.Saved = func(t *models.Task) { created = t }

	err = cli.Submit(ctx, taskservice.NewCreateDialog(deps), taskservice.Fields{
		BoardID:     boardID,
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    priority,
		DueDate:     due,
		Tags:        cli.ParseTags(tags),
		AssignedTo:  assignee,
	})
	if err != nil {
		return err
	}

	return f.Success(created, func(w io.Writer) {
		fmt.Fprintf(w, "  ID: %s\n", created.ID)
		fmt.Fprintf(w, "  Status: %s\n", styles.StatusBadge(created.Status))
		fmt.Fprintf(w, "  Priority: %s\n", styles.PriorityBadge(created.Priority))
	})
}
