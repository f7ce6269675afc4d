package comment

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/models"
	commentservice "github.com/thenoetrevino/taskdeck/internal/services/comment"
)

// AddCmd returns the comment add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Comment on a task",
		Long: `Post a comment on a task.

Examples:
  taskdeck comment add --board <board-id> --task <task-id> --content "Deployed to staging"
  git log -1 --format=%B | taskdeck comment add --board <board-id> --task <task-id> --content -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunSignedIn(cmd, runAdd)
		},
	}

	addTaskFlags(cmd)
	requireFlag(cmd, "content", "Comment text (required, use - for stdin)")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runAdd(ctx context.Context, cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter) error {
	content, _ := cmd.Flags().GetString("content")
	content, err := cli.ReadDescription(content, cmd.InOrStdin())
	if err != nil {
		return err
	}

	task, err := findTask(ctx, cmd, c)
	if err != nil {
		return err
	}

	var posted *models.Comment
	deps := c.App.CommentDialogs(nil)
	deps.Notifier = f
	deps.Saved = func(cm *models.Comment) { posted = cm }

	err = cli.Submit(ctx, commentservice.NewAddDialog(deps), commentservice.AddFields{Task: *task, Content: content})
	if err != nil {
		return err
	}

	return f.Success(posted, func(w io.Writer) {
		fmt.Fprintf(w, "  ID: %s\n", posted.ID)
	})
}
