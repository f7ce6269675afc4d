package comment

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/cache"
	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/cli/styles"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// ListCmd returns the comment list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the comments on a task, oldest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunSignedIn(cmd, runList)
		},
	}
	addTaskFlags(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(ctx context.Context, cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter) error {
	task, err := findTask(ctx, cmd, c)
	if err != nil {
		return err
	}

	store := cache.NewStore(cache.TaskDetailView(c.App.API(), *task))
	if err := store.Reload(ctx); err != nil {
		return err
	}
	detail, _ := store.Get()

	comments := detail.Comments
	if comments == nil {
		comments = []models.Comment{}
	}
	return f.Success(comments, func(w io.Writer) {
		if len(comments) == 0 {
			fmt.Fprintln(w, "No comments yet")
			return
		}
		now := time.Now()
		for _, cm := range comments {
			fmt.Fprintf(w, "[%s] %s %s\n", cm.ID, styles.LabelStyle.Render(detail.AuthorName(cm.UserID)),
				styles.SubtitleStyle.Render(cli.FormatRelative(cm.CreatedAt, now)))
			fmt.Fprintf(w, "  %s\n", cm.Content)
		}
	})
}
