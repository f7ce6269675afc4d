package task

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/cache"
	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/cli/styles"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// taskDetail is the JSON shape of task show
type taskDetail struct {
	Task     models.Task      `json:"task"`
	Assignee *models.User     `json:"assignee,omitempty"`
	Comments []models.Comment `json:"comments"`
}

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a task with its description and comments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunSignedIn(cmd, runShow)
		},
	}
	addTaskFlags(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(ctx context.Context, cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter) error {
	task, err := findTask(ctx, cmd, c)
	if err != nil {
		return err
	}
	if f.Quiet {
		return f.Success(task, nil)
	}

	store := cache.NewStore(cache.TaskDetailView(c.App.API(), *task))
	if err := store.Reload(ctx); err != nil {
		return err
	}
	detail, _ := store.Get()

	out := taskDetail{Task: detail.Task, Assignee: detail.Assignee, Comments: detail.Comments}
	if out.Comments == nil {
		out.Comments = []models.Comment{}
	}
	return f.Success(out, func(w io.Writer) {
		printTask(w, detail, time.Now())
	})
}

func printTask(w io.Writer, d cache.TaskDetail, now time.Time) {
	t := d.Task

	assignee := "Unassigned"
	if d.Assignee != nil {
		assignee = d.Assignee.Username
	} else if t.AssignedTo != "" {
		assignee = t.AssignedTo
	}

	lines := []string{
		styles.Field("ID", t.ID),
		styles.Field("Status", styles.StatusBadge(t.Status)),
		styles.Field("Priority", styles.PriorityBadge(t.Priority)),
		styles.Field("Assignee", assignee),
	}
	if t.DueDate != "" {
		lines = append(lines, styles.Field("Due", t.DueDate))
	}
	if len(t.Tags) > 0 {
		lines = append(lines, styles.Field("Tags", strings.Join(t.Tags, ", ")))
	}
	lines = append(lines, styles.Field("Updated", cli.FormatRelative(t.UpdatedAt, now)))
	fmt.Fprintln(w, styles.RenderCard(t.Title, lines...))

	if strings.TrimSpace(t.Description) != "" {
		fmt.Fprintln(w, styles.SectionStyle.Render("Description"))
		fmt.Fprintln(w, styles.Markdown(t.Description))
	}

	fmt.Fprintln(w, styles.SectionStyle.Render(fmt.Sprintf("Comments (%d)", len(d.Comments))))
	for _, cm := range d.Comments {
		fmt.Fprintf(w, "  %s %s\n", styles.LabelStyle.Render(d.AuthorName(cm.UserID)),
			styles.SubtitleStyle.Render(cli.FormatRelative(cm.CreatedAt, now)))
		fmt.Fprintf(w, "    %s\n", cm.Content)
	}
}
