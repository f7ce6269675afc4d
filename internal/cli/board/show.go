package board

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/cache"
	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/cli/styles"
	"github.com/thenoetrevino/taskdeck/internal/kanban"
	"github.com/thenoetrevino/taskdeck/internal/metrics"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// boardDetail is the JSON shape of board show
type boardDetail struct {
	Board models.Board    `json:"board"`
	Tasks []models.Task   `json:"tasks"`
	Stats metrics.Summary `json:"stats"`
}

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a board and its tasks by column",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunSignedIn(cmd, runShow)
		},
	}
	requireIDFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(ctx context.Context, cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter) error {
	id, _ := cmd.Flags().GetString("id")

	store := cache.NewStore(cache.BoardView(c.App.API(), id))
	if err := store.Reload(ctx); err != nil {
		return err
	}
	snapshot, _ := store.Get()

	if f.Quiet {
		return f.Success(snapshot.Tasks, nil)
	}

	detail := boardDetail{
		Board: snapshot.Board,
		Tasks: snapshot.Tasks,
		Stats: metrics.Summarize(snapshot.Tasks),
	}
	return f.Success(detail, func(w io.Writer) {
		printBoard(w, detail)
	})
}

func printBoard(w io.Writer, d boardDetail) {
	lines := []string{styles.Field("ID", d.Board.ID)}
	if d.Board.Description != "" {
		lines = append(lines, styles.SubtitleStyle.Render(d.Board.Description))
	}
	lines = append(lines,
		styles.Field("Members", fmt.Sprintf("%d", len(d.Board.Members))),
		styles.Field("Completion", fmt.Sprintf("%.0f%% (%d of %d done)", d.Stats.CompletionRate(), d.Stats.Completed, d.Stats.Total)),
	)
	fmt.Fprintln(w, styles.RenderCard(d.Board.Name, lines...))

	for i, tasks := range kanban.Group(d.Tasks) {
		column := kanban.Columns[i]
		fmt.Fprintf(w, "\n%s (%d)\n", styles.StatusBadge(column.Status), len(tasks))
		if len(tasks) == 0 {
			fmt.Fprintln(w, styles.SubtitleStyle.Render("  No tasks"))
			continue
		}
		for _, t := range tasks {
			fmt.Fprintf(w, "  [%s] %s  %s%s\n", t.ID, t.Title, styles.PriorityBadge(t.Priority), tagSuffix(t.Tags))
		}
	}
}

func tagSuffix(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return "  #" + strings.Join(tags, " #")
}
