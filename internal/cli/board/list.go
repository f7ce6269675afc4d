package board

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/cache"
	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// boardRow is the JSON shape of one listed board
type boardRow struct {
	models.Board
	TaskCount int `json:"taskCount"`
}

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the boards you own or belong to",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunSignedIn(cmd, runList)
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(ctx context.Context, cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter) error {
	store := cache.NewStore(cache.BoardsView(c.App.API()))
	if err := store.Reload(ctx); err != nil {
		return err
	}
	snapshot, _ := store.Get()

	if f.Quiet {
		return f.Success(snapshot.Boards, nil)
	}

	rows := make([]boardRow, len(snapshot.Boards))
	for i, b := range snapshot.Boards {
		rows[i] = boardRow{Board: b, TaskCount: snapshot.TaskCounts[b.ID]}
	}

	return f.Success(rows, func(w io.Writer) {
		if len(rows) == 0 {
			fmt.Fprintln(w, "No boards yet. Create one with 'taskdeck board create --name <name>'")
			return
		}
		fmt.Fprintf(w, "Found %d boards:\n\n", len(rows))
		for _, r := range rows {
			fmt.Fprintf(w, "  [%s] %s (%s)\n", r.ID, r.Name, taskCount(r.TaskCount))
		}
	})
}

func taskCount(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}
