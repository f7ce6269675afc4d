package board

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/cli/styles"
)

// ActivityCmd returns the board activity subcommand
func ActivityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show the activity log of a board, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunSignedIn(cmd, runActivity)
		},
	}

	requireIDFlag(cmd)
	cmd.Flags().Int("limit", 20, "Maximum number of entries (0 for all)")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runActivity(ctx context.Context, cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter) error {
	id, _ := cmd.Flags().GetString("id")
	limit, _ := cmd.Flags().GetInt("limit")

	activities, err := c.App.BoardService.Activities(ctx, id)
	if err != nil {
		return err
	}
	if limit > 0 && len(activities) > limit {
		activities = activities[:limit]
	}

	return f.Success(activities, func(w io.Writer) {
		if len(activities) == 0 {
			fmt.Fprintln(w, "No activity yet")
			return
		}
		now := time.Now()
		for _, a := range activities {
			fmt.Fprintf(w, "  %s  %s\n", styles.SubtitleStyle.Render(cli.FormatRelative(a.CreatedAt, now)), a.Details)
		}
	})
}
