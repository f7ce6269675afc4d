// Package dashboard holds the dashboard command.
package dashboard

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/cache"
	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/cli/styles"
	"github.com/thenoetrevino/taskdeck/internal/metrics"
)

// barWidth is the width of a 100% bar
const barWidth = 30

// DashboardCmd returns the dashboard command
func DashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Summarize your tasks across every board",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunSignedIn(cmd, runDashboard)
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runDashboard(ctx context.Context, cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter) error {
	store := cache.NewStore(cache.DashboardView(c.App.API()))
	if err := store.Reload(ctx); err != nil {
		return err
	}
	snap, _ := store.Get()
	summary := metrics.Dashboard(snap.Boards, snap.Tasks)

	return f.Success(summary, func(w io.Writer) {
		printSummary(w, summary)
	})
}

func printSummary(w io.Writer, s metrics.DashboardSummary) {
	fmt.Fprintln(w, styles.RenderCard("Dashboard",
		styles.Field("Boards", fmt.Sprintf("%d", s.TotalBoards)),
		styles.Field("Tasks", fmt.Sprintf("%d", s.Total)),
		styles.Field("Completed", fmt.Sprintf("%d", s.Completed)),
		styles.Field("Pending", fmt.Sprintf("%d", s.Pending)),
	))

	fmt.Fprintln(w, styles.SectionStyle.Render("Task Status"))
	for _, bar := range s.Bars {
		fmt.Fprintf(w, "  %-12s %s %d (%.0f%%)\n", bar.Title, renderBar(bar.Percent), bar.Count, bar.Percent)
	}

	fmt.Fprintln(w, styles.SectionStyle.Render("Recent Boards"))
	if len(s.RecentBoards) == 0 {
		fmt.Fprintln(w, "  No boards yet. Create one with 'taskdeck board create'.")
		return
	}
	for _, b := range s.RecentBoards {
		fmt.Fprintf(w, "  [%s] %s\n", b.ID, b.Name)
	}
}

func renderBar(percent float64) string {
	filled := int(percent/100*barWidth + 0.5)
	return styles.LabelStyle.Render(strings.Repeat("█", filled)) +
		styles.SubtitleStyle.Render(strings.Repeat("░", barWidth-filled))
}
