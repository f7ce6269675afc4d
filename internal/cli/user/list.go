package user

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/cache"
	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/metrics"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// userRow is the JSON shape of one user listed with --workload
type userRow struct {
	models.User
	AssignedTasks int `json:"assignedTasks"`
}

// ListCmd returns the user list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every user",
		Long: `List every user on the server.

With --workload, also count the tasks assigned to each user on the boards you can see.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunSignedIn(cmd, runList)
		},
	}
	cmd.Flags().Bool("workload", false, "Count assigned tasks per user")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(ctx context.Context, cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter) error {
	users, err := c.App.API().ListUsers(ctx)
	if err != nil {
		return err
	}

	workload, _ := cmd.Flags().GetBool("workload")
	if !workload || f.Quiet {
		return f.Success(users, func(w io.Writer) {
			fmt.Fprintf(w, "Found %d users:\n\n", len(users))
			for _, u := range users {
				fmt.Fprintf(w, "  [%s] %s <%s>\n", u.ID, u.Username, u.Email)
			}
		})
	}

	store := cache.NewStore(cache.DashboardView(c.App.API()))
	if err := store.Reload(ctx); err != nil {
		return err
	}
	snap, _ := store.Get()
	counts := metrics.CountByAssignee(snap.Tasks)

	rows := make([]userRow, len(users))
	for i, u := range users {
		rows[i] = userRow{User: u, AssignedTasks: counts[u.ID]}
	}

	return f.Success(rows, func(w io.Writer) {
		fmt.Fprintf(w, "Found %d users:\n\n", len(rows))
		for _, r := range rows {
			fmt.Fprintf(w, "  [%s] %s <%s> (%d assigned)\n", r.ID, r.Username, r.Email, r.AssignedTasks)
		}
		if n := counts[""]; n > 0 {
			fmt.Fprintf(w, "\n  %d unassigned\n", n)
		}
	})
}
