package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/cli/account"
	"github.com/thenoetrevino/taskdeck/internal/cli/auth"
	"github.com/thenoetrevino/taskdeck/internal/cli/board"
	"github.com/thenoetrevino/taskdeck/internal/cli/comment"
	"github.com/thenoetrevino/taskdeck/internal/cli/dashboard"
	"github.com/thenoetrevino/taskdeck/internal/cli/task"
	"github.com/thenoetrevino/taskdeck/internal/cli/tutorial"
	"github.com/thenoetrevino/taskdeck/internal/cli/user"
	"github.com/thenoetrevino/taskdeck/internal/tui"
)

// NewRootCmd returns the taskdeck command tree. Without a subcommand it
// opens the interactive board.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "taskdeck",
		Short: "taskdeck - a terminal client for a kanban task service",
		Long: `taskdeck manages boards, tasks and comments on a taskdeck server.

Run it without arguments to open the interactive board, or use the
subcommands for scripting. Every subcommand accepts --json and --quiet.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunSignedIn(cmd, func(ctx context.Context, cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter) error {
				return tui.Run(ctx, c.App)
			})
		},
	}

	rootCmd.AddCommand(auth.Cmds()...)
	rootCmd.AddCommand(
		board.BoardCmd(),
		task.TaskCmd(),
		comment.CommentCmd(),
		account.AccountCmd(),
		dashboard.DashboardCmd(),
		user.UserCmd(),
		tutorial.TutorialCmd(),
	)
	return rootCmd
}

// Execute runs the command tree with ctx
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
