package auth

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/cli/styles"
)

// WhoamiCmd returns the whoami command
func WhoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunSignedIn(cmd, runWhoami)
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runWhoami(ctx context.Context, cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter) error {
	user, err := c.App.AccountService.Me(ctx)
	if err != nil {
		return err
	}
	c.App.UpdateSessionUser(user)

	return f.Success(user, func(w io.Writer) {
		fmt.Fprintln(w, styles.RenderCard(user.Username,
			styles.Field("ID", user.ID),
			styles.Field("Email", user.Email),
			styles.Field("Server", c.App.API().BaseURL()),
		))
	})
}
