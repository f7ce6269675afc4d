package auth

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/cli"
)

// LogoutCmd returns the logout command
func LogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, runLogout)
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runLogout(ctx context.Context, cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter) error {
	wasSignedIn := c.App.SignedIn()
	if err := c.App.EndSession(); err != nil {
		return err
	}

	return f.Success(map[string]bool{"signedOut": wasSignedIn}, func(w io.Writer) {
		if wasSignedIn {
			fmt.Fprintln(w, "✓ Signed out")
			return
		}
		fmt.Fprintln(w, "Not signed in")
	})
}
