package account

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/models"
	accountservice "github.com/thenoetrevino/taskdeck/internal/services/account"
)

// ProfileCmd returns the account profile subcommand
func ProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Change your username or email",
		Long: `Change your username or email. Fields that are not given keep their current value.

Examples:
  taskdeck account profile --username ada.l
  taskdeck account profile --email ada@lovelace.dev --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunSignedIn(cmd, runProfile)
		},
	}

	cmd.Flags().String("username", "", "New username")
	cmd.Flags().String("email", "", "New email address")
	cmd.MarkFlagsOneRequired("username", "email")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runProfile(ctx context.Context, cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter) error {
	current, err := c.App.AccountService.Me(ctx)
	if err != nil {
		return err
	}

	req := accountservice.ProfileRequest{Username: current.Username, Email: current.Email}
	if cmd.Flags().Changed("username") {
		req.Username, _ = cmd.Flags().GetString("username")
	}
	if cmd.Flags().Changed("email") {
		req.Email, _ = cmd.Flags().GetString("email")
	}

	var updated *models.User
	deps := c.App.AccountDialogs()
	deps.Notifier = f
	saved := deps.Saved
	deps.Saved = func(u *models.User) {
		updated = u
		saved(u)
	}

	if err := cli.Submit(ctx, accountservice.NewProfileDialog(deps), req); err != nil {
		return err
	}

	return f.Success(updated, func(w io.Writer) {
		fmt.Fprintf(w, "  %s (%s)\n", updated.Username, updated.Email)
	})
}
