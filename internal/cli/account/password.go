package account

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/cli"
	accountservice "github.com/thenoetrevino/taskdeck/internal/services/account"
)

// PasswordCmd returns the account password subcommand
func PasswordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Change your password",
		Long: `Change your password. Passwords that are not given as flags are prompted for.

Examples:
  taskdeck account password
  taskdeck account password --current old-secret --new n3w-secret! --confirm n3w-secret!`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunSignedIn(cmd, runPassword)
		},
	}

	cmd.Flags().String("current", "", "Current password")
	cmd.Flags().String("new", "", "New password")
	cmd.Flags().String("confirm", "", "New password again (defaults to --new)")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runPassword(ctx context.Context, cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter) error {
	flags := cmd.Flags()
	current, _ := flags.GetString("current")
	next, _ := flags.GetString("new")
	confirm, _ := flags.GetString("confirm")

	var err error
	if current, err = cli.Secret(ctx, f, current, "Current password"); err != nil {
		return err
	}
	if next == "" {
		if next, err = cli.Secret(ctx, f, "", "New password"); err != nil {
			return err
		}
		if confirm, err = cli.Secret(ctx, f, "", "Confirm new password"); err != nil {
			return err
		}
	} else if confirm == "" {
		confirm = next
	}

	req := accountservice.ChangePasswordRequest{Current: current, New: next, Confirm: confirm}
	deps := c.App.AccountDialogs()
	deps.Notifier = f
	if err := cli.Submit(ctx, accountservice.NewPasswordDialog(deps), req); err != nil {
		return err
	}

	return f.Success(map[string]bool{"changed": true}, func(w io.Writer) {
		fmt.Fprintln(w, "  Use the new password the next time you sign in.")
	})
}
