package auth

import (
	"context"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/services/account"
	"github.com/thenoetrevino/taskdeck/internal/user"
)

// RegisterCmd returns the register command
func RegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Long: `Create an account on the backend and sign in with it.

The password is prompted for when --password is not given. The username
defaults to your login name on this machine.

Examples:
  taskdeck register --username ada --email ada@example.com
  taskdeck register --email ada@example.com
  taskdeck register --username ada --email ada@example.com --password s3cret! --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, runRegister)
		},
	}

	cmd.Flags().String("username", "", "Username (defaults to your login name)")
	cmd.Flags().String("email", "", "Email address (required)")
	if err := cmd.MarkFlagRequired("email"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().String("password", "", "Password (prompted when omitted)")
	cmd.Flags().String("confirm", "", "Password confirmation (defaults to --password)")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runRegister(ctx context.Context, cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter) error {
	flags := cmd.Flags()
	username, _ := flags.GetString("username")
	email, _ := flags.GetString("email")
	password, _ := flags.GetString("password")
	confirm, _ := flags.GetString("confirm")
	if username == "" {
		username = user.DefaultUsername()
	}

	if password == "" {
		var err error
		if password, err = cli.Secret(ctx, f, "", "Password"); err != nil {
			return err
		}
		if confirm, err = cli.Secret(ctx, f, "", "Confirm password"); err != nil {
			return err
		}
	} else if confirm == "" {
		confirm = password
	}

	resp, err := c.App.AccountService.Register(ctx, account.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
		Confirm:  confirm,
	})
	if err != nil {
		return err
	}
	if err := c.App.StartSession(resp); err != nil {
		return err
	}

	return f.Success(&resp.User, printSignedIn("Registered and signed in", &resp.User))
}
