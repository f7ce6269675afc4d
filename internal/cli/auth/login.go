package auth

import (
	"context"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/cli"
)

// LoginCmd returns the login command
func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the backend",
		Long: `Sign in with an email and password. The token is saved in the data
directory (~/.taskdeck/session.yaml) and used by every other command.

Examples:
  taskdeck login --email ada@example.com
  taskdeck login --email ada@example.com --password s3cret! --quiet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, runLogin)
		},
	}

	cmd.Flags().String("email", "", "Email address (required)")
	if err := cmd.MarkFlagRequired("email"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().String("password", "", "Password (prompted when omitted)")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runLogin(ctx context.Context, cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	password, err := cli.Secret(ctx, f, password, "Password")
	if err != nil {
		return err
	}

	resp, err := c.App.AccountService.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := c.App.StartSession(resp); err != nil {
		return err
	}

	return f.Success(&resp.User, printSignedIn("Signed in", &resp.User))
}
