// Package account holds the profile and password commands.
package account

import (
	"github.com/spf13/cobra"
)

// AccountCmd returns the account parent command
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage your profile and password",
	}

	cmd.AddCommand(ProfileCmd())
	cmd.AddCommand(PasswordCmd())

	return cmd
}
