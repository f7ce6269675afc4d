// Package user holds the user directory commands.
package user

import (
	"github.com/spf13/cobra"
)

// UserCmd returns the user parent command
func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "user",
		Aliases: []string{"users"},
		Short:   "Look up users to add to boards or assign tasks to",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}
