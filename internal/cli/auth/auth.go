// Package auth holds the register, login, logout and whoami commands.
package auth

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// Cmds returns the top-level session commands
func Cmds() []*cobra.Command {
	return []*cobra.Command{RegisterCmd(), LoginCmd(), LogoutCmd(), WhoamiCmd()}
}

func printSignedIn(verb string, user *models.User) func(io.Writer) {
	return func(w io.Writer) {
		fmt.Fprintf(w, "✓ %s as %s (%s)\n", verb, user.Username, user.Email)
	}
}
