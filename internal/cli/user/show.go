package user

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/cli/styles"
)

// ShowCmd returns the user show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunSignedIn(cmd, runShow)
		},
	}
	cmd.Flags().String("id", "", "User ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(ctx context.Context, cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter) error {
	id, _ := cmd.Flags().GetString("id")
	u, err := c.App.API().GetUser(ctx, id)
	if err != nil {
		return err
	}

	return f.Success(u, func(w io.Writer) {
		lines := []string{
			styles.Field("ID", u.ID),
			styles.Field("Email", u.Email),
		}
		if u.Role != "" {
			lines = append(lines, styles.Field("Role", string(u.Role)))
		}
		lines = append(lines, styles.Field("Joined", u.CreatedAt.Local().Format("Jan 2, 2006")))
		fmt.Fprintln(w, styles.RenderCard(u.Username, lines...))
	})
}
