package comment

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/cli"
)

// EditCmd returns the comment edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Change the text of one of your comments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunSignedIn(cmd, runEdit)
		},
	}

	requireFlag(cmd, "id", "Comment ID (required)")
	requireFlag(cmd, "content", "New text (required, use - for stdin)")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runEdit(ctx context.Context, cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter) error {
	id, _ := cmd.Flags().GetString("id")
	content, _ := cmd.Flags().GetString("content")
	content, err := cli.ReadDescription(content, cmd.InOrStdin())
	if err != nil {
		return err
	}

	updated, err := c.App.CommentService.Update(ctx, id, content)
	if err != nil {
		return err
	}

	return f.Success(updated, func(w io.Writer) {
		fmt.Fprintln(w, "✓ Comment updated")
	})
}
