package comment

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/cli"
)

// DeleteCmd returns the comment delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete one of your comments",
		Long:  "Delete a comment by ID (requires confirmation unless --force, --json or --quiet).",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunSignedIn(cmd, runDelete)
		},
	}

	requireFlag(cmd, "id", "Comment ID (required)")
	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(ctx context.Context, cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter) error {
	id, _ := cmd.Flags().GetString("id")
	force, _ := cmd.Flags().GetBool("force")

	if !force && f.Human() {
		ok, err := cli.Confirm(ctx, "Delete this comment?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(f.Out, "Cancelled")
			return nil
		}
	}

	if err := c.App.CommentService.Delete(ctx, id); err != nil {
		return err
	}

	return f.Success(map[string]string{"id": id}, func(w io.Writer) {
		fmt.Fprintln(w, "✓ Comment deleted")
	})
}
