package board

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/cli"
	boardservice "github.com/thenoetrevino/taskdeck/internal/services/board"
)

// DeleteCmd returns the board delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a board and all of its tasks",
		Long:  "Delete a board by ID (requires confirmation unless --force, --json or --quiet).",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunSignedIn(cmd, runDelete)
		},
	}

	requireIDFlag(cmd)
	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(ctx context.Context, cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter) error {
	id, _ := cmd.Flags().GetString("id")
	force, _ := cmd.Flags().GetBool("force")

	board, err := c.App.BoardService.Get(ctx, id)
	if err != nil {
		return err
	}

	if !force && f.Human() {
		ok, err := cli.Confirm(ctx, fmt.Sprintf("Delete board '%s' and all of its tasks?", board.Name))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(f.Out, "Cancelled")
			return nil
		}
	}

	if err := cli.Submit(ctx, boardservice.NewDeleteDialog(dialogDeps(c, f)), *board); err != nil {
		return err
	}

	return f.Success(map[string]string{"id": board.ID}, nil)
}
