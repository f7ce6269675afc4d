package board

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/models"
	boardservice "github.com/thenoetrevino/taskdeck/internal/services/board"
)

// UpdateCmd returns the board update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Rename a board or change its description or members",
		Long: `Update a board. Only the flags given are changed. Only the board owner
may update it.

Examples:
  taskdeck board update --id <board-id> --name "Launch v2"
  taskdeck board update --id <board-id> --members u1,u2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunSignedIn(cmd, runUpdate)
		},
	}

	requireIDFlag(cmd)
	cmd.Flags().String("name", "", "New board name")
	cmd.Flags().String("description", "", "New description (use - for stdin)")
	cmd.Flags().String("members", "", "Replace the members with these comma-separated user IDs")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runUpdate(ctx context.Context, cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter) error {
	flags := cmd.Flags()
	id, _ := flags.GetString("id")

	if !flags.Changed("name") && !flags.Changed("description") && !flags.Changed("members") {
		return cli.Usage(f, "nothing to update: pass --name, --description or --members")
	}

	current, err := c.App.BoardService.Get(ctx, id)
	if err != nil {
		return err
	}

	fields := boardservice.FieldsFrom(current)
	if flags.Changed("name") {
		fields.Name, _ = flags.GetString("name")
	}
	if flags.Changed("description") {
		desc, _ := flags.GetString("description")
		if fields.Description, err = cli.ReadDescription(desc, cmd.InOrStdin()); err != nil {
			return err
		}
	}
	if flags.Changed("members") {
		members, _ := flags.GetString("members")
		fields.Members = cli.ParseTags(members)
		if fields.Members == nil {
			fields.Members = []string{}
		}
	}

	var updated *models.Board
	deps := dialogDeps(c, f)
	deps.Saved = func(b *models.Board) { updated = b }

	if err := cli.Submit(ctx, boardservice.NewEditDialog(deps), fields); err != nil {
		return err
	}

	return f.Success(updated, func(w io.Writer) {
		fmt.Fprintf(w, "  Name: %s\n", updated.Name)
	})
}
