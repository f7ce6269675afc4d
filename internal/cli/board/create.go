package board

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/models"
	boardservice "github.com/thenoetrevino/taskdeck/internal/services/board"
)

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a board",
		Long: `Create a board owned by the signed-in user.

Examples:
  taskdeck board create --name "Launch"
  BOARD=$(taskdeck board create --name "Ops" --members u1,u2 --quiet)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunSignedIn(cmd, runCreate)
		},
	}

	cmd.Flags().String("name", "", "Board name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().String("description", "", "Board description (use - for stdin)")
	cmd.Flags().String("members", "", "Comma-separated member user IDs")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(ctx context.Context, cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter) error {
	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")
	members, _ := cmd.Flags().GetString("members")

	description, err := cli.ReadDescription(description, cmd.InOrStdin())
	if err != nil {
		return err
	}

	var created *models.Board
	deps := dialogDeps(c, f)
	deps.Saved = func(b *models.Board) { created = b }

	err = cli.Submit(ctx, boardservice.NewCreateDialog(deps), boardservice.Fields{
		Name:        name,
		Description: description,
		Members:     cli.ParseTags(members),
	})
	if err != nil {
		return err
	}

	return f.Success(created, func(w io.Writer) {
		fmt.Fprintf(w, "  ID: %s\n", created.ID)
	})
}
