// Package tutorial prints the quick-start guide.
package tutorial

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Show the quick-start guide",
		Long: `Show the taskdeck quick-start guide.

Use --raw to print the markdown source, e.g. to pipe it into a pager.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetBool("raw")
			out, err := Render(raw)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().Bool("raw", false, "Print markdown without styling")
	return cmd
}

// Render returns the guide, styled for the terminal unless raw is set
func Render(raw bool) (string, error) {
	if raw {
		return tutorialContent, nil
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return r.Render(tutorialContent)
}
