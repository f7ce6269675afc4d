package cli

import (
	"context"

	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/taskdeck/internal/dialog"
)

// Submit fills ctrl with fields and confirms it in one step
func Submit[F any](ctx context.Context, ctrl *dialog.Controller[F], fields F) error {
	if err := ctrl.Open(fields); err != nil {
		return err
	}
	return ctrl.Confirm(ctx)
}

// PromptPassword asks for a secret without echoing it
func PromptPassword(ctx context.Context, title string) (string, error) {
	var value string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(title).
			EchoMode(huh.EchoModePassword).
			Value(&value),
	))
	if err := form.RunWithContext(ctx); err != nil {
		return "", err
	}
	return value, nil
}

// Confirm asks a yes/no question, defaulting to no
func Confirm(ctx context.Context, title string) (bool, error) {
	var ok bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(&ok),
	))
	if err := form.RunWithContext(ctx); err != nil {
		return false, err
	}
	return ok, nil
}

// Secret returns flagValue, prompting for it when it is empty and the
// output is interactive
func Secret(ctx context.Context, f *OutputFormatter, flagValue, title string) (string, error) {
	if flagValue != "" || !f.Human() {
		return flagValue, nil
	}
	return PromptPassword(ctx, title)
}
