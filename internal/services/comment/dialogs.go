package comment

import (
	"context"
	"strings"

	"github.com/thenoetrevino/taskdeck/internal/dialog"
	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/notify"
)

// AddFields is the task being commented on and the draft text
type AddFields struct {
	Task    models.Task
	Content string
}

// DialogDeps are the dependencies of the comment dialog
type DialogDeps struct {
	Service  Service
	Notifier notify.Notifier
	// Reload refreshes the comment thread after posting
	Reload func(ctx context.Context) error
	// Saved receives the posted comment
	Saved func(c *models.Comment)
}

// NewAddDialog returns the comment composer of a task's comment thread
func NewAddDialog(deps DialogDeps) *dialog.Controller[AddFields] {
	return dialog.New(dialog.Config[AddFields]{
		Validate: func(f AddFields) error {
			if strings.TrimSpace(f.Task.ID) == "" {
				return ErrInvalidTaskID
			}
			return ValidateContent(strings.TrimSpace(f.Content))
		},
		Submit: func(ctx context.Context, f AddFields) error {
			c, err := deps.Service.Add(ctx, &f.Task, f.Content)
			if err != nil {
				return err
			}
			if deps.Saved != nil {
				deps.Saved(c)
			}
			return nil
		},
		OnSuccess: deps.Reload,
		Success:   dialog.Message[AddFields]("Your comment has been added successfully."),
		Notifier:  deps.Notifier,
	})
}
