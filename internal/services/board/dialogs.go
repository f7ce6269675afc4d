package board

import (
	"context"
	"strings"

	"github.com/thenoetrevino/taskdeck/internal/dialog"
	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/notify"
)

// Fields are the inputs of the create and edit board dialogs
type Fields struct {
	ID          string
	Name        string
	Description string
	// Members replaces the member list when non-nil
	Members []string
}

// FieldsFrom pre-fills the edit dialog from an existing board
func FieldsFrom(b *models.Board) Fields {
	return Fields{ID: b.ID, Name: b.Name, Description: b.Description}
}

// DialogDeps are shared by every board dialog
type DialogDeps struct {
	Service  Service
	Notifier notify.Notifier
	// Reload refreshes whichever view opened the dialog
	Reload func(ctx context.Context) error
	// Saved receives the board returned by a create or edit
	Saved func(b *models.Board)
}

func (d DialogDeps) saved(b *models.Board) {
	if d.Saved != nil {
		d.Saved(b)
	}
}

func validateFields(f Fields) error {
	return ValidateName(strings.TrimSpace(f.Name))
}

// NewCreateDialog returns the "create board" dialog
func NewCreateDialog(deps DialogDeps) *dialog.Controller[Fields] {
	return dialog.New(dialog.Config[Fields]{
		Validate: validateFields,
		Submit: func(ctx context.Context, f Fields) error {
			b, err := deps.Service.Create(ctx, CreateBoardRequest{Name: f.Name, Description: f.Description, Members: f.Members})
			if err != nil {
				return err
			}
			deps.saved(b)
			return nil
		},
		OnSuccess: deps.Reload,
		Success:   dialog.Message[Fields]("Your new board has been created successfully."),
		Notifier:  deps.Notifier,
	})
}

// NewEditDialog returns the "edit board" dialog
func NewEditDialog(deps DialogDeps) *dialog.Controller[Fields] {
	return dialog.New(dialog.Config[Fields]{
		Validate: func(f Fields) error {
			if strings.TrimSpace(f.ID) == "" {
				return ErrInvalidBoardID
			}
			return validateFields(f)
		},
		Submit: func(ctx context.Context, f Fields) error {
			req := UpdateBoardRequest{
				ID:          f.ID,
				Name:        &f.Name,
				Description: &f.Description,
			}
			if f.Members != nil {
				req.Members = &f.Members
			}
			b, err := deps.Service.Update(ctx, req)
			if err != nil {
				return err
			}
			deps.saved(b)
			return nil
		},
		OnSuccess: deps.Reload,
		Success:   dialog.Message[Fields]("Your board has been updated successfully."),
		Notifier:  deps.Notifier,
	})
}

// NewDeleteDialog returns the delete confirmation for a board. Its fields
// are the board being deleted.
func NewDeleteDialog(deps DialogDeps) *dialog.Controller[models.Board] {
	return dialog.New(dialog.Config[models.Board]{
		Validate: func(b models.Board) error {
			if strings.TrimSpace(b.ID) == "" {
				return ErrInvalidBoardID
			}
			return nil
		},
		Submit: func(ctx context.Context, b models.Board) error {
			return deps.Service.Delete(ctx, b.ID)
		},
		OnSuccess: deps.Reload,
		Success:   dialog.Message[models.Board]("Your board has been deleted successfully."),
		Notifier:  deps.Notifier,
	})
}
