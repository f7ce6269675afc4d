package task

import (
	"context"
	"strings"

	"github.com/thenoetrevino/taskdeck/internal/dialog"
	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/notify"
)

// Fields are the inputs of the create and edit task dialogs
type Fields struct {
	BoardID     string
	Title       string
	Description string
	Status      models.Status
	Priority    models.Priority
	DueDate     string
	Tags        []string
	// AssignedTo is only used on create
	AssignedTo string
}

// FieldsFrom pre-fills the edit dialog from an existing task
func FieldsFrom(t *models.Task) Fields {
	return Fields{
		BoardID:     t.BoardID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		Tags:        t.Tags,
	}
}

// EditFields carries the task being edited alongside the new values
type EditFields struct {
	Task   models.Task
	Fields Fields
}

// AssignFields is the task and the chosen assignee; a nil Assignee unassigns
type AssignFields struct {
	Task     models.Task
	Assignee *models.User
}

// DialogDeps are shared by every task dialog
type DialogDeps struct {
	Service  Service
	Notifier notify.Notifier
	// Reload refreshes the board view after a successful change
	Reload func(ctx context.Context) error
	// Saved receives the task returned by a create, edit or assignment
	Saved func(t *models.Task)
}

func (d DialogDeps) saved(t *models.Task) {
	if d.Saved != nil {
		d.Saved(t)
	}
}

func validateFields(f Fields) error {
	if err := ValidateTitle(strings.TrimSpace(f.Title)); err != nil {
		return err
	}
	if f.Status != "" && !f.Status.Valid() {
		return ErrInvalidStatus
	}
	if f.Priority != "" && !f.Priority.Valid() {
		return ErrInvalidPriority
	}
	if err := ValidateDueDate(f.DueDate); err != nil {
		return err
	}
	return validateTags(f.Tags)
}

// NewCreateDialog returns the "create task" dialog
func NewCreateDialog(deps DialogDeps) *dialog.Controller[Fields] {
	return dialog.New(dialog.Config[Fields]{
		Validate: func(f Fields) error {
			if strings.TrimSpace(f.BoardID) == "" {
				return ErrInvalidBoardID
			}
			return validateFields(f)
		},
		Submit: func(ctx context.Context, f Fields) error {
			t, err := deps.Service.Create(ctx, CreateTaskRequest{
				BoardID:     f.BoardID,
				Title:       f.Title,
				Description: f.Description,
				Status:      f.Status,
				Priority:    f.Priority,
				DueDate:     f.DueDate,
				AssignedTo:  f.AssignedTo,
				Tags:        f.Tags,
			})
			if err != nil {
				return err
			}
			deps.saved(t)
			return nil
		},
		OnSuccess: deps.Reload,
		Success:   dialog.Message[Fields]("Your new task has been added."),
		Notifier:  deps.Notifier,
	})
}

// NewEditDialog returns the "edit task" dialog
func NewEditDialog(deps DialogDeps) *dialog.Controller[EditFields] {
	return dialog.New(dialog.Config[EditFields]{
		Validate: func(e EditFields) error {
			if strings.TrimSpace(e.Task.ID) == "" {
				return ErrInvalidTaskID
			}
			return validateFields(e.Fields)
		},
		Submit: func(ctx context.Context, e EditFields) error {
			f := e.Fields
			req := UpdateTaskRequest{
				Task:        &e.Task,
				Title:       &f.Title,
				Description: &f.Description,
				DueDate:     &f.DueDate,
			}
			if f.Status != "" {
				req.Status = &f.Status
			}
			if f.Priority != "" {
				req.Priority = &f.Priority
			}
			if f.Tags != nil {
				req.Tags = &f.Tags
			}
			t, err := deps.Service.Update(ctx, req)
			if err != nil {
				return err
			}
			deps.saved(t)
			return nil
		},
		OnSuccess: deps.Reload,
		Success:   dialog.Message[EditFields]("Your task has been updated successfully."),
		Notifier:  deps.Notifier,
	})
}

// NewDeleteDialog returns the delete confirmation for a task
func NewDeleteDialog(deps DialogDeps) *dialog.Controller[models.Task] {
	return dialog.New(dialog.Config[models.Task]{
		Validate: func(t models.Task) error {
			if strings.TrimSpace(t.ID) == "" {
				return ErrInvalidTaskID
			}
			return nil
		},
		Submit: func(ctx context.Context, t models.Task) error {
			return deps.Service.Delete(ctx, &t)
		},
		OnSuccess: deps.Reload,
		Success:   dialog.Message[models.Task]("Your task has been deleted successfully."),
		Notifier:  deps.Notifier,
	})
}

// NewAssignDialog returns the assignee picker. Choosing the current
// assignee fails validation, so no request is sent.
func NewAssignDialog(deps DialogDeps) *dialog.Controller[AssignFields] {
	return dialog.New(dialog.Config[AssignFields]{
		Validate: func(a AssignFields) error {
			if strings.TrimSpace(a.Task.ID) == "" {
				return ErrInvalidTaskID
			}
			target := ""
			if a.Assignee != nil {
				target = a.Assignee.ID
			}
			if target == a.Task.AssignedTo {
				return ErrAlreadyAssigned
			}
			return nil
		},
		Submit: func(ctx context.Context, a AssignFields) error {
			t, err := deps.Service.Assign(ctx, &a.Task, a.Assignee)
			if err != nil {
				return err
			}
			deps.saved(t)
			return nil
		},
		OnSuccess: deps.Reload,
		Success: func(a AssignFields) string {
			if a.Assignee == nil {
				return "Task unassigned"
			}
			return "Task assigned to " + a.Assignee.Username
		},
		Notifier: deps.Notifier,
	})
}
