package account

import (
	"context"

	"github.com/thenoetrevino/taskdeck/internal/dialog"
	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/notify"
)

// DialogDeps are the dependencies of the profile dialogs
type DialogDeps struct {
	Service  Service
	Notifier notify.Notifier
	// Saved receives the updated user after a profile edit
	Saved func(user *models.User)
}

// NewProfileDialog returns the profile edit form
func NewProfileDialog(deps DialogDeps) *dialog.Controller[ProfileRequest] {
	return dialog.New(dialog.Config[ProfileRequest]{
		Validate: func(f ProfileRequest) error {
			return ValidateProfile(&f)
		},
		Submit: func(ctx context.Context, f ProfileRequest) error {
			user, err := deps.Service.UpdateProfile(ctx, f)
			if err != nil {
				return err
			}
			if deps.Saved != nil {
				deps.Saved(user)
			}
			return nil
		},
		Success:  dialog.Message[ProfileRequest]("Your profile information has been updated successfully."),
		Notifier: deps.Notifier,
	})
}

// NewPasswordDialog returns the password change form
func NewPasswordDialog(deps DialogDeps) *dialog.Controller[ChangePasswordRequest] {
	return dialog.New(dialog.Config[ChangePasswordRequest]{
		Validate: ValidatePasswordChange,
		Submit:   deps.Service.ChangePassword,
		Success:  dialog.Message[ChangePasswordRequest]("Your password has been updated successfully."),
		Notifier: deps.Notifier,
	})
}
