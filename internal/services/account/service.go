// Package account implements login, registration and profile management
// for the signed-in user.
package account

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/taskdeck/internal/gateway"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// Service defines all account-related business operations
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Me(ctx context.Context) (*models.User, error)
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
	UpdateProfile(ctx context.Context, req ProfileRequest) (*models.User, error)
}

// RegisterRequest encapsulates all data needed to create an account
type RegisterRequest struct {
	Username string
	Email    string
	Password string
	Confirm  string
}

// ChangePasswordRequest holds the password form. New must equal Confirm.
type ChangePasswordRequest struct {
	Current string
	New     string
	Confirm string
}

// ProfileRequest holds the editable profile fields
type ProfileRequest struct {
	Username string
	Email    string
}

// service implements Service interface
type service struct {
	api gateway.AuthAPI
}

// NewService creates a new account service
func NewService(api gateway.AuthAPI) Service {
	return &service{api: api}
}

// Register validates and creates an account
func (s *service) Register(ctx context.Context, req RegisterRequest) (*models.AuthResponse, error) {
	profile := ProfileRequest{Username: req.Username, Email: req.Email}
	if err := ValidateProfile(&profile); err != nil {
		return nil, err
	}
	if err := ValidateNewPassword(req.Password, req.Confirm); err != nil {
		return nil, err
	}

	return s.api.Register(ctx, models.RegisterRequest{
		Username: profile.Username,
		Email:    profile.Email,
		Password: req.Password,
	})
}

// Login exchanges credentials for a token
func (s *service) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrEmptyCredentials
	}
	return s.api.Login(ctx, models.LoginRequest{Email: email, Password: password})
}

// Me returns the signed-in user
func (s *service) Me(ctx context.Context) (*models.User, error) {
	return s.api.Me(ctx)
}

// ChangePassword validates the form and sends one request
func (s *service) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	if err := ValidatePasswordChange(req); err != nil {
		return err
	}
	return s.api.ChangePassword(ctx, models.ChangePasswordRequest{
		CurrentPassword: req.Current,
		NewPassword:     req.New,
	})
}

// UpdateProfile validates and saves the username and email
func (s *service) UpdateProfile(ctx context.Context, req ProfileRequest) (*models.User, error) {
	if err := ValidateProfile(&req); err != nil {
		return nil, err
	}
	return s.api.UpdateProfile(ctx, models.ProfileUpdate{Username: req.Username, Email: req.Email})
}

// ============================================================================
// VALIDATION
// ============================================================================

// ValidateNewPassword checks the new password against its confirmation,
// then its length
func ValidateNewPassword(password, confirm string) error {
	if password != confirm {
		return ErrPasswordMismatch
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// ValidatePasswordChange validates the whole password form
func ValidatePasswordChange(req ChangePasswordRequest) error {
	if err := ValidateNewPassword(req.New, req.Confirm); err != nil {
		return err
	}
	if req.Current == "" {
		return ErrEmptyCurrentPassword
	}
	return nil
}

// ValidateProfile trims and checks the profile fields in place
func ValidateProfile(req *ProfileRequest) error {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if req.Username == "" {
		return ErrEmptyUsername
	}
	if utf8.RuneCountInString(req.Username) > maxUsernameLength {
		return ErrUsernameTooLong
	}

	addr, err := mail.ParseAddress(req.Email)
	if err != nil || addr.Address != req.Email {
		return ErrInvalidEmail
	}
	return nil
}
