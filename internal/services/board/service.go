// Package board implements board business operations on top of the gateway.
package board

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/taskdeck/internal/gateway"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// API is the subset of the gateway used by the board service
type API interface {
	gateway.BoardAPI
	ListActivities(ctx context.Context, boardID string) ([]models.Activity, error)
}

// Service defines all board-related business operations
type Service interface {
	// Read operations
	List(ctx context.Context) ([]models.Board, error)
	Get(ctx context.Context, id string) (*models.Board, error)
	Activities(ctx context.Context, boardID string) ([]models.Activity, error)

	// Write operations
	Create(ctx context.Context, req CreateBoardRequest) (*models.Board, error)
	Update(ctx context.Context, req UpdateBoardRequest) (*models.Board, error)
	Delete(ctx context.Context, id string) error
}

// CreateBoardRequest encapsulates all data needed to create a board
type CreateBoardRequest struct {
	Name        string
	Description string
	Members     []string
}

// UpdateBoardRequest encapsulates all data needed to update a board.
// Nil fields are left unchanged.
type UpdateBoardRequest struct {
	ID          string
	Name        *string
	Description *string
	Members     *[]string
}

// service implements Service interface
type service struct {
	api API
}

// NewService creates a new board service
func NewService(api API) Service {
	return &service{api: api}
}

// List returns the boards visible to the current user
func (s *service) List(ctx context.Context) ([]models.Board, error) {
	return s.api.ListBoards(ctx)
}

// Get fetches a board, mapping a 404 onto ErrNotFound
func (s *service) Get(ctx context.Context, id string) (*models.Board, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidBoardID
	}

	b, err := s.api.GetBoard(ctx, id)
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}
	return b, nil
}

// Activities returns the activity log of a board
func (s *service) Activities(ctx context.Context, boardID string) ([]models.Activity, error) {
	if strings.TrimSpace(boardID) == "" {
		return nil, ErrInvalidBoardID
	}
	return s.api.ListActivities(ctx, boardID)
}

// Create validates and creates a board
func (s *service) Create(ctx context.Context, req CreateBoardRequest) (*models.Board, error) {
	name := strings.TrimSpace(req.Name)
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if err := validateDescription(req.Description); err != nil {
		return nil, err
	}
	if err := validateMembers(req.Members); err != nil {
		return nil, err
	}

	return s.api.CreateBoard(ctx, models.BoardInput{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Members:     req.Members,
	})
}

// Update validates the set fields and sends one partial update
func (s *service) Update(ctx context.Context, req UpdateBoardRequest) (*models.Board, error) {
	if strings.TrimSpace(req.ID) == "" {
		return nil, ErrInvalidBoardID
	}

	var update models.BoardUpdate
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := ValidateName(name); err != nil {
			return nil, err
		}
		update.Name = &name
	}
	if req.Description != nil {
		if err := validateDescription(*req.Description); err != nil {
			return nil, err
		}
		desc := strings.TrimSpace(*req.Description)
		update.Description = &desc
	}
	if req.Members != nil {
		if err := validateMembers(*req.Members); err != nil {
			return nil, err
		}
		update.Members = req.Members
	}

	return s.api.UpdateBoard(ctx, req.ID, update)
}

// Delete removes a board. The backend deletes its tasks, so no task
// requests are issued here.
func (s *service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidBoardID
	}
	return s.api.DeleteBoard(ctx, id)
}

// ValidateName checks a trimmed board name
func ValidateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func validateDescription(desc string) error {
	if utf8.RuneCountInString(strings.TrimSpace(desc)) > maxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}

func validateMembers(members []string) error {
	seen := make(map[string]struct{}, len(members))
	for _, m := range members {
		if _, dup := seen[m]; dup {
			return ErrDuplicateMember
		}
		seen[m] = struct{}{}
	}
	return nil
}
