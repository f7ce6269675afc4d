package gateway

import (
	"context"

	"github.com/thenoetrevino/taskdeck/internal/models"
)

// AuthAPI covers registration, login and the current account
type AuthAPI interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Me(ctx context.Context) (*models.User, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error
	UpdateProfile(ctx context.Context, req models.ProfileUpdate) (*models.User, error)
}

// UserAPI lists and fetches users
type UserAPI interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// BoardAPI is the board resource
type BoardAPI interface {
	ListBoards(ctx context.Context) ([]models.Board, error)
	GetBoard(ctx context.Context, id string) (*models.Board, error)
	CreateBoard(ctx context.Context, in models.BoardInput) (*models.Board, error)
	UpdateBoard(ctx context.Context, id string, in models.BoardUpdate) (*models.Board, error)
	DeleteBoard(ctx context.Context, id string) error
}

// TaskAPI is the task resource
type TaskAPI interface {
	ListTasks(ctx context.Context, boardID string) ([]models.Task, error)
	CreateTask(ctx context.Context, in models.TaskInput) (*models.Task, error)
	UpdateTask(ctx context.Context, id string, in models.TaskUpdate) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error
	AssignTask(ctx context.Context, id, userID string) (*models.Task, error)
}

// CommentAPI is the comment resource
type CommentAPI interface {
	ListComments(ctx context.Context, taskID string) ([]models.Comment, error)
	CreateComment(ctx context.Context, in models.CommentInput) (*models.Comment, error)
	UpdateComment(ctx context.Context, id string, in models.CommentUpdate) (*models.Comment, error)
	DeleteComment(ctx context.Context, id string) error
}

// ActivityAPI is the append-only activity log
type ActivityAPI interface {
	ListActivities(ctx context.Context, boardID string) ([]models.Activity, error)
	CreateActivity(ctx context.Context, in models.ActivityInput) (*models.Activity, error)
}

// API is every resource the backend exposes. Consumers should depend on the
// smaller interfaces where they can.
type API interface {
	AuthAPI
	UserAPI
	BoardAPI
	TaskAPI
	CommentAPI
	ActivityAPI
}

// Compile-time verification that *Client implements API
var _ API = (*Client)(nil)
