package database

import (
	"context"

	"github.com/thenoetrevino/taskdeck/internal/models"
)

// UserRepository defines operations for managing accounts
type UserRepository interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetCredentials(ctx context.Context, email string) (*models.User, string, error)
	GetPasswordHash(ctx context.Context, id string) (string, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, id, username, email string) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, id, passwordHash string) error
}

// BoardRepository defines operations for managing boards and their members
type BoardRepository interface {
	CreateBoard(ctx context.Context, ownerID string, in models.BoardInput) (*models.Board, error)
	GetBoardByID(ctx context.Context, id string) (*models.Board, error)
	ListBoardsForUser(ctx context.Context, userID string) ([]models.Board, error)
	UpdateBoard(ctx context.Context, id string, upd models.BoardUpdate) (*models.Board, error)
	DeleteBoard(ctx context.Context, id string) error
}

// TaskRepository defines operations for managing tasks
type TaskRepository interface {
	CreateTask(ctx context.Context, userID string, in models.TaskInput) (*models.Task, error)
	GetTaskByID(ctx context.Context, id string) (*models.Task, error)
	ListTasksByBoard(ctx context.Context, boardID string) ([]models.Task, error)
	UpdateTask(ctx context.Context, id string, upd models.TaskUpdate) (*models.Task, error)
	AssignTask(ctx context.Context, id, userID string) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// CommentRepository defines operations for managing comments
type CommentRepository interface {
	CreateComment(ctx context.Context, userID string, in models.CommentInput) (*models.Comment, error)
	GetCommentByID(ctx context.Context, id string) (*models.Comment, error)
	ListCommentsByTask(ctx context.Context, taskID string) ([]models.Comment, error)
	UpdateComment(ctx context.Context, id, content string) (*models.Comment, error)
	DeleteComment(ctx context.Context, id string) error
}

// ActivityRepository defines operations on the append-only activity log
type ActivityRepository interface {
	CreateActivity(ctx context.Context, userID string, in models.ActivityInput) (*models.Activity, error)
	ListActivitiesByBoard(ctx context.Context, boardID string) ([]models.Activity, error)
}
