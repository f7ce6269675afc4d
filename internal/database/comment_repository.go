package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// CommentRepo handles all comment-related database operations.
type CommentRepo struct {
	db *sqlx.DB
}

type commentRow struct {
	ID        string `db:"id"`
	TaskID    string `db:"task_id"`
	UserID    string `db:"user_id"`
	Content   string `db:"content"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

func (r commentRow) toModel() models.Comment {
	return models.Comment{
		ID:        r.ID,
		TaskID:    r.TaskID,
		UserID:    r.UserID,
		Content:   r.Content,
		CreatedAt: parseTime(r.CreatedAt),
		UpdatedAt: parseTime(r.UpdatedAt),
	}
}

const commentColumns = `id, task_id, user_id, content, created_at, updated_at`

// CreateComment inserts a comment by userID on a task
func (r *CommentRepo) CreateComment(ctx context.Context, userID string, in models.CommentInput) (*models.Comment, error) {
	ts := formatTime(now())
	row := commentRow{
		ID:        uuid.NewString(),
		TaskID:    in.TaskID,
		UserID:    userID,
		Content:   in.Content,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if _, err := r.db.NamedExecContext(ctx,
		`INSERT INTO comments (`+commentColumns+`)
		 VALUES (:id, :task_id, :user_id, :content, :created_at, :updated_at)`,
		row,
	); err != nil {
		return nil, fmt.Errorf("failed to insert comment on task %s: %w", in.TaskID, err)
	}
	comment := row.toModel()
	return &comment, nil
}

// GetCommentByID retrieves a comment by id
func (r *CommentRepo) GetCommentByID(ctx context.Context, id string) (*models.Comment, error) {
	var row commentRow
	if err := r.db.GetContext(ctx, &row, `SELECT `+commentColumns+` FROM comments WHERE id = ?`, id); err != nil {
		return nil, notFound(err, "comment", id)
	}
	comment := row.toModel()
	return &comment, nil
}

// ListCommentsByTask retrieves a task's comments, oldest first
func (r *CommentRepo) ListCommentsByTask(ctx context.Context, taskID string) ([]models.Comment, error) {
	var rows []commentRow
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT `+commentColumns+` FROM comments WHERE task_id = ? ORDER BY created_at, id`,
		taskID,
	); err != nil {
		return nil, fmt.Errorf("failed to list comments of task %s: %w", taskID, err)
	}
	comments := make([]models.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, row.toModel())
	}
	return comments, nil
}

// UpdateComment replaces a comment's content
func (r *CommentRepo) UpdateComment(ctx context.Context, id, content string) (*models.Comment, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE comments SET content = ?, updated_at = ? WHERE id = ?`,
		content, formatTime(now()), id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update comment %s: %w", id, err)
	}
	if err := requireAffected(res, "comment", id); err != nil {
		return nil, err
	}
	return r.GetCommentByID(ctx, id)
}

// DeleteComment removes a comment
func (r *CommentRepo) DeleteComment(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment %s: %w", id, err)
	}
	return requireAffected(res, "comment", id)
}
