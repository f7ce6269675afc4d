package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// TaskRepo handles all task-related database operations.
type TaskRepo struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          string `db:"id"`
	BoardID     string `db:"board_id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	Status      string `db:"status"`
	Priority    string `db:"priority"`
	DueDate     string `db:"due_date"`
	UserID      string `db:"user_id"`
	AssignedTo  string `db:"assigned_to"`
	Tags        string `db:"tags"`
	Attachments string `db:"attachments"`
	CreatedAt   string `db:"created_at"`
	UpdatedAt   string `db:"updated_at"`
}

func (r taskRow) toModel() models.Task {
	return models.Task{
		ID:          r.ID,
		BoardID:     r.BoardID,
		Title:       r.Title,
		Description: r.Description,
		Status:      models.Status(r.Status),
		Priority:    models.Priority(r.Priority),
		DueDate:     r.DueDate,
		UserID:      r.UserID,
		AssignedTo:  r.AssignedTo,
		Tags:        decodeList(r.Tags),
		Attachments: decodeList(r.Attachments),
		CreatedAt:   parseTime(r.CreatedAt),
		UpdatedAt:   parseTime(r.UpdatedAt),
	}
}

const taskColumns = `id, board_id, title, description, status, priority, due_date,
	user_id, assigned_to, tags, attachments, created_at, updated_at`

// CreateTask inserts a task created by userID. Status and priority must already be valid.
func (r *TaskRepo) CreateTask(ctx context.Context, userID string, in models.TaskInput) (*models.Task, error) {
	tags, err := encodeList(in.Tags)
	if err != nil {
		return nil, err
	}
	attachments, err := encodeList(in.Attachments)
	if err != nil {
		return nil, err
	}

	ts := formatTime(now())
	row := taskRow{
		ID:          uuid.NewString(),
		BoardID:     in.BoardID,
		Title:       in.Title,
		Description: in.Description,
		Status:      string(in.Status),
		Priority:    string(in.Priority),
		DueDate:     in.DueDate,
		UserID:      userID,
		AssignedTo:  in.AssignedTo,
		Tags:        tags,
		Attachments: attachments,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	if _, err := r.db.NamedExecContext(ctx,
		`INSERT INTO tasks (`+taskColumns+`)
		 VALUES (:id, :board_id, :title, :description, :status, :priority, :due_date,
		         :user_id, :assigned_to, :tags, :attachments, :created_at, :updated_at)`,
		row,
	); err != nil {
		return nil, fmt.Errorf("failed to insert task %q: %w", in.Title, err)
	}

	task := row.toModel()
	return &task, nil
}

// GetTaskByID retrieves a task by id
func (r *TaskRepo) GetTaskByID(ctx context.Context, id string) (*models.Task, error) {
	row, err := getTaskRow(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	task := row.toModel()
	return &task, nil
}

// ListTasksByBoard retrieves a board's tasks, oldest first
func (r *TaskRepo) ListTasksByBoard(ctx context.Context, boardID string) ([]models.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT `+taskColumns+` FROM tasks WHERE board_id = ? ORDER BY created_at, id`,
		boardID,
	); err != nil {
		return nil, fmt.Errorf("failed to list tasks of board %s: %w", boardID, err)
	}
	tasks := make([]models.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, row.toModel())
	}
	return tasks, nil
}

// UpdateTask applies a partial update; nil fields are left unchanged.
// The owning board never changes.
func (r *TaskRepo) UpdateTask(ctx context.Context, id string, upd models.TaskUpdate) (*models.Task, error) {
	var updated taskRow
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		row, err := getTaskRow(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := applyTaskUpdate(&row, upd); err != nil {
			return err
		}
		row.UpdatedAt = formatTime(now())
		if _, err := tx.NamedExecContext(ctx,
			`UPDATE tasks SET title = :title, description = :description, status = :status,
			        priority = :priority, due_date = :due_date, tags = :tags,
			        attachments = :attachments, updated_at = :updated_at
			 WHERE id = :id`,
			row,
		); err != nil {
			return fmt.Errorf("failed to update task %s: %w", id, err)
		}
		updated = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	task := updated.toModel()
	return &task, nil
}

// AssignTask sets the assignee of a task. An empty userID unassigns it.
func (r *TaskRepo) AssignTask(ctx context.Context, id, userID string) (*models.Task, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET assigned_to = ?, updated_at = ? WHERE id = ?`,
		userID, formatTime(now()), id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to assign task %s: %w", id, err)
	}
	if err := requireAffected(res, "task", id); err != nil {
		return nil, err
	}
	return r.GetTaskByID(ctx, id)
}

// DeleteTask removes a task and its comments
func (r *TaskRepo) DeleteTask(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task %s: %w", id, err)
	}
	return requireAffected(res, "task", id)
}

func getTaskRow(ctx context.Context, q sqlx.QueryerContext, id string) (taskRow, error) {
	var row taskRow
	if err := sqlx.GetContext(ctx, q, &row, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id); err != nil {
		return taskRow{}, notFound(err, "task", id)
	}
	return row, nil
}

func applyTaskUpdate(row *taskRow, upd models.TaskUpdate) error {
	if upd.Title != nil {
		row.Title = *upd.Title
	}
	if upd.Description != nil {
		row.Description = *upd.Description
	}
	if upd.Status != nil {
		row.Status = string(*upd.Status)
	}
	if upd.Priority != nil {
		row.Priority = string(*upd.Priority)
	}
	if upd.DueDate != nil {
		row.DueDate = *upd.DueDate
	}
	if upd.Tags != nil {
		tags, err := encodeList(*upd.Tags)
		if err != nil {
			return err
		}
		row.Tags = tags
	}
	if upd.Attachments != nil {
		attachments, err := encodeList(*upd.Attachments)
		if err != nil {
			return err
		}
		row.Attachments = attachments
	}
	return nil
}
