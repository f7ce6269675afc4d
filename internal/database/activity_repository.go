package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// ActivityRepo appends to and reads the activity log. Entries are never updated.
type ActivityRepo struct {
	db *sqlx.DB
}

type activityRow struct {
	ID        string `db:"id"`
	UserID    string `db:"user_id"`
	BoardID   string `db:"board_id"`
	TaskID    string `db:"task_id"`
	Action    string `db:"action"`
	Details   string `db:"details"`
	CreatedAt string `db:"created_at"`
}

func (r activityRow) toModel() models.Activity {
	return models.Activity{
		ID:        r.ID,
		UserID:    r.UserID,
		BoardID:   r.BoardID,
		TaskID:    r.TaskID,
		Action:    models.Action(r.Action),
		Details:   r.Details,
		CreatedAt: parseTime(r.CreatedAt),
	}
}

const activityColumns = `id, user_id, board_id, task_id, action, details, created_at`

// CreateActivity appends an entry recorded by userID
func (r *ActivityRepo) CreateActivity(ctx context.Context, userID string, in models.ActivityInput) (*models.Activity, error) {
	row := activityRow{
		ID:        uuid.NewString(),
		UserID:    userID,
		BoardID:   in.BoardID,
		TaskID:    in.TaskID,
		Action:    string(in.Action),
		Details:   in.Details,
		CreatedAt: formatTime(now()),
	}
	if _, err := r.db.NamedExecContext(ctx,
		`INSERT INTO activities (`+activityColumns+`)
		 VALUES (:id, :user_id, :board_id, :task_id, :action, :details, :created_at)`,
		row,
	); err != nil {
		return nil, fmt.Errorf("failed to insert activity for board %s: %w", in.BoardID, err)
	}
	activity := row.toModel()
	return &activity, nil
}

// ListActivitiesByBoard retrieves a board's activity log, newest first
func (r *ActivityRepo) ListActivitiesByBoard(ctx context.Context, boardID string) ([]models.Activity, error) {
	var rows []activityRow
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT `+activityColumns+` FROM activities WHERE board_id = ? ORDER BY created_at DESC, id`,
		boardID,
	); err != nil {
		return nil, fmt.Errorf("failed to list activities of board %s: %w", boardID, err)
	}
	activities := make([]models.Activity, 0, len(rows))
	for _, row := range rows {
		activities = append(activities, row.toModel())
	}
	return activities, nil
}
