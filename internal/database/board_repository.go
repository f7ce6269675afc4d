package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// BoardRepo handles all board-related database operations.
type BoardRepo struct {
	db *sqlx.DB
}

type boardRow struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	UserID      string `db:"user_id"`
	CreatedAt   string `db:"created_at"`
	UpdatedAt   string `db:"updated_at"`
}

func (r boardRow) toModel(members []string) models.Board {
	return models.Board{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		UserID:      r.UserID,
		Members:     members,
		CreatedAt:   parseTime(r.CreatedAt),
		UpdatedAt:   parseTime(r.UpdatedAt),
	}
}

type memberRow struct {
	BoardID string `db:"board_id"`
	UserID  string `db:"user_id"`
}

const boardColumns = `id, name, description, user_id, created_at, updated_at`

// CreateBoard inserts a board owned by ownerID together with its member list
func (r *BoardRepo) CreateBoard(ctx context.Context, ownerID string, in models.BoardInput) (*models.Board, error) {
	ts := formatTime(now())
	row := boardRow{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		UserID:      ownerID,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx,
			`INSERT INTO boards (`+boardColumns+`)
			 VALUES (:id, :name, :description, :user_id, :created_at, :updated_at)`,
			row,
		); err != nil {
			return fmt.Errorf("failed to insert board %q: %w", in.Name, err)
		}
		return replaceMembers(ctx, tx, row.ID, in.Members)
	})
	if err != nil {
		return nil, err
	}

	board := row.toModel(dedupe(in.Members))
	return &board, nil
}

// GetBoardByID retrieves a board and its members
func (r *BoardRepo) GetBoardByID(ctx context.Context, id string) (*models.Board, error) {
	var row boardRow
	if err := r.db.GetContext(ctx, &row, `SELECT `+boardColumns+` FROM boards WHERE id = ?`, id); err != nil {
		return nil, notFound(err, "board", id)
	}
	members, err := r.membersOf(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	board := row.toModel(members[id])
	return &board, nil
}

// ListBoardsForUser retrieves the boards userID owns or is a member of, oldest first
func (r *BoardRepo) ListBoardsForUser(ctx context.Context, userID string) ([]models.Board, error) {
	var rows []boardRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+boardColumns+` FROM boards
		 WHERE user_id = ?
		    OR id IN (SELECT board_id FROM board_members WHERE user_id = ?)
		 ORDER BY created_at, id`,
		userID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards for user %s: %w", userID, err)
	}
	if len(rows) == 0 {
		return []models.Board{}, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	members, err := r.membersOf(ctx, ids)
	if err != nil {
		return nil, err
	}

	boards := make([]models.Board, 0, len(rows))
	for _, row := range rows {
		boards = append(boards, row.toModel(members[row.ID]))
	}
	return boards, nil
}

// UpdateBoard applies a partial update; nil fields are left unchanged
func (r *BoardRepo) UpdateBoard(ctx context.Context, id string, upd models.BoardUpdate) (*models.Board, error) {
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var row boardRow
		if err := tx.GetContext(ctx, &row, `SELECT `+boardColumns+` FROM boards WHERE id = ?`, id); err != nil {
			return notFound(err, "board", id)
		}
		if upd.Name != nil {
			row.Name = *upd.Name
		}
		if upd.Description != nil {
			row.Description = *upd.Description
		}
		row.UpdatedAt = formatTime(now())

		if _, err := tx.NamedExecContext(ctx,
			`UPDATE boards SET name = :name, description = :description, updated_at = :updated_at
			 WHERE id = :id`,
			row,
		); err != nil {
			return fmt.Errorf("failed to update board %s: %w", id, err)
		}
		if upd.Members != nil {
			return replaceMembers(ctx, tx, id, *upd.Members)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetBoardByID(ctx, id)
}

// DeleteBoard removes a board. Its members, tasks, comments and activities go with it.
func (r *BoardRepo) DeleteBoard(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM boards WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete board %s: %w", id, err)
	}
	return requireAffected(res, "board", id)
}

// membersOf returns the ordered member ids of each requested board
func (r *BoardRepo) membersOf(ctx context.Context, boardIDs []string) (map[string][]string, error) {
	query, args, err := sqlx.In(
		`SELECT board_id, user_id FROM board_members WHERE board_id IN (?) ORDER BY board_id, position`,
		boardIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build member query: %w", err)
	}

	var rows []memberRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to load board members: %w", err)
	}

	members := make(map[string][]string, len(boardIDs))
	for _, row := range rows {
		members[row.BoardID] = append(members[row.BoardID], row.UserID)
	}
	return members, nil
}

func replaceMembers(ctx context.Context, tx *sqlx.Tx, boardID string, members []string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM board_members WHERE board_id = ?`, boardID); err != nil {
		return fmt.Errorf("failed to clear members of board %s: %w", boardID, err)
	}
	for i, userID := range dedupe(members) {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO board_members (board_id, user_id, position) VALUES (?, ?, ?)`,
			boardID, userID, i,
		); err != nil {
			return fmt.Errorf("failed to add member %s to board %s: %w", userID, boardID, err)
		}
	}
	return nil
}

// dedupe drops blank and repeated ids, keeping first occurrences in order
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	var out []string
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
