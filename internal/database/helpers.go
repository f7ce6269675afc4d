package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// timeLayout is the on-disk format of every timestamp column. The fraction
// is fixed width so that text order is chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// withTx executes a function within a database transaction.
// It handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sqlx.DB, fn func(*sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// now returns the current time in UTC
func now() time.Time {
	return time.Now().UTC()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(raw string) time.Time {
	t, err := time.Parse(timeLayout, raw)
	if err != nil {
		slog.Warn("unparseable timestamp in database", "value", raw, "error", err)
		return time.Time{}
	}
	return t
}

// encodeList stores a string slice as a JSON array
func encodeList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	out, err := sonic.ConfigStd.MarshalToString(values)
	if err != nil {
		return "", fmt.Errorf("failed to encode list: %w", err)
	}
	return out, nil
}

// decodeList reads a JSON array written by encodeList. Empty arrays decode to nil.
func decodeList(raw string) []string {
	var values []string
	if raw == "" {
		return nil
	}
	if err := sonic.ConfigStd.UnmarshalFromString(raw, &values); err != nil {
		slog.Warn("unparseable list in database", "value", raw, "error", err)
		return nil
	}
	if len(values) == 0 {
		return nil
	}
	return values
}

// notFound maps sql.ErrNoRows to ErrNotFound and wraps anything else
func notFound(err error, what, id string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", what, id, ErrNotFound)
	}
	return fmt.Errorf("failed to load %s %s: %w", what, id, err)
}

// isUniqueViolation reports whether err is a SQLite UNIQUE or PRIMARY KEY constraint failure
func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	switch sqliteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	}
	return false
}

// requireAffected returns ErrNotFound when an UPDATE or DELETE touched no rows
func requireAffected(res sql.Result, what, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", what, id, ErrNotFound)
	}
	return nil
}
