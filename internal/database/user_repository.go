package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// UserRepo handles all user-related database operations.
type UserRepo struct {
	db *sqlx.DB
}

type userRow struct {
	ID           string `db:"id"`
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	Avatar       string `db:"avatar"`
	Role         string `db:"role"`
	CreatedAt    string `db:"created_at"`
}

func (r userRow) toModel() *models.User {
	return &models.User{
		ID:        r.ID,
		Username:  r.Username,
		Email:     r.Email,
		Avatar:    r.Avatar,
		Role:      models.Role(r.Role),
		CreatedAt: parseTime(r.CreatedAt),
	}
}

const userColumns = `id, username, email, password_hash, avatar, role, created_at`

// CreateUser inserts a member account. passwordHash must already be hashed.
func (r *UserRepo) CreateUser(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	row := userRow{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         string(models.RoleMember),
		CreatedAt:    formatTime(now()),
	}
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES (:id, :username, :email, :password_hash, :avatar, :role, :created_at)`,
		row,
	)
	if isUniqueViolation(err) {
		return nil, fmt.Errorf("user %q: %w", username, ErrConflict)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert user %q: %w", username, err)
	}
	return row.toModel(), nil
}

// GetUserByID retrieves a user by id
func (r *UserRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	if err != nil {
		return nil, notFound(err, "user", id)
	}
	return row.toModel(), nil
}

// GetCredentials retrieves a user and their password hash by email
func (r *UserRepo) GetCredentials(ctx context.Context, email string) (*models.User, string, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	if err != nil {
		return nil, "", notFound(err, "user", email)
	}
	return row.toModel(), row.PasswordHash, nil
}

// GetPasswordHash returns the stored hash for a user id
func (r *UserRepo) GetPasswordHash(ctx context.Context, id string) (string, error) {
	var hash string
	err := r.db.GetContext(ctx, &hash, `SELECT password_hash FROM users WHERE id = ?`, id)
	if err != nil {
		return "", notFound(err, "user", id)
	}
	return hash, nil
}

// ListUsers retrieves every user ordered by username
func (r *UserRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+userColumns+` FROM users ORDER BY username`); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	users := make([]models.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, *row.toModel())
	}
	return users, nil
}

// UpdateProfile changes a user's username and email
func (r *UserRepo) UpdateProfile(ctx context.Context, id, username, email string) (*models.User, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET username = ?, email = ? WHERE id = ?`,
		username, email, id,
	)
	if isUniqueViolation(err) {
		return nil, fmt.Errorf("user %q: %w", username, ErrConflict)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", id, err)
	}
	if err := requireAffected(res, "user", id); err != nil {
		return nil, err
	}
	return r.GetUserByID(ctx, id)
}

// UpdatePasswordHash replaces a user's password hash
func (r *UserRepo) UpdatePasswordHash(ctx context.Context, id, passwordHash string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET password_hash = ? WHERE id = ?`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password for user %s: %w", id, err)
	}
	return requireAffected(res, "user", id)
}
