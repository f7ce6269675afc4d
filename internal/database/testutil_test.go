package database

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates a migrated in-memory database closed at test cleanup
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupRepo returns a Repository over a fresh in-memory database
func setupRepo(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(setupTestDB(t))
}

// ============================================================================
// FIXTURES
// ============================================================================

func createTestUser(t *testing.T, repo *Repository, username string) *models.User {
	t.Helper()
	user, err := repo.CreateUser(context.Background(), username, username+"@example.com", "hash-"+username)
	require.NoError(t, err)
	return user
}

func createTestBoard(t *testing.T, repo *Repository, ownerID, name string, members ...string) *models.Board {
	t.Helper()
	board, err := repo.CreateBoard(context.Background(), ownerID, models.BoardInput{
		Name:    name,
		Members: members,
	})
	require.NoError(t, err)
	return board
}

func createTestTask(t *testing.T, repo *Repository, userID, boardID, title string) *models.Task {
	t.Helper()
	task, err := repo.CreateTask(context.Background(), userID, models.TaskInput{
		BoardID:  boardID,
		Title:    title,
		Status:   models.StatusTodo,
		Priority: models.PriorityMedium,
	})
	require.NoError(t, err)
	return task
}
