package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// ============================================================================
// USERS
// ============================================================================

func TestUserRepo_CreateAndLookup(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	user := createTestUser(t, repo, "alice")
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.RoleMember, user.Role)
	assert.False(t, user.CreatedAt.IsZero())

	got, err := repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)

	byEmail, hash, err := repo.GetCredentials(ctx, "ALICE@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "hash-alice", hash)
}

func TestUserRepo_DuplicateEmailConflicts(t *testing.T) {
	repo := setupRepo(t)
	createTestUser(t, repo, "alice")

	_, err := repo.CreateUser(context.Background(), "alice2", "alice@example.com", "x")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = repo.CreateUser(context.Background(), "alice", "other@example.com", "x")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUserRepo_NotFound(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.GetUserByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, _, err = repo.GetCredentials(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.UpdatePasswordHash(ctx, "missing", "h"), ErrNotFound)
}

func TestUserRepo_UpdateProfileAndPassword(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	user := createTestUser(t, repo, "alice")
	bob := createTestUser(t, repo, "bob")

	updated, err := repo.UpdateProfile(ctx, user.ID, "alicia", "alicia@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alicia", updated.Username)
	assert.Equal(t, "alicia@example.com", updated.Email)

	_, err = repo.UpdateProfile(ctx, user.ID, bob.Username, "alicia@example.com")
	assert.ErrorIs(t, err, ErrConflict)

	require.NoError(t, repo.UpdatePasswordHash(ctx, user.ID, "new-hash"))
	hash, err := repo.GetPasswordHash(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", hash)
}

func TestUserRepo_ListUsersOrdered(t *testing.T) {
	repo := setupRepo(t)
	createTestUser(t, repo, "carol")
	createTestUser(t, repo, "alice")
	createTestUser(t, repo, "bob")

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, []string{"alice", "bob", "carol"}, []string{users[0].Username, users[1].Username, users[2].Username})
}

// ============================================================================
// BOARDS
// ============================================================================

func TestBoardRepo_MembersPreservedInOrder(t *testing.T) {
	repo := setupRepo(t)
	owner := createTestUser(t, repo, "owner")

	board := createTestBoard(t, repo, owner.ID, "Roadmap", "u2", "u1", "u2", "")
	assert.Equal(t, []string{"u2", "u1"}, board.Members)

	got, err := repo.GetBoardByID(context.Background(), board.ID)
	require.NoError(t, err)
	assert.Equal(t, "Roadmap", got.Name)
	assert.Equal(t, owner.ID, got.UserID)
	assert.Equal(t, []string{"u2", "u1"}, got.Members)
}

func TestBoardRepo_ListForUserIncludesMemberships(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	alice := createTestUser(t, repo, "alice")
	bob := createTestUser(t, repo, "bob")

	own := createTestBoard(t, repo, alice.ID, "Alice's")
	shared := createTestBoard(t, repo, bob.ID, "Shared", alice.ID)
	createTestBoard(t, repo, bob.ID, "Private")

	boards, err := repo.ListBoardsForUser(ctx, alice.ID)
	require.NoError(t, err)
	ids := []string{}
	for _, b := range boards {
		ids = append(ids, b.ID)
	}
	assert.ElementsMatch(t, []string{own.ID, shared.ID}, ids)

	none, err := repo.ListBoardsForUser(ctx, "stranger")
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.NotNil(t, none)
}

func TestBoardRepo_PartialUpdate(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	owner := createTestUser(t, repo, "owner")
	board, err := repo.CreateBoard(ctx, owner.ID, models.BoardInput{Name: "Old", Description: "keep", Members: []string{"m1"}})
	require.NoError(t, err)

	updated, err := repo.UpdateBoard(ctx, board.ID, models.BoardUpdate{Name: models.Ptr("New")})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)
	assert.Equal(t, "keep", updated.Description)
	assert.Equal(t, []string{"m1"}, updated.Members)
	assert.False(t, updated.UpdatedAt.Before(board.UpdatedAt))

	updated, err = repo.UpdateBoard(ctx, board.ID, models.BoardUpdate{Members: &[]string{}})
	require.NoError(t, err)
	assert.Empty(t, updated.Members)

	_, err = repo.UpdateBoard(ctx, "missing", models.BoardUpdate{Name: models.Ptr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBoardRepo_DeleteCascades(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	owner := createTestUser(t, repo, "owner")
	board := createTestBoard(t, repo, owner.ID, "Doomed", "m1")
	task := createTestTask(t, repo, owner.ID, board.ID, "Task")
	comment, err := repo.CreateComment(ctx, owner.ID, models.CommentInput{TaskID: task.ID, Content: "hi"})
	require.NoError(t, err)
	_, err = repo.CreateActivity(ctx, owner.ID, models.ActivityInput{BoardID: board.ID, Action: models.ActionCreated})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteBoard(ctx, board.ID))

	_, err = repo.GetBoardByID(ctx, board.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.GetTaskByID(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.GetCommentByID(ctx, comment.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	activities, err := repo.ListActivitiesByBoard(ctx, board.ID)
	require.NoError(t, err)
	assert.Empty(t, activities)

	assert.ErrorIs(t, repo.DeleteBoard(ctx, board.ID), ErrNotFound)
}

// ============================================================================
// TASKS
// ============================================================================

func TestTaskRepo_CreateRoundTrip(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	owner := createTestUser(t, repo, "owner")
	board := createTestBoard(t, repo, owner.ID, "Board")

	created, err := repo.CreateTask(ctx, owner.ID, models.TaskInput{
		BoardID:     board.ID,
		Title:       "Write docs",
		Description: "**bold**",
		Status:      models.StatusInProgress,
		Priority:    models.PriorityHigh,
		DueDate:     "2026-01-31",
		Tags:        []string{"docs", "v2"},
	})
	require.NoError(t, err)

	got, err := repo.GetTaskByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, board.ID, got.BoardID)
	assert.Equal(t, owner.ID, got.UserID)
	assert.Equal(t, models.StatusInProgress, got.Status)
	assert.Equal(t, models.PriorityHigh, got.Priority)
	assert.Equal(t, "2026-01-31", got.DueDate)
	assert.Equal(t, []string{"docs", "v2"}, got.Tags)
	assert.Nil(t, got.Attachments)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
}

func TestTaskRepo_CreateRequiresExistingBoard(t *testing.T) {
	repo := setupRepo(t)
	_, err := repo.CreateTask(context.Background(), "u", models.TaskInput{
		BoardID:  "missing",
		Title:    "Orphan",
		Status:   models.StatusTodo,
		Priority: models.PriorityLow,
	})
	assert.Error(t, err)
}

func TestTaskRepo_ListByBoard(t *testing.T) {
	repo := setupRepo(t)
	owner := createTestUser(t, repo, "owner")
	a := createTestBoard(t, repo, owner.ID, "A")
	b := createTestBoard(t, repo, owner.ID, "B")
	createTestTask(t, repo, owner.ID, a.ID, "one")
	createTestTask(t, repo, owner.ID, a.ID, "two")
	createTestTask(t, repo, owner.ID, b.ID, "other")

	tasks, err := repo.ListTasksByBoard(context.Background(), a.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	for _, task := range tasks {
		assert.Equal(t, a.ID, task.BoardID)
	}
}

func TestTaskRepo_PartialUpdateKeepsUntouchedFields(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	owner := createTestUser(t, repo, "owner")
	board := createTestBoard(t, repo, owner.ID, "Board")
	task := createTestTask(t, repo, owner.ID, board.ID, "Original")

	status := models.StatusDone
	updated, err := repo.UpdateTask(ctx, task.ID, models.TaskUpdate{
		Status: &status,
		Tags:   &[]string{"shipped"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Original", updated.Title)
	assert.Equal(t, models.StatusDone, updated.Status)
	assert.Equal(t, models.PriorityMedium, updated.Priority)
	assert.Equal(t, []string{"shipped"}, updated.Tags)
	assert.Equal(t, board.ID, updated.BoardID)

	_, err = repo.UpdateTask(ctx, "missing", models.TaskUpdate{Title: models.Ptr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepo_AssignAndUnassign(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	owner := createTestUser(t, repo, "owner")
	board := createTestBoard(t, repo, owner.ID, "Board")
	task := createTestTask(t, repo, owner.ID, board.ID, "Task")

	assigned, err := repo.AssignTask(ctx, task.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, assigned.AssignedTo)

	cleared, err := repo.AssignTask(ctx, task.ID, "")
	require.NoError(t, err)
	assert.False(t, cleared.IsAssigned())

	_, err = repo.AssignTask(ctx, "missing", owner.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepo_DeleteRemovesComments(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	owner := createTestUser(t, repo, "owner")
	board := createTestBoard(t, repo, owner.ID, "Board")
	task := createTestTask(t, repo, owner.ID, board.ID, "Task")
	_, err := repo.CreateComment(ctx, owner.ID, models.CommentInput{TaskID: task.ID, Content: "bye"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteTask(ctx, task.ID))

	comments, err := repo.ListCommentsByTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
	assert.ErrorIs(t, repo.DeleteTask(ctx, task.ID), ErrNotFound)
}

// ============================================================================
// COMMENTS AND ACTIVITIES
// ============================================================================

func TestCommentRepo_UpdateContent(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	owner := createTestUser(t, repo, "owner")
	board := createTestBoard(t, repo, owner.ID, "Board")
	task := createTestTask(t, repo, owner.ID, board.ID, "Task")

	comment, err := repo.CreateComment(ctx, owner.ID, models.CommentInput{TaskID: task.ID, Content: "first"})
	require.NoError(t, err)

	updated, err := repo.UpdateComment(ctx, comment.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)
	assert.Equal(t, task.ID, updated.TaskID)

	require.NoError(t, repo.DeleteComment(ctx, comment.ID))
	_, err = repo.UpdateComment(ctx, comment.ID, "again")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActivityRepo_AppendAndList(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	owner := createTestUser(t, repo, "owner")
	board := createTestBoard(t, repo, owner.ID, "Board")
	task := createTestTask(t, repo, owner.ID, board.ID, "Task")

	for _, action := range []models.Action{models.ActionCreated, models.ActionStatusChanged} {
		_, err := repo.CreateActivity(ctx, owner.ID, models.ActivityInput{
			BoardID: board.ID,
			TaskID:  task.ID,
			Action:  action,
			Details: string(action),
		})
		require.NoError(t, err)
	}

	activities, err := repo.ListActivitiesByBoard(ctx, board.ID)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	actions := []models.Action{activities[0].Action, activities[1].Action}
	assert.ElementsMatch(t, []models.Action{models.ActionCreated, models.ActionStatusChanged}, actions)
	assert.Equal(t, owner.ID, activities[0].UserID)
}

// ============================================================================
// PERSISTENCE
// ============================================================================

func TestOpen_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "server.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	user, err := NewRepository(db).CreateUser(ctx, "alice", "alice@example.com", "h")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()
	got, err := NewRepository(db).GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
}
