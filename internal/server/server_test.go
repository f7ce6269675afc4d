package server_test

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskdeck/internal/gateway"
	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/server"
	"github.com/thenoetrevino/taskdeck/internal/testutil"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var reqErr *gateway.RequestError
	require.True(t, errors.As(err, &reqErr), "expected RequestError, got %v", err)
	return reqErr.Status
}

// ============================================================================
// AUTH
// ============================================================================

func TestAuth_RegisterLoginMe(t *testing.T) {
	ts := testutil.NewServer(t)
	ctx := context.Background()

	_, user := ts.Register(t, "alice")
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, models.RoleMember, user.Role)

	resp, err := ts.Client().Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: testutil.TestPassword})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	me, err := ts.Client().WithToken(resp.Token).Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, me.ID)
}

func TestAuth_LoginWrongPassword(t *testing.T) {
	ts := testutil.NewServer(t)
	ts.Register(t, "alice")

	_, err := ts.Client().Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "nope-nope"})
	require.Error(t, err)
	assert.ErrorIs(t, err, gateway.ErrUnauthorized)
	assert.Equal(t, "Invalid email or password", err.Error())
}

func TestAuth_RegisterValidationAndConflict(t *testing.T) {
	ts := testutil.NewServer(t)
	ctx := context.Background()
	ts.Register(t, "alice")

	_, err := ts.Client().Register(ctx, models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret1"})
	assert.Equal(t, http.StatusConflict, statusOf(t, err))
	assert.Equal(t, "User already exists", err.Error())

	_, err = ts.Client().Register(ctx, models.RegisterRequest{Username: "bob", Email: "bob@example.com", Password: "abc"})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

	_, err = ts.Client().Register(ctx, models.RegisterRequest{Username: "bob", Email: "not-an-email", Password: "secret1"})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestAuth_ProtectedRoutesRequireToken(t *testing.T) {
	ts := testutil.NewServer(t)

	_, err := ts.Client().ListBoards(context.Background())
	assert.ErrorIs(t, err, gateway.ErrUnauthorized)

	_, err = ts.Client().WithToken("garbage").Me(context.Background())
	assert.ErrorIs(t, err, gateway.ErrUnauthorized)
}

func TestAuth_ExpiredToken(t *testing.T) {
	start := time.Now()
	var skew atomic.Int64
	ts := testutil.NewServer(t,
		server.WithTokenTTL(time.Minute),
		server.WithClock(func() time.Time { return start.Add(time.Duration(skew.Load())) }),
	)
	client, _ := ts.Register(t, "alice")

	skew.Store(int64(2 * time.Minute))
	_, err := client.Me(context.Background())
	assert.ErrorIs(t, err, gateway.ErrUnauthorized)
}

func TestAuth_ChangePassword(t *testing.T) {
	ts := testutil.NewServer(t)
	ctx := context.Background()
	client, _ := ts.Register(t, "alice")

	err := client.ChangePassword(ctx, models.ChangePasswordRequest{CurrentPassword: "wrong-one", NewPassword: "brand-new"})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	assert.Equal(t, "Current password is incorrect", err.Error())

	require.NoError(t, client.ChangePassword(ctx, models.ChangePasswordRequest{
		CurrentPassword: testutil.TestPassword,
		NewPassword:     "brand-new",
	}))

	_, err = ts.Client().Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: testutil.TestPassword})
	assert.ErrorIs(t, err, gateway.ErrUnauthorized)
	_, err = ts.Client().Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: "brand-new"})
	assert.NoError(t, err)
}

func TestUsers_UpdateProfileAndList(t *testing.T) {
	ts := testutil.NewServer(t)
	ctx := context.Background()
	alice, _ := ts.Register(t, "alice")
	_, bob := ts.Register(t, "bob")

	updated, err := alice.UpdateProfile(ctx, models.ProfileUpdate{Username: "alicia", Email: "alicia@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "alicia", updated.Username)

	_, err = alice.UpdateProfile(ctx, models.ProfileUpdate{Username: "bob", Email: "alicia@example.com"})
	assert.Equal(t, http.StatusConflict, statusOf(t, err))

	users, err := alice.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	got, err := alice.GetUser(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)

	_, err = alice.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, gateway.ErrNotFound)
}

// ============================================================================
// BOARDS
// ============================================================================

func TestBoards_MembershipRules(t *testing.T) {
	ts := testutil.NewServer(t)
	ctx := context.Background()
	owner, _ := ts.Register(t, "owner")
	member, memberUser := ts.Register(t, "member")
	stranger, _ := ts.Register(t, "stranger")

	board, err := owner.CreateBoard(ctx, models.BoardInput{Name: "Shared", Members: []string{memberUser.ID}})
	require.NoError(t, err)

	got, err := member.GetBoard(ctx, board.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shared", got.Name)

	listed, err := member.ListBoards(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	_, err = stranger.GetBoard(ctx, board.ID)
	assert.ErrorIs(t, err, gateway.ErrForbidden)

	_, err = member.UpdateBoard(ctx, board.ID, models.BoardUpdate{Name: models.Ptr("Hijacked")})
	assert.ErrorIs(t, err, gateway.ErrForbidden)
	assert.ErrorIs(t, member.DeleteBoard(ctx, board.ID), gateway.ErrForbidden)

	updated, err := owner.UpdateBoard(ctx, board.ID, models.BoardUpdate{Description: models.Ptr("notes")})
	require.NoError(t, err)
	assert.Equal(t, "Shared", updated.Name)
	assert.Equal(t, "notes", updated.Description)
}

func TestBoards_Validation(t *testing.T) {
	ts := testutil.NewServer(t)
	client, _ := ts.Register(t, "owner")

	_, err := client.CreateBoard(context.Background(), models.BoardInput{Name: "  "})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	assert.Equal(t, "Board name is required", err.Error())

	_, err = client.GetBoard(context.Background(), "missing")
	assert.ErrorIs(t, err, gateway.ErrNotFound)
}

// Deleting a board removes it from the board list along with its tasks
// and their comments.
func TestBoards_DeleteCascadesThroughAPI(t *testing.T) {
	ts := testutil.NewServer(t)
	ctx := context.Background()
	client, _ := ts.Register(t, "owner")

	board, err := client.CreateBoard(ctx, models.BoardInput{Name: "Doomed"})
	require.NoError(t, err)
	kept, err := client.CreateBoard(ctx, models.BoardInput{Name: "Kept"})
	require.NoError(t, err)
	task, err := client.CreateTask(ctx, models.TaskInput{BoardID: board.ID, Title: "Task"})
	require.NoError(t, err)
	_, err = client.CreateComment(ctx, models.CommentInput{TaskID: task.ID, Content: "note"})
	require.NoError(t, err)

	require.NoError(t, client.DeleteBoard(ctx, board.ID))

	boards, err := client.ListBoards(ctx)
	require.NoError(t, err)
	require.Len(t, boards, 1)
	assert.Equal(t, kept.ID, boards[0].ID)

	_, err = client.GetBoard(ctx, board.ID)
	assert.ErrorIs(t, err, gateway.ErrNotFound)
	_, err = client.ListTasks(ctx, board.ID)
	assert.ErrorIs(t, err, gateway.ErrNotFound)
	_, err = client.ListComments(ctx, task.ID)
	assert.ErrorIs(t, err, gateway.ErrNotFound)

	tasks, err := ts.Store.ListTasksByBoard(ctx, board.ID)
	require.NoError(t, err)
	assert.Empty(t, tasks)
	comments, err := ts.Store.ListCommentsByTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

// ============================================================================
// TASKS
// ============================================================================

func TestTasks_CreateDefaultsAndUpdate(t *testing.T) {
	ts := testutil.NewServer(t)
	ctx := context.Background()
	client, user := ts.Register(t, "owner")
	board, err := client.CreateBoard(ctx, models.BoardInput{Name: "Board"})
	require.NoError(t, err)

	task, err := client.CreateTask(ctx, models.TaskInput{BoardID: board.ID, Title: "Write tests"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusTodo, task.Status)
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.Equal(t, user.ID, task.UserID)

	status := models.StatusInProgress
	updated, err := client.UpdateTask(ctx, task.ID, models.TaskUpdate{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, updated.Status)
	assert.Equal(t, "Write tests", updated.Title)
	assert.Equal(t, board.ID, updated.BoardID)

	tasks, err := client.ListTasks(ctx, board.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, models.StatusInProgress, tasks[0].Status)
}

func TestTasks_RejectsInvalidFields(t *testing.T) {
	ts := testutil.NewServer(t)
	ctx := context.Background()
	client, _ := ts.Register(t, "owner")
	board, err := client.CreateBoard(ctx, models.BoardInput{Name: "Board"})
	require.NoError(t, err)

	_, err = client.CreateTask(ctx, models.TaskInput{BoardID: board.ID, Title: "x", Status: "blocked"})
	assert.Equal(t, "Invalid status", err.Error())

	_, err = client.CreateTask(ctx, models.TaskInput{BoardID: board.ID, Title: "x", DueDate: "31/01/2026"})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

	task, err := client.CreateTask(ctx, models.TaskInput{BoardID: board.ID, Title: "x"})
	require.NoError(t, err)
	bad := models.Priority("urgent")
	_, err = client.UpdateTask(ctx, task.ID, models.TaskUpdate{Priority: &bad})
	assert.Equal(t, "Invalid priority", err.Error())

	_, err = client.CreateTask(ctx, models.TaskInput{BoardID: "missing", Title: "x"})
	assert.ErrorIs(t, err, gateway.ErrNotFound)
}

func TestTasks_AssignAndUnassign(t *testing.T) {
	ts := testutil.NewServer(t)
	ctx := context.Background()
	client, user := ts.Register(t, "owner")
	board, err := client.CreateBoard(ctx, models.BoardInput{Name: "Board"})
	require.NoError(t, err)
	task, err := client.CreateTask(ctx, models.TaskInput{BoardID: board.ID, Title: "Task"})
	require.NoError(t, err)

	assigned, err := client.AssignTask(ctx, task.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, assigned.AssignedTo)

	_, err = client.AssignTask(ctx, task.ID, "ghost")
	assert.ErrorIs(t, err, gateway.ErrNotFound)

	cleared, err := client.AssignTask(ctx, task.ID, "")
	require.NoError(t, err)
	assert.Empty(t, cleared.AssignedTo)
}

func TestTasks_StrangerCannotTouch(t *testing.T) {
	ts := testutil.NewServer(t)
	ctx := context.Background()
	owner, _ := ts.Register(t, "owner")
	stranger, _ := ts.Register(t, "stranger")
	board, err := owner.CreateBoard(ctx, models.BoardInput{Name: "Private"})
	require.NoError(t, err)
	task, err := owner.CreateTask(ctx, models.TaskInput{BoardID: board.ID, Title: "Secret"})
	require.NoError(t, err)

	_, err = stranger.ListTasks(ctx, board.ID)
	assert.ErrorIs(t, err, gateway.ErrForbidden)
	assert.ErrorIs(t, stranger.DeleteTask(ctx, task.ID), gateway.ErrForbidden)
	_, err = stranger.CreateTask(ctx, models.TaskInput{BoardID: board.ID, Title: "Sneaky"})
	assert.ErrorIs(t, err, gateway.ErrForbidden)
}

// ============================================================================
// COMMENTS AND ACTIVITIES
// ============================================================================

func TestComments_AuthorOnlyEdits(t *testing.T) {
	ts := testutil.NewServer(t)
	ctx := context.Background()
	owner, _ := ts.Register(t, "owner")
	member, memberUser := ts.Register(t, "member")
	board, err := owner.CreateBoard(ctx, models.BoardInput{Name: "Shared", Members: []string{memberUser.ID}})
	require.NoError(t, err)
	task, err := owner.CreateTask(ctx, models.TaskInput{BoardID: board.ID, Title: "Task"})
	require.NoError(t, err)

	comment, err := member.CreateComment(ctx, models.CommentInput{TaskID: task.ID, Content: "looks good"})
	require.NoError(t, err)
	assert.Equal(t, memberUser.ID, comment.UserID)

	_, err = owner.UpdateComment(ctx, comment.ID, models.CommentUpdate{Content: "edited by owner"})
	assert.ErrorIs(t, err, gateway.ErrForbidden)

	edited, err := member.UpdateComment(ctx, comment.ID, models.CommentUpdate{Content: "looks great"})
	require.NoError(t, err)
	assert.Equal(t, "looks great", edited.Content)

	comments, err := owner.ListComments(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)

	_, err = member.CreateComment(ctx, models.CommentInput{TaskID: task.ID, Content: "   "})
	assert.Equal(t, "Comment content is required", err.Error())

	require.NoError(t, member.DeleteComment(ctx, comment.ID))
	assert.ErrorIs(t, member.DeleteComment(ctx, comment.ID), gateway.ErrNotFound)
}

func TestActivities_AppendAndList(t *testing.T) {
	ts := testutil.NewServer(t)
	ctx := context.Background()
	client, user := ts.Register(t, "owner")
	board, err := client.CreateBoard(ctx, models.BoardInput{Name: "Board"})
	require.NoError(t, err)

	activity, err := client.CreateActivity(ctx, models.ActivityInput{
		BoardID: board.ID,
		Action:  models.ActionCreated,
		Details: `Created board "Board"`,
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, activity.UserID)

	_, err = client.CreateActivity(ctx, models.ActivityInput{BoardID: board.ID, Action: "exploded"})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

	activities, err := client.ListActivities(ctx, board.ID)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, `Created board "Board"`, activities[0].Details)
}
