package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskdeck/internal/config"
	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/notify"
	"github.com/thenoetrevino/taskdeck/internal/services/task"
	"github.com/thenoetrevino/taskdeck/internal/testutil"
)

func newTestApp(t *testing.T, url string, store *config.SessionStore, opts ...Option) *App {
	t.Helper()
	cfg := config.Default()
	cfg.APIURL = url

	opts = append([]Option{WithSessionStore(store)}, opts...)
	a, err := New(cfg, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(context.Background()) })
	return a
}

func TestNew_WithoutSession(t *testing.T) {
	ts := testutil.NewServer(t)
	a := newTestApp(t, ts.URL, config.NewSessionStore(t.TempDir()))

	assert.False(t, a.SignedIn())
	_, err := a.Session()
	assert.ErrorIs(t, err, config.ErrNoSession)
	assert.Empty(t, a.API().Token())
	assert.NotNil(t, a.BoardService)
	assert.NotNil(t, a.TaskService)
	assert.NotNil(t, a.CommentService)
	assert.NotNil(t, a.AccountService)
}

func TestStartSession_PersistsAndReloads(t *testing.T) {
	ts := testutil.NewServer(t)
	store := config.NewSessionStore(t.TempDir())
	ctx := context.Background()

	a := newTestApp(t, ts.URL, store)
	resp, err := a.AccountService.Login(ctx, "nobody@example.com", "whatever")
	require.Error(t, err)
	assert.Nil(t, resp)

	_, user := ts.Register(t, "alice")
	resp, err = a.AccountService.Login(ctx, user.Email, testutil.TestPassword)
	require.NoError(t, err)
	require.NoError(t, a.StartSession(resp))

	assert.True(t, a.SignedIn())
	me, err := a.AccountService.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, me.ID)

	again := newTestApp(t, ts.URL, store)
	require.True(t, again.SignedIn())
	session, err := again.Session()
	require.NoError(t, err)
	assert.Equal(t, "alice", session.User.Username)
	assert.Equal(t, resp.Token, again.API().Token())
}

func TestNew_IgnoresSessionForOtherBackend(t *testing.T) {
	store := config.NewSessionStore(t.TempDir())
	require.NoError(t, store.Save(&config.Session{APIURL: "http://elsewhere:9000", Token: "tok"}))

	a := newTestApp(t, "http://localhost:5000", store)
	assert.False(t, a.SignedIn())
	assert.Empty(t, a.API().Token())
}

func TestEndSession(t *testing.T) {
	ts := testutil.NewServer(t)
	store := config.NewSessionStore(t.TempDir())
	a := newTestApp(t, ts.URL, store)

	_, user := ts.Register(t, "alice")
	resp, err := a.AccountService.Login(context.Background(), user.Email, testutil.TestPassword)
	require.NoError(t, err)
	require.NoError(t, a.StartSession(resp))

	require.NoError(t, a.EndSession())
	assert.False(t, a.SignedIn())
	_, err = store.Load()
	assert.ErrorIs(t, err, config.ErrNoSession)

	_, err = a.BoardService.List(context.Background())
	assert.Error(t, err)
}

func TestUpdateSessionUser(t *testing.T) {
	ts := testutil.NewServer(t)
	store := config.NewSessionStore(t.TempDir())
	a := newTestApp(t, ts.URL, store)

	_, user := ts.Register(t, "alice")
	resp, err := a.AccountService.Login(context.Background(), user.Email, testutil.TestPassword)
	require.NoError(t, err)
	require.NoError(t, a.StartSession(resp))

	renamed := resp.User
	renamed.Username = "alicia"
	a.UpdateSessionUser(&renamed)

	session, err := a.Session()
	require.NoError(t, err)
	assert.Equal(t, "alicia", session.User.Username)

	saved, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "alicia", saved.User.Username)
}

func TestTaskMutationsReachActivityLog(t *testing.T) {
	ts := testutil.NewServer(t)
	ctx := context.Background()
	center := notify.NewCenter()
	a := newTestApp(t, ts.URL, config.NewSessionStore(t.TempDir()), WithNotifier(center))

	_, user := ts.Register(t, "alice")
	resp, err := a.AccountService.Login(ctx, user.Email, testutil.TestPassword)
	require.NoError(t, err)
	require.NoError(t, a.StartSession(resp))

	b, err := a.API().CreateBoard(ctx, models.BoardInput{Name: "Board"})
	require.NoError(t, err)
	created, err := a.TaskService.Create(ctx, task.CreateTaskRequest{BoardID: b.ID, Title: "Ship it"})
	require.NoError(t, err)

	outcome := a.Engine(nil).Move(ctx, *created, models.StatusDone)
	assert.Equal(t, "moved", outcome.String())

	// Close drains the queue, so every entry is written by now
	require.NoError(t, a.Close(ctx))

	activities, err := a.API().ListActivities(ctx, b.ID)
	require.NoError(t, err)
	var actions []models.Action
	for _, act := range activities {
		actions = append(actions, act.Action)
	}
	assert.ElementsMatch(t, []models.Action{models.ActionCreated, models.ActionStatusChanged}, actions)

	notes := center.All()
	require.NotEmpty(t, notes)
	assert.Equal(t, "Task moved to Done", notes[len(notes)-1].Message)
}
