// Package cli runs taskdeck commands against an in-process reference server.
package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskdeck/internal/app"
	"github.com/thenoetrevino/taskdeck/internal/audit"
	clipkg "github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/config"
	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/testutil"
)

// SetupCLITest starts a reference server and returns it with a signed-out
// App pointed at it. The session file lives in a temp dir.
func SetupCLITest(t *testing.T) (*testutil.TestServer, *app.App) {
	t.Helper()

	ts := testutil.NewServer(t)

	cfg := config.Default()
	cfg.APIURL = ts.URL

	testApp, err := app.New(cfg,
		app.WithSessionStore(config.NewSessionStore(t.TempDir())),
		app.WithAuditOptions(audit.WithQueueSize(64)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testApp.Close(context.Background()) })

	return ts, testApp
}

// SignIn registers username on ts and starts a session for it in testApp
func SignIn(t *testing.T, ts *testutil.TestServer, testApp *app.App, username string) *models.User {
	t.Helper()

	resp, err := ts.Client().Register(context.Background(), models.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: testutil.TestPassword,
	})
	require.NoError(t, err)
	require.NoError(t, testApp.StartSession(resp))
	return &resp.User
}

// ExecuteCLICommand runs cmd with args against testApp and returns its
// combined stdout and stderr
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	cmd.SetContext(clipkg.WithApp(context.Background(), testApp))
	return testutil.ExecuteCommand(t, cmd, args...)
}

// Flush waits for queued activity entries to reach the server
func Flush(t *testing.T, testApp *app.App) {
	t.Helper()
	require.NoError(t, testApp.Close(context.Background()))
}
