package testutil

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/argon2id"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskdeck/internal/database"
	"github.com/thenoetrevino/taskdeck/internal/gateway"
	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/server"
)

// TestPassword is the password every account created by Register uses
const TestPassword = "correct-horse"

// fastHash keeps argon2id cheap enough for tests
var fastHash = &argon2id.Params{
	Memory:      8 * 1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

// TestServer is a reference server over an in-memory database
type TestServer struct {
	URL   string
	Store *database.Repository
}

// NewServer starts a server for the duration of the test
func NewServer(t testing.TB, opts ...server.Option) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := database.NewRepository(db)
	opts = append([]server.Option{server.WithHashParams(fastHash)}, opts...)
	srv := server.New(store, "test-secret", opts...)

	httpServer := httptest.NewServer(srv.Handler())
	t.Cleanup(httpServer.Close)

	return &TestServer{URL: httpServer.URL, Store: store}
}

// Client returns an unauthenticated gateway client for the server
func (ts *TestServer) Client() *gateway.Client {
	return gateway.New(ts.URL)
}

// Register creates an account named username and returns a client holding its token
func (ts *TestServer) Register(t testing.TB, username string) (*gateway.Client, *models.User) {
	t.Helper()

	resp, err := ts.Client().Register(context.Background(), models.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: TestPassword,
	})
	require.NoError(t, err)
	return ts.Client().WithToken(resp.Token), &resp.User
}
