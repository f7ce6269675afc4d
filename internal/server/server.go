// Package server implements the taskdeck REST API over a SQLite data store.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/taskdeck/internal/database"
)

const shutdownTimeout = 5 * time.Second

// Server serves the REST API
type Server struct {
	store     database.DataStore
	tokens    *tokens
	passwords passwords
	logger    *slog.Logger
	engine    *gin.Engine
}

// Option configures a Server
type Option func(*Server)

// WithLogger sets the request and error logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithTokenTTL sets how long issued tokens stay valid
func WithTokenTTL(ttl time.Duration) Option {
	return func(s *Server) {
		s.tokens.ttl = ttl
	}
}

// WithClock replaces the clock used to issue and verify tokens
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.tokens.now = now
	}
}

// WithHashParams sets the argon2id cost parameters
func WithHashParams(params *argon2id.Params) Option {
	return func(s *Server) {
		s.passwords.params = params
	}
}

// New creates a Server over store, signing tokens with secret
func New(store database.DataStore, secret string, opts ...Option) *Server {
	s := &Server{
		store: store,
		tokens: &tokens{
			secret: []byte(secret),
			ttl:    24 * time.Hour,
			now:    time.Now,
		},
		passwords: passwords{params: argon2id.DefaultParams},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.engine = s.routes()
	return s
}

// Handler returns the HTTP handler serving every route
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return nil
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())
	r.NoRoute(func(c *gin.Context) {
		abort(c, http.StatusNotFound, "Route not found")
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", s.handleRegister)
	auth.POST("/login", s.handleLogin)
	auth.POST("/change-password", s.requireAuth, s.handleChangePassword)

	protected := api.Group("", s.requireAuth)

	protected.GET("/users", s.handleListUsers)
	protected.GET("/users/me", s.handleMe)
	protected.PUT("/users/me", s.handleUpdateMe)
	protected.GET("/users/:id", s.handleGetUser)

	protected.GET("/boards", s.handleListBoards)
	protected.POST("/boards", s.handleCreateBoard)
	protected.GET("/boards/:id", s.handleGetBoard)
	protected.PUT("/boards/:id", s.handleUpdateBoard)
	protected.DELETE("/boards/:id", s.handleDeleteBoard)
	protected.GET("/boards/:id/tasks", s.handleListTasks)
	protected.GET("/boards/:id/activities", s.handleListActivities)

	protected.POST("/tasks", s.handleCreateTask)
	protected.PUT("/tasks/:id", s.handleUpdateTask)
	protected.DELETE("/tasks/:id", s.handleDeleteTask)
	protected.POST("/tasks/:id/assign", s.handleAssignTask)
	protected.GET("/tasks/:id/comments", s.handleListComments)

	protected.POST("/comments", s.handleCreateComment)
	protected.PUT("/comments/:id", s.handleUpdateComment)
	protected.DELETE("/comments/:id", s.handleDeleteComment)

	protected.POST("/activities", s.handleCreateActivity)

	return r
}
