// Package app wires the gateway, services, audit sink and session into one container.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/taskdeck/internal/audit"
	"github.com/thenoetrevino/taskdeck/internal/config"
	"github.com/thenoetrevino/taskdeck/internal/gateway"
	"github.com/thenoetrevino/taskdeck/internal/kanban"
	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/notify"
	"github.com/thenoetrevino/taskdeck/internal/services/account"
	"github.com/thenoetrevino/taskdeck/internal/services/board"
	"github.com/thenoetrevino/taskdeck/internal/services/comment"
	"github.com/thenoetrevino/taskdeck/internal/services/task"
)

// App holds all application services and provides dependency injection.
type App struct {
	Config   *config.Config
	Notifier notify.Notifier

	logger   *slog.Logger
	sessions *config.SessionStore
	sink     *audit.Sink

	mu      sync.RWMutex
	api     *gateway.Client
	session *config.Session

	BoardService   board.Service
	TaskService    task.Service
	CommentService comment.Service
	AccountService account.Service
}

// New creates an App for cfg. A saved session for the same backend is
// picked up automatically.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	ac := &appConfig{}
	for _, opt := range opts {
		opt(ac)
	}
	if ac.logger == nil {
		ac.logger = slog.Default()
	}
	if ac.notifier == nil {
		ac.notifier = notify.Discard
	}
	if ac.sessions == nil {
		dir, err := config.DataDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve data directory: %w", err)
		}
		ac.sessions = config.NewSessionStore(dir)
	}

	var gwOpts []gateway.Option
	if ac.httpClient != nil {
		gwOpts = append(gwOpts, gateway.WithHTTPClient(ac.httpClient))
	}

	a := &App{
		Config:   cfg,
		Notifier: ac.notifier,
		logger:   ac.logger,
		sessions: ac.sessions,
		api:      gateway.New(cfg.APIURL, gwOpts...),
	}

	session, err := a.sessions.Load()
	switch {
	case errors.Is(err, config.ErrNoSession):
	case err != nil:
		a.logger.Warn("ignoring unreadable session", "path", a.sessions.Path(), "error", err)
	case session.APIURL != "" && session.APIURL != a.api.BaseURL():
		a.logger.Info("saved session belongs to another backend", "session_url", session.APIURL)
	default:
		a.session = session
		a.api = a.api.WithToken(session.Token)
	}

	a.sink = audit.NewSink(activityWriter{app: a}, ac.auditOpts...)
	a.wire()
	return a, nil
}

// wire (re)builds the services around the current gateway client
func (a *App) wire() {
	api := a.API()
	a.BoardService = board.NewService(api)
	a.TaskService = task.NewService(api, a.sink)
	a.CommentService = comment.NewService(api, a.sink)
	a.AccountService = account.NewService(api)
}

// API returns the gateway client carrying the current token
func (a *App) API() *gateway.Client {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.api
}

// Session returns the active session, or ErrNoSession
func (a *App) Session() (*config.Session, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.session == nil {
		return nil, config.ErrNoSession
	}
	return a.session, nil
}

// SignedIn reports whether requests carry a token
func (a *App) SignedIn() bool {
	_, err := a.Session()
	return err == nil
}

// StartSession persists a successful login or registration and
// authenticates subsequent requests with its token
func (a *App) StartSession(resp *models.AuthResponse) error {
	a.mu.Lock()
	session := &config.Session{
		APIURL: a.api.BaseURL(),
		Token:  resp.Token,
		User:   resp.User,
	}
	a.session = session
	a.api = a.api.WithToken(resp.Token)
	a.mu.Unlock()

	a.wire()
	if err := a.sessions.Save(session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	a.logger.Info("session started", "user_id", resp.User.ID)
	return nil
}

// UpdateSessionUser refreshes the cached user after a profile edit
func (a *App) UpdateSessionUser(user *models.User) {
	a.mu.Lock()
	if a.session != nil {
		a.session.User = *user
	}
	a.mu.Unlock()

	if err := a.sessions.UpdateUser(*user); err != nil && !errors.Is(err, config.ErrNoSession) {
		a.logger.Warn("failed to update saved session", "error", err)
	}
}

// EndSession forgets the token locally. The backend keeps no session state.
func (a *App) EndSession() error {
	a.mu.Lock()
	a.session = nil
	a.api = a.api.WithToken("")
	a.mu.Unlock()

	a.wire()
	return a.sessions.Clear()
}

// Engine returns a kanban engine moving tasks through TaskService
func (a *App) Engine(reload kanban.Reloader) *kanban.Engine {
	return kanban.NewEngine(a.TaskService, reload, a.Notifier)
}

// BoardDialogs returns the dependencies of the board dialogs
func (a *App) BoardDialogs(reload func(context.Context) error) board.DialogDeps {
	return board.DialogDeps{Service: a.BoardService, Notifier: a.Notifier, Reload: reload}
}

// TaskDialogs returns the dependencies of the task dialogs
func (a *App) TaskDialogs(reload func(context.Context) error) task.DialogDeps {
	return task.DialogDeps{Service: a.TaskService, Notifier: a.Notifier, Reload: reload}
}

// CommentDialogs returns the dependencies of the comment composer
func (a *App) CommentDialogs(reload func(context.Context) error) comment.DialogDeps {
	return comment.DialogDeps{Service: a.CommentService, Notifier: a.Notifier, Reload: reload}
}

// AccountDialogs returns the dependencies of the profile and password forms.
// A saved profile refreshes the session's cached user.
func (a *App) AccountDialogs() account.DialogDeps {
	return account.DialogDeps{Service: a.AccountService, Notifier: a.Notifier, Saved: a.UpdateSessionUser}
}

// Close flushes pending activity entries
func (a *App) Close(ctx context.Context) error {
	return a.sink.Close(ctx)
}

// activityWriter sends audit entries with whatever token is current at write time
type activityWriter struct {
	app *App
}

func (w activityWriter) CreateActivity(ctx context.Context, in models.ActivityInput) (*models.Activity, error) {
	return w.app.API().CreateActivity(ctx, in)
}
