package app

import (
	"log/slog"
	"net/http"

	"github.com/thenoetrevino/taskdeck/internal/audit"
	"github.com/thenoetrevino/taskdeck/internal/config"
	"github.com/thenoetrevino/taskdeck/internal/notify"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	notifier   notify.Notifier
	logger     *slog.Logger
	sessions   *config.SessionStore
	httpClient *http.Client
	auditOpts  []audit.Option
}

// WithNotifier sets where user-facing notifications go
func WithNotifier(n notify.Notifier) Option {
	return func(cfg *appConfig) {
		cfg.notifier = n
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithSessionStore sets where the login session is persisted
func WithSessionStore(store *config.SessionStore) Option {
	return func(cfg *appConfig) {
		cfg.sessions = store
	}
}

// WithHTTPClient sets the HTTP client used for every backend request
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *appConfig) {
		cfg.httpClient = client
	}
}

// WithAuditOptions tunes the background activity sink
func WithAuditOptions(opts ...audit.Option) Option {
	return func(cfg *appConfig) {
		cfg.auditOpts = append(cfg.auditOpts, opts...)
	}
}
