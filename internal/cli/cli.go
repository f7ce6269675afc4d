// Package cli holds the shared plumbing of the taskdeck commands: app
// construction, output formatting, error classification and exit codes.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskdeck/internal/app"
	"github.com/thenoetrevino/taskdeck/internal/cli/styles"
	"github.com/thenoetrevino/taskdeck/internal/config"
	"github.com/thenoetrevino/taskdeck/internal/logging"
	"github.com/thenoetrevino/taskdeck/internal/notify"
)

const closeTimeout = 5 * time.Second

// CLI represents the CLI application context
type CLI struct {
	App   *app.App
	owned bool
}

// NewCLI loads configuration and the saved session and builds the App
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	styles.Init(cfg.ColorScheme)
	notify.SetColors(&cfg.ColorScheme)

	dataDir, err := config.DataDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}
	if err := logging.Init(dataDir); err != nil {
		// Logging is best effort; commands still work without a log file
		slog.Warn("failed to initialize logging", "error", err)
	}

	application, err := app.New(cfg, app.WithSessionStore(config.NewSessionStore(dataDir)))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}

	return &CLI{App: application, owned: true}, nil
}

// RequireSession returns the active session, or config.ErrNoSession
func (c *CLI) RequireSession() (*config.Session, error) {
	return c.App.Session()
}

// Close flushes pending activity entries of an App this CLI created
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	return c.App.Close(ctx)
}

// RunFunc is the body of a command. Errors it returns are reported through f.
type RunFunc func(ctx context.Context, cmd *cobra.Command, c *CLI, f *OutputFormatter) error

// Run builds the CLI for cmd, runs fn and closes the CLI again
func Run(cmd *cobra.Command, fn RunFunc) error {
	ctx := cmd.Context()
	f := NewFormatter(cmd)

	c, err := GetCLIFromContext(ctx)
	if err != nil {
		return f.Fail(err)
	}
	defer func() {
		if err := c.Close(); err != nil {
			slog.Warn("error closing CLI", "error", err)
		}
	}()

	if err := fn(ctx, cmd, c, f); err != nil {
		var exitErr *ExitErr
		if errors.As(err, &exitErr) {
			return err
		}
		return f.Fail(err)
	}
	return nil
}

// RunSignedIn is Run for commands that need a login
func RunSignedIn(cmd *cobra.Command, fn RunFunc) error {
	return Run(cmd, func(ctx context.Context, cmd *cobra.Command, c *CLI, f *OutputFormatter) error {
		if _, err := c.RequireSession(); err != nil {
			return err
		}
		return fn(ctx, cmd, c, f)
	})
}
