package cli

import (
	"context"

	"github.com/thenoetrevino/taskdeck/internal/app"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const appKey contextKey = "app"

// WithApp returns a context carrying a prebuilt App. Commands executed with
// it use that App instead of loading configuration and the saved session.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns a CLI around the App stored in ctx, or builds a
// new one from the user's configuration.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}
	return NewCLI(ctx)
}
