package dialog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/taskdeck/internal/gateway"
	"github.com/thenoetrevino/taskdeck/internal/notify"
)

var (
	// ErrClosed is returned when confirming a dialog that is not open
	ErrClosed = errors.New("dialog is not open")
	// ErrBusy is returned while a submission is in flight
	ErrBusy = errors.New("dialog is busy")
)

// ValidationError wraps a rejection from Config.Validate. No request was sent.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

// IsValidation reports whether err came from field validation
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// Config describes one (entity, verb) dialog
type Config[F any] struct {
	// Validate runs before any request. A non-nil error is shown and the dialog stays open.
	Validate func(fields F) error
	// Submit performs the mutation. It is called at most once per confirmation.
	Submit func(ctx context.Context, fields F) error
	// OnSuccess runs after Submit succeeds, typically a cache reload
	OnSuccess func(ctx context.Context) error
	// Success returns the notification shown after a successful submission
	Success func(fields F) string
	// Notifier receives validation, failure and success messages
	Notifier notify.Notifier
}

// Message returns a Success func with a fixed text
func Message[F any](text string) func(F) string {
	return func(F) string { return text }
}

// Controller drives one dialog: open, edit fields, confirm, close.
// While a submission is in flight the dialog is locked.
type Controller[F any] struct {
	cfg Config[F]

	mu     sync.Mutex
	open   bool
	busy   bool
	fields F
}

// New creates a closed dialog controller
func New[F any](cfg Config[F]) *Controller[F] {
	if cfg.Notifier == nil {
		cfg.Notifier = notify.Discard
	}
	return &Controller[F]{cfg: cfg}
}

// Open shows the dialog with initial field values
func (c *Controller[F]) Open(fields F) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.busy {
		return ErrBusy
	}
	c.open = true
	c.fields = fields
	return nil
}

// IsOpen reports whether the dialog is showing
func (c *Controller[F]) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// Busy reports whether a submission is in flight
func (c *Controller[F]) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Fields returns the current field values
func (c *Controller[F]) Fields() F {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields
}

// SetFields replaces the field values. Rejected while locked.
func (c *Controller[F]) SetFields(fields F) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.busy {
		return ErrBusy
	}
	c.fields = fields
	return nil
}

// Close dismisses the dialog and resets its fields. An in-flight submission
// cannot be cancelled, so closing is rejected while locked.
func (c *Controller[F]) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.busy {
		return ErrBusy
	}
	c.reset()
	return nil
}

func (c *Controller[F]) reset() {
	var zero F
	c.open = false
	c.fields = zero
}

// Confirm validates the fields and submits them. On failure the dialog stays
// open with its fields intact; on success the completion callback runs, a
// success notification is shown and the dialog closes.
func (c *Controller[F]) Confirm(ctx context.Context) error {
	c.mu.Lock()
	if !c.open {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.busy {
		c.mu.Unlock()
		return ErrBusy
	}
	fields := c.fields
	c.busy = true
	c.mu.Unlock()

	if c.cfg.Validate != nil {
		if err := c.cfg.Validate(fields); err != nil {
			c.unlock()
			notify.Error(c.cfg.Notifier, err.Error())
			return &ValidationError{Err: err}
		}
	}

	if err := c.cfg.Submit(ctx, fields); err != nil {
		c.unlock()
		notify.Error(c.cfg.Notifier, gateway.Message(err))
		return err
	}

	if c.cfg.OnSuccess != nil {
		if err := c.cfg.OnSuccess(ctx); err != nil {
			slog.Debug("dialog completion callback failed", "error", err)
			c.cfg.Notifier.Notify(notify.LevelWarning, fmt.Sprintf("Saved, but refresh failed: %s", gateway.Message(err)))
		}
	}

	if c.cfg.Success != nil {
		if msg := c.cfg.Success(fields); msg != "" {
			notify.Info(c.cfg.Notifier, msg)
		}
	}

	c.mu.Lock()
	c.busy = false
	c.reset()
	c.mu.Unlock()
	return nil
}

func (c *Controller[F]) unlock() {
	c.mu.Lock()
	c.busy = false
	c.mu.Unlock()
}
