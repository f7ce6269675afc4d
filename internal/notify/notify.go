// Package notify carries user-facing notifications from controllers to
// whatever view is showing them.
package notify

import (
	"fmt"
	"io"
	"sync"
)

// Level represents the severity of a notification
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

// String returns the level name
func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notification is a single message with a severity level
type Notification struct {
	Level   Level
	Message string
}

// Notifier receives notifications. Implementations must be safe for concurrent use.
type Notifier interface {
	Notify(level Level, message string)
}

// Func adapts a function to the Notifier interface
type Func func(level Level, message string)

// Notify implements Notifier
func (f Func) Notify(level Level, message string) {
	f(level, message)
}

// Info sends an informational notification
func Info(n Notifier, message string) {
	n.Notify(LevelInfo, message)
}

// Error sends an error notification
func Error(n Notifier, message string) {
	n.Notify(LevelError, message)
}

// Discard drops every notification
var Discard Notifier = Func(func(Level, string) {})

// ============================================================================
// COLLECTOR
// ============================================================================

// Center collects notifications until a view drains them
type Center struct {
	mu            sync.Mutex
	notifications []Notification
}

// NewCenter creates an empty Center
func NewCenter() *Center {
	return &Center{}
}

// Notify implements Notifier
func (c *Center) Notify(level Level, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = append(c.notifications, Notification{Level: level, Message: message})
}

// All returns a copy of the pending notifications
func (c *Center) All() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Notification(nil), c.notifications...)
}

// Drain returns the pending notifications and clears them
func (c *Center) Drain() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	drained := c.notifications
	c.notifications = nil
	return drained
}

// Clear removes all notifications
func (c *Center) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = nil
}

// HasAny returns true if there are any pending notifications
func (c *Center) HasAny() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.notifications) > 0
}

// ============================================================================
// WRITER
// ============================================================================

// Writer prints notifications as they arrive. Info goes to Out, warnings and
// errors go to Err. Quiet suppresses info messages.
type Writer struct {
	mu     sync.Mutex
	Out    io.Writer
	Err    io.Writer
	Quiet  bool
	Render func(Notification) string
}

// NewWriter creates a Writer using the inline renderer
func NewWriter(out, errOut io.Writer) *Writer {
	return &Writer{Out: out, Err: errOut, Render: RenderInline}
}

// Notify implements Notifier
func (w *Writer) Notify(level Level, message string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if level == LevelInfo && w.Quiet {
		return
	}

	dst := w.Out
	if level != LevelInfo {
		dst = w.Err
	}
	if dst == nil {
		return
	}

	text := message
	if w.Render != nil {
		text = w.Render(Notification{Level: level, Message: message})
	}
	_, _ = fmt.Fprintln(dst, text)
}
