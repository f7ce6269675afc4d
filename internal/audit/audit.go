// Package audit appends activity-log entries after successful mutations.
// Recording is fire-and-forget: a failed write is logged and never reaches
// the caller.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/taskdeck/internal/models"
)

// Recorder accepts audit entries. Record must not block.
type Recorder interface {
	Record(entry models.ActivityInput)
}

// RecorderFunc adapts a function to the Recorder interface
type RecorderFunc func(entry models.ActivityInput)

// Record implements Recorder
func (f RecorderFunc) Record(entry models.ActivityInput) {
	f(entry)
}

// Discard ignores every entry
var Discard Recorder = RecorderFunc(func(models.ActivityInput) {})

// Writer persists one activity entry
type Writer interface {
	CreateActivity(ctx context.Context, in models.ActivityInput) (*models.Activity, error)
}

// ForTask builds an entry about a task
func ForTask(task *models.Task, action models.Action, details string) models.ActivityInput {
	return models.ActivityInput{
		BoardID: task.BoardID,
		TaskID:  task.ID,
		Action:  action,
		Details: details,
	}
}

// StatusChanged builds the entry written after a kanban move
func StatusChanged(task *models.Task, to models.Status) models.ActivityInput {
	return ForTask(task, models.ActionStatusChanged,
		fmt.Sprintf("Changed task %q status to %s", task.Title, to))
}

// Assigned builds the entry written after a task's assignee changes
func Assigned(task *models.Task, username string) models.ActivityInput {
	if username == "" {
		return ForTask(task, models.ActionAssigned, fmt.Sprintf("Unassigned task %q", task.Title))
	}
	return ForTask(task, models.ActionAssigned, fmt.Sprintf("Assigned task %q to %s", task.Title, username))
}

// ============================================================================
// SINK
// ============================================================================

const (
	defaultQueueSize    = 64
	defaultWriteTimeout = 5 * time.Second
)

// Option configures a Sink
type Option func(*Sink)

// WithQueueSize sets how many entries may wait before new ones are dropped
func WithQueueSize(n int) Option {
	return func(s *Sink) {
		if n > 0 {
			s.queueSize = n
		}
	}
}

// WithWriteTimeout bounds each backend write
func WithWriteTimeout(d time.Duration) Option {
	return func(s *Sink) {
		if d > 0 {
			s.writeTimeout = d
		}
	}
}

// Sink queues entries and writes them from a single background goroutine,
// in the order they were recorded.
type Sink struct {
	writer       Writer
	queueSize    int
	writeTimeout time.Duration

	mu     sync.Mutex
	queue  chan models.ActivityInput
	closed bool

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSink starts a sink writing through w
func NewSink(w Writer, opts ...Option) *Sink {
	s := &Sink{
		writer:       w,
		queueSize:    defaultQueueSize,
		writeTimeout: defaultWriteTimeout,
		done:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.queue = make(chan models.ActivityInput, s.queueSize)
	s.ctx, s.cancel = context.WithCancel(context.Background())

	go s.run()
	return s
}

// Record queues an entry. Entries recorded after Close, or while the queue
// is full, are dropped.
func (s *Sink) Record(entry models.ActivityInput) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		slog.Debug("audit sink closed, dropping entry", "action", entry.Action, "board_id", entry.BoardID)
		return
	}

	select {
	case s.queue <- entry:
	default:
		slog.Debug("audit queue full, dropping entry", "action", entry.Action, "board_id", entry.BoardID)
	}
}

// Close stops accepting entries and waits for queued ones to be written.
// If ctx expires first, pending writes are abandoned.
func (s *Sink) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		<-s.done
		return nil
	}
	s.closed = true
	close(s.queue)
	s.mu.Unlock()

	select {
	case <-s.done:
		s.cancel()
		return nil
	case <-ctx.Done():
		s.cancel()
		<-s.done
		return fmt.Errorf("audit sink did not drain: %w", ctx.Err())
	}
}

func (s *Sink) run() {
	defer close(s.done)

	for entry := range s.queue {
		if s.ctx.Err() != nil {
			continue
		}
		s.write(entry)
	}
}

func (s *Sink) write(entry models.ActivityInput) {
	ctx, cancel := context.WithTimeout(s.ctx, s.writeTimeout)
	defer cancel()

	if _, err := s.writer.CreateActivity(ctx, entry); err != nil {
		slog.Debug("failed to record activity",
			"action", entry.Action,
			"board_id", entry.BoardID,
			"task_id", entry.TaskID,
			"error", err,
		)
	}
}
