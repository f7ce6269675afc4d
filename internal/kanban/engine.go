package kanban

import (
	"context"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/taskdeck/internal/gateway"
	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/notify"
)

// MoveFailedMessage is shown when the status update is rejected
const MoveFailedMessage = "Failed to move task."

// StatusChanger persists a status change with a single request
type StatusChanger interface {
	ChangeStatus(ctx context.Context, task *models.Task, status models.Status) (*models.Task, error)
}

// Reloader refreshes the board snapshot after a move
type Reloader func(ctx context.Context) error

// Outcome is the result of a drop
type Outcome int

const (
	// OutcomeNoop means nothing was sent: no drag, same column or invalid target
	OutcomeNoop Outcome = iota
	// OutcomeMoved means the task was moved and the board reloaded
	OutcomeMoved
	// OutcomeFailed means the backend rejected the move
	OutcomeFailed
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeFailed:
		return "failed"
	default:
		return "noop"
	}
}

// Engine tracks the task being dragged and turns a drop into a status change
type Engine struct {
	changer  StatusChanger
	reload   Reloader
	notifier notify.Notifier

	mu      sync.Mutex
	dragged *models.Task
}

// NewEngine creates an engine. reload may be nil.
func NewEngine(changer StatusChanger, reload Reloader, notifier notify.Notifier) *Engine {
	if notifier == nil {
		notifier = notify.Discard
	}
	return &Engine{
		changer:  changer,
		reload:   reload,
		notifier: notifier,
	}
}

// DragStart records task as the one being dragged, replacing any earlier drag
func (e *Engine) DragStart(task models.Task) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dragged = &task
}

// Dragged returns the task being dragged, if any
func (e *Engine) Dragged() (models.Task, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.dragged == nil {
		return models.Task{}, false
	}
	return *e.dragged, true
}

// Cancel abandons the current drag
func (e *Engine) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dragged = nil
}

// Drop moves the dragged task into the column for status. The drag is
// cleared whatever the outcome.
func (e *Engine) Drop(ctx context.Context, status models.Status) Outcome {
	e.mu.Lock()
	task := e.dragged
	e.dragged = nil
	e.mu.Unlock()

	if task == nil {
		return OutcomeNoop
	}

	if !status.Valid() {
		notify.Error(e.notifier, "Invalid column: "+string(status))
		return OutcomeNoop
	}

	if task.Status == status {
		return OutcomeNoop
	}

	if _, err := e.changer.ChangeStatus(ctx, task, status); err != nil {
		slog.Debug("status change failed", "task_id", task.ID, "status", status, "error", gateway.Message(err))
		notify.Error(e.notifier, MoveFailedMessage)
		return OutcomeFailed
	}

	if e.reload != nil {
		if err := e.reload(ctx); err != nil {
			slog.Debug("board reload after move failed", "task_id", task.ID, "error", err)
		}
	}

	notify.Info(e.notifier, "Task moved to "+status.Title())
	return OutcomeMoved
}

// Move drags task and drops it on status in one step
func (e *Engine) Move(ctx context.Context, task models.Task, status models.Status) Outcome {
	e.DragStart(task)
	return e.Drop(ctx, status)
}
