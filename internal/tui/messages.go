package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/taskdeck/internal/dialog"
	"github.com/thenoetrevino/taskdeck/internal/kanban"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// boardsLoadedMsg reports a reload of the boards page
type boardsLoadedMsg struct{ err error }

// boardLoadedMsg reports a reload of the open board
type boardLoadedMsg struct {
	boardID string
	err     error
}

// detailLoadedMsg reports a reload of the comment thread
type detailLoadedMsg struct {
	taskID string
	err    error
}

// usersLoadedMsg carries the users for the assign picker
type usersLoadedMsg struct {
	users []models.User
	err   error
}

// dialogDoneMsg reports the end of a dialog confirmation
type dialogDoneMsg struct{ err error }

// droppedMsg reports the end of a drop
type droppedMsg struct{ outcome kanban.Outcome }

func (m Model) loadBoards() tea.Cmd {
	store := m.views.boards
	ctx := m.ctx
	return func() tea.Msg {
		return boardsLoadedMsg{err: store.Reload(ctx)}
	}
}

func (m Model) loadBoard() tea.Cmd {
	store, id := m.views.currentBoard()
	if store == nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		return boardLoadedMsg{boardID: id, err: store.Reload(ctx)}
	}
}

func (m Model) loadDetail() tea.Cmd {
	store, id := m.views.currentDetail()
	if store == nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		return detailLoadedMsg{taskID: id, err: store.Reload(ctx)}
	}
}

func (m Model) loadUsers() tea.Cmd {
	api := m.app.API()
	ctx := m.ctx
	return func() tea.Msg {
		users, err := api.ListUsers(ctx)
		return usersLoadedMsg{users: users, err: err}
	}
}

// confirm submits a dialog off the UI goroutine. The controller stays busy
// until the call and its reload have finished.
func confirm[F any](ctx context.Context, ctrl *dialog.Controller[F]) tea.Cmd {
	return func() tea.Msg {
		return dialogDoneMsg{err: ctrl.Confirm(ctx)}
	}
}

func (m Model) drop(status models.Status) tea.Cmd {
	engine := m.engine
	ctx := m.ctx
	return func() tea.Msg {
		return droppedMsg{outcome: engine.Drop(ctx, status)}
	}
}

func (m Model) move(task models.Task, status models.Status) tea.Cmd {
	engine := m.engine
	ctx := m.ctx
	return func() tea.Msg {
		return droppedMsg{outcome: engine.Move(ctx, task, status)}
	}
}
