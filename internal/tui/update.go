package tui

import (
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/taskdeck/internal/cache"
	"github.com/thenoetrevino/taskdeck/internal/dialog"
	"github.com/thenoetrevino/taskdeck/internal/gateway"
	"github.com/thenoetrevino/taskdeck/internal/notify"
	"github.com/thenoetrevino/taskdeck/internal/tui/state"
)

// Update handles all incoming messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case boardsLoadedMsg:
		if msg.err != nil {
			notify.Error(m.notifications, gateway.Message(msg.err))
			return m, nil
		}
		if n := len(m.boardsSnapshot().Boards); m.uiState.SelectedBoard() >= n {
			m.uiState.SetSelectedBoard(max(n-1, 0))
		}
		return m, nil

	case boardLoadedMsg:
		return m.handleBoardLoaded(msg)

	case detailLoadedMsg:
		if msg.err != nil {
			notify.Error(m.notifications, gateway.Message(msg.err))
		}
		return m, nil

	case usersLoadedMsg:
		if msg.err != nil {
			slog.Debug("failed to load users", "error", msg.err)
			if _, ok := m.uiState.Mode().(dialog.Assigning); ok {
				notify.Error(m.notifications, gateway.Message(msg.err))
			}
			return m, nil
		}
		m.views.setUsers(msg.users)
		if a, ok := m.uiState.Mode().(dialog.Assigning); ok && m.picker != nil {
			m.picker.SetUsers(msg.users, a.Subject.AssignedTo)
		}
		return m, nil

	case dialogDoneMsg:
		return m.handleDialogDone(msg)

	case droppedMsg:
		m.clampSelection()
		return m, nil
	}

	return m, nil
}

// handleKey routes a key press to the open dialog or the current page
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.uiState.ShowHelp() {
		m.uiState.ToggleHelp()
		return m, nil
	}

	if !dialog.IsIdle(m.uiState.Mode()) {
		return m.handleDialogKey(msg)
	}

	m.notifications.Clear()

	if key.Matches(msg, m.keys.ShowHelp) {
		m.uiState.ToggleHelp()
		return m, nil
	}

	if m.uiState.Page() == state.BoardsPage {
		return m.handleBoardsPage(msg)
	}
	return m.handleNormalMode(msg)
}

// handleBoardLoaded publishes a board reload. A board that no longer
// exists sends the user back to the boards page.
func (m Model) handleBoardLoaded(msg boardLoadedMsg) (tea.Model, tea.Cmd) {
	if _, id := m.views.currentBoard(); id != msg.boardID {
		return m, nil
	}

	if msg.err != nil {
		if errors.Is(msg.err, cache.ErrBoardNotFound) {
			notify.Error(m.notifications, "This board no longer exists.")
			m.engine.Cancel()
			m.views.closeBoard()
			m.uiState.CloseBoard()
			return m, m.loadBoards()
		}
		notify.Error(m.notifications, gateway.Message(msg.err))
		return m, nil
	}

	m.clampSelection()
	return m, nil
}

// handleDialogDone closes the dialog after a successful confirmation.
// On failure the controller already notified the user and stays open.
func (m Model) handleDialogDone(msg dialogDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, dialog.ErrBusy) || errors.Is(msg.err, dialog.ErrClosed) {
			return m, nil
		}
		slog.Debug("dialog submission failed", "mode", dialog.Describe(m.uiState.Mode()), "error", msg.err)
		return m, nil
	}

	if c, ok := m.uiState.Mode().(dialog.Commenting); ok {
		// The thread stays open for the next comment
		m.comment = newCommentInput()
		m.openCommentDialog(*c.Subject)
		return m, nil
	}

	m.closeDialog()
	if m.uiState.Page() == state.BoardPage {
		m.clampSelection()
	} else if n := len(m.boardsSnapshot().Boards); m.uiState.SelectedBoard() >= n {
		m.uiState.SetSelectedBoard(max(n-1, 0))
	}
	return m, nil
}
