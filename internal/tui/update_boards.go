package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/taskdeck/internal/dialog"
	"github.com/thenoetrevino/taskdeck/internal/models"
	boardservice "github.com/thenoetrevino/taskdeck/internal/services/board"
)

// handleBoardsPage handles keys on the list of boards
func (m Model) handleBoardsPage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.PrevTask):
		if i := m.uiState.SelectedBoard(); i > 0 {
			m.uiState.SetSelectedBoard(i - 1)
		}
	case key.Matches(msg, k.NextTask):
		if i := m.uiState.SelectedBoard(); i < len(m.boardsSnapshot().Boards)-1 {
			m.uiState.SetSelectedBoard(i + 1)
		}
	case key.Matches(msg, k.Drop):
		return m.handleOpenBoard()
	case key.Matches(msg, k.Refresh):
		return m, m.loadBoards()
	case key.Matches(msg, k.AddTask):
		if err := m.dialogs.createBoard.Open(boardservice.Fields{}); err != nil {
			return m, nil
		}
		m.openBoardForm(dialog.Creating{Kind: models.KindBoard}, boardservice.Fields{})
	case key.Matches(msg, k.EditTask):
		b := m.selectedBoard()
		if b == nil {
			return m, nil
		}
		fields := boardservice.FieldsFrom(b)
		if err := m.dialogs.editBoard.Open(fields); err != nil {
			return m, nil
		}
		m.openBoardForm(dialog.Editing{Subject: b}, fields)
	case key.Matches(msg, k.DeleteTask):
		b := m.selectedBoard()
		if b == nil {
			return m, nil
		}
		if err := m.dialogs.deleteBoard.Open(*b); err != nil {
			return m, nil
		}
		m.uiState.SetMode(dialog.Deleting{Subject: b})
	}
	return m, nil
}

// handleOpenBoard switches to the kanban columns of the highlighted board
func (m Model) handleOpenBoard() (tea.Model, tea.Cmd) {
	b := m.selectedBoard()
	if b == nil {
		return m, nil
	}
	m.views.openBoard(b.ID)
	m.uiState.OpenBoard()
	return m, m.loadBoard()
}
