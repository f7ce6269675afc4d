package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/taskdeck/internal/dialog"
	"github.com/thenoetrevino/taskdeck/internal/kanban"
	"github.com/thenoetrevino/taskdeck/internal/notify"
	"github.com/thenoetrevino/taskdeck/internal/tui/components"
	"github.com/thenoetrevino/taskdeck/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() string {
	// Wait for terminal size to be initialized
	if m.uiState.Width() == 0 {
		return "Loading..."
	}

	if m.uiState.ShowHelp() {
		return m.place(m.viewHelp())
	}

	if !dialog.IsIdle(m.uiState.Mode()) {
		return m.place(m.viewDialog())
	}

	var body string
	if m.uiState.Page() == state.BoardsPage {
		body = m.viewBoards()
	} else {
		body = m.viewBoard()
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.viewNotifications(), m.viewStatusBar())
}

// place centers a dialog box on the screen
func (m Model) place(box string) string {
	return lipgloss.Place(
		m.uiState.Width(), m.uiState.Height(),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, box, m.viewNotifications()),
	)
}

func (m Model) viewBoards() string {
	snap := m.boardsSnapshot()
	header := components.TitleStyle.Render("Boards") + "\n"
	list := components.RenderBoardList(snap.Boards, snap.TaskCounts, m.uiState.SelectedBoard(), m.uiState.Width())
	return lipgloss.NewStyle().
		Height(m.uiState.ContentHeight() + 1).
		Render(header + "\n" + list)
}

func (m Model) viewBoard() string {
	snap, loaded := m.boardSnapshot()
	if !loaded {
		return lipgloss.NewStyle().Height(m.uiState.ContentHeight() + 1).Render("Loading board...")
	}

	header := components.TitleStyle.Render(snap.Board.Name)
	if snap.Board.Description != "" {
		header += components.SubtleStyle.Render("  " + snap.Board.Description)
	}

	dragged, dragging := m.engine.Dragged()
	columnWidth := max(m.uiState.Width()/len(kanban.Columns), 20)
	usernames := m.views.usernameMap()

	groups := kanban.Group(snap.Tasks)
	rendered := make([]string, len(kanban.Columns))
	for i, col := range kanban.Columns {
		selected := i == m.uiState.SelectedColumn()
		props := components.ColumnProps{
			Width:        columnWidth,
			Height:       m.uiState.ContentHeight(),
			Selected:     selected,
			DropTarget:   selected && dragging && dragged.Status != col.Status,
			SelectedTask: -1,
			ScrollOffset: m.uiState.TaskScrollOffset(col.Status),
			Assignees:    usernames,
		}
		if selected {
			props.SelectedTask = m.uiState.SelectedTask()
		}
		if dragging {
			props.DraggedID = dragged.ID
		}
		rendered[i] = components.RenderColumn(col, groups[i], props)
	}

	return header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) viewNotifications() string {
	all := m.notifications.All()
	if len(all) == 0 {
		return ""
	}
	rendered := make([]string, len(all))
	for i, n := range all {
		rendered[i] = notify.Render(n)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func (m Model) viewStatusBar() string {
	left := "taskdeck"
	if session, err := m.app.Session(); err == nil {
		left = fmt.Sprintf("taskdeck · %s", session.User.Username)
	}
	if dragged, ok := m.engine.Dragged(); ok {
		left += fmt.Sprintf(" · moving %q (%s to drop, %s to cancel)",
			dragged.Title, m.keys.Drop.Help().Key, m.keys.Back.Help().Key)
	}
	return components.RenderStatusBar(components.StatusBarProps{
		Width: m.uiState.Width(),
		Left:  left,
		Right: fmt.Sprintf("press %s for help", m.keys.ShowHelp.Help().Key),
	})
}

func (m Model) viewHelp() string {
	sections := []string{"TASKS", "DRAG AND DROP", "NAVIGATION", "OTHER"}

	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("taskdeck - Keyboard Shortcuts"))
	for i, group := range m.keys.boardHelp() {
		b.WriteString("\n\n")
		b.WriteString(components.TitleStyle.Render(sections[i]))
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "\n  %-8s %s", h.Key, h.Desc)
		}
	}
	b.WriteString("\n\n")
	b.WriteString(components.SubtleStyle.Render("On the boards page the same keys add, edit and delete boards."))
	b.WriteString("\n")
	b.WriteString(components.SubtleStyle.Render("Press any key to close."))
	return components.HelpBoxStyle.Render(b.String())
}
