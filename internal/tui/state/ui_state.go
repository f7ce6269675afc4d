// Package state holds the view state of the board TUI: which page is shown,
// what is selected and which dialog is open.
package state

import (
	"github.com/thenoetrevino/taskdeck/internal/dialog"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// Page is the screen currently shown
type Page int

const (
	BoardsPage Page = iota // list of boards
	BoardPage              // kanban columns of one board
)

// UIState manages the user interface state.
// This includes navigation, viewport scrolling, terminal dimensions,
// and the open dialog.
type UIState struct {
	page Page

	// selectedBoard is the index of the highlighted board on the boards page
	selectedBoard int

	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedTask is the index of the selected task within the selected column
	selectedTask int

	width  int
	height int

	mode     dialog.Mode
	showHelp bool

	// taskScrollOffsets is the index of the first visible task per column
	taskScrollOffsets map[models.Status]int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		page:              BoardsPage,
		mode:              dialog.Idle{},
		taskScrollOffsets: make(map[models.Status]int),
	}
}

// Page returns the page being shown.
func (s *UIState) Page() Page {
	return s.page
}

// OpenBoard switches to the board page with the first task selected.
func (s *UIState) OpenBoard() {
	s.page = BoardPage
	s.selectedColumn = 0
	s.selectedTask = 0
	s.taskScrollOffsets = make(map[models.Status]int)
}

// CloseBoard returns to the boards page.
func (s *UIState) CloseBoard() {
	s.page = BoardsPage
	s.mode = dialog.Idle{}
}

// SelectedBoard returns the index of the highlighted board.
func (s *UIState) SelectedBoard() int {
	return s.selectedBoard
}

// SetSelectedBoard updates the highlighted board index.
func (s *UIState) SetSelectedBoard(index int) {
	s.selectedBoard = index
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedTask returns the index of the currently selected task.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask updates the selected task index.
func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask = index
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize records the terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// ContentHeight returns the available height for the main content area.
// This is terminal height minus header and status bar, with a minimum of 5.
func (s *UIState) ContentHeight() int {
	const headerHeight = 2    // board name + gap line
	const statusBarHeight = 2 // status bar + gap line
	return max(s.height-headerHeight-statusBarHeight, 5)
}

// Mode returns the open dialog.
func (s *UIState) Mode() dialog.Mode {
	return s.mode
}

// SetMode updates the open dialog.
func (s *UIState) SetMode(mode dialog.Mode) {
	s.mode = mode
}

// ShowHelp reports whether the help overlay is shown.
func (s *UIState) ShowHelp() bool {
	return s.showHelp
}

// ToggleHelp shows or hides the help overlay.
func (s *UIState) ToggleHelp() {
	s.showHelp = !s.showHelp
}

// TaskScrollOffset returns the index of the first visible task of a column.
func (s *UIState) TaskScrollOffset(status models.Status) int {
	return s.taskScrollOffsets[status]
}

// EnsureTaskVisible scrolls a column so that taskIdx is within the
// maxVisible tasks shown.
func (s *UIState) EnsureTaskVisible(status models.Status, taskIdx, maxVisible int) {
	offset := s.taskScrollOffsets[status]
	switch {
	case taskIdx < offset:
		offset = taskIdx
	case taskIdx >= offset+maxVisible:
		offset = taskIdx - maxVisible + 1
	}
	s.taskScrollOffsets[status] = max(offset, 0)
}

// ClampSelection keeps the task selection inside a column of count tasks,
// for example after a reload removed the selected task.
func (s *UIState) ClampSelection(status models.Status, count int) {
	if s.selectedTask >= count {
		s.selectedTask = max(count-1, 0)
	}
	if offset := s.taskScrollOffsets[status]; offset >= count {
		s.taskScrollOffsets[status] = max(count-1, 0)
	}
}
