package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/taskdeck/internal/dialog"
	"github.com/thenoetrevino/taskdeck/internal/kanban"
	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/notify"
	taskservice "github.com/thenoetrevino/taskdeck/internal/services/task"
)

// handleNormalMode handles keys on the kanban columns of a board
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Back):
		return m.handleBack()
	case key.Matches(msg, k.Refresh):
		return m, m.loadBoard()
	case key.Matches(msg, k.PrevColumn):
		return m.handleNavigateColumn(-1)
	case key.Matches(msg, k.NextColumn):
		return m.handleNavigateColumn(1)
	case key.Matches(msg, k.PrevTask):
		return m.handleNavigateTask(-1)
	case key.Matches(msg, k.NextTask):
		return m.handleNavigateTask(1)
	case key.Matches(msg, k.Grab):
		return m.handleGrab()
	case key.Matches(msg, k.Drop):
		return m.handleDrop()
	case key.Matches(msg, k.MoveTaskLeft):
		return m.handleMoveTask(-1)
	case key.Matches(msg, k.MoveTaskRight):
		return m.handleMoveTask(1)
	case key.Matches(msg, k.AddTask):
		return m.handleAddTask()
	case key.Matches(msg, k.EditTask):
		return m.handleEditTask()
	case key.Matches(msg, k.DeleteTask):
		return m.handleDeleteTask()
	case key.Matches(msg, k.AssignTask):
		return m.handleAssignTask()
	case key.Matches(msg, k.CommentTask), key.Matches(msg, k.ViewTask):
		return m.handleComments()
	}
	return m, nil
}

// handleBack cancels a drag, or returns to the boards page
func (m Model) handleBack() (tea.Model, tea.Cmd) {
	if _, dragging := m.engine.Dragged(); dragging {
		m.engine.Cancel()
		return m, nil
	}
	m.views.closeBoard()
	m.uiState.CloseBoard()
	return m, m.loadBoards()
}

func (m Model) handleNavigateColumn(delta int) (tea.Model, tea.Cmd) {
	next := m.uiState.SelectedColumn() + delta
	if next < 0 || next >= len(kanban.Columns) {
		if delta < 0 {
			notify.Info(m.notifications, "Already at the first column")
		} else {
			notify.Info(m.notifications, "Already at the last column")
		}
		return m, nil
	}
	m.uiState.SetSelectedColumn(next)
	m.uiState.SetSelectedTask(0)
	m.ensureTaskVisible()
	return m, nil
}

func (m Model) handleNavigateTask(delta int) (tea.Model, tea.Cmd) {
	next := m.uiState.SelectedTask() + delta
	if next < 0 || next >= len(m.getCurrentTasks()) {
		return m, nil
	}
	m.uiState.SetSelectedTask(next)
	m.ensureTaskVisible()
	return m, nil
}

// handleGrab starts dragging the selected task. Grabbing again replaces the drag.
func (m Model) handleGrab() (tea.Model, tea.Cmd) {
	task := m.getCurrentTask()
	if task == nil {
		return m, nil
	}
	m.engine.DragStart(*task)
	return m, nil
}

// handleDrop drops the dragged task on the selected column
func (m Model) handleDrop() (tea.Model, tea.Cmd) {
	if _, dragging := m.engine.Dragged(); !dragging {
		return m, nil
	}
	return m, m.drop(m.currentColumn().Status)
}

// handleMoveTask moves the selected task one column left or right
func (m Model) handleMoveTask(delta int) (tea.Model, tea.Cmd) {
	task := m.getCurrentTask()
	if task == nil {
		return m, nil
	}
	target, ok := kanban.Neighbor(task.Status, delta)
	if !ok {
		return m, nil
	}
	m.uiState.SetSelectedColumn(kanban.ColumnIndex(target))
	m.uiState.SetSelectedTask(0)
	return m, m.move(*task, target)
}

func (m Model) handleAddTask() (tea.Model, tea.Cmd) {
	_, boardID := m.views.currentBoard()
	fields := taskservice.Fields{
		BoardID:  boardID,
		Status:   m.currentColumn().Status,
		Priority: models.PriorityMedium,
	}
	if err := m.dialogs.createTask.Open(fields); err != nil {
		return m, nil
	}
	m.openTaskForm(dialog.Creating{Kind: models.KindTask}, fields)
	return m, nil
}

func (m Model) handleEditTask() (tea.Model, tea.Cmd) {
	task := m.getCurrentTask()
	if task == nil {
		return m, nil
	}
	fields := taskservice.FieldsFrom(task)
	if err := m.dialogs.editTask.Open(taskservice.EditFields{Task: *task, Fields: fields}); err != nil {
		return m, nil
	}
	m.openTaskForm(dialog.Editing{Subject: task}, fields)
	return m, nil
}

func (m Model) handleDeleteTask() (tea.Model, tea.Cmd) {
	task := m.getCurrentTask()
	if task == nil {
		return m, nil
	}
	if err := m.dialogs.deleteTask.Open(*task); err != nil {
		return m, nil
	}
	m.uiState.SetMode(dialog.Deleting{Subject: task})
	return m, nil
}

func (m Model) handleAssignTask() (tea.Model, tea.Cmd) {
	task := m.getCurrentTask()
	if task == nil {
		return m, nil
	}
	if err := m.dialogs.assignTask.Open(taskservice.AssignFields{Task: *task}); err != nil {
		return m, nil
	}
	m.openPicker(task)
	return m, m.loadUsers()
}

func (m Model) handleComments() (tea.Model, tea.Cmd) {
	task := m.getCurrentTask()
	if task == nil {
		return m, nil
	}
	m.views.openDetail(m.app.API(), *task)
	m.comment = newCommentInput()
	m.openCommentDialog(*task)
	return m, tea.Batch(m.loadDetail(), m.loadUsers())
}
