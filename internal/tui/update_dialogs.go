package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/taskdeck/internal/dialog"
	"github.com/thenoetrevino/taskdeck/internal/models"
	boardservice "github.com/thenoetrevino/taskdeck/internal/services/board"
	commentservice "github.com/thenoetrevino/taskdeck/internal/services/comment"
	taskservice "github.com/thenoetrevino/taskdeck/internal/services/task"
	"github.com/thenoetrevino/taskdeck/internal/tui/state"
)

// Task form field order
const (
	taskFieldTitle = iota
	taskFieldDescription
	taskFieldPriority
	taskFieldDueDate
	taskFieldTags
)

// Board form field order
const (
	boardFieldName = iota
	boardFieldDescription
)

// busy reports whether any dialog is waiting on the backend
func (d *dialogs) busy() bool {
	return d.createBoard.Busy() || d.editBoard.Busy() || d.deleteBoard.Busy() ||
		d.createTask.Busy() || d.editTask.Busy() || d.deleteTask.Busy() ||
		d.assignTask.Busy() || d.addComment.Busy()
}

// closeAll closes every open dialog. It reports false if one is busy.
func (d *dialogs) closeAll() bool {
	closers := []interface {
		IsOpen() bool
		Close() error
	}{
		d.createBoard, d.editBoard, d.deleteBoard,
		d.createTask, d.editTask, d.deleteTask, d.assignTask, d.addComment,
	}
	for _, c := range closers {
		if c.IsOpen() {
			if err := c.Close(); err != nil {
				return false
			}
		}
	}
	return true
}

func (m *Model) openBoardForm(mode dialog.Mode, f boardservice.Fields) {
	m.form = state.NewFormState(
		state.Field{Label: "Name", Value: f.Name, Placeholder: "Board name", CharLimit: 100},
		state.Field{Label: "Description", Value: f.Description, Placeholder: "Optional"},
	)
	m.uiState.SetMode(mode)
}

func (m *Model) openTaskForm(mode dialog.Mode, f taskservice.Fields) {
	m.form = state.NewFormState(
		state.Field{Label: "Title", Value: f.Title, Placeholder: "What needs doing?"},
		state.Field{Label: "Description", Value: f.Description, Placeholder: "Optional"},
		state.Field{Label: "Priority", Value: string(f.Priority), Placeholder: "low, medium or high"},
		state.Field{Label: "Due date", Value: f.DueDate, Placeholder: "YYYY-MM-DD"},
		state.Field{Label: "Tags", Value: strings.Join(f.Tags, ", "), Placeholder: "comma separated"},
	)
	m.uiState.SetMode(mode)
}

func (m *Model) openPicker(task *models.Task) {
	m.picker = state.NewPickerState()
	if users := m.views.usernameMap(); len(users) > 0 {
		// Show the cached directory until the fresh list arrives
		list := make([]models.User, 0, len(users))
		for id, name := range users {
			list = append(list, models.User{ID: id, Username: name})
		}
		sortUsers(list)
		m.picker.SetUsers(list, task.AssignedTo)
	}
	m.uiState.SetMode(dialog.Assigning{Subject: task})
}

func sortUsers(users []models.User) {
	slices.SortFunc(users, func(a, b models.User) int {
		return strings.Compare(a.Username, b.Username)
	})
}

func newCommentInput() *state.FormState {
	return state.NewFormState(state.Field{Label: "New comment", Placeholder: "Write a comment and press enter"})
}

func (m *Model) openCommentDialog(task models.Task) {
	_ = m.dialogs.addComment.Open(commentservice.AddFields{Task: task})
	m.uiState.SetMode(dialog.Commenting{Subject: &task})
}

// closeDialog closes the open dialog unless a submission is in flight
func (m *Model) closeDialog() {
	if !m.dialogs.closeAll() {
		return
	}
	m.form = nil
	m.picker = nil
	m.comment = nil
	m.uiState.SetMode(dialog.Idle{})
}

// handleDialogKey handles keys while a dialog is open. Keys are ignored
// while a submission is in flight.
func (m Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.dialogs.busy() {
		return m, nil
	}
	m.notifications.Clear()

	if key.Matches(msg, m.keys.Back) {
		m.closeDialog()
		return m, nil
	}

	switch mode := m.uiState.Mode().(type) {
	case dialog.Creating, dialog.Editing:
		return m.handleFormKey(msg)
	case dialog.Deleting:
		return m.handleDeleteKey(msg, mode)
	case dialog.Assigning:
		return m.handlePickerKey(msg, mode)
	case dialog.Commenting:
		return m.handleCommentKey(msg, mode)
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.SaveForm):
		return m, m.submitForm()
	case key.Matches(msg, m.keys.NextField):
		m.form.FocusNext()
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.form.FocusPrev()
		return m, nil
	}
	return m, m.form.Update(msg)
}

// submitForm copies the form into the open controller and confirms it
func (m Model) submitForm() tea.Cmd {
	switch mode := m.uiState.Mode().(type) {
	case dialog.Creating:
		if mode.Kind == models.KindBoard {
			return setAndConfirm(m, m.dialogs.createBoard, m.boardFields(m.dialogs.createBoard.Fields()))
		}
		return setAndConfirm(m, m.dialogs.createTask, m.taskFields(m.dialogs.createTask.Fields(), true))
	case dialog.Editing:
		if mode.Subject.EntityKind() == models.KindBoard {
			return setAndConfirm(m, m.dialogs.editBoard, m.boardFields(m.dialogs.editBoard.Fields()))
		}
		edit := m.dialogs.editTask.Fields()
		edit.Fields = m.taskFields(edit.Fields, false)
		return setAndConfirm(m, m.dialogs.editTask, edit)
	}
	return nil
}

func setAndConfirm[F any](m Model, ctrl *dialog.Controller[F], fields F) tea.Cmd {
	if err := ctrl.SetFields(fields); err != nil {
		return nil
	}
	return confirm(m.ctx, ctrl)
}

func (m Model) boardFields(f boardservice.Fields) boardservice.Fields {
	f.Name = m.form.Value(boardFieldName)
	f.Description = m.form.Value(boardFieldDescription)
	return f
}

// taskFields reads the task form. An unparseable priority is passed
// through so validation reports it.
func (m Model) taskFields(f taskservice.Fields, creating bool) taskservice.Fields {
	f.Title = m.form.Value(taskFieldTitle)
	f.Description = m.form.Value(taskFieldDescription)
	f.DueDate = m.form.Value(taskFieldDueDate)

	raw := m.form.Value(taskFieldPriority)
	if p, err := models.ParsePriority(raw); err == nil {
		f.Priority = p
	} else {
		f.Priority = models.Priority(raw)
	}

	f.Tags = taskservice.ParseTags(m.form.Value(taskFieldTags))
	if f.Tags == nil && !creating {
		f.Tags = []string{}
	}
	return f
}

func (m Model) handleDeleteKey(msg tea.KeyMsg, mode dialog.Deleting) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		if mode.Subject.EntityKind() == models.KindBoard {
			return m, confirm(m.ctx, m.dialogs.deleteBoard)
		}
		return m, confirm(m.ctx, m.dialogs.deleteTask)
	case key.Matches(msg, m.keys.Deny):
		m.closeDialog()
	}
	return m, nil
}

func (m Model) handlePickerKey(msg tea.KeyMsg, mode dialog.Assigning) (tea.Model, tea.Cmd) {
	if m.picker == nil {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.PrevTask):
		m.picker.Up()
	case key.Matches(msg, m.keys.NextTask):
		m.picker.Down()
	case key.Matches(msg, m.keys.Drop):
		if !m.picker.Loaded() {
			return m, nil
		}
		return m, setAndConfirm(m, m.dialogs.assignTask, taskservice.AssignFields{
			Task:     *mode.Subject,
			Assignee: m.picker.Selected(),
		})
	}
	return m, nil
}

func (m Model) handleCommentKey(msg tea.KeyMsg, mode dialog.Commenting) (tea.Model, tea.Cmd) {
	if m.comment == nil {
		return m, nil
	}
	if msg.Type == tea.KeyEnter {
		return m, setAndConfirm(m, m.dialogs.addComment, commentservice.AddFields{
			Task:    *mode.Subject,
			Content: m.comment.Value(0),
		})
	}
	return m, m.comment.Update(msg)
}
