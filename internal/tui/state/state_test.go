package state

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/taskdeck/internal/dialog"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

func TestUIState_Defaults(t *testing.T) {
	s := NewUIState()

	assert.Equal(t, BoardsPage, s.Page())
	assert.True(t, dialog.IsIdle(s.Mode()))
	assert.False(t, s.ShowHelp())
}

func TestUIState_OpenAndCloseBoard(t *testing.T) {
	s := NewUIState()
	s.SetSelectedColumn(2)
	s.SetSelectedTask(4)

	s.OpenBoard()
	assert.Equal(t, BoardPage, s.Page())
	assert.Equal(t, 0, s.SelectedColumn())
	assert.Equal(t, 0, s.SelectedTask())

	s.SetMode(dialog.Creating{Kind: models.KindTask})
	s.CloseBoard()
	assert.Equal(t, BoardsPage, s.Page())
	assert.True(t, dialog.IsIdle(s.Mode()))
}

func TestUIState_ContentHeightMinimum(t *testing.T) {
	s := NewUIState()
	s.SetSize(80, 3)
	assert.Equal(t, 5, s.ContentHeight())

	s.SetSize(80, 40)
	assert.Equal(t, 36, s.ContentHeight())
}

func TestUIState_EnsureTaskVisible(t *testing.T) {
	tests := []struct {
		name       string
		start      int
		taskIdx    int
		wantOffset int
	}{
		{"already visible", 0, 2, 0},
		{"below viewport", 0, 5, 3},
		{"above viewport", 4, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewUIState()
			s.taskScrollOffsets[models.StatusTodo] = tt.start
			s.EnsureTaskVisible(models.StatusTodo, tt.taskIdx, 3)
			assert.Equal(t, tt.wantOffset, s.TaskScrollOffset(models.StatusTodo))
		})
	}
}

func TestUIState_ClampSelection(t *testing.T) {
	s := NewUIState()
	s.SetSelectedTask(5)
	s.taskScrollOffsets[models.StatusDone] = 4

	s.ClampSelection(models.StatusDone, 2)
	assert.Equal(t, 1, s.SelectedTask())
	assert.Equal(t, 1, s.TaskScrollOffset(models.StatusDone))

	s.ClampSelection(models.StatusDone, 0)
	assert.Equal(t, 0, s.SelectedTask())
}

func TestFormState_FocusAndValues(t *testing.T) {
	f := NewFormState(
		Field{Label: "Title", Value: "  Write docs "},
		Field{Label: "Description"},
	)

	assert.Equal(t, 2, f.Len())
	assert.Equal(t, 0, f.Focused())
	assert.Equal(t, "Write docs", f.Value(0))

	f.FocusNext()
	assert.Equal(t, 1, f.Focused())
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})
	assert.Equal(t, "hi", f.Value(1))

	f.FocusNext()
	assert.Equal(t, 0, f.Focused())
	f.FocusPrev()
	assert.Equal(t, 1, f.Focused())
}

func TestFormState_View(t *testing.T) {
	f := NewFormState(Field{Label: "Title"}, Field{Label: "Tags"})
	view := f.View(func(s string) string { return "[" + s + "]" })

	assert.Contains(t, view, "[Title]")
	assert.Contains(t, view, "[Tags]")
}

func TestPickerState(t *testing.T) {
	users := []models.User{{ID: "u1", Username: "ada"}, {ID: "u2", Username: "grace"}}

	p := NewPickerState()
	assert.False(t, p.Loaded())
	assert.Nil(t, p.Selected())

	p.SetUsers(users, "u2")
	assert.True(t, p.Loaded())
	assert.Equal(t, 2, p.Cursor())
	assert.Equal(t, "grace", p.Selected().Username)

	p.Down()
	assert.Equal(t, 2, p.Cursor(), "cursor stops at the last user")

	p.Up()
	p.Up()
	assert.Nil(t, p.Selected(), "row 0 unassigns")
	p.Up()
	assert.Equal(t, 0, p.Cursor())

	p.SetUsers(users, "")
	assert.Equal(t, 0, p.Cursor())
}
