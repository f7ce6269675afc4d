package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Enum Tests
// ============================================================================

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected Status
	}{
		{"todo", StatusTodo},
		{"TODO", StatusTodo},
		{"To Do", StatusTodo},
		{"in-progress", StatusInProgress},
		{"In Progress", StatusInProgress},
		{"in_progress", StatusInProgress},
		{" done ", StatusDone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseStatus_Invalid(t *testing.T) {
	_, err := ParseStatus("blocked")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidStatus))
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority("High")
	require.NoError(t, err)
	assert.Equal(t, PriorityHigh, p)

	_, err = ParsePriority("critical")
	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestStatusTitle(t *testing.T) {
	assert.Equal(t, "To Do", StatusTodo.Title())
	assert.Equal(t, "In Progress", StatusInProgress.Title())
	assert.Equal(t, "Done", StatusDone.Title())
}

func TestActionValid(t *testing.T) {
	assert.True(t, ActionStatusChanged.Valid())
	assert.True(t, ActionAssigned.Valid())
	assert.False(t, Action("archived").Valid())
}

// ============================================================================
// Struct Tests
// ============================================================================

func TestBoardHasMember(t *testing.T) {
	b := &Board{ID: "b1", UserID: "owner", Members: []string{"m1"}}

	assert.True(t, b.HasMember("owner"))
	assert.True(t, b.HasMember("m1"))
	assert.False(t, b.HasMember("stranger"))
}

func TestUserInitials(t *testing.T) {
	assert.Equal(t, "AL", (&User{Username: "alice"}).Initials())
	assert.Equal(t, "B", (&User{Username: "b"}).Initials())
}

func TestEntityKinds(t *testing.T) {
	var e Entity = &Task{ID: "t1"}
	assert.Equal(t, KindTask, e.EntityKind())
	assert.Equal(t, "t1", e.EntityID())

	e = &Board{ID: "b1"}
	assert.Equal(t, KindBoard, e.EntityKind())
}
