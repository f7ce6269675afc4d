package models

import "time"

// Task is a unit of work belonging to exactly one board.
// BoardID is fixed at creation; TaskUpdate has no way to change it.
type Task struct {
	ID          string    `json:"id"`
	BoardID     string    `json:"boardId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Priority    Priority  `json:"priority"`
	DueDate     string    `json:"dueDate,omitempty"` // YYYY-MM-DD
	UserID      string    `json:"userId"`
	AssignedTo  string    `json:"assignedTo,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Attachments []string  `json:"attachments,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EntityID implements Entity
func (t *Task) EntityID() string { return t.ID }

// EntityKind implements Entity
func (t *Task) EntityKind() Kind { return KindTask }

// IsAssigned reports whether the task has an assignee
func (t *Task) IsAssigned() bool {
	return t.AssignedTo != ""
}

// DueDateLayout is the wire format of Task.DueDate
const DueDateLayout = "2006-01-02"
