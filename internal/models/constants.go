package models

import (
	"fmt"
	"strings"
)

// ============================================================================
// TASK STATUS
// ============================================================================

// Status is the kanban column a task sits in
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Statuses lists every status in board order
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}

// Valid reports whether s is one of the enumerated statuses
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Title returns the human-facing column name for the status
func (s Status) Title() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	}
	return string(s)
}

// ParseStatus maps user input ("todo", "In Progress", "in_progress", "done") to a Status
func ParseStatus(raw string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.NewReplacer(" ", "-", "_", "-").Replace(normalized)
	if normalized == "to-do" {
		normalized = string(StatusTodo)
	}

	s := Status(normalized)
	if !s.Valid() {
		return "", fmt.Errorf("%w: '%s' (must be: todo, in-progress, done)", ErrInvalidStatus, raw)
	}
	return s, nil
}

// ============================================================================
// TASK PRIORITY
// ============================================================================

// Priority is the urgency of a task
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every priority from lowest to highest
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// DefaultPriority is used when a task is created without an explicit priority
const DefaultPriority = PriorityMedium

// Valid reports whether p is one of the enumerated priorities
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Title returns the capitalized priority label
func (p Priority) Title() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	}
	return string(p)
}

// ParsePriority maps user input to a Priority
func ParsePriority(raw string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(raw)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: '%s' (must be: low, medium, high)", ErrInvalidPriority, raw)
	}
	return p, nil
}

// ============================================================================
// USER ROLE
// ============================================================================

// Role is the optional role of a user
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// ============================================================================
// ACTIVITY ACTIONS
// ============================================================================

// Action is the kind of change recorded in the activity log
type Action string

const (
	ActionCreated       Action = "created"
	ActionUpdated       Action = "updated"
	ActionDeleted       Action = "deleted"
	ActionAssigned      Action = "assigned"
	ActionCommented     Action = "commented"
	ActionStatusChanged Action = "status_changed"
)

// Valid reports whether a is one of the enumerated actions
func (a Action) Valid() bool {
	switch a {
	case ActionCreated, ActionUpdated, ActionDeleted, ActionAssigned, ActionCommented, ActionStatusChanged:
		return true
	}
	return false
}
