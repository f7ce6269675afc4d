// Package dialog models which mutation dialog is open and drives a single
// dialog from open to confirmed.
package dialog

import (
	"fmt"

	"github.com/thenoetrevino/taskdeck/internal/models"
)

// Mode is the dialog state of a view. It is a closed set: Idle, Creating,
// Editing, Deleting, Assigning and Commenting are the only implementations.
type Mode interface {
	isMode()
}

// Idle means no dialog is open
type Idle struct{}

// Creating is a create dialog for a new entity of Kind
type Creating struct {
	Kind models.Kind
}

// Editing is an edit dialog for Subject
type Editing struct {
	Subject models.Entity
}

// Deleting is a delete confirmation for Subject
type Deleting struct {
	Subject models.Entity
}

// Assigning is the assignee picker for a task
type Assigning struct {
	Subject *models.Task
}

// Commenting is the comment thread of a task
type Commenting struct {
	Subject *models.Task
}

func (Idle) isMode()       {}
func (Creating) isMode()   {}
func (Editing) isMode()    {}
func (Deleting) isMode()   {}
func (Assigning) isMode()  {}
func (Commenting) isMode() {}

// IsIdle reports whether no dialog is open
func IsIdle(m Mode) bool {
	_, ok := m.(Idle)
	return m == nil || ok
}

// Subject returns the entity a mode acts on, if any
func Subject(m Mode) (models.Entity, bool) {
	switch m := m.(type) {
	case Editing:
		return m.Subject, m.Subject != nil
	case Deleting:
		return m.Subject, m.Subject != nil
	case Assigning:
		return m.Subject, m.Subject != nil
	case Commenting:
		return m.Subject, m.Subject != nil
	default:
		return nil, false
	}
}

// Describe returns the dialog title for a mode
func Describe(m Mode) string {
	switch m := m.(type) {
	case nil, Idle:
		return ""
	case Creating:
		return "Create " + m.Kind.Title()
	case Editing:
		return "Edit " + m.Subject.EntityKind().Title()
	case Deleting:
		return "Delete " + m.Subject.EntityKind().Title()
	case Assigning:
		return "Assign Task"
	case Commenting:
		return "Comments"
	default:
		panic(fmt.Sprintf("dialog: unknown mode %T", m))
	}
}
