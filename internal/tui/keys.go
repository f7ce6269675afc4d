package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/thenoetrevino/taskdeck/internal/config"
)

// keyMap holds the key bindings of the board view, built from the user's
// configured key mappings
type keyMap struct {
	AddTask       key.Binding
	EditTask      key.Binding
	DeleteTask    key.Binding
	AssignTask    key.Binding
	CommentTask   key.Binding
	ViewTask      key.Binding
	MoveTaskLeft  key.Binding
	MoveTaskRight key.Binding

	Grab key.Binding
	Drop key.Binding

	PrevColumn key.Binding
	NextColumn key.Binding
	PrevTask   key.Binding
	NextTask   key.Binding
	Back       key.Binding

	SaveForm  key.Binding
	NextField key.Binding
	PrevField key.Binding
	Confirm   key.Binding
	Deny      key.Binding

	Refresh  key.Binding
	ShowHelp key.Binding
	Quit     key.Binding
}

func binding(k, help string, extra ...string) key.Binding {
	display := k
	if k == " " {
		display = "space"
	}
	return key.NewBinding(key.WithKeys(append([]string{k}, extra...)...), key.WithHelp(display, help))
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		AddTask:       binding(km.AddTask, "add"),
		EditTask:      binding(km.EditTask, "edit"),
		DeleteTask:    binding(km.DeleteTask, "delete"),
		AssignTask:    binding(km.AssignTask, "assign task"),
		CommentTask:   binding(km.CommentTask, "comment on task"),
		ViewTask:      binding(km.ViewTask, "view task"),
		MoveTaskLeft:  binding(km.MoveTaskLeft, "move task to previous column"),
		MoveTaskRight: binding(km.MoveTaskRight, "move task to next column"),

		Grab: binding(km.Grab, "grab task"),
		Drop: binding(km.Drop, "drop task / open board"),

		PrevColumn: binding(km.PrevColumn, "previous column", "left"),
		NextColumn: binding(km.NextColumn, "next column", "right"),
		PrevTask:   binding(km.PrevTask, "previous item", "up"),
		NextTask:   binding(km.NextTask, "next item", "down"),
		Back:       binding(km.Back, "back / cancel"),

		SaveForm:  binding(km.SaveForm, "save"),
		NextField: binding("tab", "next field"),
		PrevField: binding("shift+tab", "previous field"),
		Confirm:   binding("y", "confirm", "Y"),
		Deny:      binding("n", "cancel", "N"),

		Refresh:  binding(km.Refresh, "refresh"),
		ShowHelp: binding(km.ShowHelp, "help"),
		Quit:     binding(km.Quit, "quit", "ctrl+c"),
	}
}

// boardHelp lists the bindings shown on the help screen, grouped by section
func (k keyMap) boardHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AddTask, k.EditTask, k.DeleteTask, k.AssignTask, k.CommentTask, k.ViewTask},
		{k.Grab, k.Drop, k.MoveTaskLeft, k.MoveTaskRight},
		{k.PrevColumn, k.NextColumn, k.PrevTask, k.NextTask, k.Back},
		{k.Refresh, k.ShowHelp, k.Quit},
	}
}
