package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Field describes one text input of a form
type Field struct {
	Label       string
	Value       string
	Placeholder string
	CharLimit   int
}

// FormState holds the text inputs of a create or edit dialog.
// Exactly one input is focused at a time.
type FormState struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

// NewFormState creates a form with the first field focused.
func NewFormState(fields ...Field) *FormState {
	f := &FormState{
		labels: make([]string, len(fields)),
		inputs: make([]textinput.Model, len(fields)),
	}
	for i, field := range fields {
		in := textinput.New()
		in.Prompt = "> "
		in.Placeholder = field.Placeholder
		if field.CharLimit > 0 {
			in.CharLimit = field.CharLimit
		}
		in.SetValue(field.Value)
		f.labels[i] = field.Label
		f.inputs[i] = in
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

// Len returns the number of fields.
func (f *FormState) Len() int {
	return len(f.inputs)
}

// Focused returns the index of the focused field.
func (f *FormState) Focused() int {
	return f.focus
}

// FocusNext moves focus to the next field, wrapping around.
func (f *FormState) FocusNext() {
	f.setFocus((f.focus + 1) % len(f.inputs))
}

// FocusPrev moves focus to the previous field, wrapping around.
func (f *FormState) FocusPrev() {
	f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs))
}

func (f *FormState) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

// Value returns the trimmed value of field i.
func (f *FormState) Value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// SetWidth sets the width of every input.
func (f *FormState) SetWidth(width int) {
	for i := range f.inputs {
		f.inputs[i].Width = width
	}
}

// Update forwards a message to the focused input.
func (f *FormState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// View renders every field as a label above its input.
func (f *FormState) View(labelStyle func(string) string) string {
	var b strings.Builder
	for i, in := range f.inputs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(labelStyle(f.labels[i]))
		b.WriteString("\n")
		b.WriteString(in.View())
	}
	return b.String()
}
