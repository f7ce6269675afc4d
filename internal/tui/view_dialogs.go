package tui

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/taskdeck/internal/cache"
	"github.com/thenoetrevino/taskdeck/internal/dialog"
	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/tui/components"
)

// dialogWidth is the width of the dialog boxes
const dialogWidth = 60

// viewDialog renders the open dialog. The switch covers every mode.
func (m Model) viewDialog() string {
	title := components.TitleStyle.Render(dialog.Describe(m.uiState.Mode()))
	busy := ""
	if m.dialogs.busy() {
		busy = "\n\n" + components.SubtleStyle.Render("Saving...")
	}

	switch mode := m.uiState.Mode().(type) {
	case dialog.Creating:
		return components.CreateBoxStyle.Width(dialogWidth).Render(title + "\n\n" + m.viewForm() + busy)
	case dialog.Editing:
		return components.EditBoxStyle.Width(dialogWidth).Render(title + "\n\n" + m.viewForm() + busy)
	case dialog.Deleting:
		return components.DeleteConfirmBoxStyle.Width(dialogWidth).Render(title + "\n\n" + deletePrompt(mode.Subject) + busy)
	case dialog.Assigning:
		return components.EditBoxStyle.Width(dialogWidth).Render(title + "\n\n" + m.viewPicker(mode.Subject) + busy)
	case dialog.Commenting:
		return components.EditBoxStyle.Width(dialogWidth + 20).Render(title + "\n\n" + m.viewThread(mode.Subject) + busy)
	}
	return ""
}

func (m Model) viewForm() string {
	if m.form == nil {
		return ""
	}
	m.form.SetWidth(dialogWidth - 10)
	hint := fmt.Sprintf("%s: save · tab: next field · %s: cancel",
		m.keys.SaveForm.Help().Key, m.keys.Back.Help().Key)
	return m.form.View(func(s string) string { return components.TitleStyle.Render(s) }) +
		"\n\n" + components.SubtleStyle.Render(hint)
}

func deletePrompt(subject models.Entity) string {
	switch s := subject.(type) {
	case *models.Board:
		return fmt.Sprintf("Delete board '%s'?\nAll of its tasks and comments are deleted too.\n\n[y]es  [n]o", s.Name)
	case *models.Task:
		return fmt.Sprintf("Delete '%s'?\n\n[y]es  [n]o", s.Title)
	}
	return "Delete?\n\n[y]es  [n]o"
}

func (m Model) viewPicker(task *models.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", task.Title)
	if m.picker == nil || !m.picker.Loaded() {
		b.WriteString(components.SubtleStyle.Render("Loading users..."))
		return b.String()
	}

	row := func(i int, label string, current bool) {
		cursor := "  "
		if i == m.picker.Cursor() {
			cursor = components.TitleStyle.Render("▸ ")
		}
		if current {
			label += components.SubtleStyle.Render(" (current)")
		}
		b.WriteString(cursor + label + "\n")
	}

	row(0, "Unassigned", task.AssignedTo == "")
	for i, u := range m.picker.Users() {
		row(i+1, u.Username, u.ID == task.AssignedTo)
	}
	b.WriteString("\n" + components.SubtleStyle.Render("enter: assign · esc: cancel"))
	return b.String()
}

func (m Model) viewThread(task *models.Task) string {
	var b strings.Builder

	b.WriteString(components.TitleStyle.Render(task.Title))
	b.WriteString("\n")
	b.WriteString(components.StatusStyle(task.Status).Render(task.Status.Title()))
	b.WriteString(components.SubtleStyle.Render(" · "))
	b.WriteString(components.PriorityStyle(task.Priority).Render(task.Priority.Title()))
	if task.DueDate != "" {
		b.WriteString(components.SubtleStyle.Render(" · due " + task.DueDate))
	}
	if task.Description != "" {
		b.WriteString("\n\n" + task.Description)
	}

	var (
		detail cache.TaskDetail
		loaded bool
	)
	if store, _ := m.views.currentDetail(); store != nil {
		detail, loaded = store.Get()
	}
	b.WriteString("\n\n" + components.TitleStyle.Render("Comments") + "\n")
	switch {
	case !loaded:
		b.WriteString(components.SubtleStyle.Render("Loading comments..."))
	case len(detail.Comments) == 0:
		b.WriteString(components.SubtleStyle.Render("No comments yet"))
	default:
		for _, c := range detail.Comments {
			fmt.Fprintf(&b, "%s %s\n  %s\n",
				components.TitleStyle.Render(detail.AuthorName(c.UserID)),
				components.SubtleStyle.Render(c.CreatedAt.Local().Format("Jan 2 15:04")),
				c.Content)
		}
	}

	if m.comment != nil {
		m.comment.SetWidth(dialogWidth)
		b.WriteString("\n\n" + m.comment.View(func(s string) string { return components.SubtleStyle.Render(s) }))
	}
	return b.String()
}
