package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// TaskCardHeight is the fixed height of the task card, borders included
const TaskCardHeight = 5

// TaskCardProps controls how a card is drawn
type TaskCardProps struct {
	Width    int
	Selected bool
	Dragged  bool
	// Assignee is the username shown on the card, empty when unassigned
	Assignee string
}

// RenderTask renders a single task as a card
//
//	┌─────────────────────┐
//	│ {Task Title}        │
//	│ priority · due date │
//	│ @assignee #tag      │
//	└─────────────────────┘
func RenderTask(task models.Task, props TaskCardProps) string {
	style := TaskStyle
	switch {
	case props.Dragged:
		style = DraggedTaskStyle
	case props.Selected:
		style = SelectedTaskStyle
	}
	inner := max(props.Width-style.GetHorizontalFrameSize(), 4)

	title := truncate(task.Title, inner)
	if props.Selected {
		title = lipgloss.NewStyle().Bold(true).Render(title)
	}

	meta := PriorityStyle(task.Priority).Render(task.Priority.Title())
	if task.DueDate != "" {
		meta += SubtleStyle.Render(" · due " + task.DueDate)
	}

	var extra []string
	if props.Assignee != "" {
		extra = append(extra, "@"+props.Assignee)
	}
	for _, tag := range task.Tags {
		extra = append(extra, "#"+tag)
	}
	footer := SubtleStyle.Render(truncate(strings.Join(extra, " "), inner))

	return style.Width(props.Width - 2).Render(strings.Join([]string{title, meta, footer}, "\n"))
}

// truncate shortens s to width cells, ending with an ellipsis when cut
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
