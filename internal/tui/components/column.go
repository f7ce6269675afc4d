package components

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/taskdeck/internal/kanban"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// ColumnProps controls how a column is drawn
type ColumnProps struct {
	Width  int
	Height int
	// Selected marks the column holding the cursor
	Selected bool
	// DropTarget marks the column a dragged task would land in
	DropTarget bool
	// SelectedTask is the index of the highlighted task, -1 for none
	SelectedTask int
	// DraggedID is the id of the task being dragged
	DraggedID    string
	ScrollOffset int
	// Assignees maps user ids to usernames
	Assignees map[string]string
}

// columnOverhead is the border (2), header (1) and scroll indicators (2)
const columnOverhead = 5

// MaxVisibleTasks returns how many cards fit in a column of height
func MaxVisibleTasks(height int) int {
	return max((height-columnOverhead)/TaskCardHeight, 1)
}

// RenderColumn renders a complete column with its title and tasks
//
// Layout:
//
//	{Column Title} ({count})
//	▲ (if scrolled down)
//	{Task 1}
//	{Task 2}
//	...
//	▼ (if more tasks below)
func RenderColumn(column kanban.Column, tasks []models.Task, props ColumnProps) string {
	style := ColumnStyle
	switch {
	case props.DropTarget:
		style = DropTargetStyle
	case props.Selected:
		style = SelectedColumnStyle
	}
	inner := props.Width - style.GetHorizontalFrameSize()

	var b strings.Builder
	b.WriteString(StatusStyle(column.Status).Render(fmt.Sprintf("%s (%d)", column.Title, len(tasks))))
	b.WriteString("\n")

	if len(tasks) == 0 {
		b.WriteString(SubtleStyle.Italic(true).Render("No tasks"))
	} else {
		visible := MaxVisibleTasks(props.Height)
		offset := min(max(props.ScrollOffset, 0), len(tasks)-1)
		end := min(offset+visible, len(tasks))

		if offset > 0 {
			b.WriteString(SubtleStyle.Render("▲ more above"))
		}
		b.WriteString("\n")

		for i, t := range tasks[offset:end] {
			b.WriteString(RenderTask(t, TaskCardProps{
				Width:    inner,
				Selected: props.Selected && offset+i == props.SelectedTask,
				Dragged:  t.ID == props.DraggedID,
				Assignee: props.Assignees[t.AssignedTo],
			}))
			b.WriteString("\n")
		}

		if end < len(tasks) {
			b.WriteString(SubtleStyle.Render("▼ more below"))
		}
	}

	return style.
		Width(props.Width - 2).
		Height(max(props.Height-2, 1)).
		Render(b.String())
}
