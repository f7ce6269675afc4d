// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/taskdeck/internal/config/colors"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// These are cached to avoid recomputing on every redraw.
var (
	// ColumnStyle defines the appearance of kanban board columns
	ColumnStyle lipgloss.Style

	// SelectedColumnStyle highlights the column holding the cursor
	SelectedColumnStyle lipgloss.Style

	// DropTargetStyle highlights the column a dragged task would land in
	DropTargetStyle lipgloss.Style

	// TaskStyle defines the appearance of individual tasks as cards
	TaskStyle lipgloss.Style

	// SelectedTaskStyle is a card under the cursor
	SelectedTaskStyle lipgloss.Style

	// DraggedTaskStyle is the card being dragged
	DraggedTaskStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (column names, app header)
	TitleStyle lipgloss.Style

	// SubtleStyle is secondary text
	SubtleStyle lipgloss.Style

	// NormalStyle is regular text
	NormalStyle lipgloss.Style

	// CreateBoxStyle frames creation dialogs
	CreateBoxStyle lipgloss.Style

	// EditBoxStyle frames edit dialogs
	EditBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle frames deletion confirmations
	DeleteConfirmBoxStyle lipgloss.Style

	// HelpBoxStyle frames the help screen
	HelpBoxStyle lipgloss.Style

	statusStyles   map[models.Status]lipgloss.Style
	priorityStyles map[models.Priority]lipgloss.Style
)

func init() {
	InitStyles(colors.Default())
}

// InitStyles initializes all styles with the given color scheme
func InitStyles(c *colors.ColorScheme) {
	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.ColumnBorder)).
		Padding(0, 1)
	SelectedColumnStyle = ColumnStyle.BorderForeground(lipgloss.Color(c.SelectedBorder))
	DropTargetStyle = ColumnStyle.
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(c.DragBorder))

	TaskStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(c.ColumnBorder)).
		Padding(0, 1)
	SelectedTaskStyle = TaskStyle.BorderForeground(lipgloss.Color(c.SelectedBorder))
	DraggedTaskStyle = TaskStyle.
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(c.DragBorder))

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Accent))
	SubtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Subtle))
	NormalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Normal))

	dialogBox := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	CreateBoxStyle = dialogBox.BorderForeground(lipgloss.Color(c.Done))
	EditBoxStyle = dialogBox.BorderForeground(lipgloss.Color(c.Todo))
	DeleteConfirmBoxStyle = dialogBox.BorderForeground(lipgloss.Color(c.PriorityHigh))
	HelpBoxStyle = dialogBox.BorderForeground(lipgloss.Color(c.Accent))

	statusStyles = map[models.Status]lipgloss.Style{
		models.StatusTodo:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Todo)),
		models.StatusInProgress: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.InProgress)),
		models.StatusDone:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Done)),
	}
	priorityStyles = map[models.Priority]lipgloss.Style{
		models.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.PriorityLow)),
		models.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color(c.PriorityMedium)),
		models.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.PriorityHigh)),
	}
}

// StatusStyle returns the column color of a status
func StatusStyle(s models.Status) lipgloss.Style {
	if style, ok := statusStyles[s]; ok {
		return style
	}
	return NormalStyle
}

// PriorityStyle returns the color of a priority
func PriorityStyle(p models.Priority) lipgloss.Style {
	if style, ok := priorityStyles[p]; ok {
		return style
	}
	return NormalStyle
}
