package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// RenderBoardList renders the boards page: one row per board with its task count
func RenderBoardList(boards []models.Board, taskCounts map[string]int, selected, width int) string {
	if len(boards) == 0 {
		return SubtleStyle.Italic(true).Render("No boards yet. Press a to create one.")
	}

	rows := make([]string, len(boards))
	for i, b := range boards {
		cursor := "  "
		nameStyle := NormalStyle
		if i == selected {
			cursor = TitleStyle.Render("▸ ")
			nameStyle = TitleStyle
		}

		count := taskCounts[b.ID]
		countText := fmt.Sprintf("%d tasks", count)
		if count == 1 {
			countText = "1 task"
		}

		line := cursor + nameStyle.Render(b.Name) + SubtleStyle.Render("  "+countText)
		if b.Description != "" {
			line += "\n    " + SubtleStyle.Render(truncate(b.Description, max(width-6, 10)))
		}
		rows[i] = line
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(rows, "\n"))
}
