package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusBarProps is the text of the status bar
type StatusBarProps struct {
	Width int
	Left  string
	Right string
}

// RenderStatusBar renders a status bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	leftRendered := SubtleStyle.Render(props.Left)
	rightRendered := SubtleStyle.Render(props.Right)

	// Calculate space between left and right text
	gapWidth := max(props.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 1)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, strings.Repeat(" ", gapWidth), rightRendered)
}
