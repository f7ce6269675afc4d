// Package styles holds the lipgloss styles of the human-readable command output.
package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/taskdeck/internal/config"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 72

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Status:", "Priority:"
	ValueStyle    lipgloss.Style
	SectionStyle  lipgloss.Style // For section headers like "Description", "Comments"

	// Badge styles
	statusStyles   map[models.Status]lipgloss.Style
	priorityStyles map[models.Priority]lipgloss.Style

	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
)

func init() {
	Init(config.Default().ColorScheme)
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(0, 1).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	badge := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
	}
	statusStyles = map[models.Status]lipgloss.Style{
		models.StatusTodo:       badge(colors.Todo),
		models.StatusInProgress: badge(colors.InProgress),
		models.StatusDone:       badge(colors.Done),
	}
	priorityStyles = map[models.Priority]lipgloss.Style{
		models.PriorityLow:    badge(colors.PriorityLow),
		models.PriorityMedium: badge(colors.PriorityMedium),
		models.PriorityHigh:   badge(colors.PriorityHigh),
	}

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg)).
		Background(lipgloss.Color(colors.InfoBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg)).
		Background(lipgloss.Color(colors.ErrorBg)).
		Padding(0, 1)

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.WarningFg)).
		Background(lipgloss.Color(colors.WarningBg)).
		Padding(0, 1)
}

// StatusBadge renders the column title of a status in its column color
func StatusBadge(s models.Status) string {
	style, ok := statusStyles[s]
	if !ok {
		return string(s)
	}
	return style.Render(s.Title())
}

// PriorityBadge renders a priority in its color
func PriorityBadge(p models.Priority) string {
	style, ok := priorityStyles[p]
	if !ok {
		return string(p)
	}
	return style.Render(p.Title())
}

// Field renders "Label: value"
func Field(label, value string) string {
	return fmt.Sprintf("%s %s", LabelStyle.Render(label+":"), ValueStyle.Render(value))
}

// RenderCard renders a bordered card with a title line and field lines
func RenderCard(title string, lines ...string) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(title))
	for _, line := range lines {
		b.WriteString("\n")
		b.WriteString(line)
	}
	return CardStyle.Render(b.String())
}

// Markdown renders text for the terminal, falling back to the raw text
func Markdown(text string) string {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(CardWidth))
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}
