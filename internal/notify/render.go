package notify

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/taskdeck/internal/config/colors"
)

type style struct {
	icon       string
	title      string
	foreground string
	background string
}

// palette is replaced by SetColors
var palette = colors.Default()

// SetColors selects the color scheme used by the renderers
func SetColors(scheme *colors.ColorScheme) {
	if scheme != nil {
		palette = scheme
	}
}

func (l Level) style() style {
	switch l {
	case LevelWarning:
		return style{icon: "⚠", title: "Warning", foreground: palette.WarningFg, background: palette.WarningBg}
	case LevelError:
		return style{icon: "✕", title: "Error", foreground: palette.ErrorFg, background: palette.ErrorBg}
	default:
		return style{icon: "🔔", title: "Info", foreground: palette.InfoFg, background: palette.InfoBg}
	}
}

// Render renders a notification banner with a header line
func Render(n Notification) string {
	s := n.Level.style()

	headerText := s.icon + " " + s.title
	width := max(lipgloss.Width(headerText), lipgloss.Width(n.Message))

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.foreground)).
		Bold(true).
		Width(width).
		Render(headerText)

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.foreground)).
		Width(width).
		Render(n.Message)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(s.background)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

// RenderInline renders a compact single-line notification
func RenderInline(n Notification) string {
	s := n.Level.style()
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.foreground)).
		Render(s.icon + " " + n.Message)
}

// RenderPlain renders a notification without styling
func RenderPlain(n Notification) string {
	return n.Message
}
