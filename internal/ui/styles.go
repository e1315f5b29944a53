package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles applied to console and TUI output.
type Styles struct {
	Divider lipgloss.Style
	Status  lipgloss.Style
	Task    lipgloss.Style
	Error   lipgloss.Style
}

// DefaultStyles returns the standard taskbot color scheme.
func DefaultStyles() Styles {
	return Styles{
		Divider: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		Task:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// Render styles a single response line based on its shape: divider frames are
// dimmed, task lines (and numbered task lines) use the task style, errors use
// the error style, everything else is a status line.
func (s Styles) Render(line string) string {
	switch {
	case line == Divider:
		return s.Divider.Render(line)
	case isTaskLine(line):
		return s.Task.Render(line)
	case line == "index out of bounds" || strings.HasSuffix(line, "doesn't exist as a command") || strings.HasPrefix(line, "Invalid input for"):
		return s.Error.Render(line)
	default:
		return s.Status.Render(line)
	}
}

// isTaskLine reports whether the line is a task string form, with or without
// a leading "N." list number.
func isTaskLine(line string) bool {
	rest := strings.TrimLeft(line, "0123456789")
	rest = strings.TrimPrefix(rest, ".")
	return strings.HasPrefix(rest, "[T][") || strings.HasPrefix(rest, "[D][") || strings.HasPrefix(rest, "[E][")
}
