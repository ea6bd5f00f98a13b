package repl

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Error lipgloss.Style
	Row   lipgloss.Style
	Info  lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Row:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Info:  lipgloss.NewStyle().Faint(true),
	}
}

// PlainStyles renders text unchanged, for pipes and tests.
func PlainStyles() Styles {
	return Styles{
		Error: lipgloss.NewStyle(),
		Row:   lipgloss.NewStyle(),
		Info:  lipgloss.NewStyle(),
	}
}
