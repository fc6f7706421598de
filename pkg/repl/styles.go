package repl

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#A8E6CF")
	muted  = lipgloss.Color("#6B7280")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	tipsStyle = lipgloss.NewStyle().
			Foreground(muted)

	headerStyle = lipgloss.NewStyle().
			Bold(true)
)
