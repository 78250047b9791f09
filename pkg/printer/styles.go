package printer

import "github.com/charmbracelet/lipgloss"

var (
	DimColor    = lipgloss.Color("#6c6c6c")
	AccentColor = lipgloss.Color("#7aa2f7")
	ToolColor   = lipgloss.Color("#9ece6a")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	FlagStyle = lipgloss.NewStyle().
			Foreground(ToolColor)

	NoteStyle = lipgloss.NewStyle().
			Foreground(DimColor)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ToolColor).
			Bold(true)
)
