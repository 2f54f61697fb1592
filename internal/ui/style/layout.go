package style

import (
	"github.com/charmbracelet/lipgloss"
)

var palette = DefaultPalette()

// Header styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(palette.Text).
			Bold(true).
			Margin(0, 0, 1, 0)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Italic(true)
)

// Panel styles
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.TextMuted).
			Padding(1, 2).
			Margin(0, 1)

	HighlightStyle = lipgloss.NewStyle().
			Background(palette.BackgroundAlt).
			Padding(0, 1)
)

// Row styles
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(palette.TextSecondary).
			Bold(true)

	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(palette.Primary).
				Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(palette.Success).
			Bold(true).
			Align(lipgloss.Right)

	MutedStyle = lipgloss.NewStyle().
			Foreground(palette.TextMuted)

	NoteStyle = lipgloss.NewStyle().
			Foreground(palette.TextSecondary)

	TotalStyle = lipgloss.NewStyle().
			Foreground(palette.Success).
			Bold(true)
)

// Status styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(palette.Error).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(palette.Success)
)
