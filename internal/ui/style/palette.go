package style

import "github.com/charmbracelet/lipgloss"

var (
	// Slider tones, matching the offer page
	Green = lipgloss.Color("#30D158") // slider past midpoint, positive amounts
	Gray  = lipgloss.Color("#9CA3AF") // slider at or below midpoint

	Cyan   = lipgloss.Color("#00E5FF") // focus highlight
	Yellow = lipgloss.Color("#FFB500") // warnings
	Red    = lipgloss.Color("#FF5555") // errors
	Blue   = lipgloss.Color("#3B82F6") // info

	Base03 = lipgloss.Color("#1B1D23") // Background
	Base02 = lipgloss.Color("#262831") // Darker background
	Base01 = lipgloss.Color("#6C7280") // Muted text
	Base2  = lipgloss.Color("#ECEFF4") // Primary text
	Base1  = lipgloss.Color("#B4BCC8") // Secondary text
)

// Palette provides a centralized color management
type Palette struct {
	Primary lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color
	Info    lipgloss.Color

	Background    lipgloss.Color
	BackgroundAlt lipgloss.Color
	Text          lipgloss.Color
	TextMuted     lipgloss.Color
	TextSecondary lipgloss.Color

	// Slider tones
	Raised  lipgloss.Color
	Lowered lipgloss.Color
}

// DefaultPalette returns the default color palette
func DefaultPalette() Palette {
	return Palette{
		Primary: Cyan,
		Success: Green,
		Error:   Red,
		Warning: Yellow,
		Info:    Blue,

		Background:    Base03,
		BackgroundAlt: Base02,
		Text:          Base2,
		TextMuted:     Base01,
		TextSecondary: Base1,

		Raised:  Green,
		Lowered: Gray,
	}
}

// Tone picks the slider colour for a position in [0,1]: green once past the midpoint.
func (p Palette) Tone(position float64) lipgloss.Color {
	if position > 0.5 {
		return p.Raised
	}
	return p.Lowered
}
