package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/offer-simulator/internal/compensation"
	"github.com/rovshanmuradov/offer-simulator/internal/ui/style"
	"github.com/shopspring/decimal"
)

// Slider renders one bounded parameter as a labelled track with tick marks.
type Slider struct {
	label    string
	param    compensation.Param
	value    decimal.Decimal
	display  string
	width    int
	focused  bool
	disabled bool
}

// NewSlider creates a slider for param.
func NewSlider(label string, param compensation.Param) *Slider {
	return &Slider{
		label: label,
		param: param,
		value: param.Min,
		width: 32,
	}
}

// SetValue sets the value and its formatted text.
func (s *Slider) SetValue(value decimal.Decimal, display string) *Slider {
	s.value = value
	s.display = display
	return s
}

// SetWidth sets the track width in cells
func (s *Slider) SetWidth(width int) *Slider {
	s.width = width
	return s
}

// SetFocused marks the slider as the one receiving left/right keys
func (s *Slider) SetFocused(focused bool) *Slider {
	s.focused = focused
	return s
}

// SetDisabled renders the slider as read-only. It keeps its tone but is dimmed.
func (s *Slider) SetDisabled(disabled bool) *Slider {
	s.disabled = disabled
	return s
}

// Position returns the value's fraction of the range
func (s *Slider) Position() float64 {
	return s.param.Position(s.value)
}

// Color returns the track colour for the current value
func (s *Slider) Color() lipgloss.Color {
	return style.DefaultPalette().Tone(s.Position())
}

// tone is the style of the value text, the filled track and the thumb
func (s *Slider) tone() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.Color()).Faint(s.disabled)
}

// View renders the label row and the track
func (s *Slider) View() string {
	labelStyle := style.LabelStyle
	marker := "  "
	if s.focused {
		labelStyle = style.FocusedLabelStyle
		marker = "▸ "
	}

	label := labelStyle.Render(marker + s.label)
	value := style.ValueStyle.Foreground(s.Color()).Faint(s.disabled).Render(s.display)

	gap := s.width + 2 - lipgloss.Width(label) - lipgloss.Width(value)
	if gap < 1 {
		gap = 1
	}
	header := label + strings.Repeat(" ", gap) + value

	return header + "\n  " + s.track()
}

// track draws filled cells up to the thumb, then the rest of the rail. Tick marks sit on
// grid points.
func (s *Slider) track() string {
	if s.width <= 0 {
		return ""
	}

	thumb := int(s.Position()*float64(s.width-1) + 0.5)

	ticks := map[int]bool{}
	if steps := s.param.Steps(); steps > 0 && steps < int64(s.width) {
		for k := int64(0); k <= steps; k++ {
			ticks[int(float64(k)/float64(steps)*float64(s.width-1)+0.5)] = true
		}
	}

	filled := s.tone()
	rail := lipgloss.NewStyle().Foreground(style.DefaultPalette().TextMuted)
	thumbStyle := s.tone().Bold(true)

	var b strings.Builder
	for i := 0; i < s.width; i++ {
		switch {
		case i == thumb:
			b.WriteString(thumbStyle.Render("●"))
		case i < thumb && ticks[i]:
			b.WriteString(filled.Render("┿"))
		case i < thumb:
			b.WriteString(filled.Render("━"))
		case ticks[i]:
			b.WriteString(rail.Render("┼"))
		default:
			b.WriteString(rail.Render("─"))
		}
	}
	return b.String()
}
