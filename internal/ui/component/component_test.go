package component

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/offer-simulator/internal/compensation"
	"github.com/rovshanmuradov/offer-simulator/internal/logger"
	"github.com/rovshanmuradov/offer-simulator/internal/ui"
	"github.com/rovshanmuradov/offer-simulator/internal/ui/style"
)

func TestSliderTone(t *testing.T) {
	terms := compensation.DefaultTerms()
	palette := style.DefaultPalette()
	s := NewSlider("Profit share", terms.Equity)

	tests := []struct {
		value int64
		want  string
	}{
		{5, string(palette.Lowered)},
		{7, string(palette.Lowered)},
		{8, string(palette.Raised)},
		{10, string(palette.Raised)},
	}

	for _, tt := range tests {
		s.SetValue(decimal.NewFromInt(tt.value), "")
		assert.Equal(t, tt.want, string(s.Color()), "value %d", tt.value)
	}

	assert.False(t, s.tone().GetFaint())
}

func TestDisabledSliderKeepsTone(t *testing.T) {
	terms := compensation.DefaultTerms()
	palette := style.DefaultPalette()
	s := NewSlider("Exit buyout", terms.Buyout).SetDisabled(true)

	s.SetValue(decimal.NewFromInt(11), "11.0%")
	assert.Equal(t, palette.Raised, s.Color())
	assert.True(t, s.tone().GetFaint())
	assert.Equal(t, lipgloss.TerminalColor(palette.Raised), s.tone().GetForeground())

	s.SetValue(decimal.NewFromInt(10), "10.0%")
	assert.Equal(t, palette.Lowered, s.Color())
	assert.True(t, s.tone().GetFaint())
}

func TestSliderView(t *testing.T) {
	terms := compensation.DefaultTerms()
	s := NewSlider("Company profit", terms.Profit).
		SetValue(decimal.NewFromInt(300000), "300 000 €").
		SetWidth(20).
		SetFocused(true)

	assert.InDelta(t, 0.5, s.Position(), 1e-9)

	view := s.View()
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "▸ Company profit")
	assert.Contains(t, lines[0], "300 000 €")
	assert.Equal(t, 1, strings.Count(lines[1], "●"))
}

func TestHelpBar(t *testing.T) {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		key.NewBinding(key.WithKeys("x"), key.WithDisabled(), key.WithHelp("x", "hidden")),
		key.NewBinding(key.WithKeys("z")),
	}

	bar := NewHelpBar(bindings...)
	full := bar.SetWidth(80).View()
	assert.False(t, bar.Compact())
	assert.Contains(t, full, "quit")
	assert.Contains(t, full, "reset")
	assert.NotContains(t, full, "hidden")

	assert.Empty(t, NewHelpBar().View())
}

func TestHelpBarCompactOnNarrowTerminal(t *testing.T) {
	bindings := ui.DefaultKeyMap().ContextualHelp(ui.RouteCalculator)

	bar := NewHelpBar(bindings...).SetWidth(40)
	assert.True(t, bar.Compact())

	view := bar.View()
	assert.Contains(t, view, "r")
	assert.Contains(t, view, "q")
	assert.NotContains(t, view, "reset")
	assert.NotContains(t, view, "scenarios")
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 40)
	}

	bar.SetWidth(60)
	assert.False(t, bar.Compact())
	assert.Contains(t, bar.View(), "scenarios")
}

func TestHelpBarWrapsToWidth(t *testing.T) {
	bindings := ui.DefaultKeyMap().ContextualHelp(ui.RouteScenarios)

	view := NewHelpBar(bindings...).SetWidth(64).View()
	filled := 0
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 64)
		if strings.TrimSpace(line) != "" {
			filled++
		}
	}
	assert.Greater(t, filled, 1)
	assert.Contains(t, view, "export csv")
}

func TestLogViewer(t *testing.T) {
	buffer, err := logger.NewLogBuffer(20, filepath.Join(t.TempDir(), "spill.log"), zap.NewNop())
	require.NoError(t, err)
	defer buffer.Close()

	require.NoError(t, buffer.Add("INFO", "Session started", map[string]interface{}{
		"session_id": "abc",
		"equity":     "10",
	}))
	require.NoError(t, buffer.Add("DEBUG", "Input applied", nil))
	require.NoError(t, buffer.Add("ERROR", "Scenario export failed", nil))

	lv := NewLogViewer(buffer)
	lv.SetSize(100, 20)

	lines := lv.Lines()
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "equity=10")
	assert.NotContains(t, lines[0], "session_id")

	lv.ToggleLogLevel("debug")
	lv.ToggleLogLevel("error")
	assert.Len(t, lv.Lines(), 1)
	assert.Equal(t, "Showing: Warning, Info", lv.FilterStatus())

	lv.ToggleLogLevel("warning")
	lv.ToggleLogLevel("info")
	assert.Equal(t, "No filters active", lv.FilterStatus())
	assert.Empty(t, lv.Lines())
}

func TestLogViewerWithoutBuffer(t *testing.T) {
	lv := NewLogViewer(nil)
	lv.SetSize(60, 10)

	assert.Nil(t, lv.Lines())
	assert.Contains(t, lv.View(), "No log buffer available")
}
