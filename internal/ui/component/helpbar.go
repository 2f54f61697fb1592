package component

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/offer-simulator/internal/ui/style"
)

// compactWidth is the terminal width below which only key names are shown
const compactWidth = 60

// HelpBar lists the key bindings of a screen under its content
type HelpBar struct {
	bindings []key.Binding
	width    int

	keyStyle       lipgloss.Style
	descStyle      lipgloss.Style
	separator      string
	containerStyle lipgloss.Style
}

// NewHelpBar creates a help bar for bindings. Bindings without help text are skipped.
func NewHelpBar(bindings ...key.Binding) *HelpBar {
	palette := style.DefaultPalette()

	return &HelpBar{
		bindings:  bindings,
		keyStyle:  lipgloss.NewStyle().Foreground(palette.Primary).Bold(true),
		descStyle: lipgloss.NewStyle().Foreground(palette.TextMuted),
		separator: lipgloss.NewStyle().Foreground(palette.TextMuted).Render(" • "),
		containerStyle: lipgloss.NewStyle().
			Padding(0, 1).
			Margin(1, 0, 0, 0),
	}
}

// SetWidth sets the width the bar wraps to. Zero means unknown and disables wrapping.
func (h *HelpBar) SetWidth(width int) *HelpBar {
	h.width = width
	return h
}

// Compact reports whether the terminal is too narrow for descriptions
func (h *HelpBar) Compact() bool {
	return h.width > 0 && h.width < compactWidth
}

// View renders the bindings, wrapped to the bar width
func (h *HelpBar) View() string {
	items := h.items()
	if len(items) == 0 {
		return ""
	}

	container := h.containerStyle
	if h.width <= 0 {
		return container.Render(strings.Join(items, h.separator))
	}

	available := h.width - container.GetHorizontalPadding()
	return container.Width(h.width).Render(h.wrap(items, available))
}

func (h *HelpBar) items() []string {
	compact := h.Compact()

	items := make([]string, 0, len(h.bindings))
	for _, binding := range h.bindings {
		help := binding.Help()
		if !binding.Enabled() || help.Key == "" {
			continue
		}

		item := h.keyStyle.Render(help.Key)
		if !compact && help.Desc != "" {
			item += " " + h.descStyle.Render(help.Desc)
		}
		items = append(items, item)
	}
	return items
}

// wrap joins items into lines no wider than width. An item wider than width gets a line of its own.
func (h *HelpBar) wrap(items []string, width int) string {
	sepWidth := lipgloss.Width(h.separator)

	var lines []string
	var line []string
	lineWidth := 0
	for _, item := range items {
		w := lipgloss.Width(item)
		if len(line) > 0 && lineWidth+sepWidth+w > width {
			lines = append(lines, strings.Join(line, h.separator))
			line, lineWidth = nil, 0
		}
		if len(line) > 0 {
			lineWidth += sepWidth
		}
		line = append(line, item)
		lineWidth += w
	}
	lines = append(lines, strings.Join(line, h.separator))

	return strings.Join(lines, "\n")
}
