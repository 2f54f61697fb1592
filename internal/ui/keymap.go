package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines keyboard shortcuts for the application
type KeyMap struct {
	// Global navigation
	Quit key.Binding
	Back key.Binding

	// Slider focus and movement
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
	Reset    key.Binding
	Enter    key.Binding

	// Screens
	Scenarios key.Binding
	Logs      key.Binding
	Export    key.Binding

	// Logs
	FilterDebug key.Binding
	FilterInfo  key.Binding
	FilterWarn  key.Binding
	FilterError key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev slider"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next slider"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "decrease"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "increase"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "use equity"),
		),

		Scenarios: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "scenarios"),
		),
		Logs: key.NewBinding(
			key.WithKeys("L", "f12"),
			key.WithHelp("L", "logs"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export csv"),
		),

		FilterDebug: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "debug"),
		),
		FilterInfo: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "info"),
		),
		FilterWarn: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "warn"),
		),
		FilterError: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "error"),
		),
	}
}

// ContextualHelp returns help text based on the current route
func (k KeyMap) ContextualHelp(route Route) []key.Binding {
	switch route {
	case RouteCalculator:
		return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Reset, k.Scenarios, k.Logs, k.Quit}
	case RouteScenarios:
		return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Enter, k.Export, k.Back, k.Quit}
	case RouteLogs:
		return []key.Binding{k.FilterDebug, k.FilterInfo, k.FilterWarn, k.FilterError, k.Back, k.Quit}
	default:
		return []key.Binding{k.Back, k.Quit}
	}
}
