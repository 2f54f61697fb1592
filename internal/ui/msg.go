package ui

import tea "github.com/charmbracelet/bubbletea"

// Tea message types for UI communication

// RouterMsg represents navigation between screens
type RouterMsg struct {
	To Route
}

// ExportedMsg reports a finished scenario export
type ExportedMsg struct {
	Path string
	Rows int
}

// ErrorMsg represents error conditions
type ErrorMsg struct {
	Error error
	Title string
}

// Navigate returns a command that requests navigation to route
func Navigate(route Route) tea.Cmd {
	return func() tea.Msg {
		return RouterMsg{To: route}
	}
}

// Route represents different screens in the application
type Route int

const (
	RouteCalculator Route = iota
	RouteScenarios
	RouteLogs
)

// String returns the string representation of the route
func (r Route) String() string {
	switch r {
	case RouteCalculator:
		return "calculator"
	case RouteScenarios:
		return "scenarios"
	case RouteLogs:
		return "logs"
	default:
		return "unknown"
	}
}
