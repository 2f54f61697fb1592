package screen

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rovshanmuradov/offer-simulator/internal/ui"
	"github.com/rovshanmuradov/offer-simulator/internal/ui/component"
	"github.com/rovshanmuradov/offer-simulator/internal/ui/router"
	"github.com/rovshanmuradov/offer-simulator/internal/ui/style"
)

// logsRefreshMsg triggers a reload of the buffer tail
type logsRefreshMsg time.Time

// LogsScreen represents the logs viewing screen
type LogsScreen struct {
	width  int
	height int
	keyMap ui.KeyMap

	session *ui.Session
	helpBar *component.HelpBar
	viewer  *component.LogViewer

	refreshInterval time.Duration
	lastUpdate      time.Time

	statusStyle lipgloss.Style
}

// NewLogsScreen creates a new logs screen
func NewLogsScreen(session *ui.Session) *LogsScreen {
	palette := style.DefaultPalette()
	keyMap := ui.DefaultKeyMap()

	return &LogsScreen{
		keyMap:          keyMap,
		session:         session,
		helpBar:         component.NewHelpBar(keyMap.ContextualHelp(ui.RouteLogs)...),
		viewer:          component.NewLogViewer(session.Buffer),
		refreshInterval: time.Second,
		lastUpdate:      time.Now(),

		statusStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Padding(0, 1),
	}
}

// Route identifies the screen for the router
func (s *LogsScreen) Route() ui.Route {
	return ui.RouteLogs
}

// Init loads the buffer and starts the refresh ticker
func (s *LogsScreen) Init() tea.Cmd {
	s.viewer.Refresh()
	return s.tick()
}

func (s *LogsScreen) tick() tea.Cmd {
	return tea.Tick(s.refreshInterval, func(t time.Time) tea.Msg {
		return logsRefreshMsg(t)
	})
}

// Update handles screen updates
func (s *LogsScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case logsRefreshMsg:
		s.lastUpdate = time.Time(msg)
		s.viewer.Refresh()
		return s, s.tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keyMap.Quit):
			return s, tea.Quit
		case key.Matches(msg, s.keyMap.FilterDebug):
			s.viewer.ToggleLogLevel("debug")
			return s, nil
		case key.Matches(msg, s.keyMap.FilterInfo):
			s.viewer.ToggleLogLevel("info")
			return s, nil
		case key.Matches(msg, s.keyMap.FilterWarn):
			s.viewer.ToggleLogLevel("warning")
			return s, nil
		case key.Matches(msg, s.keyMap.FilterError):
			s.viewer.ToggleLogLevel("error")
			return s, nil
		}
	}

	return s, s.viewer.Update(msg)
}

// Viewer exposes the log viewer
func (s *LogsScreen) Viewer() *component.LogViewer {
	return s.viewer
}

// View renders the logs screen
func (s *LogsScreen) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		style.TitleStyle.Render("Logs"),
		s.viewer.View(),
		s.renderStatusBar(),
		s.helpBar.View(),
	)
}

func (s *LogsScreen) renderStatusBar() string {
	status := fmt.Sprintf("Session %s · updated %s", shortID(s.session.ID), s.lastUpdate.Format("15:04:05"))
	if s.session.Buffer != nil {
		total, spilled := s.session.Buffer.GetStats()
		status += fmt.Sprintf(" · %d entries, %d spilled", total, spilled)
	}
	return s.statusStyle.Render(status)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// SetSize sets the screen dimensions
func (s *LogsScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.helpBar.SetWidth(width)
	s.viewer.SetSize(width, height-6)
}
