package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/offer-simulator/internal/ui"
	"github.com/rovshanmuradov/offer-simulator/internal/ui/router"
	"github.com/rovshanmuradov/offer-simulator/internal/ui/screen"
)

// Model represents the main TUI application model
type Model struct {
	session *ui.Session
	router  *router.Router
	width   int
	height  int
}

// New creates the application model with the calculator as the root screen
func New(session *ui.Session) *Model {
	return &Model{
		session: session,
		router:  router.New(screen.NewCalculatorScreen(session), screenFor(session)),
	}
}

// screenFor builds the screens opened on top of the calculator
func screenFor(session *ui.Session) router.Builder {
	return func(route ui.Route) router.Screen {
		switch route {
		case ui.RouteScenarios:
			return screen.NewScenariosScreen(session)
		case ui.RouteLogs:
			return screen.NewLogsScreen(session)
		}
		return nil
	}
}

// Init initializes the application
func (m *Model) Init() tea.Cmd {
	return m.router.Init()
}

// Update handles application-level updates
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case ui.RouterMsg:
		return m, m.handleNavigation(msg.To)
	}

	updatedRouter, cmd := m.router.Update(msg)
	m.router = updatedRouter.(*router.Router)
	return m, cmd
}

// handleNavigation opens route and logs the resulting depth
func (m *Model) handleNavigation(route ui.Route) tea.Cmd {
	cmd, err := m.router.Open(route)
	if err != nil {
		m.session.Logger.Warn("Navigation failed", zap.Stringer("route", route), zap.Error(err))
		return nil
	}
	m.session.Logger.Debug("Navigate", zap.Stringer("route", route), zap.Int("depth", m.router.Depth()))
	return cmd
}

// Current returns the screen on top of the stack
func (m *Model) Current() router.Screen {
	return m.router.Current()
}

// View renders the application
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	return m.router.View()
}
