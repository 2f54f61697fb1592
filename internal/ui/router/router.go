package router

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rovshanmuradov/offer-simulator/internal/ui"
)

// ErrUnknownRoute is returned by Open when the builder has no screen for a route
var ErrUnknownRoute = errors.New("unknown route")

// Screen is one view on the navigation stack. Each screen serves a single route.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View() string
	SetSize(width, height int)
	Route() ui.Route
}

// Builder constructs the screen for a route, or nil when the route is unknown
type Builder func(route ui.Route) Screen

// Router keeps the open screens as a stack. A route appears on the stack at most once.
type Router struct {
	build  Builder
	stack  []Screen
	width  int
	height int
}

// New creates a router with root at the bottom of the stack
func New(root Screen, build Builder) *Router {
	return &Router{
		build: build,
		stack: []Screen{root},
	}
}

// Init initializes the current screen
func (r *Router) Init() tea.Cmd {
	return r.Current().Init()
}

// Update handles size and back navigation, then forwards msg to the current screen
func (r *Router) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.SetSize(msg.Width, msg.Height)
		return r, nil

	case tea.KeyMsg:
		if msg.String() == "esc" && len(r.stack) > 1 {
			return r, r.Back()
		}
	}

	top := len(r.stack) - 1
	updated, cmd := r.stack[top].Update(msg)
	r.stack[top] = updated
	return r, cmd
}

// View renders the current screen
func (r *Router) View() string {
	return r.Current().View()
}

// SetSize sets the size for the router and current screen
func (r *Router) SetSize(width, height int) {
	r.width = width
	r.height = height
	r.Current().SetSize(width, height)
}

// Open shows the screen for route. A route already on the stack is unwound to rather
// than opened twice, so its state survives the round trip.
func (r *Router) Open(route ui.Route) (tea.Cmd, error) {
	for i := len(r.stack) - 1; i >= 0; i-- {
		if r.stack[i].Route() == route {
			if i == len(r.stack)-1 {
				return nil, nil
			}
			return r.unwind(i), nil
		}
	}

	next := r.build(route)
	if next == nil {
		return nil, ErrUnknownRoute
	}
	next.SetSize(r.width, r.height)
	r.stack = append(r.stack, next)
	return next.Init(), nil
}

// Back closes the current screen. The root screen is never closed.
func (r *Router) Back() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	return r.unwind(len(r.stack) - 2)
}

func (r *Router) unwind(i int) tea.Cmd {
	r.stack = r.stack[:i+1]
	current := r.stack[i]
	current.SetSize(r.width, r.height)
	return current.Init()
}

// Current returns the screen on top of the stack
func (r *Router) Current() Screen {
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of open screens
func (r *Router) Depth() int {
	return len(r.stack)
}
