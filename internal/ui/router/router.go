package router

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rovshanmuradov/tinystock/internal/ui"
)

// Screen represents a screen that can be navigated to
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View() string
	SetSize(width, height int)
	Route() ui.Route
}

// Factory builds a fresh screen for a route.
type Factory func(route ui.Route) Screen

// Router shows one screen at a time. Pages are flat, so there is no history
// to go back through; switching pages swaps the current screen.
type Router struct {
	current Screen
	factory Factory
	width   int
	height  int
}

// New creates a new router with the initial screen
func New(initialScreen Screen, factory Factory) *Router {
	return &Router{
		current: initialScreen,
		factory: factory,
	}
}

// Init initializes the router
func (r *Router) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

// Update processes messages and updates the current screen
func (r *Router) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.RouterMsg:
		return r, r.Navigate(msg.To)

	case tea.WindowSizeMsg:
		r.SetSize(msg.Width, msg.Height)
		return r, nil
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

// View renders the current screen
func (r *Router) View() string {
	if r.current == nil {
		return "No screen available"
	}
	return r.current.View()
}

// SetSize sets the size for the router and current screen
func (r *Router) SetSize(width, height int) {
	r.width = width
	r.height = height

	if r.current != nil {
		r.current.SetSize(width, height)
	}
}

// show makes screen current and starts it.
func (r *Router) show(screen Screen) tea.Cmd {
	screen.SetSize(r.width, r.height)
	r.current = screen
	return screen.Init()
}

// Navigate replaces the current screen with a freshly built one for route.
// A new screen is always built so pages refetch their data on activation.
func (r *Router) Navigate(route ui.Route) tea.Cmd {
	if r.factory == nil {
		return nil
	}
	screen := r.factory(route)
	if screen == nil {
		return nil
	}
	return r.show(screen)
}

// Reset starts over at route, dropping whatever the current screen held.
// Unlike Navigate it works on an empty router.
func (r *Router) Reset(route ui.Route) tea.Cmd {
	r.current = nil
	return r.Navigate(route)
}

// Current returns the current screen
func (r *Router) Current() Screen {
	return r.current
}

// CurrentRoute returns the route of the current screen, or RouteLogin when
// there is none.
func (r *Router) CurrentRoute() ui.Route {
	if r.current != nil {
		return r.current.Route()
	}
	return ui.RouteLogin
}
