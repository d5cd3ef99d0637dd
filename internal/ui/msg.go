package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rovshanmuradov/tinystock/internal/api"
)

// Tea message types for UI communication

// RouterMsg represents navigation between screens
type RouterMsg struct {
	To Route
}

// LoggedInMsg is emitted by the login screen after a successful login. Only the
// app shell writes it into the session.
type LoggedInMsg struct {
	Auth api.Auth
}

// LogoutMsg asks the app shell to clear the session.
type LogoutMsg struct{}

// Navigate returns a command that requests a route change
func Navigate(route Route) tea.Cmd {
	return func() tea.Msg {
		return RouterMsg{To: route}
	}
}

// Route represents different screens in the application
type Route int

const (
	RouteLogin Route = iota
	RouteDashboard
	RouteQuote
	RouteWatchlist
	RoutePortfolio
)

// Pages lists the authenticated pages in navigation order.
func Pages() []Route {
	return []Route{RouteDashboard, RouteQuote, RouteWatchlist, RoutePortfolio}
}

// String returns the string representation of the route
func (r Route) String() string {
	switch r {
	case RouteLogin:
		return "login"
	case RouteDashboard:
		return "dashboard"
	case RouteQuote:
		return "quote"
	case RouteWatchlist:
		return "watchlist"
	case RoutePortfolio:
		return "portfolio"
	default:
		return "unknown"
	}
}

// Title is the label shown in the navigation bar.
func (r Route) Title() string {
	switch r {
	case RouteLogin:
		return "Login"
	case RouteDashboard:
		return "Dashboard"
	case RouteQuote:
		return "Quote Lookup"
	case RouteWatchlist:
		return "Watchlist"
	case RoutePortfolio:
		return "Portfolio"
	default:
		return "Unknown"
	}
}

// Next returns the page after r, wrapping around.
func (r Route) Next() Route {
	pages := Pages()
	for i, p := range pages {
		if p == r {
			return pages[(i+1)%len(pages)]
		}
	}
	return RouteDashboard
}

// Prev returns the page before r, wrapping around.
func (r Route) Prev() Route {
	pages := Pages()
	for i, p := range pages {
		if p == r {
			return pages[(i+len(pages)-1)%len(pages)]
		}
	}
	return RouteDashboard
}
