package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines keyboard shortcuts for the application
type KeyMap struct {
	// Global navigation
	Quit   key.Binding
	Logout key.Binding

	// Pages
	Dashboard key.Binding
	Quote     key.Binding
	Watchlist key.Binding
	Portfolio key.Binding
	NextPage  key.Binding
	PrevPage  key.Binding

	// Navigation
	Up       key.Binding
	Down     key.Binding
	Enter    key.Binding
	Tab      key.Binding
	ShiftTab key.Binding

	// Page actions
	Refresh        key.Binding
	Remove         key.Binding
	ToggleTab      key.Binding
	DemoLogin      key.Binding
	ForceLookup    key.Binding
	AddToWatchlist key.Binding
}

// DefaultKeyMap returns the default key bindings. Letters are left to the
// text inputs, so every action uses a control or function key.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Global navigation
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Logout: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "logout"),
		),

		// Pages
		Dashboard: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "dashboard"),
		),
		Quote: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "quote lookup"),
		),
		Watchlist: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("F3", "watchlist"),
		),
		Portfolio: key.NewBinding(
			key.WithKeys("f4"),
			key.WithHelp("F4", "portfolio"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "prev page"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),

		// Page actions
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r", "f5"),
			key.WithHelp("ctrl+r", "refresh"),
		),
		Remove: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "remove"),
		),
		ToggleTab: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "login/register"),
		),
		DemoLogin: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "demo login"),
		),
		ForceLookup: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "look up"),
		),
		AddToWatchlist: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "add to watchlist"),
		),
	}
}

// ShortHelp returns key help text for the current context
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPage, k.Logout, k.Quit}
}

// ContextualHelp returns help text based on the current route
func (k KeyMap) ContextualHelp(route Route) []key.Binding {
	switch route {
	case RouteLogin:
		return []key.Binding{k.Tab, k.Enter, k.ToggleTab, k.DemoLogin, k.Quit}
	case RouteDashboard:
		return []key.Binding{k.Refresh, k.NextPage, k.Logout, k.Quit}
	case RouteQuote:
		return []key.Binding{k.Enter, k.ForceLookup, k.Up, k.Down, k.AddToWatchlist, k.NextPage, k.Logout, k.Quit}
	case RouteWatchlist:
		return []key.Binding{k.Enter, k.Up, k.Down, k.Remove, k.Refresh, k.NextPage, k.Logout, k.Quit}
	case RoutePortfolio:
		return []key.Binding{k.Tab, k.Enter, k.Up, k.Down, k.Remove, k.Refresh, k.NextPage, k.Logout, k.Quit}
	default:
		return k.ShortHelp()
	}
}
