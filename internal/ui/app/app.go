// Package app is the root bubbletea model. It owns the session and decides
// which page is shown.
package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/tinystock/internal/session"
	"github.com/rovshanmuradov/tinystock/internal/ui"
	"github.com/rovshanmuradov/tinystock/internal/ui/component"
	"github.com/rovshanmuradov/tinystock/internal/ui/router"
	"github.com/rovshanmuradov/tinystock/internal/ui/screen"
)

// Options carries the settings pages need from configuration.
type Options struct {
	DemoEmail    string
	DemoPassword string
}

// Model represents the main TUI application model
type Model struct {
	session *session.Session
	deps    screen.Deps
	router  *router.Router
	header  *component.StatusHeader
	keyMap  ui.KeyMap
	logger  *zap.Logger
	width   int
	height  int
}

// New creates the application model. The session starts unauthenticated on
// the login page.
func New(backend screen.Backend, sess *session.Session, opts Options, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	if sess == nil {
		sess = session.New()
	}

	m := &Model{
		session: sess,
		deps: screen.Deps{
			Backend:      backend,
			Session:      sess,
			Logger:       logger.Named("screen"),
			DemoEmail:    opts.DemoEmail,
			DemoPassword: opts.DemoPassword,
		},
		keyMap: ui.DefaultKeyMap(),
		logger: logger,
	}

	pages := ui.Pages()
	items := make([]component.NavItem, len(pages))
	for i, page := range pages {
		items[i] = component.NavItem{Key: "F" + string(rune('1'+i)), Title: page.Title()}
	}
	m.header = component.NewStatusHeader(items)

	start := ui.RouteLogin
	if user, ok := sess.User(); ok {
		m.header.SetUser(user.Email)
		start = ui.RouteDashboard
	}
	m.router = router.New(m.build(start), m.build)
	return m
}

// build is the router's screen factory.
func (m *Model) build(route ui.Route) router.Screen {
	switch route {
	case ui.RouteDashboard:
		return screen.NewDashboardScreen(m.deps)
	case ui.RouteQuote:
		return screen.NewQuoteScreen(m.deps)
	case ui.RouteWatchlist:
		return screen.NewWatchlistScreen(m.deps)
	case ui.RoutePortfolio:
		return screen.NewPortfolioScreen(m.deps)
	default:
		return screen.NewLoginScreen(m.deps)
	}
}

// Session returns the session the model owns.
func (m *Model) Session() *session.Session {
	return m.session
}

// Route returns the page currently shown.
func (m *Model) Route() ui.Route {
	return m.router.CurrentRoute()
}

// Current returns the screen currently shown.
func (m *Model) Current() router.Screen {
	return m.router.Current()
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
		m.header.SetWidth(msg.Width)
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keyMap.Quit) {
			return m, tea.Quit
		}
		if m.session.Authenticated() {
			if cmd, handled := m.handlePageKeys(msg); handled {
				return m, cmd
			}
		}

	case ui.LoggedInMsg:
		if err := m.session.Login(msg.Auth.Token, msg.Auth.User); err != nil {
			m.logger.Warn("login rejected", zap.Error(err))
			return m, nil
		}
		m.logger.Info("logged in", zap.String("email", msg.Auth.User.Email))
		m.header.SetUser(msg.Auth.User.Email)
		cmd := m.router.Reset(ui.RouteDashboard)
		m.resize()
		return m, cmd

	case ui.LogoutMsg:
		m.session.Logout()
		m.logger.Info("logged out")
		m.header.SetUser("")
		cmd := m.router.Reset(ui.RouteLogin)
		m.resize()
		return m, cmd

	case ui.RouterMsg:
		return m, m.navigate(msg.To)
	}

	_, cmd := m.router.Update(msg)
	return m, cmd
}

func (m *Model) handlePageKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	current := m.router.CurrentRoute()
	switch {
	case key.Matches(msg, m.keyMap.Logout):
		return func() tea.Msg { return ui.LogoutMsg{} }, true
	case key.Matches(msg, m.keyMap.Dashboard):
		return m.navigate(ui.RouteDashboard), true
	case key.Matches(msg, m.keyMap.Quote):
		return m.navigate(ui.RouteQuote), true
	case key.Matches(msg, m.keyMap.Watchlist):
		return m.navigate(ui.RouteWatchlist), true
	case key.Matches(msg, m.keyMap.Portfolio):
		return m.navigate(ui.RoutePortfolio), true
	case key.Matches(msg, m.keyMap.NextPage):
		return m.navigate(current.Next()), true
	case key.Matches(msg, m.keyMap.PrevPage):
		return m.navigate(current.Prev()), true
	}
	return nil, false
}

// navigate shows route, keeping unauthenticated users on the login page and
// authenticated users off it.
func (m *Model) navigate(route ui.Route) tea.Cmd {
	if !m.session.Authenticated() {
		route = ui.RouteLogin
	} else if route == ui.RouteLogin {
		return nil
	}
	m.logger.Debug("navigate", zap.Stringer("route", route))
	return m.router.Navigate(route)
}

func (m *Model) resize() {
	m.router.SetSize(m.width, m.height-m.chromeHeight())
}

func (m *Model) chromeHeight() int {
	if !m.session.Authenticated() {
		return 0
	}
	return lipgloss.Height(m.header.View())
}

// View renders the application
func (m *Model) View() string {
	if !m.session.Authenticated() {
		return m.router.View()
	}

	m.header.SetActive(activeIndex(m.router.CurrentRoute()))
	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), m.router.View())
}

func activeIndex(route ui.Route) int {
	for i, page := range ui.Pages() {
		if page == route {
			return i
		}
	}
	return -1
}
