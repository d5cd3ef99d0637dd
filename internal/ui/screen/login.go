package screen

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/tinystock/internal/api"
	"github.com/rovshanmuradov/tinystock/internal/ui"
	"github.com/rovshanmuradov/tinystock/internal/ui/component"
	"github.com/rovshanmuradov/tinystock/internal/ui/router"
	"github.com/rovshanmuradov/tinystock/internal/ui/style"
)

// MinPasswordLen is the shortest password the register form submits.
const MinPasswordLen = 6

// LoginTab selects the login or register form.
type LoginTab int

const (
	TabLogin LoginTab = iota
	TabRegister
)

type loginDoneMsg struct {
	seq  uint64
	auth api.Auth
	ok   bool
}

type registerDoneMsg struct {
	seq     uint64
	outcome api.Outcome
}

// LoginScreen is the unauthenticated page with login and register tabs
type LoginScreen struct {
	base
	tab      LoginTab
	login    *component.Form
	register *component.Form
}

// NewLoginScreen creates the login page
func NewLoginScreen(deps Deps) *LoginScreen {
	login := component.NewForm().
		AddField("email", component.TextInput, "Email", true, deps.DemoEmail).
		AddField("password", component.PasswordInput, "Password", true, deps.DemoPassword)

	register := component.NewForm().
		AddField("email", component.TextInput, "Email", true, "").
		AddField("password", component.PasswordInput, "Password", true, "")

	return &LoginScreen{
		base:     newBase(deps, ui.RouteLogin),
		login:    login,
		register: register,
	}
}

// Init initializes the login screen
func (s *LoginScreen) Init() tea.Cmd {
	return s.login.Init()
}

// Route returns the route this screen serves
func (s *LoginScreen) Route() ui.Route {
	return ui.RouteLogin
}

// Tab returns the active tab.
func (s *LoginScreen) Tab() LoginTab {
	return s.tab
}

func (s *LoginScreen) form() *component.Form {
	if s.tab == TabRegister {
		return s.register
	}
	return s.login
}

// Update handles messages for the login screen
func (s *LoginScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		if !s.current(msg.seq) {
			return s, nil
		}
		s.loading = false
		if !msg.ok {
			s.notice = component.Error("Invalid email or password")
			return s, nil
		}
		s.notice = component.Success("Logged in!")
		auth := msg.auth
		return s, func() tea.Msg { return ui.LoggedInMsg{Auth: auth} }

	case registerDoneMsg:
		if !s.current(msg.seq) {
			return s, nil
		}
		s.loading = false
		if msg.outcome.OK {
			s.notice = component.Success(msg.outcome.Message)
		} else {
			s.notice = component.Error(msg.outcome.Message)
		}
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keyMap.ToggleTab):
			if s.tab == TabLogin {
				s.tab = TabRegister
			} else {
				s.tab = TabLogin
			}
			s.notice = component.Notice{}
			return s, nil

		case key.Matches(msg, s.keyMap.DemoLogin):
			if s.loading {
				return s, nil
			}
			s.tab = TabLogin
			s.login.SetFieldValue("email", s.deps.DemoEmail)
			s.login.SetFieldValue("password", s.deps.DemoPassword)
			return s, s.submitLogin()

		case key.Matches(msg, s.keyMap.Enter):
			if s.loading {
				return s, nil
			}
			if s.tab == TabRegister {
				return s, s.submitRegister()
			}
			return s, s.submitLogin()
		}
	}

	var cmd tea.Cmd
	if s.tab == TabRegister {
		s.register, cmd = s.register.Update(msg)
	} else {
		s.login, cmd = s.login.Update(msg)
	}
	return s, cmd
}

func (s *LoginScreen) submitLogin() tea.Cmd {
	if !s.login.Validate() {
		return nil
	}
	email := s.login.GetValue("email")
	password := s.login.GetValue("password")
	seq := s.seq
	s.notice = component.Notice{}
	s.log.Debug("logging in", zap.String("email", email))

	backend := s.deps.Backend
	return s.run(func(ctx context.Context) tea.Msg {
		auth, ok := backend.Login(ctx, email, password)
		return loginDoneMsg{seq: seq, auth: auth, ok: ok}
	})
}

func (s *LoginScreen) submitRegister() tea.Cmd {
	if !s.register.Validate() {
		return nil
	}
	email := s.register.GetValue("email")
	password := s.register.GetValue("password")
	if len(password) < MinPasswordLen {
		s.notice = component.Error("Password must be at least 6 characters long")
		return nil
	}
	seq := s.seq
	s.notice = component.Notice{}
	s.log.Debug("registering", zap.String("email", email))

	backend := s.deps.Backend
	return s.run(func(ctx context.Context) tea.Msg {
		return registerDoneMsg{seq: seq, outcome: backend.Register(ctx, email, password)}
	})
}

// View renders the login screen
func (s *LoginScreen) View() string {
	tabs := []string{"Login", "Register"}
	rendered := make([]string, len(tabs))
	for i, t := range tabs {
		if LoginTab(i) == s.tab {
			rendered[i] = style.ButtonActiveStyle.Render(t)
		} else {
			rendered[i] = style.ButtonStyle.Render(t)
		}
	}

	caption := style.MutedStyle.Render("Stock quotes, watchlist, and portfolio tracking")
	return s.render("TinyStock",
		caption,
		lipgloss.JoinHorizontal(lipgloss.Top, rendered...),
		strings.TrimRight(s.form().View(), "\n"),
	)
}

// SetSize sets the screen dimensions
func (s *LoginScreen) SetSize(width, height int) {
	s.base.SetSize(width, height)
	formWidth := min(width-8, 50)
	s.login.SetWidth(formWidth)
	s.register.SetWidth(formWidth)
}
