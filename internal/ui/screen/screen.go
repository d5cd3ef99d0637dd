// Package screen holds the TinyStock pages. Each page fetches its own data
// when it is built and talks to the backend only through commands, so one
// interaction produces at most one round of API calls.
package screen

import (
	"context"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/tinystock/internal/api"
	"github.com/rovshanmuradov/tinystock/internal/session"
	"github.com/rovshanmuradov/tinystock/internal/ui"
	"github.com/rovshanmuradov/tinystock/internal/ui/component"
	"github.com/rovshanmuradov/tinystock/internal/ui/style"
)

// Backend is the subset of the API client the pages use.
type Backend interface {
	Login(ctx context.Context, email, password string) (api.Auth, bool)
	Register(ctx context.Context, email, password string) api.Outcome
	GetQuote(ctx context.Context, symbol string) *api.Quote
	GetHistory(ctx context.Context, symbol, rng, interval string) ([]api.HistoryPoint, bool)
	SearchSymbols(ctx context.Context, query string, limit int) []api.SearchResult
	GetWatchlist(ctx context.Context, token string) api.Watchlist
	AddToWatchlist(ctx context.Context, token, symbol string) api.Outcome
	RemoveFromWatchlist(ctx context.Context, token, symbol string) api.Outcome
	GetPortfolio(ctx context.Context, token string) api.Portfolio
	AddHolding(ctx context.Context, token, symbol string, quantity, buyPrice float64) api.Outcome
	RemoveHolding(ctx context.Context, token string, holdingID int64) api.Outcome
}

// Deps is what every page needs. Pages only read the session; the app shell
// is its single writer.
type Deps struct {
	Backend      Backend
	Session      *session.Session
	Logger       *zap.Logger
	DemoEmail    string
	DemoPassword string
}

func (d Deps) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

func (d Deps) token() string {
	if d.Session == nil {
		return ""
	}
	return d.Session.Token()
}

var screenSeq atomic.Uint64

// base carries the state shared by all pages. seq tags the commands a page
// issues so results that arrive after the page was replaced are dropped.
type base struct {
	deps    Deps
	log     *zap.Logger
	keyMap  ui.KeyMap
	helpBar *component.HelpBar
	seq     uint64
	loading bool
	notice  component.Notice
	width   int
	height  int
}

func newBase(deps Deps, route ui.Route) base {
	keyMap := ui.DefaultKeyMap()
	return base{
		deps:    deps,
		log:     deps.logger().With(zap.String("screen", route.String())),
		keyMap:  keyMap,
		helpBar: component.NewHelpBar().SetKeyBindings(keyMap.ContextualHelp(route)),
		seq:     screenSeq.Add(1),
	}
}

// SetSize stores the area the page may draw in.
func (b *base) SetSize(width, height int) {
	b.width = width
	b.height = height
	b.helpBar.SetWidth(width)
}

// Loading reports whether a request issued by the page is still in flight.
func (b *base) Loading() bool {
	return b.loading
}

// Notice returns the page's current status message.
func (b *base) Notice() component.Notice {
	return b.notice
}

// run marks the page busy and executes fn off the update loop. fn receives a
// fresh context; the API client applies its own timeout.
func (b *base) run(fn func(ctx context.Context) tea.Msg) tea.Cmd {
	b.loading = true
	return func() tea.Msg {
		return fn(context.Background())
	}
}

func (b *base) current(seq uint64) bool {
	return seq == b.seq
}

func (b *base) render(title string, sections ...string) string {
	var out strings.Builder
	out.WriteString(style.TitleStyle.Render(title))
	out.WriteString("\n")
	for _, s := range sections {
		if s == "" {
			continue
		}
		out.WriteString(s)
		out.WriteString("\n\n")
	}
	if b.loading {
		out.WriteString(style.MutedStyle.Render("Loading..."))
		out.WriteString("\n")
	}
	if !b.notice.Empty() {
		out.WriteString(b.notice.View())
		out.WriteString("\n")
	}
	out.WriteString(b.helpBar.View())
	return style.ContainerStyle.Render(out.String())
}

func subheader(text string) string {
	return style.SubHeaderStyle.Render(text)
}
