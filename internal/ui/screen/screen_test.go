package screen

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/rovshanmuradov/tinystock/internal/api"
	"github.com/rovshanmuradov/tinystock/internal/session"
	"github.com/rovshanmuradov/tinystock/internal/ui/router"
)

// fakeBackend records calls and answers from canned values.
type fakeBackend struct {
	mu    sync.Mutex
	calls []string

	auth      api.Auth
	loginOK   bool
	register  api.Outcome
	quotes    map[string]*api.Quote
	history   []api.HistoryPoint
	historyOK bool
	results   []api.SearchResult
	watchlist api.Watchlist
	portfolio api.Portfolio
	mutation  api.Outcome
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		quotes:    map[string]*api.Quote{},
		portfolio: api.Portfolio{Holdings: []api.Holding{}},
		mutation:  api.Outcome{OK: true, Message: "ok"},
	}
}

func (f *fakeBackend) record(format string, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeBackend) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeBackend) Login(_ context.Context, email, password string) (api.Auth, bool) {
	f.record("Login %s %s", email, password)
	return f.auth, f.loginOK
}

func (f *fakeBackend) Register(_ context.Context, email, password string) api.Outcome {
	f.record("Register %s %s", email, password)
	return f.register
}

func (f *fakeBackend) GetQuote(_ context.Context, symbol string) *api.Quote {
	f.record("GetQuote %s", symbol)
	return f.quotes[symbol]
}

func (f *fakeBackend) GetHistory(_ context.Context, symbol, rng, interval string) ([]api.HistoryPoint, bool) {
	f.record("GetHistory %s %s %s", symbol, rng, interval)
	return f.history, f.historyOK
}

func (f *fakeBackend) SearchSymbols(_ context.Context, query string, limit int) []api.SearchResult {
	f.record("SearchSymbols %s %d", query, limit)
	return f.results
}

func (f *fakeBackend) GetWatchlist(_ context.Context, token string) api.Watchlist {
	f.record("GetWatchlist %s", token)
	return f.watchlist
}

func (f *fakeBackend) AddToWatchlist(_ context.Context, token, symbol string) api.Outcome {
	f.record("AddToWatchlist %s %s", token, symbol)
	return f.mutation
}

func (f *fakeBackend) RemoveFromWatchlist(_ context.Context, token, symbol string) api.Outcome {
	f.record("RemoveFromWatchlist %s %s", token, symbol)
	return f.mutation
}

func (f *fakeBackend) GetPortfolio(_ context.Context, token string) api.Portfolio {
	f.record("GetPortfolio %s", token)
	return f.portfolio
}

func (f *fakeBackend) AddHolding(_ context.Context, token, symbol string, quantity, buyPrice float64) api.Outcome {
	f.record("AddHolding %s %s %g %g", token, symbol, quantity, buyPrice)
	return f.mutation
}

func (f *fakeBackend) RemoveHolding(_ context.Context, token string, holdingID int64) api.Outcome {
	f.record("RemoveHolding %s %d", token, holdingID)
	return f.mutation
}

func testDeps(t *testing.T, backend Backend) Deps {
	t.Helper()
	sess := session.New()
	require.NoError(t, sess.Login("tok", api.User{ID: "1", Email: "demo@tinystock.app"}))
	return Deps{
		Backend:      backend,
		Session:      sess,
		Logger:       zaptest.NewLogger(t),
		DemoEmail:    "demo@tinystock.app",
		DemoPassword: "demo123",
	}
}

// execute runs cmd and returns the messages it produces. Commands that do not
// finish quickly, such as cursor blink ticks, are dropped.
func execute(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, execute(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

// settle feeds the messages cmd produces back into s until nothing is left,
// returning every message seen along the way.
func settle(t *testing.T, s router.Screen, cmd tea.Cmd) (router.Screen, []tea.Msg) {
	t.Helper()
	var seen []tea.Msg
	pending := []tea.Cmd{cmd}
	for i := 0; len(pending) > 0; i++ {
		require.Less(t, i, 100, "commands did not settle")
		next := pending[0]
		pending = pending[1:]
		for _, msg := range execute(next) {
			seen = append(seen, msg)
			var c tea.Cmd
			s, c = s.Update(msg)
			if c != nil {
				pending = append(pending, c)
			}
		}
	}
	return s, seen
}

func start(t *testing.T, s router.Screen) router.Screen {
	t.Helper()
	s.SetSize(120, 40)
	s, _ = settle(t, s, s.Init())
	return s
}

func press(t *testing.T, s router.Screen, k tea.KeyMsg) (router.Screen, []tea.Msg) {
	t.Helper()
	s, cmd := s.Update(k)
	return settle(t, s, cmd)
}

func typeText(s router.Screen, text string) router.Screen {
	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return s
}

var (
	keyEnter  = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab    = tea.KeyMsg{Type: tea.KeyTab}
	keyDown   = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft   = tea.KeyMsg{Type: tea.KeyLeft}
	keyDelete = tea.KeyMsg{Type: tea.KeyDelete}
	keyCtrlD  = tea.KeyMsg{Type: tea.KeyCtrlD}
	keyCtrlF  = tea.KeyMsg{Type: tea.KeyCtrlF}
	keyCtrlR  = tea.KeyMsg{Type: tea.KeyCtrlR}
	keyCtrlS  = tea.KeyMsg{Type: tea.KeyCtrlS}
	keyCtrlT  = tea.KeyMsg{Type: tea.KeyCtrlT}
	keyCtrlX  = tea.KeyMsg{Type: tea.KeyCtrlX}
)

func floatPtr(v float64) *float64 { return &v }
