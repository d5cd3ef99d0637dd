package screen

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/tinystock/internal/api"
	"github.com/rovshanmuradov/tinystock/internal/format"
	"github.com/rovshanmuradov/tinystock/internal/ui"
	"github.com/rovshanmuradov/tinystock/internal/ui/component"
	"github.com/rovshanmuradov/tinystock/internal/ui/router"
	"github.com/rovshanmuradov/tinystock/internal/ui/style"
)

type watchlistLoadedMsg struct {
	seq       uint64
	watchlist api.Watchlist
	// outcome is set when the fetch followed an add or remove.
	outcome *api.Outcome
}

// WatchlistScreen lists watched symbols and adds or removes them
type WatchlistScreen struct {
	base
	loaded    bool
	form      *component.Form
	table     *component.Table
	watchlist api.Watchlist
}

// NewWatchlistScreen creates the watchlist page
func NewWatchlistScreen(deps Deps) *WatchlistScreen {
	form := component.NewForm().
		AddField("symbol", component.TextInput, "Symbol", false, "e.g. AAPL")

	table := component.NewTable().
		SetEmptyText("Your watchlist is empty. Add stocks from the Quote Lookup page.").
		AddColumn("Symbol", 10, lipgloss.Left).
		AddColumn("Price", 16, lipgloss.Right).
		AddColumn("Change", 14, lipgloss.Right).
		AddColumn("Change %", 12, lipgloss.Right)

	return &WatchlistScreen{
		base:  newBase(deps, ui.RouteWatchlist),
		form:  form,
		table: table,
	}
}

// Init fetches the watchlist
func (s *WatchlistScreen) Init() tea.Cmd {
	return tea.Batch(s.form.Init(), s.fetch(nil))
}

// Route returns the route this screen serves
func (s *WatchlistScreen) Route() ui.Route {
	return ui.RouteWatchlist
}

// Entries returns the symbols currently listed.
func (s *WatchlistScreen) Entries() []api.WatchlistEntry {
	return s.watchlist.Entries
}

// fetch reloads the watchlist, running mutate first when given.
func (s *WatchlistScreen) fetch(mutate func(ctx context.Context, token string) api.Outcome) tea.Cmd {
	seq := s.seq
	token := s.deps.token()
	backend := s.deps.Backend
	return s.run(func(ctx context.Context) tea.Msg {
		msg := watchlistLoadedMsg{seq: seq}
		if mutate != nil {
			outcome := mutate(ctx, token)
			msg.outcome = &outcome
		}
		msg.watchlist = backend.GetWatchlist(ctx, token)
		return msg
	})
}

// Update handles messages for the watchlist screen
func (s *WatchlistScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case watchlistLoadedMsg:
		if !s.current(msg.seq) {
			return s, nil
		}
		s.loading = false
		s.loaded = true
		s.watchlist = msg.watchlist
		s.table.SetRows(watchlistRows(msg.watchlist))
		if msg.outcome != nil {
			if msg.outcome.OK {
				s.notice = component.Success(msg.outcome.Message)
			} else {
				s.notice = component.Error(msg.outcome.Message)
			}
		}
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keyMap.Up):
			s.table.MoveUp()
			return s, nil

		case key.Matches(msg, s.keyMap.Down):
			s.table.MoveDown()
			return s, nil

		case key.Matches(msg, s.keyMap.Enter):
			if s.loading {
				return s, nil
			}
			return s, s.add()

		case key.Matches(msg, s.keyMap.Remove):
			if s.loading {
				return s, nil
			}
			return s, s.remove()

		case key.Matches(msg, s.keyMap.Refresh):
			if s.loading {
				return s, nil
			}
			s.notice = component.Notice{}
			return s, s.fetch(nil)
		}
	}

	var cmd tea.Cmd
	s.form, cmd = s.form.Update(msg)
	return s, cmd
}

func (s *WatchlistScreen) add() tea.Cmd {
	symbol := strings.ToUpper(strings.TrimSpace(s.form.GetValue("symbol")))
	if symbol == "" {
		s.notice = component.Warning("Enter a symbol")
		return nil
	}
	s.notice = component.Notice{}
	s.form.Reset()
	s.log.Debug("adding to watchlist", zap.String("symbol", symbol))

	backend := s.deps.Backend
	return s.fetch(func(ctx context.Context, token string) api.Outcome {
		return backend.AddToWatchlist(ctx, token, symbol)
	})
}

func (s *WatchlistScreen) remove() tea.Cmd {
	row := s.table.SelectedRow()
	if row < 0 || row >= len(s.watchlist.Entries) {
		return nil
	}
	symbol := s.watchlist.Entries[row].Symbol
	s.notice = component.Notice{}
	s.log.Debug("removing from watchlist", zap.String("symbol", symbol))

	backend := s.deps.Backend
	return s.fetch(func(ctx context.Context, token string) api.Outcome {
		return backend.RemoveFromWatchlist(ctx, token, symbol)
	})
}

func watchlistRows(w api.Watchlist) []component.TableRow {
	quotes := w.QuoteMap()
	rows := make([]component.TableRow, len(w.Entries))
	for i, entry := range w.Entries {
		q := quotes[entry.Symbol]
		rows[i] = component.TableRow{
			Data: []string{
				entry.Symbol,
				format.USDOrNA(q.Price),
				format.USDOrDash(q.Change),
				format.SignedPercentOrDash(q.ChangePercent),
			},
			Styles: map[int]lipgloss.Style{
				2: style.Signed(q.Change),
				3: style.Signed(q.ChangePercent),
			},
		}
	}
	return rows
}

// View renders the watchlist screen
func (s *WatchlistScreen) View() string {
	sections := []string{subheader("Add to Watchlist"), s.form.View()}
	if s.loaded {
		sections = append(sections, subheader("Your Watchlist"), s.table.View())
	}
	return s.render("Watchlist", sections...)
}

// SetSize sets the screen dimensions
func (s *WatchlistScreen) SetSize(width, height int) {
	s.base.SetSize(width, height)
	s.form.SetWidth(min(width-8, 30))
	s.table.SetWidth(width - 4)
}
