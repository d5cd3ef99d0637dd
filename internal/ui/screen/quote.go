package screen

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/tinystock/internal/api"
	"github.com/rovshanmuradov/tinystock/internal/format"
	"github.com/rovshanmuradov/tinystock/internal/lookup"
	"github.com/rovshanmuradov/tinystock/internal/ui"
	"github.com/rovshanmuradov/tinystock/internal/ui/component"
	"github.com/rovshanmuradov/tinystock/internal/ui/router"
	"github.com/rovshanmuradov/tinystock/internal/ui/style"
)

// History window shown under a quote.
const (
	HistoryRange    = "1mo"
	HistoryInterval = "1d"
)

type lookupDoneMsg struct {
	seq       uint64
	plan      lookup.Plan
	results   []api.SearchResult
	quote     *api.Quote
	history   []api.HistoryPoint
	historyOK bool
}

type watchAddedMsg struct {
	seq     uint64
	outcome api.Outcome
}

// QuoteScreen looks up quotes by symbol or by name search
type QuoteScreen struct {
	base
	input     textinput.Model
	results   []api.SearchResult
	selected  int
	symbol    string
	quote     *api.Quote
	history   []float64
	sparkline *component.Sparkline
}

// NewQuoteScreen creates the quote lookup page
func NewQuoteScreen(deps Deps) *QuoteScreen {
	input := textinput.New()
	input.Placeholder = "e.g. AAPL, MSFT, GOOGL"
	input.Width = 30
	input.Focus()

	return &QuoteScreen{
		base:      newBase(deps, ui.RouteQuote),
		input:     input,
		selected:  -1,
		sparkline: component.NewSparkline(40),
	}
}

// Init initializes the quote screen
func (s *QuoteScreen) Init() tea.Cmd {
	return textinput.Blink
}

// Route returns the route this screen serves
func (s *QuoteScreen) Route() ui.Route {
	return ui.RouteQuote
}

// Symbol returns the symbol whose quote is displayed, if any.
func (s *QuoteScreen) Symbol() string {
	return s.symbol
}

// Results returns the current search results.
func (s *QuoteScreen) Results() []api.SearchResult {
	return s.results
}

// Update handles messages for the quote screen
func (s *QuoteScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lookupDoneMsg:
		if !s.current(msg.seq) {
			return s, nil
		}
		s.loading = false
		s.applyLookup(msg)
		return s, nil

	case watchAddedMsg:
		if !s.current(msg.seq) {
			return s, nil
		}
		s.loading = false
		if msg.outcome.OK {
			s.notice = component.Success(msg.outcome.Message)
		} else {
			s.notice = component.Warning(msg.outcome.Message)
		}
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keyMap.Up):
			if s.selected >= 0 {
				s.selected--
			}
			return s, nil

		case key.Matches(msg, s.keyMap.Down):
			if s.selected < len(s.results)-1 {
				s.selected++
			}
			return s, nil

		case key.Matches(msg, s.keyMap.Enter):
			if s.loading {
				return s, nil
			}
			if s.selected >= 0 && s.selected < len(s.results) {
				symbol := strings.ToUpper(s.results[s.selected].Symbol)
				return s, s.lookup(lookup.Plan{Symbol: symbol})
			}
			return s, s.lookup(lookup.Resolve(s.input.Value()))

		case key.Matches(msg, s.keyMap.ForceLookup):
			if s.loading || s.input.Value() == "" {
				return s, nil
			}
			return s, s.lookup(lookup.Plan{Symbol: lookup.Force(s.input.Value())})

		case key.Matches(msg, s.keyMap.AddToWatchlist):
			if s.loading || s.quote == nil {
				return s, nil
			}
			return s, s.addToWatchlist(s.symbol)
		}
	}

	var cmd tea.Cmd
	before := s.input.Value()
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != before {
		s.selected = -1
	}
	return s, cmd
}

// lookup runs a search and/or a direct quote lookup as one round of calls.
func (s *QuoteScreen) lookup(plan lookup.Plan) tea.Cmd {
	s.notice = component.Notice{}
	if plan.Empty() {
		s.results = nil
		s.selected = -1
		s.notice = component.Info("Enter a stock symbol (e.g. AAPL) and press Enter or ctrl+f to look it up")
		return nil
	}

	s.log.Debug("lookup", zap.Bool("search", plan.Search), zap.String("symbol", plan.Symbol))
	seq := s.seq
	query := s.input.Value()
	backend := s.deps.Backend
	return s.run(func(ctx context.Context) tea.Msg {
		done := lookupDoneMsg{seq: seq, plan: plan}
		if plan.Search {
			done.results = backend.SearchSymbols(ctx, query, lookup.SearchLimit)
		}
		if plan.Symbol != "" {
			done.quote = backend.GetQuote(ctx, plan.Symbol)
			if done.quote != nil {
				done.history, done.historyOK = backend.GetHistory(ctx, plan.Symbol, HistoryRange, HistoryInterval)
			}
		}
		return done
	})
}

func (s *QuoteScreen) applyLookup(msg lookupDoneMsg) {
	if msg.plan.Search {
		s.results = msg.results
	} else {
		s.results = nil
	}
	s.selected = -1

	if msg.plan.Symbol == "" {
		return
	}
	s.symbol = msg.plan.Symbol
	s.quote = msg.quote
	s.history = nil
	if msg.historyOK {
		for _, p := range msg.history {
			s.history = append(s.history, p.Close)
		}
	}
	s.sparkline.SetData(s.history)
	if s.quote == nil {
		s.notice = component.Error(fmt.Sprintf("Could not fetch quote for %s. Is the backend running?", s.symbol))
	}
}

func (s *QuoteScreen) addToWatchlist(symbol string) tea.Cmd {
	seq := s.seq
	token := s.deps.token()
	backend := s.deps.Backend
	return s.run(func(ctx context.Context) tea.Msg {
		return watchAddedMsg{seq: seq, outcome: backend.AddToWatchlist(ctx, token, symbol)}
	})
}

// View renders the quote screen
func (s *QuoteScreen) View() string {
	input := lipgloss.JoinVertical(lipgloss.Left,
		style.FormLabelStyle.Render("Search or enter symbol"),
		style.FormInputFocusedStyle.Render(s.input.View()),
	)

	sections := []string{input}
	if len(s.results) > 0 {
		sections = append(sections, subheader("Search Results"), s.renderResults())
	}
	if s.quote != nil {
		sections = append(sections, s.renderQuote())
	} else if s.symbol == "" && s.notice.Empty() {
		sections = append(sections, component.Info("Enter a stock symbol (e.g. AAPL) and press Enter or ctrl+f to look it up").View())
	}

	return s.render("Stock Quote Lookup", sections...)
}

func (s *QuoteScreen) renderResults() string {
	lines := make([]string, len(s.results))
	for i, r := range s.results {
		label := fmt.Sprintf("%s - %s", r.Symbol, r.Name)
		if i == s.selected {
			lines[i] = style.TableRowSelectedStyle.Render("▶ " + label)
		} else {
			lines[i] = style.TableRowStyle.Render("  " + label)
		}
	}
	return strings.Join(lines, "\n")
}

func (s *QuoteScreen) renderQuote() string {
	q := s.quote
	symbol := q.Symbol
	if symbol == "" {
		symbol = s.symbol
	}

	tiles := component.Tiles(s.width,
		component.Tile{Label: "Price", Value: format.USD(q.Price)},
		component.Tile{
			Label:      "Change",
			Value:      fmt.Sprintf("%s (%s)", format.USD(q.Change), format.SignedPercent(q.ChangePercent)),
			Delta:      fmt.Sprintf("%.2f%%", q.ChangePercent),
			DeltaStyle: style.Signed(q.ChangePercent),
		},
		component.Tile{Label: "Volume", Value: format.Volume(q.Volume)},
		component.Tile{Label: "Day Range", Value: format.Range(q.Low, q.High)},
	)

	var history string
	if s.sparkline.Len() > 0 {
		change := s.sparkline.GetChangePercent()
		s.sparkline.SetColor(style.SignedColor(change))
		history = s.sparkline.View() + "  " + style.Signed(change).Render(format.SignedPercent(change))
	} else {
		history = component.Info("Historical data unavailable").View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		subheader(fmt.Sprintf("%s - %s", symbol, q.Name)),
		tiles,
		"",
		subheader("Price History (30 days)"),
		history,
	)
}

// SetSize sets the screen dimensions
func (s *QuoteScreen) SetSize(width, height int) {
	s.base.SetSize(width, height)
	if width > 20 {
		s.input.Width = min(width-12, 40)
	}
}
