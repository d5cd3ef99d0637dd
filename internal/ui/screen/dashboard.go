package screen

import (
	"context"
	"strconv"

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

type dashboardLoadedMsg struct {
	seq       uint64
	watchlist api.Watchlist
	portfolio api.Portfolio
}

// DashboardScreen shows the watchlist and a portfolio summary
type DashboardScreen struct {
	base
	loaded    bool
	watchlist api.Watchlist
	portfolio api.Portfolio
	holdings  *component.Table
}

// NewDashboardScreen creates the dashboard page
func NewDashboardScreen(deps Deps) *DashboardScreen {
	holdings := component.NewTable().
		SetSelectable(false).
		AddColumn("Symbol", 10, lipgloss.Left).
		AddColumn("Position", 24, lipgloss.Left).
		AddColumn("Value", 18, lipgloss.Right).
		AddColumn("P&L", 26, lipgloss.Right)

	return &DashboardScreen{
		base:     newBase(deps, ui.RouteDashboard),
		holdings: holdings,
	}
}

// Init fetches the dashboard data
func (s *DashboardScreen) Init() tea.Cmd {
	return s.fetch()
}

// Route returns the route this screen serves
func (s *DashboardScreen) Route() ui.Route {
	return ui.RouteDashboard
}

func (s *DashboardScreen) fetch() tea.Cmd {
	seq := s.seq
	token := s.deps.token()
	backend := s.deps.Backend
	return s.run(func(ctx context.Context) tea.Msg {
		return dashboardLoadedMsg{
			seq:       seq,
			watchlist: backend.GetWatchlist(ctx, token),
			portfolio: backend.GetPortfolio(ctx, token),
		}
	})
}

// Update handles messages for the dashboard
func (s *DashboardScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		if !s.current(msg.seq) {
			return s, nil
		}
		s.loading = false
		s.loaded = true
		s.watchlist = msg.watchlist
		s.portfolio = msg.portfolio
		s.holdings.SetRows(holdingSummaryRows(msg.portfolio.Holdings))
		s.log.Debug("dashboard loaded",
			zap.Int("watchlist", len(msg.watchlist.Entries)),
			zap.Int("holdings", len(msg.portfolio.Holdings)))
		return s, nil

	case tea.KeyMsg:
		if key.Matches(msg, s.keyMap.Refresh) && !s.loading {
			return s, s.fetch()
		}
	}
	return s, nil
}

func holdingSummaryRows(holdings []api.Holding) []component.TableRow {
	rows := make([]component.TableRow, len(holdings))
	for i, h := range holdings {
		rows[i] = component.TableRow{
			Data: []string{
				h.Symbol,
				format.Lot(h.Quantity, h.BuyPrice),
				"Value: " + format.USD(h.MarketValue),
				"P&L: " + format.PnL(h.PnL, h.PnLPercent),
			},
			Styles: map[int]lipgloss.Style{3: style.Signed(h.PnL)},
		}
	}
	return rows
}

// WatchlistTiles renders one tile per watchlist entry. Price shows "N/A" when
// the backend had no quote, and the percent change is shown only when non-zero.
func WatchlistTiles(width int, w api.Watchlist) string {
	quotes := w.QuoteMap()
	tiles := make([]component.Tile, len(w.Entries))
	for i, entry := range w.Entries {
		q := quotes[entry.Symbol]
		tile := component.Tile{Label: entry.Symbol, Value: format.USDOrNA(q.Price)}
		if q.ChangePercent != 0 {
			tile.Delta = format.SignedPercent(q.ChangePercent)
			tile.DeltaStyle = style.Signed(q.ChangePercent)
		}
		tiles[i] = tile
	}

	// four tiles per row
	var rows []string
	for start := 0; start < len(tiles); start += 4 {
		end := min(start+4, len(tiles))
		rows = append(rows, component.Tiles(width, tiles[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// PortfolioTiles renders the summary tiles. The P&L tile carries the display
// return percent.
func PortfolioTiles(width int, p api.Portfolio, withCount bool) string {
	pct := p.DisplayReturnPct()
	tiles := []component.Tile{
		{Label: "Total Value", Value: format.USD(p.TotalValue)},
		{Label: "Total Cost", Value: format.USD(p.TotalCost)},
		{
			Label:      "Total P&L",
			Value:      format.USD(p.TotalPnL),
			Delta:      format.SignedPercent(pct),
			DeltaStyle: style.Signed(pct),
		},
	}
	if withCount {
		tiles[2].Label = "P&L"
		tiles = append(tiles, component.Tile{Label: "Holdings", Value: strconv.Itoa(len(p.Holdings))})
	}
	return component.Tiles(width, tiles...)
}

// View renders the dashboard
func (s *DashboardScreen) View() string {
	if !s.loaded {
		return s.render("Dashboard")
	}

	var watchlist string
	if len(s.watchlist.Entries) > 0 {
		watchlist = WatchlistTiles(s.width, s.watchlist)
	} else {
		watchlist = component.Info("No stocks in watchlist. Add some from the Quote Lookup or Watchlist page.").View()
	}

	var portfolio string
	if len(s.portfolio.Holdings) > 0 {
		portfolio = lipgloss.JoinVertical(lipgloss.Left,
			PortfolioTiles(s.width, s.portfolio, true),
			subheader("Holdings"),
			s.holdings.View(),
		)
	} else {
		portfolio = component.Info("No holdings. Add some from the Portfolio page.").View()
	}

	return s.render("Dashboard",
		subheader("Watchlist"),
		watchlist,
		subheader("Portfolio Summary"),
		portfolio,
	)
}

// SetSize sets the screen dimensions
func (s *DashboardScreen) SetSize(width, height int) {
	s.base.SetSize(width, height)
	s.holdings.SetWidth(width - 4)
}
