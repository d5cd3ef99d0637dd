package screen

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/tinystock/internal/api"
	"github.com/rovshanmuradov/tinystock/internal/format"
	"github.com/rovshanmuradov/tinystock/internal/ui"
	"github.com/rovshanmuradov/tinystock/internal/ui/component"
	"github.com/rovshanmuradov/tinystock/internal/ui/router"
	"github.com/rovshanmuradov/tinystock/internal/ui/style"
)

// Add-holding form defaults and bounds.
const (
	DefaultQuantity = "1"
	DefaultBuyPrice = "100"
)

var minAmount = decimal.RequireFromString("0.01")

var errAmount = errors.New("must be a number of at least 0.01")

// parseAmount parses a quantity or price and enforces the 0.01 minimum.
func parseAmount(v string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil || d.LessThan(minAmount) {
		return 0, errAmount
	}
	return d.InexactFloat64(), nil
}

func validateAmount(v string) error {
	_, err := parseAmount(v)
	return err
}

type portfolioLoadedMsg struct {
	seq       uint64
	portfolio api.Portfolio
	// outcome is set when the fetch followed an add or remove.
	outcome *api.Outcome
}

// PortfolioScreen shows holdings with backend-computed P&L and edits them
type PortfolioScreen struct {
	base
	loaded    bool
	form      *component.Form
	table     *component.Table
	portfolio api.Portfolio
}

// NewPortfolioScreen creates the portfolio page
func NewPortfolioScreen(deps Deps) *PortfolioScreen {
	form := component.NewForm().
		Inline(true).
		AddField("symbol", component.TextInput, "Symbol", false, "e.g. AAPL").
		AddField("quantity", component.NumberInput, "Quantity", true, DefaultQuantity).
		AddField("buyPrice", component.NumberInput, "Buy Price ($)", true, DefaultBuyPrice).
		SetFieldValidation("quantity", validateAmount).
		SetFieldValidation("buyPrice", validateAmount)
	resetHoldingForm(form)

	table := component.NewTable().
		SetEmptyText("No holdings. Add your first holding above.").
		AddColumn("Symbol", 10, lipgloss.Left).
		AddColumn("Quantity", 22, lipgloss.Left).
		AddColumn("Current", 14, lipgloss.Right).
		AddColumn("Market Value", 16, lipgloss.Right).
		AddColumn("P&L", 26, lipgloss.Right)

	return &PortfolioScreen{
		base:  newBase(deps, ui.RoutePortfolio),
		form:  form,
		table: table,
	}
}

func resetHoldingForm(form *component.Form) {
	form.Reset().
		SetFieldValue("quantity", DefaultQuantity).
		SetFieldValue("buyPrice", DefaultBuyPrice)
}

// Init fetches the portfolio
func (s *PortfolioScreen) Init() tea.Cmd {
	return tea.Batch(s.form.Init(), s.fetch(nil))
}

// Route returns the route this screen serves
func (s *PortfolioScreen) Route() ui.Route {
	return ui.RoutePortfolio
}

// Portfolio returns the last fetched portfolio.
func (s *PortfolioScreen) Portfolio() api.Portfolio {
	return s.portfolio
}

func (s *PortfolioScreen) fetch(mutate func(ctx context.Context, token string) api.Outcome) tea.Cmd {
	seq := s.seq
	token := s.deps.token()
	backend := s.deps.Backend
	return s.run(func(ctx context.Context) tea.Msg {
		msg := portfolioLoadedMsg{seq: seq}
		if mutate != nil {
			outcome := mutate(ctx, token)
			msg.outcome = &outcome
		}
		msg.portfolio = backend.GetPortfolio(ctx, token)
		return msg
	})
}

// Update handles messages for the portfolio screen
func (s *PortfolioScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case portfolioLoadedMsg:
		if !s.current(msg.seq) {
			return s, nil
		}
		s.loading = false
		s.loaded = true
		s.portfolio = msg.portfolio
		s.table.SetRows(holdingRows(msg.portfolio.Holdings))
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

func (s *PortfolioScreen) add() tea.Cmd {
	symbol := strings.ToUpper(strings.TrimSpace(s.form.GetValue("symbol")))
	if !s.form.Validate() {
		return nil
	}
	if symbol == "" {
		s.notice = component.Warning("Enter a symbol")
		return nil
	}
	quantity, _ := parseAmount(s.form.GetValue("quantity"))
	buyPrice, _ := parseAmount(s.form.GetValue("buyPrice"))

	s.notice = component.Notice{}
	resetHoldingForm(s.form)
	s.log.Debug("adding holding",
		zap.String("symbol", symbol),
		zap.Float64("quantity", quantity),
		zap.Float64("buy_price", buyPrice))

	backend := s.deps.Backend
	return s.fetch(func(ctx context.Context, token string) api.Outcome {
		return backend.AddHolding(ctx, token, symbol, quantity, buyPrice)
	})
}

func (s *PortfolioScreen) remove() tea.Cmd {
	row := s.table.SelectedRow()
	if row < 0 || row >= len(s.portfolio.Holdings) {
		return nil
	}
	id := s.portfolio.Holdings[row].ID
	s.notice = component.Notice{}
	s.log.Debug("removing holding", zap.Int64("id", id))

	backend := s.deps.Backend
	return s.fetch(func(ctx context.Context, token string) api.Outcome {
		return backend.RemoveHolding(ctx, token, id)
	})
}

func holdingRows(holdings []api.Holding) []component.TableRow {
	rows := make([]component.TableRow, len(holdings))
	for i, h := range holdings {
		rows[i] = component.TableRow{
			Data: []string{
				h.Symbol,
				format.Lot(h.Quantity, h.BuyPrice),
				format.USD(h.CurrentPrice),
				format.USD(h.MarketValue),
				format.PnL(h.PnL, h.PnLPercent),
			},
			Styles: map[int]lipgloss.Style{4: style.Signed(h.PnL)},
		}
	}
	return rows
}

// View renders the portfolio screen
func (s *PortfolioScreen) View() string {
	sections := []string{subheader("Add Holding"), s.form.View()}
	if s.loaded {
		if len(s.portfolio.Holdings) > 0 {
			sections = append(sections,
				subheader("Summary"),
				PortfolioTiles(s.width, s.portfolio, false),
			)
		}
		sections = append(sections, subheader("Holdings"), s.table.View())
	}
	return s.render("Portfolio", sections...)
}

// SetSize sets the screen dimensions
func (s *PortfolioScreen) SetSize(width, height int) {
	s.base.SetSize(width, height)
	s.form.SetWidth(min(width-8, 90))
	s.table.SetWidth(width - 4)
}
