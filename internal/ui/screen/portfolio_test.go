package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rovshanmuradov/tinystock/internal/api"
	"github.com/rovshanmuradov/tinystock/internal/ui/component"
)

func portfolioBackend() *fakeBackend {
	backend := newFakeBackend()
	backend.portfolio = api.Portfolio{
		Holdings: []api.Holding{
			{ID: 11, Symbol: "AAPL", Quantity: 10, BuyPrice: 150, CurrentPrice: 189.5, MarketValue: 1895, PnL: 395, PnLPercent: 26.33},
			{ID: 12, Symbol: "AAPL", Quantity: 2, BuyPrice: 200, CurrentPrice: 189.5, MarketValue: 379, PnL: -21, PnLPercent: -5.25},
		},
		TotalValue: 2274,
		TotalCost:  1900,
		TotalPnL:   374,
	}
	return backend
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in    string
		want  float64
		valid bool
	}{
		{in: "1", want: 1, valid: true},
		{in: " 0.01 ", want: 0.01, valid: true},
		{in: "100.5", want: 100.5, valid: true},
		{in: "0.009", valid: false},
		{in: "0", valid: false},
		{in: "-3", valid: false},
		{in: "abc", valid: false},
		{in: "", valid: false},
	}
	for _, tt := range tests {
		got, err := parseAmount(tt.in)
		if !tt.valid {
			assert.ErrorIs(t, err, errAmount, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.InDelta(t, tt.want, got, 1e-9)
	}
}

func TestPortfolioRendersSummary(t *testing.T) {
	backend := portfolioBackend()
	s := start(t, NewPortfolioScreen(testDeps(t, backend)))

	assert.Equal(t, []string{"GetPortfolio tok"}, backend.Calls())
	view := s.View()
	assert.Contains(t, view, "Total P&L")
	assert.Contains(t, view, "$2,274.00")
	assert.Contains(t, view, "10.00 @ $150.00")
	assert.Contains(t, view, "$395.00 (+26.33%)")
	assert.Contains(t, view, "-$21.00 (-5.25%)")
}

func TestPortfolioEmpty(t *testing.T) {
	s := start(t, NewPortfolioScreen(testDeps(t, newFakeBackend())))
	view := s.View()
	assert.Contains(t, view, "No holdings. Add your first holding above.")
	assert.NotContains(t, view, "Summary")
}

func TestPortfolioAddUsesDefaults(t *testing.T) {
	backend := portfolioBackend()
	backend.mutation = api.Outcome{OK: true, Message: "Added to portfolio"}
	s := start(t, NewPortfolioScreen(testDeps(t, backend)))

	s = typeText(s, "msft")
	s, _ = press(t, s, keyEnter)

	assert.Equal(t, []string{"GetPortfolio tok", "AddHolding tok MSFT 1 100", "GetPortfolio tok"}, backend.Calls())
	assert.Equal(t, "Added to portfolio", s.(*PortfolioScreen).Notice().Text)
}

func TestPortfolioAddRejectsBadAmounts(t *testing.T) {
	backend := portfolioBackend()
	ps := NewPortfolioScreen(testDeps(t, backend))
	s := start(t, ps)

	ps.form.SetFieldValue("symbol", "MSFT")
	ps.form.SetFieldValue("quantity", "0")
	s, _ = press(t, s, keyEnter)

	assert.Equal(t, []string{"GetPortfolio tok"}, backend.Calls())
	assert.Contains(t, s.View(), "Must be a number of at least 0.01")
}

func TestPortfolioAddRequiresSymbol(t *testing.T) {
	backend := portfolioBackend()
	s := start(t, NewPortfolioScreen(testDeps(t, backend)))

	s, _ = press(t, s, keyEnter)

	assert.Equal(t, []string{"GetPortfolio tok"}, backend.Calls())
	notice := s.(*PortfolioScreen).Notice()
	assert.Equal(t, component.NoticeWarning, notice.Kind)
	assert.Equal(t, "Enter a symbol", notice.Text)
}

func TestPortfolioRemoveByID(t *testing.T) {
	backend := portfolioBackend()
	backend.mutation = api.Outcome{OK: true, Message: "Removed from portfolio"}
	s := start(t, NewPortfolioScreen(testDeps(t, backend)))

	// both lots share a symbol; the second is removed by its id
	s, _ = s.Update(keyDown)
	s, _ = press(t, s, keyCtrlX)

	assert.Equal(t, []string{"GetPortfolio tok", "RemoveHolding tok 12", "GetPortfolio tok"}, backend.Calls())
	assert.Equal(t, component.NoticeSuccess, s.(*PortfolioScreen).Notice().Kind)
}

func TestPortfolioIgnoresSubmitWhileLoading(t *testing.T) {
	backend := portfolioBackend()
	s := NewPortfolioScreen(testDeps(t, backend))
	s.form.SetFieldValue("symbol", "MSFT")
	s.loading = true

	_, cmd := s.Update(keyEnter)
	assert.Nil(t, cmd)
	_, cmd = s.Update(keyCtrlX)
	assert.Nil(t, cmd)
	assert.Empty(t, backend.Calls())
}

func TestPortfolioDeleteKeyEditsSymbol(t *testing.T) {
	backend := newFakeBackend()
	backend.portfolio = api.Portfolio{Holdings: []api.Holding{{ID: 7, Symbol: "AAPL", Quantity: 1, BuyPrice: 100}}}
	s := start(t, NewPortfolioScreen(testDeps(t, backend)))

	s = typeText(s, "msftx")
	s, _ = s.Update(keyLeft)
	s, _ = press(t, s, keyDelete)

	assert.Equal(t, []string{"GetPortfolio tok"}, backend.Calls())

	press(t, s, keyEnter)
	assert.Contains(t, backend.Calls(), "AddHolding tok MSFT 1 100")
	assert.NotContains(t, backend.Calls(), "RemoveHolding tok 7")
}
