package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rovshanmuradov/tinystock/internal/api"
	"github.com/rovshanmuradov/tinystock/internal/ui/component"
)

func quoteBackend() *fakeBackend {
	backend := newFakeBackend()
	backend.quotes["AAPL"] = &api.Quote{
		Symbol: "AAPL", Name: "Apple Inc.", Price: 189.5, Change: 1.25, ChangePercent: 0.66,
		Volume: 51234567, Low: 187.1, High: 190.2,
	}
	backend.history = []api.HistoryPoint{
		{Date: "2024-01-02", Close: 185},
		{Date: "2024-01-03", Close: 187},
		{Date: "2024-01-04", Close: 189.5},
	}
	backend.historyOK = true
	backend.results = []api.SearchResult{
		{Symbol: "AAPL", Name: "Apple Inc."},
		{Symbol: "APLE", Name: "Apple Hospitality REIT"},
	}
	return backend
}

func TestQuoteDirectLookup(t *testing.T) {
	backend := quoteBackend()
	s := start(t, NewQuoteScreen(testDeps(t, backend)))

	s = typeText(s, "AAPL")
	s, _ = press(t, s, keyEnter)

	assert.Equal(t, []string{"GetQuote AAPL", "GetHistory AAPL 1mo 1d"}, backend.Calls())
	q := s.(*QuoteScreen)
	assert.Equal(t, "AAPL", q.Symbol())
	assert.Empty(t, q.Results())

	view := s.View()
	assert.Contains(t, view, "AAPL - Apple Inc.")
	assert.Contains(t, view, "$189.50")
	assert.Contains(t, view, "51,234,567")
	assert.Contains(t, view, "Price History (30 days)")
	assert.NotContains(t, view, "Historical data unavailable")
}

func TestQuoteSearchThenSelect(t *testing.T) {
	backend := quoteBackend()
	s := start(t, NewQuoteScreen(testDeps(t, backend)))

	s = typeText(s, "apple inc")
	s, _ = press(t, s, keyEnter)

	require.Equal(t, []string{"SearchSymbols apple inc 5"}, backend.Calls())
	assert.Len(t, s.(*QuoteScreen).Results(), 2)
	assert.Contains(t, s.View(), "APLE - Apple Hospitality REIT")

	s, _ = s.Update(keyDown)
	s, _ = s.Update(keyDown)
	s, _ = press(t, s, keyEnter)

	assert.Equal(t, "GetQuote APLE", backend.Calls()[1])
	assert.Equal(t, "APLE", s.(*QuoteScreen).Symbol())
}

func TestQuoteSearchAndLookupTogether(t *testing.T) {
	backend := quoteBackend()
	s := start(t, NewQuoteScreen(testDeps(t, backend)))

	s = typeText(s, "A B")
	press(t, s, keyEnter)

	assert.Equal(t, []string{"SearchSymbols A B 5", "GetQuote A B"}, backend.Calls())
}

func TestQuoteForcedLookupUppercases(t *testing.T) {
	backend := quoteBackend()
	s := start(t, NewQuoteScreen(testDeps(t, backend)))

	s = typeText(s, "aapl")
	s, _ = press(t, s, keyCtrlF)

	assert.Equal(t, []string{"GetQuote AAPL", "GetHistory AAPL 1mo 1d"}, backend.Calls())
	assert.Equal(t, "AAPL", s.(*QuoteScreen).Symbol())
}

func TestQuoteMissing(t *testing.T) {
	backend := quoteBackend()
	s := start(t, NewQuoteScreen(testDeps(t, backend)))

	s = typeText(s, "ZZZZ")
	s, _ = press(t, s, keyEnter)

	assert.Equal(t, []string{"GetQuote ZZZZ"}, backend.Calls())
	notice := s.(*QuoteScreen).Notice()
	assert.Equal(t, component.NoticeError, notice.Kind)
	assert.Equal(t, "Could not fetch quote for ZZZZ. Is the backend running?", notice.Text)
}

func TestQuoteHistoryUnavailable(t *testing.T) {
	for _, tc := range []struct {
		name string
		ok   bool
	}{
		{name: "failed", ok: false},
		{name: "empty", ok: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			backend := quoteBackend()
			backend.history = nil
			backend.historyOK = tc.ok
			s := start(t, NewQuoteScreen(testDeps(t, backend)))

			s = typeText(s, "AAPL")
			s, _ = press(t, s, keyEnter)

			assert.Contains(t, s.View(), "Historical data unavailable")
		})
	}
}

func TestQuoteAmbiguousInputDoesNothing(t *testing.T) {
	backend := quoteBackend()
	s := start(t, NewQuoteScreen(testDeps(t, backend)))

	s = typeText(s, "GOOGLE")
	s, _ = press(t, s, keyEnter)

	assert.Empty(t, backend.Calls())
	assert.Equal(t, component.NoticeInfo, s.(*QuoteScreen).Notice().Kind)
}

func TestQuoteAddToWatchlist(t *testing.T) {
	backend := quoteBackend()
	backend.mutation = api.Outcome{OK: true, Message: "Added to watchlist"}
	s := start(t, NewQuoteScreen(testDeps(t, backend)))

	// nothing to add before a quote is shown
	s, _ = press(t, s, keyCtrlS)
	assert.Empty(t, backend.Calls())

	s = typeText(s, "AAPL")
	s, _ = press(t, s, keyEnter)
	s, _ = press(t, s, keyCtrlS)

	assert.Equal(t, "AddToWatchlist tok AAPL", backend.Calls()[2])
	notice := s.(*QuoteScreen).Notice()
	assert.Equal(t, component.NoticeSuccess, notice.Kind)
	assert.Equal(t, "Added to watchlist", notice.Text)

	backend.mutation = api.Outcome{Message: "Already in watchlist"}
	s, _ = press(t, s, keyCtrlS)
	assert.Equal(t, component.NoticeWarning, s.(*QuoteScreen).Notice().Kind)
}
