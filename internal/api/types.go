package api

import "github.com/shopspring/decimal"

// User is the profile returned alongside a login token.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Auth is a successful login.
type Auth struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Outcome is the result of a mutating call. Message is always user-presentable.
type Outcome struct {
	OK      bool
	Message string
}

// Quote is a current quote for one symbol.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	Volume        int64   `json:"volume"`
	Low           float64 `json:"low"`
	High          float64 `json:"high"`
}

// HistoryPoint is one bar of price history, ordered by Date.
type HistoryPoint struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// SearchResult is a symbol/name pair from symbol search.
type SearchResult struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// WatchlistEntry is a symbol the backend holds in the user's watchlist.
type WatchlistEntry struct {
	ID     int64  `json:"id"`
	Symbol string `json:"symbol"`
}

// Watchlist pairs the entries with whatever quotes the backend could fetch.
type Watchlist struct {
	Entries []WatchlistEntry `json:"watchlist"`
	Quotes  []Quote          `json:"quotes"`
}

// QuoteMap indexes Quotes by symbol. Symbols without a quote are absent.
func (w Watchlist) QuoteMap() map[string]Quote {
	m := make(map[string]Quote, len(w.Quotes))
	for _, q := range w.Quotes {
		m[q.Symbol] = q
	}
	return m
}

// Holding is one lot. ID is the only key used for removal; Symbol is not unique.
type Holding struct {
	ID           int64   `json:"id"`
	Symbol       string  `json:"symbol"`
	Quantity     float64 `json:"quantity"`
	BuyPrice     float64 `json:"buyPrice"`
	CurrentPrice float64 `json:"currentPrice"`
	MarketValue  float64 `json:"marketValue"`
	CostBasis    float64 `json:"costBasis"`
	PnL          float64 `json:"pnl"`
	PnLPercent   float64 `json:"pnlPercent"`
}

// Portfolio is the backend-computed summary. ReturnPct is nil when the backend
// omitted it or sent null.
type Portfolio struct {
	Holdings   []Holding `json:"holdings"`
	TotalValue float64   `json:"totalValue"`
	TotalCost  float64   `json:"totalCost"`
	TotalPnL   float64   `json:"totalPnL"`
	ReturnPct  *float64  `json:"returnPct"`
}

// emptyPortfolio is the failure sentinel for GetPortfolio.
func emptyPortfolio() Portfolio {
	zero := 0.0
	return Portfolio{Holdings: []Holding{}, ReturnPct: &zero}
}

// DisplayReturnPct is the return shown next to P&L: the backend value when it is
// present and non-zero, otherwise (totalValue-totalCost)/totalCost*100, or 0 when
// totalCost is not positive.
func (p Portfolio) DisplayReturnPct() float64 {
	if p.ReturnPct != nil && *p.ReturnPct != 0 {
		return *p.ReturnPct
	}
	cost := decimal.NewFromFloat(p.TotalCost)
	if !cost.IsPositive() {
		return 0
	}
	value := decimal.NewFromFloat(p.TotalValue)
	pct := value.Sub(cost).Div(cost).Mul(decimal.NewFromInt(100))
	return pct.InexactFloat64()
}
