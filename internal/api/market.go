package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

const (
	DefaultHistoryRange    = "1mo"
	DefaultHistoryInterval = "1d"
	DefaultSearchLimit     = 10
)

// GetQuote fetches the current quote for symbol. It returns nil on any
// transport failure, error status or unusable payload.
func (c *Client) GetQuote(ctx context.Context, symbol string) *Quote {
	env, ok := c.read(ctx, request{
		method: http.MethodGet,
		path:   "/api/quote/" + url.PathEscape(symbol),
	})
	if !ok {
		return nil
	}
	obj, ok := env.object()
	if !ok || len(obj) == 0 {
		return nil
	}
	var q Quote
	if err := decode(obj, &q); err != nil {
		return nil
	}
	return &q
}

// GetHistory fetches price history. ok is false when the request failed; a
// successful call with nothing usable yields an empty, non-nil slice.
func (c *Client) GetHistory(ctx context.Context, symbol, rng, interval string) (points []HistoryPoint, ok bool) {
	if rng == "" {
		rng = DefaultHistoryRange
	}
	if interval == "" {
		interval = DefaultHistoryInterval
	}

	env, ok := c.read(ctx, request{
		method: http.MethodGet,
		path:   "/api/history/" + url.PathEscape(symbol),
		query:  url.Values{"range": {rng}, "interval": {interval}},
	})
	if !ok {
		return nil, false
	}
	obj, isObj := env.object()
	if !isObj {
		return []HistoryPoint{}, true
	}
	raw, _ := field(obj, "history")
	return decodeList[HistoryPoint](raw), true
}

// SearchSymbols looks up symbols matching query. It never returns nil.
func (c *Client) SearchSymbols(ctx context.Context, query string, limit int) []SearchResult {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	env, ok := c.read(ctx, request{
		method: http.MethodGet,
		path:   "/api/search",
		query:  url.Values{"q": {query}, "limit": {strconv.Itoa(limit)}},
	})
	if !ok {
		return []SearchResult{}
	}
	obj, isObj := env.object()
	if !isObj {
		return []SearchResult{}
	}
	raw, _ := field(obj, "results")
	return decodeList[SearchResult](raw)
}
