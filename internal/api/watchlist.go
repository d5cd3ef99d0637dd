package api

import (
	"context"
	"net/http"
	"net/url"
)

type symbolRequest struct {
	Symbol string `json:"symbol"`
}

// GetWatchlist returns the user's entries and their quotes. On any failure
// both slices are empty, never nil.
func (c *Client) GetWatchlist(ctx context.Context, token string) Watchlist {
	empty := Watchlist{Entries: []WatchlistEntry{}, Quotes: []Quote{}}

	env, ok := c.read(ctx, request{
		method: http.MethodGet,
		path:   "/api/watchlist",
		token:  token,
	})
	if !ok {
		return empty
	}
	obj, isObj := env.object()
	if !isObj {
		return empty
	}

	entries, _ := field(obj, "watchlist")
	quotes, _ := field(obj, "quotes")
	return Watchlist{
		Entries: decodeList[WatchlistEntry](entries),
		Quotes:  decodeList[Quote](quotes),
	}
}

// AddToWatchlist expects 201 Created.
func (c *Client) AddToWatchlist(ctx context.Context, token, symbol string) Outcome {
	return c.mutate(ctx, request{
		method: http.MethodPost,
		path:   "/api/watchlist",
		token:  token,
		body:   symbolRequest{Symbol: symbol},
	}, http.StatusCreated, "Added to watchlist")
}

// RemoveFromWatchlist expects 200 OK.
func (c *Client) RemoveFromWatchlist(ctx context.Context, token, symbol string) Outcome {
	return c.mutate(ctx, request{
		method: http.MethodDelete,
		path:   "/api/watchlist/" + url.PathEscape(symbol),
		token:  token,
	}, http.StatusOK, "Removed from watchlist")
}
