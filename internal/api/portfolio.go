package api

import (
	"context"
	"net/http"
	"strconv"
)

type holdingRequest struct {
	Symbol   string  `json:"symbol"`
	Quantity float64 `json:"quantity"`
	BuyPrice float64 `json:"buyPrice"`
}

// GetPortfolio returns the backend-computed summary. Any failure yields the
// zero-valued summary so callers can render unconditionally.
func (c *Client) GetPortfolio(ctx context.Context, token string) Portfolio {
	env, ok := c.read(ctx, request{
		method: http.MethodGet,
		path:   "/api/portfolio",
		token:  token,
	})
	if !ok {
		return emptyPortfolio()
	}
	obj, isObj := env.object()
	if !isObj {
		return emptyPortfolio()
	}

	var p Portfolio
	if err := decode(obj, &p); err != nil {
		// holdings may be partially malformed; keep the totals and the usable rows
		rest := make(map[string]any, len(obj))
		for k, v := range obj {
			if k != "holdings" {
				rest[k] = v
			}
		}
		p = Portfolio{}
		if err := decode(rest, &p); err != nil {
			return emptyPortfolio()
		}
		raw, _ := field(obj, "holdings")
		p.Holdings = decodeList[Holding](raw)
	}
	if p.Holdings == nil {
		p.Holdings = []Holding{}
	}
	return p
}

// AddHolding records a new lot. It expects 201 Created.
func (c *Client) AddHolding(ctx context.Context, token, symbol string, quantity, buyPrice float64) Outcome {
	return c.mutate(ctx, request{
		method: http.MethodPost,
		path:   "/api/portfolio",
		token:  token,
		body:   holdingRequest{Symbol: symbol, Quantity: quantity, BuyPrice: buyPrice},
	}, http.StatusCreated, "Added to portfolio")
}

// RemoveHolding deletes the lot with the given id. It expects 200 OK.
func (c *Client) RemoveHolding(ctx context.Context, token string, holdingID int64) Outcome {
	return c.mutate(ctx, request{
		method: http.MethodDelete,
		path:   "/api/portfolio/" + strconv.FormatInt(holdingID, 10),
		token:  token,
	}, http.StatusOK, "Removed from portfolio")
}
