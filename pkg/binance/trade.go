package binance

import (
	"context"

	"github.com/cockroachdb/apd/v3"

	"binancekit/pkg/core"
)

// OrderRequest describes a new spot order. Required fields are plain values;
// optional fields are pointers or empty-able strings that are inserted into
// the parameter map as nil when unset, so the query encoder's nil-omission
// rule is the only place absence is decided.
type OrderRequest struct {
	Symbol string
	Side   string // "BUY" or "SELL"
	Type   string // "LIMIT", "MARKET", "STOP_LOSS", ...

	TimeInForce   string
	Quantity      *apd.Decimal
	QuoteOrderQty *apd.Decimal
	Price         *apd.Decimal
	ClientOrderID string
	StopPrice     *apd.Decimal
	IcebergQty    *apd.Decimal
}

func (r *OrderRequest) params() core.Params {
	return core.Params{
		"symbol":           r.Symbol,
		"side":             r.Side,
		"type":             r.Type,
		"timeInForce":      optString(r.TimeInForce),
		"quantity":         optDecimal(r.Quantity),
		"quoteOrderQty":    optDecimal(r.QuoteOrderQty),
		"price":            optDecimal(r.Price),
		"newClientOrderId": optString(r.ClientOrderID),
		"stopPrice":        optDecimal(r.StopPrice),
		"icebergQty":       optDecimal(r.IcebergQty),
	}
}

func optString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func optDecimal(d *apd.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}

// NewOrder submits a new order and returns the exchange's acknowledgement.
func (c *Client) NewOrder(ctx context.Context, req *OrderRequest) (*OrderAck, error) {
	payload, err := c.SignedPost(ctx, "/api/v3/order", req.params())
	if err != nil {
		return nil, err
	}

	return normalizeOrderAck(payload)
}

// TestNewOrder validates a new order against the signing and matching-engine
// rules without placing it. A nil error means the order would be accepted.
func (c *Client) TestNewOrder(ctx context.Context, req *OrderRequest) error {
	_, err := c.SignedPost(ctx, "/api/v3/order/test", req.params())
	return err
}
