package binance

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	"binancekit/pkg/core"
)

// KlinesOption narrows a kline query. Options write straight into the
// parameter map; unset options simply never appear in it.
type KlinesOption func(core.Params)

// WithStartTime limits the series to intervals opening at or after t.
func WithStartTime(t time.Time) KlinesOption {
	return func(p core.Params) {
		p["startTime"] = t.UnixMilli()
	}
}

// WithEndTime limits the series to intervals opening at or before t.
func WithEndTime(t time.Time) KlinesOption {
	return func(p core.Params) {
		p["endTime"] = t.UnixMilli()
	}
}

// WithLimit caps the number of returned intervals (exchange default 500,
// maximum 1000).
func WithLimit(limit int) KlinesOption {
	return func(p core.Params) {
		p["limit"] = limit
	}
}

// Klines fetches candlestick history for symbol at the given interval
// (e.g. "1m", "1h", "1d") and returns it in columnar form.
func (c *Client) Klines(ctx context.Context, symbol, interval string, opts ...KlinesOption) (*KlineSeries, error) {
	params := core.Params{
		"symbol":   symbol,
		"interval": interval,
	}
	for _, opt := range opts {
		opt(params)
	}

	payload, err := c.PublicGet(ctx, "/api/v3/klines", params)
	if err != nil {
		return nil, err
	}

	return normalizeKlines(payload, symbol, interval)
}

// TickerPrice fetches the latest price for a single symbol.
func (c *Client) TickerPrice(ctx context.Context, symbol string) (*Price, error) {
	payload, err := c.PublicGet(ctx, "/api/v3/ticker/price", core.Params{
		"symbol": symbol,
	})
	if err != nil {
		return nil, err
	}

	return normalizePrice(payload)
}

// TickerPrices fetches the latest prices for multiple symbols in one call.
// The symbols travel as a JSON array literal in a single query parameter,
// e.g. symbols=["BTCUSDT","ETHUSDT"].
func (c *Client) TickerPrices(ctx context.Context, symbols []string) ([]Price, error) {
	literal, err := sonic.Marshal(symbols)
	if err != nil {
		return nil, fmt.Errorf("encode symbols: %w", err)
	}

	payload, err := c.PublicGet(ctx, "/api/v3/ticker/price", core.Params{
		"symbols": string(literal),
	})
	if err != nil {
		return nil, err
	}

	return normalizePrices(payload)
}

// ExchangeInfo fetches current exchange trading rules and symbol metadata.
// With no arguments it returns the full listing; with one symbol it filters
// to that symbol; with several it sends the JSON array literal form. The
// result is passed through as the parsed key/value tree.
func (c *Client) ExchangeInfo(ctx context.Context, symbols ...string) (map[string]any, error) {
	params := core.Params{}
	switch len(symbols) {
	case 0:
	case 1:
		params["symbol"] = symbols[0]
	default:
		literal, err := sonic.Marshal(symbols)
		if err != nil {
			return nil, fmt.Errorf("encode symbols: %w", err)
		}
		params["symbols"] = string(literal)
	}

	payload, err := c.PublicGet(ctx, "/api/v3/exchangeInfo", params)
	if err != nil {
		return nil, err
	}

	return asObject(payload)
}

// ServerTime fetches the exchange's clock, the cheapest connectivity probe
// and the reference recvWindow is measured against.
func (c *Client) ServerTime(ctx context.Context) (time.Time, error) {
	payload, err := c.PublicGet(ctx, "/api/v3/time", nil)
	if err != nil {
		return time.Time{}, err
	}

	obj, err := asObject(payload)
	if err != nil {
		return time.Time{}, err
	}

	return millisValue(obj["serverTime"]), nil
}
