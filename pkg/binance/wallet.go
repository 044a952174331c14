package binance

import (
	"context"

	"binancekit/pkg/core"
)

// UserAssetsOption narrows a user-asset query.
type UserAssetsOption func(core.Params)

// WithAsset restricts the result to a single asset.
func WithAsset(asset string) UserAssetsOption {
	return func(p core.Params) {
		p["asset"] = asset
	}
}

// WithBTCValuation asks the exchange to include each asset's BTC valuation.
func WithBTCValuation() UserAssetsOption {
	return func(p core.Params) {
		p["needBtcValuation"] = true
	}
}

// UserAssets fetches the account's asset balances. Requires both API key and
// secret key in the config.
func (c *Client) UserAssets(ctx context.Context, opts ...UserAssetsOption) ([]UserAsset, error) {
	params := core.Params{}
	for _, opt := range opts {
		opt(params)
	}

	payload, err := c.SignedPost(ctx, "/sapi/v3/asset/getUserAsset", params)
	if err != nil {
		return nil, err
	}

	return normalizeUserAssets(payload)
}
