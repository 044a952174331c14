// Package binance is a typed client for the Binance spot REST API.
//
// The package includes:
//   - Client: public GET and HMAC-signed GET/POST dispatch over a shared,
//     read-only core.Config
//   - Endpoint wrappers: Klines, TickerPrice(s), ExchangeInfo, UserAssets,
//     NewOrder, TestNewOrder
//   - Response interpretation that maps the exchange's embedded error codes
//     to core.APIError
//
// Example usage:
//
//	client, err := binance.New(core.DefaultConfig())
//	series, err := client.Klines(ctx, "BTCUSDT", "1h", binance.WithLimit(100))
package binance
