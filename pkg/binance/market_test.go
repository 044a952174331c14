package binance

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const klinesBody = `[
	[1699056000000,"34500.01","34702.00","34212.50","34650.25","1024.53210000",1699059599999,"35401234.12345678",98123,"512.11000000","17700000.00000000","0"],
	[1699059600000,"34650.25","34890.10","34600.00","34800.00","893.00000000",1699063199999,"31000000.00000000",87001,"440.50000000","15300000.00000000","0"]
]`

func TestKlines(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/klines", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "BTCUSDT", query.Get("symbol"))
		assert.Equal(t, "1h", query.Get("interval"))
		w.Write([]byte(klinesBody))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "", "")

	series, err := client.Klines(context.Background(), "BTCUSDT", "1h")
	require.NoError(t, err)

	require.Equal(t, 2, series.Len())
	assert.Equal(t, "BTCUSDT", series.Symbol)
	assert.Equal(t, "1h", series.Interval)

	assert.Equal(t, time.UnixMilli(1699056000000), series.OpenTime[0])
	assert.Equal(t, time.UnixMilli(1699059599999), series.CloseTime[0])
	assert.Equal(t, "34500.01", series.Open[0].String())
	assert.Equal(t, "34702.00", series.High[0].String())
	assert.Equal(t, "34212.50", series.Low[0].String())
	assert.Equal(t, "34650.25", series.Close[0].String())
	assert.Equal(t, "1024.53210000", series.Volume[0].String())
	assert.Equal(t, "35401234.12345678", series.QuoteVolume[0].String())
	assert.Equal(t, int64(98123), series.TradeCount[0])
	assert.Equal(t, "512.11000000", series.TakerBuyBase[0].String())
	assert.Equal(t, "17700000.00000000", series.TakerBuyQuote[0].String())

	assert.Equal(t, "34800.00", series.Close[1].String())
}

func TestKlines_Options(t *testing.T) {
	start := time.UnixMilli(1699056000000)
	end := time.UnixMilli(1699063199999)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "1699056000000", query.Get("startTime"))
		assert.Equal(t, "1699063199999", query.Get("endTime"))
		assert.Equal(t, "2", query.Get("limit"))
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "", "")

	series, err := client.Klines(context.Background(), "BTCUSDT", "1h",
		WithStartTime(start), WithEndTime(end), WithLimit(2))
	require.NoError(t, err)
	assert.Equal(t, 0, series.Len())
}

func TestKlines_MalformedRow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[[1699056000000,"34500.01"]]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "", "")

	_, err := client.Klines(context.Background(), "BTCUSDT", "1h")
	assert.ErrorContains(t, err, "kline row 0")
}

func TestTickerPrice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/ticker/price", r.URL.Path)
		assert.Equal(t, "BTCUSDT", r.URL.Query().Get("symbol"))
		w.Write([]byte(`{"symbol":"BTCUSDT","price":"97312.01000000"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "", "")

	price, err := client.TickerPrice(context.Background(), "BTCUSDT")
	require.NoError(t, err)

	assert.Equal(t, "BTCUSDT", price.Symbol)
	assert.Equal(t, "97312.01000000", price.Price.String())
}

func TestTickerPrices_SymbolsJSONLiteral(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, `["BTCUSDT","ETHUSDT"]`, r.URL.Query().Get("symbols"))
		w.Write([]byte(`[{"symbol":"BTCUSDT","price":"97312.01"},{"symbol":"ETHUSDT","price":"3100.42"}]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "", "")

	prices, err := client.TickerPrices(context.Background(), []string{"BTCUSDT", "ETHUSDT"})
	require.NoError(t, err)

	require.Len(t, prices, 2)
	assert.Equal(t, "BTCUSDT", prices[0].Symbol)
	assert.Equal(t, "3100.42", prices[1].Price.String())
}

func TestExchangeInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/exchangeInfo", r.URL.Path)
		assert.Equal(t, "BTCUSDT", r.URL.Query().Get("symbol"))
		w.Write([]byte(`{"timezone":"UTC","symbols":[{"symbol":"BTCUSDT","status":"TRADING"}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "", "")

	info, err := client.ExchangeInfo(context.Background(), "BTCUSDT")
	require.NoError(t, err)

	assert.Equal(t, "UTC", info["timezone"])
	symbols, ok := info["symbols"].([]any)
	require.True(t, ok)
	assert.Len(t, symbols, 1)
}

func TestExchangeInfo_MultipleSymbols(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, `["BTCUSDT","ETHUSDT"]`, r.URL.Query().Get("symbols"))
		assert.Empty(t, r.URL.Query().Get("symbol"))
		w.Write([]byte(`{"timezone":"UTC"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "", "")

	_, err := client.ExchangeInfo(context.Background(), "BTCUSDT", "ETHUSDT")
	require.NoError(t, err)
}

func TestServerTime(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/time", r.URL.Path)
		w.Write([]byte(`{"serverTime":1699056000123}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "", "")

	serverTime, err := client.ServerTime(context.Background())
	require.NoError(t, err)
	assert.Equal(t, time.UnixMilli(1699056000123), serverTime)
}
