package binance

import (
	"fmt"
	"time"

	"github.com/cockroachdb/apd/v3"
)

// Conversion from the generic parsed JSON tree to typed results. Prices and
// quantities arrive as JSON strings and are parsed into apd decimals;
// timestamps arrive as epoch milliseconds.

func asObject(v any) (map[string]any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected payload shape: want object, got %T", v)
	}
	return obj, nil
}

func asArray(v any) ([]any, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected payload shape: want array, got %T", v)
	}
	return arr, nil
}

func fieldString(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

func fieldInt64(obj map[string]any, key string) int64 {
	switch n := obj[key].(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	default:
		return 0
	}
}

func fieldDecimal(obj map[string]any, key string) (apd.Decimal, error) {
	v, ok := obj[key]
	if !ok {
		return apd.Decimal{}, nil
	}
	return decimalValue(v)
}

func decimalValue(v any) (apd.Decimal, error) {
	var d apd.Decimal
	switch val := v.(type) {
	case string:
		if _, _, err := d.SetString(val); err != nil {
			return apd.Decimal{}, fmt.Errorf("parse decimal %q: %w", val, err)
		}
	case float64:
		if _, err := d.SetFloat64(val); err != nil {
			return apd.Decimal{}, fmt.Errorf("parse decimal %v: %w", val, err)
		}
	default:
		return apd.Decimal{}, fmt.Errorf("parse decimal: unexpected type %T", v)
	}
	return d, nil
}

func millisValue(v any) time.Time {
	switch n := v.(type) {
	case float64:
		return time.UnixMilli(int64(n))
	case int64:
		return time.UnixMilli(n)
	default:
		return time.Time{}
	}
}

func normalizePrice(v any) (*Price, error) {
	obj, err := asObject(v)
	if err != nil {
		return nil, err
	}

	price, err := fieldDecimal(obj, "price")
	if err != nil {
		return nil, err
	}

	return &Price{
		Symbol: fieldString(obj, "symbol"),
		Price:  price,
	}, nil
}

func normalizePrices(v any) ([]Price, error) {
	rows, err := asArray(v)
	if err != nil {
		return nil, err
	}

	prices := make([]Price, 0, len(rows))
	for _, row := range rows {
		p, err := normalizePrice(row)
		if err != nil {
			return nil, err
		}
		prices = append(prices, *p)
	}
	return prices, nil
}

// normalizeKlines flattens the fixed-width kline rows into columnar slices.
// Each row is [openTime, open, high, low, close, volume, closeTime,
// quoteVolume, tradeCount, takerBuyBase, takerBuyQuote, ignore].
func normalizeKlines(v any, symbol, interval string) (*KlineSeries, error) {
	rows, err := asArray(v)
	if err != nil {
		return nil, err
	}

	series := &KlineSeries{
		Symbol:   symbol,
		Interval: interval,

		OpenTime:  make([]time.Time, 0, len(rows)),
		Open:      make([]apd.Decimal, 0, len(rows)),
		High:      make([]apd.Decimal, 0, len(rows)),
		Low:       make([]apd.Decimal, 0, len(rows)),
		Close:     make([]apd.Decimal, 0, len(rows)),
		Volume:    make([]apd.Decimal, 0, len(rows)),
		CloseTime: make([]time.Time, 0, len(rows)),

		QuoteVolume:   make([]apd.Decimal, 0, len(rows)),
		TradeCount:    make([]int64, 0, len(rows)),
		TakerBuyBase:  make([]apd.Decimal, 0, len(rows)),
		TakerBuyQuote: make([]apd.Decimal, 0, len(rows)),
	}

	for i, rawRow := range rows {
		row, err := asArray(rawRow)
		if err != nil {
			return nil, fmt.Errorf("kline row %d: %w", i, err)
		}
		if len(row) < 11 {
			return nil, fmt.Errorf("kline row %d: want at least 11 columns, got %d", i, len(row))
		}

		decimals := make([]apd.Decimal, 8)
		for j, col := range []int{1, 2, 3, 4, 5, 7, 9, 10} {
			d, err := decimalValue(row[col])
			if err != nil {
				return nil, fmt.Errorf("kline row %d column %d: %w", i, col, err)
			}
			decimals[j] = d
		}

		series.OpenTime = append(series.OpenTime, millisValue(row[0]))
		series.Open = append(series.Open, decimals[0])
		series.High = append(series.High, decimals[1])
		series.Low = append(series.Low, decimals[2])
		series.Close = append(series.Close, decimals[3])
		series.Volume = append(series.Volume, decimals[4])
		series.CloseTime = append(series.CloseTime, millisValue(row[6]))
		series.QuoteVolume = append(series.QuoteVolume, decimals[5])
		series.TradeCount = append(series.TradeCount, int64Value(row[8]))
		series.TakerBuyBase = append(series.TakerBuyBase, decimals[6])
		series.TakerBuyQuote = append(series.TakerBuyQuote, decimals[7])
	}

	return series, nil
}

func int64Value(v any) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	default:
		return 0
	}
}

func normalizeUserAssets(v any) ([]UserAsset, error) {
	rows, err := asArray(v)
	if err != nil {
		return nil, err
	}

	assets := make([]UserAsset, 0, len(rows))
	for i, rawRow := range rows {
		obj, err := asObject(rawRow)
		if err != nil {
			return nil, fmt.Errorf("user asset row %d: %w", i, err)
		}

		asset := UserAsset{Asset: fieldString(obj, "asset")}
		for _, field := range []struct {
			key string
			dst *apd.Decimal
		}{
			{"free", &asset.Free},
			{"locked", &asset.Locked},
			{"freeze", &asset.Freeze},
			{"withdrawing", &asset.Withdrawing},
			{"ipoable", &asset.Ipoable},
			{"btcValuation", &asset.BTCValuation},
		} {
			d, err := fieldDecimal(obj, field.key)
			if err != nil {
				return nil, fmt.Errorf("user asset row %d field %s: %w", i, field.key, err)
			}
			*field.dst = d
		}
		assets = append(assets, asset)
	}
	return assets, nil
}

func normalizeOrderAck(v any) (*OrderAck, error) {
	obj, err := asObject(v)
	if err != nil {
		return nil, err
	}

	ack := &OrderAck{
		Symbol:        fieldString(obj, "symbol"),
		OrderID:       fieldInt64(obj, "orderId"),
		ClientOrderID: fieldString(obj, "clientOrderId"),
		Status:        fieldString(obj, "status"),
		Type:          fieldString(obj, "type"),
		Side:          fieldString(obj, "side"),
	}

	if transactTime := fieldInt64(obj, "transactTime"); transactTime > 0 {
		ack.TransactTime = time.UnixMilli(transactTime)
	}

	for _, field := range []struct {
		key string
		dst *apd.Decimal
	}{
		{"price", &ack.Price},
		{"origQty", &ack.OrigQty},
		{"executedQty", &ack.ExecutedQty},
	} {
		d, err := fieldDecimal(obj, field.key)
		if err != nil {
			return nil, fmt.Errorf("order ack field %s: %w", field.key, err)
		}
		*field.dst = d
	}

	return ack, nil
}
