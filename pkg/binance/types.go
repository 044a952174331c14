package binance

import (
	"time"

	"github.com/cockroachdb/apd/v3"
)

// Price is one symbol's latest trade price.
type Price struct {
	Symbol string
	Price  apd.Decimal
}

// KlineSeries holds candlestick history in columnar form: index i across all
// slices describes one interval. Columns follow the /api/v3/klines row layout.
type KlineSeries struct {
	Symbol   string
	Interval string

	OpenTime  []time.Time
	Open      []apd.Decimal
	High      []apd.Decimal
	Low       []apd.Decimal
	Close     []apd.Decimal
	Volume    []apd.Decimal
	CloseTime []time.Time

	QuoteVolume   []apd.Decimal
	TradeCount    []int64
	TakerBuyBase  []apd.Decimal
	TakerBuyQuote []apd.Decimal
}

// Len returns the number of intervals in the series.
func (s *KlineSeries) Len() int {
	return len(s.OpenTime)
}

// UserAsset is one asset row from the wallet user-asset endpoint.
type UserAsset struct {
	Asset        string
	Free         apd.Decimal
	Locked       apd.Decimal
	Freeze       apd.Decimal
	Withdrawing  apd.Decimal
	Ipoable      apd.Decimal
	BTCValuation apd.Decimal
}

// OrderAck is the exchange's acknowledgement of a placed order.
type OrderAck struct {
	Symbol        string
	OrderID       int64
	ClientOrderID string
	TransactTime  time.Time
	Price         apd.Decimal
	OrigQty       apd.Decimal
	ExecutedQty   apd.Decimal
	Status        string
	Type          string
	Side          string
}
