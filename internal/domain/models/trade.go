package models

import "time"

// TradeIndicator marks the direction of a recorded trade.
//
// The indicator is validated and stored but does not change how a trade
// contributes to the volume-weighted stock price: both directions weigh in
// as price * quantity.
type TradeIndicator string

const (
	IndicatorBuy  TradeIndicator = "BUY"
	IndicatorSell TradeIndicator = "SELL"
)

// Valid reports whether the indicator is one of the two recognized values.
func (i TradeIndicator) Valid() bool {
	return i == IndicatorBuy || i == IndicatorSell
}

// Trade is one recorded trade for a symbol.
//
// Fields:
//   - Symbol: ticker symbol the trade belongs to.
//   - Timestamp: caller-supplied instant of the trade (second resolution).
//   - Quantity: number of shares traded, always > 0.
//   - Indicator: BUY or SELL.
//   - Price: traded price in pennies, always > 0.
//
// Trades are created once by the ledger and never mutated or deleted; the
// trailing query window is a read-time filter, not a retention policy.
type Trade struct {
	Symbol    string         `json:"symbol" example:"POP"`
	Timestamp time.Time      `json:"timestamp"`
	Quantity  int64          `json:"quantity" example:"100"`
	Indicator TradeIndicator `json:"indicator" example:"BUY"`
	Price     float64        `json:"price" example:"125.5"`
}
