package models

import "fmt"

// StockType distinguishes the two classes of listed stock, which use
// different dividend-yield formulas.
type StockType string

const (
	StockTypeCommon    StockType = "COMMON"
	StockTypePreferred StockType = "PREFERRED"
)

// StockEntry is the static reference data for one listed symbol.
//
// Fields:
//   - Symbol: ticker symbol, unique within the catalog (e.g., "POP").
//   - Type: COMMON or PREFERRED.
//   - LastDividend: last dividend paid, in pennies.
//   - FixedDividendPercent: fixed dividend as a percentage of par value.
//     Only meaningful for PREFERRED stocks (e.g., 2 means 2%).
//   - ParValue: par value in pennies.
//
// Entries are immutable once the catalog is loaded; construct them through
// NewStockEntry so the variant rules are enforced in one place.
type StockEntry struct {
	Symbol               string    `json:"symbol" example:"GIN"`
	Type                 StockType `json:"type" example:"PREFERRED"`
	LastDividend         float64   `json:"last_dividend" example:"8"`
	FixedDividendPercent float64   `json:"fixed_dividend_percent,omitempty" example:"2"`
	ParValue             float64   `json:"par_value" example:"100"`
}

// NewStockEntry validates and builds a catalog entry.
//
// Rules:
//   - symbol must be non-empty.
//   - typ must be COMMON or PREFERRED.
//   - lastDividend must be >= 0.
//   - parValue must be > 0.
//   - fixedDividendPercent must be positive for PREFERRED stocks and absent
//     (zero) for COMMON ones.
func NewStockEntry(symbol string, typ StockType, lastDividend, fixedDividendPercent, parValue float64) (StockEntry, error) {
	if symbol == "" {
		return StockEntry{}, fmt.Errorf("stock entry: empty symbol")
	}
	switch typ {
	case StockTypeCommon:
		if fixedDividendPercent != 0 {
			return StockEntry{}, fmt.Errorf("stock entry %s: common stock cannot have a fixed dividend", symbol)
		}
	case StockTypePreferred:
		if fixedDividendPercent <= 0 {
			return StockEntry{}, fmt.Errorf("stock entry %s: preferred stock requires a positive fixed dividend", symbol)
		}
	default:
		return StockEntry{}, fmt.Errorf("stock entry %s: unknown type %q", symbol, typ)
	}
	if lastDividend < 0 {
		return StockEntry{}, fmt.Errorf("stock entry %s: negative last dividend %v", symbol, lastDividend)
	}
	if parValue <= 0 {
		return StockEntry{}, fmt.Errorf("stock entry %s: par value must be positive, got %v", symbol, parValue)
	}
	return StockEntry{
		Symbol:               symbol,
		Type:                 typ,
		LastDividend:         lastDividend,
		FixedDividendPercent: fixedDividendPercent,
		ParValue:             parValue,
	}, nil
}
