// Package metrics computes per-stock financial metrics from catalog
// reference data and a caller-supplied market price.
//
// All functions are pure: no state, no clock, float64 semantics throughout.
// Rounding is left to the presentation layer.
package metrics

import (
	"errors"
	"fmt"
	"math"

	"github.com/guttosm/gbcepulse/internal/domain/models"
)

// ErrInvalidPrice is returned when a metric is requested for a
// non-positive price.
var ErrInvalidPrice = errors.New("invalid price")

// DividendYield computes the dividend yield for the given entry at the
// given market price.
//
// COMMON:    lastDividend / price
// PREFERRED: (fixedDividendPercent / 100 * parValue) / price
func DividendYield(entry models.StockEntry, price float64) (float64, error) {
	if price <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPrice, price)
	}
	switch entry.Type {
	case models.StockTypePreferred:
		return (entry.FixedDividendPercent / 100 * entry.ParValue) / price, nil
	default:
		return entry.LastDividend / price, nil
	}
}

// PERatio computes price / dividendYield for the given entry.
//
// When the yield is exactly zero the ratio is mathematically undefined;
// PERatio then returns +Inf (math.Inf(1)) with a nil error. +Inf is the
// documented sentinel: it is distinguishable via math.IsInf, can never
// collide with a real ratio, and is never reported as 0.
func PERatio(entry models.StockEntry, price float64) (float64, error) {
	yield, err := DividendYield(entry, price)
	if err != nil {
		return 0, err
	}
	if yield == 0 {
		return math.Inf(1), nil
	}
	return price / yield, nil
}
