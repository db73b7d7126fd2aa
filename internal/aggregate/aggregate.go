// Package aggregate computes windowed aggregates over the trade ledger:
// the per-symbol volume-weighted stock price and the cross-symbol
// geometric-mean all-share index.
package aggregate

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/gbcepulse/internal/ledger"
	"github.com/guttosm/gbcepulse/internal/logger"
)

// DefaultWindow is the trailing interval trades must fall into to count
// toward VWSP and the all-share index.
const DefaultWindow = 5 * time.Minute

var (
	// ErrNoTrades is returned by VWSP when the symbol has no trades inside
	// the window.
	ErrNoTrades = errors.New("no trades in window")

	// ErrNoData is returned by AllShareIndex when no symbol has a
	// computable VWSP.
	ErrNoData = errors.New("no trade data")
)

// Aggregator computes windowed aggregates from a TradeLedger.
//
// Time is always threaded in by the caller; the aggregator never samples a
// clock, so every computation is deterministic.
type Aggregator struct {
	ledger ledger.TradeLedger
	window time.Duration
}

// New builds an Aggregator over the given ledger. A non-positive window
// falls back to DefaultWindow.
func New(l ledger.TradeLedger, window time.Duration) *Aggregator {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Aggregator{ledger: l, window: window}
}

// Window returns the trailing interval this aggregator applies.
func (a *Aggregator) Window() time.Duration {
	return a.window
}

// VWSP returns the volume-weighted stock price for symbol over the
// trailing window ending at now:
//
//	sum(price_i * quantity_i) / sum(quantity_i)
//
// along with the number of trades that contributed. Fails with ErrNoTrades
// when the window holds nothing for the symbol.
func (a *Aggregator) VWSP(symbol string, now time.Time) (float64, int, error) {
	var (
		weighted float64
		quantity int64
		count    int
	)
	for t := range a.ledger.TradesWithin(symbol, a.window, now) {
		weighted += t.Price * float64(t.Quantity)
		quantity += t.Quantity
		count++
	}
	if count == 0 {
		return 0, 0, fmt.Errorf("%w: %s", ErrNoTrades, symbol)
	}
	return weighted / float64(quantity), count, nil
}

// AllShareIndex returns the geometric mean of the VWSP of every symbol
// with at least one trade inside the window, plus the number of symbols
// included.
//
// Behavior:
//   - Iterates a snapshot of KnownSymbols() taken at call start; symbols
//     recorded during the computation need not be included.
//   - A symbol whose window is empty is excluded, not counted as zero.
//   - Per-symbol VWSPs are computed concurrently, bounded by CPU count.
//   - The mean is computed as exp(mean(ln vwsp_i)) so large symbol counts
//     or prices cannot overflow the product.
//
// Fails with ErrNoData when no symbol qualifies.
func (a *Aggregator) AllShareIndex(ctx context.Context, now time.Time) (float64, int, error) {
	symbols := a.ledger.KnownSymbols()
	if len(symbols) == 0 {
		return 0, 0, ErrNoData
	}

	maxParallel := runtime.NumCPU()
	if maxParallel > len(symbols) {
		maxParallel = len(symbols)
	}

	var (
		mu     sync.Mutex
		logSum float64
		count  int
	)

	g, _ := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	for _, symbol := range symbols {
		sym := symbol
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()

			vwsp, _, err := a.VWSP(sym, now)
			if errors.Is(err, ErrNoTrades) {
				// no trades in window: the symbol contributes nothing
				logger.L().Debug().Str("symbol", sym).Msg("symbol excluded from index")
				return nil
			}
			if err != nil {
				return fmt.Errorf("vwsp %s: %w", sym, err)
			}

			// vwsp > 0 is guaranteed by ledger validation, so the log is
			// always defined
			mu.Lock()
			logSum += math.Log(vwsp)
			count++
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, 0, err
	}
	if count == 0 {
		return 0, 0, ErrNoData
	}
	return math.Exp(logSum / float64(count)), count, nil
}
