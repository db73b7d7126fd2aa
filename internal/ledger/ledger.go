package ledger

import (
	"errors"
	"fmt"
	"iter"
	"sync"
	"time"

	"github.com/guttosm/gbcepulse/internal/domain/models"
)

// ErrInvalidTrade is returned by Record when a trade field fails validation.
// The ledger is left unchanged in that case.
var ErrInvalidTrade = errors.New("invalid trade")

// TradeLedger defines the contract for the in-memory trade log.
//
// Implementations must keep per-symbol sequences append-only: a recorded
// trade is never mutated or removed, and the trailing window applied by
// TradesWithin is a query-time filter only.
type TradeLedger interface {
	Record(symbol string, timestamp time.Time, quantity int64, indicator models.TradeIndicator, price float64) error
	TradesWithin(symbol string, window time.Duration, now time.Time) iter.Seq[models.Trade]
	KnownSymbols() []string
	Len(symbol string) int
}

// symbolLog holds one symbol's trades behind its own lock, so readers of
// one symbol never block writers to another.
type symbolLog struct {
	mu     sync.RWMutex
	trades []models.Trade
}

type tradeLedger struct {
	mu   sync.RWMutex // guards the symbols map, not the per-symbol logs
	logs map[string]*symbolLog
}

// New returns an empty ledger. Each instance owns its own state; tests and
// callers create as many isolated ledgers as they need.
func New() TradeLedger {
	return &tradeLedger{logs: make(map[string]*symbolLog)}
}

// Record validates and appends one trade to the symbol's sequence,
// creating the sequence on the symbol's first trade.
//
// Validation (all failures return ErrInvalidTrade and leave the ledger
// untouched):
//   - quantity > 0
//   - price > 0
//   - indicator is BUY or SELL
//   - timestamp is a well-formed instant (non-zero)
func (l *tradeLedger) Record(symbol string, timestamp time.Time, quantity int64, indicator models.TradeIndicator, price float64) error {
	if symbol == "" {
		return fmt.Errorf("%w: empty symbol", ErrInvalidTrade)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidTrade, quantity)
	}
	if price <= 0 {
		return fmt.Errorf("%w: price must be positive, got %v", ErrInvalidTrade, price)
	}
	if !indicator.Valid() {
		return fmt.Errorf("%w: unrecognized indicator %q", ErrInvalidTrade, indicator)
	}
	if timestamp.IsZero() {
		return fmt.Errorf("%w: zero timestamp", ErrInvalidTrade)
	}

	log := l.logFor(symbol)

	log.mu.Lock()
	log.trades = append(log.trades, models.Trade{
		Symbol:    symbol,
		Timestamp: timestamp,
		Quantity:  quantity,
		Indicator: indicator,
		Price:     price,
	})
	log.mu.Unlock()

	return nil
}

// logFor returns the symbol's log, creating it on first use.
func (l *tradeLedger) logFor(symbol string) *symbolLog {
	l.mu.RLock()
	log, ok := l.logs[symbol]
	l.mu.RUnlock()
	if ok {
		return log
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if log, ok = l.logs[symbol]; ok {
		return log
	}
	log = &symbolLog{}
	l.logs[symbol] = log
	return log
}

// TradesWithin returns the symbol's trades whose timestamp satisfies
// now-window <= ts <= now, in recording order.
//
// The sequence is lazy and restartable: each range over it takes a fresh
// consistent snapshot of the symbol's log. An unknown symbol or an empty
// window yields nothing rather than failing.
func (l *tradeLedger) TradesWithin(symbol string, window time.Duration, now time.Time) iter.Seq[models.Trade] {
	return func(yield func(models.Trade) bool) {
		l.mu.RLock()
		log, ok := l.logs[symbol]
		l.mu.RUnlock()
		if !ok {
			return
		}

		// Trades are immutable and the slice is append-only, so holding
		// the header snapshot outside the lock is safe.
		log.mu.RLock()
		trades := log.trades
		log.mu.RUnlock()

		cutoff := now.Add(-window)
		for _, t := range trades {
			if t.Timestamp.Before(cutoff) || t.Timestamp.After(now) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// KnownSymbols returns a snapshot of every symbol with at least one
// recorded trade. Order is unspecified.
func (l *tradeLedger) KnownSymbols() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]string, 0, len(l.logs))
	for s, log := range l.logs {
		log.mu.RLock()
		n := len(log.trades)
		log.mu.RUnlock()
		if n > 0 {
			out = append(out, s)
		}
	}
	return out
}

// Len returns the total number of trades recorded for symbol, ignoring any
// window.
func (l *tradeLedger) Len(symbol string) int {
	l.mu.RLock()
	log, ok := l.logs[symbol]
	l.mu.RUnlock()
	if !ok {
		return 0
	}
	log.mu.RLock()
	defer log.mu.RUnlock()
	return len(log.trades)
}
