package service

import (
	"context"
	"time"

	"github.com/guttosm/gbcepulse/internal/aggregate"
	"github.com/guttosm/gbcepulse/internal/catalog"
	"github.com/guttosm/gbcepulse/internal/domain/models"
	"github.com/guttosm/gbcepulse/internal/ledger"
	"github.com/guttosm/gbcepulse/internal/metrics"
)

// StockService defines the business operations exposed to the HTTP layer.
// Handlers depend on this interface only, so tests can swap in mocks.
//
// Every windowed operation takes an explicit now; the HTTP layer supplies
// wall-clock time in production.
type StockService interface {
	RecordTrade(ctx context.Context, symbol string, timestamp time.Time, quantity int64, indicator models.TradeIndicator, price float64) error
	DividendYield(ctx context.Context, symbol string, price float64) (float64, error)
	PERatio(ctx context.Context, symbol string, price float64) (float64, error)
	VWSP(ctx context.Context, symbol string, now time.Time) (float64, int, error)
	AllShareIndex(ctx context.Context, now time.Time) (float64, int, error)
}

type stockService struct {
	catalog *catalog.Catalog
	ledger  ledger.TradeLedger
	agg     *aggregate.Aggregator
}

// NewStockService wires the engine components behind the StockService
// interface.
func NewStockService(c *catalog.Catalog, l ledger.TradeLedger, a *aggregate.Aggregator) StockService {
	return &stockService{catalog: c, ledger: l, agg: a}
}

// RecordTrade validates the symbol against the catalog, then appends the
// trade to the ledger. Fails with catalog.ErrUnknownSymbol or
// ledger.ErrInvalidTrade.
func (s *stockService) RecordTrade(_ context.Context, symbol string, timestamp time.Time, quantity int64, indicator models.TradeIndicator, price float64) error {
	if _, err := s.catalog.Lookup(symbol); err != nil {
		return err
	}
	return s.ledger.Record(symbol, timestamp, quantity, indicator, price)
}

func (s *stockService) DividendYield(_ context.Context, symbol string, price float64) (float64, error) {
	entry, err := s.catalog.Lookup(symbol)
	if err != nil {
		return 0, err
	}
	return metrics.DividendYield(entry, price)
}

func (s *stockService) PERatio(_ context.Context, symbol string, price float64) (float64, error) {
	entry, err := s.catalog.Lookup(symbol)
	if err != nil {
		return 0, err
	}
	return metrics.PERatio(entry, price)
}

// VWSP checks the symbol against the catalog before querying the window,
// so an unknown symbol surfaces as ErrUnknownSymbol rather than
// ErrNoTrades.
func (s *stockService) VWSP(_ context.Context, symbol string, now time.Time) (float64, int, error) {
	if _, err := s.catalog.Lookup(symbol); err != nil {
		return 0, 0, err
	}
	return s.agg.VWSP(symbol, now)
}

func (s *stockService) AllShareIndex(ctx context.Context, now time.Time) (float64, int, error) {
	return s.agg.AllShareIndex(ctx, now)
}
