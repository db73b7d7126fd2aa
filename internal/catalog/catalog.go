package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/guttosm/gbcepulse/internal/domain/models"
)

// ErrUnknownSymbol is returned when a symbol is not present in the catalog.
var ErrUnknownSymbol = errors.New("unknown symbol")

// Catalog holds the static reference data for every listed symbol.
//
// It is loaded once at startup and read-only afterwards, so lookups need no
// synchronization.
type Catalog struct {
	entries map[string]models.StockEntry
}

// New builds a catalog from validated entries. Duplicate symbols are
// rejected.
func New(entries []models.StockEntry) (*Catalog, error) {
	m := make(map[string]models.StockEntry, len(entries))
	for _, e := range entries {
		if _, dup := m[e.Symbol]; dup {
			return nil, fmt.Errorf("catalog: duplicate symbol %s", e.Symbol)
		}
		m[e.Symbol] = e
	}
	return &Catalog{entries: m}, nil
}

// Default returns the built-in GBCE sample catalog used when no catalog
// file is configured.
func Default() *Catalog {
	specs := []struct {
		symbol   string
		typ      models.StockType
		lastDiv  float64
		fixedDiv float64
		parValue float64
	}{
		{"TEA", models.StockTypeCommon, 0, 0, 100},
		{"POP", models.StockTypeCommon, 8, 0, 100},
		{"ALE", models.StockTypeCommon, 23, 0, 60},
		{"GIN", models.StockTypePreferred, 8, 2, 100},
		{"JOE", models.StockTypeCommon, 13, 0, 250},
	}

	entries := make([]models.StockEntry, 0, len(specs))
	for _, s := range specs {
		e, err := models.NewStockEntry(s.symbol, s.typ, s.lastDiv, s.fixedDiv, s.parValue)
		if err != nil {
			// the sample set is statically known-good
			panic(fmt.Sprintf("catalog: invalid built-in entry: %v", err))
		}
		entries = append(entries, e)
	}
	c, err := New(entries)
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid built-in set: %v", err))
	}
	return c
}

// catalogFileEntry mirrors one object in a JSON catalog file.
type catalogFileEntry struct {
	Symbol               string  `json:"symbol"`
	Type                 string  `json:"type"`
	LastDividend         float64 `json:"last_dividend"`
	FixedDividendPercent float64 `json:"fixed_dividend_percent"`
	ParValue             float64 `json:"par_value"`
}

// LoadFile reads a catalog from a JSON file containing an array of entries:
//
//	[
//	  {"symbol": "POP", "type": "COMMON", "last_dividend": 8, "par_value": 100},
//	  {"symbol": "GIN", "type": "PREFERRED", "last_dividend": 8,
//	   "fixed_dividend_percent": 2, "par_value": 100}
//	]
//
// Every entry is validated; the whole load fails on the first bad one.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var fileEntries []catalogFileEntry
	if err := json.Unmarshal(raw, &fileEntries); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	if len(fileEntries) == 0 {
		return nil, fmt.Errorf("catalog: %s contains no entries", path)
	}

	entries := make([]models.StockEntry, 0, len(fileEntries))
	for _, fe := range fileEntries {
		e, err := models.NewStockEntry(fe.Symbol, models.StockType(fe.Type), fe.LastDividend, fe.FixedDividendPercent, fe.ParValue)
		if err != nil {
			return nil, fmt.Errorf("catalog: %s: %w", path, err)
		}
		entries = append(entries, e)
	}
	return New(entries)
}

// Lookup returns the entry for symbol, or ErrUnknownSymbol.
func (c *Catalog) Lookup(symbol string) (models.StockEntry, error) {
	e, ok := c.entries[symbol]
	if !ok {
		return models.StockEntry{}, fmt.Errorf("%w: %s", ErrUnknownSymbol, symbol)
	}
	return e, nil
}

// Symbols returns all catalogued symbols in sorted order.
func (c *Catalog) Symbols() []string {
	out := make([]string, 0, len(c.entries))
	for s := range c.entries {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Size returns the number of catalogued symbols.
func (c *Catalog) Size() int {
	return len(c.entries)
}
