package api

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/gbcepulse/internal/aggregate"
	"github.com/guttosm/gbcepulse/internal/catalog"
	"github.com/guttosm/gbcepulse/internal/domain/models"
	"github.com/guttosm/gbcepulse/internal/ledger"
	"github.com/guttosm/gbcepulse/internal/metrics"
	"github.com/guttosm/gbcepulse/internal/service"
)

type mockStockService struct {
	recordErr error
	yield     float64
	yieldErr  error
	pe        float64
	peErr     error
	vwsp      float64
	vwspN     int
	vwspErr   error
	index     float64
	indexN    int
	indexErr  error

	recorded []models.Trade
}

func (m *mockStockService) RecordTrade(_ context.Context, symbol string, ts time.Time, qty int64, ind models.TradeIndicator, price float64) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	m.recorded = append(m.recorded, models.Trade{Symbol: symbol, Timestamp: ts, Quantity: qty, Indicator: ind, Price: price})
	return nil
}
func (m *mockStockService) DividendYield(_ context.Context, _ string, _ float64) (float64, error) {
	return m.yield, m.yieldErr
}
func (m *mockStockService) PERatio(_ context.Context, _ string, _ float64) (float64, error) {
	return m.pe, m.peErr
}
func (m *mockStockService) VWSP(_ context.Context, _ string, _ time.Time) (float64, int, error) {
	return m.vwsp, m.vwspN, m.vwspErr
}
func (m *mockStockService) AllShareIndex(_ context.Context, _ time.Time) (float64, int, error) {
	return m.index, m.indexN, m.indexErr
}

var _ service.StockService = (*mockStockService)(nil)

func setupRouterWithMock(s service.StockService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s).WithClock(func() time.Time {
		return time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	})
	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.POST("/stocks/:symbol/trades", h.RecordTrade)
	v1.GET("/stocks/:symbol/dividend-yield", h.DividendYield)
	v1.GET("/stocks/:symbol/pe-ratio", h.PERatio)
	v1.GET("/stocks/:symbol/vwsp", h.VWSP)
	v1.GET("/index", h.AllShareIndex)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRecordTrade_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		svc    *mockStockService
		body   string
		status int
	}{
		{
			name:   "success",
			svc:    &mockStockService{},
			body:   `{"timestamp": "2025-04-01 11:58:00", "quantity": 100, "indicator": "buy", "price": 10}`,
			status: http.StatusCreated,
		},
		{
			name:   "malformed body",
			svc:    &mockStockService{},
			body:   `{"quantity":`,
			status: http.StatusBadRequest,
		},
		{
			name:   "bad timestamp format",
			svc:    &mockStockService{},
			body:   `{"timestamp": "2025-04-01T11:58:00Z", "quantity": 100, "indicator": "BUY", "price": 10}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "unknown symbol",
			svc:    &mockStockService{recordErr: catalog.ErrUnknownSymbol},
			body:   `{"timestamp": "2025-04-01 11:58:00", "quantity": 100, "indicator": "BUY", "price": 10}`,
			status: http.StatusNotFound,
		},
		{
			name:   "invalid trade",
			svc:    &mockStockService{recordErr: ledger.ErrInvalidTrade},
			body:   `{"timestamp": "2025-04-01 11:58:00", "quantity": 0, "indicator": "BUY", "price": 10}`,
			status: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			w := do(t, r, http.MethodPost, "/api/v1/stocks/pop/trades", tc.body)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d (%s)", tc.status, w.Code, w.Body.String())
			}
			if tc.status == http.StatusCreated {
				if len(tc.svc.recorded) != 1 {
					t.Fatalf("expected 1 recorded trade, got %d", len(tc.svc.recorded))
				}
				got := tc.svc.recorded[0]
				// symbol upper-cased, indicator normalized, timestamp parsed as UTC
				if got.Symbol != "POP" || got.Indicator != models.IndicatorBuy {
					t.Fatalf("unexpected trade: %+v", got)
				}
				want := time.Date(2025, 4, 1, 11, 58, 0, 0, time.UTC)
				if !got.Timestamp.Equal(want) {
					t.Fatalf("timestamp = %v, want %v", got.Timestamp, want)
				}
			}
		})
	}
}

func TestDividendYield_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		svc    *mockStockService
		query  string
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name:   "missing price",
			svc:    &mockStockService{},
			query:  "/api/v1/stocks/POP/dividend-yield",
			status: http.StatusBadRequest,
		},
		{
			name:   "non-numeric price",
			svc:    &mockStockService{},
			query:  "/api/v1/stocks/POP/dividend-yield?price=abc",
			status: http.StatusBadRequest,
		},
		{
			name:   "invalid price",
			svc:    &mockStockService{yieldErr: metrics.ErrInvalidPrice},
			query:  "/api/v1/stocks/POP/dividend-yield?price=-1",
			status: http.StatusBadRequest,
		},
		{
			name:   "unknown symbol",
			svc:    &mockStockService{yieldErr: catalog.ErrUnknownSymbol},
			query:  "/api/v1/stocks/VALE3/dividend-yield?price=100",
			status: http.StatusNotFound,
		},
		{
			name:   "success",
			svc:    &mockStockService{yield: 0.08},
			query:  "/api/v1/stocks/pop/dividend-yield?price=100",
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out map[string]any
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out["symbol"] != "POP" || out["dividend_yield"] != 0.08 {
					t.Fatalf("unexpected body: %v", out)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			w := do(t, r, http.MethodGet, tc.query, "")
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d (%s)", tc.status, w.Code, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}

func TestPERatio_UndefinedIsNull(t *testing.T) {
	r := setupRouterWithMock(&mockStockService{pe: math.Inf(1)})
	w := do(t, r, http.MethodGet, "/api/v1/stocks/TEA/pe-ratio?price=100", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var out struct {
		PERatio *float64 `json:"pe_ratio"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.PERatio != nil {
		t.Fatalf("undefined P/E must serialize as null, got %v", *out.PERatio)
	}
}

func TestPERatio_Defined(t *testing.T) {
	r := setupRouterWithMock(&mockStockService{pe: 1250})
	w := do(t, r, http.MethodGet, "/api/v1/stocks/POP/pe-ratio?price=100", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var out struct {
		PERatio *float64 `json:"pe_ratio"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.PERatio == nil || *out.PERatio != 1250 {
		t.Fatalf("unexpected pe_ratio: %v", out.PERatio)
	}
}

func TestVWSP_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		svc    *mockStockService
		status int
	}{
		{name: "success", svc: &mockStockService{vwsp: 12, vwspN: 2}, status: http.StatusOK},
		{name: "no trades", svc: &mockStockService{vwspErr: aggregate.ErrNoTrades}, status: http.StatusNotFound},
		{name: "unknown symbol", svc: &mockStockService{vwspErr: catalog.ErrUnknownSymbol}, status: http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			w := do(t, r, http.MethodGet, "/api/v1/stocks/POP/vwsp", "")
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}
}

func TestAllShareIndex(t *testing.T) {
	r := setupRouterWithMock(&mockStockService{index: 20, indexN: 2})
	w := do(t, r, http.MethodGet, "/api/v1/index", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out["all_share_index"] != 20.0 || out["symbols"] != 2.0 {
		t.Fatalf("unexpected body: %v", out)
	}

	r = setupRouterWithMock(&mockStockService{indexErr: aggregate.ErrNoData})
	w = do(t, r, http.MethodGet, "/api/v1/index", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
