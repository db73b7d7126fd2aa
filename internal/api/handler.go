package api

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/gbcepulse/internal/aggregate"
	"github.com/guttosm/gbcepulse/internal/catalog"
	"github.com/guttosm/gbcepulse/internal/domain/dto"
	"github.com/guttosm/gbcepulse/internal/domain/models"
	"github.com/guttosm/gbcepulse/internal/ledger"
	"github.com/guttosm/gbcepulse/internal/metrics"
	"github.com/guttosm/gbcepulse/internal/service"
)

// tradeTimestampLayout is the fixed wire format for trade timestamps
// (second resolution, interpreted as UTC).
const tradeTimestampLayout = "2006-01-02 15:04:05"

// Handler provides HTTP handlers for the stock-metrics endpoints.
//
// Responsibilities:
//   - Validate and parse incoming path/query/body parameters.
//   - Supply wall-clock now to windowed engine operations.
//   - Translate engine failures into HTTP status codes:
//     UnknownSymbol, NoTrades, NoData -> 404; InvalidTrade, InvalidPrice -> 400.
type Handler struct {
	svc service.StockService
	now func() time.Time
}

// NewHandler constructs a Handler around the given service. The clock is
// wall time; tests may pin it via WithClock.
func NewHandler(svc service.StockService) *Handler {
	return &Handler{svc: svc, now: func() time.Time { return time.Now().UTC() }}
}

// WithClock overrides the handler's clock. Intended for tests.
func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	return h
}

// symbolParam normalizes the :symbol path parameter.
func symbolParam(c *gin.Context) string {
	return strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
}

// priceQuery parses the required price query parameter. It only rejects
// absent or non-numeric values; range validation belongs to the engine.
func priceQuery(c *gin.Context) (float64, bool) {
	raw := c.Query("price")
	if raw == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("price is required", nil))
		return 0, false
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid price", err))
		return 0, false
	}
	return price, true
}

// writeEngineError maps engine error kinds onto HTTP responses.
func writeEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrUnknownSymbol):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("stock not found", err))
	case errors.Is(err, ledger.ErrInvalidTrade):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid trade", err))
	case errors.Is(err, metrics.ErrInvalidPrice):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("price must be greater than 0", err))
	case errors.Is(err, aggregate.ErrNoTrades):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no trades recorded in window", err))
	case errors.Is(err, aggregate.ErrNoData):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no trade data for index", err))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal error", err))
	}
}

// RecordTrade handles POST /api/v1/stocks/:symbol/trades.
//
// RecordTrade godoc
// @Summary      Record a trade
// @Description  Appends a BUY or SELL trade to the symbol's ledger
// @Tags         trades
// @Accept       json
// @Produce      json
// @Param        symbol  path      string                 true  "Stock symbol" example(POP)
// @Param        trade   body      dto.RecordTradeRequest true  "Trade to record"
// @Success      201     {object}  dto.RecordTradeResponse  "Created"
// @Failure      400     {object}  dto.ErrorResponse        "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse        "Not Found"
// @Router       /api/v1/stocks/{symbol}/trades [post]
func (h *Handler) RecordTrade(c *gin.Context) {
	symbol := symbolParam(c)

	var req dto.RecordTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	ts, err := time.ParseInLocation(tradeTimestampLayout, req.Timestamp, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid timestamp, expected YYYY-MM-DD HH:MM:SS", err))
		return
	}

	indicator := models.TradeIndicator(strings.ToUpper(strings.TrimSpace(req.Indicator)))
	if err := h.svc.RecordTrade(c.Request.Context(), symbol, ts, req.Quantity, indicator, req.Price); err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RecordTradeResponse{Message: "trade recorded"})
}

// DividendYield handles GET /api/v1/stocks/:symbol/dividend-yield.
//
// DividendYield godoc
// @Summary      Dividend yield
// @Description  Returns the dividend yield for the symbol at the given price
// @Tags         metrics
// @Produce      json
// @Param        symbol  path      string  true  "Stock symbol" example(POP)
// @Param        price   query     number  true  "Market price" example(100)
// @Success      200     {object}  dto.DividendYieldResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse          "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse          "Not Found"
// @Router       /api/v1/stocks/{symbol}/dividend-yield [get]
func (h *Handler) DividendYield(c *gin.Context) {
	symbol := symbolParam(c)
	price, ok := priceQuery(c)
	if !ok {
		return
	}

	yield, err := h.svc.DividendYield(c.Request.Context(), symbol, price)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DividendYieldResponse{Symbol: symbol, Price: price, DividendYield: yield})
}

// PERatio handles GET /api/v1/stocks/:symbol/pe-ratio.
//
// An undefined ratio (zero dividend yield) is returned as a null pe_ratio,
// never as 0.
//
// PERatio godoc
// @Summary      Price/earnings ratio
// @Description  Returns the P/E ratio for the symbol at the given price; null when the dividend yield is zero
// @Tags         metrics
// @Produce      json
// @Param        symbol  path      string  true  "Stock symbol" example(POP)
// @Param        price   query     number  true  "Market price" example(100)
// @Success      200     {object}  dto.PERatioResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse    "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse    "Not Found"
// @Router       /api/v1/stocks/{symbol}/pe-ratio [get]
func (h *Handler) PERatio(c *gin.Context) {
	symbol := symbolParam(c)
	price, ok := priceQuery(c)
	if !ok {
		return
	}

	ratio, err := h.svc.PERatio(c.Request.Context(), symbol, price)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	resp := dto.PERatioResponse{Symbol: symbol, Price: price}
	if !math.IsInf(ratio, 1) {
		resp.PERatio = &ratio
	}
	c.JSON(http.StatusOK, resp)
}

// VWSP handles GET /api/v1/stocks/:symbol/vwsp.
//
// VWSP godoc
// @Summary      Volume-weighted stock price
// @Description  Returns the volume-weighted stock price over the trailing window
// @Tags         metrics
// @Produce      json
// @Param        symbol  path      string  true  "Stock symbol" example(POP)
// @Success      200     {object}  dto.VWSPResponse   "Success"
// @Failure      404     {object}  dto.ErrorResponse  "Not Found"
// @Router       /api/v1/stocks/{symbol}/vwsp [get]
func (h *Handler) VWSP(c *gin.Context) {
	symbol := symbolParam(c)

	vwsp, count, err := h.svc.VWSP(c.Request.Context(), symbol, h.now())
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.VWSPResponse{Symbol: symbol, VWSP: vwsp, Trades: count})
}

// AllShareIndex handles GET /api/v1/index.
//
// AllShareIndex godoc
// @Summary      GBCE All Share Index
// @Description  Returns the geometric mean of the VWSP of every symbol with trades in the window
// @Tags         metrics
// @Produce      json
// @Success      200  {object}  dto.AllShareIndexResponse  "Success"
// @Failure      404  {object}  dto.ErrorResponse          "Not Found"
// @Router       /api/v1/index [get]
func (h *Handler) AllShareIndex(c *gin.Context) {
	index, count, err := h.svc.AllShareIndex(c.Request.Context(), h.now())
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AllShareIndexResponse{Index: index, Symbols: count})
}
