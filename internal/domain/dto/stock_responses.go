package dto

// RecordTradeRequest is the JSON body accepted by
// POST /api/v1/stocks/{symbol}/trades.
//
// Timestamp uses the fixed layout "2006-01-02 15:04:05" (UTC, second
// resolution); the handler parses it before the trade reaches the engine.
type RecordTradeRequest struct {
	Timestamp string  `json:"timestamp" example:"2025-04-01 14:30:00"`
	Quantity  int64   `json:"quantity" example:"100"`
	Indicator string  `json:"indicator" example:"BUY"`
	Price     float64 `json:"price" example:"125.5"`
}

// RecordTradeResponse confirms a recorded trade.
type RecordTradeResponse struct {
	Message string `json:"message" example:"trade recorded"`
}

// DividendYieldResponse is returned by
// GET /api/v1/stocks/{symbol}/dividend-yield.
type DividendYieldResponse struct {
	Symbol        string  `json:"symbol" example:"POP"`
	Price         float64 `json:"price" example:"100"`
	DividendYield float64 `json:"dividend_yield" example:"0.08"`
}

// PERatioResponse is returned by GET /api/v1/stocks/{symbol}/pe-ratio.
//
// PERatio is null when the ratio is undefined (zero dividend yield); IEEE
// infinities are not representable in JSON.
type PERatioResponse struct {
	Symbol  string   `json:"symbol" example:"POP"`
	Price   float64  `json:"price" example:"100"`
	PERatio *float64 `json:"pe_ratio" example:"1250"`
}

// VWSPResponse is returned by GET /api/v1/stocks/{symbol}/vwsp.
type VWSPResponse struct {
	Symbol string  `json:"symbol" example:"POP"`
	VWSP   float64 `json:"vwsp" example:"12.666666666666666"`
	Trades int     `json:"trades" example:"2"`
}

// AllShareIndexResponse is returned by GET /api/v1/index.
type AllShareIndexResponse struct {
	Index   float64 `json:"all_share_index" example:"20"`
	Symbols int     `json:"symbols" example:"2"`
}
