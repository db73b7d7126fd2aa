package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/gbcepulse/config"
	"github.com/guttosm/gbcepulse/internal/aggregate"
	"github.com/guttosm/gbcepulse/internal/api"
	"github.com/guttosm/gbcepulse/internal/catalog"
	"github.com/guttosm/gbcepulse/internal/ledger"
	"github.com/guttosm/gbcepulse/internal/logger"
	"github.com/guttosm/gbcepulse/internal/service"
)

// catalogLoader is an indirection for loading the catalog; tests can
// override it to avoid touching the filesystem.
var catalogLoader = func(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.Engine.CatalogFile != "" {
		return catalog.LoadFile(cfg.Engine.CatalogFile)
	}
	return catalog.Default(), nil
}

// InitializeApp sets up all application dependencies and returns a fully
// configured Gin router, a cleanup function for graceful shutdown, and any
// error encountered during initialization.
//
// Responsibilities:
//   - Loads the stock catalog (file-backed or the built-in sample set).
//   - Creates the in-memory trade ledger and the windowed aggregator.
//   - Wires the service layer and the HTTP handler layer.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	cat, err := catalogLoader(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.L().Info().Int("symbols", cat.Size()).Msg("catalog loaded")

	// In-memory engine: ledger, aggregator, service facade
	led := ledger.New()
	agg := aggregate.New(led, cfg.Engine.Window())
	svc := service.NewStockService(cat, led, agg)

	handler := api.NewHandler(svc)
	router := api.NewRouter(handler)

	// Readiness: catalog loaded with at least one symbol
	healthHandler := api.NewHealthHandler(func() error {
		if cat.Size() == 0 {
			return fmt.Errorf("catalog is empty")
		}
		return nil
	})
	healthHandler.Register(router)

	// The engine holds no external resources; nothing to tear down.
	cleanup := func() {}

	return router, cleanup, nil
}
