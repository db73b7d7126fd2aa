package main

//
//  @title           gbcepulse API
//  @version         1.0
//  @description     GBCE stock metrics service: trade ledger, VWSP, and all-share index.
//  @termsOfService  https://github.com/guttosm/gbcepulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/gbcepulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        trades
//  @tag.description Endpoints for recording trades
//
//  @tag.name        metrics
//  @tag.description Endpoints for per-stock metrics and the all-share index
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/gbcepulse/config"
	_ "github.com/guttosm/gbcepulse/docs" // swagger docs
	"github.com/guttosm/gbcepulse/internal/app"
	"github.com/guttosm/gbcepulse/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate
// goroutine.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown terminates the HTTP server and runs the cleanup
// callback when SIGINT or SIGTERM is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the gbcepulse application.
//
// Flags:
//   - --port:    Port for the API server. Defaults to the configured SERVER_PORT.
//   - --catalog: Path to a JSON catalog file. Defaults to CATALOG_FILE, or
//     the built-in GBCE sample catalog when empty.
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	port := flag.String("port", config.AppConfig.Server.Port, "Port for the API server")
	catalogFile := flag.String("catalog", config.AppConfig.Engine.CatalogFile, "Path to a JSON catalog file")
	flag.Parse()

	config.AppConfig.Engine.CatalogFile = *catalogFile

	router, cleanup, err := app.InitializeApp()
	if err != nil {
		logger.L().Fatal().Err(err).Msg("app init error")
	}

	server := startServer(router, *port)
	gracefulShutdown(ctx, server, cleanup)
}
