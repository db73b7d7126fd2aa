package app

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/guttosm/gbcepulse/config"
	"github.com/guttosm/gbcepulse/internal/catalog"
)

func TestInitializeApp_HappyPath(t *testing.T) {
	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })
	config.AppConfig = config.Config{
		Server: config.ServerConfig{Port: "8080"},
		Engine: config.EngineConfig{WindowMinutes: 5},
	}

	router, cleanup, err := InitializeApp()
	if err != nil || router == nil || cleanup == nil {
		t.Fatalf("InitializeApp failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("healthz status=%d", w.Code)
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	router.ServeHTTP(w2, req2)
	if w2.Code != http.StatusOK {
		t.Fatalf("readyz status=%d", w2.Code)
	}

	// Cleanup is a no-op for the in-memory engine; it must not panic.
	cleanup()
}

func TestInitializeApp_CatalogFailure(t *testing.T) {
	oldLoader := catalogLoader
	t.Cleanup(func() { catalogLoader = oldLoader })
	catalogLoader = func(config.Config) (*catalog.Catalog, error) {
		return nil, fmt.Errorf("bad catalog file")
	}

	r, cleanup, err := InitializeApp()
	if err == nil || r != nil || cleanup != nil {
		if cleanup != nil {
			cleanup()
		}
		t.Fatalf("expected error from InitializeApp with failing catalog loader")
	}
}

func TestInitializeApp_UsesConfiguredCatalogFile(t *testing.T) {
	oldLoader := catalogLoader
	t.Cleanup(func() { catalogLoader = oldLoader })

	var gotPath string
	catalogLoader = func(cfg config.Config) (*catalog.Catalog, error) {
		gotPath = cfg.Engine.CatalogFile
		return catalog.Default(), nil
	}

	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })
	config.AppConfig = config.Config{
		Server: config.ServerConfig{Port: "8080"},
		Engine: config.EngineConfig{WindowMinutes: 5, CatalogFile: "/etc/gbce/catalog.json"},
	}

	if _, cleanup, err := InitializeApp(); err != nil {
		t.Fatalf("init: %v", err)
	} else {
		cleanup()
	}
	if gotPath != "/etc/gbce/catalog.json" {
		t.Fatalf("loader got %q", gotPath)
	}
}
