package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	WINDOW_MINUTES=5
//	CATALOG_FILE=./data/catalog.json
type Config struct {
	Server ServerConfig // HTTP server configuration
	Engine EngineConfig // trade ledger / aggregation settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// EngineConfig defines the aggregation engine settings.
//
// Fields:
//   - WindowMinutes: trailing window, in minutes, used for VWSP and the
//     all-share index (default 5).
//   - CatalogFile: optional path to a JSON catalog file; when empty the
//     built-in GBCE sample catalog is used.
type EngineConfig struct {
	WindowMinutes int
	CatalogFile   string
}

// Window returns the trailing window as a duration.
func (e EngineConfig) Window() time.Duration {
	return time.Duration(e.WindowMinutes) * time.Minute
}

// AppConfig is the globally accessible configuration instance, populated
// once via LoadConfig().
var AppConfig Config

// LoadConfig initializes the global AppConfig.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or out of range, validateConfig()
//     terminates the process with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("WINDOW_MINUTES", 5)
	viper.SetDefault("CATALOG_FILE", "")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Engine: EngineConfig{
			WindowMinutes: viper.GetInt("WINDOW_MINUTES"),
			CatalogFile:   viper.GetString("CATALOG_FILE"),
		},
	}

	validateConfig()
}

// validateConfig ensures required variables are present and in range, and
// terminates the application otherwise.
func validateConfig() {
	var bad []string

	if AppConfig.Server.Port == "" {
		bad = append(bad, "SERVER_PORT")
	}
	if AppConfig.Engine.WindowMinutes <= 0 {
		bad = append(bad, "WINDOW_MINUTES")
	}

	if len(bad) > 0 {
		log.Fatalf("missing or invalid environment variables: %v\n", bad)
	}
}
