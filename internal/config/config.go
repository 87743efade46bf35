package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"rivals-tracker/internal/logger"
)

type Config struct {
	RivalsAPIKey      string
	DBPath            string
	ServerPort        string
	LogLevel          string
	CacheTTL          time.Duration
	NormalizeWarnings bool
}

// Load reads configuration before the leveled logger exists, so it
// logs through a bootstrap logger of its own.
func Load() (*Config, error) {
	log := logger.New()

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		RivalsAPIKey:      getEnv("RIVALS_API_KEY", ""),
		DBPath:            getEnv("DB_PATH", "rivals.db"),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		CacheTTL:          5 * time.Minute,
		NormalizeWarnings: getEnv("NORMALIZE_WARNINGS", "true") == "true",
	}

	if cfg.RivalsAPIKey == "" {
		return nil, fmt.Errorf("RIVALS_API_KEY is required")
	}

	log.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Dur("cache_ttl", cfg.CacheTTL).
		Bool("normalize_warnings", cfg.NormalizeWarnings).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
