package fx

import (
	"testing"

	"github.com/rs/zerolog"

	"rivals-tracker/internal/config"
)

func TestProvideLogger_AppliesConfiguredLevel(t *testing.T) {
	log := ProvideLogger(&config.Config{LogLevel: "warn"})
	if log.GetLevel() != zerolog.WarnLevel {
		t.Errorf("level = %s, want warn", log.GetLevel())
	}
}

func TestProvideLogger_InvalidLevelFallsBack(t *testing.T) {
	log := ProvideLogger(&config.Config{LogLevel: "shouting"})
	if log.GetLevel() != zerolog.InfoLevel {
		t.Errorf("level = %s, want info fallback", log.GetLevel())
	}
}
