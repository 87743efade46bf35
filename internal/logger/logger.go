package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns the bootstrap logger used before configuration is
// loaded. It logs at debug so early startup problems are visible.
func New() zerolog.Logger {
	return build(zerolog.DebugLevel)
}

// SetLevel returns a logger at the configured level. The application
// logger is built from this once the log level is known.
func SetLevel(level zerolog.Level) zerolog.Logger {
	return build(level)
}

func build(level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Logger()

	return logger.Level(level)
}
