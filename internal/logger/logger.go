package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the application logger. Pretty output is for local
// development only, production stays on JSON.
func New(level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	return logger.Level(lvl).With().Timestamp().Logger()
}
