package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the console logger used by both binaries. LOG_LEVEL=debug
// lowers the threshold.
func New() zerolog.Logger {
	level := zerolog.InfoLevel
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
