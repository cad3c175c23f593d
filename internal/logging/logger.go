package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the application logger: console writer to stdout with
// timestamps.
func New() zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	return zerolog.New(writer).With().Timestamp().Logger()
}
