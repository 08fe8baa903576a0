package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// Setup builds the process logger. Output goes to stderr so the terminal
// messages on stdout stay clean for scripting. An unknown level falls back
// to info.
func Setup(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(w).With().Timestamp().Logger().Level(lvl)
}
