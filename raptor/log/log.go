// Package log wires the zerolog.Logger shared by the engine and the
// CLI, following the same convention as other routing code that keeps
// a plain zerolog.Logger field on its finder/router type.
package log

import (
	"os"

	"github.com/rs/zerolog"
)

// Nop is the default logger an engine is constructed with: zero
// observable overhead until a caller opts in with Console.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// Console returns a human-readable, timestamped console logger at the
// given level, the way a CLI wants to see its own diagnostics.
func Console(level zerolog.Level) zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
