// Package logging holds the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger writes human readable lines to stderr until Setup replaces it.
var Logger = New(os.Stderr, zerolog.InfoLevel)

// New builds a console logger writing to out.
func New(out io.Writer, level zerolog.Level) zerolog.Logger {
	w := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.TimeOnly,
	}
	if f, ok := out.(*os.File); !ok || f != os.Stderr {
		w.NoColor = true
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// ParseLevel maps a launch option to a zerolog level. Unknown values are info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Setup replaces Logger.
func Setup(level string, out io.Writer) {
	Logger = New(out, ParseLevel(level))
	Logger.Debug().Str("level", Logger.GetLevel().String()).Msg("logging set up")
}

// For returns a child logger tagged with component.
func For(component string) zerolog.Logger {
	return Logger.With().Str("component", component).Logger()
}
