// Package logging configures the binary's structured logging on zerolog and
// adapts it to the cronnext.Logger interface.
//
// Console output is meant for people (short timestamp, key=value pairs);
// the json format keeps every field structured for log shippers.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/netresearch/go-cronnext"
)

const consoleTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// New builds a zerolog logger writing to w. format is "console" or "json";
// anything else is treated as json. Unknown levels fall back to info.
func New(level, format string, w io.Writer) zerolog.Logger {
	zerolog.ErrorFieldName = "err"

	out := w
	if format == "console" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: consoleTimeFormat, NoColor: !isTerminal(w)}
	}
	return zerolog.New(out).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// isTerminal reports whether w is a terminal. Colors are only used there.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ParseLevel maps a level name to a zerolog level.
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
	case "DISABLED", "OFF":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Adapter implements cronnext.Logger on top of zerolog.
type Adapter struct {
	zl zerolog.Logger
}

var _ cronnext.Logger = Adapter{}

// NewAdapter wraps zl.
func NewAdapter(zl zerolog.Logger) Adapter {
	return Adapter{zl: zl}
}

// Info logs at debug level. The calculator reports every search through
// Info, which is too chatty for the default level.
func (a Adapter) Info(msg string, keysAndValues ...any) {
	a.zl.Debug().Fields(keysAndValues).Msg(msg)
}

// Error logs at error level with err attached.
func (a Adapter) Error(err error, msg string, keysAndValues ...any) {
	a.zl.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
