package cronnext

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"
	"time"
)

// DiscardLogger can be used by callers to discard all log messages.
// It is the default logger of a Calculator.
var DiscardLogger Logger = PrintfLogger(log.New(io.Discard, "", 0))

// Logger is the interface used in this package for logging, so that any backend
// can be plugged in. It is a subset of the github.com/go-logr/logr interface.
type Logger interface {
	// Info logs routine messages, such as a found execution time.
	Info(msg string, keysAndValues ...any)
	// Error logs an error condition.
	Error(err error, msg string, keysAndValues ...any)
}

// PrintfLogger wraps a Printf-based logger (such as the standard library "log")
// into an implementation of the Logger interface which logs errors only.
func PrintfLogger(l interface{ Printf(string, ...any) }) Logger {
	return printfLogger{l, false}
}

// VerbosePrintfLogger wraps a Printf-based logger (such as the standard library
// "log") into an implementation of the Logger interface which logs everything.
func VerbosePrintfLogger(l interface{ Printf(string, ...any) }) Logger {
	return printfLogger{l, true}
}

type printfLogger struct {
	logger  interface{ Printf(string, ...any) }
	logInfo bool
}

func (pl printfLogger) Info(msg string, keysAndValues ...any) {
	if !pl.logInfo {
		return
	}
	pl.logger.Printf("%s", logfmt(msg, keysAndValues))
}

func (pl printfLogger) Error(err error, msg string, keysAndValues ...any) {
	pl.logger.Printf("%s", logfmt(msg, append([]any{"error", err}, keysAndValues...)))
}

// logfmt renders msg followed by key=value pairs. time.Time values are
// written as RFC3339.
func logfmt(msg string, keysAndValues []any) string {
	var sb strings.Builder
	sb.WriteString(msg)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if i == 0 {
			sb.WriteString(": ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(toString(keysAndValues[i]))
		sb.WriteByte('=')
		sb.WriteString(toString(keysAndValues[i+1]))
	}
	return sb.String()
}

func toString(v any) string {
	switch x := v.(type) {
	case time.Time:
		return x.Format(time.RFC3339)
	case string:
		return x
	case error:
		return x.Error()
	}
	return fmt.Sprint(v)
}

// SlogLogger adapts log/slog to the Logger interface.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger creates a Logger that writes to the given slog.Logger.
// If l is nil, slog.Default() is used.
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	if l == nil {
		l = slog.Default()
	}
	return &SlogLogger{logger: l}
}

// Info logs at slog.LevelInfo.
func (s *SlogLogger) Info(msg string, keysAndValues ...any) {
	s.logger.Info(msg, keysAndValues...)
}

// Error logs at slog.LevelError with the error under the "error" key.
func (s *SlogLogger) Error(err error, msg string, keysAndValues ...any) {
	s.logger.Error(msg, append([]any{"error", err}, keysAndValues...)...)
}
