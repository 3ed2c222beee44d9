package cronnext

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestSlogLoggerInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	sl := NewSlogLogger(logger)

	sl.Info("test message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("expected output to contain 'test message', got: %s", output)
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("expected output to contain 'key=value', got: %s", output)
	}
}

func TestSlogLoggerError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}))
	sl := NewSlogLogger(logger)

	sl.Error(&testError{msg: "test error"}, "error message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "error message") {
		t.Errorf("expected output to contain 'error message', got: %s", output)
	}
	if !strings.Contains(output, `error="test error"`) {
		t.Errorf("expected output to contain the error, got: %s", output)
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("expected output to contain 'key=value', got: %s", output)
	}
}

func TestSlogLoggerNilDefault(t *testing.T) {
	sl := NewSlogLogger(nil)
	sl.Info("test with nil logger")
}

func TestSlogLoggerImplementsInterface(t *testing.T) {
	var _ Logger = (*SlogLogger)(nil)
}

type testError struct {
	msg string
}

func (e *testError) Error() string {
	return e.msg
}

// captureLogger captures log output for testing
type captureLogger struct {
	output string
}

func (cl *captureLogger) Printf(format string, args ...any) {
	cl.output = fmt.Sprintf(format, args...)
}

func TestLogfmt(t *testing.T) {
	at := time.Date(2025, 1, 3, 9, 5, 0, 0, time.UTC)
	tests := []struct {
		name     string
		msg      string
		kv       []any
		expected string
	}{
		{"message only", "message only", nil, "message only"},
		{"one pair", "message", []any{"key", "value"}, "message: key=value"},
		{"two pairs", "next execution", []any{"expression", "@daily", "attempts", 896}, "next execution: expression=@daily, attempts=896"},
		{"time value", "found", []any{"next", at}, "found: next=2025-01-03T09:05:00Z"},
		{"odd trailing key", "msg", []any{"a", 1, "dangling"}, "msg: a=1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			capture := &captureLogger{}
			VerbosePrintfLogger(capture).Info(tt.msg, tt.kv...)
			if capture.output != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, capture.output)
			}
		})
	}
}

// TestPrintfLoggerNonVerboseDoesNotLog verifies that non-verbose logger
// does not log Info messages (only Error).
func TestPrintfLoggerNonVerboseDoesNotLog(t *testing.T) {
	capture := &captureLogger{}
	logger := PrintfLogger(capture)
	logger.Info("should not appear", "key", "value")

	if capture.output != "" {
		t.Errorf("non-verbose logger should not log Info, got: %q", capture.output)
	}
}

func TestPrintfLoggerError(t *testing.T) {
	capture := &captureLogger{}
	logger := PrintfLogger(capture)
	logger.Error(&testError{msg: "test error"}, "error occurred", "key", "value")

	expected := "error occurred: error=test error, key=value"
	if capture.output != expected {
		t.Errorf("expected %q, got %q", expected, capture.output)
	}
}

func TestPrintfLoggerKeepsPercentSigns(t *testing.T) {
	capture := &captureLogger{}
	VerbosePrintfLogger(capture).Info("100% done", "expression", "*/5 * * * *")
	if capture.output != "100% done: expression=*/5 * * * *" {
		t.Errorf("unexpected output %q", capture.output)
	}
}

func TestCalculatorLogs(t *testing.T) {
	capture := &recordingLogger{}
	calc := New(WithLogger(capture), WithLocation(time.UTC))

	if _, err := calc.NextAfter("@hourly", reference); err != nil {
		t.Fatal(err)
	}
	if _, err := New(WithLogger(capture), WithSearchLimit(10)).NextAfter("@daily", reference); err == nil {
		t.Fatal("expected exhausted search")
	}

	if len(capture.infos) != 1 || capture.infos[0] != "next execution" {
		t.Errorf("unexpected info messages: %v", capture.infos)
	}
	if len(capture.errors) != 1 || capture.errors[0] != "search exhausted" {
		t.Errorf("unexpected error messages: %v", capture.errors)
	}
}

type recordingLogger struct {
	infos, errors []string
}

func (r *recordingLogger) Info(msg string, _ ...any) { r.infos = append(r.infos, msg) }
func (r *recordingLogger) Error(_ error, msg string, _ ...any) {
	r.errors = append(r.errors, msg)
}
