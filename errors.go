package cronnext

import (
	"errors"
	"fmt"
	"time"
)

// ErrFormat is matched by every *FormatError via errors.Is.
var ErrFormat = errors.New("cronnext: invalid cron expression")

// ErrSearchExhausted is matched by every *SearchExhaustedError via errors.Is.
var ErrSearchExhausted = errors.New("cronnext: no execution time found")

// FormatError is returned when an expression does not split into five fields
// or a field token cannot be resolved under the field grammar. It is raised
// before any date computation happens.
type FormatError struct {
	Expression string
	Message    string
	Field      string // Optional: which field caused the error
	Value      string // Optional: the offending token
}

func (e *FormatError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg += " in " + e.Field + " field"
		if e.Value != "" {
			msg += ": " + fmt.Sprintf("%q", e.Value)
		}
	}
	if e.Expression != "" {
		msg += " (expression " + fmt.Sprintf("%q", e.Expression) + ")"
	}
	return msg
}

func (e *FormatError) Unwrap() error { return ErrFormat }

// SearchExhaustedError is returned when the bounded minute-by-minute scan
// found no matching instant.
type SearchExhaustedError struct {
	Expression string
	From       time.Time
	Attempts   int
}

func (e *SearchExhaustedError) Error() string {
	return fmt.Sprintf("could not find next execution time for %q within %d minutes after %s",
		e.Expression, e.Attempts, e.From.Format(time.RFC3339))
}

func (e *SearchExhaustedError) Unwrap() error { return ErrSearchExhausted }

// fieldError builds a FormatError for a single field token. The expression is
// filled in by Parse once the failing field is known.
func fieldError(field, value, format string, args ...any) *FormatError {
	return &FormatError{
		Message: fmt.Sprintf(format, args...),
		Field:   field,
		Value:   value,
	}
}
