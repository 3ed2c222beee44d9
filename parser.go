package cronnext

import (
	"errors"
	"fmt"
	"maps"
	"strings"
)

// MaxExpressionLength is the maximum allowed length for a cron expression.
// This limit prevents resource exhaustion from extremely long inputs.
const MaxExpressionLength = 1024

// aliases maps the predefined schedule names to their five-field form.
// It is built once and never modified.
var aliases = map[string]string{
	"@yearly":   "0 0 1 1 *",
	"@annually": "0 0 1 1 *",
	"@monthly":  "0 0 1 * *",
	"@weekly":   "0 0 * * 0",
	"@daily":    "0 0 * * *",
	"@midnight": "0 0 * * *",
	"@hourly":   "0 * * * *",
}

// ExpandAlias returns the five-field expression for a predefined schedule
// name such as "@daily". The lookup is case-insensitive and matches the whole
// string only. Anything else is returned unchanged with ok set to false.
func ExpandAlias(expr string) (expanded string, ok bool) {
	if full, found := aliases[strings.ToLower(expr)]; found {
		return full, true
	}
	return expr, false
}

// Aliases returns a copy of the predefined schedule table.
func Aliases() map[string]string {
	return maps.Clone(aliases)
}

// fieldNames lists the field positions in expression order.
var fieldNames = []string{"minute", "hour", "day", "month", "dayOfWeek"}

// Expression is a parsed five-field cron expression. It is immutable and safe
// for concurrent use.
type Expression struct {
	source string // as given, before alias expansion
	alias  string // lower-cased alias name, empty if none

	Minute, Hour, Dom, Month, Dow Field

	// Minute, hour and month take no calendar context, so their membership
	// is resolved once and stored as bit sets.
	minuteBits, hourBits, monthBits uint64

	domWildcard, dowWildcard bool
}

// Parse parses a cron expression or predefined alias. It returns a
// *FormatError if the expression does not have exactly five fields or a
// field cannot be parsed.
func Parse(expr string) (*Expression, error) {
	spec := strings.TrimSpace(expr)
	if len(spec) == 0 {
		return nil, &FormatError{Expression: expr, Message: "empty expression"}
	}
	if len(spec) > MaxExpressionLength {
		return nil, &FormatError{
			Expression: spec[:32] + "...",
			Message:    fmt.Sprintf("expression too long: %d > %d", len(spec), MaxExpressionLength),
		}
	}

	e := &Expression{source: expr}
	if expanded, ok := ExpandAlias(expr); ok {
		e.alias = strings.ToLower(expr)
		spec = expanded
	}

	fields := strings.Fields(spec)
	if len(fields) != len(fieldNames) {
		return nil, &FormatError{
			Expression: expr,
			Message: fmt.Sprintf("expected %d fields: minute hour day month dayOfWeek, found %d",
				len(fieldNames), len(fields)),
		}
	}

	var err error
	field := func(text string, b bounds) Field {
		if err != nil {
			return nil
		}
		var f Field
		f, err = parseField(text, b)
		return f
	}

	e.Minute = field(fields[0], minutes)
	e.Hour = field(fields[1], hours)
	e.Dom = field(fields[2], daysOfMonth)
	e.Month = field(fields[3], months)
	e.Dow = field(fields[4], daysOfWeek)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			fe.Expression = expr
		}
		return nil, err
	}

	e.minuteBits = bitsOf(e.Minute, minutes)
	e.hourBits = bitsOf(e.Hour, hours)
	e.monthBits = bitsOf(e.Month, months)
	e.domWildcard = isWildcard(fields[2])
	e.dowWildcard = isWildcard(fields[4])
	return e, nil
}

// MustParse is like Parse but panics if the expression is invalid.
func MustParse(expr string) *Expression {
	e, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return e
}

// String returns the canonical five-field form of the expression.
func (e *Expression) String() string {
	return strings.Join([]string{
		e.Minute.String(),
		e.Hour.String(),
		e.Dom.String(),
		e.Month.String(),
		e.Dow.String(),
	}, " ")
}

// Source returns the expression exactly as it was passed to Parse.
func (e *Expression) Source() string { return e.source }

// Alias returns the lower-cased alias the expression was expanded from, or
// the empty string.
func (e *Expression) Alias() string { return e.alias }

func isWildcard(text string) bool { return text == "*" || text == "?" }

// bitsOf resolves a context-free field into a bit set over [0, 63].
func bitsOf(f Field, b bounds) uint64 {
	var bits uint64
	for _, v := range f.Resolve(Context{Min: b.min, Max: b.max}).Values {
		if v >= 0 && v < 64 {
			bits |= 1 << uint(v)
		}
	}
	return bits
}
