package cronnext

import (
	"fmt"
	"strings"
	"time"

	robfig "github.com/robfig/cron/v3"
)

// standardCron is the plain five-field cron dialect most schedulers accept.
// It decides whether an expression is portable.
var standardCron = robfig.NewParser(
	robfig.Minute | robfig.Hour | robfig.Dom | robfig.Month | robfig.Dow | robfig.Descriptor,
)

// Analysis contains detailed information about a cron expression.
// It provides insight into the schedule without committing to it.
type Analysis struct {
	// Valid indicates whether the expression was successfully parsed.
	Valid bool

	// Error contains the parsing error if Valid is false.
	Error error

	// Alias is the predefined schedule name the expression expanded from.
	Alias string

	// Expression is the canonical five-field form.
	Expression string

	// Fields contains the original field values.
	// Keys: "minute", "hour", "day_of_month", "month", "day_of_week"
	Fields map[string]string

	// NextRun is the next execution time from now.
	// Zero if the expression is invalid or nothing matches within the limit.
	NextRun time.Time

	// Portable reports whether a standard five-field cron implementation
	// would read the expression the same way.
	Portable bool

	// Warnings contains non-fatal observations about the schedule.
	// Example: "both day-of-month and day-of-week are restricted - either one matching is enough"
	Warnings []string
}

// Validate checks an expression without searching for an execution time.
// It returns nil if the expression is valid or a *FormatError describing the
// problem.
//
// Example:
//
//	if err := cronnext.Validate(userInput); err != nil {
//	    return fmt.Errorf("invalid cron expression: %w", err)
//	}
func Validate(expr string) error {
	_, err := Parse(expr)
	return err
}

// ValidateAll validates multiple expressions at once.
// It returns a map of index to error for any invalid expressions.
// If all are valid, returns an empty map (not nil).
func ValidateAll(exprs []string) map[int]error {
	errs := make(map[int]error)
	for i, expr := range exprs {
		if err := Validate(expr); err != nil {
			errs[i] = err
		}
	}
	return errs
}

// Analyze provides a detailed analysis of an expression using the default
// calculator.
func Analyze(expr string) Analysis {
	return defaultCalculator.Analyze(expr)
}

// Analyze parses expr, looks up its next run from the calculator's clock,
// and collects warnings about parts of the expression that can never match.
//
// This is useful for:
//   - UI previews showing when a schedule will run
//   - Configuration validation with detailed feedback
//   - Debugging cron expressions
func (c *Calculator) Analyze(expr string) Analysis {
	result := Analysis{Fields: make(map[string]string)}

	e, err := Parse(expr)
	if err != nil {
		result.Error = err
		return result
	}

	result.Valid = true
	result.Alias = e.Alias()
	result.Expression = e.String()
	result.Fields["minute"] = e.Minute.String()
	result.Fields["hour"] = e.Hour.String()
	result.Fields["day_of_month"] = e.Dom.String()
	result.Fields["month"] = e.Month.String()
	result.Fields["day_of_week"] = e.Dow.String()

	result.checkDomDow(e)
	portable := true
	for _, f := range []struct {
		field Field
		b     bounds
	}{
		{e.Minute, minutes},
		{e.Hour, hours},
		{e.Dom, daysOfMonth},
		{e.Month, months},
		{e.Dow, daysOfWeek},
	} {
		if !result.checkField(f.field, f.b) {
			portable = false
		}
	}
	if _, err := standardCron.Parse(strings.TrimSpace(expr)); err != nil {
		portable = false
	}
	result.Portable = portable

	next, err := c.NextFor(e, c.clock.Now())
	if err != nil {
		result.Warnings = append(result.Warnings, err.Error())
	} else {
		result.NextRun = next
	}
	return result
}

// checkDomDow adds a warning if both day fields are restricted.
func (r *Analysis) checkDomDow(e *Expression) {
	if !e.domWildcard && !e.dowWildcard {
		r.Warnings = append(r.Warnings,
			"both day-of-month and day-of-week are restricted - either one matching is enough")
	}
}

// checkField walks one field and records warnings for parts that never
// match. It returns false if the field reads differently in standard cron.
func (r *Analysis) checkField(f Field, b bounds) (portable bool) {
	portable = true
	warn := func(format string, args ...any) {
		r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...)+" in "+b.name+" field")
	}
	outside := func(v int) bool { return v < b.min || v > b.max }

	walkField(f, func(node Field) {
		switch n := node.(type) {
		case Literal:
			if outside(n.Value) {
				warn("value %d is outside %d-%d and never matches", n.Value, b.min, b.max)
			}
		case Range:
			if n.Lo > n.Hi {
				warn("descending range %s matches nothing", n)
			} else if outside(n.Lo) || outside(n.Hi) {
				warn("range %s reaches outside %d-%d", n, b.min, b.max)
			}
		case Step:
			if _, single := n.Base.(Literal); single {
				warn("step %s over a single value selects only that value", n)
				portable = false
			}
		case LastDay, LastWeekday, NearestWeekday, NthWeekday:
			portable = false
			if !b.calendar {
				warn("%s needs a day field and matches nothing", n)
			}
			if nth, ok := n.(NthWeekday); ok && (nth.N < 1 || nth.N > 5) {
				warn("%s has no occurrence in any month", nth)
			}
		}
	})
	return portable
}
