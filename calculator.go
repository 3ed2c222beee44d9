package cronnext

import (
	"errors"
	"time"
)

// ExecutionLayout is the time layout of NextExecution results:
// zero-padded day and month, four-digit year, 24-hour time.
const ExecutionLayout = "02.01.2006, 15:04:05"

// Calculator computes next execution times. A Calculator holds no mutable
// state and may be shared between goroutines.
type Calculator struct {
	clock       Clock
	location    *time.Location
	logger      Logger
	searchLimit int
	hooks       *Hooks
}

// New returns a Calculator modified by the given options.
//
// Available Settings
//
//	Clock
//	  Description: The source of "now" for Next and NextString
//	  Default:     RealClock
//
//	Location
//	  Description: The timezone expressions are evaluated in
//	  Default:     the reference instant's own location
//
//	Search limit
//	  Description: Minute candidates examined before giving up
//	  Default:     DefaultSearchLimit (two years)
//
// See "cronnext.With*" to modify the default behavior.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		clock:  RealClock{},
		logger: DiscardLogger,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.clock == nil {
		c.clock = RealClock{}
	}
	if c.logger == nil {
		c.logger = DiscardLogger
	}
	if c.searchLimit <= 0 {
		c.searchLimit = DefaultSearchLimit
	}
	return c
}

// SearchLimit returns the number of minute candidates a search examines.
func (c *Calculator) SearchLimit() int { return c.searchLimit }

// Now returns the calculator's current time in its location.
func (c *Calculator) Now() time.Time {
	return c.in(c.clock.Now())
}

func (c *Calculator) in(t time.Time) time.Time {
	if c.location != nil {
		return t.In(c.location)
	}
	return t
}

// Next returns the next execution time of expr after the clock's current time.
func (c *Calculator) Next(expr string) (time.Time, error) {
	return c.NextAfter(expr, c.clock.Now())
}

// NextAfter returns the first whole minute strictly after ref that matches
// expr. It fails with a *FormatError for a malformed expression and with a
// *SearchExhaustedError when nothing matches within the search limit.
func (c *Calculator) NextAfter(expr string, ref time.Time) (time.Time, error) {
	e, err := Parse(expr)
	if err != nil {
		return time.Time{}, err
	}
	return c.NextFor(e, ref)
}

// NextFor is NextAfter for an already parsed expression.
func (c *Calculator) NextFor(e *Expression, ref time.Time) (time.Time, error) {
	start := time.Now()
	next, attempts, err := e.search(c.in(ref), c.searchLimit)
	elapsed := time.Since(start)
	if err != nil {
		c.hooks.callOnExhausted(e.source, attempts, elapsed)
		c.logger.Error(err, "search exhausted", "expression", e.source, "from", ref, "attempts", attempts)
		return time.Time{}, err
	}
	c.hooks.callOnMatch(e.source, next, attempts, elapsed)
	c.logger.Info("next execution", "expression", e.source, "next", next, "attempts", attempts)
	return next, nil
}

// NextN returns up to n consecutive execution times after ref. It fails only
// if the expression is invalid or not even the first time can be found; a
// later exhausted search ends the list early.
func (c *Calculator) NextN(expr string, ref time.Time, n int) ([]time.Time, error) {
	if n <= 0 {
		return nil, nil
	}
	e, err := Parse(expr)
	if err != nil {
		return nil, err
	}

	times := make([]time.Time, 0, n)
	current := ref
	for range n {
		next, err := c.NextFor(e, current)
		if err != nil {
			if len(times) == 0 || !errors.Is(err, ErrSearchExhausted) {
				return nil, err
			}
			break
		}
		times = append(times, next)
		current = next
	}
	return times, nil
}

// NextString returns the next execution time of expr after the clock's
// current time, formatted with ExecutionLayout.
func (c *Calculator) NextString(expr string) (string, error) {
	next, err := c.Next(expr)
	if err != nil {
		return "", err
	}
	return FormatExecution(next), nil
}

// FormatExecution formats t as "DD.MM.YYYY, HH:MM:SS".
func FormatExecution(t time.Time) string {
	return t.Format(ExecutionLayout)
}

var defaultCalculator = New()

// NextExecution returns the next execution time of a cron expression after
// the current wall-clock time, formatted as "DD.MM.YYYY, HH:MM:SS" in local
// time.
//
// Example:
//
//	next, err := cronnext.NextExecution("@daily")
//	if err != nil {
//	    return fmt.Errorf("invalid schedule: %w", err)
//	}
//	fmt.Println("Next run:", next) // e.g. "15.10.2026, 00:00:00"
func NextExecution(expr string) (string, error) {
	return defaultCalculator.NextString(expr)
}
