package cronnext

import (
	"time"
)

// Option represents a modification to the default behavior of a Calculator.
type Option func(*Calculator)

// WithLocation evaluates expressions in the given timezone. By default the
// location of the reference instant is used, which is time.Local for the
// real clock.
func WithLocation(loc *time.Location) Option {
	return func(c *Calculator) {
		c.location = loc
	}
}

// WithLogger uses the provided logger.
func WithLogger(logger Logger) Option {
	return func(c *Calculator) {
		c.logger = logger
	}
}

// WithClock uses the provided Clock implementation instead of the default RealClock.
// This is useful for testing time-dependent behavior without waiting.
//
// Example usage:
//
//	fakeClock := cronnext.NewFakeClock(time.Date(2025, 1, 3, 9, 4, 30, 0, time.UTC))
//	calc := cronnext.New(cronnext.WithClock(fakeClock))
//	next, _ := calc.NextString("5 9 * * *") // "03.01.2025, 09:05:00"
func WithClock(clock Clock) Option {
	return func(c *Calculator) {
		c.clock = clock
	}
}

// WithSearchLimit caps the number of minute candidates a search examines
// before failing with a *SearchExhaustedError. Values <= 0 use
// DefaultSearchLimit.
//
// Callers that compute next executions on a latency-sensitive path can lower
// the limit to bound the worst case.
func WithSearchLimit(minutes int) Option {
	return func(c *Calculator) {
		c.searchLimit = minutes
	}
}

// WithHooks configures callbacks invoked after each search.
// Hooks are called synchronously; nil callbacks are safely ignored.
func WithHooks(hooks Hooks) Option {
	return func(c *Calculator) {
		c.hooks = &hooks
	}
}
