package cronnext

import "time"

// Hooks provides callbacks for monitoring searches.
// All callbacks are optional; nil callbacks are safely ignored.
//
// Example with Prometheus:
//
//	hooks := cronnext.Hooks{
//	    OnMatch: func(expr string, next time.Time, attempts int, elapsed time.Duration) {
//	        searchMinutes.Observe(float64(attempts))
//	    },
//	    OnExhausted: func(expr string, attempts int, elapsed time.Duration) {
//	        exhausted.Inc()
//	    },
//	}
//	calc := cronnext.New(cronnext.WithHooks(hooks))
type Hooks struct {
	// OnMatch is called when a search finds an execution time.
	// Parameters:
	//   - expression: the expression as passed by the caller
	//   - next: the execution time found
	//   - attempts: how many minute candidates were examined
	//   - elapsed: wall time spent searching
	OnMatch func(expression string, next time.Time, attempts int, elapsed time.Duration)

	// OnExhausted is called when a search hits its limit without a match.
	OnExhausted func(expression string, attempts int, elapsed time.Duration)
}

func (h *Hooks) callOnMatch(expression string, next time.Time, attempts int, elapsed time.Duration) {
	if h != nil && h.OnMatch != nil {
		h.OnMatch(expression, next, attempts, elapsed)
	}
}

func (h *Hooks) callOnExhausted(expression string, attempts int, elapsed time.Duration) {
	if h != nil && h.OnExhausted != nil {
		h.OnExhausted(expression, attempts, elapsed)
	}
}
