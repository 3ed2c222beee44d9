package cronnext

import "time"

// Between returns the execution times of e in the range (start, end).
// If limit is positive at most limit times are returned.
//
// Each search is bounded by the remaining length of the range, so sparse
// expressions over a short range return quickly.
//
// Example:
//
//	e := cronnext.MustParse("0 9 * * 1-5")
//	start := time.Now()
//	times := e.Between(start, start.AddDate(0, 1, 0), 0) // weekday mornings next month
func (e *Expression) Between(start, end time.Time, limit int) []time.Time {
	if !start.Before(end) {
		return nil
	}

	var times []time.Time
	if limit > 0 {
		times = make([]time.Time, 0, limit)
	}

	current := start
	for {
		remaining := int(end.Sub(current) / time.Minute)
		if remaining <= 0 {
			break
		}
		next, _, err := e.search(current, remaining)
		if err != nil || !next.Before(end) {
			break
		}
		times = append(times, next)
		current = next

		if limit > 0 && len(times) >= limit {
			break
		}
	}
	return times
}

// Count returns the number of execution times in the range (start, end).
func (e *Expression) Count(start, end time.Time) int {
	return len(e.Between(start, end, 0))
}
