package cronnext

import "time"

// DefaultSearchLimit is the number of minute candidates examined before a
// search gives up: two leap years worth of minutes.
const DefaultSearchLimit = 366 * 24 * 60 * 2

// daySets holds the day-of-month and day-of-week fields resolved for one
// calendar month.
type daySets struct {
	year, month int
	dom, dow    Set
}

func (e *Expression) resolveDays(year, month int) daySets {
	return daySets{
		year:  year,
		month: month,
		dom:   e.Dom.Resolve(Context{Min: daysOfMonth.min, Max: daysOfMonth.max, Year: year, Month: month}),
		dow:   e.Dow.Resolve(Context{Min: daysOfWeek.min, Max: daysOfWeek.max, Year: year, Month: month}),
	}
}

// Matches reports whether t, at minute granularity, satisfies the expression.
// Seconds are ignored.
func (e *Expression) Matches(t time.Time) bool {
	return e.matches(t, e.resolveDays(t.Year(), int(t.Month())))
}

// Next returns the first instant strictly after ref, at a whole minute, that
// satisfies the expression. The search covers DefaultSearchLimit minutes and
// fails with a *SearchExhaustedError beyond that.
func (e *Expression) Next(ref time.Time) (time.Time, error) {
	next, _, err := e.search(ref, DefaultSearchLimit)
	return next, err
}

// search advances minute by minute from ref and returns the first match along
// with the number of candidates examined.
func (e *Expression) search(ref time.Time, limit int) (time.Time, int, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	// Start at the upcoming minute with seconds zeroed.
	t := ref.Add(time.Minute)
	t = t.Add(-time.Duration(t.Second())*time.Second - time.Duration(t.Nanosecond()))

	days := e.resolveDays(t.Year(), int(t.Month()))
	for attempt := 1; attempt <= limit; attempt++ {
		if year, month := t.Year(), int(t.Month()); year != days.year || month != days.month {
			days = e.resolveDays(year, month)
		}
		if e.matches(t, days) {
			return t, attempt, nil
		}
		t = t.Add(time.Minute)
	}

	return time.Time{}, limit, &SearchExhaustedError{
		Expression: e.source,
		From:       ref,
		Attempts:   limit,
	}
}

// matches checks t against every field, with the day fields already resolved
// for t's month.
func (e *Expression) matches(t time.Time, days daySets) bool {
	year, month, day := t.Date()
	if !fieldMatches(int(month), e.monthBits) ||
		!fieldMatches(t.Hour(), e.hourBits) ||
		!fieldMatches(t.Minute(), e.minuteBits) {
		return false
	}
	if day > DaysInMonth(year, int(month)) {
		return false
	}
	return e.dayMatches(day, int(t.Weekday()), days)
}

// dayMatches applies the day-of-month / day-of-week combination rule. When
// both fields are restricted either one may match.
func (e *Expression) dayMatches(day, weekday int, days daySets) bool {
	domMatch := days.dom.Has(day) || days.dom.HasDay(day)
	dowMatch := days.dow.Has(weekday) || days.dow.HasDay(day)

	switch {
	case e.domWildcard && e.dowWildcard:
		return true
	case e.domWildcard:
		return dowMatch
	case e.dowWildcard:
		return domMatch
	}
	return domMatch || dowMatch
}

// fieldMatches checks if a time component value is in the bit set.
func fieldMatches(value int, bits uint64) bool {
	// #nosec G115 -- time components are bounded and safe for uint
	return 1<<uint(value)&bits != 0
}
