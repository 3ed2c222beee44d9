/*
Package cronnext computes the next execution time of a cron expression.

# Installation

To download the package, run:

	go get github.com/netresearch/go-cronnext

Import it in your program as:

	import "github.com/netresearch/go-cronnext"

# Usage

The simplest entry point reads the wall clock and returns a display string:

	next, err := cronnext.NextExecution("30 9-17 * * 1-5")
	// next == "14.10.2026, 09:30:00"

A Calculator adds control over the clock, timezone, logging and search limit:

	calc := cronnext.New(
		cronnext.WithLocation(berlin),
		cronnext.WithLogger(cronnext.NewSlogLogger(nil)),
	)
	t, err := calc.NextAfter("0 0 L * *", time.Now())  // midnight on the last day of the month
	times, err := calc.NextN("@hourly", time.Now(), 5)

Expressions can also be parsed once and evaluated many times:

	e := cronnext.MustParse("30 4 1,15 * 5")
	t, err := e.Next(time.Now())
	ok := e.Matches(t)

# CRON Expression Format

A cron expression represents a set of times, using 5 space-separated fields.

	Field name   | Allowed values  | Allowed special characters
	----------   | --------------  | --------------------------
	Minutes      | 0-59            | * / , -
	Hours        | 0-23            | * / , -
	Day of month | 1-31            | * / , - ? L W #
	Month        | 1-12 or JAN-DEC | * / , -
	Day of week  | 0-6 or SUN-SAT  | * / , - ? L W #

Month and day-of-week names are case insensitive.

# Special Characters

Asterisk ( * ) and Question mark ( ? )

Both match every value of the field.

Slash ( / )

With an asterisk base, "*\/15" in the minutes field selects the minutes whose
offset from 0 is a multiple of 15: 0, 15, 30 and 45. With any other base the
step counts positions in the base sequence instead: "1-10/3" keeps the 1st,
4th, 7th and 10th element, which is 1, 4, 7 and 10. "5/2" therefore means
just 5.

Comma ( , )

Commas separate items of a list. "MON,WED,FRI" in the day-of-week field means
Mondays, Wednesdays and Fridays.

Hyphen ( - )

Hyphens define inclusive ranges. "9-17" means every hour from 9am to 5pm. A
range whose start is beyond its end, such as "17-9", matches nothing.

# L ( L ) - Day of Month and Day of Week Fields

Alone, the last day of the month: 31 in January, 29 in February 2024, 28 in
February 2023. After a weekday number, the last occurrence of that weekday:
"5L" is the last Friday of the month.

# W ( W ) - Day of Month Field

After a day number, the Monday-to-Friday day nearest to it: "15W" is the 15th
when that is a weekday, Friday the 14th when the 15th is a Saturday and Monday
the 16th when it is a Sunday. A day beyond the end of the month is clamped to
the last day. "LW" is the weekday nearest to the last day of the month.

# Hash ( # ) - Day of Week Field

"weekday#n" is the nth occurrence of a weekday: "1#3" is the third Monday.
Months without that occurrence ("5#5" in most months) are skipped.

L, W and # forms produce calendar dates and work in both day fields.

# Day of Month and Day of Week

When both day fields are restricted (neither is * or ?), a day matches if
either field matches. "0 0 15 * 1" runs at midnight on the 15th and on every
Monday.

# Predefined schedules

	Entry                  | Description                                | Equivalent To
	-----                  | -----------                                | -------------
	@yearly (or @annually) | Run once a year, midnight, Jan. 1st        | 0 0 1 1 *
	@monthly               | Run once a month, midnight, first of month | 0 0 1 * *
	@weekly                | Run once a week, midnight between Sat/Sun  | 0 0 * * 0
	@daily (or @midnight)  | Run once a day, midnight                   | 0 0 * * *
	@hourly                | Run once an hour, beginning of hour        | 0 * * * *

Names are matched case-insensitively against the whole expression.

# Search

The search starts at the minute after the reference instant, with seconds
zeroed, and advances one minute at a time, re-evaluating every field against
the candidate's month. After DefaultSearchLimit candidates (two years of
minutes) it fails with a *SearchExhaustedError. Expressions that can never
match, such as "0 0 30 2 *", exhaust the full limit. Use WithSearchLimit to
bound the cost on latency-sensitive paths.

# Errors

Malformed expressions fail with a *FormatError before any date computation;
errors.Is(err, ErrFormat) reports them. Exhausted searches report
errors.Is(err, ErrSearchExhausted). No partial result is ever returned.

# Thread safety

Parsed expressions and calculators hold no mutable state and are safe for
concurrent use.
*/
package cronnext
