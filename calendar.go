package cronnext

import "time"

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month (1-12) of year.
func DaysInMonth(year, month int) int {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	}
	return 31
}

// Weekday returns the day of the week for the given date, 0 = Sunday.
func Weekday(year, month, day int) int {
	return int(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday())
}

// NthWeekdayOf returns the day of month of the nth occurrence of weekday
// (0 = Sunday) in the given month. ok is false when the month has no such
// occurrence.
func NthWeekdayOf(year, month, weekday, n int) (day int, ok bool) {
	if n < 1 || weekday < 0 || weekday > 6 {
		return 0, false
	}
	first := 1 + (weekday-Weekday(year, month, 1)+7)%7
	day = first + (n-1)*7
	if day > DaysInMonth(year, month) {
		return 0, false
	}
	return day, true
}

// LastWeekdayOf returns the day of month of the last occurrence of weekday
// (0 = Sunday) in the given month.
func LastWeekdayOf(year, month, weekday int) (day int, ok bool) {
	if weekday < 0 || weekday > 6 {
		return 0, false
	}
	last := DaysInMonth(year, month)
	offset := (Weekday(year, month, last) - weekday + 7) % 7
	return last - offset, true
}

// NearestWeekdayTo returns the Monday-to-Friday day closest to target within
// the given month. The target is clamped into [1, DaysInMonth] first.
//
// A Sunday moves forward to Monday, falling back to the previous Friday; a
// Saturday moves back to Friday, falling back to the following Monday. When
// neither candidate lies inside the month the forward (Sunday) or backward
// (Saturday) day is returned anyway, so the result is not re-clamped.
func NearestWeekdayTo(year, month, target int) int {
	last := DaysInMonth(year, month)
	if target > last {
		target = last
	}
	if target < 1 {
		target = 1
	}

	switch time.Weekday(Weekday(year, month, target)) {
	case time.Sunday:
		if target+1 <= last {
			return target + 1
		}
		if target-2 >= 1 {
			return target - 2
		}
		return target + 1
	case time.Saturday:
		if target-1 >= 1 {
			return target - 1
		}
		if target+2 <= last {
			return target + 2
		}
		return target - 1
	}
	return target
}
