package cronnext

import (
	"strconv"
	"strings"
)

// bounds describes the valid domain of one field position (plus a map of
// name to value).
type bounds struct {
	name     string
	min, max int
	names    map[string]int

	// calendar fields are resolved with a (year, month) context and accept
	// the L, W and # syntax.
	calendar bool
}

// The bounds for each field.
var (
	minutes     = bounds{name: "minute", min: 0, max: 59}
	hours       = bounds{name: "hour", min: 0, max: 23}
	daysOfMonth = bounds{name: "day", min: 1, max: 31, calendar: true}
	months      = bounds{name: "month", min: 1, max: 12, names: map[string]int{
		"jan": 1,
		"feb": 2,
		"mar": 3,
		"apr": 4,
		"may": 5,
		"jun": 6,
		"jul": 7,
		"aug": 8,
		"sep": 9,
		"oct": 10,
		"nov": 11,
		"dec": 12,
	}}
	daysOfWeek = bounds{name: "dayOfWeek", min: 0, max: 6, calendar: true, names: map[string]int{
		"sun": 0,
		"mon": 1,
		"tue": 2,
		"wed": 3,
		"thu": 4,
		"fri": 5,
		"sat": 6,
	}}
)

// Context is the calendar context a field is resolved against. Year and
// Month are zero for fields that take no calendar context.
type Context struct {
	Min, Max    int
	Year, Month int
}

func (c Context) hasDate() bool { return c.Year != 0 && c.Month != 0 }

// Set is the resolved membership of one field. Values are numbers in the
// field's own domain; Days are calendar days of the month produced by the
// L, W and # syntax. Order and duplicates carry no meaning.
type Set struct {
	Values []int
	Days   []int
}

// Has reports whether v is one of the field values.
func (s Set) Has(v int) bool { return contains(s.Values, v) }

// HasDay reports whether day is one of the resolved calendar days.
func (s Set) HasDay(day int) bool { return contains(s.Days, day) }

// Empty reports whether the set denotes nothing at all.
func (s Set) Empty() bool { return len(s.Values) == 0 && len(s.Days) == 0 }

func contains(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// Field is one parsed cron field. Parsing happens once; Resolve evaluates the
// field against a calendar context and may give different answers for
// different months.
type Field interface {
	Resolve(ctx Context) Set
	String() string
}

// Wildcard is "*" or "?": the whole domain.
type Wildcard struct {
	Text string
}

// LastDay is "L": the last calendar day of the month.
type LastDay struct{}

// LastWeekday is "<weekday>L": the last occurrence of a weekday in the month.
type LastWeekday struct {
	Weekday int
}

// NearestWeekday is "<day>W" (or "LW" when Last is set): the Monday-to-Friday
// day nearest to the given day of the month.
type NearestWeekday struct {
	Day  int
	Last bool
}

// NthWeekday is "<weekday>#<n>": the nth occurrence of a weekday in the month.
type NthWeekday struct {
	Weekday, N int
}

// List is a comma separated union of fields.
type List struct {
	Items []Field
}

// Step is "base/every". A "*" base steps by value from the domain minimum,
// any other base keeps every nth element of its resolved sequence.
type Step struct {
	Base  Field
	Every int
	Star  bool
}

// Range is an inclusive ascending "lo-hi". A descending range denotes nothing.
type Range struct {
	Lo, Hi int
}

// Literal is a single value.
type Literal struct {
	Value int
}

func (w Wildcard) Resolve(ctx Context) Set { return Set{Values: span(ctx.Min, ctx.Max)} }
func (w Wildcard) String() string {
	if w.Text == "" {
		return "*"
	}
	return w.Text
}

func (LastDay) Resolve(ctx Context) Set {
	if !ctx.hasDate() {
		return Set{}
	}
	return Set{Days: []int{DaysInMonth(ctx.Year, ctx.Month)}}
}
func (LastDay) String() string { return "L" }

func (l LastWeekday) Resolve(ctx Context) Set {
	if !ctx.hasDate() {
		return Set{}
	}
	day, ok := LastWeekdayOf(ctx.Year, ctx.Month, l.Weekday)
	if !ok {
		return Set{}
	}
	return Set{Days: []int{day}}
}
func (l LastWeekday) String() string { return strconv.Itoa(l.Weekday) + "L" }

func (n NearestWeekday) Resolve(ctx Context) Set {
	if !ctx.hasDate() {
		return Set{}
	}
	target := n.Day
	if n.Last {
		target = DaysInMonth(ctx.Year, ctx.Month)
	}
	return Set{Days: []int{NearestWeekdayTo(ctx.Year, ctx.Month, target)}}
}
func (n NearestWeekday) String() string {
	if n.Last {
		return "LW"
	}
	return strconv.Itoa(n.Day) + "W"
}

func (n NthWeekday) Resolve(ctx Context) Set {
	if !ctx.hasDate() {
		return Set{}
	}
	day, ok := NthWeekdayOf(ctx.Year, ctx.Month, n.Weekday, n.N)
	if !ok {
		return Set{}
	}
	return Set{Days: []int{day}}
}
func (n NthWeekday) String() string { return strconv.Itoa(n.Weekday) + "#" + strconv.Itoa(n.N) }

func (l List) Resolve(ctx Context) Set {
	var out Set
	for _, item := range l.Items {
		s := item.Resolve(ctx)
		out.Values = append(out.Values, s.Values...)
		out.Days = append(out.Days, s.Days...)
	}
	return out
}
func (l List) String() string {
	parts := make([]string, len(l.Items))
	for i, item := range l.Items {
		parts[i] = item.String()
	}
	return strings.Join(parts, ",")
}

func (s Step) Resolve(ctx Context) Set {
	if s.Every <= 0 {
		return Set{}
	}
	if s.Star {
		var values []int
		for v := ctx.Min; v <= ctx.Max; v++ {
			if (v-ctx.Min)%s.Every == 0 {
				values = append(values, v)
			}
		}
		return Set{Values: values}
	}
	base := s.Base.Resolve(ctx)
	return Set{
		Values: everyNth(base.Values, s.Every),
		Days:   everyNth(base.Days, s.Every),
	}
}
func (s Step) String() string {
	if s.Star {
		return "*/" + strconv.Itoa(s.Every)
	}
	return s.Base.String() + "/" + strconv.Itoa(s.Every)
}

// Resolve cuts the range off at the domain maximum. Values above it never
// match, and the positions of the values below it are unaffected.
func (r Range) Resolve(ctx Context) Set { return Set{Values: span(r.Lo, min(r.Hi, ctx.Max))} }
func (r Range) String() string          { return strconv.Itoa(r.Lo) + "-" + strconv.Itoa(r.Hi) }

func (l Literal) Resolve(Context) Set { return Set{Values: []int{l.Value}} }
func (l Literal) String() string      { return strconv.Itoa(l.Value) }

// span returns lo..hi inclusive, or nil when lo > hi.
func span(lo, hi int) []int {
	if lo > hi {
		return nil
	}
	out := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		out = append(out, v)
	}
	return out
}

// everyNth keeps the elements at positions 0, n, 2n, ...
func everyNth(list []int, n int) []int {
	if len(list) == 0 || n <= 0 {
		return nil
	}
	out := make([]int, 0, (len(list)+n-1)/n)
	for i := 0; i < len(list); i += n {
		out = append(out, list[i])
	}
	return out
}

// parseField parses one field string into its Field representation.
// Rules are tried in order; list, step and range recurse into their parts.
func parseField(text string, b bounds) (Field, error) {
	if text == "" {
		return nil, fieldError(b.name, text, "empty value")
	}

	if text == "*" || text == "?" {
		return Wildcard{Text: text}, nil
	}

	if text == "L" && b.calendar {
		return LastDay{}, nil
	}

	// Suffix and hash forms only apply to a single token; composite text
	// falls through so each part is parsed on its own.
	if !strings.ContainsAny(text, ",-/") {
		if f, ok, err := parseCalendarToken(text, b); ok || err != nil {
			return f, err
		}
	}

	if strings.Contains(text, ",") {
		parts := strings.Split(text, ",")
		items := make([]Field, 0, len(parts))
		for _, part := range parts {
			item, err := parseField(strings.TrimSpace(part), b)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return List{Items: items}, nil
	}

	if strings.Contains(text, "/") {
		return parseStep(text, b)
	}

	if strings.Contains(text, "-") {
		return parseRange(text, b)
	}

	v, err := parseValue(text, b)
	if err != nil {
		return nil, err
	}
	return Literal{Value: v}, nil
}

// parseCalendarToken handles "<n>L", "<n>W", "LW" and "<n>#<k>". ok is false
// when text is none of these.
func parseCalendarToken(text string, b bounds) (f Field, ok bool, err error) {
	switch {
	case text == "LW":
		return NearestWeekday{Last: true}, true, nil
	case len(text) > 1 && strings.HasSuffix(text, "L"):
		weekday, err := parseValue(text[:len(text)-1], daysOfWeek.withName(b.name))
		if err != nil {
			return nil, true, err
		}
		return LastWeekday{Weekday: weekday}, true, nil
	case len(text) > 1 && strings.HasSuffix(text, "W"):
		day, err := parseValue(text[:len(text)-1], bounds{name: b.name})
		if err != nil {
			return nil, true, err
		}
		return NearestWeekday{Day: day}, true, nil
	case strings.Contains(text, "#"):
		parts := strings.Split(text, "#")
		if len(parts) != 2 {
			return nil, true, fieldError(b.name, text, "too many '#'")
		}
		weekday, err := parseValue(parts[0], daysOfWeek.withName(b.name))
		if err != nil {
			return nil, true, err
		}
		n, err := parseValue(parts[1], bounds{name: b.name})
		if err != nil {
			return nil, true, err
		}
		return NthWeekday{Weekday: weekday, N: n}, true, nil
	}
	return nil, false, nil
}

func parseStep(text string, b bounds) (Field, error) {
	parts := strings.Split(text, "/")
	if len(parts) != 2 {
		return nil, fieldError(b.name, text, "too many slashes")
	}
	every, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fieldError(b.name, text, "failed to parse step from %q", parts[1])
	}
	if every <= 0 {
		return nil, fieldError(b.name, text, "step must be a positive number")
	}
	if parts[0] == "*" {
		return Step{Every: every, Star: true}, nil
	}
	base, err := parseField(parts[0], b)
	if err != nil {
		return nil, err
	}
	return Step{Base: base, Every: every}, nil
}

func parseRange(text string, b bounds) (Field, error) {
	parts := strings.Split(text, "-")
	if len(parts) != 2 {
		return nil, fieldError(b.name, text, "too many hyphens")
	}
	lo, err := parseValue(parts[0], b)
	if err != nil {
		return nil, err
	}
	hi, err := parseValue(parts[1], b)
	if err != nil {
		return nil, err
	}
	return Range{Lo: lo, Hi: hi}, nil
}

// parseValue returns the (possibly named) integer contained in token.
func parseValue(token string, b bounds) (int, error) {
	if b.names != nil {
		if v, ok := b.names[strings.ToLower(token)]; ok {
			return v, nil
		}
	}
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, fieldError(b.name, token, "failed to parse int from %q", token)
	}
	return v, nil
}

// withName returns a copy of b reporting errors under the given field name.
func (b bounds) withName(name string) bounds {
	b.name = name
	return b
}

// walkField calls fn for f and every field nested inside it.
func walkField(f Field, fn func(Field)) {
	fn(f)
	switch v := f.(type) {
	case List:
		for _, item := range v.Items {
			walkField(item, fn)
		}
	case Step:
		if v.Base != nil {
			walkField(v.Base, fn)
		}
	}
}
