package cronnext

import (
	"errors"
	"strings"
	"testing"
)

func TestParseScheduleErrors(t *testing.T) {
	tests := []struct{ expr, err string }{
		{"", "empty expression"},
		{"   ", "empty expression"},
		{"* * *", "expected 5 fields: minute hour day month dayOfWeek, found 3"},
		{"* * * * * *", "expected 5 fields: minute hour day month dayOfWeek, found 6"},
		{"@unrecognized", "found 1"},
		{"@every 5m", "found 2"},
		{" @daily", "found 1"},
		{"@hourly\n", "found 1"},
		{"xyz * * * *", "failed to parse int from"},
		{"* * L * L5", "failed to parse int from"},
		{"*/0 * * * *", "step must be a positive number"},
		{"* * * L *", `failed to parse int from "L" in month field`},
		{"* * * * 1#2#3", "too many '#'"},
		{"1-2-3 * * * *", "too many hyphens"},
		{"*/2/3 * * * *", "too many slashes"},
		{"TZ=UTC * * * * *", "found 6"},
	}
	for _, c := range tests {
		actual, err := Parse(c.expr)
		if err == nil || !strings.Contains(err.Error(), c.err) {
			t.Errorf("%q => expected %v, got %v", c.expr, c.err, err)
		}
		if actual != nil {
			t.Errorf("%q => expected nil expression, got %v", c.expr, actual)
		}
		if !errors.Is(err, ErrFormat) {
			t.Errorf("%q => expected errors.Is(err, ErrFormat)", c.expr)
		}
	}
}

func TestParseErrorNamesFieldAndExpression(t *testing.T) {
	_, err := Parse("0 25x * * *")
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FormatError, got %T", err)
	}
	if fe.Field != "hour" || fe.Value != "25x" || fe.Expression != "0 25x * * *" {
		t.Errorf("unexpected error fields: %+v", fe)
	}
	want := `failed to parse int from "25x" in hour field: "25x" (expression "0 25x * * *")`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestParseSpecLengthLimit(t *testing.T) {
	long := strings.Repeat("1,", MaxExpressionLength) + "1 * * * *"
	_, err := Parse(long)
	if err == nil || !strings.Contains(err.Error(), "expression too long") {
		t.Errorf("expected length error, got %v", err)
	}
	if !errors.Is(err, ErrFormat) {
		t.Errorf("expected errors.Is(err, ErrFormat)")
	}

	// Just under the limit is accepted.
	ok := strings.Repeat("1,", (MaxExpressionLength-len("1 * * * *"))/2) + "1 * * * *"
	if _, err := Parse(ok); err != nil {
		t.Errorf("expected expression of length %d to parse, got %v", len(ok), err)
	}
}

func TestParseSchedule(t *testing.T) {
	entries := []struct {
		expr     string
		expected string
		alias    string
	}{
		{"5 * * * *", "5 * * * *", ""},
		{"  5   *  * * *  ", "5 * * * *", ""},
		{"5\t*\t*\t*\t*", "5 * * * *", ""},
		{"0 0 ? * MON", "0 0 ? * 1", ""},
		{"0 22 * JAN-MAR FRI", "0 22 * 1-3 5", ""},
		{"*/15 1-10/3 L * 5L", "*/15 1-10/3 L * 5L", ""},
		{"0 8 LW * FRI#3", "0 8 LW * 5#3", ""},
		{"0 0 15W 1,7 *", "0 0 15W 1,7 *", ""},
		{"@yearly", "0 0 1 1 *", "@yearly"},
		{"@annually", "0 0 1 1 *", "@annually"},
		{"@monthly", "0 0 1 * *", "@monthly"},
		{"@weekly", "0 0 * * 0", "@weekly"},
		{"@daily", "0 0 * * *", "@daily"},
		{"@midnight", "0 0 * * *", "@midnight"},
		{"@hourly", "0 * * * *", "@hourly"},
		{"@HOURLY", "0 * * * *", "@hourly"},
		{"@Daily", "0 0 * * *", "@daily"},
	}

	for _, c := range entries {
		e, err := Parse(c.expr)
		if err != nil {
			t.Errorf("%q => unexpected error %v", c.expr, err)
			continue
		}
		if e.String() != c.expected {
			t.Errorf("%q => expected %q, got %q", c.expr, c.expected, e.String())
		}
		if e.Alias() != c.alias {
			t.Errorf("%q => expected alias %q, got %q", c.expr, c.alias, e.Alias())
		}
		if e.Source() != c.expr {
			t.Errorf("%q => Source() = %q", c.expr, e.Source())
		}
	}
}

func TestParseDayWildcards(t *testing.T) {
	tests := []struct {
		expr     string
		dom, dow bool
	}{
		{"* * * * *", true, true},
		{"* * ? * ?", true, true},
		{"* * 1 * *", false, true},
		{"* * * * 1", true, false},
		{"* * */1 * */1", false, false},
		{"* * 1-31 * 0-6", false, false},
	}
	for _, tt := range tests {
		e := MustParse(tt.expr)
		if e.domWildcard != tt.dom || e.dowWildcard != tt.dow {
			t.Errorf("%s => wildcards (%v, %v), want (%v, %v)",
				tt.expr, e.domWildcard, e.dowWildcard, tt.dom, tt.dow)
		}
	}
}

func TestBits(t *testing.T) {
	e := MustParse("*/20 0-2 * 1,12 *")
	if e.minuteBits != 1<<0|1<<20|1<<40 {
		t.Errorf("minute bits = %b", e.minuteBits)
	}
	if e.hourBits != 1<<0|1<<1|1<<2 {
		t.Errorf("hour bits = %b", e.hourBits)
	}
	if e.monthBits != 1<<1|1<<12 {
		t.Errorf("month bits = %b", e.monthBits)
	}

	// Values that do not fit a bit set are dropped rather than wrapping.
	e = MustParse("75 * * * *")
	if e.minuteBits != 0 {
		t.Errorf("expected no minute bits, got %b", e.minuteBits)
	}
}

func TestExpandAlias(t *testing.T) {
	if got, ok := ExpandAlias("@Weekly"); !ok || got != "0 0 * * 0" {
		t.Errorf("ExpandAlias(@Weekly) = %q, %v", got, ok)
	}
	if got, ok := ExpandAlias("@weekly "); ok || got != "@weekly " {
		t.Errorf("ExpandAlias matched a partial name: %q, %v", got, ok)
	}
	if got, ok := ExpandAlias("0 0 * * *"); ok || got != "0 0 * * *" {
		t.Errorf("ExpandAlias(plain) = %q, %v", got, ok)
	}
}

func TestAliasesReturnsCopy(t *testing.T) {
	table := Aliases()
	if len(table) != 7 {
		t.Errorf("expected 7 aliases, got %d", len(table))
	}
	table["@daily"] = "1 1 1 1 1"
	if got, _ := ExpandAlias("@daily"); got != "0 0 * * *" {
		t.Errorf("modifying the copy changed the table: %q", got)
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if err, ok := r.(error); !ok || !errors.Is(err, ErrFormat) {
			t.Errorf("expected a format error, got %v", r)
		}
	}()
	MustParse("* * *")
}
