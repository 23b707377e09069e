package dateutil

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		want  Date
		ok    bool
	}{
		{"15-07-2025", Date{2025, time.July, 15}, true},
		{"01-01-2000", Date{2000, time.January, 1}, true},
		{"29-02-2024", Date{2024, time.February, 29}, true},
		{"29-02-2025", Date{}, false}, // not a leap year
		{"32-01-2025", Date{}, false},
		{"15-13-2025", Date{}, false},
		{"2025-07-15", Date{}, false},
		{"15/07/2025", Date{}, false},
		{"5-7-2025", Date{}, false}, // must be zero-padded
		{"", Date{}, false},
	}
	for _, c := range cases {
		got, err := Parse(c.input)
		if c.ok {
			if err != nil {
				t.Errorf("Parse(%q) error: %v", c.input, err)
				continue
			}
			if got != c.want {
				t.Errorf("Parse(%q) = %v, want %v", c.input, got, c.want)
			}
		} else if err == nil {
			t.Errorf("Parse(%q) = %v, want error", c.input, got)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	d := Date{2025, time.July, 5}
	if got := d.String(); got != "05-07-2025" {
		t.Errorf("String() = %q, want %q", got, "05-07-2025")
	}
	parsed, err := Parse(d.String())
	if err != nil {
		t.Fatalf("Parse(String()) error: %v", err)
	}
	if parsed != d {
		t.Errorf("round trip = %v, want %v", parsed, d)
	}
	if got := d.Long(); got != "05-Jul-2025" {
		t.Errorf("Long() = %q, want %q", got, "05-Jul-2025")
	}
}

func TestOrdering(t *testing.T) {
	a := Date{2025, time.July, 15}
	b := Date{2025, time.July, 16}
	if !a.Before(b) || b.Before(a) {
		t.Errorf("expected %v before %v", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("expected %v after %v", b, a)
	}
	if a.Before(a) || a.After(a) {
		t.Errorf("date should not order against itself")
	}
}

func TestRange(t *testing.T) {
	start := Date{2025, time.July, 30}
	end := Date{2025, time.August, 2}
	got := Range(start, end)
	want := []Date{
		{2025, time.July, 30},
		{2025, time.July, 31},
		{2025, time.August, 1},
		{2025, time.August, 2},
	}
	if len(got) != len(want) {
		t.Fatalf("Range returned %d dates, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Range[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if r := Range(end, start); r != nil {
		t.Errorf("Range with start after end = %v, want nil", r)
	}
	if r := Range(start, start); len(r) != 1 || r[0] != start {
		t.Errorf("single-day Range = %v", r)
	}
}

func TestLastNDays(t *testing.T) {
	end := Date{2025, time.July, 20}
	start, gotEnd := LastNDays(end, 7)
	if gotEnd != end {
		t.Errorf("end = %v, want %v", gotEnd, end)
	}
	if want := (Date{2025, time.July, 14}); start != want {
		t.Errorf("start = %v, want %v", start, want)
	}
	if got := len(Range(start, gotEnd)); got != 7 {
		t.Errorf("range covers %d days, want 7", got)
	}
}

func TestMonthOf(t *testing.T) {
	cases := []struct {
		in          Date
		first, last Date
	}{
		{Date{2025, time.July, 15}, Date{2025, time.July, 1}, Date{2025, time.July, 31}},
		{Date{2024, time.February, 10}, Date{2024, time.February, 1}, Date{2024, time.February, 29}},
		{Date{2025, time.February, 10}, Date{2025, time.February, 1}, Date{2025, time.February, 28}},
		{Date{2025, time.December, 31}, Date{2025, time.December, 1}, Date{2025, time.December, 31}},
	}
	for _, c := range cases {
		first, last := MonthOf(c.in)
		if first != c.first || last != c.last {
			t.Errorf("MonthOf(%v) = %v..%v, want %v..%v", c.in, first, last, c.first, c.last)
		}
	}
}

func TestAddDaysAcrossBoundaries(t *testing.T) {
	d := Date{2024, time.December, 31}
	if got := d.AddDays(1); got != (Date{2025, time.January, 1}) {
		t.Errorf("AddDays(1) = %v", got)
	}
	if got := d.AddDays(-1); got != (Date{2024, time.December, 30}) {
		t.Errorf("AddDays(-1) = %v", got)
	}
}
