package dateutil

import (
	"errors"
	"regexp"
	"time"
)

// TextLayout is the wire format for dates: DD-MM-YYYY.
const TextLayout = "02-01-2006"

// longLayout is the display format used in report headers, e.g. 15-Jul-2025.
const longLayout = "02-Jan-2006"

var textRegex = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)

var ErrInvalidFormat = errors.New("invalid date format, use DD-MM-YYYY")

// Date is a calendar day with no time component. Values are comparable and
// usable as map keys. The zero value is not a valid date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func New(year int, month time.Month, day int) Date {
	// Normalize through time.Date so e.g. 32-01 rolls over consistently.
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return FromTime(t)
}

func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func Today() Date {
	return FromTime(time.Now())
}

// Parse parses DD-MM-YYYY text into a Date. Input must be zero-padded and
// name a real calendar day.
func Parse(s string) (Date, error) {
	if !textRegex.MatchString(s) {
		return Date{}, ErrInvalidFormat
	}
	t, err := time.Parse(TextLayout, s)
	if err != nil {
		return Date{}, ErrInvalidFormat
	}
	return FromTime(t), nil
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return d.Time().Format(TextLayout)
}

// Long returns the DD-Mon-YYYY display form.
func (d Date) Long() string {
	return d.Time().Format(longLayout)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) Before(o Date) bool {
	return d.Time().Before(o.Time())
}

func (d Date) After(o Date) bool {
	return d.Time().After(o.Time())
}

func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// Range returns every date from start through end inclusive, in calendar
// order. Returns nil when start is after end.
func Range(start, end Date) []Date {
	if start.After(end) {
		return nil
	}
	var dates []Date
	for d := start; !d.After(end); d = d.AddDays(1) {
		dates = append(dates, d)
	}
	return dates
}

// LastNDays returns the inclusive range of the n days ending at end.
func LastNDays(end Date, n int) (Date, Date) {
	return end.AddDays(-(n - 1)), end
}

// MonthOf returns the first and last day of the calendar month containing d.
func MonthOf(d Date) (Date, Date) {
	first := Date{Year: d.Year, Month: d.Month, Day: 1}
	last := FromTime(first.Time().AddDate(0, 1, -1))
	return first, last
}
