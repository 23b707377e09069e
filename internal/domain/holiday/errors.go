package holiday

import "errors"

var (
	ErrHolidayExists   = errors.New("a holiday already exists on that date")
	ErrHolidayNotFound = errors.New("no holiday found on that date")
)
