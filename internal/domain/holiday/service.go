package holiday

import (
	"context"

	"github.com/rosterly/attendance-backend-go/internal/pkg/dateutil"
)

// HolidayService manages the calendar of non-working days
type HolidayService interface {
	// Add marks a date as a holiday; at most one holiday per date
	Add(ctx context.Context, req MarkHolidayRequest) (HolidayResponse, error)

	// Remove unmarks a holiday
	Remove(ctx context.Context, date dateutil.Date) error

	IsHoliday(ctx context.Context, date dateutil.Date) (bool, error)

	// List returns all holidays ordered by date
	List(ctx context.Context) ([]HolidayResponse, error)
}
