package attendance

import (
	"context"

	"github.com/rosterly/attendance-backend-go/internal/pkg/dateutil"
)

type RecordFilter struct {
	EmployeeID *string
	StartDate  *dateutil.Date
	EndDate    *dateutil.Date
	Status     *Status
	// SortDesc orders by date descending when set; default is ascending.
	SortDesc bool
	// Limit caps the result set; zero means no limit.
	Limit int
}

type AttendanceRepository interface {
	// Upsert writes the record for (EmployeeID, Date), overwriting any
	// existing record for that key.
	Upsert(ctx context.Context, rec Record) error
	Query(ctx context.Context, filter RecordFilter) ([]Record, error)
}
