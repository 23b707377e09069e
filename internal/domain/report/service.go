package report

import (
	"context"

	"github.com/rosterly/attendance-backend-go/internal/pkg/dateutil"
)

// ReportService is the read side: it derives statistics from attendance
// records, the employee registry and the holiday calendar, and never writes.
type ReportService interface {
	// Daily reports one date: per-employee status plus present/absent counts.
	Daily(ctx context.Context, date dateutil.Date) (DailyReport, error)

	// Period tallies every working day (non-holiday date) in the inclusive
	// range. For each employee present+absent+unmarked equals the working
	// day count.
	Period(ctx context.Context, start, end dateutil.Date) (PeriodReport, error)

	// Employee restricts the period tally to one employee; inactive
	// employees remain reportable.
	Employee(ctx context.Context, employeeID string, start, end dateutil.Date) (EmployeeReport, error)
}
