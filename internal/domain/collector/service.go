package collector

import (
	"context"

	"github.com/rosterly/attendance-backend-go/internal/domain/attendance"
	"github.com/rosterly/attendance-backend-go/internal/pkg/dateutil"
)

// CollectorService walks the admin through one present/absent decision per
// active employee. At most one session per admin exists at a time; the
// pending batch is persisted only when the last employee has been processed.
type CollectorService interface {
	// Start opens a session for date, snapshotting the active employees.
	Start(ctx context.Context, adminID string, date dateutil.Date) (StepResponse, error)

	// Status re-issues the current prompt without advancing.
	Status(ctx context.Context, adminID string) (StepResponse, error)

	// Decide records present/absent for the current employee.
	Decide(ctx context.Context, adminID string, status attendance.Status) (StepResponse, error)

	// Reason supplies the free-text reason after an absent decision.
	Reason(ctx context.Context, adminID string, text string) (StepResponse, error)

	// Cancel abandons the session; nothing is written.
	Cancel(ctx context.Context, adminID string) error

	// SweepExpired cancels sessions idle past the inactivity timeout.
	SweepExpired(ctx context.Context) error
}
