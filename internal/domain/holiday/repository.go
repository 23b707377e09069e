package holiday

import (
	"context"

	"github.com/rosterly/attendance-backend-go/internal/pkg/dateutil"
)

type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) error
	Delete(ctx context.Context, date dateutil.Date) error
	Exists(ctx context.Context, date dateutil.Date) (bool, error)
	List(ctx context.Context) ([]Holiday, error)
	ListRange(ctx context.Context, start, end dateutil.Date) ([]Holiday, error)
}
