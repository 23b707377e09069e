package holiday

import (
	"time"

	"github.com/rosterly/attendance-backend-go/internal/pkg/dateutil"
)

type Holiday struct {
	Date        dateutil.Date
	Description string
	CreatedAt   time.Time
}
