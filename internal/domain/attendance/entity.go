package attendance

import (
	"time"

	"github.com/rosterly/attendance-backend-go/internal/pkg/dateutil"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

// Record is one employee's attendance for one day. Exactly one record exists
// per (EmployeeID, Date); writes overwrite.
type Record struct {
	EmployeeID string
	Date       dateutil.Date
	Status     Status
	Reason     *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}
