package response

import (
	"errors"
	"net/http"

	"github.com/rosterly/attendance-backend-go/internal/domain/attendance"
	"github.com/rosterly/attendance-backend-go/internal/domain/auth"
	"github.com/rosterly/attendance-backend-go/internal/domain/collector"
	"github.com/rosterly/attendance-backend-go/internal/domain/employee"
	"github.com/rosterly/attendance-backend-go/internal/domain/holiday"
	"github.com/rosterly/attendance-backend-go/internal/pkg/dateutil"
	"github.com/rosterly/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Administrator privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Conflict(w, "Employee is inactive")
	case errors.Is(err, employee.ErrEmployeeAlreadyInactive):
		Conflict(w, "Employee is already inactive")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "Date is already marked as a holiday")
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Collector session errors
	case errors.Is(err, collector.ErrSessionInProgress):
		Conflict(w, "Attendance collection already in progress")
	case errors.Is(err, collector.ErrNoActiveSession):
		NotFound(w, "No attendance collection in progress")
	case errors.Is(err, collector.ErrDecisionNotExpected):
		Conflict(w, "A decision is not expected right now")
	case errors.Is(err, collector.ErrReasonNotExpected):
		Conflict(w, "A reason is not expected right now")
	case errors.Is(err, collector.ErrNoActiveEmployees):
		BadRequest(w, "No active employees to collect attendance for", nil)

	// Malformed dates
	case errors.Is(err, dateutil.ErrInvalidFormat):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
