package attendance

import (
	"github.com/rosterly/attendance-backend-go/internal/pkg/dateutil"
	"github.com/rosterly/attendance-backend-go/internal/pkg/validator"
)

type MultidayAbsenceRequest struct {
	EmployeeID string
	StartDate  dateutil.Date
	EndDate    dateutil.Date
	Reason     string
}

func (r MultidayAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee id is required"})
	}
	if r.StartDate.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start date is required"})
	}
	if r.EndDate.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end date is required"})
	}
	if !r.StartDate.IsZero() && !r.EndDate.IsZero() && r.StartDate.After(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start date must be before end date"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MultidayAbsenceResponse struct {
	EmployeeID      string `json:"employee_id"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	DaysMarked      int    `json:"days_marked"`
	HolidaysSkipped int    `json:"holidays_skipped"`
}
