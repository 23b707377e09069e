package holiday

import (
	"github.com/rosterly/attendance-backend-go/internal/pkg/dateutil"
	"github.com/rosterly/attendance-backend-go/internal/pkg/validator"
)

type MarkHolidayRequest struct {
	Date        dateutil.Date
	Description string
}

func (r MarkHolidayRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Date.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

func ToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		Date:        h.Date.String(),
		Description: h.Description,
	}
}
