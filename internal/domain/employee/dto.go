package employee

import (
	"github.com/rosterly/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name string `json:"name"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:     e.ID,
		Name:   e.Name,
		Active: e.Active,
	}
}
