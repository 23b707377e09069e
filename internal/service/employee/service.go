package employee

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rosterly/attendance-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// Add implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Add(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		ID:     uuid.New().String(),
		Name:   req.Name,
		Active: true,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.ToResponse(created), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, activeOnly bool) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}

// Remove implements employee.EmployeeService. The employee is soft-deleted:
// attendance history stays queryable through the report service.
func (s *EmployeeServiceImpl) Remove(ctx context.Context, id string) error {
	existing, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !existing.Active {
		return employee.ErrEmployeeAlreadyInactive
	}

	if err := s.employeeRepo.SetActive(ctx, id, false); err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	return nil
}
