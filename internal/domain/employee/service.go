package employee

import (
	"context"
)

// EmployeeService defines business logic for the employee registry
type EmployeeService interface {
	// Add creates an active employee; duplicate names are allowed
	Add(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// List returns employees in stable (name, id) order
	List(ctx context.Context, activeOnly bool) ([]EmployeeResponse, error)

	// Remove soft-deletes an employee; attendance history is preserved
	Remove(ctx context.Context, id string) error
}
