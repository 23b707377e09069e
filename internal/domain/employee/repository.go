package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	// List returns employees ordered by (name, id) so iteration order is
	// deterministic; the collector snapshots this order for a session.
	List(ctx context.Context, activeOnly bool) ([]Employee, error)
	SetActive(ctx context.Context, id string, active bool) error
}
