package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	// ListByManager returns the manager's employees ordered by name.
	ListByManager(ctx context.Context, managerEmail string) ([]Employee, error)
	CountByManager(ctx context.Context, managerEmail string) (int64, error)
	// CreateMany inserts all employees or none.
	CreateMany(ctx context.Context, employees []Employee) (int, error)
}

// EmployeeCache holds a manager's employee list between imports.
type EmployeeCache interface {
	Get(ctx context.Context, managerEmail string) ([]Employee, bool)
	Set(ctx context.Context, managerEmail string, employees []Employee)
	Invalidate(ctx context.Context, managerEmail string)
}
