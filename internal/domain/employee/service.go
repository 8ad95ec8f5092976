package employee

import "context"

type EmployeeService interface {
	// List returns the signed-in manager's employees ordered by name.
	List(ctx context.Context) (ListEmployeeResponse, error)

	// ImportRoster inserts the signed-in manager's roster entries.
	ImportRoster(ctx context.Context) (ImportRosterResponse, error)
}
