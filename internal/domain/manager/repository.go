package manager

import "context"

type ManagerRepository interface {
	GetByID(ctx context.Context, id string) (Manager, error)
	GetByEmail(ctx context.Context, email string) (Manager, error)
	// Upsert creates the manager or replaces its name and PIN hash, keyed by email.
	Upsert(ctx context.Context, m Manager) (Manager, error)
}
