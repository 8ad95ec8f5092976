package adjustment

import (
	"context"
	"time"
)

type AdjustmentRepository interface {
	// Create inserts a new adjustment and returns it with generated fields set.
	Create(ctx context.Context, adj Adjustment) (Adjustment, error)

	// GetByID retrieves one adjustment joined with its employee name.
	GetByID(ctx context.Context, id string) (Adjustment, error)

	// ListCreatedSince returns the manager's adjustments created at or after since, newest first.
	// A non-nil search keeps only rows whose employee name contains it, ignoring case.
	ListCreatedSince(ctx context.Context, managerEmail string, since time.Time, search *string) ([]Adjustment, error)

	// CountCreatedSince counts the manager's adjustments created at or after since.
	CountCreatedSince(ctx context.Context, managerEmail string, since time.Time) (int64, error)
}
