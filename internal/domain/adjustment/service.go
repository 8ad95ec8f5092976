package adjustment

import (
	"context"
)

type AdjustmentService interface {
	// Preview runs the advisory checks on a draft without persisting anything.
	Preview(ctx context.Context, req PreviewRequest) (PreviewResponse, error)

	// Create persists an adjustment for the signed-in manager and returns it with its warnings.
	Create(ctx context.Context, req CreateAdjustmentRequest) (AdjustmentResponse, error)

	// Get retrieves a single adjustment by ID.
	Get(ctx context.Context, id string) (AdjustmentResponse, error)

	// ListRecent lists adjustments created within the filter window.
	ListRecent(ctx context.Context, filter AdjustmentFilter) (ListAdjustmentResponse, error)

	// ExportRecent writes the same list as ListRecent to a spreadsheet.
	ExportRecent(ctx context.Context, filter AdjustmentFilter) ([]byte, error)
}
