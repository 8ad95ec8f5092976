package dashboard

import "context"

type DashboardService interface {
	// GetDashboard summarizes the signed-in manager's team and recent adjustments.
	GetDashboard(ctx context.Context) (DashboardResponse, error)
}
