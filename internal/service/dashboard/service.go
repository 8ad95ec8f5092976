package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/adjustment"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/dashboard"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/employee"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/session"
	"golang.org/x/sync/errgroup"
)

const recentWindowDays = 30

type DashboardServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	adjustmentRepo adjustment.AdjustmentRepository
	now            func() time.Time
}

func NewDashboardService(employeeRepo employee.EmployeeRepository, adjustmentRepo adjustment.AdjustmentRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		employeeRepo:   employeeRepo,
		adjustmentRepo: adjustmentRepo,
		now:            time.Now,
	}
}

// GetDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (dashboard.DashboardResponse, error) {
	sess, err := session.FromContext(ctx)
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}

	since := s.now().UTC().AddDate(0, 0, -recentWindowDays)

	var employeeCount, adjustmentCount int64
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.employeeRepo.CountByManager(gCtx, sess.ManagerEmail)
		if err != nil {
			return fmt.Errorf("failed to count employees: %w", err)
		}
		employeeCount = n
		return nil
	})

	g.Go(func() error {
		n, err := s.adjustmentRepo.CountCreatedSince(gCtx, sess.ManagerEmail, since)
		if err != nil {
			return fmt.Errorf("failed to count adjustments: %w", err)
		}
		adjustmentCount = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.DashboardResponse{}, err
	}

	return dashboard.DashboardResponse{
		ManagerName:        sess.ManagerName,
		EmployeeCount:      employeeCount,
		AdjustmentCount30d: adjustmentCount,
	}, nil
}
