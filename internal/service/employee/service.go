package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/directory"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/employee"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/session"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/repository/postgresql"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	tx           postgresql.Transactor
	employeeRepo employee.EmployeeRepository
	roster       *directory.Roster
	cache        employee.EmployeeCache
	now          func() time.Time
}

// NewEmployeeService wires the service. roster and cache may be nil: without
// a roster every import reports ErrRosterEmpty, without a cache every List
// reads the database.
func NewEmployeeService(
	tx postgresql.Transactor,
	employeeRepo employee.EmployeeRepository,
	roster *directory.Roster,
	cache employee.EmployeeCache,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		tx:           tx,
		employeeRepo: employeeRepo,
		roster:       roster,
		cache:        cache,
		now:          time.Now,
	}
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:        emp.ID,
		Name:      emp.Name,
		UserID:    emp.UserID,
		CreatedAt: emp.CreatedAt.Format(time.RFC3339),
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) (employee.ListEmployeeResponse, error) {
	sess, err := session.FromContext(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	var employees []employee.Employee
	cached := false
	if s.cache != nil {
		employees, cached = s.cache.Get(ctx, sess.ManagerEmail)
	}
	if !cached {
		employees, err = s.employeeRepo.ListByManager(ctx, sess.ManagerEmail)
		if err != nil {
			return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
		}
		if s.cache != nil {
			s.cache.Set(ctx, sess.ManagerEmail, employees)
		}
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	return employee.ListEmployeeResponse{
		TotalCount: len(responses),
		Employees:  responses,
	}, nil
}

// ImportRoster implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ImportRoster(ctx context.Context) (employee.ImportRosterResponse, error) {
	sess, err := session.FromContext(ctx)
	if err != nil {
		return employee.ImportRosterResponse{}, err
	}

	entries := s.roster.For(sess.ManagerName)
	if len(entries) == 0 {
		return employee.ImportRosterResponse{}, employee.ErrRosterEmpty
	}

	createdAt := s.now().UTC()
	employees := make([]employee.Employee, 0, len(entries))
	for _, e := range entries {
		id, err := uuid.NewV7()
		if err != nil {
			return employee.ImportRosterResponse{}, fmt.Errorf("failed to generate id: %w", err)
		}
		employees = append(employees, employee.Employee{
			ID:           id.String(),
			Name:         e.Name,
			UserID:       e.UserID,
			ManagerName:  sess.ManagerName,
			ManagerEmail: sess.ManagerEmail,
			CreatedAt:    createdAt,
		})
	}

	var imported int
	err = s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		existing, err := s.employeeRepo.CountByManager(txCtx, sess.ManagerEmail)
		if err != nil {
			return fmt.Errorf("failed to count employees: %w", err)
		}
		if existing > 0 {
			return employee.ErrAlreadyImported
		}

		imported, err = s.employeeRepo.CreateMany(txCtx, employees)
		if err != nil {
			return fmt.Errorf("failed to insert employees: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.ImportRosterResponse{}, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, sess.ManagerEmail)
	}

	return employee.ImportRosterResponse{Imported: imported}, nil
}
