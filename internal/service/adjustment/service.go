package adjustment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/adjustment"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/employee"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/session"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/clock"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/metrics"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/spreadsheet"
	"github.com/google/uuid"
)

type AdjustmentServiceImpl struct {
	adjustmentRepo adjustment.AdjustmentRepository
	employeeRepo   employee.EmployeeRepository
	metrics        *metrics.Metrics
	now            func() time.Time
}

func NewAdjustmentService(
	adjustmentRepo adjustment.AdjustmentRepository,
	employeeRepo employee.EmployeeRepository,
	m *metrics.Metrics,
) adjustment.AdjustmentService {
	return &AdjustmentServiceImpl{
		adjustmentRepo: adjustmentRepo,
		employeeRepo:   employeeRepo,
		metrics:        m,
		now:            time.Now,
	}
}

// Preview implements adjustment.AdjustmentService.
func (s *AdjustmentServiceImpl) Preview(ctx context.Context, req adjustment.PreviewRequest) (adjustment.PreviewResponse, error) {
	draft, err := req.ToDraft()
	if err != nil {
		return adjustment.PreviewResponse{}, err
	}

	warnings := Evaluate(draft)
	s.recordWarnings(warnings, "preview")

	return adjustment.PreviewResponse{Warnings: adjustment.NewWarningResponses(warnings)}, nil
}

// Create implements adjustment.AdjustmentService.
func (s *AdjustmentServiceImpl) Create(ctx context.Context, req adjustment.CreateAdjustmentRequest) (adjustment.AdjustmentResponse, error) {
	sess, err := session.FromContext(ctx)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return adjustment.AdjustmentResponse{}, err
	}
	draft, err := req.Draft()
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return adjustment.AdjustmentResponse{}, fmt.Errorf("invalid date: %w", err)
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return adjustment.AdjustmentResponse{}, adjustment.ErrEmployeeNotFound
		}
		return adjustment.AdjustmentResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	// Another manager's employee is reported the same as a missing one.
	if emp.ManagerEmail != sess.ManagerEmail {
		return adjustment.AdjustmentResponse{}, adjustment.ErrEmployeeNotFound
	}

	id, err := uuid.NewV7()
	if err != nil {
		return adjustment.AdjustmentResponse{}, fmt.Errorf("failed to generate id: %w", err)
	}

	record := adjustment.Adjustment{
		ID:           id.String(),
		EmployeeID:   emp.ID,
		ManagerName:  sess.ManagerName,
		ManagerEmail: sess.ManagerEmail,
		Date:         date,
		EntryTime:    *draft.EntryTime,
		BreakOutTime: draft.BreakOutTime,
		BreakInTime:  draft.BreakInTime,
		ExitTime:     *draft.ExitTime,
		Reason:       adjustment.Reason(req.Reason),
		Note:         req.Note,
		CreatedAt:    s.now().UTC(),
	}

	saved, err := s.adjustmentRepo.Create(ctx, record)
	if err != nil {
		slog.Error("adjustment insert failed", "employee_id", emp.ID, "error", err)
		return adjustment.AdjustmentResponse{}, fmt.Errorf("%w: %w", adjustment.ErrSaveFailed, err)
	}
	saved.EmployeeName = &emp.Name

	warnings := Evaluate(saved.Draft())
	s.metrics.IncAdjustment(string(saved.Reason))
	s.recordWarnings(warnings, "create")

	return mapAdjustmentToResponse(saved, warnings), nil
}

// Get implements adjustment.AdjustmentService.
func (s *AdjustmentServiceImpl) Get(ctx context.Context, id string) (adjustment.AdjustmentResponse, error) {
	sess, err := session.FromContext(ctx)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	record, err := s.adjustmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, adjustment.ErrAdjustmentNotFound) {
			return adjustment.AdjustmentResponse{}, err
		}
		return adjustment.AdjustmentResponse{}, fmt.Errorf("failed to get adjustment: %w", err)
	}
	if record.ManagerEmail != sess.ManagerEmail {
		return adjustment.AdjustmentResponse{}, adjustment.ErrAdjustmentNotFound
	}

	return mapAdjustmentToResponse(record, Evaluate(record.Draft())), nil
}

// ListRecent implements adjustment.AdjustmentService.
func (s *AdjustmentServiceImpl) ListRecent(ctx context.Context, filter adjustment.AdjustmentFilter) (adjustment.ListAdjustmentResponse, error) {
	sess, err := session.FromContext(ctx)
	if err != nil {
		return adjustment.ListAdjustmentResponse{}, err
	}
	if err := filter.Validate(); err != nil {
		return adjustment.ListAdjustmentResponse{}, err
	}

	since := s.now().UTC().AddDate(0, 0, -filter.Days)
	records, err := s.adjustmentRepo.ListCreatedSince(ctx, sess.ManagerEmail, since, filter.Search)
	if err != nil {
		return adjustment.ListAdjustmentResponse{}, fmt.Errorf("failed to list adjustments: %w", err)
	}

	out := make([]adjustment.AdjustmentResponse, 0, len(records))
	for _, r := range records {
		out = append(out, mapAdjustmentToResponse(r, Evaluate(r.Draft())))
	}

	return adjustment.ListAdjustmentResponse{
		TotalCount:  len(out),
		Days:        filter.Days,
		Adjustments: out,
	}, nil
}

var exportColumns = []string{
	"Date", "Employee", "Entry", "Break out", "Break in", "Exit", "Reason", "Note", "Created at", "Warnings",
}

const emptyClock = "--:--"

// ExportRecent implements adjustment.AdjustmentService.
func (s *AdjustmentServiceImpl) ExportRecent(ctx context.Context, filter adjustment.AdjustmentFilter) ([]byte, error) {
	list, err := s.ListRecent(ctx, filter)
	if err != nil {
		return nil, err
	}

	w := spreadsheet.NewWriter()
	defer w.Close()

	if err := w.AddSheet("Adjustments"); err != nil {
		return nil, err
	}
	if err := w.WriteHeader(exportColumns); err != nil {
		return nil, err
	}

	for _, a := range list.Adjustments {
		employeeName := ""
		if a.EmployeeName != nil {
			employeeName = *a.EmployeeName
		}
		note := ""
		if a.Note != nil {
			note = *a.Note
		}
		codes := make([]string, 0, len(a.Warnings))
		for _, wr := range a.Warnings {
			codes = append(codes, wr.Code)
		}

		row := []interface{}{
			a.Date,
			employeeName,
			a.EntryTime,
			orEmptyClock(a.BreakOutTime),
			orEmptyClock(a.BreakInTime),
			a.ExitTime,
			a.ReasonLabel,
			note,
			a.CreatedAt,
			strings.Join(codes, "; "),
		}
		if err := w.WriteRow(row); err != nil {
			return nil, fmt.Errorf("failed to write export row: %w", err)
		}
	}

	return w.Bytes()
}

func (s *AdjustmentServiceImpl) recordWarnings(warnings []adjustment.Warning, source string) {
	for _, w := range warnings {
		s.metrics.IncWarning(string(w.Code), source)
	}
}

func orEmptyClock(s *string) string {
	if s == nil {
		return emptyClock
	}
	return *s
}

func mapAdjustmentToResponse(a adjustment.Adjustment, warnings []adjustment.Warning) adjustment.AdjustmentResponse {
	return adjustment.AdjustmentResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		ManagerName:  a.ManagerName,
		ManagerEmail: a.ManagerEmail,
		Date:         a.Date.Format("2006-01-02"),
		EntryTime:    a.EntryTime.String(),
		BreakOutTime: clock.StringPtr(a.BreakOutTime),
		BreakInTime:  clock.StringPtr(a.BreakInTime),
		ExitTime:     a.ExitTime.String(),
		Reason:       string(a.Reason),
		ReasonLabel:  a.Reason.Label(),
		Note:         a.Note,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
		Warnings:     adjustment.NewWarningResponses(warnings),
	}
}
