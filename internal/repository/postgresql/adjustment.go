package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/adjustment"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/clock"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type adjustmentRepositoryImpl struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) adjustment.AdjustmentRepository {
	return &adjustmentRepositoryImpl{db: db}
}

// Times travel as canonical HH:MM text so no driver time zone handling is involved.
const adjustmentSelect = `
	SELECT a.id, a.employee_id, a.manager_name, a.manager_email, a.date,
		to_char(a.entry_time, 'HH24:MI'),
		to_char(a.break_out_time, 'HH24:MI'),
		to_char(a.break_in_time, 'HH24:MI'),
		to_char(a.exit_time, 'HH24:MI'),
		a.reason, a.note, a.created_at, e.name
	FROM adjustments a
	LEFT JOIN employees e ON e.id = a.employee_id
`

func scanAdjustment(row pgx.Row) (adjustment.Adjustment, error) {
	var (
		a                 adjustment.Adjustment
		entry, exit       string
		breakOut, breakIn *string
		reason            string
	)
	err := row.Scan(
		&a.ID,
		&a.EmployeeID,
		&a.ManagerName,
		&a.ManagerEmail,
		&a.Date,
		&entry,
		&breakOut,
		&breakIn,
		&exit,
		&reason,
		&a.Note,
		&a.CreatedAt,
		&a.EmployeeName,
	)
	if err != nil {
		return adjustment.Adjustment{}, err
	}

	if a.EntryTime, err = clock.Parse(entry); err != nil {
		return adjustment.Adjustment{}, fmt.Errorf("entry_time %q: %w", entry, err)
	}
	if a.ExitTime, err = clock.Parse(exit); err != nil {
		return adjustment.Adjustment{}, fmt.Errorf("exit_time %q: %w", exit, err)
	}
	if a.BreakOutTime, err = clock.ParsePtr(breakOut); err != nil {
		return adjustment.Adjustment{}, fmt.Errorf("break_out_time: %w", err)
	}
	if a.BreakInTime, err = clock.ParsePtr(breakIn); err != nil {
		return adjustment.Adjustment{}, fmt.Errorf("break_in_time: %w", err)
	}
	a.Reason = adjustment.Reason(reason)
	return a, nil
}

// Create implements adjustment.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) Create(ctx context.Context, adj adjustment.Adjustment) (adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO adjustments (
			id, employee_id, manager_name, manager_email, date,
			entry_time, break_out_time, break_in_time, exit_time,
			reason, note, created_at
		) VALUES ($1, $2, $3, $4, $5, $6::time, $7::time, $8::time, $9::time, $10, $11, $12)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		adj.ID,
		adj.EmployeeID,
		adj.ManagerName,
		adj.ManagerEmail,
		adj.Date,
		adj.EntryTime.String(),
		clock.StringPtr(adj.BreakOutTime),
		clock.StringPtr(adj.BreakInTime),
		adj.ExitTime.String(),
		string(adj.Reason),
		adj.Note,
		adj.CreatedAt,
	).Scan(&adj.ID, &adj.CreatedAt)
	if err != nil {
		return adjustment.Adjustment{}, err
	}
	return adj, nil
}

// GetByID implements adjustment.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) GetByID(ctx context.Context, id string) (adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAdjustment(q.QueryRow(ctx, adjustmentSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return adjustment.Adjustment{}, adjustment.ErrAdjustmentNotFound
		}
		return adjustment.Adjustment{}, err
	}
	return a, nil
}

// ListCreatedSince implements adjustment.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) ListCreatedSince(ctx context.Context, managerEmail string, since time.Time, search *string) ([]adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := adjustmentSelect + `
		WHERE a.manager_email = $1
		  AND a.created_at >= $2
		  AND ($3::text IS NULL OR e.name ILIKE '%' || $3 || '%')
		ORDER BY a.created_at DESC, a.id DESC
	`

	rows, err := q.Query(ctx, query, managerEmail, since, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	adjustments := make([]adjustment.Adjustment, 0)
	for rows.Next() {
		a, err := scanAdjustment(rows)
		if err != nil {
			return nil, err
		}
		adjustments = append(adjustments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return adjustments, nil
}

// CountCreatedSince implements adjustment.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) CountCreatedSince(ctx context.Context, managerEmail string, since time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `
		SELECT COUNT(*) FROM adjustments
		WHERE manager_email = $1 AND created_at >= $2
	`, managerEmail, since).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
