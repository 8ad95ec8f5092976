package postgresql

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/employee"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, user_id, manager_name, manager_email, created_at
		FROM employees
		WHERE id = $1
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID,
		&e.Name,
		&e.UserID,
		&e.ManagerName,
		&e.ManagerEmail,
		&e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

// ListByManager implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByManager(ctx context.Context, managerEmail string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, user_id, manager_name, manager_email, created_at
		FROM employees
		WHERE manager_email = $1
		ORDER BY name ASC, id ASC
	`

	rows, err := q.Query(ctx, query, managerEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(
			&e.ID,
			&e.Name,
			&e.UserID,
			&e.ManagerName,
			&e.ManagerEmail,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}

// CountByManager implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) CountByManager(ctx context.Context, managerEmail string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE manager_email = $1`, managerEmail).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CreateMany implements employee.EmployeeRepository. COPY is all-or-nothing.
func (r *employeeRepositoryImpl) CreateMany(ctx context.Context, employees []employee.Employee) (int, error) {
	if len(employees) == 0 {
		return 0, nil
	}
	q := GetQuerier(ctx, r.db)

	rows := make([][]interface{}, 0, len(employees))
	for _, e := range employees {
		// COPY uses the binary protocol, which wants the uuid as bytes.
		id, err := uuid.Parse(e.ID)
		if err != nil {
			return 0, err
		}
		rows = append(rows, []interface{}{id, e.Name, e.UserID, e.ManagerName, e.ManagerEmail, e.CreatedAt})
	}

	n, err := q.CopyFrom(
		ctx,
		pgx.Identifier{"employees"},
		[]string{"id", "name", "user_id", "manager_name", "manager_email", "created_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
