package postgresql

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/manager"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type managerRepositoryImpl struct {
	db *database.DB
}

func NewManagerRepository(db *database.DB) manager.ManagerRepository {
	return &managerRepositoryImpl{db: db}
}

const managerColumns = `id, name, email, pin_hash, created_at, updated_at`

func scanManager(row pgx.Row) (manager.Manager, error) {
	var m manager.Manager
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.PINHash, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return manager.Manager{}, manager.ErrManagerNotFound
		}
		return manager.Manager{}, err
	}
	return m, nil
}

// GetByID implements manager.ManagerRepository.
func (r *managerRepositoryImpl) GetByID(ctx context.Context, id string) (manager.Manager, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + managerColumns + ` FROM managers WHERE id = $1`
	return scanManager(q.QueryRow(ctx, query, id))
}

// GetByEmail implements manager.ManagerRepository.
func (r *managerRepositoryImpl) GetByEmail(ctx context.Context, email string) (manager.Manager, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + managerColumns + ` FROM managers WHERE email = $1`
	return scanManager(q.QueryRow(ctx, query, email))
}

// Upsert implements manager.ManagerRepository.
func (r *managerRepositoryImpl) Upsert(ctx context.Context, m manager.Manager) (manager.Manager, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO managers (name, email, pin_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE
		SET name = EXCLUDED.name, pin_hash = EXCLUDED.pin_hash, updated_at = NOW()
		RETURNING ` + managerColumns
	return scanManager(q.QueryRow(ctx, query, m.Name, m.Email, m.PINHash))
}
