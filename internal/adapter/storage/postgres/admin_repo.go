package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/androidmobilestore/mnw-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AdminRepo implements ports.AdminRepository.
type AdminRepo struct {
	pool Pool
}

// NewAdminRepo creates a new AdminRepo.
func NewAdminRepo(pool Pool) *AdminRepo {
	return &AdminRepo{pool: pool}
}

// GetByID fetches an operator by UUID.
func (r *AdminRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	query := `SELECT id, telegram_id, username, city, created_at FROM admins WHERE id = $1`

	a := &domain.Admin{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.TelegramID, &a.Username, &a.City, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return a, nil
}

// List returns all operators, for notification fan-out.
func (r *AdminRepo) List(ctx context.Context) ([]domain.Admin, error) {
	query := `SELECT id, telegram_id, username, city, created_at FROM admins ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer rows.Close()

	var admins []domain.Admin
	for rows.Next() {
		var a domain.Admin
		if err := rows.Scan(&a.ID, &a.TelegramID, &a.Username, &a.City, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan admin: %w", err)
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}
