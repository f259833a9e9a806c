package postgres

import (
	"context"
	"fmt"

	"github.com/androidmobilestore/mnw-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MovementRepo implements ports.MovementRepository.
type MovementRepo struct {
	pool Pool
}

// NewMovementRepo creates a new MovementRepo.
func NewMovementRepo(pool Pool) *MovementRepo {
	return &MovementRepo{pool: pool}
}

// Create appends a ledger entry within a database transaction.
func (r *MovementRepo) Create(ctx context.Context, tx pgx.Tx, m *domain.Movement) error {
	query := `INSERT INTO movements (id, user_id, wallet_id, type, currency, amount, status,
		txid, counterpart_id, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := tx.Exec(ctx, query,
		m.ID, m.UserID, m.WalletID, m.Type, m.Currency, m.Amount, m.Status,
		m.TxID, m.CounterpartID, m.Description, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListByUser returns a user's movements, newest first.
func (r *MovementRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Movement, error) {
	query := `SELECT id, user_id, wallet_id, type, currency, amount, status,
		txid, counterpart_id, description, created_at
		FROM movements WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var movements []domain.Movement
	for rows.Next() {
		var m domain.Movement
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.WalletID, &m.Type, &m.Currency, &m.Amount, &m.Status,
			&m.TxID, &m.CounterpartID, &m.Description, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}

// UpdateStatus moves a pending entry to a new status within a transaction.
// Movements are otherwise immutable.
func (r *MovementRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.MovementStatus) error {
	query := `UPDATE movements SET status = $1 WHERE id = $2 AND status = $3`

	tag, err := tx.Exec(ctx, query, status, id, domain.MovementStatusPending)
	if err != nil {
		return fmt.Errorf("update movement status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("pending movement not found: %s", id)
	}
	return nil
}
