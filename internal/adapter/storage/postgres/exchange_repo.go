package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/androidmobilestore/mnw-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ExchangeRepo implements ports.ExchangeRepository.
type ExchangeRepo struct {
	pool Pool
}

// NewExchangeRepo creates a new ExchangeRepo.
func NewExchangeRepo(pool Pool) *ExchangeRepo {
	return &ExchangeRepo{pool: pool}
}

const exchangeColumns = `id, user_id, from_currency, to_currency, from_amount, to_amount, rate,
		status, movement_id, txid, destination_address, admin_id, completed_at, created_at`

// Create inserts an exchange record within a database transaction.
func (r *ExchangeRepo) Create(ctx context.Context, tx pgx.Tx, e *domain.Exchange) error {
	query := `INSERT INTO exchanges (id, user_id, from_currency, to_currency, from_amount, to_amount,
		rate, status, movement_id, txid, destination_address, admin_id, completed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := tx.Exec(ctx, query,
		e.ID, e.UserID, e.FromCurrency, e.ToCurrency, e.FromAmount, e.ToAmount,
		e.Rate, e.Status, e.MovementID, e.TxID, e.DestinationAddress, e.AdminID, e.CompletedAt, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert exchange: %w", err)
	}
	return nil
}

// GetByID fetches an exchange (non-locking read).
func (r *ExchangeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Exchange, error) {
	query := `SELECT ` + exchangeColumns + ` FROM exchanges WHERE id = $1`

	e := &domain.Exchange{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.UserID, &e.FromCurrency, &e.ToCurrency, &e.FromAmount, &e.ToAmount, &e.Rate,
		&e.Status, &e.MovementID, &e.TxID, &e.DestinationAddress, &e.AdminID, &e.CompletedAt, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get exchange: %w", err)
	}
	return e, nil
}

// GetByIDForUpdate fetches an exchange with pessimistic locking, so two
// concurrent resolutions serialize. This MUST be called within a transaction.
func (r *ExchangeRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Exchange, error) {
	query := `SELECT ` + exchangeColumns + ` FROM exchanges WHERE id = $1 FOR UPDATE`

	e := &domain.Exchange{}
	err := tx.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.UserID, &e.FromCurrency, &e.ToCurrency, &e.FromAmount, &e.ToAmount, &e.Rate,
		&e.Status, &e.MovementID, &e.TxID, &e.DestinationAddress, &e.AdminID, &e.CompletedAt, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get exchange for update: %w", err)
	}
	return e, nil
}

// Resolve writes the terminal fields of an exchange within a transaction.
func (r *ExchangeRepo) Resolve(ctx context.Context, tx pgx.Tx, e *domain.Exchange) error {
	query := `UPDATE exchanges SET status = $1, txid = $2, destination_address = $3,
		admin_id = $4, completed_at = $5 WHERE id = $6`

	tag, err := tx.Exec(ctx, query, e.Status, e.TxID, e.DestinationAddress, e.AdminID, e.CompletedAt, e.ID)
	if err != nil {
		return fmt.Errorf("resolve exchange: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("exchange not found: %s", e.ID)
	}
	return nil
}
