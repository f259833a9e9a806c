package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/androidmobilestore/mnw-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WithdrawalRepo implements ports.WithdrawalRepository.
type WithdrawalRepo struct {
	pool Pool
}

// NewWithdrawalRepo creates a new WithdrawalRepo.
func NewWithdrawalRepo(pool Pool) *WithdrawalRepo {
	return &WithdrawalRepo{pool: pool}
}

const withdrawalColumns = `id, user_id, wallet_id, movement_id, amount, currency, token, status,
		city, full_name, contact_type, contact, admin_id, completed_at, created_at`

// Create inserts a withdrawal request within a database transaction (the
// freeze debit commits in the same transaction).
func (r *WithdrawalRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.Withdrawal) error {
	query := `INSERT INTO withdrawals (id, user_id, wallet_id, movement_id, amount, currency, token, status,
		city, full_name, contact_type, contact, admin_id, completed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := tx.Exec(ctx, query,
		w.ID, w.UserID, w.WalletID, w.MovementID, w.Amount, w.Currency, w.Token, w.Status,
		w.City, w.FullName, w.ContactType, w.Contact, w.AdminID, w.CompletedAt, w.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert withdrawal: %w", err)
	}
	return nil
}

// GetByID fetches a withdrawal (non-locking read).
func (r *WithdrawalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE id = $1`

	w := &domain.Withdrawal{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.UserID, &w.WalletID, &w.MovementID, &w.Amount, &w.Currency, &w.Token, &w.Status,
		&w.City, &w.FullName, &w.ContactType, &w.Contact, &w.AdminID, &w.CompletedAt, &w.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get withdrawal: %w", err)
	}
	return w, nil
}

// GetByIDForUpdate fetches a withdrawal with pessimistic locking.
// This MUST be called within a transaction.
func (r *WithdrawalRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE id = $1 FOR UPDATE`

	w := &domain.Withdrawal{}
	err := tx.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.UserID, &w.WalletID, &w.MovementID, &w.Amount, &w.Currency, &w.Token, &w.Status,
		&w.City, &w.FullName, &w.ContactType, &w.Contact, &w.AdminID, &w.CompletedAt, &w.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get withdrawal for update: %w", err)
	}
	return w, nil
}

// Resolve writes the terminal fields of a withdrawal within a transaction.
func (r *WithdrawalRepo) Resolve(ctx context.Context, tx pgx.Tx, w *domain.Withdrawal) error {
	query := `UPDATE withdrawals SET status = $1, admin_id = $2, completed_at = $3 WHERE id = $4`

	tag, err := tx.Exec(ctx, query, w.Status, w.AdminID, w.CompletedAt, w.ID)
	if err != nil {
		return fmt.Errorf("resolve withdrawal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("withdrawal not found: %s", w.ID)
	}
	return nil
}
