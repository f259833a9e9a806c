package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/androidmobilestore/mnw-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// UserRepo implements ports.UserRepository.
type UserRepo struct {
	pool Pool
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(pool Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, telegram_id, cyber_login, tron_address, encrypted_private_key,
		encrypted_mnemonic, deal_count, volume, verified, created_at`

// Create inserts a new user within a database transaction (onboarding creates
// the user and their wallets atomically).
func (r *UserRepo) Create(ctx context.Context, tx pgx.Tx, u *domain.User) error {
	query := `INSERT INTO users (id, telegram_id, cyber_login, tron_address, encrypted_private_key,
		encrypted_mnemonic, deal_count, volume, verified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := tx.Exec(ctx, query,
		u.ID, u.TelegramID, u.CyberLogin, u.TronAddress, u.EncryptedPrivateKey,
		u.EncryptedMnemonic, u.DealCount, u.Volume, u.Verified, u.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID fetches a user by UUID.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getBy(ctx, "id = $1", id)
}

// GetByTelegramID fetches a user by their telegram identity.
func (r *UserRepo) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	return r.getBy(ctx, "telegram_id = $1", telegramID)
}

// GetByCyberLogin fetches a user by their display login (transfer recipient lookup).
func (r *UserRepo) GetByCyberLogin(ctx context.Context, cyberLogin string) (*domain.User, error) {
	return r.getBy(ctx, "cyber_login = $1", cyberLogin)
}

// GetByAddress fetches a user by their chain address (wallet restoration).
func (r *UserRepo) GetByAddress(ctx context.Context, address string) (*domain.User, error) {
	return r.getBy(ctx, "tron_address = $1", address)
}

func (r *UserRepo) getBy(ctx context.Context, where string, arg any) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where

	u := &domain.User{}
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.TelegramID, &u.CyberLogin, &u.TronAddress, &u.EncryptedPrivateKey,
		&u.EncryptedMnemonic, &u.DealCount, &u.Volume, &u.Verified, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// ListWithAddresses returns all users owning a chain address, for the reconciler.
func (r *UserRepo) ListWithAddresses(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE tron_address <> '' ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(
			&u.ID, &u.TelegramID, &u.CyberLogin, &u.TronAddress, &u.EncryptedPrivateKey,
			&u.EncryptedMnemonic, &u.DealCount, &u.Volume, &u.Verified, &u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// IncrementStats bumps the aggregate deal statistics within a transaction.
func (r *UserRepo) IncrementStats(ctx context.Context, tx pgx.Tx, userID uuid.UUID, volume decimal.Decimal) error {
	query := `UPDATE users SET deal_count = deal_count + 1, volume = volume + $1 WHERE id = $2`

	tag, err := tx.Exec(ctx, query, volume, userID)
	if err != nil {
		return fmt.Errorf("increment user stats: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %s", userID)
	}
	return nil
}
