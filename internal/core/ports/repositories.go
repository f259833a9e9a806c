package ports

import (
	"context"
	"time"

	"github.com/androidmobilestore/mnw-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// UserRepository defines persistence operations for wallet owners.
type UserRepository interface {
	Create(ctx context.Context, tx pgx.Tx, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)
	GetByCyberLogin(ctx context.Context, cyberLogin string) (*domain.User, error)
	GetByAddress(ctx context.Context, address string) (*domain.User, error)
	// ListWithAddresses returns users that own a chain address, for reconciliation.
	ListWithAddresses(ctx context.Context) ([]domain.User, error)
	// IncrementStats bumps deal_count and adds volume inside a transaction.
	IncrementStats(ctx context.Context, tx pgx.Tx, userID uuid.UUID, volume decimal.Decimal) error
}

// AdminRepository defines persistence operations for operator identities.
type AdminRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error)
	List(ctx context.Context) ([]domain.Admin, error)
}

// WalletRepository defines persistence operations for wallets.
// Methods accepting pgx.Tx are used inside transaction blocks; every balance
// mutation goes through a FOR UPDATE lock taken by GetForUpdate.
type WalletRepository interface {
	Create(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet) error
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Wallet, error)
	GetByUserAndCurrency(ctx context.Context, userID uuid.UUID, currency domain.Currency) (*domain.Wallet, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID, currency domain.Currency) (*domain.Wallet, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance decimal.Decimal) error
}

// MovementRepository defines persistence for the append-only ledger entries.
type MovementRepository interface {
	Create(ctx context.Context, tx pgx.Tx, movement *domain.Movement) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Movement, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.MovementStatus) error
}

// ExchangeRepository defines persistence for conversion records.
type ExchangeRepository interface {
	Create(ctx context.Context, tx pgx.Tx, exchange *domain.Exchange) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Exchange, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Exchange, error)
	// Resolve writes the terminal fields (status, txid, admin, completed_at).
	Resolve(ctx context.Context, tx pgx.Tx, exchange *domain.Exchange) error
}

// WithdrawalRepository defines persistence for cash-out requests.
type WithdrawalRepository interface {
	Create(ctx context.Context, tx pgx.Tx, withdrawal *domain.Withdrawal) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Withdrawal, error)
	Resolve(ctx context.Context, tx pgx.Tx, withdrawal *domain.Withdrawal) error
}

// AdminTokenRepository defines persistence for capability tokens.
type AdminTokenRepository interface {
	Create(ctx context.Context, token *domain.AdminLinkToken) error
	GetByToken(ctx context.Context, token string) (*domain.AdminLinkToken, error)
	// Consume sets used_at if and only if it is not already set, inside the
	// caller's transaction. Returns false when the token was already used.
	Consume(ctx context.Context, tx pgx.Tx, token string, usedAt time.Time) (bool, error)
}

// ReconciliationRepository persists balance-replacement audit rows.
type ReconciliationRepository interface {
	Create(ctx context.Context, tx pgx.Tx, rec *domain.Reconciliation) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
