package ports

import (
	"context"
	"time"

	"github.com/androidmobilestore/mnw-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// --- Ledger ---

// LedgerService owns balance mutations. Every operation commits the balance
// change and its movement record atomically, or not at all; the balance check
// happens inside the same transaction as the mutation.
type LedgerService interface {
	Credit(ctx context.Context, userID uuid.UUID, currency domain.Currency, amount decimal.Decimal, movType domain.MovementType, description string) (*domain.Movement, error)
	Debit(ctx context.Context, userID uuid.UUID, currency domain.Currency, amount decimal.Decimal, movType domain.MovementType, description string) (*domain.Movement, error)
	// Transfer moves value between two users; both legs commit atomically and
	// reference each other as counterparts.
	Transfer(ctx context.Context, fromUserID, toUserID uuid.UUID, currency domain.Currency, amount decimal.Decimal) error
	Balances(ctx context.Context, userID uuid.UUID) (map[domain.Currency]decimal.Decimal, error)
}

// --- Money Movement Engine ---

// ExchangeRequest holds validated input for a conversion.
type ExchangeRequest struct {
	UserID       uuid.UUID
	FromCurrency domain.Currency
	ToCurrency   domain.Currency
	FromAmount   decimal.Decimal
}

// TransferRequest holds validated input for an internal transfer.
type TransferRequest struct {
	FromUserID   uuid.UUID
	ToCyberLogin string
	Currency     domain.Currency
	Amount       decimal.Decimal
}

// WithdrawalRequest holds validated input for a fiat cash-out. Currency
// defaults to RUB when empty; anything else is rejected.
type WithdrawalRequest struct {
	UserID      uuid.UUID
	Currency    domain.Currency
	Amount      decimal.Decimal
	City        string
	FullName    string
	ContactType string
	Contact     string
}

// ResolveExchangeRequest is the privileged settlement of a pending exchange.
// Token, when set, is the capability token to consume atomically with the
// resolution.
type ResolveExchangeRequest struct {
	ExchangeID         uuid.UUID
	AdminID            uuid.UUID
	Status             domain.ExchangeStatus // COMPLETED or CANCELLED
	TxID               *string
	DestinationAddress *string
	Token              string
}

// ResolveWithdrawalRequest is the privileged resolution of a withdrawal.
type ResolveWithdrawalRequest struct {
	WithdrawalID uuid.UUID
	AdminID      uuid.UUID
	Status       domain.WithdrawalStatus // COMPLETED or CANCELLED
	Token        string
}

// SendRequest is an on-chain send out of the custodial wallet.
type SendRequest struct {
	UserID    uuid.UUID
	Currency  domain.Currency
	ToAddress string
	Amount    decimal.Decimal
}

// MoneyService composes ledger primitives into the user-facing operations.
type MoneyService interface {
	Exchange(ctx context.Context, req ExchangeRequest) (*domain.Exchange, error)
	Transfer(ctx context.Context, req TransferRequest) error
	RequestWithdrawal(ctx context.Context, req WithdrawalRequest) (*domain.Withdrawal, error)
	ResolveExchange(ctx context.Context, req ResolveExchangeRequest) (*domain.Exchange, error)
	ResolveWithdrawal(ctx context.Context, req ResolveWithdrawalRequest) (*domain.Withdrawal, error)
	Send(ctx context.Context, req SendRequest) (*domain.Movement, error)
}

// --- Rate Oracle ---

// RateOracle serves cached cross-currency quotes. Quote returns the pair and
// the time the underlying set was fetched so callers can enforce their own
// staleness bound.
type RateOracle interface {
	Quote(from, to domain.Currency) (*domain.RatePair, time.Time, error)
	Refresh(ctx context.Context) error
}

// RateSource fetches quoted pairs from the external feed, already filtered to
// the configured city and mapped to domain currencies.
type RateSource interface {
	FetchPairs(ctx context.Context) ([]domain.RatePair, error)
}

// --- Key Vault ---

// DerivedWallet is the result of deterministic derivation from a mnemonic.
type DerivedWallet struct {
	Address    string
	PrivateKey []byte
}

// KeyVault encrypts signing key material at rest and derives deterministic
// keypairs from recovery phrases. Plaintext key material never leaves the
// vault except through DeriveWallet at onboarding, where the caller encrypts
// it immediately; signing happens inside Sign.
type KeyVault interface {
	GenerateMnemonic() (string, error)
	DeriveWallet(mnemonic string) (*DerivedWallet, error)
	Encrypt(plaintext string) (string, error)
	Decrypt(record string) (string, error)
	Sign(encryptedKey string, payload []byte) ([]byte, error)
}

// --- Blockchain ---

// ChainTransfer is a signed on-chain transfer ready for broadcast.
type ChainTransfer struct {
	FromAddress string
	ToAddress   string
	Currency    domain.Currency
	Amount      decimal.Decimal
	Signature   []byte
}

// ChainQuerier talks to the external chain. It must be treated as slow and
// unreliable; callers bound every call with a timeout.
type ChainQuerier interface {
	Balances(ctx context.Context, address string) (domain.ChainBalances, error)
	BroadcastTransfer(ctx context.Context, transfer ChainTransfer) (string, error)
}

// Reconciler replaces custodial crypto balances with on-chain ground truth.
type Reconciler interface {
	ReconcileAddress(ctx context.Context, userID uuid.UUID, address string) (*domain.ChainBalances, error)
}

// --- Admin capability tokens ---

// AdminTokenService issues and validates single-use, resource-scoped tokens.
type AdminTokenService interface {
	Issue(ctx context.Context, adminID uuid.UUID, resourceType domain.ResourceType, resourceID uuid.UUID) (*domain.AdminLinkToken, error)
	// Validate returns the admin the token was issued to. It fails with
	// TokenInvalid, TokenMismatch, TokenExpired or TokenUsed.
	Validate(ctx context.Context, token string, resourceType domain.ResourceType, resourceID uuid.UUID) (uuid.UUID, error)
	// Consume marks the token used inside the caller's transaction; it fails
	// with TokenUsed when another request consumed it first.
	Consume(ctx context.Context, tx pgx.Tx, token string) error
	// Release clears the fast-path replay guard for a token whose transaction
	// did not commit, so the still-unconsumed token keeps working.
	Release(ctx context.Context, token string)
	// BuildLink renders the admin panel URL carrying the token.
	BuildLink(token *domain.AdminLinkToken) string
}

// TokenReplayGuard is the fast-path single-use check in front of the
// database check-and-set.
type TokenReplayGuard interface {
	// CheckAndSet returns true the first time a token is seen.
	CheckAndSet(ctx context.Context, token string, ttl time.Duration) (bool, error)
	// Release forgets a token so a later presentation passes CheckAndSet.
	Release(ctx context.Context, token string) error
}

// AdminNotifier delivers capability links to operators out of band.
type AdminNotifier interface {
	NotifyExchange(ctx context.Context, exchange *domain.Exchange, link string) error
	NotifyWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal, link string) error
}

// --- Sessions & onboarding ---

// SessionClaims holds the parsed session token claims.
type SessionClaims struct {
	UserID uuid.UUID
}

// SessionService handles user session JWTs.
type SessionService interface {
	Generate(userID uuid.UUID) (string, time.Time, error)
	Validate(token string) (*SessionClaims, error)
}

// OnboardResult is returned once at wallet creation or restoration. Mnemonic
// is set only on creation and never stored in plaintext.
type OnboardResult struct {
	User         *domain.User
	Mnemonic     string
	SessionToken string
	ExpiresAt    time.Time
}

// OnboardingService creates and restores custodial wallets.
type OnboardingService interface {
	CreateWallet(ctx context.Context, telegramID int64) (*OnboardResult, error)
	RestoreWallet(ctx context.Context, telegramID int64, mnemonic string) (*OnboardResult, error)
}
