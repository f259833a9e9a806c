package service

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/androidmobilestore/mnw-wallet/internal/core/domain"
	"github.com/androidmobilestore/mnw-wallet/internal/core/ports"
	"github.com/androidmobilestore/mnw-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// OnboardingServiceImpl implements ports.OnboardingService. Creation derives
// the chain keypair from a fresh recovery phrase and returns the phrase
// exactly once; only encrypted material is stored. Restoration re-derives the
// address from the phrase and matches it against existing accounts.
type OnboardingServiceImpl struct {
	userRepo   ports.UserRepository
	walletRepo ports.WalletRepository
	vault      ports.KeyVault
	session    ports.SessionService
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewOnboardingService creates a new OnboardingServiceImpl.
func NewOnboardingService(
	userRepo ports.UserRepository,
	walletRepo ports.WalletRepository,
	vault ports.KeyVault,
	session ports.SessionService,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *OnboardingServiceImpl {
	return &OnboardingServiceImpl{
		userRepo:   userRepo,
		walletRepo: walletRepo,
		vault:      vault,
		session:    session,
		transactor: transactor,
		log:        log,
	}
}

// CreateWallet provisions a new custodial account for a Telegram identity.
// The mnemonic in the result is the only time the recovery phrase ever leaves
// the system.
func (s *OnboardingServiceImpl) CreateWallet(ctx context.Context, telegramID int64) (*ports.OnboardResult, error) {
	existing, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup user: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrUserExists()
	}

	mnemonic, err := s.vault.GenerateMnemonic()
	if err != nil {
		return nil, err
	}

	user, err := s.provisionUser(ctx, telegramID, mnemonic)
	if err != nil {
		return nil, err
	}

	sessionToken, expiresAt, err := s.session.Generate(user.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate session: %w", err))
	}

	s.log.Info().
		Str("user_id", user.ID.String()).
		Str("cyber_login", user.CyberLogin).
		Msg("wallet created")

	return &ports.OnboardResult{
		User:         user,
		Mnemonic:     mnemonic,
		SessionToken: sessionToken,
		ExpiresAt:    expiresAt,
	}, nil
}

// RestoreWallet recovers access from a recovery phrase. A known address logs
// the user back in; an unknown one provisions a fresh account around the
// derived key material.
func (s *OnboardingServiceImpl) RestoreWallet(ctx context.Context, telegramID int64, mnemonic string) (*ports.OnboardResult, error) {
	derived, err := s.vault.DeriveWallet(mnemonic)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByAddress(ctx, derived.Address)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup user by address: %w", err))
	}
	if user == nil {
		user, err = s.provisionUser(ctx, telegramID, mnemonic)
		if err != nil {
			return nil, err
		}
	}

	sessionToken, expiresAt, err := s.session.Generate(user.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate session: %w", err))
	}

	s.log.Info().
		Str("user_id", user.ID.String()).
		Str("cyber_login", user.CyberLogin).
		Msg("wallet restored")

	return &ports.OnboardResult{
		User:         user,
		SessionToken: sessionToken,
		ExpiresAt:    expiresAt,
	}, nil
}

// provisionUser writes the user row and all three wallets in one transaction.
func (s *OnboardingServiceImpl) provisionUser(ctx context.Context, telegramID int64, mnemonic string) (*domain.User, error) {
	derived, err := s.vault.DeriveWallet(mnemonic)
	if err != nil {
		return nil, err
	}

	encryptedKey, err := s.vault.Encrypt(hex.EncodeToString(derived.PrivateKey))
	if err != nil {
		return nil, err
	}
	encryptedMnemonic, err := s.vault.Encrypt(mnemonic)
	if err != nil {
		return nil, err
	}

	cyberLogin, err := generateCyberLogin()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate cyber login: %w", err))
	}

	user := &domain.User{
		ID:                  uuid.New(),
		TelegramID:          telegramID,
		CyberLogin:          cyberLogin,
		TronAddress:         derived.Address,
		EncryptedPrivateKey: encryptedKey,
		EncryptedMnemonic:   encryptedMnemonic,
		Volume:              decimal.Zero,
		CreatedAt:           time.Now().UTC(),
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.userRepo.Create(ctx, dbTx, user); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create user: %w", err))
	}
	if err := s.createWallets(ctx, dbTx, user); err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return user, nil
}

func (s *OnboardingServiceImpl) createWallets(ctx context.Context, dbTx pgx.Tx, user *domain.User) error {
	for _, currency := range []domain.Currency{domain.CurrencyRUB, domain.CurrencyTRX, domain.CurrencyUSDT} {
		var address *string
		if currency.IsCrypto() {
			addr := user.TronAddress
			address = &addr
		}
		if err := s.walletRepo.Create(ctx, dbTx, domain.NewWallet(user.ID, currency, address)); err != nil {
			return apperror.InternalError(fmt.Errorf("create %s wallet: %w", currency, err))
		}
	}
	return nil
}

var (
	loginAdjectives = []string{"Neo", "Cyber", "Quantum", "Alpha", "Beta", "Sigma", "Omega", "Mega", "Ultra", "Hyper"}
	loginNouns      = []string{"Wolf", "Tiger", "Eagle", "Dragon", "Phoenix", "Falcon", "Hawk", "Lion", "Bear", "Fox"}
)

// generateCyberLogin builds a human-readable handle like "NeoWolf#4821". The
// numeric tail keeps collisions rare; the unique constraint on the column
// catches the rest.
func generateCyberLogin() (string, error) {
	var raw [8]byte
	if _, err := rand.Read(raw[:]); err != nil {
		return "", err
	}
	adj := loginAdjectives[binary.BigEndian.Uint16(raw[0:2])%uint16(len(loginAdjectives))]
	noun := loginNouns[binary.BigEndian.Uint16(raw[2:4])%uint16(len(loginNouns))]
	number := 1000 + binary.BigEndian.Uint32(raw[4:8])%9000
	return fmt.Sprintf("%s%s#%d", adj, noun, number), nil
}
