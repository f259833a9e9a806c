package service

import (
	"bytes"
	"context"
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

// LedgerServiceImpl implements ports.LedgerService.
type LedgerServiceImpl struct {
	walletRepo   ports.WalletRepository
	movementRepo ports.MovementRepository
	transactor   ports.DBTransactor
	log          zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	walletRepo ports.WalletRepository,
	movementRepo ports.MovementRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		walletRepo:   walletRepo,
		movementRepo: movementRepo,
		transactor:   transactor,
		log:          log,
	}
}

// applyDelta mutates one wallet balance inside the caller's transaction and
// appends the matching movement. The wallet row is locked FOR UPDATE before
// the balance check, so concurrent debits serialize and the balance can never
// go negative. A missing wallet is created lazily on credit; debiting a
// missing wallet fails.
func applyDelta(
	ctx context.Context,
	dbTx pgx.Tx,
	walletRepo ports.WalletRepository,
	movementRepo ports.MovementRepository,
	userID uuid.UUID,
	currency domain.Currency,
	delta decimal.Decimal,
	movType domain.MovementType,
	status domain.MovementStatus,
	counterpartID *uuid.UUID,
	description string,
) (*domain.Movement, error) {
	wallet, err := walletRepo.GetForUpdate(ctx, dbTx, userID, currency)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		if delta.IsNegative() {
			return nil, apperror.ErrWalletNotFound(string(currency))
		}
		wallet = domain.NewWallet(userID, currency, nil)
		if err := walletRepo.Create(ctx, dbTx, wallet); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
		}
	}

	newBalance := wallet.Balance.Add(delta)
	if newBalance.IsNegative() {
		return nil, apperror.ErrInsufficientFunds()
	}
	if err := walletRepo.UpdateBalance(ctx, dbTx, wallet.ID, newBalance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	walletID := wallet.ID
	mov := &domain.Movement{
		ID:            uuid.New(),
		UserID:        userID,
		WalletID:      &walletID,
		Type:          movType,
		Currency:      currency,
		Amount:        delta,
		Status:        status,
		CounterpartID: counterpartID,
		Description:   description,
		CreatedAt:     time.Now().UTC(),
	}
	if err := movementRepo.Create(ctx, dbTx, mov); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create movement: %w", err))
	}
	return mov, nil
}

// creditInTx and debitInTx let composed operations (exchange, withdrawal)
// share one transaction with their own bookkeeping writes.
func creditInTx(ctx context.Context, dbTx pgx.Tx, walletRepo ports.WalletRepository, movementRepo ports.MovementRepository, userID uuid.UUID, currency domain.Currency, amount decimal.Decimal, movType domain.MovementType, status domain.MovementStatus, description string) (*domain.Movement, error) {
	return applyDelta(ctx, dbTx, walletRepo, movementRepo, userID, currency, amount, movType, status, nil, description)
}

func debitInTx(ctx context.Context, dbTx pgx.Tx, walletRepo ports.WalletRepository, movementRepo ports.MovementRepository, userID uuid.UUID, currency domain.Currency, amount decimal.Decimal, movType domain.MovementType, status domain.MovementStatus, description string) (*domain.Movement, error) {
	return applyDelta(ctx, dbTx, walletRepo, movementRepo, userID, currency, amount.Neg(), movType, status, nil, description)
}

// Credit adds funds to a user's wallet, creating the wallet if needed.
func (s *LedgerServiceImpl) Credit(ctx context.Context, userID uuid.UUID, currency domain.Currency, amount decimal.Decimal, movType domain.MovementType, description string) (*domain.Movement, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	mov, err := applyDelta(ctx, dbTx, s.walletRepo, s.movementRepo, userID, currency, amount, movType, domain.MovementStatusCompleted, nil, description)
	if err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return mov, nil
}

// Debit removes funds from a user's wallet; fails if the balance would go
// negative.
func (s *LedgerServiceImpl) Debit(ctx context.Context, userID uuid.UUID, currency domain.Currency, amount decimal.Decimal, movType domain.MovementType, description string) (*domain.Movement, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	mov, err := applyDelta(ctx, dbTx, s.walletRepo, s.movementRepo, userID, currency, amount.Neg(), movType, domain.MovementStatusCompleted, nil, description)
	if err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return mov, nil
}

// Transfer moves value between two users atomically. The two wallet locks are
// always taken in UUID order, so opposite-direction transfers between the
// same pair cannot deadlock.
func (s *LedgerServiceImpl) Transfer(ctx context.Context, fromUserID, toUserID uuid.UUID, currency domain.Currency, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperror.ErrInvalidAmount()
	}
	if fromUserID == toUserID {
		return apperror.ErrSelfTransfer()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	debit := func() error {
		from := fromUserID
		to := toUserID
		_, err := applyDelta(ctx, dbTx, s.walletRepo, s.movementRepo, from, currency, amount.Neg(),
			domain.MovementTypeTransfer, domain.MovementStatusCompleted, &to, "transfer out")
		return err
	}
	credit := func() error {
		from := fromUserID
		to := toUserID
		_, err := applyDelta(ctx, dbTx, s.walletRepo, s.movementRepo, to, currency, amount,
			domain.MovementTypeTransfer, domain.MovementStatusCompleted, &from, "transfer in")
		return err
	}

	if bytes.Compare(fromUserID[:], toUserID[:]) < 0 {
		err = firstThen(debit, credit)
	} else {
		err = firstThen(credit, debit)
	}
	if err != nil {
		return err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("from", fromUserID.String()).
		Str("to", toUserID.String()).
		Str("currency", string(currency)).
		Str("amount", amount.String()).
		Msg("transfer completed")
	return nil
}

func firstThen(a, b func() error) error {
	if err := a(); err != nil {
		return err
	}
	return b()
}

// Balances returns the user's balance per currency. Currencies without a
// wallet row report zero.
func (s *LedgerServiceImpl) Balances(ctx context.Context, userID uuid.UUID) (map[domain.Currency]decimal.Decimal, error) {
	wallets, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list wallets: %w", err))
	}

	balances := map[domain.Currency]decimal.Decimal{
		domain.CurrencyRUB:  decimal.Zero,
		domain.CurrencyTRX:  decimal.Zero,
		domain.CurrencyUSDT: decimal.Zero,
	}
	for _, w := range wallets {
		balances[w.Currency] = w.Balance
	}
	return balances, nil
}
