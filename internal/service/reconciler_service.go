package service

import (
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

// ReconcilerService implements ports.Reconciler. It replaces custodial crypto
// balances with the chain's answer, never the other way around: a failed or
// empty chain read leaves the stored balances untouched, since a transient
// node error must not wipe real funds. The reconciler only ever writes
// balances and audit rows; movements belong to user-initiated operations.
type ReconcilerService struct {
	chain          ports.ChainQuerier
	userRepo       ports.UserRepository
	walletRepo     ports.WalletRepository
	reconRepo      ports.ReconciliationRepository
	transactor     ports.DBTransactor
	requestTimeout time.Duration
	log            zerolog.Logger
}

// NewReconcilerService creates a new ReconcilerService.
func NewReconcilerService(
	chain ports.ChainQuerier,
	userRepo ports.UserRepository,
	walletRepo ports.WalletRepository,
	reconRepo ports.ReconciliationRepository,
	transactor ports.DBTransactor,
	requestTimeout time.Duration,
	log zerolog.Logger,
) *ReconcilerService {
	return &ReconcilerService{
		chain:          chain,
		userRepo:       userRepo,
		walletRepo:     walletRepo,
		reconRepo:      reconRepo,
		transactor:     transactor,
		requestTimeout: requestTimeout,
		log:            log,
	}
}

// ReconcileAddress pulls the on-chain balances for one address and overwrites
// the user's crypto wallets with them. Returns nil balances when the read was
// skipped.
func (s *ReconcilerService) ReconcileAddress(ctx context.Context, userID uuid.UUID, address string) (*domain.ChainBalances, error) {
	queryCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	balances, err := s.chain.Balances(queryCtx, address)
	if err != nil {
		s.log.Warn().Err(err).Str("address", address).Msg("chain query failed, keeping stored balances")
		return nil, nil
	}
	if balances.LooksEmpty() {
		// Indistinguishable from a node that has not indexed the account
		// yet; do not zero out stored funds over it.
		return nil, nil
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.reconcileWallet(ctx, dbTx, userID, domain.CurrencyTRX, balances.TRX); err != nil {
		return nil, err
	}
	if err := s.reconcileWallet(ctx, dbTx, userID, domain.CurrencyUSDT, balances.USDT); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return &balances, nil
}

func (s *ReconcilerService) reconcileWallet(ctx context.Context, dbTx pgx.Tx, userID uuid.UUID, currency domain.Currency, observed decimal.Decimal) error {
	wallet, err := s.walletRepo.GetForUpdate(ctx, dbTx, userID, currency)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil
	}
	if wallet.Balance.Equal(observed) {
		return nil
	}

	if err := s.walletRepo.UpdateBalance(ctx, dbTx, wallet.ID, observed); err != nil {
		return apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	rec := &domain.Reconciliation{
		ID:        uuid.New(),
		WalletID:  wallet.ID,
		Currency:  currency,
		Previous:  wallet.Balance,
		Observed:  observed,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.reconRepo.Create(ctx, dbTx, rec); err != nil {
		return apperror.InternalError(fmt.Errorf("create reconciliation: %w", err))
	}

	s.log.Info().
		Str("wallet_id", wallet.ID.String()).
		Str("currency", string(currency)).
		Str("previous", wallet.Balance.String()).
		Str("observed", observed.String()).
		Msg("balance reconciled")
	return nil
}

// Run sweeps every user with a chain address on a fixed interval until the
// context is cancelled.
func (s *ReconcilerService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *ReconcilerService) sweep(ctx context.Context) {
	users, err := s.userRepo.ListWithAddresses(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("listing users for reconciliation failed")
		return
	}

	for _, u := range users {
		if ctx.Err() != nil {
			return
		}
		if _, err := s.ReconcileAddress(ctx, u.ID, u.TronAddress); err != nil {
			s.log.Error().Err(err).Str("user_id", u.ID.String()).Msg("reconciliation failed")
		}
	}
}
