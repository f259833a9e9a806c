package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/androidmobilestore/mnw-wallet/internal/core/domain"
	"github.com/androidmobilestore/mnw-wallet/internal/core/ports"
	"github.com/androidmobilestore/mnw-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const withdrawalCodeLen = 8

// MoneyServiceImpl implements ports.MoneyService on top of the ledger
// primitives. Composed operations (debit + record + optional credit) run in a
// single database transaction; operator notifications happen after commit and
// are best effort.
type MoneyServiceImpl struct {
	userRepo       ports.UserRepository
	walletRepo     ports.WalletRepository
	movementRepo   ports.MovementRepository
	exchangeRepo   ports.ExchangeRepository
	withdrawalRepo ports.WithdrawalRepository
	adminRepo      ports.AdminRepository
	ledger         ports.LedgerService
	oracle         ports.RateOracle
	vault          ports.KeyVault
	chain          ports.ChainQuerier
	tokenSvc       ports.AdminTokenService
	notifier       ports.AdminNotifier
	transactor     ports.DBTransactor
	maxStaleness   time.Duration
	log            zerolog.Logger
}

// NewMoneyService creates a new MoneyServiceImpl.
func NewMoneyService(
	userRepo ports.UserRepository,
	walletRepo ports.WalletRepository,
	movementRepo ports.MovementRepository,
	exchangeRepo ports.ExchangeRepository,
	withdrawalRepo ports.WithdrawalRepository,
	adminRepo ports.AdminRepository,
	ledger ports.LedgerService,
	oracle ports.RateOracle,
	vault ports.KeyVault,
	chain ports.ChainQuerier,
	tokenSvc ports.AdminTokenService,
	notifier ports.AdminNotifier,
	transactor ports.DBTransactor,
	maxStaleness time.Duration,
	log zerolog.Logger,
) *MoneyServiceImpl {
	return &MoneyServiceImpl{
		userRepo:       userRepo,
		walletRepo:     walletRepo,
		movementRepo:   movementRepo,
		exchangeRepo:   exchangeRepo,
		withdrawalRepo: withdrawalRepo,
		adminRepo:      adminRepo,
		ledger:         ledger,
		oracle:         oracle,
		vault:          vault,
		chain:          chain,
		tokenSvc:       tokenSvc,
		notifier:       notifier,
		transactor:     transactor,
		maxStaleness:   maxStaleness,
		log:            log,
	}
}

// Exchange converts between two of the user's wallets at the currently quoted
// rate. The rate captured here is final for the exchange. Fiat-to-crypto
// conversions reserve the source funds and stay PENDING until an operator
// settles them on-chain.
func (s *MoneyServiceImpl) Exchange(ctx context.Context, req ports.ExchangeRequest) (*domain.Exchange, error) {
	if !req.FromAmount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.FromCurrency == req.ToCurrency {
		return nil, apperror.ErrUnsupportedPair(string(req.FromCurrency), string(req.ToCurrency))
	}

	pair, fetchedAt, err := s.oracle.Quote(req.FromCurrency, req.ToCurrency)
	if err != nil {
		return nil, err
	}
	if time.Since(fetchedAt) > s.maxStaleness {
		return nil, apperror.ErrQuoteStale()
	}
	if pair.MinAmount.IsPositive() && req.FromAmount.LessThan(pair.MinAmount) {
		return nil, apperror.Validation(fmt.Sprintf("amount below pair minimum %s", pair.MinAmount))
	}
	if pair.MaxAmount.IsPositive() && req.FromAmount.GreaterThan(pair.MaxAmount) {
		return nil, apperror.Validation(fmt.Sprintf("amount above pair maximum %s", pair.MaxAmount))
	}

	toAmount := req.FromAmount.Mul(pair.Rate).Round(req.ToCurrency.Precision())
	if !toAmount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	// Crypto-out settles to the user's own chain address; record it up front
	// so the operator holding the capability link knows where to send.
	var settleAddress *string
	if req.ToCurrency.IsCrypto() {
		user, err := s.userRepo.GetByID(ctx, req.UserID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("lookup user: %w", err))
		}
		if user == nil {
			return nil, apperror.ErrNotFound("User")
		}
		settleAddress = &user.TronAddress
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	now := time.Now().UTC()
	exch := &domain.Exchange{
		ID:           uuid.New(),
		UserID:       req.UserID,
		FromCurrency: req.FromCurrency,
		ToCurrency:   req.ToCurrency,
		FromAmount:   req.FromAmount,
		ToAmount:     toAmount,
		Rate:         pair.Rate,
		CreatedAt:    now,
	}

	desc := fmt.Sprintf("exchange %s->%s", req.FromCurrency, req.ToCurrency)
	if exch.RequiresSettlement() {
		// Reserve source funds; the credit happens on-chain when the
		// operator settles.
		debitMov, err := debitInTx(ctx, dbTx, s.walletRepo, s.movementRepo,
			req.UserID, req.FromCurrency, req.FromAmount,
			domain.MovementTypeExchange, domain.MovementStatusPending, desc)
		if err != nil {
			return nil, err
		}
		exch.Status = domain.ExchangeStatusPending
		exch.MovementID = &debitMov.ID
		exch.DestinationAddress = settleAddress
	} else {
		debitMov, err := debitInTx(ctx, dbTx, s.walletRepo, s.movementRepo,
			req.UserID, req.FromCurrency, req.FromAmount,
			domain.MovementTypeExchange, domain.MovementStatusCompleted, desc)
		if err != nil {
			return nil, err
		}
		if _, err := creditInTx(ctx, dbTx, s.walletRepo, s.movementRepo,
			req.UserID, req.ToCurrency, toAmount,
			domain.MovementTypeExchange, domain.MovementStatusCompleted, desc); err != nil {
			return nil, err
		}
		exch.Status = domain.ExchangeStatusCompleted
		exch.MovementID = &debitMov.ID
		exch.CompletedAt = &now
	}

	if err := s.exchangeRepo.Create(ctx, dbTx, exch); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create exchange: %w", err))
	}
	if err := s.userRepo.IncrementStats(ctx, dbTx, req.UserID, rubLeg(exch)); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("increment stats: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("exchange_id", exch.ID.String()).
		Str("status", string(exch.Status)).
		Str("rate", exch.Rate.String()).
		Msg("exchange recorded")

	if exch.Status == domain.ExchangeStatusPending {
		s.notifyExchange(ctx, exch)
	}
	return exch, nil
}

// rubLeg picks the fiat side of an exchange for the user's volume stats.
func rubLeg(e *domain.Exchange) decimal.Decimal {
	if e.FromCurrency == domain.CurrencyRUB {
		return e.FromAmount
	}
	if e.ToCurrency == domain.CurrencyRUB {
		return e.ToAmount
	}
	return decimal.Zero
}

// Transfer moves value to another user addressed by cyber login.
func (s *MoneyServiceImpl) Transfer(ctx context.Context, req ports.TransferRequest) error {
	recipient, err := s.userRepo.GetByCyberLogin(ctx, req.ToCyberLogin)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lookup recipient: %w", err))
	}
	if recipient == nil {
		return apperror.ErrNotFound("Recipient")
	}
	if recipient.ID == req.FromUserID {
		return apperror.ErrSelfTransfer()
	}
	return s.ledger.Transfer(ctx, req.FromUserID, recipient.ID, req.Currency, req.Amount)
}

// RequestWithdrawal freezes RUB funds and records a PENDING cash-out request.
// The returned withdrawal carries the pickup code the user reads out of band.
func (s *MoneyServiceImpl) RequestWithdrawal(ctx context.Context, req ports.WithdrawalRequest) (*domain.Withdrawal, error) {
	if req.Currency != "" && req.Currency != domain.CurrencyRUB {
		return nil, apperror.ErrWithdrawalCurrency()
	}
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	code, err := generateWithdrawalCode()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate pickup code: %w", err))
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	mov, err := debitInTx(ctx, dbTx, s.walletRepo, s.movementRepo,
		req.UserID, domain.CurrencyRUB, req.Amount,
		domain.MovementTypeWithdrawal, domain.MovementStatusPending, "withdrawal freeze")
	if err != nil {
		return nil, err
	}

	wd := &domain.Withdrawal{
		ID:          uuid.New(),
		UserID:      req.UserID,
		WalletID:    *mov.WalletID,
		MovementID:  mov.ID,
		Amount:      req.Amount,
		Currency:    domain.CurrencyRUB,
		Token:       code,
		Status:      domain.WithdrawalStatusPending,
		City:        req.City,
		FullName:    req.FullName,
		ContactType: req.ContactType,
		Contact:     req.Contact,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.withdrawalRepo.Create(ctx, dbTx, wd); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create withdrawal: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("withdrawal_id", wd.ID.String()).
		Str("amount", wd.Amount.String()).
		Msg("withdrawal requested")

	s.notifyWithdrawal(ctx, wd)
	return wd, nil
}

// ResolveExchange settles or cancels a pending exchange. Only an operator
// holding a valid capability token reaches this; req.AdminID comes from the
// validated token. Cancellation restores the reserved source amount in the
// same transaction.
func (s *MoneyServiceImpl) ResolveExchange(ctx context.Context, req ports.ResolveExchangeRequest) (*domain.Exchange, error) {
	if req.Status != domain.ExchangeStatusCompleted && req.Status != domain.ExchangeStatusCancelled {
		return nil, apperror.Validation("status must be COMPLETED or CANCELLED")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	exch, err := s.exchangeRepo.GetByIDForUpdate(ctx, dbTx, req.ExchangeID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock exchange: %w", err))
	}
	if exch == nil {
		return nil, apperror.ErrNotFound("Exchange")
	}
	if exch.IsTerminal() {
		return nil, apperror.ErrAlreadyResolved("Exchange")
	}
	committed := false
	if req.Token != "" {
		// Burn the capability token in the same transaction; a second
		// request with the same link loses here.
		if err := s.tokenSvc.Consume(ctx, dbTx, req.Token); err != nil {
			return nil, err
		}
		// The Redis fast-path guard fires before commit. If the transaction
		// fails the token stays unconsumed in the database, so the guard must
		// be released or the link is dead for its TTL.
		defer func() {
			if !committed {
				s.tokenSvc.Release(ctx, req.Token)
			}
		}()
	}

	switch req.Status {
	case domain.ExchangeStatusCompleted:
		exch.TxID = req.TxID
		if req.DestinationAddress != nil {
			exch.DestinationAddress = req.DestinationAddress
		}
		if exch.MovementID != nil {
			if err := s.movementRepo.UpdateStatus(ctx, dbTx, *exch.MovementID, domain.MovementStatusCompleted); err != nil {
				return nil, apperror.InternalError(fmt.Errorf("complete movement: %w", err))
			}
		}
	case domain.ExchangeStatusCancelled:
		if exch.MovementID != nil {
			if err := s.movementRepo.UpdateStatus(ctx, dbTx, *exch.MovementID, domain.MovementStatusCancelled); err != nil {
				return nil, apperror.InternalError(fmt.Errorf("cancel movement: %w", err))
			}
		}
		if _, err := creditInTx(ctx, dbTx, s.walletRepo, s.movementRepo,
			exch.UserID, exch.FromCurrency, exch.FromAmount,
			domain.MovementTypeExchange, domain.MovementStatusCompleted, "exchange cancelled, funds returned"); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	exch.Status = req.Status
	exch.AdminID = &req.AdminID
	exch.CompletedAt = &now
	if err := s.exchangeRepo.Resolve(ctx, dbTx, exch); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("resolve exchange: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	committed = true

	s.log.Info().
		Str("exchange_id", exch.ID.String()).
		Str("status", string(exch.Status)).
		Str("admin_id", req.AdminID.String()).
		Msg("exchange resolved")
	return exch, nil
}

// ResolveWithdrawal completes or cancels a pending cash-out. Completing has
// no ledger effect (the freeze already debited); cancelling credits the
// frozen amount back atomically with the status change.
func (s *MoneyServiceImpl) ResolveWithdrawal(ctx context.Context, req ports.ResolveWithdrawalRequest) (*domain.Withdrawal, error) {
	if req.Status != domain.WithdrawalStatusCompleted && req.Status != domain.WithdrawalStatusCancelled {
		return nil, apperror.Validation("status must be COMPLETED or CANCELLED")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wd, err := s.withdrawalRepo.GetByIDForUpdate(ctx, dbTx, req.WithdrawalID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock withdrawal: %w", err))
	}
	if wd == nil {
		return nil, apperror.ErrNotFound("Withdrawal")
	}
	if wd.IsTerminal() {
		return nil, apperror.ErrAlreadyResolved("Withdrawal")
	}
	committed := false
	if req.Token != "" {
		if err := s.tokenSvc.Consume(ctx, dbTx, req.Token); err != nil {
			return nil, err
		}
		defer func() {
			if !committed {
				s.tokenSvc.Release(ctx, req.Token)
			}
		}()
	}

	switch req.Status {
	case domain.WithdrawalStatusCompleted:
		if err := s.movementRepo.UpdateStatus(ctx, dbTx, wd.MovementID, domain.MovementStatusCompleted); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("complete movement: %w", err))
		}
	case domain.WithdrawalStatusCancelled:
		if err := s.movementRepo.UpdateStatus(ctx, dbTx, wd.MovementID, domain.MovementStatusCancelled); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("cancel movement: %w", err))
		}
		if _, err := creditInTx(ctx, dbTx, s.walletRepo, s.movementRepo,
			wd.UserID, wd.Currency, wd.Amount,
			domain.MovementTypeWithdrawalRefund, domain.MovementStatusCompleted, "withdrawal cancelled, funds returned"); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	wd.Status = req.Status
	wd.AdminID = &req.AdminID
	wd.CompletedAt = &now
	if err := s.withdrawalRepo.Resolve(ctx, dbTx, wd); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("resolve withdrawal: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	committed = true

	s.log.Info().
		Str("withdrawal_id", wd.ID.String()).
		Str("status", string(wd.Status)).
		Str("admin_id", req.AdminID.String()).
		Msg("withdrawal resolved")
	return wd, nil
}

// Send broadcasts an on-chain transfer out of the custodial wallet. The
// wallet lock is held across the broadcast so the debit and the chain
// transfer commit or fail together; a rejected broadcast leaves the balance
// untouched.
func (s *MoneyServiceImpl) Send(ctx context.Context, req ports.SendRequest) (*domain.Movement, error) {
	if !req.Currency.IsCrypto() {
		return nil, apperror.Validation("only TRX and USDT can be sent on-chain")
	}
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.ToAddress == "" {
		return nil, apperror.Validation("destination address is required")
	}

	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup user: %w", err))
	}
	if user == nil {
		return nil, apperror.ErrNotFound("User")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetForUpdate(ctx, dbTx, req.UserID, req.Currency)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound(string(req.Currency))
	}
	newBalance := wallet.Balance.Sub(req.Amount)
	if newBalance.IsNegative() {
		return nil, apperror.ErrInsufficientFunds()
	}

	payload := fmt.Sprintf("%s|%s|%s|%s", user.TronAddress, req.ToAddress, req.Currency, req.Amount)
	signature, err := s.vault.Sign(user.EncryptedPrivateKey, []byte(payload))
	if err != nil {
		return nil, err
	}

	txid, err := s.chain.BroadcastTransfer(ctx, ports.ChainTransfer{
		FromAddress: user.TronAddress,
		ToAddress:   req.ToAddress,
		Currency:    req.Currency,
		Amount:      req.Amount,
		Signature:   signature,
	})
	if err != nil {
		return nil, apperror.ErrUpstreamUnavailable("chain", err)
	}

	if err := s.walletRepo.UpdateBalance(ctx, dbTx, wallet.ID, newBalance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	walletID := wallet.ID
	mov := &domain.Movement{
		ID:          uuid.New(),
		UserID:      req.UserID,
		WalletID:    &walletID,
		Type:        domain.MovementTypeSend,
		Currency:    req.Currency,
		Amount:      req.Amount.Neg(),
		Status:      domain.MovementStatusCompleted,
		TxID:        &txid,
		Description: "send to " + req.ToAddress,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.movementRepo.Create(ctx, dbTx, mov); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create movement: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("txid", txid).
		Str("currency", string(req.Currency)).
		Str("amount", req.Amount.String()).
		Msg("on-chain send completed")
	return mov, nil
}

// notifyExchange delivers a settlement capability link to the operator chat.
// Failures are logged, never surfaced: the exchange is already committed and
// an operator can still reach it through the panel.
func (s *MoneyServiceImpl) notifyExchange(ctx context.Context, exch *domain.Exchange) {
	link, ok := s.issueLink(ctx, domain.ResourceTypeExchange, exch.ID)
	if !ok {
		return
	}
	if err := s.notifier.NotifyExchange(ctx, exch, link); err != nil {
		s.log.Warn().Err(err).Str("exchange_id", exch.ID.String()).Msg("exchange notification failed")
	}
}

func (s *MoneyServiceImpl) notifyWithdrawal(ctx context.Context, wd *domain.Withdrawal) {
	link, ok := s.issueLink(ctx, domain.ResourceTypeWithdrawal, wd.ID)
	if !ok {
		return
	}
	if err := s.notifier.NotifyWithdrawal(ctx, wd, link); err != nil {
		s.log.Warn().Err(err).Str("withdrawal_id", wd.ID.String()).Msg("withdrawal notification failed")
	}
}

func (s *MoneyServiceImpl) issueLink(ctx context.Context, rt domain.ResourceType, resourceID uuid.UUID) (string, bool) {
	admins, err := s.adminRepo.List(ctx)
	if err != nil || len(admins) == 0 {
		s.log.Warn().Err(err).Msg("no operators available for notification")
		return "", false
	}
	token, err := s.tokenSvc.Issue(ctx, admins[0].ID, rt, resourceID)
	if err != nil {
		s.log.Warn().Err(err).Str("resource_id", resourceID.String()).Msg("capability token issue failed")
		return "", false
	}
	return s.tokenSvc.BuildLink(token), true
}

func generateWithdrawalCode() (string, error) {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	buf := make([]byte, withdrawalCodeLen)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = charset[int(buf[i])%len(charset)]
	}
	return string(buf), nil
}
