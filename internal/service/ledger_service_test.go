package service

import (
	"context"
	"testing"

	"github.com/androidmobilestore/mnw-wallet/internal/core/domain"

	"github.com/androidmobilestore/mnw-wallet/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type ledgerTestDeps struct {
	svc          *LedgerServiceImpl
	walletRepo   *mocks.MockWalletRepository
	movementRepo *mocks.MockMovementRepository
	transactor   *mocks.MockDBTransactor
	ctrl         *gomock.Controller
}

func setupLedgerService(t *testing.T) *ledgerTestDeps {
	ctrl := gomock.NewController(t)
	d := &ledgerTestDeps{
		walletRepo:   mocks.NewMockWalletRepository(ctrl),
		movementRepo: mocks.NewMockMovementRepository(ctrl),
		transactor:   mocks.NewMockDBTransactor(ctrl),
		ctrl:         ctrl,
	}
	d.svc = NewLedgerService(d.walletRepo, d.movementRepo, d.transactor, zerolog.Nop())
	return d
}

func TestLedgerService_Credit_ExistingWallet(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	tx := &mockTx{}
	wallet := &domain.Wallet{ID: uuid.New(), UserID: userID, Currency: domain.CurrencyRUB, Balance: dec("100")}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetForUpdate(ctx, tx, userID, domain.CurrencyRUB).Return(wallet, nil)
	d.walletRepo.EXPECT().UpdateBalance(ctx, tx, wallet.ID, decEq{dec("350")}).Return(nil)
	d.movementRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	mov, err := d.svc.Credit(ctx, userID, domain.CurrencyRUB, dec("250"), domain.MovementTypeTransfer, "top up")
	require.NoError(t, err)
	require.NotNil(t, mov)
	assert.True(t, dec("250").Equal(mov.Amount))
	assert.Equal(t, domain.MovementStatusCompleted, mov.Status)
}

func TestLedgerService_Credit_CreatesMissingWallet(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetForUpdate(ctx, tx, userID, domain.CurrencyUSDT).Return(nil, nil)
	d.walletRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, w *domain.Wallet) error {
			assert.Equal(t, userID, w.UserID)
			assert.Equal(t, domain.CurrencyUSDT, w.Currency)
			assert.True(t, w.Balance.IsZero())
			return nil
		})
	d.walletRepo.EXPECT().UpdateBalance(ctx, tx, gomock.Any(), decEq{dec("5")}).Return(nil)
	d.movementRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	mov, err := d.svc.Credit(ctx, userID, domain.CurrencyUSDT, dec("5"), domain.MovementTypeExchange, "exchange in")
	require.NoError(t, err)
	require.NotNil(t, mov)
}

func TestLedgerService_Debit_MissingWallet(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetForUpdate(ctx, tx, userID, domain.CurrencyTRX).Return(nil, nil)

	mov, err := d.svc.Debit(ctx, userID, domain.CurrencyTRX, dec("1"), domain.MovementTypeSend, "send")
	assert.Nil(t, mov)
	assertAppError(t, err, "WAL_003")
}

func TestLedgerService_Debit_InsufficientFunds(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	tx := &mockTx{}
	wallet := &domain.Wallet{ID: uuid.New(), UserID: userID, Currency: domain.CurrencyRUB, Balance: dec("100")}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetForUpdate(ctx, tx, userID, domain.CurrencyRUB).Return(wallet, nil)

	mov, err := d.svc.Debit(ctx, userID, domain.CurrencyRUB, dec("101"), domain.MovementTypeWithdrawal, "freeze")
	assert.Nil(t, mov)
	assertAppError(t, err, "WAL_002")
}

func TestLedgerService_Debit_InvalidAmount(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	mov, err := d.svc.Debit(context.Background(), uuid.New(), domain.CurrencyRUB, dec("0"), domain.MovementTypeWithdrawal, "freeze")
	assert.Nil(t, mov)
	assertAppError(t, err, "WAL_001")
}

func TestLedgerService_Transfer_Success(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	fromID := uuid.New()
	toID := uuid.New()
	tx := &mockTx{}

	fromWallet := &domain.Wallet{ID: uuid.New(), UserID: fromID, Currency: domain.CurrencyRUB, Balance: dec("1000")}
	toWallet := &domain.Wallet{ID: uuid.New(), UserID: toID, Currency: domain.CurrencyRUB, Balance: dec("50")}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetForUpdate(ctx, tx, fromID, domain.CurrencyRUB).Return(fromWallet, nil)
	d.walletRepo.EXPECT().UpdateBalance(ctx, tx, fromWallet.ID, decEq{dec("400")}).Return(nil)
	d.walletRepo.EXPECT().GetForUpdate(ctx, tx, toID, domain.CurrencyRUB).Return(toWallet, nil)
	d.walletRepo.EXPECT().UpdateBalance(ctx, tx, toWallet.ID, decEq{dec("650")}).Return(nil)
	d.movementRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil).Times(2)

	err := d.svc.Transfer(ctx, fromID, toID, domain.CurrencyRUB, dec("600"))
	assert.NoError(t, err)
}

func TestLedgerService_Transfer_SelfTransfer(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	id := uuid.New()
	err := d.svc.Transfer(context.Background(), id, id, domain.CurrencyRUB, dec("10"))
	assertAppError(t, err, "MOV_006")
}

func TestLedgerService_Transfer_InsufficientFunds(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	fromID := uuid.New()
	toID := uuid.New()
	tx := &mockTx{}

	fromWallet := &domain.Wallet{ID: uuid.New(), UserID: fromID, Currency: domain.CurrencyRUB, Balance: dec("100")}
	toWallet := &domain.Wallet{ID: uuid.New(), UserID: toID, Currency: domain.CurrencyRUB, Balance: dec("0")}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	// Lock order depends on the UUIDs; allow either leg to run first.
	d.walletRepo.EXPECT().GetForUpdate(ctx, tx, fromID, domain.CurrencyRUB).Return(fromWallet, nil).MaxTimes(1)
	d.walletRepo.EXPECT().GetForUpdate(ctx, tx, toID, domain.CurrencyRUB).Return(toWallet, nil).MaxTimes(1)
	d.walletRepo.EXPECT().UpdateBalance(ctx, tx, toWallet.ID, gomock.Any()).Return(nil).MaxTimes(1)
	d.movementRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil).MaxTimes(1)

	err := d.svc.Transfer(ctx, fromID, toID, domain.CurrencyRUB, dec("600"))
	assertAppError(t, err, "WAL_002")
}

func TestLedgerService_Balances_FillsMissingCurrencies(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	d.walletRepo.EXPECT().GetByUserID(ctx, userID).Return([]domain.Wallet{
		{UserID: userID, Currency: domain.CurrencyRUB, Balance: dec("42")},
	}, nil)

	balances, err := d.svc.Balances(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, balances, 3)
	assert.True(t, dec("42").Equal(balances[domain.CurrencyRUB]))
	assert.True(t, balances[domain.CurrencyTRX].IsZero())
	assert.True(t, balances[domain.CurrencyUSDT].IsZero())
}
