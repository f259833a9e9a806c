package integration

import (
	"context"
	"testing"

	"github.com/androidmobilestore/mnw-wallet/internal/core/domain"
	"github.com/androidmobilestore/mnw-wallet/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRollbackRestoresStore applies a mix of writes inside one transaction
// and rolls it back; none of them may survive.
func TestRollbackRestoresStore(t *testing.T) {
	store := newMemStore()
	transactor := newMemTransactor(store)
	walletRepo := &memWalletRepo{store: store}
	movementRepo := &memMovementRepo{store: store}

	ctx := context.Background()
	userID := uuid.New()

	wallet := domain.NewWallet(userID, domain.CurrencyRUB, nil)
	wallet.Balance = dec("100")
	store.wallets[wallet.ID] = wallet

	tx, err := transactor.Begin(ctx)
	require.NoError(t, err)

	require.NoError(t, walletRepo.UpdateBalance(ctx, tx, wallet.ID, dec("40")))
	extra := domain.NewWallet(uuid.New(), domain.CurrencyTRX, nil)
	require.NoError(t, walletRepo.Create(ctx, tx, extra))
	mov := &domain.Movement{ID: uuid.New(), UserID: userID, Currency: domain.CurrencyRUB, Amount: dec("-60")}
	require.NoError(t, movementRepo.Create(ctx, tx, mov))

	require.NoError(t, tx.Rollback(ctx))

	assert.True(t, dec("100").Equal(store.wallets[wallet.ID].Balance))
	assert.NotContains(t, store.wallets, extra.ID)
	assert.Empty(t, store.movements)
}

// TestFailedTransferLeavesNoPartialWrites pins the credit-before-debit lock
// order and underfunds the sender, so the credit leg lands before the debit
// fails. The rolled-back transaction must take the recipient's credit and the
// lazily created wallet with it.
func TestFailedTransferLeavesNoPartialWrites(t *testing.T) {
	store := newMemStore()
	transactor := newMemTransactor(store)
	walletRepo := &memWalletRepo{store: store}
	movementRepo := &memMovementRepo{store: store}
	ledger := service.NewLedgerService(walletRepo, movementRepo, transactor, zerolog.Nop())

	ctx := context.Background()
	// Sender sorts after recipient, which makes the ledger credit first.
	sender := uuid.MustParse("ffffffff-0000-0000-0000-000000000001")
	recipient := uuid.MustParse("00000000-0000-0000-0000-000000000002")

	_, err := ledger.Credit(ctx, sender, domain.CurrencyRUB, dec("100"), domain.MovementTypeTransfer, "seed")
	require.NoError(t, err)

	err = ledger.Transfer(ctx, sender, recipient, domain.CurrencyRUB, dec("600"))
	require.Error(t, err)

	balances, err := ledger.Balances(ctx, sender)
	require.NoError(t, err)
	assert.True(t, dec("100").Equal(balances[domain.CurrencyRUB]), "sender keeps the seeded balance")

	w, err := walletRepo.GetByUserAndCurrency(ctx, recipient, domain.CurrencyRUB)
	require.NoError(t, err)
	assert.Nil(t, w, "recipient wallet created inside the failed transaction is gone")

	movs, err := movementRepo.ListByUser(ctx, recipient, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, movs, "no credit movement survives the rollback")

	movs, err = movementRepo.ListByUser(ctx, sender, 10, 0)
	require.NoError(t, err)
	assert.Len(t, movs, 1, "only the seed credit remains")
}
