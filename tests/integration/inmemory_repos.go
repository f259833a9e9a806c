package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/androidmobilestore/mnw-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// The in-memory repos back the full application stack in integration tests.
// A single store-wide mutex held for the lifetime of each transaction stands
// in for PostgreSQL row locks: FOR UPDATE reads and the writes that follow
// them are serialized exactly as they would be against a real database.
// Every write made through a transaction registers an undo step, so Rollback
// restores the store to its pre-transaction state the way an aborted database
// transaction would.

type memStore struct {
	mu              sync.Mutex
	users           map[uuid.UUID]*domain.User
	admins          []domain.Admin
	wallets         map[uuid.UUID]*domain.Wallet
	movements       map[uuid.UUID]*domain.Movement
	exchanges       map[uuid.UUID]*domain.Exchange
	withdrawals     map[uuid.UUID]*domain.Withdrawal
	tokens          map[string]*domain.AdminLinkToken
	reconciliations []domain.Reconciliation
}

func newMemStore() *memStore {
	return &memStore{
		users:       make(map[uuid.UUID]*domain.User),
		wallets:     make(map[uuid.UUID]*domain.Wallet),
		movements:   make(map[uuid.UUID]*domain.Movement),
		exchanges:   make(map[uuid.UUID]*domain.Exchange),
		withdrawals: make(map[uuid.UUID]*domain.Withdrawal),
		tokens:      make(map[string]*domain.AdminLinkToken),
	}
}

// --- Transactor ---

// memTransactor serializes transactions on the store mutex. Begin blocks
// until the previous transaction commits or rolls back.
type memTransactor struct {
	store *memStore
}

func newMemTransactor(store *memStore) *memTransactor {
	return &memTransactor{store: store}
}

func (t *memTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.store.mu.Lock()
	return &memTx{store: t.store}, nil
}

// memTx collects undo steps for every write and releases the store mutex
// exactly once, on Commit or Rollback. Rollback replays the undo log in
// reverse before releasing, still under the store mutex.
type memTx struct {
	store *memStore
	mu    sync.Mutex
	undo  []func()
	done  bool
}

// journal registers an undo step with the enclosing transaction. Writes made
// outside a transaction pass a different pgx.Tx (or none) and are not undone.
func journal(tx pgx.Tx, fn func()) {
	if m, ok := tx.(*memTx); ok {
		m.undo = append(m.undo, fn)
	}
}

func (t *memTx) finish(rollback bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return
	}
	t.done = true
	if rollback {
		for i := len(t.undo) - 1; i >= 0; i-- {
			t.undo[i]()
		}
	}
	t.undo = nil
	t.store.mu.Unlock()
}

func (t *memTx) Commit(ctx context.Context) error   { t.finish(false); return nil }
func (t *memTx) Rollback(ctx context.Context) error { t.finish(true); return nil }

func (t *memTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *memTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *memTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *memTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *memTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *memTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *memTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *memTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (t *memTx) Conn() *pgx.Conn                                               { return nil }

// --- User Repo ---

type memUserRepo struct {
	store *memStore
}

func (r *memUserRepo) Create(ctx context.Context, tx pgx.Tx, user *domain.User) error {
	for _, existing := range r.store.users {
		if existing.TelegramID == user.TelegramID {
			return fmt.Errorf("telegram id already registered")
		}
	}
	u := *user
	r.store.users[user.ID] = &u
	journal(tx, func() { delete(r.store.users, user.ID) })
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := r.store.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *memUserRepo) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	for _, u := range r.store.users {
		if u.TelegramID == telegramID {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByCyberLogin(ctx context.Context, cyberLogin string) (*domain.User, error) {
	for _, u := range r.store.users {
		if u.CyberLogin == cyberLogin {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByAddress(ctx context.Context, address string) (*domain.User, error) {
	for _, u := range r.store.users {
		if u.TronAddress == address {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) ListWithAddresses(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.store.users {
		if u.TronAddress != "" {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *memUserRepo) IncrementStats(ctx context.Context, tx pgx.Tx, userID uuid.UUID, volume decimal.Decimal) error {
	u, ok := r.store.users[userID]
	if !ok {
		return fmt.Errorf("user not found")
	}
	prevCount, prevVolume := u.DealCount, u.Volume
	u.DealCount++
	u.Volume = u.Volume.Add(volume)
	journal(tx, func() { u.DealCount, u.Volume = prevCount, prevVolume })
	return nil
}

// --- Admin Repo ---

type memAdminRepo struct {
	store *memStore
}

func (r *memAdminRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	for i := range r.store.admins {
		if r.store.admins[i].ID == id {
			copied := r.store.admins[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memAdminRepo) List(ctx context.Context) ([]domain.Admin, error) {
	out := make([]domain.Admin, len(r.store.admins))
	copy(out, r.store.admins)
	return out, nil
}

// --- Wallet Repo ---

type memWalletRepo struct {
	store *memStore
}

func (r *memWalletRepo) Create(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet) error {
	w := *wallet
	r.store.wallets[wallet.ID] = &w
	journal(tx, func() { delete(r.store.wallets, wallet.ID) })
	return nil
}

func (r *memWalletRepo) GetByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Wallet, error) {
	var out []domain.Wallet
	for _, w := range r.store.wallets {
		if w.UserID == userID {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (r *memWalletRepo) GetByUserAndCurrency(ctx context.Context, userID uuid.UUID, currency domain.Currency) (*domain.Wallet, error) {
	for _, w := range r.store.wallets {
		if w.UserID == userID && w.Currency == currency {
			copied := *w
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memWalletRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID, currency domain.Currency) (*domain.Wallet, error) {
	return r.GetByUserAndCurrency(ctx, userID, currency)
}

func (r *memWalletRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance decimal.Decimal) error {
	w, ok := r.store.wallets[walletID]
	if !ok {
		return fmt.Errorf("wallet not found")
	}
	prevBalance, prevUpdated := w.Balance, w.UpdatedAt
	w.Balance = balance
	w.UpdatedAt = time.Now().UTC()
	journal(tx, func() { w.Balance, w.UpdatedAt = prevBalance, prevUpdated })
	return nil
}

// --- Movement Repo ---

type memMovementRepo struct {
	store *memStore
}

func (r *memMovementRepo) Create(ctx context.Context, tx pgx.Tx, movement *domain.Movement) error {
	m := *movement
	r.store.movements[movement.ID] = &m
	journal(tx, func() { delete(r.store.movements, movement.ID) })
	return nil
}

func (r *memMovementRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Movement, error) {
	var out []domain.Movement
	for _, m := range r.store.movements {
		if m.UserID == userID {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return []domain.Movement{}, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], nil
}

func (r *memMovementRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.MovementStatus) error {
	m, ok := r.store.movements[id]
	if !ok {
		return fmt.Errorf("movement not found")
	}
	prev := m.Status
	m.Status = status
	journal(tx, func() { m.Status = prev })
	return nil
}

// --- Exchange Repo ---

type memExchangeRepo struct {
	store *memStore
}

func (r *memExchangeRepo) Create(ctx context.Context, tx pgx.Tx, exchange *domain.Exchange) error {
	e := *exchange
	r.store.exchanges[exchange.ID] = &e
	journal(tx, func() { delete(r.store.exchanges, exchange.ID) })
	return nil
}

func (r *memExchangeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Exchange, error) {
	e, ok := r.store.exchanges[id]
	if !ok {
		return nil, nil
	}
	copied := *e
	return &copied, nil
}

func (r *memExchangeRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Exchange, error) {
	return r.GetByID(ctx, id)
}

func (r *memExchangeRepo) Resolve(ctx context.Context, tx pgx.Tx, exchange *domain.Exchange) error {
	e, ok := r.store.exchanges[exchange.ID]
	if !ok {
		return fmt.Errorf("exchange not found")
	}
	prev := *e
	e.Status = exchange.Status
	e.TxID = exchange.TxID
	e.DestinationAddress = exchange.DestinationAddress
	e.AdminID = exchange.AdminID
	e.CompletedAt = exchange.CompletedAt
	journal(tx, func() { *e = prev })
	return nil
}

// --- Withdrawal Repo ---

type memWithdrawalRepo struct {
	store *memStore
}

func (r *memWithdrawalRepo) Create(ctx context.Context, tx pgx.Tx, withdrawal *domain.Withdrawal) error {
	w := *withdrawal
	r.store.withdrawals[withdrawal.ID] = &w
	journal(tx, func() { delete(r.store.withdrawals, withdrawal.ID) })
	return nil
}

func (r *memWithdrawalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error) {
	w, ok := r.store.withdrawals[id]
	if !ok {
		return nil, nil
	}
	copied := *w
	return &copied, nil
}

func (r *memWithdrawalRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Withdrawal, error) {
	return r.GetByID(ctx, id)
}

func (r *memWithdrawalRepo) Resolve(ctx context.Context, tx pgx.Tx, withdrawal *domain.Withdrawal) error {
	w, ok := r.store.withdrawals[withdrawal.ID]
	if !ok {
		return fmt.Errorf("withdrawal not found")
	}
	prev := *w
	w.Status = withdrawal.Status
	w.AdminID = withdrawal.AdminID
	w.CompletedAt = withdrawal.CompletedAt
	journal(tx, func() { *w = prev })
	return nil
}

// --- Admin Token Repo ---

type memAdminTokenRepo struct {
	mu    sync.Mutex
	store *memStore
}

func (r *memAdminTokenRepo) Create(ctx context.Context, token *domain.AdminLinkToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := *token
	r.store.tokens[token.Token] = &t
	return nil
}

func (r *memAdminTokenRepo) GetByToken(ctx context.Context, token string) (*domain.AdminLinkToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.store.tokens[token]
	if !ok {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

func (r *memAdminTokenRepo) Consume(ctx context.Context, tx pgx.Tx, token string, usedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.store.tokens[token]
	if !ok || t.UsedAt != nil {
		return false, nil
	}
	t.UsedAt = &usedAt
	journal(tx, func() {
		r.mu.Lock()
		t.UsedAt = nil
		r.mu.Unlock()
	})
	return true, nil
}

// --- Reconciliation Repo ---

type memReconciliationRepo struct {
	store *memStore
}

func (r *memReconciliationRepo) Create(ctx context.Context, tx pgx.Tx, rec *domain.Reconciliation) error {
	prev := len(r.store.reconciliations)
	r.store.reconciliations = append(r.store.reconciliations, *rec)
	journal(tx, func() { r.store.reconciliations = r.store.reconciliations[:prev] })
	return nil
}
