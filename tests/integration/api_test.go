package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	httpHandler "github.com/androidmobilestore/mnw-wallet/internal/adapter/http/handler"
	redisStorage "github.com/androidmobilestore/mnw-wallet/internal/adapter/storage/redis"
	"github.com/androidmobilestore/mnw-wallet/internal/core/domain"
	"github.com/androidmobilestore/mnw-wallet/internal/core/ports"
	"github.com/androidmobilestore/mnw-wallet/internal/service"
	"github.com/androidmobilestore/mnw-wallet/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds the full application stack: real HTTP layer, middleware,
// services, key vault and capability tokens, backed by in-memory repos and
// miniredis. Only the rate feed, the chain and Telegram are stubbed.

type testApp struct {
	server     *httptest.Server
	redis      *miniredis.Miniredis
	store      *memStore
	ledger     ports.LedgerService
	reconciler ports.Reconciler
	notifier   *captureNotifier
	chain      *stubChain
	adminID    uuid.UUID
}

// stubRateSource serves a fixed set of pairs.
type stubRateSource struct{}

func (s *stubRateSource) FetchPairs(ctx context.Context) ([]domain.RatePair, error) {
	return []domain.RatePair{
		{From: domain.CurrencyRUB, To: domain.CurrencyUSDT, Rate: dec("0.0125"), MinAmount: dec("100"), MaxAmount: dec("100000")},
		{From: domain.CurrencyUSDT, To: domain.CurrencyRUB, Rate: dec("95.5"), MinAmount: dec("1"), MaxAmount: dec("10000")},
		{From: domain.CurrencyRUB, To: domain.CurrencyTRX, Rate: dec("0.0448"), MinAmount: dec("100"), MaxAmount: dec("100000")},
		{From: domain.CurrencyTRX, To: domain.CurrencyRUB, Rate: dec("22.3"), MinAmount: dec("1"), MaxAmount: dec("50000")},
	}, nil
}

// captureNotifier records capability links instead of posting to Telegram.
type captureNotifier struct {
	mu              sync.Mutex
	exchangeLinks   map[uuid.UUID]string
	withdrawalLinks map[uuid.UUID]string
}

func newCaptureNotifier() *captureNotifier {
	return &captureNotifier{
		exchangeLinks:   make(map[uuid.UUID]string),
		withdrawalLinks: make(map[uuid.UUID]string),
	}
}

func (n *captureNotifier) NotifyExchange(ctx context.Context, exchange *domain.Exchange, link string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.exchangeLinks[exchange.ID] = link
	return nil
}

func (n *captureNotifier) NotifyWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal, link string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.withdrawalLinks[withdrawal.ID] = link
	return nil
}

func (n *captureNotifier) exchangeToken(t *testing.T, exchangeID uuid.UUID) string {
	t.Helper()
	n.mu.Lock()
	defer n.mu.Unlock()
	link, ok := n.exchangeLinks[exchangeID]
	require.True(t, ok, "no capability link captured for exchange %s", exchangeID)
	return tokenFromLink(t, link)
}

func (n *captureNotifier) withdrawalToken(t *testing.T, withdrawalID uuid.UUID) string {
	t.Helper()
	n.mu.Lock()
	defer n.mu.Unlock()
	link, ok := n.withdrawalLinks[withdrawalID]
	require.True(t, ok, "no capability link captured for withdrawal %s", withdrawalID)
	return tokenFromLink(t, link)
}

func tokenFromLink(t *testing.T, link string) string {
	t.Helper()
	u, err := url.Parse(link)
	require.NoError(t, err)
	token := u.Query().Get("t")
	require.NotEmpty(t, token)
	return token
}

// stubChain answers balance queries and broadcasts with canned values.
type stubChain struct {
	mu       sync.Mutex
	balances map[string]domain.ChainBalances
	txid     string
	err      error
}

func (c *stubChain) Balances(ctx context.Context, address string) (domain.ChainBalances, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return domain.ChainBalances{}, c.err
	}
	return c.balances[address], nil
}

func (c *stubChain) BroadcastTransfer(ctx context.Context, transfer ports.ChainTransfer) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return "", c.err
	}
	return c.txid, nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	store := newMemStore()
	adminID := uuid.New()
	store.admins = append(store.admins, domain.Admin{
		ID:         adminID,
		TelegramID: 111,
		Username:   "operator",
		City:       "nnov",
		CreatedAt:  time.Now().UTC(),
	})

	userRepo := &memUserRepo{store: store}
	adminRepo := &memAdminRepo{store: store}
	walletRepo := &memWalletRepo{store: store}
	movementRepo := &memMovementRepo{store: store}
	exchangeRepo := &memExchangeRepo{store: store}
	withdrawalRepo := &memWithdrawalRepo{store: store}
	tokenRepo := &memAdminTokenRepo{store: store}
	reconRepo := &memReconciliationRepo{store: store}
	transactor := newMemTransactor(store)

	log := logger.New("debug", false)

	vault, err := service.NewVaultService("integration-master-secret")
	require.NoError(t, err)
	sessionSvc := service.NewJWTSessionService("test-jwt-secret-key-32bytes!!", 24*time.Hour, "test-issuer")
	replayGuard := redisStorage.NewReplayGuard(rdb)
	tokenSvc := service.NewAdminTokenService(tokenRepo, replayGuard, "http://panel.local", log)

	oracle := service.NewRateOracle(&stubRateSource{}, log)
	require.NoError(t, oracle.Refresh(context.Background()))

	chain := &stubChain{balances: make(map[string]domain.ChainBalances), txid: "txid_integration"}
	notifier := newCaptureNotifier()

	ledgerSvc := service.NewLedgerService(walletRepo, movementRepo, transactor, log)
	moneySvc := service.NewMoneyService(
		userRepo, walletRepo, movementRepo, exchangeRepo, withdrawalRepo, adminRepo,
		ledgerSvc, oracle, vault, chain, tokenSvc, notifier, transactor,
		5*time.Minute, log,
	)
	onboardingSvc := service.NewOnboardingService(userRepo, walletRepo, vault, sessionSvc, transactor, log)
	reconciler := service.NewReconcilerService(chain, userRepo, walletRepo, reconRepo, transactor, time.Second, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		OnboardingSvc:  onboardingSvc,
		LedgerSvc:      ledgerSvc,
		MoneySvc:       moneySvc,
		SessionSvc:     sessionSvc,
		AdminTokenSvc:  tokenSvc,
		MovementRepo:   movementRepo,
		ExchangeRepo:   exchangeRepo,
		WithdrawalRepo: withdrawalRepo,
		Logger:         log,
	})

	server := httptest.NewServer(router)

	return &testApp{
		server:     server,
		redis:      mr,
		store:      store,
		ledger:     ledgerSvc,
		reconciler: reconciler,
		notifier:   notifier,
		chain:      chain,
		adminID:    adminID,
	}
}

func (a *testApp) close() {
	a.server.Close()
	a.redis.Close()
}

// --- Helpers ---

type onboardedUser struct {
	ID          uuid.UUID
	CyberLogin  string
	TronAddress string
	Mnemonic    string
	Token       string
}

func createWalletUser(t *testing.T, app *testApp, telegramID int64) onboardedUser {
	t.Helper()
	body, _ := json.Marshal(map[string]int64{"telegram_id": telegramID})
	resp, err := http.Post(app.server.URL+"/api/v1/wallet/create", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := decodeData(t, resp)
	userID, err := uuid.Parse(data["user_id"].(string))
	require.NoError(t, err)
	return onboardedUser{
		ID:          userID,
		CyberLogin:  data["cyber_login"].(string),
		TronAddress: data["tron_address"].(string),
		Mnemonic:    data["mnemonic"].(string),
		Token:       data["session_token"].(string),
	}
}

func fund(t *testing.T, app *testApp, userID uuid.UUID, currency domain.Currency, amount string) {
	t.Helper()
	_, err := app.ledger.Credit(context.Background(), userID, currency, dec(amount),
		domain.MovementTypeTransfer, "test funding")
	require.NoError(t, err)
}

func authedRequest(t *testing.T, app *testApp, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, app.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeData(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %+v", body)
	return data
}

func getBalances(t *testing.T, app *testApp, token string) map[string]interface{} {
	t.Helper()
	resp := authedRequest(t, app, http.MethodGet, "/api/v1/wallet/balance", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decodeData(t, resp)["balances"].(map[string]interface{})
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_CreateWallet(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	user := createWalletUser(t, app, 42)
	assert.NotEmpty(t, user.Mnemonic)
	assert.Contains(t, user.CyberLogin, "#")
	assert.Equal(t, "T", user.TronAddress[:1])
	assert.NotEmpty(t, user.Token)

	// All three wallets exist and start at zero.
	balances := getBalances(t, app, user.Token)
	assert.Equal(t, "0", balances["RUB"])
	assert.Equal(t, "0", balances["TRX"])
	assert.Equal(t, "0", balances["USDT"])
}

func TestIntegration_CreateWallet_Duplicate(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	createWalletUser(t, app, 42)

	body, _ := json.Marshal(map[string]int64{"telegram_id": 42})
	resp, err := http.Post(app.server.URL+"/api/v1/wallet/create", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestIntegration_RestoreWallet(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	user := createWalletUser(t, app, 42)

	// Restore from a new device (different Telegram account, same phrase).
	body, _ := json.Marshal(map[string]interface{}{
		"telegram_id": int64(43),
		"mnemonic":    user.Mnemonic,
	})
	resp, err := http.Post(app.server.URL+"/api/v1/wallet/restore", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := decodeData(t, resp)
	assert.Equal(t, user.ID.String(), data["user_id"])
	assert.Equal(t, user.CyberLogin, data["cyber_login"])
	_, leaked := data["mnemonic"]
	assert.False(t, leaked, "restore must not re-reveal the phrase")
}

func TestIntegration_SessionRequired(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp := authedRequest(t, app, http.MethodGet, "/api/v1/wallet/balance", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestIntegration_ExchangeSettlementFlow(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	user := createWalletUser(t, app, 42)
	fund(t, app, user.ID, domain.CurrencyRUB, "1000")

	// RUB -> USDT reserves the source amount and stays PENDING.
	resp := authedRequest(t, app, http.MethodPost, "/api/v1/exchange", user.Token, map[string]string{
		"from_currency": "RUB",
		"to_currency":   "USDT",
		"amount":        "500",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := decodeData(t, resp)
	resp.Body.Close()

	assert.Equal(t, "PENDING", data["status"])
	assert.Equal(t, "6.25", data["to_amount"])
	// The pending exchange already carries the settlement destination.
	assert.Equal(t, user.TronAddress, data["destination_address"])
	exchangeID, err := uuid.Parse(data["id"].(string))
	require.NoError(t, err)

	balances := getBalances(t, app, user.Token)
	assert.Equal(t, "500", balances["RUB"])

	// The operator got a capability link and settles through it.
	capToken := app.notifier.exchangeToken(t, exchangeID)

	getResp := authedRequest(t, app, http.MethodGet,
		fmt.Sprintf("/api/v1/admin/exchanges/%s?t=%s", exchangeID, capToken), "", nil)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	adminView := decodeData(t, getResp)
	getResp.Body.Close()
	assert.Equal(t, user.TronAddress, adminView["destination_address"])

	patchResp := authedRequest(t, app, http.MethodPatch,
		fmt.Sprintf("/api/v1/admin/exchanges/%s?t=%s", exchangeID, capToken), "", map[string]string{
			"status": "COMPLETED",
			"txid":   "onchain-tx-1",
		})
	require.Equal(t, http.StatusOK, patchResp.StatusCode)
	resolved := decodeData(t, patchResp)
	patchResp.Body.Close()
	assert.Equal(t, "COMPLETED", resolved["status"])
	assert.Equal(t, "onchain-tx-1", resolved["txid"])

	// Settlement happened on-chain; the custodial RUB stays reserved-and-spent.
	balances = getBalances(t, app, user.Token)
	assert.Equal(t, "500", balances["RUB"])
	assert.Equal(t, "0", balances["USDT"])

	// The capability link is single use.
	again := authedRequest(t, app, http.MethodPatch,
		fmt.Sprintf("/api/v1/admin/exchanges/%s?t=%s", exchangeID, capToken), "", map[string]string{
			"status": "CANCELLED",
		})
	again.Body.Close()
	assert.Equal(t, http.StatusForbidden, again.StatusCode)
}

func TestIntegration_ExchangeCancelRefunds(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	user := createWalletUser(t, app, 42)
	fund(t, app, user.ID, domain.CurrencyRUB, "1000")

	resp := authedRequest(t, app, http.MethodPost, "/api/v1/exchange", user.Token, map[string]string{
		"from_currency": "RUB",
		"to_currency":   "USDT",
		"amount":        "500",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := decodeData(t, resp)
	resp.Body.Close()
	exchangeID, err := uuid.Parse(data["id"].(string))
	require.NoError(t, err)

	capToken := app.notifier.exchangeToken(t, exchangeID)
	patchResp := authedRequest(t, app, http.MethodPatch,
		fmt.Sprintf("/api/v1/admin/exchanges/%s?t=%s", exchangeID, capToken), "", map[string]string{
			"status": "CANCELLED",
		})
	require.Equal(t, http.StatusOK, patchResp.StatusCode)
	patchResp.Body.Close()

	// Reserved funds came back.
	balances := getBalances(t, app, user.Token)
	assert.Equal(t, "1000", balances["RUB"])
}

func TestIntegration_ExchangeCryptoToFiatCompletesImmediately(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	user := createWalletUser(t, app, 42)
	fund(t, app, user.ID, domain.CurrencyUSDT, "10")

	resp := authedRequest(t, app, http.MethodPost, "/api/v1/exchange", user.Token, map[string]string{
		"from_currency": "USDT",
		"to_currency":   "RUB",
		"amount":        "10",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := decodeData(t, resp)
	resp.Body.Close()
	assert.Equal(t, "COMPLETED", data["status"])
	assert.Equal(t, "955", data["to_amount"])

	balances := getBalances(t, app, user.Token)
	assert.Equal(t, "0", balances["USDT"])
	assert.Equal(t, "955", balances["RUB"])
}

func TestIntegration_ExchangeBelowMinimum(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	user := createWalletUser(t, app, 42)
	fund(t, app, user.ID, domain.CurrencyRUB, "1000")

	resp := authedRequest(t, app, http.MethodPost, "/api/v1/exchange", user.Token, map[string]string{
		"from_currency": "RUB",
		"to_currency":   "USDT",
		"amount":        "50",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestIntegration_WithdrawalFlow(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	user := createWalletUser(t, app, 42)
	fund(t, app, user.ID, domain.CurrencyRUB, "1000")

	resp := authedRequest(t, app, http.MethodPost, "/api/v1/withdrawals", user.Token, map[string]string{
		"amount":       "200",
		"city":         "nnov",
		"full_name":    "Ivan Petrov",
		"contact_type": "telegram",
		"contact":      "@ivan",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := decodeData(t, resp)
	resp.Body.Close()

	assert.Equal(t, "PENDING", data["status"])
	pickupCode := data["token"].(string)
	assert.Len(t, pickupCode, 8)
	withdrawalID, err := uuid.Parse(data["id"].(string))
	require.NoError(t, err)

	// Funds are frozen immediately.
	balances := getBalances(t, app, user.Token)
	assert.Equal(t, "800", balances["RUB"])

	// A request exceeding the remaining balance fails and changes nothing.
	over := authedRequest(t, app, http.MethodPost, "/api/v1/withdrawals", user.Token, map[string]string{
		"amount":       "900",
		"city":         "nnov",
		"full_name":    "Ivan Petrov",
		"contact_type": "telegram",
		"contact":      "@ivan",
	})
	over.Body.Close()
	assert.Equal(t, http.StatusPaymentRequired, over.StatusCode)
	balances = getBalances(t, app, user.Token)
	assert.Equal(t, "800", balances["RUB"])

	// Cancelling through the capability link restores the frozen amount.
	capToken := app.notifier.withdrawalToken(t, withdrawalID)
	patchResp := authedRequest(t, app, http.MethodPatch,
		fmt.Sprintf("/api/v1/admin/withdrawals/%s?t=%s", withdrawalID, capToken), "", map[string]string{
			"status": "CANCELLED",
		})
	require.Equal(t, http.StatusOK, patchResp.StatusCode)
	patchResp.Body.Close()

	balances = getBalances(t, app, user.Token)
	assert.Equal(t, "1000", balances["RUB"])
}

func TestIntegration_TransferBetweenUsers(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	alice := createWalletUser(t, app, 42)
	bob := createWalletUser(t, app, 43)
	fund(t, app, alice.ID, domain.CurrencyRUB, "1000")

	resp := authedRequest(t, app, http.MethodPost, "/api/v1/transfer", alice.Token, map[string]string{
		"to_cyber_login": bob.CyberLogin,
		"currency":       "RUB",
		"amount":         "250",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "750", getBalances(t, app, alice.Token)["RUB"])
	assert.Equal(t, "250", getBalances(t, app, bob.Token)["RUB"])

	// Self transfer is rejected.
	self := authedRequest(t, app, http.MethodPost, "/api/v1/transfer", alice.Token, map[string]string{
		"to_cyber_login": alice.CyberLogin,
		"currency":       "RUB",
		"amount":         "10",
	})
	self.Body.Close()
	assert.Equal(t, http.StatusBadRequest, self.StatusCode)

	// Unknown recipient.
	unknown := authedRequest(t, app, http.MethodPost, "/api/v1/transfer", alice.Token, map[string]string{
		"to_cyber_login": "NoSuchUser#0000",
		"currency":       "RUB",
		"amount":         "10",
	})
	unknown.Body.Close()
	assert.Equal(t, http.StatusNotFound, unknown.StatusCode)
}

func TestIntegration_MovementsHistory(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	user := createWalletUser(t, app, 42)
	fund(t, app, user.ID, domain.CurrencyRUB, "1000")

	resp := authedRequest(t, app, http.MethodGet, "/api/v1/wallet/movements", user.Token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := decodeData(t, resp)
	items := data["items"].([]interface{})
	require.Len(t, items, 1)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "1000", first["amount"])
	assert.Equal(t, "COMPLETED", first["status"])
}

func TestIntegration_OnChainSend(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	user := createWalletUser(t, app, 42)
	fund(t, app, user.ID, domain.CurrencyTRX, "10")

	resp := authedRequest(t, app, http.MethodPost, "/api/v1/wallet/send", user.Token, map[string]string{
		"currency":   "TRX",
		"to_address": "TDestinationAddr111111111111111111",
		"amount":     "3",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := decodeData(t, resp)
	resp.Body.Close()

	assert.Equal(t, "txid_integration", data["txid"])
	assert.Equal(t, "-3", data["amount"])
	assert.Equal(t, "7", getBalances(t, app, user.Token)["TRX"])
}

func TestIntegration_OnChainSendBroadcastFailure(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	user := createWalletUser(t, app, 42)
	fund(t, app, user.ID, domain.CurrencyTRX, "10")

	app.chain.mu.Lock()
	app.chain.err = fmt.Errorf("node timeout")
	app.chain.mu.Unlock()

	resp := authedRequest(t, app, http.MethodPost, "/api/v1/wallet/send", user.Token, map[string]string{
		"currency":   "TRX",
		"to_address": "TDestinationAddr111111111111111111",
		"amount":     "3",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	// Failed broadcast must not touch the balance.
	assert.Equal(t, "10", getBalances(t, app, user.Token)["TRX"])
}

func TestIntegration_ReconciliationReplacesBalances(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	user := createWalletUser(t, app, 42)
	fund(t, app, user.ID, domain.CurrencyTRX, "3")

	app.chain.mu.Lock()
	app.chain.balances[user.TronAddress] = domain.ChainBalances{
		TRX:  dec("12.5"),
		USDT: dec("40"),
	}
	app.chain.mu.Unlock()

	observed, err := app.reconciler.ReconcileAddress(context.Background(), user.ID, user.TronAddress)
	require.NoError(t, err)
	require.NotNil(t, observed)

	balances := getBalances(t, app, user.Token)
	assert.Equal(t, "12.5", balances["TRX"])
	assert.Equal(t, "40", balances["USDT"])

	// Each replaced balance leaves an audit row.
	assert.Len(t, app.store.reconciliations, 2)
}

func TestIntegration_ReconciliationPreservesOnChainFailure(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	user := createWalletUser(t, app, 42)
	fund(t, app, user.ID, domain.CurrencyTRX, "3")

	app.chain.mu.Lock()
	app.chain.err = fmt.Errorf("node unavailable")
	app.chain.mu.Unlock()

	observed, err := app.reconciler.ReconcileAddress(context.Background(), user.ID, user.TronAddress)
	require.NoError(t, err)
	assert.Nil(t, observed)

	// Last-known balances survive the failed query.
	assert.Equal(t, "3", getBalances(t, app, user.Token)["TRX"])
	assert.Empty(t, app.store.reconciliations)
}
