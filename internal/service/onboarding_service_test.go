package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/androidmobilestore/mnw-wallet/internal/core/domain"
	"github.com/androidmobilestore/mnw-wallet/internal/core/ports"
	"github.com/androidmobilestore/mnw-wallet/internal/core/ports/mocks"
	"github.com/androidmobilestore/mnw-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type onboardingTestDeps struct {
	svc        *OnboardingServiceImpl
	userRepo   *mocks.MockUserRepository
	walletRepo *mocks.MockWalletRepository
	vault      *mocks.MockKeyVault
	session    *mocks.MockSessionService
	transactor *mocks.MockDBTransactor
	ctrl       *gomock.Controller
}

func setupOnboardingService(t *testing.T) *onboardingTestDeps {
	ctrl := gomock.NewController(t)
	d := &onboardingTestDeps{
		userRepo:   mocks.NewMockUserRepository(ctrl),
		walletRepo: mocks.NewMockWalletRepository(ctrl),
		vault:      mocks.NewMockKeyVault(ctrl),
		session:    mocks.NewMockSessionService(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewOnboardingService(d.userRepo, d.walletRepo, d.vault, d.session, d.transactor, zerolog.Nop())
	return d
}

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func expectProvision(t *testing.T, d *onboardingTestDeps, tx *mockTx, telegramID int64, mnemonic, address string) {
	t.Helper()
	d.vault.EXPECT().DeriveWallet(mnemonic).Return(&ports.DerivedWallet{
		Address:    address,
		PrivateKey: []byte{0x01, 0x02, 0x03},
	}, nil)
	d.vault.EXPECT().Encrypt("010203").Return("enc_key", nil)
	d.vault.EXPECT().Encrypt(mnemonic).Return("enc_mnemonic", nil)

	d.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	d.userRepo.EXPECT().Create(gomock.Any(), tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, user *domain.User) error {
			assert.Equal(t, telegramID, user.TelegramID)
			assert.Equal(t, address, user.TronAddress)
			assert.Equal(t, "enc_key", user.EncryptedPrivateKey)
			assert.Equal(t, "enc_mnemonic", user.EncryptedMnemonic)
			assert.Contains(t, user.CyberLogin, "#")
			return nil
		})

	created := map[domain.Currency]bool{}
	d.walletRepo.EXPECT().Create(gomock.Any(), tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, w *domain.Wallet) error {
			created[w.Currency] = true
			if w.Currency.IsCrypto() {
				require.NotNil(t, w.Address)
				assert.Equal(t, address, *w.Address)
			} else {
				assert.Nil(t, w.Address)
			}
			return nil
		}).Times(3)
	t.Cleanup(func() {
		assert.Len(t, created, 3, "expected RUB, TRX and USDT wallets")
	})
}

func TestOnboardingService_CreateWallet_Success(t *testing.T) {
	d := setupOnboardingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	telegramID := int64(123456)

	d.userRepo.EXPECT().GetByTelegramID(ctx, telegramID).Return(nil, nil)
	d.vault.EXPECT().GenerateMnemonic().Return(testMnemonic, nil)
	expectProvision(t, d, tx, telegramID, testMnemonic, "TAddr1")

	expiresAt := time.Now().Add(24 * time.Hour)
	d.session.EXPECT().Generate(gomock.Any()).Return("jwt-token", expiresAt, nil)

	result, err := d.svc.CreateWallet(ctx, telegramID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, testMnemonic, result.Mnemonic)
	assert.Equal(t, "jwt-token", result.SessionToken)
	assert.Equal(t, "TAddr1", result.User.TronAddress)
	assert.Len(t, strings.Fields(result.Mnemonic), 12)
}

func TestOnboardingService_CreateWallet_AlreadyExists(t *testing.T) {
	d := setupOnboardingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	telegramID := int64(123456)

	d.userRepo.EXPECT().GetByTelegramID(ctx, telegramID).Return(&domain.User{ID: uuid.New(), TelegramID: telegramID}, nil)

	result, err := d.svc.CreateWallet(ctx, telegramID)
	assert.Nil(t, result)
	assertAppError(t, err, "USR_002")
}

func TestOnboardingService_RestoreWallet_ExistingAccount(t *testing.T) {
	d := setupOnboardingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	user := &domain.User{ID: uuid.New(), TronAddress: "TAddr1", CyberLogin: "NeoWolf#1234"}

	d.vault.EXPECT().DeriveWallet(testMnemonic).Return(&ports.DerivedWallet{Address: "TAddr1"}, nil)
	d.userRepo.EXPECT().GetByAddress(ctx, "TAddr1").Return(user, nil)

	expiresAt := time.Now().Add(24 * time.Hour)
	d.session.EXPECT().Generate(user.ID).Return("jwt-token", expiresAt, nil)

	result, err := d.svc.RestoreWallet(ctx, int64(999), testMnemonic)
	require.NoError(t, err)
	assert.Equal(t, user, result.User)
	assert.Empty(t, result.Mnemonic, "restore never re-reveals the phrase")
	assert.Equal(t, "jwt-token", result.SessionToken)
}

func TestOnboardingService_RestoreWallet_UnknownAddressProvisions(t *testing.T) {
	d := setupOnboardingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	telegramID := int64(777)

	d.vault.EXPECT().DeriveWallet(testMnemonic).Return(&ports.DerivedWallet{Address: "TAddr2"}, nil)
	d.userRepo.EXPECT().GetByAddress(ctx, "TAddr2").Return(nil, nil)
	expectProvision(t, d, tx, telegramID, testMnemonic, "TAddr2")

	d.session.EXPECT().Generate(gomock.Any()).Return("jwt-token", time.Now().Add(time.Hour), nil)

	result, err := d.svc.RestoreWallet(ctx, telegramID, testMnemonic)
	require.NoError(t, err)
	assert.Equal(t, "TAddr2", result.User.TronAddress)
	assert.Empty(t, result.Mnemonic)
}

func TestOnboardingService_RestoreWallet_InvalidMnemonic(t *testing.T) {
	d := setupOnboardingService(t)
	defer d.ctrl.Finish()

	d.vault.EXPECT().DeriveWallet("garbage").Return(nil, apperror.ErrInvalidMnemonic())

	result, err := d.svc.RestoreWallet(context.Background(), int64(1), "garbage")
	assert.Nil(t, result)
	assertAppError(t, err, "USR_001")
}
