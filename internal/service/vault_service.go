package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/androidmobilestore/mnw-wallet/internal/core/ports"
	"github.com/androidmobilestore/mnw-wallet/pkg/apperror"

	"github.com/mr-tron/base58"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/scrypt"
	"golang.org/x/crypto/sha3"
)

const (
	mnemonicEntropyBits = 128 // 12 words
	addressPrefix       = 0x41
	derivationKey       = "mnw-wallet seed"
)

// scrypt parameters for deriving the AES key from the master secret. Fixed
// salt: the master secret is a single high-entropy operator secret, not a
// user password, so per-record salting buys nothing here.
var vaultSalt = []byte("mnw-vault-v1")

// VaultService implements ports.KeyVault. Signing keys are derived
// deterministically from the recovery phrase and stored only AES-256-GCM
// encrypted under a key stretched from the master secret. Sign decrypts
// in-process; plaintext keys are never returned to callers.
type VaultService struct {
	aesKey []byte
}

// NewVaultService stretches the master secret into the vault encryption key.
func NewVaultService(masterSecret string) (*VaultService, error) {
	if masterSecret == "" {
		return nil, fmt.Errorf("vault master secret is empty")
	}
	key, err := scrypt.Key([]byte(masterSecret), vaultSalt, 32768, 8, 1, 32)
	if err != nil {
		return nil, fmt.Errorf("deriving vault key: %w", err)
	}
	return &VaultService{aesKey: key}, nil
}

// GenerateMnemonic returns a fresh 12-word recovery phrase.
func (s *VaultService) GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return "", apperror.ErrVaultFailure(fmt.Errorf("generating entropy: %w", err))
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", apperror.ErrVaultFailure(fmt.Errorf("generating mnemonic: %w", err))
	}
	return mnemonic, nil
}

// DeriveWallet deterministically derives the chain keypair and address from a
// recovery phrase. The same phrase always yields the same address, which is
// what lets RestoreWallet find an existing account.
func (s *VaultService) DeriveWallet(mnemonic string) (*ports.DerivedWallet, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, apperror.ErrInvalidMnemonic()
	}

	seed := bip39.NewSeed(mnemonic, "")
	mac := hmac.New(sha512.New, []byte(derivationKey))
	mac.Write(seed)
	derived := mac.Sum(nil)

	priv := ed25519.NewKeyFromSeed(derived[:ed25519.SeedSize])
	pub := priv.Public().(ed25519.PublicKey)

	return &ports.DerivedWallet{
		Address:    encodeAddress(pub),
		PrivateKey: priv,
	}, nil
}

// encodeAddress hashes the public key and renders the 0x41-prefixed payload
// in base58check.
func encodeAddress(pub ed25519.PublicKey) string {
	digest := sha3.Sum256(pub)
	payload := append([]byte{addressPrefix}, digest[:20]...)

	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return base58.Encode(append(payload, second[:4]...))
}

// Encrypt seals plaintext with AES-256-GCM. Returns hex: nonce + ciphertext.
func (s *VaultService) Encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(s.aesKey)
	if err != nil {
		return "", apperror.ErrVaultFailure(fmt.Errorf("creating cipher: %w", err))
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", apperror.ErrVaultFailure(fmt.Errorf("creating GCM: %w", err))
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", apperror.ErrVaultFailure(fmt.Errorf("generating nonce: %w", err))
	}

	ciphertext := aesGCM.Seal(nonce, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(ciphertext), nil
}

// Decrypt opens a hex-encoded AES-256-GCM record.
func (s *VaultService) Decrypt(record string) (string, error) {
	ciphertext, err := hex.DecodeString(record)
	if err != nil {
		return "", apperror.ErrVaultFailure(fmt.Errorf("decoding record: %w", err))
	}

	block, err := aes.NewCipher(s.aesKey)
	if err != nil {
		return "", apperror.ErrVaultFailure(fmt.Errorf("creating cipher: %w", err))
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", apperror.ErrVaultFailure(fmt.Errorf("creating GCM: %w", err))
	}

	nonceSize := aesGCM.NonceSize()
	if len(ciphertext) < nonceSize {
		return "", apperror.ErrVaultFailure(fmt.Errorf("record too short"))
	}

	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", apperror.ErrVaultFailure(fmt.Errorf("opening record: %w", err))
	}
	return string(plaintext), nil
}

// Sign decrypts the stored key in-process and signs the payload with it.
func (s *VaultService) Sign(encryptedKey string, payload []byte) ([]byte, error) {
	keyHex, err := s.Decrypt(encryptedKey)
	if err != nil {
		return nil, err
	}
	keyBytes, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, apperror.ErrVaultFailure(fmt.Errorf("decoding key: %w", err))
	}
	if len(keyBytes) != ed25519.PrivateKeySize {
		return nil, apperror.ErrVaultFailure(fmt.Errorf("unexpected key size %d", len(keyBytes)))
	}
	return ed25519.Sign(ed25519.PrivateKey(keyBytes), payload), nil
}
