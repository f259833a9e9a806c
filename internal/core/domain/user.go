package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User is a custodial wallet owner. Address and key material are derived from
// the recovery phrase at onboarding and never change afterwards.
type User struct {
	ID                  uuid.UUID       `json:"id"`
	TelegramID          int64           `json:"telegram_id"`
	CyberLogin          string          `json:"cyber_login"`
	TronAddress         string          `json:"tron_address"`
	EncryptedPrivateKey string          `json:"-"` // vault-encrypted, never exposed
	EncryptedMnemonic   string          `json:"-"`
	DealCount           int64           `json:"deal_count"`
	Volume              decimal.Decimal `json:"volume"`
	Verified            bool            `json:"verified"`
	CreatedAt           time.Time       `json:"created_at"`
}

// Admin is an operator identity referenced by capability tokens.
type Admin struct {
	ID         uuid.UUID `json:"id"`
	TelegramID int64     `json:"telegram_id"`
	Username   string    `json:"username"`
	City       string    `json:"city"`
	CreatedAt  time.Time `json:"created_at"`
}
