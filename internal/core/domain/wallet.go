package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet is a per-user, per-currency balance record. At most one wallet
// exists per (user, currency) pair and the balance never goes negative;
// both are enforced at every mutation, not by cleanup.
type Wallet struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Currency  Currency        `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	Address   *string         `json:"address,omitempty"` // receive address, crypto only
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewWallet creates a zero-balance wallet for a user and currency.
func NewWallet(userID uuid.UUID, currency Currency, address *string) *Wallet {
	now := time.Now().UTC()
	return &Wallet{
		ID:        uuid.New(),
		UserID:    userID,
		Currency:  currency,
		Balance:   decimal.Zero,
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
