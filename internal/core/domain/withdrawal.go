package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WithdrawalStatus is the lifecycle state of a cash-out request.
type WithdrawalStatus string

const (
	WithdrawalStatusPending   WithdrawalStatus = "PENDING"
	WithdrawalStatusCompleted WithdrawalStatus = "COMPLETED"
	WithdrawalStatusCancelled WithdrawalStatus = "CANCELLED"
)

// Withdrawal is a fiat cash-out request. Funds are frozen (debited) when the
// request is created; COMPLETED means cash was physically handed over,
// CANCELLED restores the frozen amount to the wallet.
type Withdrawal struct {
	ID          uuid.UUID        `json:"id"`
	UserID      uuid.UUID        `json:"user_id"`
	WalletID    uuid.UUID        `json:"wallet_id"`
	MovementID  uuid.UUID        `json:"-"` // the freeze debit movement
	Amount      decimal.Decimal  `json:"amount"`
	Currency    Currency         `json:"currency"`
	Token       string           `json:"token"` // user-facing pickup code, read out of band
	Status      WithdrawalStatus `json:"status"`
	City        string           `json:"city"`
	FullName    string           `json:"full_name"`
	ContactType string           `json:"contact_type"`
	Contact     string           `json:"contact"`
	AdminID     *uuid.UUID       `json:"admin_id,omitempty"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// IsTerminal returns true once the withdrawal can no longer change.
func (w *Withdrawal) IsTerminal() bool {
	return w.Status == WithdrawalStatusCompleted || w.Status == WithdrawalStatusCancelled
}
