package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementType classifies a ledger entry.
type MovementType string

const (
	MovementTypeExchange         MovementType = "EXCHANGE"
	MovementTypeTransfer         MovementType = "TRANSFER"
	MovementTypeWithdrawal       MovementType = "WITHDRAWAL"
	MovementTypeWithdrawalRefund MovementType = "WITHDRAWAL_REFUND"
	MovementTypeSend             MovementType = "SEND"
)

// MovementStatus is the lifecycle state of a ledger entry.
type MovementStatus string

const (
	MovementStatusPending   MovementStatus = "PENDING"
	MovementStatusCompleted MovementStatus = "COMPLETED"
	MovementStatusCancelled MovementStatus = "CANCELLED"
)

// Movement is an immutable audit entry for a balance-affecting event.
// Amount is signed: negative for debits, positive for credits. Rows are
// append-only; only the status of a pending row ever changes.
type Movement struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	WalletID      *uuid.UUID      `json:"wallet_id,omitempty"`
	Type          MovementType    `json:"type"`
	Currency      Currency        `json:"currency"`
	Amount        decimal.Decimal `json:"amount"`
	Status        MovementStatus  `json:"status"`
	TxID          *string         `json:"txid,omitempty"` // on-chain transaction id
	CounterpartID *uuid.UUID      `json:"counterpart_id,omitempty"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
