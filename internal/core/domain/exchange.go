package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExchangeStatus is the lifecycle state of a conversion.
type ExchangeStatus string

const (
	ExchangeStatusPending   ExchangeStatus = "PENDING"
	ExchangeStatusCompleted ExchangeStatus = "COMPLETED"
	ExchangeStatusCancelled ExchangeStatus = "CANCELLED"
)

// Exchange is a cross-currency conversion record. The rate quoted at request
// time is final for the exchange even if the market moves immediately after.
// Crypto-out directions stay PENDING with funds reserved until an operator
// settles them on-chain through a capability link.
type Exchange struct {
	ID                 uuid.UUID       `json:"id"`
	UserID             uuid.UUID       `json:"user_id"`
	FromCurrency       Currency        `json:"from_currency"`
	ToCurrency         Currency        `json:"to_currency"`
	FromAmount         decimal.Decimal `json:"from_amount"`
	ToAmount           decimal.Decimal `json:"to_amount"`
	Rate               decimal.Decimal `json:"rate"`
	Status             ExchangeStatus  `json:"status"`
	MovementID         *uuid.UUID      `json:"-"` // the reserving debit movement
	TxID               *string         `json:"txid,omitempty"`
	DestinationAddress *string         `json:"destination_address,omitempty"`
	AdminID            *uuid.UUID      `json:"admin_id,omitempty"`
	CompletedAt        *time.Time      `json:"completed_at,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// IsTerminal returns true once the exchange can no longer change.
func (e *Exchange) IsTerminal() bool {
	return e.Status == ExchangeStatusCompleted || e.Status == ExchangeStatusCancelled
}

// RequiresSettlement reports whether an operator must move funds on-chain
// before the exchange completes.
func (e *Exchange) RequiresSettlement() bool {
	return e.ToCurrency.IsCrypto()
}
