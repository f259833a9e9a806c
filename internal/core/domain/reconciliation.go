package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Reconciliation records a balance replacement made from on-chain data.
// These are not movements: the chain is authoritative for crypto balances and
// the custodial ledger is a cache of it, so replacements are audited
// separately from user-initiated entries.
type Reconciliation struct {
	ID        uuid.UUID       `json:"id"`
	WalletID  uuid.UUID       `json:"wallet_id"`
	Currency  Currency        `json:"currency"`
	Previous  decimal.Decimal `json:"previous"`
	Observed  decimal.Decimal `json:"observed"`
	CreatedAt time.Time       `json:"created_at"`
}

// ChainBalances is the result of one chain query for an address, in whole
// units (already converted from the smallest on-chain unit).
type ChainBalances struct {
	TRX  decimal.Decimal
	USDT decimal.Decimal
}

// LooksEmpty reports whether the response is indistinguishable from "no
// data". The reconciler treats it as unreliable and preserves last-known
// balances rather than zeroing wallets on a transient failure.
func (b ChainBalances) LooksEmpty() bool {
	return b.TRX.IsZero() && b.USDT.IsZero()
}
