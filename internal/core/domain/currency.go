package domain

import "fmt"

// Currency is one of the three units the wallet holds.
type Currency string

const (
	CurrencyRUB  Currency = "RUB"
	CurrencyTRX  Currency = "TRX"
	CurrencyUSDT Currency = "USDT"
)

// ParseCurrency validates a client-supplied currency code.
func ParseCurrency(s string) (Currency, error) {
	switch Currency(s) {
	case CurrencyRUB, CurrencyTRX, CurrencyUSDT:
		return Currency(s), nil
	}
	return "", fmt.Errorf("unknown currency %q", s)
}

// IsCrypto reports whether the currency lives on-chain. Crypto balances are
// reconciled against the chain; the RUB balance is custodial only.
func (c Currency) IsCrypto() bool {
	return c == CurrencyTRX || c == CurrencyUSDT
}

// Precision returns the number of decimal places amounts are quantized to.
// Both chain assets use 6 decimals (smallest unit / 1e6).
func (c Currency) Precision() int32 {
	if c == CurrencyRUB {
		return 2
	}
	return 6
}
