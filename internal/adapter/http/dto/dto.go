package dto

// CreateWalletRequest is the request body for wallet creation.
type CreateWalletRequest struct {
	TelegramID int64 `json:"telegram_id" binding:"required"`
}

// RestoreWalletRequest is the request body for wallet restoration.
type RestoreWalletRequest struct {
	TelegramID int64  `json:"telegram_id" binding:"required"`
	Mnemonic   string `json:"mnemonic" binding:"required"`
}

// OnboardResponse is returned on wallet creation or restoration. Mnemonic is
// present only on creation and only once.
type OnboardResponse struct {
	UserID       string `json:"user_id"`
	CyberLogin   string `json:"cyber_login"`
	TronAddress  string `json:"tron_address"`
	Mnemonic     string `json:"mnemonic,omitempty"`
	SessionToken string `json:"session_token"`
	ExpiresAt    int64  `json:"expires_at"` // Unix timestamp
}

// BalanceResponse is the response for the balance query. Keys are currency
// codes, values are decimal strings.
type BalanceResponse struct {
	Balances map[string]string `json:"balances"`
}

// MovementResponse is one ledger entry.
type MovementResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Currency    string  `json:"currency"`
	Amount      string  `json:"amount"`
	Status      string  `json:"status"`
	TxID        *string `json:"txid,omitempty"`
	Description string  `json:"description,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// MovementListResponse wraps a paginated movement list.
type MovementListResponse struct {
	Items  []MovementResponse `json:"items"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

// ExchangeRequest is the request body for a conversion.
type ExchangeRequest struct {
	FromCurrency string `json:"from_currency" binding:"required"`
	ToCurrency   string `json:"to_currency" binding:"required"`
	Amount       string `json:"amount" binding:"required"`
}

// ExchangeResponse is the response body for exchange results. For pending
// crypto-out exchanges DestinationAddress is where the operator settles.
type ExchangeResponse struct {
	ID                 string  `json:"id"`
	FromCurrency       string  `json:"from_currency"`
	ToCurrency         string  `json:"to_currency"`
	FromAmount         string  `json:"from_amount"`
	ToAmount           string  `json:"to_amount"`
	Rate               string  `json:"rate"`
	Status             string  `json:"status"`
	TxID               *string `json:"txid,omitempty"`
	DestinationAddress *string `json:"destination_address,omitempty"`
	CreatedAt          string  `json:"created_at"`
	CompletedAt        *string `json:"completed_at,omitempty"`
}

// TransferRequest is the request body for an internal transfer.
type TransferRequest struct {
	ToCyberLogin string `json:"to_cyber_login" binding:"required"`
	Currency     string `json:"currency" binding:"required"`
	Amount       string `json:"amount" binding:"required"`
}

// WithdrawalCreateRequest is the request body for a fiat cash-out. Currency
// is optional and defaults to RUB, the only currency withdrawals support.
type WithdrawalCreateRequest struct {
	Currency    string `json:"currency"`
	Amount      string `json:"amount" binding:"required"`
	City        string `json:"city" binding:"required,max=100"`
	FullName    string `json:"full_name" binding:"required,max=200"`
	ContactType string `json:"contact_type" binding:"required,max=50"`
	Contact     string `json:"contact" binding:"required,max=200"`
}

// WithdrawalResponse is the response body for withdrawal results. Token is
// the pickup code the user presents at the cash desk.
type WithdrawalResponse struct {
	ID          string  `json:"id"`
	Amount      string  `json:"amount"`
	Currency    string  `json:"currency"`
	Token       string  `json:"token,omitempty"`
	Status      string  `json:"status"`
	City        string  `json:"city"`
	CreatedAt   string  `json:"created_at"`
	CompletedAt *string `json:"completed_at,omitempty"`
}

// SendRequest is the request body for an on-chain send.
type SendRequest struct {
	Currency  string `json:"currency" binding:"required"`
	ToAddress string `json:"to_address" binding:"required,max=64"`
	Amount    string `json:"amount" binding:"required"`
}

// ResolveRequest is the request body for the admin capability endpoints.
// TxID and DestinationAddress apply to exchange settlement only.
type ResolveRequest struct {
	Status             string  `json:"status" binding:"required,oneof=COMPLETED CANCELLED"`
	TxID               *string `json:"txid,omitempty"`
	DestinationAddress *string `json:"destination_address,omitempty"`
}
