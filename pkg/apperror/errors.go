package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Wallet & Ledger (WAL) ----

func ErrInvalidAmount() *AppError {
	return New("WAL_001", "Amount must be positive", http.StatusBadRequest)
}

func ErrInsufficientFunds() *AppError {
	return New("WAL_002", "Insufficient wallet balance", http.StatusPaymentRequired)
}

func ErrWalletNotFound(currency string) *AppError {
	return New("WAL_003", fmt.Sprintf("No %s wallet for user", currency), http.StatusNotFound)
}

func ErrUnknownCurrency(currency string) *AppError {
	return New("WAL_004", fmt.Sprintf("Unknown currency %q", currency), http.StatusBadRequest)
}

// ---- Money Movement (MOV) ----

func ErrNotFound(entity string) *AppError {
	return New("MOV_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrUnsupportedPair(from, to string) *AppError {
	return New("MOV_002", fmt.Sprintf("No quote for %s->%s", from, to), http.StatusBadRequest)
}

func ErrQuoteStale() *AppError {
	return New("MOV_003", "Exchange rate is too stale, try again later", http.StatusServiceUnavailable)
}

func ErrWithdrawalCurrency() *AppError {
	return New("MOV_004", "Withdrawals are available for RUB only", http.StatusBadRequest)
}

func ErrAlreadyResolved(entity string) *AppError {
	return New("MOV_005", fmt.Sprintf("%s is already resolved", entity), http.StatusConflict)
}

func ErrSelfTransfer() *AppError {
	return New("MOV_006", "Cannot transfer to own wallet", http.StatusBadRequest)
}

// ---- Capability & Session Tokens (TOK) ----

func ErrTokenInvalid() *AppError {
	return New("TOK_001", "Invalid admin token", http.StatusUnauthorized)
}

func ErrTokenMismatch() *AppError {
	return New("TOK_002", "Token does not match resource", http.StatusForbidden)
}

func ErrTokenExpired() *AppError {
	return New("TOK_003", "Admin token expired", http.StatusForbidden)
}

func ErrTokenUsed() *AppError {
	return New("TOK_004", "Admin token already used", http.StatusForbidden)
}

func ErrInvalidSession() *AppError {
	return New("TOK_005", "Invalid or expired session token", http.StatusUnauthorized)
}

// ---- Onboarding (USR) ----

func ErrInvalidMnemonic() *AppError {
	return New("USR_001", "Recovery phrase is not valid", http.StatusBadRequest)
}

func ErrUserExists() *AppError {
	return New("USR_002", "Wallet already exists for this account", http.StatusConflict)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrUpstreamUnavailable(source string, err error) *AppError {
	return Wrap("SYS_002", fmt.Sprintf("Upstream %s unavailable", source), http.StatusServiceUnavailable, err)
}

func ErrVaultFailure(err error) *AppError {
	return Wrap("SYS_003", "Key vault failure", http.StatusInternalServerError, err)
}

// Validation returns a request-validation error with a custom message.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
