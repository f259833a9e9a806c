package handler

import (
	"time"

	"github.com/androidmobilestore/mnw-wallet/internal/adapter/http/dto"
	"github.com/androidmobilestore/mnw-wallet/internal/core/domain"
	"github.com/androidmobilestore/mnw-wallet/internal/core/ports"
	"github.com/androidmobilestore/mnw-wallet/pkg/apperror"
	"github.com/androidmobilestore/mnw-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// MoneyHandler handles exchange, transfer and withdrawal endpoints.
type MoneyHandler struct {
	moneySvc ports.MoneyService
}

// NewMoneyHandler creates a new MoneyHandler.
func NewMoneyHandler(moneySvc ports.MoneyService) *MoneyHandler {
	return &MoneyHandler{moneySvc: moneySvc}
}

// Exchange handles POST /api/v1/exchange.
func (h *MoneyHandler) Exchange(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	var req dto.ExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	fromCurrency, err := domain.ParseCurrency(req.FromCurrency)
	if err != nil {
		response.Error(c, apperror.ErrUnknownCurrency(req.FromCurrency))
		return
	}
	toCurrency, err := domain.ParseCurrency(req.ToCurrency)
	if err != nil {
		response.Error(c, apperror.ErrUnknownCurrency(req.ToCurrency))
		return
	}
	amount, ok := dto.ParseAmount(req.Amount)
	if !ok {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	result, err := h.moneySvc.Exchange(c.Request.Context(), ports.ExchangeRequest{
		UserID:       userID,
		FromCurrency: fromCurrency,
		ToCurrency:   toCurrency,
		FromAmount:   amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toExchangeResponse(result))
}

// Transfer handles POST /api/v1/transfer.
func (h *MoneyHandler) Transfer(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	currency, err := domain.ParseCurrency(req.Currency)
	if err != nil {
		response.Error(c, apperror.ErrUnknownCurrency(req.Currency))
		return
	}
	amount, ok := dto.ParseAmount(req.Amount)
	if !ok {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	if err := h.moneySvc.Transfer(c.Request.Context(), ports.TransferRequest{
		FromUserID:   userID,
		ToCyberLogin: req.ToCyberLogin,
		Currency:     currency,
		Amount:       amount,
	}); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"status": "completed"})
}

// RequestWithdrawal handles POST /api/v1/withdrawals.
func (h *MoneyHandler) RequestWithdrawal(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	var req dto.WithdrawalCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	amount, ok := dto.ParseAmount(req.Amount)
	if !ok {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	currency := domain.CurrencyRUB
	if req.Currency != "" {
		parsed, err := domain.ParseCurrency(req.Currency)
		if err != nil {
			response.Error(c, apperror.ErrUnknownCurrency(req.Currency))
			return
		}
		currency = parsed
	}

	result, err := h.moneySvc.RequestWithdrawal(c.Request.Context(), ports.WithdrawalRequest{
		UserID:      userID,
		Currency:    currency,
		Amount:      amount,
		City:        req.City,
		FullName:    req.FullName,
		ContactType: req.ContactType,
		Contact:     req.Contact,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toWithdrawalResponse(result, true))
}

func toExchangeResponse(e *domain.Exchange) dto.ExchangeResponse {
	resp := dto.ExchangeResponse{
		ID:                 e.ID.String(),
		FromCurrency:       string(e.FromCurrency),
		ToCurrency:         string(e.ToCurrency),
		FromAmount:         e.FromAmount.String(),
		ToAmount:           e.ToAmount.String(),
		Rate:               e.Rate.String(),
		Status:             string(e.Status),
		TxID:               e.TxID,
		DestinationAddress: e.DestinationAddress,
		CreatedAt:          e.CreatedAt.Format(time.RFC3339),
	}
	if e.CompletedAt != nil {
		completed := e.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &completed
	}
	return resp
}

// toWithdrawalResponse renders a withdrawal. The pickup code goes to the
// requesting user and to the operator who verifies it at the cash desk.
func toWithdrawalResponse(w *domain.Withdrawal, includeToken bool) dto.WithdrawalResponse {
	resp := dto.WithdrawalResponse{
		ID:        w.ID.String(),
		Amount:    w.Amount.String(),
		Currency:  string(w.Currency),
		Status:    string(w.Status),
		City:      w.City,
		CreatedAt: w.CreatedAt.Format(time.RFC3339),
	}
	if includeToken {
		resp.Token = w.Token
	}
	if w.CompletedAt != nil {
		completed := w.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &completed
	}
	return resp
}
