package handler

import (
	"strconv"
	"time"

	"github.com/androidmobilestore/mnw-wallet/internal/adapter/http/dto"
	"github.com/androidmobilestore/mnw-wallet/internal/adapter/http/middleware"
	"github.com/androidmobilestore/mnw-wallet/internal/core/domain"
	"github.com/androidmobilestore/mnw-wallet/internal/core/ports"
	"github.com/androidmobilestore/mnw-wallet/pkg/apperror"
	"github.com/androidmobilestore/mnw-wallet/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultMovementLimit = 50
	maxMovementLimit     = 200
)

// WalletHandler handles wallet read endpoints and on-chain sends.
type WalletHandler struct {
	ledger       ports.LedgerService
	moneySvc     ports.MoneyService
	movementRepo ports.MovementRepository
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(ledger ports.LedgerService, moneySvc ports.MoneyService, movementRepo ports.MovementRepository) *WalletHandler {
	return &WalletHandler{
		ledger:       ledger,
		moneySvc:     moneySvc,
		movementRepo: movementRepo,
	}
}

// GetBalance handles GET /api/v1/wallet/balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	balances, err := h.ledger.Balances(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make(map[string]string, len(balances))
	for currency, balance := range balances {
		out[string(currency)] = balance.String()
	}
	response.OK(c, dto.BalanceResponse{Balances: out})
}

// ListMovements handles GET /api/v1/wallet/movements.
func (h *WalletHandler) ListMovements(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	limit := queryInt(c, "limit", defaultMovementLimit)
	if limit < 1 || limit > maxMovementLimit {
		limit = defaultMovementLimit
	}
	offset := queryInt(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	movements, err := h.movementRepo.ListByUser(c.Request.Context(), userID, limit, offset)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	items := make([]dto.MovementResponse, 0, len(movements))
	for i := range movements {
		items = append(items, toMovementResponse(&movements[i]))
	}
	response.OK(c, dto.MovementListResponse{Items: items, Limit: limit, Offset: offset})
}

// Send handles POST /api/v1/wallet/send.
func (h *WalletHandler) Send(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	var req dto.SendRequest
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

	mov, err := h.moneySvc.Send(c.Request.Context(), ports.SendRequest{
		UserID:    userID,
		Currency:  currency,
		ToAddress: req.ToAddress,
		Amount:    amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toMovementResponse(mov))
}

// sessionUserID pulls the authenticated user ID set by the session
// middleware; writes the error response itself when absent.
func sessionUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.ErrInvalidSession())
		return uuid.Nil, false
	}
	return v.(uuid.UUID), true
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func toMovementResponse(m *domain.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID.String(),
		Type:        string(m.Type),
		Currency:    string(m.Currency),
		Amount:      m.Amount.String(),
		Status:      string(m.Status),
		TxID:        m.TxID,
		Description: m.Description,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
}
