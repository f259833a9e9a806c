package handler

import (
	"github.com/androidmobilestore/mnw-wallet/internal/adapter/http/dto"
	"github.com/androidmobilestore/mnw-wallet/internal/core/domain"
	"github.com/androidmobilestore/mnw-wallet/internal/core/ports"
	"github.com/androidmobilestore/mnw-wallet/pkg/apperror"
	"github.com/androidmobilestore/mnw-wallet/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler serves the capability-link endpoints. There is no admin login:
// possession of a valid, unexpired, unused token scoped to the resource in
// the path is the entire authorization.
type AdminHandler struct {
	moneySvc       ports.MoneyService
	tokenSvc       ports.AdminTokenService
	exchangeRepo   ports.ExchangeRepository
	withdrawalRepo ports.WithdrawalRepository
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(
	moneySvc ports.MoneyService,
	tokenSvc ports.AdminTokenService,
	exchangeRepo ports.ExchangeRepository,
	withdrawalRepo ports.WithdrawalRepository,
) *AdminHandler {
	return &AdminHandler{
		moneySvc:       moneySvc,
		tokenSvc:       tokenSvc,
		exchangeRepo:   exchangeRepo,
		withdrawalRepo: withdrawalRepo,
	}
}

// capability validates the token in the query against the resource in the
// path. Returns the resource ID, the admin the token belongs to, and the raw
// token.
func (h *AdminHandler) capability(c *gin.Context, resourceType domain.ResourceType) (uuid.UUID, uuid.UUID, string, bool) {
	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid resource id"))
		return uuid.Nil, uuid.Nil, "", false
	}

	token := c.Query("t")
	if token == "" {
		response.Error(c, apperror.ErrTokenInvalid())
		return uuid.Nil, uuid.Nil, "", false
	}

	adminID, err := h.tokenSvc.Validate(c.Request.Context(), token, resourceType, resourceID)
	if err != nil {
		response.Error(c, err)
		return uuid.Nil, uuid.Nil, "", false
	}
	return resourceID, adminID, token, true
}

// GetExchange handles GET /api/v1/admin/exchanges/:id.
func (h *AdminHandler) GetExchange(c *gin.Context) {
	exchangeID, _, _, ok := h.capability(c, domain.ResourceTypeExchange)
	if !ok {
		return
	}

	exch, err := h.exchangeRepo.GetByID(c.Request.Context(), exchangeID)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	if exch == nil {
		response.Error(c, apperror.ErrNotFound("Exchange"))
		return
	}
	response.OK(c, toExchangeResponse(exch))
}

// ResolveExchange handles PATCH /api/v1/admin/exchanges/:id.
func (h *AdminHandler) ResolveExchange(c *gin.Context) {
	exchangeID, adminID, token, ok := h.capability(c, domain.ResourceTypeExchange)
	if !ok {
		return
	}

	var req dto.ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.moneySvc.ResolveExchange(c.Request.Context(), ports.ResolveExchangeRequest{
		ExchangeID:         exchangeID,
		AdminID:            adminID,
		Status:             domain.ExchangeStatus(req.Status),
		TxID:               req.TxID,
		DestinationAddress: req.DestinationAddress,
		Token:              token,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toExchangeResponse(result))
}

// GetWithdrawal handles GET /api/v1/admin/withdrawals/:id.
func (h *AdminHandler) GetWithdrawal(c *gin.Context) {
	withdrawalID, _, _, ok := h.capability(c, domain.ResourceTypeWithdrawal)
	if !ok {
		return
	}

	wd, err := h.withdrawalRepo.GetByID(c.Request.Context(), withdrawalID)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	if wd == nil {
		response.Error(c, apperror.ErrNotFound("Withdrawal"))
		return
	}
	response.OK(c, toWithdrawalResponse(wd, true))
}

// ResolveWithdrawal handles PATCH /api/v1/admin/withdrawals/:id.
func (h *AdminHandler) ResolveWithdrawal(c *gin.Context) {
	withdrawalID, adminID, token, ok := h.capability(c, domain.ResourceTypeWithdrawal)
	if !ok {
		return
	}

	var req dto.ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.moneySvc.ResolveWithdrawal(c.Request.Context(), ports.ResolveWithdrawalRequest{
		WithdrawalID: withdrawalID,
		AdminID:      adminID,
		Status:       domain.WithdrawalStatus(req.Status),
		Token:        token,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toWithdrawalResponse(result, false))
}
