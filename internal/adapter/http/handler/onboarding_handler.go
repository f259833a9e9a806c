package handler

import (
	"net/http"

	"github.com/androidmobilestore/mnw-wallet/internal/adapter/http/dto"
	"github.com/androidmobilestore/mnw-wallet/internal/core/ports"
	"github.com/androidmobilestore/mnw-wallet/pkg/apperror"
	"github.com/androidmobilestore/mnw-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// OnboardingHandler handles wallet creation and restoration.
type OnboardingHandler struct {
	onboardingSvc ports.OnboardingService
}

// NewOnboardingHandler creates a new OnboardingHandler.
func NewOnboardingHandler(onboardingSvc ports.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{onboardingSvc: onboardingSvc}
}

// CreateWallet handles POST /api/v1/wallet/create.
func (h *OnboardingHandler) CreateWallet(c *gin.Context) {
	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.onboardingSvc.CreateWallet(c.Request.Context(), req.TelegramID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toOnboardResponse(result))
}

// RestoreWallet handles POST /api/v1/wallet/restore.
func (h *OnboardingHandler) RestoreWallet(c *gin.Context) {
	var req dto.RestoreWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.onboardingSvc.RestoreWallet(c.Request.Context(), req.TelegramID, req.Mnemonic)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toOnboardResponse(result))
}

func toOnboardResponse(result *ports.OnboardResult) dto.OnboardResponse {
	return dto.OnboardResponse{
		UserID:       result.User.ID.String(),
		CyberLogin:   result.User.CyberLogin,
		TronAddress:  result.User.TronAddress,
		Mnemonic:     result.Mnemonic,
		SessionToken: result.SessionToken,
		ExpiresAt:    result.ExpiresAt.Unix(),
	}
}

// HealthCheck reports service health including dependency status.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
