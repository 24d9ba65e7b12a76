package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shiken-app/shiken/internal/application/subscription/usecases"
	"github.com/shiken-app/shiken/internal/shared/logger"
	"github.com/shiken-app/shiken/internal/shared/utils"
)

// SubscriptionHandler serves the learner-facing billing endpoints.
type SubscriptionHandler struct {
	checkoutUseCase createCheckoutUseCase
	cancelUseCase   cancelSubscriptionUseCase
	currentUseCase  getCurrentSubscriptionUseCase
	logger          logger.Interface
}

func NewSubscriptionHandler(
	checkoutUseCase createCheckoutUseCase,
	cancelUseCase cancelSubscriptionUseCase,
	currentUseCase getCurrentSubscriptionUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		checkoutUseCase: checkoutUseCase,
		cancelUseCase:   cancelUseCase,
		currentUseCase:  currentUseCase,
		logger:          logger,
	}
}

// CreateCheckout handles POST /subscriptions/checkout
func (h *SubscriptionHandler) CreateCheckout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.checkoutUseCase.Execute(c.Request.Context(), usecases.CreateCheckoutCommand{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CancelSubscription handles POST /subscriptions/cancel
func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.cancelUseCase.Execute(c.Request.Context(), usecases.CancelSubscriptionCommand{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "subscription cancelled", result)
}

// GetCurrentSubscription handles GET /subscriptions/current
func (h *SubscriptionHandler) GetCurrentSubscription(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.currentUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
