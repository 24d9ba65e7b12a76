package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shiken-app/shiken/internal/application/subscription/usecases"
	"github.com/shiken-app/shiken/internal/infrastructure/billing"
	"github.com/shiken-app/shiken/internal/shared/logger"
	"github.com/shiken-app/shiken/internal/shared/utils"
)

// maxWebhookBodySize caps the raw payload read.
const maxWebhookBodySize = 1 << 20

// WebhookHandler receives billing provider callbacks. The signature is
// verified over the raw body before anything is parsed; an invalid
// signature is rejected without touching state.
type WebhookHandler struct {
	processUseCase processWebhookUseCase
	webhookSecret  string
	logger         logger.Interface
}

func NewWebhookHandler(processUseCase processWebhookUseCase, webhookSecret string, logger logger.Interface) *WebhookHandler {
	return &WebhookHandler{
		processUseCase: processUseCase,
		webhookSecret:  webhookSecret,
		logger:         logger,
	}
}

// HandleBillingWebhook handles POST /webhooks/billing
func (h *WebhookHandler) HandleBillingWebhook(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodySize))
	if err != nil {
		h.logger.Warnw("failed to read webhook body", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read request body")
		return
	}

	signature := c.GetHeader("X-Signature")
	if !billing.VerifySignature(h.webhookSecret, body, signature) {
		h.logger.Warnw("webhook signature verification failed", "client_ip", c.ClientIP())
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid signature")
		return
	}

	event, err := billing.ParseWebhook(body)
	if err != nil {
		h.logger.Warnw("failed to parse webhook payload", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid payload")
		return
	}

	cmd := usecases.ProcessWebhookCommand{
		EventName:         event.EventName,
		UserID:            event.UserID,
		ExternalID:        event.SubscriptionID,
		ProviderStatus:    event.Status,
		RenewsAt:          event.RenewsAt,
		EndsAt:            event.EndsAt,
		CustomerPortalURL: event.CustomerPortalURL,
	}

	if err := h.processUseCase.Execute(c.Request.Context(), cmd); err != nil {
		h.logger.Errorw("failed to process webhook", "event", event.EventName, "external_id", event.SubscriptionID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "webhook processed", nil)
}
