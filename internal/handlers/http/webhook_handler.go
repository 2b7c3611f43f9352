package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/recruit-backend/internal/domain/ports"
	"github.com/rafabene/recruit-backend/internal/services"
)

// WebhookHandler recebe eventos assinados dos provedores de identidade e billing
type WebhookHandler struct {
	identity *services.IdentityWebhookService
	billing  *services.BillingService
	logger   ports.Logger
}

// NewWebhookHandler cria um novo WebhookHandler
func NewWebhookHandler(identity *services.IdentityWebhookService, billing *services.BillingService, logger ports.Logger) *WebhookHandler {
	return &WebhookHandler{
		identity: identity,
		billing:  billing,
		logger:   logger,
	}
}

// Identity processa eventos de usuário do provedor de identidade
// @Summary Webhook de identidade
// @Tags webhooks
// @Accept json
// @Success 200
// @Failure 400,500 {object} dto.ErrorResponse
// @Router /webhooks/identity [post]
func (h *WebhookHandler) Identity(c *gin.Context) {
	payload, ok := readWebhook(c)
	if !ok {
		return
	}

	if err := h.identity.Handle(c.Request.Context(), payload, c.Request.Header); err != nil {
		respondError(c, h.logger, op("webhook", "identity", "handle"), err)
		return
	}

	c.Status(http.StatusOK)
}

// Billing processa eventos de assinatura do provedor de billing
// @Summary Webhook de billing
// @Tags webhooks
// @Accept json
// @Param Stripe-Signature header string true "Assinatura do evento"
// @Success 200
// @Failure 400,500 {object} dto.ErrorResponse
// @Router /webhooks/billing [post]
func (h *WebhookHandler) Billing(c *gin.Context) {
	payload, ok := readWebhook(c)
	if !ok {
		return
	}

	if err := h.billing.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature")); err != nil {
		respondError(c, h.logger, op("webhook", "billing", "handle"), err)
		return
	}

	c.Status(http.StatusOK)
}
