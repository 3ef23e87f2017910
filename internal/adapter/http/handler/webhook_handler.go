package handler

import (
	"marketplace-settlement/internal/adapter/http/dto"
	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/pkg/apperror"
	"marketplace-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// WebhookHandler receives payment and carrier notifications.
type WebhookHandler struct {
	payments ports.PaymentEventService
	bridge   ports.ShippingBridge
	log      zerolog.Logger
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(payments ports.PaymentEventService, bridge ports.ShippingBridge, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{payments: payments, bridge: bridge, log: log}
}

// PaymentEvent handles POST /webhooks/payments.
// Redelivery of an applied event answers with the stored outcome.
func (h *WebhookHandler) PaymentEvent(c *gin.Context) {
	var req dto.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	outcome, err := h.payments.ApplyPaymentEvent(c.Request.Context(), req.ToEvent())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, outcome)
}

// CarrierEvent handles POST /webhooks/carrier.
func (h *WebhookHandler) CarrierEvent(c *gin.Context) {
	var req dto.CarrierWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	err := h.bridge.ApplyCarrierUpdate(c.Request.Context(), req.ToUpdate())
	if apperror.HasCode(err, apperror.CodeNotFound) {
		// GHN retries anything but 2xx; a code we never issued will not start matching.
		h.log.Warn().Str("order_code", req.OrderCode).Str("status", req.Status).Msg("carrier update for unknown order code")
		response.Accepted(c, dto.WebhookAck{Received: true, Note: "unknown order code"})
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, dto.WebhookAck{Received: true})
}
