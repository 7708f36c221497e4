package billing

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ringly_backend/platform/httpkit"
	"ringly_backend/platform/logger"
)

// Handler serves the payment processor webhook endpoint.
type Handler struct {
	service *Service
	secret  string
	log     *logger.Logger
}

// NewHandler creates a webhook handler. When secret is empty, signature
// verification is skipped; this is only acceptable for local development.
func NewHandler(service *Service, secret string, log *logger.Logger) *Handler {
	return &Handler{service: service, secret: secret, log: log}
}

// HandleWebhook verifies and processes a webhook delivery.
// POST /api/stripe-webhook
//
// The signature is computed over the exact request bytes, so the body is
// read raw before any decoding. Once the signature checks out, the
// delivery is acknowledged with 200 no matter what processing does;
// retrying an event that failed inside our own pipeline would not help.
func (h *Handler) HandleWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "unable to read request body", nil)
		return
	}

	if h.secret != "" {
		header := c.GetHeader("Stripe-Signature")
		if err := VerifySignature(payload, header, h.secret, time.Now()); err != nil {
			h.log.WebhookEvent("unknown", "", false, err.Error())
			httpkit.Error(c, http.StatusBadRequest, "invalid signature", nil)
			return
		}
	}

	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		// Authenticated but undecodable. Acknowledge so the processor
		// does not redeliver a payload we will never parse.
		h.log.WebhookEvent("unknown", "", false, "undecodable payload")
	} else if err := h.service.Process(c.Request.Context(), event); err != nil {
		h.log.Error("webhook processing failed", "type", event.Type, "error", err.Error())
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
