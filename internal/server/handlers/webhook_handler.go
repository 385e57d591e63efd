package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Narasimha40-dev/DAIRY/internal/domain/models"
	service "github.com/Narasimha40-dev/DAIRY/internal/service/whatsapp"
)

// WebhookHandler is the WhatsApp entry point of the collection centre:
// workers send /milk, /unsold and /summary commands, operators push
// messages through /send-message.
type WebhookHandler struct {
	messaging service.MessagingService
	logger    *zap.Logger
}

// NewWebhookHandler builds the handler over a messaging service.
func NewWebhookHandler(messaging service.MessagingService, logger *zap.Logger) *WebhookHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WebhookHandler{messaging: messaging, logger: logger}
}

// Verify echoes hub.challenge when the subscription token matches.
func (h *WebhookHandler) Verify(c *gin.Context) {
	challenge, err := h.messaging.VerifyWebhookToken(
		c.Query("hub.mode"),
		c.Query("hub.verify_token"),
		c.Query("hub.challenge"),
	)
	if err != nil {
		h.logger.Warn("webhook subscription rejected", zap.String("mode", c.Query("hub.mode")), zap.Error(err))
		c.String(http.StatusForbidden, "verification failed")
		return
	}
	c.String(http.StatusOK, challenge)
}

// Receive records the worker commands carried by a callback. Once the payload
// parses the callback is acknowledged with 200 even if some commands failed,
// since sales already committed must not be replayed by a redelivery.
func (h *WebhookHandler) Receive(c *gin.Context) {
	var payload models.WebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("unreadable webhook callback", zap.Error(err))
		abortBadRequest(c, "invalid payload")
		return
	}

	messages := 0
	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			messages += len(change.Value.Messages)
		}
	}

	if err := h.messaging.HandleWebhook(c.Request.Context(), payload); err != nil {
		h.logger.Error("worker commands partly failed", zap.Int("messages", messages), zap.Error(err))
	} else if messages > 0 {
		h.logger.Debug("worker commands handled", zap.Int("messages", messages))
	}
	c.Status(http.StatusOK)
}

// SendMessage delivers an operator message, such as an ad hoc summary, to
// one WhatsApp number.
func (h *WebhookHandler) SendMessage(c *gin.Context) {
	var req models.OutboundMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, "to and message are required")
		return
	}

	if err := h.messaging.SendOutbound(c.Request.Context(), req); err != nil {
		h.logger.Error("operator message not delivered", zap.String("to", req.To), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": CodeUpstream, "message": "unable to send message"})
		return
	}
	c.Status(http.StatusAccepted)
}
