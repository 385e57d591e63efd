package models

// OutboundMessageRequest asks for a text message to be sent to a WhatsApp number.
type OutboundMessageRequest struct {
	To      string `json:"to" binding:"required"`
	Message string `json:"message" binding:"required"`
}
