package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Narasimha40-dev/DAIRY/internal/domain/models"
	"github.com/Narasimha40-dev/DAIRY/internal/record"
	"github.com/Narasimha40-dev/DAIRY/internal/service/dairy"
)

// SettingsHandler checks profile passwords against their stored hash.
type SettingsHandler struct {
	profiles *record.Manager[models.SettingsProfile]
	logger   *zap.Logger
}

// NewSettingsHandler builds the handler.
func NewSettingsHandler(profiles *record.Manager[models.SettingsProfile], logger *zap.Logger) *SettingsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsHandler{profiles: profiles, logger: logger}
}

type verifyRequest struct {
	Password string `json:"password" binding:"required"`
}

// Verify reports whether the posted password matches profile :id.
func (h *SettingsHandler) Verify(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, "password is required")
		return
	}
	profile, err := h.profiles.Get(id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": dairy.VerifyPassword(profile, req.Password)})
}
