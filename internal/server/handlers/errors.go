package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Narasimha40-dev/DAIRY/internal/record"
	"github.com/Narasimha40-dev/DAIRY/internal/validation"
)

// Error codes returned in the "error" field of failed responses.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeUnknownField = "UNKNOWN_FIELD"
	CodeBadRequest   = "BAD_REQUEST"
	CodeInternal     = "INTERNAL_ERROR"
	CodeUpstream     = "UPSTREAM_ERROR"
)

func abortBadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": CodeBadRequest, "message": message})
}

// writeError maps engine errors onto HTTP statuses.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": CodeValidation, "fields": verrs})
	case errors.Is(err, record.ErrNotFound), errors.Is(err, record.ErrIndexOutOfRange):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": CodeNotFound, "message": err.Error()})
	case errors.Is(err, record.ErrUnknownField):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": CodeUnknownField, "message": err.Error()})
	default:
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": CodeInternal})
	}
}
