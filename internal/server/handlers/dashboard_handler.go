package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Narasimha40-dev/DAIRY/internal/domain/models"
	"github.com/Narasimha40-dev/DAIRY/internal/repository/mongodb"
	"github.com/Narasimha40-dev/DAIRY/internal/service/reporting"
)

// SnapshotSource produces the live dashboard.
type SnapshotSource interface {
	Dashboard(now time.Time) models.DashboardSnapshot
}

// SnapshotHistory reads archived snapshots.
type SnapshotHistory interface {
	LatestSnapshot(ctx context.Context) (models.DashboardSnapshot, error)
}

// DashboardHandler serves the cross-entity summary.
type DashboardHandler struct {
	source  SnapshotSource
	history SnapshotHistory
	now     func() time.Time
	logger  *zap.Logger
}

// NewDashboardHandler builds the handler. history may be nil when no archive
// is configured.
func NewDashboardHandler(source SnapshotSource, history SnapshotHistory, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardHandler{source: source, history: history, now: time.Now, logger: logger}
}

// Current returns the live snapshot, as text with ?format=text.
func (h *DashboardHandler) Current(c *gin.Context) {
	snapshot := h.source.Dashboard(h.now())
	if c.Query("format") == "text" {
		c.String(http.StatusOK, reporting.FormatSnapshot(snapshot))
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// Latest returns the most recent archived snapshot.
func (h *DashboardHandler) Latest(c *gin.Context) {
	if h.history == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": CodeNotFound, "message": "snapshot archive is not configured"})
		return
	}
	snapshot, err := h.history.LatestSnapshot(c.Request.Context())
	if errors.Is(err, mongodb.ErrNoSnapshot) {
		c.JSON(http.StatusNotFound, gin.H{"error": CodeNotFound, "message": err.Error()})
		return
	}
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
