package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Narasimha40-dev/DAIRY/internal/aggregate"
	"github.com/Narasimha40-dev/DAIRY/internal/record"
	"github.com/Narasimha40-dev/DAIRY/internal/service/export"
)

// ResourceHandler exposes one record manager over HTTP: CRUD, search, the
// form controller, statistics, charts and spreadsheet export.
type ResourceHandler[T record.Record] struct {
	manager *record.Manager[T]
	stats   func() any
	charts  map[string]func() aggregate.Series
	logger  *zap.Logger
}

// NewResourceHandler builds a handler. stats and charts may be nil.
func NewResourceHandler[T record.Record](m *record.Manager[T], stats func() any, charts map[string]func() aggregate.Series, logger *zap.Logger) *ResourceHandler[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResourceHandler[T]{manager: m, stats: stats, charts: charts, logger: logger}
}

// Register mounts the routes on g.
func (h *ResourceHandler[T]) Register(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/stats", h.Stats)
	g.GET("/charts/:chart", h.Chart)
	g.GET("/export", h.Export)

	g.GET("/form", h.Form)
	g.PATCH("/form", h.SetFields)
	g.POST("/form/edit/:index", h.StartEdit)
	g.POST("/form/submit", h.Submit)
	g.POST("/form/cancel", h.Cancel)

	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// List returns every record, filtered by ?q when given.
func (h *ResourceHandler[T]) List(c *gin.Context) {
	items := h.manager.Search(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// Create validates the JSON body and appends a record.
func (h *ResourceHandler[T]) Create(c *gin.Context) {
	draft, ok := bindDraft(c)
	if !ok {
		return
	}
	r, err := h.manager.Create(draft)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

// Get returns one record as JSON, or as "Header: value" lines with ?format=text.
func (h *ResourceHandler[T]) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	r, err := h.manager.Get(id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if c.Query("format") == "text" {
		c.String(http.StatusOK, h.manager.Describe(r))
		return
	}
	c.JSON(http.StatusOK, r)
}

// Update fully replaces the record with the JSON body.
func (h *ResourceHandler[T]) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	draft, ok := bindDraft(c)
	if !ok {
		return
	}
	r, err := h.manager.UpdateByID(id, draft)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// Delete removes a record only when ?confirm=true; otherwise nothing happens.
func (h *ResourceHandler[T]) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if confirmed, _ := strconv.ParseBool(c.Query("confirm")); !confirmed {
		c.JSON(http.StatusOK, gin.H{"deleted": false, "message": "confirm=true is required to delete"})
		return
	}
	r, err := h.manager.Delete(id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true, "record": r})
}

// Stats returns the entity summary.
func (h *ResourceHandler[T]) Stats(c *gin.Context) {
	if h.stats == nil {
		c.JSON(http.StatusOK, gin.H{"count": h.manager.Len()})
		return
	}
	c.JSON(http.StatusOK, h.stats())
}

// Chart returns a named {labels, values} series.
func (h *ResourceHandler[T]) Chart(c *gin.Context) {
	fn, ok := h.charts[c.Param("chart")]
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": CodeNotFound, "message": "unknown chart " + c.Param("chart")})
		return
	}
	c.JSON(http.StatusOK, fn())
}

// Export downloads the records as an xlsx workbook.
func (h *ResourceHandler[T]) Export(c *gin.Context) {
	schema := h.manager.Schema()
	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, schema.Entity, schema.Header, h.manager.Table(h.manager.List())); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", schema.Entity))
	c.Data(http.StatusOK, export.XLSXContentType, buf.Bytes())
}

// Form returns the current draft, edit index and errors.
func (h *ResourceHandler[T]) Form(c *gin.Context) {
	c.JSON(http.StatusOK, h.manager.Form())
}

// SetFields sets each field of the JSON object body on the draft.
func (h *ResourceHandler[T]) SetFields(c *gin.Context) {
	draft, ok := bindDraft(c)
	if !ok {
		return
	}
	state := h.manager.Form()
	for name, value := range draft {
		var err error
		if state, err = h.manager.SetField(name, value); err != nil {
			writeError(c, h.logger, err)
			return
		}
	}
	c.JSON(http.StatusOK, state)
}

// StartEdit loads the record at the path index into the form.
func (h *ResourceHandler[T]) StartEdit(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		abortBadRequest(c, "index must be a number")
		return
	}
	state, err := h.manager.StartEdit(index)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Submit commits the form. Validation failures return 422 and the draft
// remains available through Form.
func (h *ResourceHandler[T]) Submit(c *gin.Context) {
	r, err := h.manager.Submit()
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"record": r, "form": h.manager.Form()})
}

// Cancel resets the form.
func (h *ResourceHandler[T]) Cancel(c *gin.Context) {
	c.JSON(http.StatusOK, h.manager.Cancel())
}

func pathID(c *gin.Context) (record.ID, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		abortBadRequest(c, "id must be a positive number")
		return 0, false
	}
	return record.ID(id), true
}

// bindDraft reads a flat JSON object. Numbers and booleans are accepted and
// converted to their form text.
func bindDraft(c *gin.Context) (record.Draft, bool) {
	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		abortBadRequest(c, "body must be a JSON object")
		return nil, false
	}

	draft := make(record.Draft, len(raw))
	for k, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			draft[k] = s
			continue
		}
		var n json.Number
		if err := json.Unmarshal(v, &n); err == nil {
			draft[k] = n.String()
			continue
		}
		switch string(bytes.TrimSpace(v)) {
		case "true", "false":
			draft[k] = string(bytes.TrimSpace(v))
		case "null":
			draft[k] = ""
		default:
			abortBadRequest(c, "field "+k+" must be a string, number or boolean")
			return nil, false
		}
	}
	return draft, true
}
