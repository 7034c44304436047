package handler

import (
	"affiliate-server/internal/notifications/processor"
	"affiliate-server/internal/observability"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.AlertProcessor
	logger    *observability.Logger
}

func New(processor processor.AlertProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleAdminAlert handles POST /api/webhooks/admin-alerts
func (h *Handler) HandleAdminAlert(c *gin.Context) {
	ctx := c.Request.Context()

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		h.logger.Error(ctx, "failed to read admin alert body", err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	// Undecodable payloads are treated as empty and fall through to "ignored"
	var event processor.RowEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		h.logger.WarnWithError(ctx, "undecodable admin alert payload", err)
	}

	if h.processor.HandleRowEvent(ctx, event) {
		c.String(http.StatusOK, "Admin alert received and logged successfully")
		return
	}
	c.String(http.StatusOK, "Event ignored")
}
