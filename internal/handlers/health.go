package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthPingTimeout = 2 * time.Second

func (h *Handler) HealthCheck(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), healthPingTimeout)
	defer cancel()

	if err := h.store.Ping(pingCtx); err != nil {
		h.logger.Error().Err(err).Msg("health check: store unreachable")
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "unavailable",
			"message":   "Store is unreachable",
			"timestamp": time.Now().Format(time.RFC3339),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Trackr is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
