package health

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const pingTimeout = 2 * time.Second

type Handler struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewHandler(db *sql.DB, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("health.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("health.handler")
	}
	return &Handler{db: db, logger: l}
}

// Check reports liveness. The database is the only dependency, so a failed
// ping means the whole service is unhealthy.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn("health check db ping failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}
