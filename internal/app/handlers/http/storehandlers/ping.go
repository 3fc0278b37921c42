// Package storehandlers содержит HTTP-хендлеры для проверки доступности файла базы.
package storehandlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger описывает ресурс, доступность которого можно проверить.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingHandler обрабатывает GET /ping.
type PingHandler struct {
	store  Pinger
	logger *zap.SugaredLogger
}

func NewPingHandler(store Pinger, logger *zap.SugaredLogger) *PingHandler {
	return &PingHandler{store: store, logger: logger}
}

// Ping отвечает 500, если файл базы не читается или повреждён, и 200 в остальных случаях.
func (h *PingHandler) Ping(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		h.logger.Errorw("Storage ping failed", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusOK)
}
