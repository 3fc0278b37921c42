package shortenurlhandlers

import (
	"errors"
	"net/http"

	"github.com/aseptimu/flatfile-shortener/internal/app/service"
	"github.com/aseptimu/flatfile-shortener/internal/app/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetURLHandler перенаправляет с короткой ссылки на оригинальный URL.
type GetURLHandler struct {
	service service.URLGetter
	logger  *zap.SugaredLogger
}

func NewGetURLHandler(service service.URLGetter, logger *zap.SugaredLogger) *GetURLHandler {
	return &GetURLHandler{service: service, logger: logger}
}

// GetURL отвечает 302 на оригинальный URL или 404, если shortcode неизвестен.
func (h *GetURLHandler) GetURL(c *gin.Context) {
	utils.LogRequest(c, h.logger)

	shortcode := c.Param("shortcode")
	originalURL, err := h.service.GetOriginalURL(c.Request.Context(), shortcode)
	switch {
	case errors.Is(err, service.ErrURLNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.logger.Errorw("Failed to resolve shortcode", "shortcode", shortcode, "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Redirect(http.StatusFound, originalURL)
}
