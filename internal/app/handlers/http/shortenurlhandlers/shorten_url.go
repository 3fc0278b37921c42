// Package shortenurlhandlers содержит HTTP-хендлеры для операций с короткими URL.
package shortenurlhandlers

import (
	"errors"
	"net/http"

	"github.com/aseptimu/flatfile-shortener/internal/app/service"
	"github.com/aseptimu/flatfile-shortener/internal/app/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ShortenHandler обрабатывает создание коротких ссылок.
type ShortenHandler struct {
	service service.URLShortener
	logger  *zap.SugaredLogger
}

func NewShortenHandler(service service.URLShortener, logger *zap.SugaredLogger) *ShortenHandler {
	return &ShortenHandler{service: service, logger: logger}
}

// Shorten обрабатывает GET и POST /short.
// URL берётся из query-параметра url (GET) или поля формы url (POST).
// Уже сокращённый URL возвращается повторно, иначе создаётся новый shortcode.
func (h *ShortenHandler) Shorten(c *gin.Context) {
	utils.LogRequest(c, h.logger)

	var input string
	if c.Request.Method == http.MethodPost {
		input = c.PostForm("url")
	} else {
		input = c.Query("url")
	}

	shortURL, existed, err := h.service.ShortenURL(c.Request.Context(), input)
	if errors.Is(err, service.ErrEmptyURL) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.logger.Errorw("Failed to shorten URL", "url", input, "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Debugw("URL shortened", "url", input, "shortURL", shortURL, "existed", existed)
	c.JSON(http.StatusOK, gin.H{"shortened_url": shortURL})
}
