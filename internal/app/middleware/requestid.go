package middleware

import (
	"github.com/aseptimu/flatfile-shortener/internal/app/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader — заголовок с идентификатором запроса.
const RequestIDHeader = "X-Request-ID"

// RequestID берёт идентификатор из заголовка запроса или генерирует UUID,
// кладёт его в контекст под utils.RequestIDKey и возвращает в ответе.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(utils.RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}
