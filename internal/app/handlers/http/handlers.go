package http

import (
	"github.com/aseptimu/flatfile-shortener/internal/app/handlers/http/shortenurlhandlers"
	"github.com/aseptimu/flatfile-shortener/internal/app/handlers/http/storehandlers"
	"github.com/aseptimu/flatfile-shortener/internal/app/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers interface {
	RegisterRoutes(r *gin.Engine)
}

type handlersImpl struct {
	urlSvc    service.URLShortener
	urlGetSvc service.URLGetter
	pinger    storehandlers.Pinger
	logger    *zap.SugaredLogger
}

func New(
	urlSvc service.URLShortener,
	urlGetSvc service.URLGetter,
	pinger storehandlers.Pinger,
	logger *zap.SugaredLogger,
) Handlers {
	return &handlersImpl{
		urlSvc:    urlSvc,
		urlGetSvc: urlGetSvc,
		pinger:    pinger,
		logger:    logger,
	}
}

func (h *handlersImpl) RegisterRoutes(r *gin.Engine) {
	shorten := shortenurlhandlers.NewShortenHandler(h.urlSvc, h.logger).Shorten

	r.GET("/short", shorten)
	r.POST("/short", shorten)
	r.GET("/ping", storehandlers.NewPingHandler(h.pinger, h.logger).Ping)
	r.GET("/:shortcode", shortenurlhandlers.NewGetURLHandler(h.urlGetSvc, h.logger).GetURL)
}
