// Package http настраивает gin, middleware и запускает HTTP-сервер.
package http

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	handlers "github.com/aseptimu/flatfile-shortener/internal/app/handlers/http"
	"github.com/aseptimu/flatfile-shortener/internal/app/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

type Server struct {
	srv    *http.Server
	logger *zap.SugaredLogger
}

func NewServer(addr string, logger *zap.SugaredLogger, h handlers.Handlers) *Server {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	logger.Debug("Setting up middleware")
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.MiddlewareLogger(logger), middleware.GzipMiddleware())
	h.RegisterRoutes(r)

	return &Server{
		srv:    &http.Server{Addr: addr, Handler: r},
		logger: logger,
	}
}

// Handler возвращает настроенный gin.Engine.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Run запускает сервер и блокируется до отмены ctx или ошибки прослушивания.
// После отмены ctx сервер завершает активные запросы в течение shutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Infow("Starting HTTP server", "address", s.srv.Addr)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		s.logger.Infow("Shutting down server", "address", s.srv.Addr)
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Errorw("Error shutting down server", "error", err)
		}
	}()

	err := s.srv.ListenAndServe()
	cancel()
	wg.Wait()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
