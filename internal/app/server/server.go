// Package server собирает приложение: хранилище, сервис, хендлеры и HTTP-сервер.
package server

import (
	"context"
	"fmt"

	"github.com/aseptimu/flatfile-shortener/internal/app/config"
	handlers "github.com/aseptimu/flatfile-shortener/internal/app/handlers/http"
	"github.com/aseptimu/flatfile-shortener/internal/app/server/http"
	"github.com/aseptimu/flatfile-shortener/internal/app/service"
	"github.com/aseptimu/flatfile-shortener/internal/app/store"
	"go.uber.org/zap"
)

// New открывает файловое хранилище и готовит HTTP-сервер.
// Ошибки хранилища (store.ErrConfiguration, store.ErrInvalidURL,
// store.ErrInvalidDatabase) возвращаются как есть.
func New(cfg *config.ConfigType, logger *zap.SugaredLogger) (*http.Server, error) {
	logger.Debugw("Opening database file", "path", cfg.DatabaseFile, "websiteURL", cfg.WebsiteURL)
	fileStore, err := store.NewFileStore(cfg.DatabaseFile, cfg.WebsiteURL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	logger.Infow("Database file loaded", "path", cfg.DatabaseFile, "baseURL", fileStore.BaseURL())

	urlService := service.NewURLService(fileStore)
	h := handlers.New(urlService, urlService, fileStore, logger)

	return http.NewServer(cfg.ServerAddress, logger, h), nil
}

// Run собирает приложение и обслуживает запросы до отмены ctx.
func Run(ctx context.Context, cfg *config.ConfigType, logger *zap.SugaredLogger) error {
	srv, err := New(cfg, logger)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}
