package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aseptimu/flatfile-shortener/internal/app/config"
	"github.com/aseptimu/flatfile-shortener/internal/app/logger"
	"github.com/aseptimu/flatfile-shortener/internal/app/server"
)

func main() {
	cfg, err := config.NewConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	sugar, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("cannot init logger: %v", err)
	}
	defer sugar.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg, sugar); err != nil {
		sugar.Fatalw("Server stopped with error", "address", cfg.ServerAddress, "error", err)
	}
}
