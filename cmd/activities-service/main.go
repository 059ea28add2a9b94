// Package main запускает HTTP-сервис записи на школьные кружки
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"activities-service/internal/config"
	httpapi "activities-service/internal/http"
	"activities-service/internal/repository"
	"activities-service/internal/service"
)

func main() {
	// Контекст для корректного завершения
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация логгера (JSON)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Чтение конфигурации из ENV
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 1. Выбор реестра: in-memory по умолчанию, Postgres при заданном DB_DSN
	var registry service.Registry
	if cfg.DSN != "" {
		db, err := repository.NewPostgres(ctx, cfg.DSN)
		if err != nil {
			log.Fatalf("failed to init postgres: %v", err)
		}
		defer db.Pool.Close()

		pgRegistry := repository.NewPostgresRegistry(db)
		if err := pgRegistry.Bootstrap(ctx, repository.SeedActivities()); err != nil {
			log.Fatalf("failed to bootstrap registry: %v", err)
		}
		registry = pgRegistry
		logger.Info("using postgres registry")
	} else {
		registry = repository.NewMemoryRegistry(repository.SeedActivities())
		logger.Info("using in-memory registry, state resets on restart")
	}

	// 2. Инициализация сервиса
	activityService := service.NewActivityService(registry)

	// 3. Инициализация HTTP-обработчика
	handler := httpapi.NewHandler(activityService, cfg.StaticDir, logger)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler.Router(),
	}

	// Запуск сервера в горутине
	go func() {
		logger.Info("starting http server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("err", err))
			cancel()
		}
	}()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}
