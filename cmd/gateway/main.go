package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/parspay/tara-gateway/internal/application/services"
	"github.com/parspay/tara-gateway/internal/config"
	"github.com/parspay/tara-gateway/internal/infrastructure/persistence/postgres"
	"github.com/parspay/tara-gateway/internal/interfaces/rest/handlers"
	"github.com/parspay/tara-gateway/internal/interfaces/rest/middleware"
	"github.com/parspay/tara-gateway/internal/tara"
	"github.com/parspay/tara-gateway/internal/worker"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting tara gateway service",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"staging", cfg.Gateway.IsTest,
	)

	ctx := context.Background()
	db, err := postgres.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	paymentRepo := postgres.NewPaymentRepository(db.Pool)

	gatewayClient := tara.NewClient(
		cfg.Gateway.Endpoints(),
		tara.DefaultMessages(),
		&http.Client{Timeout: cfg.Gateway.ConnTimeout},
		logger,
	)

	paymentService := services.NewPaymentService(paymentRepo, gatewayClient, cfg.Gateway.Account(), logger)

	reconciler := worker.NewReconciler(
		paymentRepo,
		gatewayClient,
		cfg.Gateway.Account(),
		tara.DefaultMessages(),
		cfg.Worker.Interval,
		cfg.Worker.StaleAfter,
		cfg.Worker.BatchSize,
		logger,
	)

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	go reconciler.Start(workerCtx)

	mux := http.NewServeMux()
	handlers.NewPaymentHandler(paymentService, logger).RegisterRoutes(mux)

	handler := middleware.Recovery(logger)(mux)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.ReadTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	cancelWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
