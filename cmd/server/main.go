package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"francoggm/payment-service/internal/app/notification"
	"francoggm/payment-service/internal/app/payment"
	"francoggm/payment-service/internal/app/server"
	"francoggm/payment-service/internal/config"
	"francoggm/payment-service/internal/logging"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		slog.Warn("failed to load .env file", "err", err)
	}

	cfg := config.NewConfig()

	logger := logging.New(os.Stdout, cfg.Log)
	slog.SetDefault(logger)

	logger.Info("configuration loaded",
		"notificationServiceUrl", cfg.NotificationService.URL,
		"notificationTimeout", cfg.NotificationService.Timeout,
		"processingDelay", cfg.Payment.ProcessingDelay,
	)

	// Clients
	notificationClient := notification.NewClient(cfg.NotificationService.URL, cfg.NotificationService.Timeout, cfg.NotificationService.MaxConns)

	// Services
	paymentService := payment.NewService(notificationClient, cfg.Payment.ProcessingDelay, logger)

	srv := server.NewServer(cfg, paymentService, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
		return
	case <-quit:
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "err", err)
		os.Exit(1)
	}

	logger.Info("server exited")
}
