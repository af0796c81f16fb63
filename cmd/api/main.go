package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/naf3/admin-console-api/internal/config"
	"github.com/naf3/admin-console-api/internal/http/handler"
	"github.com/naf3/admin-console-api/internal/http/middleware"
	"github.com/naf3/admin-console-api/internal/http/router"
	"github.com/naf3/admin-console-api/internal/logger"
	"github.com/naf3/admin-console-api/internal/service"
	"github.com/naf3/admin-console-api/internal/upstream"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Environment),
		zap.Int("port", cfg.App.Port),
	)

	// Upstream client (the only external dependency)
	client := upstream.NewClient(&cfg.Upstream, log)

	// Services
	partnerService := service.NewPartnerService(client, log)
	charityService := service.NewCharityService(client, log)
	donorService := service.NewDonorService(client, log)
	recipientService := service.NewRecipientService(client, log)
	transactionService := service.NewTransactionService(client, log)

	// Middleware
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Handlers
	authHandler := handler.NewAuthHandler(client, log)
	partnerHandler := handler.NewPartnerHandler(partnerService, log)
	charityHandler := handler.NewCharityHandler(charityService, log)
	donorHandler := handler.NewDonorHandler(donorService, log)
	recipientHandler := handler.NewRecipientHandler(recipientService, log)
	transactionHandler := handler.NewTransactionHandler(transactionService, log)
	proxyHandler := handler.NewProxyHandler(client, log)

	rt := router.NewRouter(
		cfg,
		log,
		rateLimiter,
		authHandler,
		partnerHandler,
		charityHandler,
		donorHandler,
		recipientHandler,
		transactionHandler,
		proxyHandler,
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
