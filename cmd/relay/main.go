package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fidelopez89/cashea-backend-relojteca/internal/api"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/application/services"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/config"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/infrastructure/cashea"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/infrastructure/shopify"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/interfaces/rest/handlers"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/interfaces/rest/middleware"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting cashea relay",
		"port", cfg.Server.Port,
		"env", cfg.Primary.Env,
		"log_level", cfg.Logger.Level,
		"shopify_store", cfg.Shopify.Store,
	)
	if cfg.Cashea.InsecureSkipVerify {
		logger.Warn("TLS verification disabled for cashea client")
	}

	doc, err := api.LoadSpec(context.Background())
	if err != nil {
		logger.Error("failed to load api document", "error", err)
		os.Exit(1)
	}

	casheaClient := cashea.NewClient(cfg.Cashea)
	shopifyClient := shopify.NewClient(cfg.Shopify)

	confirmService := services.NewConfirmationService(
		casheaClient,
		shopifyClient,
		cfg.Shopify.Timeout,
		logger,
	)

	h := handlers.NewHandlers(confirmService, logger, cfg.Primary.IsDevelopment())

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	if err := api.RegisterDocsRoutes(mux, doc); err != nil {
		logger.Error("failed to register docs", "error", err)
		os.Exit(1)
	}

	router := http.Handler(mux)

	handler := middleware.Recovery(logger, cfg.Primary.IsDevelopment())(router)
	handler = middleware.Timeout(cfg.Server.RequestTimeout)(handler)
	handler = middleware.Logging(logger)(handler)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
