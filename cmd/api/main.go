package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dan9191/investment-calculator/internal/config"
	"github.com/Dan9191/investment-calculator/internal/handler"
	"github.com/Dan9191/investment-calculator/internal/logging"
	"github.com/Dan9191/investment-calculator/internal/middleware"
	"github.com/Dan9191/investment-calculator/internal/service"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := logging.New(cfg.LogLevel, os.Stderr)

	// Initialize layers
	svc := service.NewService(logger, cfg)
	h := handler.NewHandler(svc, logger)

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	// Investment routes, protected when a JWT secret is configured
	invRouter := r.PathPrefix("/investments").Subrouter()
	if cfg.JWTSecret != "" {
		invRouter.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	} else {
		logger.Warn("JWT_SECRET is empty, /investments routes are unauthenticated")
	}
	invRouter.HandleFunc("/summary", h.CreateSummary).Methods(http.MethodPost)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Fatalf("Server failed: %v", err)
	case <-quit:
		logger.Info("Shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}
}
