package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/joho/godotenv"

	"moneymgr/internal/backend"
	"moneymgr/internal/config"
	apphttp "moneymgr/internal/http"
	applog "moneymgr/internal/log"
	"moneymgr/internal/session"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger := applog.New(slog.LevelInfo)
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", applog.FieldError, err)
		os.Exit(1)
	}

	result, err := backend.Create(backend.Config{
		Type:    backend.Type(cfg.DataBackend),
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.APITimeout,
	}, logger.WithComponent(applog.ComponentBackend).Logger)
	if err != nil {
		logger.Error("Failed to initialize backend", applog.FieldError, err, applog.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// For the API backend, wait for the backend to come up before
	// serving. Once running, requests are never retried; only this
	// startup probe backs off.
	if result.Client != nil {
		probe := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5), ctx)
		err := backoff.RetryNotify(
			func() error { return result.Client.Ping(ctx) },
			probe,
			func(err error, next time.Duration) {
				logger.Warn("Backend not ready, retrying", applog.FieldError, err, "retry_in", next)
			},
		)
		if err != nil {
			logger.Warn("Backend unreachable at startup, serving anyway", applog.FieldError, err)
		}
	}

	sess := session.New(result.Transactions, result.Accounts, session.Theme(cfg.DefaultTheme))
	if err := sess.Load(ctx); err != nil {
		// the UI shows per-region error indicators; first page load retries
		logger.Warn("Initial data load incomplete", applog.FieldError, err)
	}

	srv, err := apphttp.NewServer(":"+cfg.Port, sess)
	if err != nil {
		logger.Error("Failed to initialize server", applog.FieldError, err)
		os.Exit(1)
	}

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 15 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", applog.FieldError, err)
		}
		cancel()
	}()

	logger.Info("Starting moneymgr server", "port", cfg.Port, applog.FieldBackend, cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", applog.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
