package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/wortschatz-backend/internal/auth"
	"github.com/heartmarshall/wortschatz-backend/internal/config"
	"github.com/heartmarshall/wortschatz-backend/internal/service/study"
	"github.com/heartmarshall/wortschatz-backend/internal/transport/middleware"
	"github.com/heartmarshall/wortschatz-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, opens storage,
// wires services and transport, and serves HTTP until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("database_driver", cfg.Database.Driver),
	)

	storage, err := OpenStorage(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer storage.Close()

	studies := study.NewService(logger, storage.Collections, study.Options{
		DefaultSize: cfg.Study.DefaultSessionSize,
		MaxSize:     cfg.Study.MaxSessionSize,
	})
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	if cfg.Reconcile.Interval > 0 {
		scheduler, err := NewReconcileScheduler(storage.Collections, cfg.Reconcile.Interval, logger)
		if err != nil {
			return err
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	apiMiddleware := []middleware.Middleware{middleware.Auth(tokens, logger), middleware.Logger(logger)}
	if cfg.RateLimit.RequestsPerMinute > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, cfg.RateLimit.IdleTTL)
		defer limiter.Stop()
		apiMiddleware = append(apiMiddleware, limiter.Middleware)
	}

	validator := rest.NewValidator()
	maxBody := cfg.Server.MaxBodyBytes
	handler := rest.NewRouter(rest.RouterDeps{
		Health:      rest.NewHealthHandler(storage.Pinger, cfg.Database.Driver, BuildVersion()),
		Collections: rest.NewCollectionHandler(storage.Collections, validator, logger, maxBody),
		Study:       rest.NewStudyHandler(studies, validator, logger, maxBody),
		Data:        rest.NewDataHandler(storage.Collections, validator, logger, maxBody),
		Global: []middleware.Middleware{
			middleware.Recovery(logger),
			middleware.RequestID,
			middleware.CORS(cfg.CORS),
		},
		API: apiMiddleware,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// serve runs srv until ctx is canceled, then drains in-flight requests for
// at most the configured shutdown timeout.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	logger.Info("http server stopped")
	return nil
}
