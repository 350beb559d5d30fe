package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/accessgraph-backend/internal/adapter/postgres"
	"github.com/heartmarshall/accessgraph-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/accessgraph-backend/internal/adapter/postgres/counter"
	"github.com/heartmarshall/accessgraph-backend/internal/adapter/postgres/edge"
	"github.com/heartmarshall/accessgraph-backend/internal/adapter/postgres/identity"
	"github.com/heartmarshall/accessgraph-backend/internal/adapter/postgres/request"
	"github.com/heartmarshall/accessgraph-backend/internal/auth"
	"github.com/heartmarshall/accessgraph-backend/internal/config"
	"github.com/heartmarshall/accessgraph-backend/internal/service/requests"
	"github.com/heartmarshall/accessgraph-backend/internal/service/workflow"
	"github.com/heartmarshall/accessgraph-backend/internal/transport/middleware"
	"github.com/heartmarshall/accessgraph-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := prometheus.Register(postgres.NewPoolCollector(pool)); err != nil {
		return fmt.Errorf("register pool metrics: %w", err)
	}

	txm := postgres.NewTxManager(pool)
	identities := identity.New(pool)
	requestRepo := request.New(pool)

	wf := workflow.NewService(
		logger,
		edge.New(pool),
		requestRepo,
		audit.New(pool),
		counter.New(pool),
		identities,
		txm,
		cfg.Workflow.Domain(),
	)
	queries := requests.NewService(logger, requestRepo, identities, cfg.Workflow.Domain())

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.MutationsPerMinute > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
	}

	handler := rest.NewRouter(rest.RouterDeps{
		Log:                logger,
		Health:             rest.NewHealthHandler(pool, wf, Version),
		Requests:           rest.NewRequestHandler(wf, queries, logger),
		Tokens:             auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		CORS:               cfg.CORS,
		Limiter:            limiter,
		MutationsPerMinute: cfg.RateLimit.MutationsPerMinute,
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

// serve runs srv until ctx is done, then drains in-flight requests within
// the configured shutdown timeout.
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
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return <-errCh
}
