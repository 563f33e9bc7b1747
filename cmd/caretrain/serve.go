package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/johnwards/caretrain/internal/api"
	"github.com/johnwards/caretrain/internal/api/admin"
	"github.com/johnwards/caretrain/internal/api/auth"
	"github.com/johnwards/caretrain/internal/api/organizations"
	"github.com/johnwards/caretrain/internal/api/scenarios"
	"github.com/johnwards/caretrain/internal/config"
	"github.com/johnwards/caretrain/internal/database"
	"github.com/johnwards/caretrain/internal/metrics"
	"github.com/johnwards/caretrain/internal/store"
)

const shutdownTimeout = 10 * time.Second

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := openAndInitialize(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newHandler(cfg, db),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting caretrain server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// newHandler builds the routed, middleware-wrapped API handler.
func newHandler(cfg config.Config, db *database.DB) http.Handler {
	s := store.New(db)
	mux := http.NewServeMux()

	auth.RegisterRoutes(mux, s)
	scenarios.RegisterRoutes(mux, s)
	organizations.RegisterRoutes(mux, s)
	admin.RegisterRoutes(mux, db, cfg.DemoPassword)

	mux.Handle("GET /metrics", metrics.Handler())
	mux.Handle("GET /healthz", api.Health(db))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		corrID := api.CorrelationID(r.Context())
		api.WriteError(w, http.StatusNotFound, api.NewError(
			fmt.Sprintf("No route found for %s %s", r.Method, r.URL.Path),
			corrID,
		))
	})

	if cfg.AdminToken == "" {
		slog.Warn("admin endpoints are not protected; set CARETRAIN_ADMIN_TOKEN")
	}

	// Metrics reads the matched pattern, so it must wrap the mux directly.
	return api.Chain(mux,
		api.Recovery(),
		api.RequestID(),
		api.Auth("/_admin/", cfg.AdminToken),
		api.JSONContentType(),
		api.Logging(),
		api.Metrics(),
	)
}
