package cli

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"startlabx/internal/adapter/http/handlers"
	"startlabx/internal/adapter/http/routes"
	"startlabx/internal/config"
	"startlabx/internal/infrastructure/auth"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx)
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	verifier, err := auth.NewJWTVerifier(cfg.JWTSecret)
	if err != nil {
		return err
	}

	a, err := buildApp(ctx, cfg)
	if err != nil {
		return err
	}

	router := routes.NewRouter(routes.Handlers{
		Offers:        handlers.NewEquityOfferHandler(a.offers),
		CapTable:      handlers.NewCapTableHandler(a.capTable),
		Calculator:    handlers.NewCalculatorHandler(a.calculator),
		Startups:      handlers.NewStartupHandler(a.startups),
		Notifications: handlers.NewNotificationHandler(a.notifications),
	}, verifier)
	srv := &http.Server{Addr: cfg.Addr(), Handler: router}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("[server][cli] listening addr=%s storage=%s", srv.Addr, cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.Printf("[server][cli] shutting down timeout=%s", cfg.ShutdownTimeout)
		return errors.Join(srv.Shutdown(shutdownCtx), a.Close(shutdownCtx))
	})
	return g.Wait()
}
