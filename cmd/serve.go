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

	"cryptoquote/internal/config"
	"cryptoquote/internal/handler"
	uihandler "cryptoquote/internal/ui/handler"
	"cryptoquote/internal/widget"
	"cryptoquote/pkg/integrations/scheduler"
	"cryptoquote/pkg/types/quotes"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web widget and JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Server.Port = port
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		engine, cleanup, err := newEngine(ctx, cfg, appLogger)
		if err != nil {
			return err
		}
		defer cleanup()

		return serve(ctx, &http.Server{
			Addr:              ":" + cfg.Server.Port,
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		}, appLogger)
	},
}

func init() {
	serveCmd.Flags().String("port", "", "listen port override")
}

// newEngine wires the web widget, the JSON API and the session sweeper onto
// one gin engine. cleanup stops the sweeper and closes every session.
func newEngine(ctx context.Context, c *config.Config, logger *slog.Logger) (*gin.Engine, func(), error) {
	gin.SetMode(c.Server.Mode)
	client := newClient(c)

	sessions, err := uihandler.NewSessions(func(r quotes.Renderer) (*widget.Widget, error) {
		return newWidget(ctx, c, logger, client, r)
	}, logger, c.Widget.SessionTTL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create sessions: %w", err)
	}

	sweeper, err := scheduler.New(
		scheduler.WithName("session-sweep"),
		scheduler.WithInterval(c.Widget.SweepInterval),
		scheduler.WithContext(ctx),
		scheduler.WithLogger(logger),
		scheduler.WithHandler(sessions.Sweep),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create session sweeper: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if c.Server.Mode == gin.DebugMode {
		r.Use(gin.Logger())
	}

	web, err := uihandler.New(
		uihandler.WithEngine(r),
		uihandler.WithSessions(sessions),
		uihandler.WithCurrencies(currencies(c)),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create web handler: %w", err)
	}
	if err := web.Setup(); err != nil {
		return nil, nil, fmt.Errorf("failed to setup web routes: %w", err)
	}

	api, err := handler.New(
		handler.WithEngine(r),
		handler.WithLogger(logger),
		handler.WithFetcher(client),
		handler.WithCatalog(c.Catalog.Limit, c.Catalog.ReferenceCurrency),
		handler.WithSwagger(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create api handler: %w", err)
	}
	if err := api.Setup(); err != nil {
		return nil, nil, fmt.Errorf("failed to setup api routes: %w", err)
	}

	if err := sweeper.Start(); err != nil {
		return nil, nil, fmt.Errorf("failed to start session sweeper: %w", err)
	}

	return r, func() {
		sweeper.Stop()
		sessions.Close()
	}, nil
}

// serve runs srv until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting cryptoquote", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
