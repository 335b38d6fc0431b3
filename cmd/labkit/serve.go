package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/labkit/app/toolserver"
	"github.com/dmitrymomot/labkit/core/config"
	"github.com/dmitrymomot/labkit/core/dispatch"
	"github.com/dmitrymomot/labkit/core/logger"
	"github.com/dmitrymomot/labkit/core/metrics"
	"github.com/dmitrymomot/labkit/core/server"
	"github.com/dmitrymomot/labkit/middleware"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the tool server",
		Long: `Start the tool server.

Configuration is read from the environment and an optional .env file:
SERVER_ADDR, APP_NAME, APP_ENV, LOG_LEVEL, ENABLE_SHUTDOWN, METRICS_PATH,
BODY_LIMIT, CORS_ORIGINS and the SERVER_* timeouts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg toolserver.Config
			if err := config.Load(&cfg); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			return serve(cmd.Context(), cfg, newLogger(cfg))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides SERVER_ADDR")
	return cmd
}

func newLogger(cfg toolserver.Config) *slog.Logger {
	env := logger.WithDevelopment(cfg.AppName)
	switch cfg.Env {
	case "production":
		env = logger.WithProduction(cfg.AppName)
	case "staging":
		env = logger.WithStaging(cfg.AppName)
	}

	return logger.New(
		env,
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
			id, ok := middleware.GetRequestID(ctx)
			if !ok {
				return slog.Attr{}, false
			}
			return logger.RequestID(id), true
		}),
	)
}

func serve(ctx context.Context, cfg toolserver.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := metrics.New(metrics.WithConstLabels(map[string]string{"service": cfg.AppName}))

	appOpts := []toolserver.Option{
		toolserver.WithLogger(log),
		toolserver.WithMetrics(m),
	}
	if cfg.EnableShutdown {
		appOpts = append(appOpts, toolserver.WithShutdown(cancel))
	}

	d := dispatch.New(toolserver.NewApp(appOpts...),
		dispatch.WithLogger(log),
		dispatch.WithMiddleware(dispatch.LoggingMiddleware(log)),
		dispatch.WithMetrics(m),
	)

	mux := http.NewServeMux()
	if cfg.MetricsPath != "" {
		mux.Handle(cfg.MetricsPath, m.Handler())
	}
	httpOpts := []dispatch.HTTPOption{
		dispatch.WithHTTPLogger(log),
		dispatch.WithHTTPMetrics(m),
		dispatch.WithBodyLimit(cfg.BodyLimit),
	}
	if len(cfg.CORSOrigins) > 0 {
		httpOpts = append(httpOpts, dispatch.WithHTTPMiddleware(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: cfg.CORSOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost},
		})))
	}
	mux.Handle("/", dispatch.NewHTTPHandler(d, httpOpts...))

	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(srv.Run(ctx, mux))

	if err := eg.Wait(); err != nil {
		log.Error("Failed to run server", logger.Component("server"), logger.Error(err))
		return err
	}

	log.Info("Application stopped")
	return nil
}
