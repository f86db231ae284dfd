package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"summit"
	"summit/internal/api"
	"summit/internal/api/handler/v1handler"
	"summit/internal/config"
	"summit/pkg/domain"
	"summit/pkg/logger"
	"summit/pkg/metrics"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// loadFixture returns the profile served by the mock endpoint: the file at
// cfg.Fixture.Path when set, the embedded one otherwise.
func loadFixture(ctx context.Context, cfg *config.Config) domain.Profile {
	raw := summit.DefaultProfile
	if cfg.Fixture.Path != "" {
		b, err := os.ReadFile(cfg.Fixture.Path)
		if err != nil {
			logger.Fatal(ctx, "could not read fixture", zap.String("path", cfg.Fixture.Path), zap.Error(err))
		}
		raw = b
	}

	p, err := v1handler.ParseFixture(raw)
	if err != nil {
		logger.Fatal(ctx, "could not load fixture", zap.Error(err))
	}

	return p
}

func setupServer(ctx context.Context, cfg *config.Config, mp metric.MeterProvider) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{
		Deps: v1handler.Deps{
			Fixture:       loadFixture(ctx, cfg),
			MeterProvider: mp,
		},
		Gatherer:    prometheus.DefaultGatherer,
		OpenAPISpec: summit.OpenAPISpec,
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// serveCommand constructs the 'serve' subcommand that runs the mock profile
// endpoint until interrupted.
func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the mock profile API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, mp)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shutdown meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
