package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tripplanner/internal/ai"
	"tripplanner/internal/config"
	httptransport "tripplanner/internal/http"
	"tripplanner/internal/infra"
	"tripplanner/internal/logging"
	"tripplanner/internal/maps"
	"tripplanner/internal/modules/itinerary"
	"tripplanner/internal/render"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the trip planner web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.IsProduction())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	switch {
	case cfg.HTTP.GinMode != "":
		gin.SetMode(cfg.HTTP.GinMode)
	case cfg.IsProduction():
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	planner, cleanup, err := buildService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Planner:     planner,
		Logger:      logger,
		CORSOrigins: cfg.HTTP.CORSOrigins,
	})

	// Generation can take most of the model timeout, so the write deadline leaves headroom.
	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      cfg.AI.Timeout + 30*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening",
			zap.String("addr", cfg.HTTP.Addr),
			zap.String("env", cfg.Env),
			zap.String("model", planner.Model()),
			zap.String("key_source", cfg.AI.KeySource))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("http server stopped")
	return nil
}

// buildService wires the generator, renderer, hand-off store and optional route hint.
// The returned cleanup releases the Gemini client and Redis connection.
func buildService(ctx context.Context, cfg config.Config, logger *zap.Logger) (*itinerary.Service, func(), error) {
	gemini := ai.NewGemini(ctx, cfg.AI.APIKey, ai.Options{
		Model:       cfg.AI.Model,
		Temperature: cfg.AI.Temperature,
		Timeout:     cfg.AI.Timeout,
	}, logger)
	closers := []func(){func() { _ = gemini.Close() }}
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var store itinerary.Store
	if cfg.Plans.RedisAddr != "" {
		client, err := infra.NewRedis(ctx, cfg.Plans.RedisAddr)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		closers = append(closers, func() { _ = client.Close() })
		store = itinerary.NewRedisStore(client, cfg.Plans.TTL)
		logger.Info("plan hand-off store: redis", zap.String("addr", cfg.Plans.RedisAddr), zap.Duration("ttl", cfg.Plans.TTL))
	} else {
		store = itinerary.NewMemoryStore(cfg.Plans.TTL)
		logger.Info("plan hand-off store: memory", zap.Duration("ttl", cfg.Plans.TTL))
	}

	var routes itinerary.RouteEstimator
	if cfg.Maps.APIKey != "" {
		rs, err := maps.NewRouteService(cfg.Maps.APIKey)
		if err != nil {
			logger.Warn("route hints disabled", zap.Error(err))
		} else {
			routes = rs
		}
	}

	svc := itinerary.NewService(itinerary.ServiceDeps{
		Generator: gemini,
		Renderer:  render.New(),
		Store:     store,
		Routes:    routes,
		Logger:    logger,
	})
	return svc, cleanup, nil
}
