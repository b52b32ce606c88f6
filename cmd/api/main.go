package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jeremyjsx/folio/internal/app"
	"github.com/jeremyjsx/folio/internal/config"
	"github.com/jeremyjsx/folio/internal/events"
	"github.com/jeremyjsx/folio/internal/handlers"
	"github.com/jeremyjsx/folio/internal/metrics"
	"github.com/jeremyjsx/folio/internal/posts"
	"github.com/jeremyjsx/folio/internal/render"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := config.Load()
	logger := cfg.NewLogger()

	ctx := context.Background()

	src, closeSource, err := app.OpenSource(ctx, cfg)
	if err != nil {
		logger.Error("failed to open posts source", "source", cfg.PostsSource, "error", err)
		os.Exit(1)
	}
	defer closeSource()

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.RabbitMQURL != "" {
		p, err := events.NewRabbitMQPublisher(cfg.RabbitMQURL)
		if err != nil {
			logger.Warn("rabbitmq unavailable, view events disabled", "error", err)
		} else {
			defer p.Close()
			publisher = p
		}
	}

	registry := prometheus.NewRegistry()
	m, err := metrics.New(registry)
	if err != nil {
		logger.Error("failed to register metrics", "error", err)
		os.Exit(1)
	}

	svc := posts.NewService(src, publisher, m, logger)
	postsHandler := handlers.NewPostsHandler(svc, render.New(), cfg.FallbackCoverImage, logger)

	server := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: handlers.NewRouter(handlers.RouterDeps{
			Posts:     postsHandler,
			Health:    &handlers.HealthDeps{Source: src, RabbitMQURL: cfg.RabbitMQURL},
			Metrics:   m.Handler(),
			StaticDir: cfg.StaticDir,
			Logger:    logger,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server started", "port", cfg.Port, "source", cfg.PostsSource)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	for sig := range signals {
		if sig == syscall.SIGHUP {
			if cached, ok := src.(*posts.CachedSource); ok {
				cached.Invalidate()
				logger.Info("posts cache invalidated")
			}
			continue
		}
		break
	}

	logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
