package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/admybrand/insights/internal/app"
	jobmetrics "github.com/admybrand/insights/internal/jobs"
	"github.com/admybrand/insights/internal/marketing"
	"github.com/admybrand/insights/internal/marketing/export"
	marketinghttp "github.com/admybrand/insights/internal/marketing/http"
	"github.com/admybrand/insights/internal/marketing/svg"
	"github.com/admybrand/insights/internal/observability"
	"github.com/admybrand/insights/internal/platform/cache"
	"github.com/admybrand/insights/internal/preferences"
	"github.com/admybrand/insights/internal/view"
	"github.com/admybrand/insights/jobs"
)

// observedClock mirrors the real-time toggle into the metrics registry.
type observedClock struct {
	*marketing.Ticker
	metrics *observability.Metrics
}

func (c observedClock) SetEnabled(enabled bool) {
	c.Ticker.SetEnabled(enabled)
	c.metrics.SetLive(enabled)
}

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	// The dashboard still renders without Redis: caching is skipped and the
	// theme lives in memory.
	var redisClient *redis.Client
	if client, err := cache.New(ctx, cfg.RedisAddr); err != nil {
		logger.Warn("redis unavailable, running without cache", slog.Any("error", err))
	} else {
		redisClient = client
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}()
	}

	templates, err := view.NewEngine()
	if err != nil {
		logger.Error("parse templates", slog.Any("error", err))
		os.Exit(1)
	}

	mkt := app.NewMarketing(cfg, redisClient, time.Now)
	dataset := mkt.Service.Dataset()
	logger.Info("dataset generated",
		slog.String("dataset_id", dataset.ID()),
		slog.Int("records", dataset.Len()),
		slog.Time("generated_at", dataset.GeneratedAt()),
	)
	if mkt.Cache != nil {
		if err := mkt.Cache.ListenForInvalidation(ctx, marketing.BumpChannel); err != nil {
			logger.Warn("cache invalidation listener", slog.Any("error", err))
		}
	}

	metrics := observability.NewMetrics()
	metrics.ObserveDataset(dataset.Len(), len(dataset.Campaigns()), dataset.GeneratedAt())
	jobMetrics := jobmetrics.NewMetrics(metrics.Registerer())

	ticker := marketing.NewTicker(cfg.RealtimeInterval, time.Now)
	ticker.OnTick(metrics.ObserveTick)
	metrics.ObserveTick(ticker.LastUpdated())
	go ticker.Run(ctx)

	warmup := jobs.NewWarmupJob(mkt.Service, mkt.Cache, logger, jobMetrics)
	go func() {
		if _, err := warmup.Warm(ctx, jobs.WarmupPayload{}); err != nil {
			logger.Warn("startup warmup", slog.Any("error", err))
		}
	}()

	pdfExporter := &export.PDFExporter{Endpoint: cfg.GotenbergURL, Client: &http.Client{Timeout: 30 * time.Second}}
	marketingHandler := marketinghttp.NewHandler(marketinghttp.Deps{
		Logger:    logger,
		Service:   mkt.Service,
		Templates: templates,
		Line:      svg.Renderer{},
		Bar:       svg.Renderer{},
		Donut:     svg.Renderer{},
		PDF:       pdfExporter,
		Clock:     observedClock{Ticker: ticker, metrics: metrics},
		Themes:    preferences.NewStore(redisClient),
	})

	var jobHandler *jobs.Handler
	if redisClient != nil {
		inspector := asynq.NewInspector(jobs.RedisOpt(redisClient.Options()))
		defer func() {
			if err := inspector.Close(); err != nil {
				logger.Warn("inspector close", slog.Any("error", err))
			}
		}()
		jobHandler = jobs.NewHandler(inspector, logger)
	} else {
		jobHandler = jobs.NewHandler(nil, logger)
	}

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		Templates:        templates,
		MarketingHandler: marketingHandler,
		JobHandler:       jobHandler,
		Metrics:          metrics,
		RequestLogging:   true,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
