package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/admybrand/insights/internal/app"
	jobmetrics "github.com/admybrand/insights/internal/jobs"
	"github.com/admybrand/insights/internal/platform/cache"
	"github.com/admybrand/insights/jobs"
)

func main() {
	enqueue := flag.String("enqueue", "", "enqueue a task and exit (supported: warmup)")
	bump := flag.Bool("bump", false, "invalidate the dashboard cache before warming")
	days := flag.String("days", "", "comma separated trend windows to warm, e.g. 7,14,30")
	flag.Parse()

	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
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
	connOpts, err := cache.Options(cfg.RedisAddr)
	if err != nil {
		logger.Error("redis options", slog.Any("error", err))
		os.Exit(2)
	}
	redisOpts := jobs.RedisOpt(connOpts)

	windows, err := parseDays(*days, cfg.WindowDays)
	if err != nil {
		logger.Error("parse days", slog.Any("error", err))
		os.Exit(2)
	}
	payload := jobs.WarmupPayload{Days: windows, Bump: *bump}

	if *enqueue != "" {
		if err := enqueueTask(ctx, redisOpts, *enqueue, payload, logger); err != nil {
			logger.Error("enqueue", slog.String("task", *enqueue), slog.Any("error", err))
			os.Exit(1)
		}
		return
	}

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	mkt := app.NewMarketing(cfg, redisClient, time.Now)
	if cfg.Seed == 0 {
		logger.Warn("INSIGHTS_SEED is 0; warmed payloads will not match the dashboard dataset")
	}
	logger.Info("dataset generated", slog.String("dataset_id", mkt.Service.Dataset().ID()))

	warmupJob := jobs.NewWarmupJob(mkt.Service, mkt.Cache, logger, jobmetrics.NewMetrics(nil))
	warmupTask, err := jobs.NewWarmupTask(jobs.WarmupPayload{Days: windows})
	if err != nil {
		logger.Error("build warmup task", slog.Any("error", err))
		os.Exit(1)
	}

	cronSpec := cfg.WarmupCron
	if cronSpec == "" {
		cronSpec = jobs.DefaultWarmupCron
	}
	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: redisOpts,
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskDashboardWarmup, Handler: warmupJob.Handle},
		},
		Cron: []jobs.CronRegistration{
			{Spec: cronSpec, Task: warmupTask, Options: []asynq.Option{asynq.MaxRetry(jobs.WarmupMaxRetry)}},
		},
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("worker run", slog.Any("error", err))
		os.Exit(1)
	}
}

func enqueueTask(ctx context.Context, opts asynq.RedisClientOpt, name string, payload jobs.WarmupPayload, logger *slog.Logger) error {
	if name != "warmup" {
		return fmt.Errorf("unknown task %q", name)
	}
	client := jobs.NewClient(opts)
	defer func() {
		if err := client.Close(); err != nil {
			logger.Warn("client close", slog.Any("error", err))
		}
	}()
	info, err := client.EnqueueWarmup(ctx, payload)
	if err != nil {
		return err
	}
	logger.Info("task enqueued", slog.String("id", info.ID), slog.String("queue", info.Queue), slog.String("type", info.Type))
	return nil
}

func parseDays(raw string, maxDays int) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var out []int
	for _, part := range strings.Split(raw, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 || n > maxDays {
			return nil, fmt.Errorf("invalid trend window %q", part)
		}
		out = append(out, n)
	}
	return out, nil
}
