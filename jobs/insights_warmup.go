package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	jobmetrics "github.com/admybrand/insights/internal/jobs"
	"github.com/admybrand/insights/internal/marketing"
)

var defaultJobMetrics = jobmetrics.NewMetrics(nil)

const warmupTimeout = 20 * time.Second

// WarmupService is the subset of marketing.Service the warmup reads through.
type WarmupService interface {
	Summary(ctx context.Context) (marketing.SummaryMetrics, error)
	Growth(ctx context.Context) (marketing.GrowthSet, error)
	Campaigns(ctx context.Context) ([]marketing.CampaignSummary, error)
	DailyTrend(ctx context.Context, days int) ([]marketing.DailyPoint, error)
	Distribution(ctx context.Context) ([]marketing.CampaignShare, error)
	QueryCampaigns(ctx context.Context, q marketing.CampaignQuery) (marketing.CampaignPage, error)
	TrendDays() int
}

// CacheBumper invalidates cached payloads.
type CacheBumper interface {
	Bump(ctx context.Context) error
}

// WarmupJob pre-populates the dashboard cache.
type WarmupJob struct {
	Service WarmupService
	Cache   CacheBumper
	Logger  *slog.Logger
	Metrics *jobmetrics.Metrics
	clock   func() time.Time
}

// NewWarmupJob wires dependencies for the warmup handler.
func NewWarmupJob(service WarmupService, cache CacheBumper, logger *slog.Logger, metrics *jobmetrics.Metrics) *WarmupJob {
	return &WarmupJob{
		Service: service,
		Cache:   cache,
		Logger:  logger,
		Metrics: metrics,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Handle processes dashboard warmup tasks.
func (j *WarmupJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Service == nil {
		return errors.New("dashboard warmup: handler not configured")
	}
	payload, err := decodeWarmupPayload(t.Payload())
	if err != nil {
		j.logger().Warn("discard warmup task", slog.Any("error", err))
		return fmt.Errorf("dashboard warmup: %v: %w", err, asynq.SkipRetry)
	}
	_, err = j.Warm(ctx, payload)
	return err
}

// Warm reads every dashboard payload through the service so the cache holds
// them. It returns the number of payloads read.
func (j *WarmupJob) Warm(ctx context.Context, payload WarmupPayload) (warmed int, resultErr error) {
	tracker := j.metrics().Track(TaskDashboardWarmup)
	defer func() {
		resultErr = tracker.End(resultErr)
	}()

	logger := j.logger().With(slog.Bool("bump", payload.Bump))
	start := j.now()
	logger.Info("starting dashboard warmup")

	ctx, cancel := context.WithTimeout(ctx, warmupTimeout)
	defer cancel()

	if payload.Bump && j.Cache != nil {
		if err := j.Cache.Bump(ctx); err != nil {
			logger.Error("bump cache", slog.Any("error", err))
			return 0, err
		}
	}

	days := payload.Days
	if len(days) == 0 {
		days = []int{j.Service.TrendDays()}
	}

	steps := []warmStep{
		{"summary", func(ctx context.Context) error { _, err := j.Service.Summary(ctx); return err }},
		{"growth", func(ctx context.Context) error { _, err := j.Service.Growth(ctx); return err }},
		{"campaigns", func(ctx context.Context) error { _, err := j.Service.Campaigns(ctx); return err }},
		{"distribution", func(ctx context.Context) error { _, err := j.Service.Distribution(ctx); return err }},
		{"table", func(ctx context.Context) error {
			_, err := j.Service.QueryCampaigns(ctx, marketing.CampaignQuery{})
			return err
		}},
	}
	for _, n := range days {
		steps = append(steps, warmStep{"daily", func(ctx context.Context) error {
			_, err := j.Service.DailyTrend(ctx, n)
			return err
		}})
	}

	for _, step := range steps {
		if err := step.read(ctx); err != nil {
			logger.Error("warm payload", slog.String("kind", step.kind), slog.Any("error", err))
			return warmed, fmt.Errorf("dashboard warmup %s: %w", step.kind, err)
		}
		j.metrics().AddWarmed(step.kind, 1)
		warmed++
	}

	logger.Info("completed dashboard warmup", slog.Int("payloads", warmed), slog.Duration("duration", j.now().Sub(start)))
	return warmed, nil
}

type warmStep struct {
	kind string
	read func(context.Context) error
}

func (j *WarmupJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger.With(slog.String("job", TaskDashboardWarmup))
	}
	return slog.Default().With(slog.String("job", TaskDashboardWarmup))
}

func (j *WarmupJob) metrics() *jobmetrics.Metrics {
	if j.Metrics != nil {
		return j.Metrics
	}
	return defaultJobMetrics
}

func (j *WarmupJob) now() time.Time {
	if j.clock != nil {
		return j.clock()
	}
	return time.Now().UTC()
}
