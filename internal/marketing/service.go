package marketing

import (
	"context"
	"fmt"
	"strconv"
	"sync"
)

// Service serves shaped dashboard data for one Dataset, consulting the cache when present.
type Service struct {
	dataset   Dataset
	cache     *Cache
	rnd       Sampler
	trendDays int

	campaignsOnce sync.Once
	campaigns     []CampaignSummary
	campaignsErr  error
}

// NewService wires a Dataset with a Cache helper. rnd supplies the synthetic
// campaign metrics and may be nil.
func NewService(dataset Dataset, cache *Cache, rnd Sampler) *Service {
	return &Service{dataset: dataset, cache: cache, rnd: rnd, trendDays: DefaultTrendDays}
}

// WithTrendDays overrides the default trailing window used by DailyTrend(0).
func (s *Service) WithTrendDays(days int) *Service {
	if days > 0 {
		s.trendDays = days
	}
	return s
}

// Dataset returns the immutable dataset backing the service.
func (s *Service) Dataset() Dataset { return s.dataset }

// TrendDays reports the default trend window.
func (s *Service) TrendDays() int { return s.trendDays }

// WindowDays is the longest trend the dataset can answer. An empty dataset
// falls back to the default trend window.
func (s *Service) WindowDays() int {
	return max(s.dataset.Days(), s.trendDays)
}

// Summary returns whole-dataset totals.
func (s *Service) Summary(ctx context.Context) (SummaryMetrics, error) {
	loader := func(context.Context) (any, error) {
		return Summarize(s.dataset.records), nil
	}
	var summary SummaryMetrics
	if err := s.fetch(ctx, "summary", nil, &summary, loader); err != nil {
		return SummaryMetrics{}, err
	}
	return summary, nil
}

// Growth returns the estimated growth for each summary card.
func (s *Service) Growth(ctx context.Context) (GrowthSet, error) {
	loader := func(ctx context.Context) (any, error) {
		summary, err := s.Summary(ctx)
		if err != nil {
			return GrowthSet{}, err
		}
		return EstimateGrowth(summary), nil
	}
	var growth GrowthSet
	if err := s.fetch(ctx, "growth", nil, &growth, loader); err != nil {
		return GrowthSet{}, err
	}
	return growth, nil
}

// Campaigns returns one row per campaign. Synthetic ctr and cost are drawn once
// per Service so repeated reads agree.
func (s *Service) Campaigns(ctx context.Context) ([]CampaignSummary, error) {
	loader := func(context.Context) (any, error) {
		return s.campaignRows()
	}
	var rows []CampaignSummary
	if err := s.fetch(ctx, "campaigns", nil, &rows, loader); err != nil {
		return nil, err
	}
	return rows, nil
}

// DailyTrend returns the last days of the daily rollup. Zero selects the service default.
func (s *Service) DailyTrend(ctx context.Context, days int) ([]DailyPoint, error) {
	if days < 0 {
		return nil, fmt.Errorf("%w: days must not be negative", ErrInvalidInput)
	}
	if days == 0 {
		days = s.trendDays
	}
	loader := func(context.Context) (any, error) {
		return DailyRollup(s.dataset.records, days), nil
	}
	var points []DailyPoint
	if err := s.fetch(ctx, "daily", []string{strconv.Itoa(days)}, &points, loader); err != nil {
		return nil, err
	}
	return points, nil
}

// Distribution returns each campaign's share of conversions.
func (s *Service) Distribution(ctx context.Context) ([]CampaignShare, error) {
	loader := func(ctx context.Context) (any, error) {
		rows, err := s.Campaigns(ctx)
		if err != nil {
			return nil, err
		}
		return Distribution(rows), nil
	}
	var shares []CampaignShare
	if err := s.fetch(ctx, "distribution", nil, &shares, loader); err != nil {
		return nil, err
	}
	return shares, nil
}

// QueryCampaigns filters, sorts and pages the campaign table.
func (s *Service) QueryCampaigns(ctx context.Context, q CampaignQuery) (CampaignPage, error) {
	q, err := q.Normalize()
	if err != nil {
		return CampaignPage{}, err
	}
	loader := func(ctx context.Context) (any, error) {
		rows, err := s.Campaigns(ctx)
		if err != nil {
			return CampaignPage{}, err
		}
		return QueryCampaigns(rows, q)
	}
	var page CampaignPage
	if err := s.fetch(ctx, "table", queryKey(q), &page, loader); err != nil {
		return CampaignPage{}, err
	}
	return page, nil
}

func (s *Service) campaignRows() ([]CampaignSummary, error) {
	s.campaignsOnce.Do(func() {
		s.campaigns, s.campaignsErr = AggregateCampaigns(s.dataset.records, s.dataset.campaigns, s.rnd)
	})
	if s.campaignsErr != nil {
		return nil, s.campaignsErr
	}
	return append([]CampaignSummary(nil), s.campaigns...), nil
}

func (s *Service) fetch(ctx context.Context, kind string, args []string, dest any, loader func(context.Context) (any, error)) error {
	key, err := s.cache.BuildKey(ctx, cacheKey(kind, s.dataset.id, args...)...)
	if err != nil {
		return err
	}
	return s.cache.FetchJSON(ctx, key, dest, loader)
}

func queryKey(q CampaignQuery) []string {
	bound := func(v *int64) string {
		if v == nil {
			return "-"
		}
		return strconv.FormatInt(*v, 10)
	}
	return []string{
		strconv.Quote(q.Search),
		bound(q.MinRevenue),
		bound(q.MaxRevenue),
		q.SortField,
		q.SortDir,
		strconv.Itoa(q.Page),
		strconv.Itoa(q.PerPage),
	}
}
