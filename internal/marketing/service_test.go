package marketing

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	g := newTestGenerator(21)
	svc := NewService(g.Generate(), NewCache(client, time.Minute), g.Rand())
	return svc, mr
}

func TestServiceSummaryCaches(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summarize(svc.Dataset().Records()), summary)

	key := "marketing:summary:" + svc.Dataset().ID() + ":1"
	require.True(t, mr.Exists(key), "expected %s to be cached", key)

	// A cached payload wins over recomputation.
	require.NoError(t, mr.Set(key, `{"totalRevenue":7}`))
	cached, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cached.TotalRevenue)

	// Bumping the version forces a reload.
	require.NoError(t, svc.cache.Bump(ctx))
	fresh, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, summary, fresh)
	assert.True(t, mr.Exists("marketing:summary:"+svc.Dataset().ID()+":2"))
}

func TestServiceCampaignsStableAcrossBumps(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Campaigns(ctx)
	require.NoError(t, err)
	require.Len(t, first, len(DefaultCampaigns))

	require.NoError(t, svc.cache.Bump(ctx))
	second, err := svc.Campaigns(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	shares, err := svc.Distribution(ctx)
	require.NoError(t, err)
	var total float64
	for _, s := range shares {
		total += s.Share
	}
	assert.InDelta(t, 100, total, 1e-6)
}

func TestServiceWithoutCache(t *testing.T) {
	g := newTestGenerator(8)
	svc := NewService(g.Generate(), nil, g.Rand()).WithTrendDays(7)
	ctx := context.Background()

	points, err := svc.DailyTrend(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, points, 7)

	points, err = svc.DailyTrend(ctx, 30)
	require.NoError(t, err)
	assert.Len(t, points, 30)

	_, err = svc.DailyTrend(ctx, -1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	growth, err := svc.Growth(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 11.1111, growth.Revenue, 1e-3)
}

func TestServiceQueryCampaigns(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	page, err := svc.QueryCampaigns(ctx, CampaignQuery{PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, page.Rows, 2)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	assert.GreaterOrEqual(t, page.Rows[0].Revenue, page.Rows[1].Revenue)
	assert.NotEmpty(t, mr.Keys())

	_, err = svc.QueryCampaigns(ctx, CampaignQuery{SortField: "bogus"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestServiceRejectsUnknownCampaign(t *testing.T) {
	ds := NewDataset("bad", fixedNow, DefaultCampaigns, []RawRecord{
		{Date: NewDate(fixedNow), Campaign: "Affiliate", Users: 10},
	})
	svc := NewService(ds, nil, constSampler(0.1))
	_, err := svc.Campaigns(context.Background())
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Distribution(context.Background())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCacheListenForInvalidation(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	cache := NewCache(client, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, cache.ListenForInvalidation(ctx, ""))

	mr.Publish(BumpChannel, "41")
	assert.Eventually(t, func() bool {
		ver, err := cache.Version(ctx)
		return err == nil && ver == 41
	}, time.Second, 10*time.Millisecond)
}

func TestCacheVersionNeverMovesBackwards(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	cache := NewCache(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, mr.Set(cacheVersionKey, "50"))
	ver, err := cache.raiseVersion(ctx, 41)
	require.NoError(t, err)
	assert.Equal(t, int64(50), ver)

	ver, err = cache.raiseVersion(ctx, 60)
	require.NoError(t, err)
	assert.Equal(t, int64(60), ver)

	listenCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	require.NoError(t, cache.ListenForInvalidation(listenCtx, ""))
	mr.Publish(BumpChannel, "12")
	mr.Publish(BumpChannel, "garbage")
	mr.Publish(BumpChannel, "61")
	assert.Eventually(t, func() bool {
		ver, err := cache.Version(ctx)
		return err == nil && ver == 61
	}, time.Second, 10*time.Millisecond)
}
