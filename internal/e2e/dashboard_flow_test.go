package e2e

import (
	"context"
	"encoding/csv"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admybrand/insights/internal/app"
	jobmetrics "github.com/admybrand/insights/internal/jobs"
	"github.com/admybrand/insights/internal/marketing"
	marketinghttp "github.com/admybrand/insights/internal/marketing/http"
	"github.com/admybrand/insights/internal/marketing/svg"
	"github.com/admybrand/insights/internal/observability"
	"github.com/admybrand/insights/internal/preferences"
	"github.com/admybrand/insights/internal/view"
	"github.com/admybrand/insights/jobs"
)

var flowNow = time.Date(2025, 6, 30, 10, 0, 0, 0, time.UTC)

type flow struct {
	t      *testing.T
	server *httptest.Server
	mr     *miniredis.Miniredis
	mkt    app.Marketing
}

func newFlow(t *testing.T) *flow {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &app.Config{
		AppEnv:            "test",
		AppRequestTimeout: 5 * time.Second,
		CacheTTL:          time.Minute,
		Seed:              2024,
		WindowDays:        30,
		TrendDays:         14,
		RealtimeInterval:  5 * time.Second,
	}
	mkt := app.NewMarketing(cfg, client, func() time.Time { return flowNow })
	templates, err := view.NewEngine()
	require.NoError(t, err)

	handler := marketinghttp.NewHandler(marketinghttp.Deps{
		Service:   mkt.Service,
		Templates: templates,
		Line:      svg.Renderer{},
		Bar:       svg.Renderer{},
		Donut:     svg.Renderer{},
		Clock:     marketing.NewTicker(cfg.RealtimeInterval, nil),
		Themes:    preferences.NewStore(client),
	})
	router := app.NewRouter(app.RouterParams{
		Config:           cfg,
		Templates:        templates,
		MarketingHandler: handler,
		JobHandler:       jobs.NewHandler(nil, nil),
		Metrics:          observability.NewMetrics(),
	})
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return &flow{t: t, server: server, mr: mr, mkt: mkt}
}

func (f *flow) get(path string) (*http.Response, string) {
	f.t.Helper()
	resp, err := f.server.Client().Get(f.server.URL + path)
	require.NoError(f.t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(f.t, err)
	return resp, string(body)
}

func (f *flow) post(path string, form url.Values) (*http.Response, string) {
	f.t.Helper()
	resp, err := f.server.Client().PostForm(f.server.URL+path, form)
	require.NoError(f.t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(f.t, err)
	return resp, string(body)
}

func TestDashboardEndToEnd(t *testing.T) {
	f := newFlow(t)

	resp, body := f.get("/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `data-theme="light"`)
	assert.Contains(t, body, "Total Revenue")

	// Summary totals agree with the campaign rows.
	_, body = f.get("/api/summary")
	var summary struct {
		Summary marketing.SummaryMetrics `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &summary))

	_, body = f.get("/api/campaigns?per_page=100")
	var page marketing.CampaignPage
	require.NoError(t, json.Unmarshal([]byte(body), &page))
	require.Len(t, page.Rows, len(marketing.DefaultCampaigns))
	var users, revenue int64
	for _, row := range page.Rows {
		users += row.Users
		revenue += row.Revenue
		assert.GreaterOrEqual(t, row.CTR, 2.0)
		assert.Less(t, row.CTR, 7.0)
	}
	assert.Equal(t, summary.Summary.TotalUsers, users)
	assert.Equal(t, summary.Summary.TotalRevenue, revenue)

	// Daily trend ends today and stays within the default window.
	_, body = f.get("/api/daily")
	var points []marketing.DailyPoint
	require.NoError(t, json.Unmarshal([]byte(body), &points))
	require.Len(t, points, 14)
	assert.Equal(t, "2025-06-30", points[13].Date.String())
}

func TestThemePersistsAcrossRequests(t *testing.T) {
	f := newFlow(t)

	resp, body := f.post("/api/theme", url.Values{"theme": {"dark"}})
	require.Equal(t, http.StatusOK, resp.StatusCode, body)

	stored, err := f.mr.Get(preferences.ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "dark", stored)

	_, body = f.get("/")
	assert.Contains(t, body, `data-theme="dark"`)
}

func TestRealtimeToggleRestampsStatus(t *testing.T) {
	f := newFlow(t)

	_, body := f.get("/api/status")
	var before map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &before))
	assert.Equal(t, false, before["live"])

	resp, body := f.post("/api/realtime", url.Values{"enabled": {"true"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var after map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &after))
	assert.Equal(t, true, after["live"])
	assert.Equal(t, before["datasetId"], after["datasetId"])
	assert.EqualValues(t, 5, after["refreshSeconds"])
}

func TestWarmupServesDashboardFromCache(t *testing.T) {
	f := newFlow(t)
	job := jobs.NewWarmupJob(f.mkt.Service, f.mkt.Cache, nil, jobmetrics.NewMetrics(prometheus.NewRegistry()))
	_, err := job.Warm(context.Background(), jobs.WarmupPayload{})
	require.NoError(t, err)

	// Overwrite the cached summary; the API must serve the cached copy.
	key := "marketing:summary:" + f.mkt.Service.Dataset().ID() + ":1"
	require.True(t, f.mr.Exists(key))
	require.NoError(t, f.mr.Set(key, `{"totalRevenue":1,"totalUsers":2,"totalConversions":1,"averageOrderValue":1,"conversionRate":50}`))

	_, body := f.get("/api/summary")
	assert.Contains(t, body, `"totalUsers":2`)

	// A bump invalidates every payload.
	require.NoError(t, f.mkt.Cache.Bump(context.Background()))
	_, body = f.get("/api/summary")
	assert.NotContains(t, body, `"totalUsers":2`)
}

func TestCampaignExportMatchesTable(t *testing.T) {
	f := newFlow(t)

	resp, body := f.get("/export/campaigns.csv?sort=campaign&dir=asc")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))

	records, err := csv.NewReader(strings.NewReader(body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(marketing.DefaultCampaigns)+1)
	assert.Equal(t, []string{"campaign", "revenue", "users", "conversions", "ctr", "cost"}, records[0])
	assert.Equal(t, "Display", records[1][0])
	assert.Equal(t, "Social", records[4][0])
}

func TestOutOfRangePageIsRejected(t *testing.T) {
	f := newFlow(t)
	for _, path := range []string{"/api/campaigns?page=922337203685477582", "/?page=922337203685477582"} {
		resp, _ := f.get(path)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
	}

	resp, _ := f.get("/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
