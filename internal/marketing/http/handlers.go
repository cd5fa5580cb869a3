package marketinghttp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/admybrand/insights/internal/marketing"
	"github.com/admybrand/insights/internal/marketing/export"
	"github.com/admybrand/insights/internal/marketing/svg"
	"github.com/admybrand/insights/internal/marketing/ui"
	"github.com/admybrand/insights/internal/platform/httpx"
	"github.com/admybrand/insights/internal/preferences"
	"github.com/admybrand/insights/internal/view"
)

const requestTimeout = 2 * time.Second

// DashboardService defines the dashboard data contract used by the handler.
type DashboardService interface {
	Summary(ctx context.Context) (marketing.SummaryMetrics, error)
	Growth(ctx context.Context) (marketing.GrowthSet, error)
	Campaigns(ctx context.Context) ([]marketing.CampaignSummary, error)
	DailyTrend(ctx context.Context, days int) ([]marketing.DailyPoint, error)
	Distribution(ctx context.Context) ([]marketing.CampaignShare, error)
	QueryCampaigns(ctx context.Context, q marketing.CampaignQuery) (marketing.CampaignPage, error)
	Dataset() marketing.Dataset
	TrendDays() int
	WindowDays() int
}

// LiveClock exposes the real-time toggle.
type LiveClock interface {
	SetEnabled(enabled bool)
	Enabled() bool
	LastUpdated() time.Time
	Period() time.Duration
}

// ThemeStore reads and writes the persisted theme.
type ThemeStore interface {
	Theme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) (string, error)
	Toggle(ctx context.Context) (string, error)
}

// PDFService renders dashboard content to PDF bytes.
type PDFService interface {
	RenderDashboard(ctx context.Context, payload export.DashboardPayload) ([]byte, error)
}

// Deps collects the handler collaborators.
type Deps struct {
	Logger    *slog.Logger
	Service   DashboardService
	Templates *view.Engine
	Line      ui.LineRenderer
	Bar       ui.BarRenderer
	Donut     ui.DonutRenderer
	PDF       PDFService
	Clock     LiveClock
	Themes    ThemeStore
}

// Handler serves the marketing dashboard, its JSON API and exports.
type Handler struct {
	logger    *slog.Logger
	service   DashboardService
	templates *view.Engine
	line      ui.LineRenderer
	bar       ui.BarRenderer
	donut     ui.DonutRenderer
	pdf       PDFService
	clock     LiveClock
	themes    ThemeStore
	validate  *validator.Validate
	csvPool   sync.Pool
	now       func() time.Time
}

// NewHandler constructs the dashboard HTTP handler.
func NewHandler(deps Deps) *Handler {
	h := &Handler{
		logger:    deps.Logger,
		service:   deps.Service,
		templates: deps.Templates,
		line:      deps.Line,
		bar:       deps.Bar,
		donut:     deps.Donut,
		pdf:       deps.PDF,
		clock:     deps.Clock,
		themes:    deps.Themes,
		validate:  validator.New(),
		now:       time.Now,
	}
	h.csvPool.New = func() any { return new(bytes.Buffer) }
	return h
}

// WithNow overrides the handler clock for testing.
func (h *Handler) WithNow(fn func() time.Time) {
	if fn != nil {
		h.now = fn
	}
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	query, err := parseCampaignQuery(r.URL.Query())
	if err != nil {
		h.handleHTMLError(w, err)
		return
	}
	days, err := h.parseDays(r.URL.Query())
	if err != nil {
		h.handleHTMLError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	data, err := h.loadDashboardData(ctx, query, days)
	if err != nil {
		h.handleHTMLError(w, err)
		return
	}
	theme := h.currentTheme(ctx)

	vm, err := h.buildViewModel(data, theme)
	if err != nil {
		h.handleServerError(w, "render charts", err)
		return
	}

	viewData := view.TemplateData{
		Title:       "Marketing Insights",
		Theme:       theme,
		CurrentPath: r.URL.Path,
		Data:        vm,
	}
	if err := h.templates.Render(w, "pages/dashboard.html", viewData); err != nil {
		h.logError("render template", err)
	}
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var (
		summary marketing.SummaryMetrics
		growth  marketing.GrowthSet
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		summary, err = h.service.Summary(gctx)
		return err
	})
	g.Go(func() (err error) {
		growth, err = h.service.Growth(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.handleAPIError(w, "load summary", err)
		return
	}
	httpx.JSON(w, http.StatusOK, summaryResponse{Summary: summary, Growth: growth})
}

func (h *Handler) handleCampaigns(w http.ResponseWriter, r *http.Request) {
	query, err := parseCampaignQuery(r.URL.Query())
	if err != nil {
		h.handleAPIError(w, "parse query", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	page, err := h.service.QueryCampaigns(ctx, query)
	if err != nil {
		h.handleAPIError(w, "query campaigns", err)
		return
	}
	httpx.JSON(w, http.StatusOK, page)
}

func (h *Handler) handleDaily(w http.ResponseWriter, r *http.Request) {
	days, err := h.parseDays(r.URL.Query())
	if err != nil {
		h.handleAPIError(w, "parse days", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	points, err := h.service.DailyTrend(ctx, days)
	if err != nil {
		h.handleAPIError(w, "load daily trend", err)
		return
	}
	httpx.JSON(w, http.StatusOK, points)
}

func (h *Handler) handleDistribution(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	shares, err := h.service.Distribution(ctx)
	if err != nil {
		h.handleAPIError(w, "load distribution", err)
		return
	}
	httpx.JSON(w, http.StatusOK, shares)
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.status())
}

func (h *Handler) handleRealtime(w http.ResponseWriter, r *http.Request) {
	if h.clock == nil {
		h.handleAPIError(w, "realtime", errors.New("live clock not configured"))
		return
	}
	raw := strings.TrimSpace(r.FormValue("enabled"))
	enabled := !h.clock.Enabled()
	if raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.handleAPIError(w, "parse enabled", validationError{field: "enabled"})
			return
		}
		enabled = parsed
	}
	h.clock.SetEnabled(enabled)
	if h.logger != nil {
		h.logger.Info("realtime toggled", slog.Bool("enabled", enabled))
	}
	if wantsHTML(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	httpx.JSON(w, http.StatusOK, h.status())
}

func (h *Handler) handleTheme(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if h.themes == nil {
		httpx.JSON(w, http.StatusOK, themeResponse{Theme: preferences.DefaultTheme})
		return
	}
	theme, err := h.themes.Theme(ctx)
	if err != nil {
		h.handleAPIError(w, "read theme", err)
		return
	}
	httpx.JSON(w, http.StatusOK, themeResponse{Theme: theme})
}

func (h *Handler) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	if h.themes == nil {
		h.handleAPIError(w, "set theme", errors.New("theme store not configured"))
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var (
		theme string
		err   error
	)
	if value := strings.TrimSpace(r.FormValue("theme")); value != "" {
		theme, err = h.themes.SetTheme(ctx, value)
	} else {
		theme, err = h.themes.Toggle(ctx)
	}
	if err != nil {
		h.handleAPIError(w, "set theme", err)
		return
	}
	if wantsHTML(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	httpx.JSON(w, http.StatusOK, themeResponse{Theme: theme})
}

func (h *Handler) handleCampaignsCSV(w http.ResponseWriter, r *http.Request) {
	query, err := parseCampaignQuery(r.URL.Query())
	if err != nil {
		h.handleHTMLError(w, err)
		return
	}
	// Exports carry every matching row, not just the visible page.
	query.Page, query.PerPage = 1, 100

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	page, err := h.service.QueryCampaigns(ctx, query)
	if err != nil {
		h.handleHTMLError(w, err)
		return
	}
	h.writeCSV(w, "campaigns.csv", func(buf *bytes.Buffer) error {
		return export.WriteCampaignsCSV(buf, page.Rows)
	})
}

func (h *Handler) handleDailyCSV(w http.ResponseWriter, r *http.Request) {
	days, err := h.parseDays(r.URL.Query())
	if err != nil {
		h.handleHTMLError(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	points, err := h.service.DailyTrend(ctx, days)
	if err != nil {
		h.handleHTMLError(w, err)
		return
	}
	h.writeCSV(w, "daily.csv", func(buf *bytes.Buffer) error {
		return export.WriteDailyCSV(buf, points)
	})
}

func (h *Handler) handleDashboardCSV(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	data, err := h.loadDashboardData(ctx, marketing.CampaignQuery{}, 0)
	if err != nil {
		h.handleHTMLError(w, err)
		return
	}
	h.writeCSV(w, "dashboard.csv", func(buf *bytes.Buffer) error {
		if err := export.WriteSummaryCSV(buf, data.summary, data.growth); err != nil {
			return err
		}
		buf.WriteString("\n")
		if err := export.WriteCampaignsCSV(buf, data.campaigns); err != nil {
			return err
		}
		buf.WriteString("\n")
		return export.WriteDailyCSV(buf, data.daily)
	})
}

func (h *Handler) handlePDF(w http.ResponseWriter, r *http.Request) {
	if h.pdf == nil {
		h.handleServerError(w, "pdf exporter", errors.New("pdf exporter not configured"))
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	data, err := h.loadDashboardData(ctx, marketing.CampaignQuery{}, 0)
	if err != nil {
		h.handleHTMLError(w, err)
		return
	}
	payload := export.DashboardPayload{
		GeneratedAt:  h.now().UTC(),
		Summary:      data.summary,
		Growth:       data.growth,
		Campaigns:    data.campaigns,
		Daily:        data.daily,
		Distribution: data.distribution,
	}
	pdfBytes, err := h.pdf.RenderDashboard(ctx, payload)
	if err != nil {
		h.handleServerError(w, "render pdf", err)
		return
	}

	if err := httpx.Attachment(w, "application/pdf", h.filename("pdf"), pdfBytes); err != nil {
		h.logError("stream pdf", err)
	}
}

func (h *Handler) writeCSV(w http.ResponseWriter, name string, write func(*bytes.Buffer) error) {
	buf := h.csvPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer func() {
		buf.Reset()
		h.csvPool.Put(buf)
	}()

	if err := write(buf); err != nil {
		h.handleServerError(w, "write "+name, err)
		return
	}
	if err := httpx.Attachment(w, "text/csv; charset=utf-8", h.filename(name), buf.Bytes()); err != nil {
		h.logError("stream csv", err)
	}
}

func (h *Handler) filename(suffix string) string {
	return fmt.Sprintf("marketing-insights-%s-%s", h.now().UTC().Format("2006-01-02"), suffix)
}

type dashboardData struct {
	summary      marketing.SummaryMetrics
	growth       marketing.GrowthSet
	campaigns    []marketing.CampaignSummary
	daily        []marketing.DailyPoint
	distribution []marketing.CampaignShare
	page         marketing.CampaignPage
}

func (h *Handler) loadDashboardData(ctx context.Context, query marketing.CampaignQuery, days int) (dashboardData, error) {
	var data dashboardData
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		summary, err := h.service.Summary(ctx)
		if err != nil {
			return err
		}
		data.summary = summary
		return nil
	})
	g.Go(func() error {
		growth, err := h.service.Growth(ctx)
		if err != nil {
			return err
		}
		data.growth = growth
		return nil
	})
	g.Go(func() error {
		rows, err := h.service.Campaigns(ctx)
		if err != nil {
			return err
		}
		data.campaigns = rows
		return nil
	})
	g.Go(func() error {
		points, err := h.service.DailyTrend(ctx, days)
		if err != nil {
			return err
		}
		data.daily = points
		return nil
	})
	g.Go(func() error {
		shares, err := h.service.Distribution(ctx)
		if err != nil {
			return err
		}
		data.distribution = shares
		return nil
	})
	g.Go(func() error {
		page, err := h.service.QueryCampaigns(ctx, query)
		if err != nil {
			return err
		}
		data.page = page
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboardData{}, err
	}
	return data, nil
}

func (h *Handler) buildViewModel(data dashboardData, theme string) (ui.DashboardViewModel, error) {
	if h.line == nil || h.bar == nil || h.donut == nil {
		return ui.DashboardViewModel{}, fmt.Errorf("svg renderer missing")
	}
	status := h.status()
	vm := ui.DashboardViewModel{
		DatasetID:      status.DatasetID,
		Theme:          theme,
		Live:           status.Live,
		RefreshSeconds: status.RefreshSeconds,
		GeneratedAt:    status.GeneratedAt,
		LastUpdated:    status.LastUpdated,
		Cards:          ui.SummaryCards(data.summary, data.growth),
		Summary:        data.summary,
		Growth:         data.growth,
		Daily:          data.daily,
		Distribution:   data.distribution,
		Query:          data.page.Query,
		Rows:           ui.ToCampaignRows(data.page.Rows),
		Pagination:     data.page.Pagination,
	}
	vm.Sort = sortLinks(data.page.Query)
	if vm.Pagination.HasPrev() {
		vm.PrevHref = tableHref(data.page.Query, data.page.Query.SortField, data.page.Query.SortDir, data.page.Query.Page-1)
	}
	if vm.Pagination.HasNext() {
		vm.NextHref = tableHref(data.page.Query, data.page.Query.SortField, data.page.Query.SortDir, data.page.Query.Page+1)
	}
	vm.ExportHref = "/export/campaigns.csv?" + queryValues(data.page.Query, data.page.Query.SortField, data.page.Query.SortDir, 0).Encode()

	labels := ui.DayLabels(data.daily)
	revenue := make([]float64, 0, len(data.daily))
	users := make([]float64, 0, len(data.daily))
	conversions := make([]float64, 0, len(data.daily))
	for _, point := range data.daily {
		revenue = append(revenue, float64(point.Revenue))
		users = append(users, float64(point.Users))
		conversions = append(conversions, float64(point.Conversions))
	}
	if len(labels) == 0 {
		labels = []string{h.now().UTC().Format("Jan 2")}
		revenue, users, conversions = []float64{0}, []float64{0}, []float64{0}
	}

	var err error
	vm.RevenueSVG, err = h.line.Line(svg.DefaultWidth, svg.DefaultHeight, revenue, labels, svg.LineOpts{
		Title:       "Revenue Trend",
		Description: fmt.Sprintf("Daily revenue for the last %d days", len(data.daily)),
		FillColor:   "rgba(59,130,246,0.15)",
	})
	if err != nil {
		return ui.DashboardViewModel{}, err
	}

	campaignLabels := make([]string, 0, len(data.campaigns))
	campaignRevenue := make([]float64, 0, len(data.campaigns))
	campaignCost := make([]float64, 0, len(data.campaigns))
	slices := make([]svg.Slice, 0, len(data.distribution))
	for _, row := range data.campaigns {
		campaignLabels = append(campaignLabels, string(row.Campaign))
		campaignRevenue = append(campaignRevenue, float64(row.Revenue))
		campaignCost = append(campaignCost, float64(row.Cost))
	}
	for _, share := range data.distribution {
		slices = append(slices, svg.Slice{Label: string(share.Campaign), Value: float64(share.Conversions)})
	}

	if len(campaignLabels) > 0 {
		vm.CampaignSVG, err = h.bar.Bars(svg.DefaultWidth, svg.DefaultHeight, campaignRevenue, campaignCost, campaignLabels, svg.BarOpts{
			Title:        "Campaign Performance",
			Description:  "Revenue and cost per campaign",
			SeriesALabel: "Revenue",
			SeriesBLabel: "Cost",
		})
		if err != nil {
			return ui.DashboardViewModel{}, err
		}
	}
	if len(slices) > 0 {
		vm.DistributionSVG, err = h.donut.Donut(0, 0, slices, svg.DonutOpts{
			Title:       "Conversion Distribution",
			Description: "Share of conversions by campaign",
		})
		if err != nil {
			return ui.DashboardViewModel{}, err
		}
	}
	vm.EngagementSVG, err = h.line.Lines(svg.DefaultWidth, svg.DefaultHeight, []svg.Series{
		{Label: "Users", Values: users, Color: svg.Palette[1]},
		{Label: "Conversions", Values: conversions, Color: svg.Palette[2]},
	}, labels, svg.LineOpts{
		Title:       "Users and Conversions",
		Description: "Daily users against conversions",
		ShowDots:    true,
	})
	if err != nil {
		return ui.DashboardViewModel{}, err
	}
	return vm, nil
}

func (h *Handler) currentTheme(ctx context.Context) string {
	if h.themes == nil {
		return preferences.DefaultTheme
	}
	theme, err := h.themes.Theme(ctx)
	if err != nil {
		h.logError("read theme", err)
		return preferences.DefaultTheme
	}
	return theme
}

func (h *Handler) status() statusResponse {
	dataset := h.service.Dataset()
	resp := statusResponse{
		DatasetID:   dataset.ID(),
		GeneratedAt: dataset.GeneratedAt(),
		LastUpdated: dataset.GeneratedAt(),
		Records:     dataset.Len(),
	}
	if h.clock != nil {
		resp.Live = h.clock.Enabled()
		resp.LastUpdated = h.clock.LastUpdated()
		resp.RefreshSeconds = int(h.clock.Period() / time.Second)
	}
	return resp
}

func (h *Handler) parseDays(values url.Values) (int, error) {
	raw := strings.TrimSpace(values.Get("days"))
	if raw == "" {
		return h.service.TrendDays(), nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validationError{field: "days"}
	}
	if err := h.validate.Var(days, fmt.Sprintf("gte=1,lte=%d", h.service.WindowDays())); err != nil {
		return 0, validationError{field: "days"}
	}
	return days, nil
}

func parseCampaignQuery(values url.Values) (marketing.CampaignQuery, error) {
	q := marketing.CampaignQuery{
		Search:    strings.TrimSpace(values.Get("search")),
		SortField: strings.ToLower(strings.TrimSpace(values.Get("sort"))),
		SortDir:   strings.ToLower(strings.TrimSpace(values.Get("dir"))),
	}
	var err error
	if q.MinRevenue, err = optionalInt(values, "min_revenue"); err != nil {
		return q, err
	}
	if q.MaxRevenue, err = optionalInt(values, "max_revenue"); err != nil {
		return q, err
	}
	if q.Page, err = intParam(values, "page"); err != nil {
		return q, err
	}
	if q.PerPage, err = intParam(values, "per_page"); err != nil {
		return q, err
	}
	return q, nil
}

func optionalInt(values url.Values, field string) (*int64, error) {
	raw := strings.TrimSpace(values.Get(field))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, validationError{field: field}
	}
	return &v, nil
}

func intParam(values url.Values, field string) (int, error) {
	raw := strings.TrimSpace(values.Get(field))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, validationError{field: field}
	}
	return v, nil
}

var sortColumns = []struct{ field, label string }{
	{marketing.SortCampaign, "Campaign"},
	{marketing.SortRevenue, "Revenue"},
	{marketing.SortUsers, "Users"},
	{marketing.SortConversions, "Conversions"},
	{marketing.SortCTR, "CTR"},
	{marketing.SortCost, "Cost"},
}

func sortLinks(q marketing.CampaignQuery) []ui.SortLink {
	links := make([]ui.SortLink, 0, len(sortColumns))
	for _, col := range sortColumns {
		active := q.SortField == col.field
		next := marketing.SortDesc
		if active && q.SortDir == marketing.SortDesc {
			next = marketing.SortAsc
		}
		links = append(links, ui.SortLink{
			Label:  col.label,
			Field:  col.field,
			Active: active,
			Dir:    q.SortDir,
			Href:   tableHref(q, col.field, next, 1),
		})
	}
	return links
}

func tableHref(q marketing.CampaignQuery, field, dir string, page int) string {
	return "/?" + queryValues(q, field, dir, page).Encode()
}

func queryValues(q marketing.CampaignQuery, field, dir string, page int) url.Values {
	values := url.Values{}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.MinRevenue != nil {
		values.Set("min_revenue", strconv.FormatInt(*q.MinRevenue, 10))
	}
	if q.MaxRevenue != nil {
		values.Set("max_revenue", strconv.FormatInt(*q.MaxRevenue, 10))
	}
	values.Set("sort", field)
	values.Set("dir", dir)
	if page > 1 {
		values.Set("page", strconv.Itoa(page))
	}
	if q.PerPage > 0 && page > 0 {
		values.Set("per_page", strconv.Itoa(q.PerPage))
	}
	return values
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func isInvalidInput(err error) bool {
	var vErr validationError
	return errors.As(err, &vErr) ||
		errors.Is(err, marketing.ErrInvalidInput) ||
		errors.Is(err, preferences.ErrInvalidTheme) ||
		errors.Is(err, httpx.ErrValidation)
}

func (h *Handler) handleHTMLError(w http.ResponseWriter, err error) {
	if isInvalidInput(err) {
		http.Error(w, "Invalid parameter: "+err.Error(), http.StatusBadRequest)
		return
	}
	h.handleServerError(w, "load dashboard", err)
}

func (h *Handler) handleAPIError(w http.ResponseWriter, context string, err error) {
	if isInvalidInput(err) {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Parameter", err.Error())
		return
	}
	h.logError(context, err)
	httpx.RespondError(w, err)
}

func (h *Handler) handleServerError(w http.ResponseWriter, context string, err error) {
	h.logError(context, err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (h *Handler) logError(context string, err error) {
	if h.logger != nil {
		h.logger.Error(context, slog.Any("error", err))
	}
}

type validationError struct {
	field string
}

func (v validationError) Error() string {
	return fmt.Sprintf("invalid %s", v.field)
}

type summaryResponse struct {
	Summary marketing.SummaryMetrics `json:"summary"`
	Growth  marketing.GrowthSet      `json:"growth"`
}

type statusResponse struct {
	DatasetID      string    `json:"datasetId"`
	GeneratedAt    time.Time `json:"generatedAt"`
	LastUpdated    time.Time `json:"lastUpdated"`
	Live           bool      `json:"live"`
	RefreshSeconds int       `json:"refreshSeconds"`
	Records        int       `json:"records"`
}

type themeResponse struct {
	Theme string `json:"theme"`
}
