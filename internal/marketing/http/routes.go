package marketinghttp

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/admybrand/insights/internal/platform/httpx"
)

// ExportLimit caps export requests per client per minute.
const ExportLimit = 10

// MountRoutes registers the dashboard, JSON API and export endpoints onto the router.
func (h *Handler) MountRoutes(r chi.Router) {
	if h == nil {
		return
	}
	limiter := httprate.Limit(ExportLimit, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			httpx.RespondError(w, fmt.Errorf("%w: %s", httpx.ErrRateLimited, r.URL.Path))
		}),
	)

	r.Get("/", h.handleDashboard)
	r.Route("/api", func(api chi.Router) {
		api.Get("/summary", h.handleSummary)
		api.Get("/campaigns", h.handleCampaigns)
		api.Get("/daily", h.handleDaily)
		api.Get("/distribution", h.handleDistribution)
		api.Get("/status", h.handleStatus)
		api.Post("/realtime", h.handleRealtime)
		api.Get("/theme", h.handleTheme)
		api.Post("/theme", h.handleSetTheme)
	})
	r.Group(func(gr chi.Router) {
		gr.Use(limiter)
		gr.Get("/export/campaigns.csv", h.handleCampaignsCSV)
		gr.Get("/export/daily.csv", h.handleDailyCSV)
		gr.Get("/export/dashboard.csv", h.handleDashboardCSV)
		gr.Get("/export/dashboard.pdf", h.handlePDF)
	})
}
