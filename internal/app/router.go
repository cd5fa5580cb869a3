package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	marketinghttp "github.com/admybrand/insights/internal/marketing/http"
	"github.com/admybrand/insights/internal/observability"
	"github.com/admybrand/insights/internal/preferences"
	"github.com/admybrand/insights/internal/view"
	"github.com/admybrand/insights/jobs"
	"github.com/admybrand/insights/web"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	Templates        *view.Engine
	MarketingHandler *marketinghttp.Handler
	JobHandler       *jobs.Handler
	Metrics          *observability.Metrics
	// RequestLogging enables chi's access log; tests usually leave it off.
	RequestLogging bool
}

type errorPage struct {
	Status  int
	Message string
}

// NewRouter constructs the chi.Router with dashboard defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}
	if params.RequestLogging {
		r.Use(chimw.Logger)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if params.MarketingHandler != nil {
		params.MarketingHandler.MountRoutes(r)
	}
	if params.JobHandler != nil {
		r.Route("/jobs", params.JobHandler.MountRoutes)
	}
	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	staticFS, err := web.StaticFS()
	if err != nil {
		if params.Logger != nil {
			params.Logger.Error("create static sub filesystem", slog.Any("error", err))
		}
	} else {
		fileServer := http.StripPrefix("/static/", http.FileServer(http.FS(staticFS)))
		r.Handle("/static/*", staticCacheHandler(fileServer))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if params.Templates == nil {
			http.NotFound(w, r)
			return
		}
		data := view.TemplateData{
			Title:       "Not Found",
			Theme:       preferences.DefaultTheme,
			CurrentPath: r.URL.Path,
			Data:        errorPage{Status: http.StatusNotFound, Message: "The page you requested does not exist."},
		}
		if err := params.Templates.RenderStatus(w, http.StatusNotFound, "pages/error.html", data); err != nil && params.Logger != nil {
			params.Logger.Error("render not found", slog.Any("error", err))
		}
	})

	return r
}

// staticCacheHandler wraps a file server with Cache-Control headers.
func staticCacheHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}
