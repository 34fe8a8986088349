package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/harvest/internal/advisory/service"
	"github.com/aussiebroadwan/harvest/internal/advisory/store"
	"github.com/aussiebroadwan/harvest/pkg/httpx"
	"github.com/aussiebroadwan/harvest/pkg/slogx"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/aussiebroadwan/harvest/api/advisory"
)

type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	limits       httpx.RateLimitProfiles
	store        store.Store
	cache        Pinger

	AdvisoryService *service.AdvisoryService
}

// NewRouter builds the advisory router. cache may be nil when caching is off.
func NewRouter(
	buildVersion string,
	st store.Store,
	cache Pinger,
	logger *slog.Logger,
	limits httpx.RateLimitProfiles,
	allowedOrigins []string,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		limits:       limits,
		store:        st,
		cache:        cache,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(allowedOrigins),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	h := &AdvisoryHandler{AdvisoryService: r.AdvisoryService}

	// Each advisory costs a weather lookup
	r.Mux.Handle("POST /v1/advisories",
		httpx.Chain(http.HandlerFunc(h.HandleAdvise), httpx.RateLimitByIP(r.limits.Moderate)),
	)
	r.Mux.Handle("GET /v1/advisories/logs",
		httpx.Chain(http.HandlerFunc(h.HandleLogs), httpx.RateLimitByIP(r.limits.Lenient)),
	)

	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion), httpx.RateLimitByIP(r.limits.Lenient)),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.cache), httpx.RateLimitByIP(r.limits.Lenient)),
	)
	r.Mux.Handle("GET /metrics", httpx.MetricsHandler())
	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Harvest Crop Advisory API
//	@version		0.1.0
//	@description	Rule-based crop advice for wheat, tomato and cotton driven by current weather.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/harvest
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8001
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(httpx.Metrics()(r.Mux), r.middlewares...).ServeHTTP(w, req)
}
