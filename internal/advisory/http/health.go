package http

import (
	"context"
	"net/http"
	"time"

	"github.com/aussiebroadwan/harvest/internal/advisory/store"
	"github.com/aussiebroadwan/harvest/pkg/advisorysdk"
	"github.com/aussiebroadwan/harvest/pkg/httpx"
)

// LivezHandler godoc
//
//	@Summary	Health Check Endpoint
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	advisorysdk.HealthResponse	"status, uptime, version"
//	@Router		/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, advisorysdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// Pinger is an optional dependency checked by readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReadyzHandler godoc
//
//	@Summary	Readiness Check Endpoint
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	advisorysdk.HealthResponse	"status, uptime, version, checks"
//	@Failure	503	{object}	advisorysdk.HealthResponse	"database unreachable"
//	@Router		/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store, cache Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{"database": "ok"}
		status, code := "ok", http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks["database"] = "error: " + err.Error()
			status, code = "degraded", http.StatusServiceUnavailable
		}

		// The cache is best effort; a failure is reported but not fatal.
		if cache != nil {
			checks["cache"] = "ok"
			if err := cache.Ping(r.Context()); err != nil {
				checks["cache"] = "error: " + err.Error()
			}
		}

		httpx.WriteJSON(w, code, advisorysdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
