package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/harvest/internal/advisory/service"
	"github.com/aussiebroadwan/harvest/internal/advisory/store/drivers/sqlite"
	"github.com/aussiebroadwan/harvest/internal/advisory/weather"
	"github.com/aussiebroadwan/harvest/pkg/advisorysdk"
	"github.com/aussiebroadwan/harvest/pkg/httpx"
	"github.com/stretchr/testify/require"
)

type stubWeather weather.Reading

func (s stubWeather) Current(context.Context, string) weather.Reading { return weather.Reading(s) }

type downCache struct{}

func (downCache) Ping(context.Context) error { return errors.New("connection refused") }

func newTestRouter(t *testing.T, w service.WeatherSource, cache Pinger) *Router {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	unlimited := httpx.RateLimitConfig{RequestsPerWindow: 10000, Window: time.Second, Burst: 10000}
	limits := httpx.RateLimitProfiles{Strict: unlimited, Moderate: unlimited, Lenient: unlimited, Public: unlimited}

	r := NewRouter("test", st, cache, slog.New(slog.DiscardHandler), limits, nil)
	r.AdvisoryService = &service.AdvisoryService{Store: st, Weather: w}
	r.ApplyRoutes()
	return r
}

func serve(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAdvise(t *testing.T) {
	r := newTestRouter(t, stubWeather{Temperature: 22, Humidity: 60, Description: "clear sky"}, nil)

	rec := serve(t, r, http.MethodPost, "/v1/advisories", advisorysdk.AdvisoryRequest{
		Name: "Ravi", Location: "Ludhiana", Crop: "wheat",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp advisorysdk.AdvisoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "Advisory generated successfully", resp.Message)
	require.Equal(t, "clear sky", resp.Description)
	require.Empty(t, resp.Alerts)
	require.NotNil(t, resp.Alerts)
	require.Equal(t, "✅ Optimal conditions for wheat growth", resp.Recommendations[0])

	rec = serve(t, r, http.MethodGet, "/v1/advisories/logs", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var logs advisorysdk.LogsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &logs))
	require.Len(t, logs.Logs, 1)
	require.Equal(t, "Ravi", logs.Logs[0].Name)
	require.Equal(t, resp.Recommendations, logs.Logs[0].Recommendations)
}

func TestAdviseMissingFields(t *testing.T) {
	r := newTestRouter(t, stubWeather(weather.FallbackReading), nil)

	rec := serve(t, r, http.MethodPost, "/v1/advisories", map[string]string{"name": "Ravi"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp advisorysdk.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, advisorysdk.MissingFieldsMessage, resp.Message)
	require.Contains(t, resp.Details, "location")
	require.Contains(t, resp.Details, "crop")

	rec = serve(t, r, http.MethodPost, "/v1/advisories", map[string]string{"unexpected": "x"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogsLimit(t *testing.T) {
	r := newTestRouter(t, stubWeather(weather.FallbackReading), nil)
	for range 3 {
		rec := serve(t, r, http.MethodPost, "/v1/advisories", advisorysdk.AdvisoryRequest{
			Name: "Asha", Location: "Pune", Crop: "tomato",
		})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := serve(t, r, http.MethodGet, "/v1/advisories/logs?limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var logs advisorysdk.LogsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &logs))
	require.Len(t, logs.Logs, 2)
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, stubWeather(weather.FallbackReading), downCache{})

	rec := serve(t, r, http.MethodGet, "/livez", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, r, http.MethodGet, "/readyz", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var health advisorysdk.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "ok", health.Checks["database"])
	require.Contains(t, health.Checks["cache"], "connection refused")
}
