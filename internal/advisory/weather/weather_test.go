package weather

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aussiebroadwan/harvest/pkg/cachex"
	"github.com/stretchr/testify/require"
)

// memCache is an in-process Cache.
type memCache struct {
	data    map[string][]byte
	ttls    map[string]time.Duration
	failGet bool
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memCache) GetJSON(_ context.Context, key string, dst any) error {
	if m.failGet {
		return errors.New("connection refused")
	}
	raw, ok := m.data[key]
	if !ok {
		return cachex.ErrMiss
	}
	return json.Unmarshal(raw, dst)
}

func (m *memCache) SetJSON(_ context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	m.ttls[key] = ttl
	return nil
}

func provider(t *testing.T, status int, body string, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		require.Equal(t, "metric", r.URL.Query().Get("units"))
		require.Equal(t, "key", r.URL.Query().Get("appid"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

const okBody = `{"main":{"temp":31.5,"humidity":72},"weather":[{"description":"haze"}]}`

func TestCurrentFromProvider(t *testing.T) {
	var calls atomic.Int32
	srv := provider(t, http.StatusOK, okBody, &calls)

	c := &Client{BaseURL: srv.URL, APIKey: "key"}
	got := c.Current(t.Context(), "Ludhiana")
	require.Equal(t, Reading{Temperature: 31.5, Humidity: 72, Description: "haze"}, got)
	require.EqualValues(t, 1, calls.Load())
}

func TestCurrentFallsBack(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		apiKey string
	}{
		{name: "no api key", status: http.StatusOK, body: okBody},
		{name: "unauthorised", status: http.StatusUnauthorized, body: `{"cod":401}`, apiKey: "key"},
		{name: "not found", status: http.StatusNotFound, body: `{"cod":"404"}`, apiKey: "key"},
		{name: "malformed", status: http.StatusOK, body: `{"main":`, apiKey: "key"},
		{name: "missing fields", status: http.StatusOK, body: `{"main":{"temp":20}}`, apiKey: "key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := provider(t, tt.status, tt.body, &calls)

			c := &Client{BaseURL: srv.URL, APIKey: tt.apiKey}
			got := c.Current(t.Context(), "Nowhere")
			require.Equal(t, FallbackReading, got)
			require.True(t, got.Fallback)
		})
	}
}

func TestCurrentTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := &Client{BaseURL: srv.URL, APIKey: "key", HTTPClient: &http.Client{Timeout: time.Second}}
	require.Equal(t, FallbackReading, c.Current(t.Context(), "Pune"))
}

func TestCurrentUsesCache(t *testing.T) {
	var calls atomic.Int32
	srv := provider(t, http.StatusOK, okBody, &calls)

	cache := newMemCache()
	c := &Client{BaseURL: srv.URL, APIKey: "key", Cache: cache, CacheTTL: 10 * time.Minute}

	first := c.Current(t.Context(), "Ludhiana")
	second := c.Current(t.Context(), "  LUDHIANA ")
	require.Equal(t, first, second)
	require.EqualValues(t, 1, calls.Load())

	require.Contains(t, cache.data, "ludhiana")
	require.Equal(t, 10*time.Minute, cache.ttls["ludhiana"])
}

func TestCurrentDoesNotCacheFallback(t *testing.T) {
	var calls atomic.Int32
	srv := provider(t, http.StatusInternalServerError, "", &calls)

	cache := newMemCache()
	c := &Client{BaseURL: srv.URL, APIKey: "key", Cache: cache, CacheTTL: time.Minute}

	require.True(t, c.Current(t.Context(), "Pune").Fallback)
	require.True(t, c.Current(t.Context(), "Pune").Fallback)
	require.Empty(t, cache.data)
	require.EqualValues(t, 2, calls.Load())
}

func TestCurrentIgnoresCacheErrors(t *testing.T) {
	var calls atomic.Int32
	srv := provider(t, http.StatusOK, okBody, &calls)

	cache := newMemCache()
	cache.failGet = true
	c := &Client{BaseURL: srv.URL, APIKey: "key", Cache: cache}

	got := c.Current(t.Context(), "Ludhiana")
	require.False(t, got.Fallback)
	require.InDelta(t, 31.5, got.Temperature, 1e-9)
}

func TestCurrentNormalisesLocation(t *testing.T) {
	var queried []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queried = append(queried, r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(okBody))
	}))
	t.Cleanup(srv.Close)

	cache := newMemCache()
	c := &Client{BaseURL: srv.URL, APIKey: "key", Cache: cache, CacheTTL: time.Minute}

	c.Current(t.Context(), "  Pune \t")
	require.Equal(t, []string{"Pune"}, queried)
	require.Contains(t, cache.data, "pune")

	got := c.Current(t.Context(), "PUNE")
	require.Equal(t, []string{"Pune"}, queried, "second lookup is served from cache")
	require.Equal(t, "haze", got.Description)
}
