// Package weather fetches current conditions from OpenWeatherMap.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aussiebroadwan/harvest/pkg/cachex"
	"github.com/aussiebroadwan/harvest/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const DefaultBaseURL = "http://api.openweathermap.org/data/2.5/weather"

// Reading is the current weather at a location.
type Reading struct {
	Temperature float64 `json:"temperature"` // °C
	Humidity    float64 `json:"humidity"`    // %
	Description string  `json:"description"`

	// Fallback is set when the provider could not be reached and the
	// reading is the fixed default.
	Fallback bool `json:"-"`
}

// FallbackReading is returned whenever the provider fails.
var FallbackReading = Reading{
	Temperature: 25.0,
	Humidity:    65.0,
	Description: "Partly cloudy",
	Fallback:    true,
}

var errNoAPIKey = errors.New("weather: no api key configured")

var (
	lookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "harvest",
			Subsystem: "weather",
			Name:      "lookups_total",
			Help:      "Weather lookups by outcome (cache_hit, provider, fallback)",
		},
		[]string{"outcome"},
	)
)

// Cache stores readings between lookups. *cachex.Cache satisfies it.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) error
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client

	// Cache is optional. Keys are the trimmed, lower-cased location.
	Cache    Cache
	CacheTTL time.Duration
}

// Current returns the weather at location. It never fails: any provider
// error yields FallbackReading.
func (c *Client) Current(ctx context.Context, location string) Reading {
	l := slogx.FromContext(ctx)
	location = strings.TrimSpace(location)
	key := strings.ToLower(location)

	// 1. Cached reading
	if c.Cache != nil {
		var cached Reading
		err := c.Cache.GetJSON(ctx, key, &cached)
		switch {
		case err == nil:
			lookups.WithLabelValues("cache_hit").Inc()
			return cached
		case !errors.Is(err, cachex.ErrMiss):
			l.Warn("weather cache read failed", slog.String("location", location), slog.Any("error", err))
		}
	}

	// 2. Provider
	reading, err := c.fetch(ctx, location)
	if err != nil {
		l.Warn("weather lookup failed, using default reading",
			slog.String("location", location),
			slog.Any("error", err),
		)
		lookups.WithLabelValues("fallback").Inc()
		return FallbackReading
	}
	lookups.WithLabelValues("provider").Inc()

	// 3. Cache the live reading only
	if c.Cache != nil {
		if err := c.Cache.SetJSON(ctx, key, reading, c.CacheTTL); err != nil {
			l.Warn("weather cache write failed", slog.String("location", location), slog.Any("error", err))
		}
	}
	return reading
}

type owmResponse struct {
	Main struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

func (c *Client) fetch(ctx context.Context, location string) (Reading, error) {
	if c.APIKey == "" {
		return Reading{}, errNoAPIKey
	}

	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	q := url.Values{}
	q.Set("q", location)
	q.Set("appid", c.APIKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+q.Encode(), nil)
	if err != nil {
		return Reading{}, err
	}

	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return Reading{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return Reading{}, fmt.Errorf("weather: provider returned %d", resp.StatusCode)
	}

	var body owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Reading{}, fmt.Errorf("weather: decode: %w", err)
	}
	if body.Main.Temp == nil || body.Main.Humidity == nil || len(body.Weather) == 0 {
		return Reading{}, errors.New("weather: incomplete response")
	}

	return Reading{
		Temperature: *body.Main.Temp,
		Humidity:    *body.Main.Humidity,
		Description: body.Weather[0].Description,
	}, nil
}
