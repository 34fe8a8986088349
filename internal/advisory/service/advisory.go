package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/harvest/internal/advisory/engine"
	"github.com/aussiebroadwan/harvest/internal/advisory/store"
	"github.com/aussiebroadwan/harvest/internal/advisory/weather"
	"github.com/aussiebroadwan/harvest/pkg/idx"
	"github.com/aussiebroadwan/harvest/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ErrMissingFields is returned when name, location or crop is blank.
var ErrMissingFields = errors.New("missing required fields: name, location, crop")

const (
	DefaultLogLimit = 10
	MaxLogLimit     = 100
)

var advisoriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "harvest",
		Subsystem: "advisory",
		Name:      "generated_total",
		Help:      "Advisories generated by crop and whether the weather reading was live",
	},
	[]string{"crop", "weather"},
)

// WeatherSource returns the current reading for a location and never fails.
type WeatherSource interface {
	Current(ctx context.Context, location string) weather.Reading
}

type AdvisoryService struct {
	Store   store.Store
	Weather WeatherSource
	Now     func() time.Time
}

// Advisory is the outcome of one request.
type Advisory struct {
	Location string
	Reading  weather.Reading
	Advice   engine.Advice
}

func (s *AdvisoryService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Advise looks up the weather, applies the crop rules and records the
// session. A failed insert fails the request.
func (s *AdvisoryService) Advise(ctx context.Context, name, location, crop string) (Advisory, error) {
	l := slogx.FromContext(ctx)

	// 1. Validate input
	if strings.TrimSpace(name) == "" || strings.TrimSpace(location) == "" || strings.TrimSpace(crop) == "" {
		return Advisory{}, ErrMissingFields
	}

	// 2. Weather, falling back to the default reading
	reading := s.Weather.Current(ctx, location)

	// 3. Rules
	advice := engine.Advise(crop, reading.Temperature, reading.Humidity)

	// 4. Record, with the id carrying the same timestamp as created_at
	at := s.now()
	err := s.Store.InsertLog(ctx, store.Log{
		ID:              idx.NewAt(at).String(),
		Name:            name,
		Location:        location,
		Crop:            crop,
		Temperature:     reading.Temperature,
		Humidity:        reading.Humidity,
		Alerts:          advice.Alerts,
		Recommendations: advice.Recommendations,
		CreatedAt:       at,
	})
	if err != nil {
		return Advisory{}, fmt.Errorf("record advisory: %w", err)
	}

	source := "live"
	if reading.Fallback {
		source = "fallback"
	}
	advisoriesTotal.WithLabelValues(cropLabel(crop), source).Inc()

	l.Info("advisory generated",
		slog.String("crop", crop),
		slog.String("location", location),
		slog.Int("alerts", len(advice.Alerts)),
		slog.Bool("fallback_weather", reading.Fallback),
	)

	return Advisory{Location: location, Reading: reading, Advice: advice}, nil
}

// RecentLogs returns the latest sessions. limit is clamped to [1, MaxLogLimit];
// zero or negative uses DefaultLogLimit.
func (s *AdvisoryService) RecentLogs(ctx context.Context, limit int) ([]store.Log, error) {
	switch {
	case limit <= 0:
		limit = DefaultLogLimit
	case limit > MaxLogLimit:
		limit = MaxLogLimit
	}
	return s.Store.RecentLogs(ctx, limit)
}

// cropLabel keeps metric cardinality bounded.
func cropLabel(crop string) string {
	switch c := strings.ToLower(crop); c {
	case "wheat", "tomato", "cotton":
		return c
	}
	return "other"
}
