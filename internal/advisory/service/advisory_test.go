package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/harvest/internal/advisory/engine"
	"github.com/aussiebroadwan/harvest/internal/advisory/store"
	"github.com/aussiebroadwan/harvest/internal/advisory/store/drivers/sqlite"
	"github.com/aussiebroadwan/harvest/internal/advisory/weather"
	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

type fixedWeather weather.Reading

func (f fixedWeather) Current(context.Context, string) weather.Reading { return weather.Reading(f) }

type failingStore struct{ store.Store }

func (failingStore) InsertLog(context.Context, store.Log) error { return errors.New("disk full") }

func newService(t *testing.T, w WeatherSource) *AdvisoryService {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	now := time.Date(2026, 7, 1, 6, 0, 0, 0, time.UTC)
	return &AdvisoryService{
		Store:   st,
		Weather: w,
		Now: func() time.Time {
			now = now.Add(time.Second)
			return now
		},
	}
}

func TestAdviseRecordsSession(t *testing.T) {
	svc := newService(t, fixedWeather{Temperature: 32, Humidity: 75, Description: "humid"})

	got, err := svc.Advise(t.Context(), "Ravi", "Ludhiana", "Wheat")
	require.NoError(t, err)
	require.Equal(t, "Ludhiana", got.Location)
	require.Len(t, got.Advice.Alerts, 2)

	logs, err := svc.RecentLogs(t.Context(), 0)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.Equal(t, "Wheat", logs[0].Crop)
	require.Equal(t, got.Advice.Alerts, logs[0].Alerts)
	require.Equal(t, got.Advice.Recommendations, logs[0].Recommendations)

	id, err := ulid.ParseStrict(logs[0].ID)
	require.NoError(t, err)
	require.True(t, ulid.Time(id.Time()).Equal(logs[0].CreatedAt), "id timestamp matches created_at")
}

func TestAdviseWithFallbackWeather(t *testing.T) {
	svc := newService(t, fixedWeather(weather.FallbackReading))

	before := testutil.ToFloat64(advisoriesTotal.WithLabelValues("other", "fallback"))

	got, err := svc.Advise(t.Context(), "Asha", "Atlantis", "rice")
	require.NoError(t, err)
	require.True(t, got.Reading.Fallback)
	require.InDelta(t, 25.0, got.Reading.Temperature, 1e-9)
	require.Equal(t, []string{engine.FavorableMessage}, got.Advice.Recommendations)

	require.InDelta(t, before+1, testutil.ToFloat64(advisoriesTotal.WithLabelValues("other", "fallback")), 1e-9)
}

func TestAdviseMissingFields(t *testing.T) {
	svc := newService(t, fixedWeather(weather.FallbackReading))

	for _, in := range [][3]string{
		{"", "Pune", "wheat"},
		{"Ravi", " ", "wheat"},
		{"Ravi", "Pune", ""},
	} {
		_, err := svc.Advise(t.Context(), in[0], in[1], in[2])
		require.ErrorIs(t, err, ErrMissingFields)
	}
}

func TestAdviseStoreFailure(t *testing.T) {
	svc := newService(t, fixedWeather(weather.FallbackReading))
	svc.Store = failingStore{Store: svc.Store}

	_, err := svc.Advise(t.Context(), "Ravi", "Pune", "wheat")
	require.ErrorContains(t, err, "disk full")
}

func TestRecentLogsLimit(t *testing.T) {
	svc := newService(t, fixedWeather(weather.FallbackReading))
	for range 12 {
		_, err := svc.Advise(t.Context(), "Ravi", "Pune", "cotton")
		require.NoError(t, err)
	}

	logs, err := svc.RecentLogs(t.Context(), -1)
	require.NoError(t, err)
	require.Len(t, logs, DefaultLogLimit)

	logs, err = svc.RecentLogs(t.Context(), 500)
	require.NoError(t, err)
	require.Len(t, logs, 12)
	require.True(t, logs[0].CreatedAt.After(logs[11].CreatedAt))
}
