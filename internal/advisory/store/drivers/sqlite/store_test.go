package sqlite

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/harvest/internal/advisory/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestLogsRoundTrip(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	for i, crop := range []string{"wheat", "tomato", "cotton"} {
		require.NoError(t, s.InsertLog(t.Context(), store.Log{
			ID:              crop,
			Name:            "Ravi",
			Location:        "Pune",
			Crop:            crop,
			Temperature:     20 + float64(i),
			Humidity:        60,
			Alerts:          []string{},
			Recommendations: []string{"first", "second"},
			CreatedAt:       base.Add(time.Duration(i) * time.Minute),
		}))
	}

	logs, err := s.RecentLogs(t.Context(), 2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	require.Equal(t, "cotton", logs[0].Crop)
	require.Equal(t, "tomato", logs[1].Crop)
	require.Equal(t, []string{}, logs[0].Alerts)
	require.Equal(t, []string{"first", "second"}, logs[0].Recommendations)
	require.InDelta(t, 22, logs[0].Temperature, 1e-9)
	require.True(t, logs[0].CreatedAt.Equal(base.Add(2*time.Minute)))
}

func TestRecentLogsEmpty(t *testing.T) {
	s := newTestStore(t)

	logs, err := s.RecentLogs(t.Context(), 10)
	require.NoError(t, err)
	require.Empty(t, logs)
	require.NoError(t, s.Ping(t.Context()))
}
