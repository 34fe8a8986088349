package service

import (
	"log/slog"
	"testing"
	"time"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingReportsPendingUsers(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, domain.RoleFarmer)
	env.register(t, domain.RoleDealer)
	env.approved(t, domain.RoleExpert)

	svc := NewHousekeepingService(env.store, slog.New(slog.DiscardHandler), time.Hour)
	require.Equal(t, time.Hour, svc.Interval)

	svc.report()
	require.Equal(t, 2.0, testutil.ToFloat64(pendingUsers))
}

func TestHousekeepingStartStop(t *testing.T) {
	env := newTestEnv(t)

	svc := NewHousekeepingService(env.store, slog.New(slog.DiscardHandler), 0)
	require.Equal(t, time.Hour, svc.Interval)

	svc.Start()
	svc.Stop()
	require.Equal(t, 0.0, testutil.ToFloat64(pendingUsers))
}
