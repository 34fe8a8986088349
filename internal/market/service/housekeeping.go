package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/internal/market/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var pendingUsers = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "harvest",
	Subsystem: "market",
	Name:      "pending_users",
	Help:      "Users waiting for admin approval.",
})

// HousekeepingService periodically reports the approval backlog.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs the worker in the background until Stop is called.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until the worker has finished its current pass.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.report()

	for {
		select {
		case <-ticker.C:
			s.report()
		case <-s.stopCh:
			return
		}
	}
}

// report publishes the pending-approval count.
func (s *HousekeepingService) report() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	n, err := s.Store.Users().CountByStatus(ctx, domain.StatusPending)
	if err != nil {
		s.Logger.Error("failed to count pending users", "error", err)
		return
	}

	pendingUsers.Set(float64(n))
	if n > 0 {
		s.Logger.Info("users awaiting approval", "pending", n)
	} else {
		s.Logger.Debug("approval queue empty")
	}
}
