package store

import (
	"context"
	"time"
)

// Log is one recorded advisory session.
type Log struct {
	ID              string
	Name            string
	Location        string
	Crop            string
	Temperature     float64
	Humidity        float64
	Alerts          []string
	Recommendations []string
	CreatedAt       time.Time
}

// Store persists advisory sessions.
type Store interface {
	InsertLog(ctx context.Context, l Log) error

	// RecentLogs returns up to limit logs, newest first.
	RecentLogs(ctx context.Context, limit int) ([]Log, error)

	ApplyMigrations() error
	Ping(ctx context.Context) error
	Close() error
}
