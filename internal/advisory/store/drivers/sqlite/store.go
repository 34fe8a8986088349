package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/aussiebroadwan/harvest/internal/advisory/store"
	"github.com/aussiebroadwan/harvest/internal/advisory/store/drivers/sqlite/gen"
	"github.com/aussiebroadwan/harvest/internal/advisory/store/drivers/sqlite/migrations"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

// listSeparator joins alerts and recommendations into a single column.
const listSeparator = "; "

type Store struct {
	db *sql.DB
	q  *gen.Queries
}

var _ store.Store = (*Store)(nil)

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Every connection to ":memory:" is a fresh database.
	if strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	return &Store{db: db, q: gen.New(db)}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

// ApplyMigrations brings the schema up to date using the embedded migrations.
func (s *Store) ApplyMigrations() error {
	driver, err := migratesqlite.WithInstance(s.db, &migratesqlite.Config{})
	if err != nil {
		return err
	}

	source, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return err
	}

	instance, err := migrate.NewWithInstance("iofs", source, "", driver)
	if err != nil {
		return err
	}

	if err := instance.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (s *Store) InsertLog(ctx context.Context, l store.Log) error {
	return s.q.InsertLog(ctx, gen.InsertLogParams{
		ID:              l.ID,
		Name:            l.Name,
		Location:        l.Location,
		Crop:            l.Crop,
		Temperature:     l.Temperature,
		Humidity:        l.Humidity,
		Alerts:          strings.Join(l.Alerts, listSeparator),
		Recommendations: strings.Join(l.Recommendations, listSeparator),
		CreatedAt:       l.CreatedAt.UTC(),
	})
}

func (s *Store) RecentLogs(ctx context.Context, limit int) ([]store.Log, error) {
	rows, err := s.q.RecentLogs(ctx, int64(limit))
	if err != nil {
		return nil, err
	}

	out := make([]store.Log, 0, len(rows))
	for _, r := range rows {
		out = append(out, store.Log{
			ID:              r.ID,
			Name:            r.Name,
			Location:        r.Location,
			Crop:            r.Crop,
			Temperature:     r.Temperature,
			Humidity:        r.Humidity,
			Alerts:          splitList(r.Alerts),
			Recommendations: splitList(r.Recommendations),
			CreatedAt:       r.CreatedAt,
		})
	}
	return out, nil
}

func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, listSeparator)
}
