package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/internal/market/store"
	"github.com/aussiebroadwan/harvest/internal/market/store/drivers/sqlite/gen"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	dsn string
	now func() time.Time
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Every connection to ":memory:" is a fresh database.
	if strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		q:   gen.New(db),
		dsn: dsn,
		now: func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx, s.now), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Users() store.Users               { return &usersRepo{q: s.q, now: s.now} }
func (s *Store) Farmers() store.Farmers           { return &farmersRepo{q: s.q, now: s.now} }
func (s *Store) Experts() store.Experts           { return &expertsRepo{q: s.q, now: s.now} }
func (s *Store) Dealers() store.Dealers           { return &dealersRepo{q: s.q, now: s.now} }
func (s *Store) Products() store.Products         { return &productsRepo{q: s.q, now: s.now} }
func (s *Store) Orders() store.Orders             { return &ordersRepo{q: s.q, now: s.now} }
func (s *Store) Appointments() store.Appointments { return &appointmentsRepo{q: s.q, now: s.now} }
func (s *Store) Prebookings() store.Prebookings   { return &prebookingsRepo{q: s.q, now: s.now} }
func (s *Store) Ratings() store.Ratings           { return &ratingsRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint turns UNIQUE and PRIMARY KEY violations into
// store.ErrAlreadyExists.
func mapConstraint(err error) error {
	var serr *sqlite.Error
	if errors.As(err, &serr) {
		switch serr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return store.ErrAlreadyExists
		}
	}
	return err
}

// requireRow maps an UPDATE/DELETE that touched nothing to store.ErrNotFound.
func requireRow(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

func mapNullTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		val := nt.Time
		return &val
	}
	return nil
}

func mapOptionalTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// joinList and splitList store small string sets as comma separated text.
func joinList(items []string) string {
	return strings.Join(items, ",")
}

func splitList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func mapUser(row gen.User) domain.User {
	return domain.User{
		ID:           row.ID,
		Email:        row.Email,
		Phone:        row.Phone,
		Name:         row.Name,
		Country:      row.Country,
		PasswordHash: row.PasswordHash,
		Role:         domain.Role(row.Role),
		Status:       domain.Status(row.Status),
		Active:       row.Active,
		Verified:     row.Verified,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func mapFarmer(row gen.FarmerProfile) domain.FarmerProfile {
	return domain.FarmerProfile{
		UserID:          row.UserID,
		FarmSize:        row.FarmSize,
		CropTypes:       splitList(row.CropTypes),
		ExperienceYears: int(row.ExperienceYears),
		Location:        row.Location,
		Bio:             row.Bio,
		Rating:          row.Rating,
		TotalOrders:     int(row.TotalOrders),
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

func mapExpert(row gen.ExpertProfile) domain.ExpertProfile {
	return domain.ExpertProfile{
		UserID:             row.UserID,
		Specialization:     row.Specialization,
		Qualification:      row.Qualification,
		ExperienceYears:    int(row.ExperienceYears),
		ConsultationFee:    row.ConsultationFee,
		Bio:                row.Bio,
		Rating:             row.Rating,
		TotalConsultations: int(row.TotalConsultations),
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}

func mapDealer(row gen.DealerProfile) domain.DealerProfile {
	return domain.DealerProfile{
		UserID:          row.UserID,
		CompanyName:     row.CompanyName,
		BusinessType:    row.BusinessType,
		ProductsOffered: splitList(row.ProductsOffered),
		Location:        row.Location,
		Rating:          row.Rating,
		TotalSales:      int(row.TotalSales),
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

func mapProduct(row gen.Product) domain.Product {
	return domain.Product{
		ID:            row.ID,
		DealerID:      row.DealerID,
		Name:          row.Name,
		Description:   row.Description,
		Category:      domain.ProductCategory(row.Category),
		Price:         row.Price,
		StockQuantity: int(row.StockQuantity),
		ImageURL:      mapNullString(row.ImageUrl),
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func mapOrder(row gen.Order) domain.Order {
	return domain.Order{
		ID:              row.ID,
		FarmerID:        row.FarmerID,
		ProductID:       row.ProductID,
		DealerID:        row.DealerID,
		Quantity:        int(row.Quantity),
		TotalAmount:     row.TotalAmount,
		Status:          domain.OrderStatus(row.Status),
		DeliveryAddress: row.DeliveryAddress,
		DeliveredAt:     mapNullTimePtr(row.DeliveredAt),
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

func mapAppointment(row gen.Appointment) domain.Appointment {
	return domain.Appointment{
		ID:            row.ID,
		FarmerID:      row.FarmerID,
		ExpertID:      row.ExpertID,
		ServiceType:   row.ServiceType,
		PreferredDate: row.PreferredDate,
		Notes:         mapNullString(row.Notes),
		Status:        domain.AppointmentStatus(row.Status),
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func mapPrebooking(row gen.Prebooking) domain.Prebooking {
	return domain.Prebooking{
		ID:            row.ID,
		FarmerID:      row.FarmerID,
		ServiceType:   row.ServiceType,
		CropType:      row.CropType,
		AreaAcres:     row.AreaAcres,
		Location:      row.Location,
		PreferredDate: row.PreferredDate,
		Notes:         mapNullString(row.Notes),
		BookingFee:    row.BookingFee,
		TotalAmount:   row.TotalAmount,
		Currency:      row.Currency,
		Status:        domain.PrebookingStatus(row.Status),
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func mapRating(row gen.Rating) domain.Rating {
	return domain.Rating{
		ID:        row.ID,
		FarmerID:  row.FarmerID,
		RaterID:   row.RaterID,
		Rating:    int(row.Rating),
		Comment:   mapNullString(row.Comment),
		CreatedAt: row.CreatedAt,
	}
}
