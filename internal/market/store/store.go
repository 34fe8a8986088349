package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement it and
// expose one sub-repository per aggregate; a Tx exposes the same repositories
// bound to a single transaction.
type Store interface {
	Users() Users
	Farmers() Farmers
	Experts() Experts
	Dealers() Dealers
	Products() Products
	Orders() Orders
	Appointments() Appointments
	Prebookings() Prebookings
	Ratings() Ratings

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail matches case-insensitively.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user. Duplicate email or phone yields
	// ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateContact sets name, phone and country and bumps updated_at.
	UpdateContact(ctx context.Context, u domain.User) error

	// UpdatePasswordHash sets the password hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID, hash string) error

	// UpdateStatus is the single-row write behind approve/reject. at becomes
	// the new updated_at.
	UpdateStatus(ctx context.Context, userID string, status domain.Status, at time.Time) error

	// SetActive toggles the soft-delete flag.
	SetActive(ctx context.Context, userID string, active bool) error

	// ListUsers returns one page of matching users and the total match count.
	// A negative Limit returns every match.
	ListUsers(ctx context.Context, f domain.UserFilter) ([]domain.User, int, error)

	CountByStatus(ctx context.Context, status domain.Status) (int, error)

	// AdminExists reports whether any admin account has been created.
	AdminExists(ctx context.Context) (bool, error)
}

type Farmers interface {
	CreateFarmer(ctx context.Context, p domain.FarmerProfile) error
	GetFarmer(ctx context.Context, userID string) (domain.FarmerProfile, error)
	UpdateFarmer(ctx context.Context, p domain.FarmerProfile) error
	// ListFarmers returns profiles of active users only.
	ListFarmers(ctx context.Context, page domain.Page) ([]domain.FarmerProfile, error)
	SetFarmerRating(ctx context.Context, userID string, rating float64) error
	IncrementFarmerOrders(ctx context.Context, userID string) error
}

type Experts interface {
	CreateExpert(ctx context.Context, p domain.ExpertProfile) error
	GetExpert(ctx context.Context, userID string) (domain.ExpertProfile, error)
	UpdateExpert(ctx context.Context, p domain.ExpertProfile) error
	ListExperts(ctx context.Context, page domain.Page) ([]domain.ExpertProfile, error)
	IncrementExpertConsultations(ctx context.Context, userID string) error
}

type Dealers interface {
	CreateDealer(ctx context.Context, p domain.DealerProfile) error
	GetDealer(ctx context.Context, userID string) (domain.DealerProfile, error)
	UpdateDealer(ctx context.Context, p domain.DealerProfile) error
	ListDealers(ctx context.Context, page domain.Page) ([]domain.DealerProfile, error)
	IncrementDealerSales(ctx context.Context, userID string) error
}

type Products interface {
	CreateProduct(ctx context.Context, p domain.Product) error
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	UpdateProduct(ctx context.Context, p domain.Product) error
	DeleteProduct(ctx context.Context, id string) error
	ListProducts(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error)

	// AdjustStock adds delta to the stock quantity. It returns ErrNotFound
	// when the product is missing or the result would be negative.
	AdjustStock(ctx context.Context, id string, delta int) error
}

type Orders interface {
	CreateOrder(ctx context.Context, o domain.Order) error
	GetOrder(ctx context.Context, id string) (domain.Order, error)
	ListOrders(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, o domain.Order) error
}

type Appointments interface {
	CreateAppointment(ctx context.Context, a domain.Appointment) error
	GetAppointment(ctx context.Context, id string) (domain.Appointment, error)
	ListAppointments(ctx context.Context, f domain.AppointmentFilter) ([]domain.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
}

type Prebookings interface {
	CreatePrebooking(ctx context.Context, p domain.Prebooking) error
	GetPrebooking(ctx context.Context, id string) (domain.Prebooking, error)
	ListPrebookings(ctx context.Context, f domain.PrebookingFilter) ([]domain.Prebooking, error)
	UpdatePrebookingStatus(ctx context.Context, id string, status domain.PrebookingStatus) error
}

type Ratings interface {
	// CreateRating yields ErrAlreadyExists when the rater already rated the farmer.
	CreateRating(ctx context.Context, r domain.Rating) error
	GetRating(ctx context.Context, id string) (domain.Rating, error)
	DeleteRating(ctx context.Context, id string) error
	ListRatings(ctx context.Context, farmerID string, page domain.Page) ([]domain.Rating, error)
	// AverageRating returns 0 when the farmer has no ratings.
	AverageRating(ctx context.Context, farmerID string) (float64, error)
}
