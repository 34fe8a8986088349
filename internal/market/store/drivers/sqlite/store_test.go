package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/internal/market/store"
	"github.com/aussiebroadwan/harvest/internal/market/store/drivers/sqlite"
	"github.com/aussiebroadwan/harvest/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedUser(t *testing.T, s store.Store, email, phone string, role domain.Role) domain.User {
	t.Helper()

	u := domain.User{
		ID:           idx.NewString(),
		Email:        email,
		Phone:        phone,
		Name:         "Test " + role.Title(),
		Country:      "IN",
		PasswordHash: "argon2id$dummy",
		Role:         role,
		Status:       role.InitialStatus(),
		Active:       true,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	u := seedUser(t, s, "ravi@example.com", "+919800000001", domain.RoleFarmer)

	t.Run("email lookup ignores case", func(t *testing.T) {
		got, err := s.Users().GetUserByEmail(ctx, "RAVI@example.COM")
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
		require.Equal(t, domain.StatusPending, got.Status)
		require.True(t, got.Active)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		dup := u
		dup.ID = idx.NewString()
		dup.Email = "Ravi@Example.com"
		dup.Phone = "+919800000099"
		require.ErrorIs(t, s.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("duplicate phone is rejected", func(t *testing.T) {
		dup := u
		dup.ID = idx.NewString()
		dup.Email = "other@example.com"
		require.ErrorIs(t, s.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := s.Users().GetUserByID(ctx, idx.NewString())
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("status update sets updated_at", func(t *testing.T) {
		at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, s.Users().UpdateStatus(ctx, u.ID, domain.StatusApproved, at))

		got, err := s.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, domain.StatusApproved, got.Status)
		require.True(t, got.UpdatedAt.Equal(at))

		require.ErrorIs(t, s.Users().UpdateStatus(ctx, idx.NewString(), domain.StatusApproved, at), store.ErrNotFound)
	})
}

func TestListUsersAndCounts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	seedUser(t, s, "f1@example.com", "+911", domain.RoleFarmer)
	seedUser(t, s, "f2@example.com", "+912", domain.RoleFarmer)
	seedUser(t, s, "e1@example.com", "+913", domain.RoleExpert)
	seedUser(t, s, "a1@example.com", "+914", domain.RoleAdmin)

	exists, err := s.Users().AdminExists(ctx)
	require.NoError(t, err)
	require.True(t, exists)

	pending, err := s.Users().CountByStatus(ctx, domain.StatusPending)
	require.NoError(t, err)
	require.Equal(t, 3, pending)

	users, total, err := s.Users().ListUsers(ctx, domain.UserFilter{Role: domain.RoleFarmer, Limit: 1})
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Len(t, users, 1)

	users, total, err = s.Users().ListUsers(ctx, domain.UserFilter{Status: domain.StatusPending, Limit: -1})
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Len(t, users, 3)
}

func TestProfiles(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	u := seedUser(t, s, "farm@example.com", "+915", domain.RoleFarmer)

	require.NoError(t, s.Farmers().CreateFarmer(ctx, domain.FarmerProfile{
		UserID:    u.ID,
		FarmSize:  12.5,
		CropTypes: []string{"rice", "wheat"},
		Location:  "Punjab",
	}))
	require.ErrorIs(t, s.Farmers().CreateFarmer(ctx, domain.FarmerProfile{UserID: u.ID}), store.ErrAlreadyExists)

	require.NoError(t, s.Farmers().IncrementFarmerOrders(ctx, u.ID))
	require.NoError(t, s.Farmers().SetFarmerRating(ctx, u.ID, 4.5))

	got, err := s.Farmers().GetFarmer(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"rice", "wheat"}, got.CropTypes)
	require.Equal(t, 1, got.TotalOrders)
	require.InDelta(t, 4.5, got.Rating, 1e-9)

	require.NoError(t, s.Users().SetActive(ctx, u.ID, false))
	list, err := s.Farmers().ListFarmers(ctx, domain.NewPage(1, 10))
	require.NoError(t, err)
	require.Empty(t, list)

	_, err = s.Experts().GetExpert(ctx, u.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestProductStock(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	dealer := seedUser(t, s, "dealer@example.com", "+916", domain.RoleDealer)
	p := domain.Product{
		ID:            idx.NewString(),
		DealerID:      dealer.ID,
		Name:          "Sprayer drone",
		Category:      domain.CategoryDrones,
		Price:         1500,
		StockQuantity: 3,
	}
	require.NoError(t, s.Products().CreateProduct(ctx, p))

	require.NoError(t, s.Products().AdjustStock(ctx, p.ID, -2))
	require.ErrorIs(t, s.Products().AdjustStock(ctx, p.ID, -2), store.ErrNotFound)

	got, err := s.Products().GetProduct(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.StockQuantity)
	require.Empty(t, got.ImageURL)

	list, err := s.Products().ListProducts(ctx, domain.ProductFilter{Category: domain.CategorySeeds, Page: domain.NewPage(1, 10)})
	require.NoError(t, err)
	require.Empty(t, list)

	list, err = s.Products().ListProducts(ctx, domain.ProductFilter{DealerID: dealer.ID, Page: domain.NewPage(1, 10)})
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, s.Products().DeleteProduct(ctx, p.ID))
	require.ErrorIs(t, s.Products().DeleteProduct(ctx, p.ID), store.ErrNotFound)
}

func TestOrderWithTx(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	farmer := seedUser(t, s, "buyer@example.com", "+917", domain.RoleFarmer)
	dealer := seedUser(t, s, "seller@example.com", "+918", domain.RoleDealer)
	p := domain.Product{
		ID:            idx.NewString(),
		DealerID:      dealer.ID,
		Name:          "Paddy seeds",
		Category:      domain.CategorySeeds,
		Price:         50,
		StockQuantity: 10,
	}
	require.NoError(t, s.Products().CreateProduct(ctx, p))

	order := domain.Order{
		ID:              idx.NewString(),
		FarmerID:        farmer.ID,
		ProductID:       p.ID,
		DealerID:        dealer.ID,
		Quantity:        4,
		TotalAmount:     200,
		Status:          domain.OrderPending,
		DeliveryAddress: "Village road 1",
	}

	t.Run("rollback leaves no trace", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			require.NoError(t, tx.Products().AdjustStock(ctx, p.ID, -order.Quantity))
			require.NoError(t, tx.Orders().CreateOrder(ctx, order))
			return store.ErrNotFound
		})
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = s.Orders().GetOrder(ctx, order.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		got, err := s.Products().GetProduct(ctx, p.ID)
		require.NoError(t, err)
		require.Equal(t, 10, got.StockQuantity)
	})

	t.Run("commit", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Products().AdjustStock(ctx, p.ID, -order.Quantity); err != nil {
				return err
			}
			return tx.Orders().CreateOrder(ctx, order)
		})
		require.NoError(t, err)

		got, err := s.Orders().GetOrder(ctx, order.ID)
		require.NoError(t, err)
		require.Equal(t, domain.OrderPending, got.Status)
		require.Nil(t, got.DeliveredAt)
	})

	t.Run("delivered_at round trips", func(t *testing.T) {
		at := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)
		order.Status = domain.OrderDelivered
		order.DeliveredAt = &at
		require.NoError(t, s.Orders().UpdateOrderStatus(ctx, order))

		got, err := s.Orders().GetOrder(ctx, order.ID)
		require.NoError(t, err)
		require.NotNil(t, got.DeliveredAt)
		require.True(t, got.DeliveredAt.Equal(at))

		list, err := s.Orders().ListOrders(ctx, domain.OrderFilter{DealerID: dealer.ID, Page: domain.NewPage(1, 10)})
		require.NoError(t, err)
		require.Len(t, list, 1)
	})
}

func TestRatings(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	farmer := seedUser(t, s, "rated@example.com", "+919", domain.RoleFarmer)
	expert := seedUser(t, s, "rater1@example.com", "+920", domain.RoleExpert)
	dealer := seedUser(t, s, "rater2@example.com", "+921", domain.RoleDealer)

	avg, err := s.Ratings().AverageRating(ctx, farmer.ID)
	require.NoError(t, err)
	require.Zero(t, avg)

	now := time.Now().UTC()
	first := domain.Rating{ID: idx.NewString(), FarmerID: farmer.ID, RaterID: expert.ID, Rating: 5, CreatedAt: now}
	require.NoError(t, s.Ratings().CreateRating(ctx, first))
	require.NoError(t, s.Ratings().CreateRating(ctx, domain.Rating{ID: idx.NewString(), FarmerID: farmer.ID, RaterID: dealer.ID, Rating: 2, CreatedAt: now}))

	again := first
	again.ID = idx.NewString()
	require.ErrorIs(t, s.Ratings().CreateRating(ctx, again), store.ErrAlreadyExists)

	avg, err = s.Ratings().AverageRating(ctx, farmer.ID)
	require.NoError(t, err)
	require.InDelta(t, 3.5, avg, 1e-9)

	require.NoError(t, s.Ratings().DeleteRating(ctx, first.ID))
	list, err := s.Ratings().ListRatings(ctx, farmer.ID, domain.NewPage(1, 10))
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, 2, list[0].Rating)
}
