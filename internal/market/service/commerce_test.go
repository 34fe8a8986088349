package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/stretchr/testify/require"
)

var firstPage = domain.NewPage(1, 50)

func newProduct(t *testing.T, env *testEnv, dealer domain.Principal, stock int) domain.Product {
	t.Helper()

	svc := &ProductService{Store: env.store}
	prod, err := svc.Create(context.Background(), dealer, domain.Product{
		Name:          "Spraying drone",
		Category:      domain.CategoryDrones,
		Price:         1500,
		StockQuantity: stock,
	})
	require.NoError(t, err)
	return prod
}

func TestProducts(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := &ProductService{Store: env.store}
	dealer := env.approved(t, domain.RoleDealer)
	rival := env.approved(t, domain.RoleDealer)
	farmer := env.approved(t, domain.RoleFarmer)

	_, err := svc.Create(ctx, farmer, domain.Product{Name: "x", Category: domain.CategorySeeds, Price: 1})
	require.ErrorIs(t, err, ErrForbidden)
	require.Equal(t, "Access denied. Dealer role required.", err.Error())

	_, err = svc.Create(ctx, dealer, domain.Product{Name: "x", Category: "spaceships", Price: 1})
	require.ErrorIs(t, err, ErrInvalid)

	prod := newProduct(t, env, dealer, 4)
	require.Equal(t, dealer.ID(), prod.DealerID)

	upd := prod
	upd.Price = 1200
	_, err = svc.Update(ctx, rival, prod.ID, upd)
	require.ErrorIs(t, err, ErrForbidden)

	got, err := svc.Update(ctx, dealer, prod.ID, upd)
	require.NoError(t, err)
	require.InDelta(t, 1200, got.Price, 1e-9)

	drones, err := svc.List(ctx, domain.ProductFilter{Category: domain.CategoryDrones, Page: firstPage})
	require.NoError(t, err)
	require.Len(t, drones, 1)

	seeds, err := svc.List(ctx, domain.ProductFilter{Category: domain.CategorySeeds, Page: firstPage})
	require.NoError(t, err)
	require.Empty(t, seeds)

	require.NoError(t, svc.Delete(ctx, dealer, prod.ID))
	_, err = svc.Get(ctx, prod.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestOrderLifecycle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	orders := &OrderService{Store: env.store, Now: func() time.Time { return env.now }}
	profiles := &ProfileService{Store: env.store}
	dealer := env.approved(t, domain.RoleDealer)
	farmer := env.approved(t, domain.RoleFarmer)

	_, err := profiles.CreateDealer(ctx, dealer, domain.DealerProfile{CompanyName: "AgriTech"})
	require.NoError(t, err)
	_, err = profiles.CreateFarmer(ctx, farmer, domain.FarmerProfile{FarmSize: 12, CropTypes: []string{"wheat"}})
	require.NoError(t, err)

	prod := newProduct(t, env, dealer, 5)

	_, err = orders.Place(ctx, farmer, PlaceOrderInput{ProductID: prod.ID, Quantity: 6})
	require.ErrorIs(t, err, ErrConflict)
	require.Equal(t, "Insufficient stock. Available: 5", err.Error())

	order, err := orders.Place(ctx, farmer, PlaceOrderInput{ProductID: prod.ID, Quantity: 2, DeliveryAddress: "Village road 4"})
	require.NoError(t, err)
	require.Equal(t, domain.OrderPending, order.Status)
	require.Equal(t, dealer.ID(), order.DealerID)
	require.InDelta(t, 3000, order.TotalAmount, 1e-9)
	requireStock(t, env, prod.ID, 3)

	// Farmers may only cancel.
	_, err = orders.UpdateStatus(ctx, farmer, order.ID, domain.OrderConfirmed)
	require.ErrorIs(t, err, ErrForbidden)

	// Skipping steps is refused.
	_, err = orders.UpdateStatus(ctx, dealer, order.ID, domain.OrderDelivered)
	require.ErrorIs(t, err, ErrConflict)

	for _, next := range []domain.OrderStatus{domain.OrderConfirmed, domain.OrderShipped, domain.OrderDelivered} {
		order, err = orders.UpdateStatus(ctx, dealer, order.ID, next)
		require.NoError(t, err)
		require.Equal(t, next, order.Status)
	}
	require.NotNil(t, order.DeliveredAt)
	require.True(t, order.DeliveredAt.Equal(env.now))

	d, err := profiles.GetDealer(ctx, dealer.ID())
	require.NoError(t, err)
	require.Equal(t, 1, d.TotalSales)
	f, err := profiles.GetFarmer(ctx, farmer.ID())
	require.NoError(t, err)
	require.Equal(t, 1, f.TotalOrders)

	// Delivered orders are final.
	_, err = orders.UpdateStatus(ctx, farmer, order.ID, domain.OrderCancelled)
	require.ErrorIs(t, err, ErrConflict)
	requireStock(t, env, prod.ID, 3)
}

func TestOrderCancelRestoresStock(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	orders := &OrderService{Store: env.store}
	dealer := env.approved(t, domain.RoleDealer)
	farmer := env.approved(t, domain.RoleFarmer)
	prod := newProduct(t, env, dealer, 3)

	order, err := orders.Place(ctx, farmer, PlaceOrderInput{ProductID: prod.ID, Quantity: 3})
	require.NoError(t, err)
	requireStock(t, env, prod.ID, 0)

	got, err := orders.UpdateStatus(ctx, farmer, order.ID, domain.OrderCancelled)
	require.NoError(t, err)
	require.Equal(t, domain.OrderCancelled, got.Status)
	requireStock(t, env, prod.ID, 3)
}

func TestOrderVisibility(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	orders := &OrderService{Store: env.store}
	dealer := env.approved(t, domain.RoleDealer)
	farmer := env.approved(t, domain.RoleFarmer)
	stranger := env.approved(t, domain.RoleFarmer)
	expert := env.approved(t, domain.RoleExpert)
	admin := env.approved(t, domain.RoleAdmin)
	prod := newProduct(t, env, dealer, 10)

	order, err := orders.Place(ctx, farmer, PlaceOrderInput{ProductID: prod.ID, Quantity: 1})
	require.NoError(t, err)

	for _, p := range []domain.Principal{farmer, dealer, admin} {
		_, err := orders.Get(ctx, p, order.ID)
		require.NoError(t, err)

		list, err := orders.List(ctx, p, firstPage)
		require.NoError(t, err)
		require.Len(t, list, 1)
	}

	_, err = orders.Get(ctx, stranger, order.ID)
	require.ErrorIs(t, err, ErrForbidden)

	list, err := orders.List(ctx, stranger, firstPage)
	require.NoError(t, err)
	require.Empty(t, list)

	_, err = orders.List(ctx, expert, firstPage)
	require.ErrorIs(t, err, ErrForbidden)

	_, err = orders.Place(ctx, farmer, PlaceOrderInput{ProductID: "missing", Quantity: 1})
	require.ErrorIs(t, err, ErrNotFound)
}

func requireStock(t *testing.T, env *testEnv, productID string, want int) {
	t.Helper()
	prod, err := env.store.Products().GetProduct(context.Background(), productID)
	require.NoError(t, err)
	require.Equal(t, want, prod.StockQuantity)
}

func TestAppointments(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := &AppointmentService{Store: env.store}
	profiles := &ProfileService{Store: env.store}
	farmer := env.approved(t, domain.RoleFarmer)
	expert := env.approved(t, domain.RoleExpert)
	pendingExpert := env.register(t, domain.RoleExpert)

	_, err := profiles.CreateExpert(ctx, expert, domain.ExpertProfile{Specialization: "Soil health"})
	require.NoError(t, err)

	in := BookAppointmentInput{
		ExpertID:      pendingExpert.ID,
		ServiceType:   "soil consultation",
		PreferredDate: env.now.Add(72 * time.Hour),
	}
	_, err = svc.Book(ctx, farmer, in)
	require.ErrorIs(t, err, ErrNotFound)

	in.ExpertID = farmer.ID()
	_, err = svc.Book(ctx, farmer, in)
	require.ErrorIs(t, err, ErrNotFound)

	in.ExpertID = expert.ID()
	appt, err := svc.Book(ctx, farmer, in)
	require.NoError(t, err)
	require.Equal(t, domain.AppointmentPending, appt.Status)

	list, err := svc.List(ctx, expert, firstPage)
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = svc.UpdateStatus(ctx, farmer, appt.ID, domain.AppointmentConfirmed)
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.UpdateStatus(ctx, expert, appt.ID, domain.AppointmentConfirmed)
	require.NoError(t, err)
	appt, err = svc.UpdateStatus(ctx, expert, appt.ID, domain.AppointmentCompleted)
	require.NoError(t, err)
	require.Equal(t, domain.AppointmentCompleted, appt.Status)

	prof, err := profiles.GetExpert(ctx, expert.ID())
	require.NoError(t, err)
	require.Equal(t, 1, prof.TotalConsultations)
}

func TestPrebookings(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := &PrebookingService{Store: env.store}
	farmer := env.approved(t, domain.RoleFarmer)
	other := env.approved(t, domain.RoleFarmer)
	admin := env.approved(t, domain.RoleAdmin)
	dealer := env.approved(t, domain.RoleDealer)

	in := PrebookingInput{
		ServiceType:   "drone spraying",
		CropType:      "rice",
		AreaAcres:     10,
		Location:      "Nashik",
		PreferredDate: env.now.Add(7 * 24 * time.Hour),
	}

	_, err := svc.Create(ctx, dealer, in)
	require.ErrorIs(t, err, ErrForbidden)

	pb, err := svc.Create(ctx, farmer, in)
	require.NoError(t, err)
	require.InDelta(t, 300, pb.BookingFee, 1e-9)
	require.InDelta(t, 1100, pb.TotalAmount, 1e-9)
	require.Equal(t, "INR", pb.Currency)
	require.Equal(t, domain.PrebookingPending, pb.Status)

	_, err = svc.Get(ctx, other, pb.ID)
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.UpdateStatus(ctx, farmer, pb.ID, domain.PrebookingConfirmed)
	require.ErrorIs(t, err, ErrForbidden)

	pb, err = svc.UpdateStatus(ctx, admin, pb.ID, domain.PrebookingConfirmed)
	require.NoError(t, err)
	require.Equal(t, domain.PrebookingConfirmed, pb.Status)

	// Confirmed bookings can no longer be cancelled.
	_, err = svc.UpdateStatus(ctx, farmer, pb.ID, domain.PrebookingCancelled)
	require.ErrorIs(t, err, ErrConflict)

	confirmed, err := svc.List(ctx, admin, domain.PrebookingConfirmed, firstPage)
	require.NoError(t, err)
	require.Len(t, confirmed, 1)

	pending, err := svc.List(ctx, farmer, domain.PrebookingPending, firstPage)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestRatings(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := &RatingService{Store: env.store, Now: func() time.Time { return env.now }}
	profiles := &ProfileService{Store: env.store}
	farmer := env.approved(t, domain.RoleFarmer)
	neighbour := env.approved(t, domain.RoleFarmer)
	expert := env.approved(t, domain.RoleExpert)
	dealer := env.approved(t, domain.RoleDealer)
	admin := env.approved(t, domain.RoleAdmin)

	_, err := svc.Rate(ctx, expert, farmer.ID(), 4, "")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = profiles.CreateFarmer(ctx, farmer, domain.FarmerProfile{FarmSize: 3})
	require.NoError(t, err)

	_, err = svc.Rate(ctx, neighbour, farmer.ID(), 5, "")
	require.ErrorIs(t, err, ErrForbidden)
	_, err = svc.Rate(ctx, expert, farmer.ID(), 6, "")
	require.ErrorIs(t, err, ErrInvalid)

	r1, err := svc.Rate(ctx, expert, farmer.ID(), 4, "reliable")
	require.NoError(t, err)
	_, err = svc.Rate(ctx, dealer, farmer.ID(), 3, "")
	require.NoError(t, err)

	_, err = svc.Rate(ctx, expert, farmer.ID(), 5, "again")
	require.ErrorIs(t, err, ErrConflict)

	prof, err := profiles.GetFarmer(ctx, farmer.ID())
	require.NoError(t, err)
	require.InDelta(t, 3.5, prof.Rating, 1e-9)

	list, err := svc.List(ctx, farmer.ID(), firstPage)
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.ErrorIs(t, svc.Delete(ctx, dealer, r1.ID), ErrForbidden)
	require.NoError(t, svc.Delete(ctx, admin, r1.ID))

	prof, err = profiles.GetFarmer(ctx, farmer.ID())
	require.NoError(t, err)
	require.InDelta(t, 3.0, prof.Rating, 1e-9)
}

func TestProfiles(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := &ProfileService{Store: env.store}
	farmer := env.approved(t, domain.RoleFarmer)
	dealer := env.approved(t, domain.RoleDealer)

	_, err := svc.CreateFarmer(ctx, dealer, domain.FarmerProfile{})
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.UpdateFarmer(ctx, farmer, domain.FarmerProfile{FarmSize: 2})
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, "Farmer profile not found", err.Error())

	created, err := svc.CreateFarmer(ctx, farmer, domain.FarmerProfile{
		FarmSize:  8.5,
		CropTypes: []string{"cotton", "soybean"},
		Location:  "Akola",
	})
	require.NoError(t, err)
	require.Equal(t, farmer.ID(), created.UserID)
	require.Equal(t, []string{"cotton", "soybean"}, created.CropTypes)

	_, err = svc.CreateFarmer(ctx, farmer, domain.FarmerProfile{})
	require.ErrorIs(t, err, ErrConflict)

	updated, err := svc.UpdateFarmer(ctx, farmer, domain.FarmerProfile{FarmSize: 10, Location: "Akola"})
	require.NoError(t, err)
	require.InDelta(t, 10, updated.FarmSize, 1e-9)

	farmers, err := svc.ListFarmers(ctx, firstPage)
	require.NoError(t, err)
	require.Len(t, farmers, 1)

	dp, err := svc.CreateDealer(ctx, dealer, domain.DealerProfile{
		CompanyName:     "Green Tools",
		ProductsOffered: []string{"drones"},
	})
	require.NoError(t, err)
	require.Equal(t, "Green Tools", dp.CompanyName)
}
