package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/internal/market/store"
	"github.com/aussiebroadwan/harvest/pkg/idx"
	"github.com/aussiebroadwan/harvest/pkg/slogx"
)

type PlaceOrderInput struct {
	ProductID       string
	Quantity        int
	DeliveryAddress string
}

type OrderService struct {
	Store store.Store
	Now   func() time.Time
}

// Place creates a pending order and reserves stock in one transaction.
func (s *OrderService) Place(ctx context.Context, p domain.Principal, in PlaceOrderInput) (domain.Order, error) {
	l := slogx.FromContext(ctx)

	if _, err := RequireRole(p, domain.RoleFarmer); err != nil {
		return domain.Order{}, err
	}
	if in.Quantity <= 0 {
		return domain.Order{}, withMessage(ErrInvalid, "quantity must be greater than 0")
	}

	var order domain.Order
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. Product must exist
		prod, err := tx.Products().GetProduct(ctx, in.ProductID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return withMessage(ErrNotFound, "Product not found")
			}
			return err
		}

		// 2. Reserve stock; the conditional update refuses to go negative
		if prod.StockQuantity < in.Quantity {
			return withMessage(ErrConflict, "Insufficient stock. Available: %d", prod.StockQuantity)
		}
		if err := tx.Products().AdjustStock(ctx, prod.ID, -in.Quantity); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return withMessage(ErrConflict, "Insufficient stock")
			}
			return err
		}

		// 3. Record the order against the product's current dealer
		order = domain.Order{
			ID:              idx.NewString(),
			FarmerID:        p.ID(),
			ProductID:       prod.ID,
			DealerID:        prod.DealerID,
			Quantity:        in.Quantity,
			TotalAmount:     prod.Price * float64(in.Quantity),
			Status:          domain.OrderPending,
			DeliveryAddress: in.DeliveryAddress,
		}
		if err := tx.Orders().CreateOrder(ctx, order); err != nil {
			return err
		}

		order, err = tx.Orders().GetOrder(ctx, order.ID)
		return err
	})
	if err != nil {
		return domain.Order{}, err
	}

	l.Info("order placed",
		slog.String("order_id", order.ID),
		slog.String("product_id", order.ProductID),
		slog.Int("quantity", order.Quantity),
	)
	return order, nil
}

// List returns the caller's orders: farmers see their purchases, dealers
// their sales and admins everything.
func (s *OrderService) List(ctx context.Context, p domain.Principal, page domain.Page) ([]domain.Order, error) {
	f := domain.OrderFilter{Page: page}
	switch p.Role() {
	case domain.RoleFarmer:
		f.FarmerID = p.ID()
	case domain.RoleDealer:
		f.DealerID = p.ID()
	case domain.RoleAdmin:
	default:
		return nil, withMessage(ErrForbidden, "Access denied. Farmer, Dealer or Admin role required.")
	}
	return s.Store.Orders().ListOrders(ctx, f)
}

func (s *OrderService) Get(ctx context.Context, p domain.Principal, id string) (domain.Order, error) {
	order, err := s.Store.Orders().GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Order{}, withMessage(ErrNotFound, "Order not found")
		}
		return domain.Order{}, err
	}
	if !p.Is(domain.RoleAdmin) && p.ID() != order.FarmerID && p.ID() != order.DealerID {
		return domain.Order{}, withMessage(ErrForbidden, "Not authorized to view this order")
	}
	return order, nil
}

// UpdateStatus advances an order. The dealer drives fulfilment; the farmer
// may only cancel. Cancelling returns the stock, delivery bumps the dealer's
// sales and the farmer's order count.
func (s *OrderService) UpdateStatus(ctx context.Context, p domain.Principal, id string, next domain.OrderStatus) (domain.Order, error) {
	l := slogx.FromContext(ctx)

	var order domain.Order
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error

		// 1. Load
		order, err = tx.Orders().GetOrder(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return withMessage(ErrNotFound, "Order not found")
			}
			return err
		}

		// 2. Authorise
		switch {
		case p.Is(domain.RoleDealer) && p.ID() == order.DealerID:
		case p.Is(domain.RoleFarmer) && p.ID() == order.FarmerID:
			if next != domain.OrderCancelled {
				return withMessage(ErrForbidden, "Farmers may only cancel orders")
			}
		default:
			return withMessage(ErrForbidden, "Not authorized to update this order")
		}

		// 3. Transition
		if !order.Status.CanTransition(next) {
			return withMessage(ErrConflict, "Cannot change order from %s to %s", order.Status, next)
		}
		prev := order.Status
		order.Status = next

		// 4. Side effects
		switch next {
		case domain.OrderCancelled:
			if err := tx.Products().AdjustStock(ctx, order.ProductID, order.Quantity); err != nil {
				if !errors.Is(err, store.ErrNotFound) {
					return err
				}
				l.Warn("cancelled order's product no longer exists", slog.String("product_id", order.ProductID))
			}
		case domain.OrderDelivered:
			at := clock(s.Now)
			order.DeliveredAt = &at
			if err := ignoreNotFound(tx.Dealers().IncrementDealerSales(ctx, order.DealerID)); err != nil {
				return err
			}
			if err := ignoreNotFound(tx.Farmers().IncrementFarmerOrders(ctx, order.FarmerID)); err != nil {
				return err
			}
		}

		if err := tx.Orders().UpdateOrderStatus(ctx, order); err != nil {
			return err
		}

		l.Info("order status changed",
			slog.String("order_id", order.ID),
			slog.String("from", string(prev)),
			slog.String("to", string(next)),
		)
		order, err = tx.Orders().GetOrder(ctx, id)
		return err
	})
	if err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

// ignoreNotFound drops store.ErrNotFound; counters on profiles that were
// never created are skipped.
func ignoreNotFound(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}
