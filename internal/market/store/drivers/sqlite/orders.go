package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/internal/market/store/drivers/sqlite/gen"
)

type ordersRepo struct {
	q   *gen.Queries
	now func() time.Time
}

func (r *ordersRepo) CreateOrder(ctx context.Context, o domain.Order) error {
	now := r.now()
	err := r.q.CreateOrder(ctx, gen.CreateOrderParams{
		ID:              o.ID,
		FarmerID:        o.FarmerID,
		ProductID:       o.ProductID,
		DealerID:        o.DealerID,
		Quantity:        int64(o.Quantity),
		TotalAmount:     o.TotalAmount,
		Status:          string(o.Status),
		DeliveryAddress: o.DeliveryAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	return mapConstraint(err)
}

func (r *ordersRepo) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	row, err := r.q.GetOrder(ctx, id)
	if err != nil {
		return domain.Order{}, mapNotFound(err)
	}
	return mapOrder(row), nil
}

func (r *ordersRepo) ListOrders(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	rows, err := r.q.ListOrders(ctx, gen.ListOrdersParams{
		FarmerID: f.FarmerID,
		DealerID: f.DealerID,
		Limit:    int64(f.Limit),
		Offset:   int64(f.Offset),
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Order, len(rows))
	for i, row := range rows {
		out[i] = mapOrder(row)
	}
	return out, nil
}

// UpdateOrderStatus writes o.Status and o.DeliveredAt.
func (r *ordersRepo) UpdateOrderStatus(ctx context.Context, o domain.Order) error {
	return requireRow(r.q.UpdateOrderStatus(ctx, gen.UpdateOrderStatusParams{
		Status:      string(o.Status),
		DeliveredAt: mapOptionalTime(o.DeliveredAt),
		UpdatedAt:   r.now(),
		ID:          o.ID,
	}))
}
