package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/internal/market/store/drivers/sqlite/gen"
)

type productsRepo struct {
	q   *gen.Queries
	now func() time.Time
}

func (r *productsRepo) CreateProduct(ctx context.Context, p domain.Product) error {
	now := r.now()
	err := r.q.CreateProduct(ctx, gen.CreateProductParams{
		ID:            p.ID,
		DealerID:      p.DealerID,
		Name:          p.Name,
		Description:   p.Description,
		Category:      string(p.Category),
		Price:         p.Price,
		StockQuantity: int64(p.StockQuantity),
		ImageUrl:      mapStringNull(p.ImageURL),
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	return mapConstraint(err)
}

func (r *productsRepo) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	row, err := r.q.GetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, mapNotFound(err)
	}
	return mapProduct(row), nil
}

func (r *productsRepo) UpdateProduct(ctx context.Context, p domain.Product) error {
	return requireRow(r.q.UpdateProduct(ctx, gen.UpdateProductParams{
		Name:          p.Name,
		Description:   p.Description,
		Category:      string(p.Category),
		Price:         p.Price,
		StockQuantity: int64(p.StockQuantity),
		ImageUrl:      mapStringNull(p.ImageURL),
		UpdatedAt:     r.now(),
		ID:            p.ID,
	}))
}

func (r *productsRepo) DeleteProduct(ctx context.Context, id string) error {
	return requireRow(r.q.DeleteProduct(ctx, id))
}

func (r *productsRepo) ListProducts(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	rows, err := r.q.ListProducts(ctx, gen.ListProductsParams{
		Category: string(f.Category),
		DealerID: f.DealerID,
		Limit:    int64(f.Limit),
		Offset:   int64(f.Offset),
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, len(rows))
	for i, row := range rows {
		out[i] = mapProduct(row)
	}
	return out, nil
}

func (r *productsRepo) AdjustStock(ctx context.Context, id string, delta int) error {
	return requireRow(r.q.AdjustProductStock(ctx, gen.AdjustProductStockParams{
		Delta:     int64(delta),
		UpdatedAt: r.now(),
		ID:        id,
	}))
}
