package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/internal/market/store"
	"github.com/aussiebroadwan/harvest/pkg/idx"
	"github.com/aussiebroadwan/harvest/pkg/slogx"
)

type ProductService struct {
	Store store.Store
}

func validateProduct(p domain.Product) error {
	switch {
	case !p.Category.IsValid():
		return withMessage(ErrInvalid, "unknown product category %q", p.Category)
	case p.Price <= 0:
		return withMessage(ErrInvalid, "price must be greater than 0")
	case p.StockQuantity < 0:
		return withMessage(ErrInvalid, "stock_quantity must not be negative")
	}
	return nil
}

// Create lists a new product owned by the calling dealer.
func (s *ProductService) Create(ctx context.Context, p domain.Principal, prod domain.Product) (domain.Product, error) {
	if _, err := RequireRole(p, domain.RoleDealer); err != nil {
		return domain.Product{}, err
	}
	if err := validateProduct(prod); err != nil {
		return domain.Product{}, err
	}

	prod.ID = idx.NewString()
	prod.DealerID = p.ID()
	if err := s.Store.Products().CreateProduct(ctx, prod); err != nil {
		return domain.Product{}, err
	}

	slogx.FromContext(ctx).Info("product created",
		slog.String("product_id", prod.ID),
		slog.String("category", string(prod.Category)),
	)
	return s.Get(ctx, prod.ID)
}

func (s *ProductService) Get(ctx context.Context, id string) (domain.Product, error) {
	prod, err := s.Store.Products().GetProduct(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Product{}, withMessage(ErrNotFound, "Product not found")
	}
	return prod, err
}

func (s *ProductService) List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	if f.Category != "" && !f.Category.IsValid() {
		return nil, withMessage(ErrInvalid, "unknown product category %q", f.Category)
	}
	return s.Store.Products().ListProducts(ctx, f)
}

// owned loads a product and checks the caller is its dealer.
func (s *ProductService) owned(ctx context.Context, p domain.Principal, id string) (domain.Product, error) {
	if _, err := RequireRole(p, domain.RoleDealer); err != nil {
		return domain.Product{}, err
	}
	prod, err := s.Get(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	if prod.DealerID != p.ID() {
		return domain.Product{}, withMessage(ErrForbidden, "Not authorized to modify this product")
	}
	return prod, nil
}

func (s *ProductService) Update(ctx context.Context, p domain.Principal, id string, upd domain.Product) (domain.Product, error) {
	prod, err := s.owned(ctx, p, id)
	if err != nil {
		return domain.Product{}, err
	}
	if err := validateProduct(upd); err != nil {
		return domain.Product{}, err
	}

	prod.Name = upd.Name
	prod.Description = upd.Description
	prod.Category = upd.Category
	prod.Price = upd.Price
	prod.StockQuantity = upd.StockQuantity
	prod.ImageURL = upd.ImageURL
	if err := s.Store.Products().UpdateProduct(ctx, prod); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Product{}, withMessage(ErrNotFound, "Product not found")
		}
		return domain.Product{}, err
	}
	return s.Get(ctx, id)
}

func (s *ProductService) Delete(ctx context.Context, p domain.Principal, id string) error {
	if _, err := s.owned(ctx, p, id); err != nil {
		return err
	}
	if err := s.Store.Products().DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return withMessage(ErrNotFound, "Product not found")
		}
		return err
	}
	slogx.FromContext(ctx).Info("product deleted", slog.String("product_id", id))
	return nil
}
