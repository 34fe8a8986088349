package http

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/internal/market/service"
	"github.com/aussiebroadwan/harvest/pkg/httpx"
)

type ProductsHandler struct {
	ProductService *service.ProductService
}

// HandleList browses the public catalogue.
//
//	@Summary		List products
//	@Tags			Products
//	@Produce		json
//	@Param			category	query		string												false	"drones, tractors, robots, seeds, fertilizers or machinery"
//	@Param			dealer_id	query		string												false	"Only this dealer's products"
//	@Param			page		query		int													false	"Page number"	default(1)
//	@Param			limit		query		int													false	"Page size"		default(20)	maximum(100)
//	@Success		200			{object}	marketsdk.ListResponse[marketsdk.ProductResponse]	"One page of products"
//	@Failure		400			{object}	marketsdk.ErrorResponse								"Unknown category"
//	@Router			/v1/products [get].
func (h *ProductsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	pg, page, limit := pageFrom(r)
	q := r.URL.Query()

	items, err := h.ProductService.List(r.Context(), domain.ProductFilter{
		Category: domain.ProductCategory(q.Get("category")),
		DealerID: q.Get("dealer_id"),
		Page:     pg,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, listOf(items, productResponse, page, limit))
}

// HandleGet returns one product.
//
//	@Summary		Get product
//	@Tags			Products
//	@Produce		json
//	@Param			id	path		string						true	"Product ID"
//	@Success		200	{object}	marketsdk.ProductResponse	"Product"
//	@Failure		404	{object}	marketsdk.ErrorResponse		"Product not found"
//	@Router			/v1/products/{id} [get].
func (h *ProductsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Product")
	if !ok {
		return
	}

	prod, err := h.ProductService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, productResponse(prod))
}

// HandleCreate lists a new product for the calling dealer.
//
//	@Summary		Create product
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marketsdk.ProductRequest			true	"Product"
//	@Success		201		{object}	marketsdk.ProductResponse			"Created product"
//	@Failure		400		{object}	marketsdk.ValidationErrorResponse	"Validation failed"
//	@Failure		403		{object}	marketsdk.ErrorResponse				"Dealer role required"
//	@Security		BearerAuth
//	@Router			/v1/products [post].
func (h *ProductsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	decodeAndSave(w, r, http.StatusCreated, h.ProductService.Create, productFromRequest, productResponse)
}

// HandleUpdate replaces a product owned by the caller.
//
//	@Summary		Update product
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Product ID"
//	@Param			request	body		marketsdk.ProductRequest			true	"Product"
//	@Success		200		{object}	marketsdk.ProductResponse			"Updated product"
//	@Failure		400		{object}	marketsdk.ValidationErrorResponse	"Validation failed"
//	@Failure		403		{object}	marketsdk.ErrorResponse				"Not the owning dealer"
//	@Failure		404		{object}	marketsdk.ErrorResponse				"Product not found"
//	@Security		BearerAuth
//	@Router			/v1/products/{id} [put].
func (h *ProductsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Product")
	if !ok {
		return
	}
	decodeAndSave(w, r, http.StatusOK,
		func(ctx context.Context, p domain.Principal, prod domain.Product) (domain.Product, error) {
			return h.ProductService.Update(ctx, p, id, prod)
		},
		productFromRequest, productResponse)
}

// HandleDelete removes a product owned by the caller.
//
//	@Summary		Delete product
//	@Tags			Products
//	@Param			id	path	string	true	"Product ID"
//	@Success		204	"Deleted"
//	@Failure		403	{object}	marketsdk.ErrorResponse	"Not the owning dealer"
//	@Failure		404	{object}	marketsdk.ErrorResponse	"Product not found"
//	@Security		BearerAuth
//	@Router			/v1/products/{id} [delete].
func (h *ProductsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r.Context())
	id, ok := pathID(w, r, "Product")
	if !ok {
		return
	}
	if err := h.ProductService.Delete(r.Context(), p, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
