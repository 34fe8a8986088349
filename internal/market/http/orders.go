package http

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/internal/market/service"
	"github.com/aussiebroadwan/harvest/pkg/httpx"
	"github.com/aussiebroadwan/harvest/pkg/marketsdk"
)

type OrdersHandler struct {
	OrderService *service.OrderService
}

// HandlePlace orders a product and reserves its stock.
//
//	@Summary		Place order
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marketsdk.OrderRequest				true	"Order"
//	@Success		201		{object}	marketsdk.OrderResponse				"Created order"
//	@Failure		400		{object}	marketsdk.ValidationErrorResponse	"Validation failed"
//	@Failure		403		{object}	marketsdk.ErrorResponse				"Farmer role required"
//	@Failure		404		{object}	marketsdk.ErrorResponse				"Product not found"
//	@Failure		409		{object}	marketsdk.ErrorResponse				"Insufficient stock"
//	@Security		BearerAuth
//	@Router			/v1/orders [post].
func (h *OrdersHandler) HandlePlace(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r.Context())

	req, ok := decode[marketsdk.OrderRequest](w, r)
	if !ok {
		return
	}

	order, err := h.OrderService.Place(r.Context(), p, service.PlaceOrderInput{
		ProductID:       req.ProductID,
		Quantity:        req.Quantity,
		DeliveryAddress: req.DeliveryAddress,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, orderResponse(order))
}

// HandleList returns the caller's orders.
//
//	@Summary		List orders
//	@Description	Farmers see their purchases, dealers the orders for their products and admins every order.
//	@Tags			Orders
//	@Produce		json
//	@Param			page	query		int												false	"Page number"	default(1)
//	@Param			limit	query		int												false	"Page size"		default(20)	maximum(100)
//	@Success		200		{object}	marketsdk.ListResponse[marketsdk.OrderResponse]	"One page of orders"
//	@Failure		403		{object}	marketsdk.ErrorResponse							"Experts have no orders"
//	@Security		BearerAuth
//	@Router			/v1/orders [get].
func (h *OrdersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r.Context())
	pg, page, limit := pageFrom(r)

	items, err := h.OrderService.List(r.Context(), p, pg)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, listOf(items, orderResponse, page, limit))
}

// HandleGet returns one order to a participant or an admin.
//
//	@Summary		Get order
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path		string					true	"Order ID"
//	@Success		200	{object}	marketsdk.OrderResponse	"Order"
//	@Failure		403	{object}	marketsdk.ErrorResponse	"Not a participant"
//	@Failure		404	{object}	marketsdk.ErrorResponse	"Order not found"
//	@Security		BearerAuth
//	@Router			/v1/orders/{id} [get].
func (h *OrdersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r.Context())
	id, ok := pathID(w, r, "Order")
	if !ok {
		return
	}

	order, err := h.OrderService.Get(r.Context(), p, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, orderResponse(order))
}

// HandleUpdateStatus advances or cancels an order.
//
//	@Summary		Update order status
//	@Description	The owning dealer confirms, ships and delivers. The ordering farmer may cancel. Cancelling returns the stock.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Order ID"
//	@Param			request	body		marketsdk.StatusUpdateRequest		true	"New status"
//	@Success		200		{object}	marketsdk.OrderResponse				"Updated order"
//	@Failure		400		{object}	marketsdk.ValidationErrorResponse	"Unknown status"
//	@Failure		403		{object}	marketsdk.ErrorResponse				"Not allowed to make this change"
//	@Failure		404		{object}	marketsdk.ErrorResponse				"Order not found"
//	@Failure		409		{object}	marketsdk.ErrorResponse				"Transition not allowed"
//	@Security		BearerAuth
//	@Router			/v1/orders/{id}/status [put].
func (h *OrdersHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	updateStatus(w, r, "Order", func(ctx context.Context, p domain.Principal, id, status string) (marketsdk.OrderResponse, error) {
		order, err := h.OrderService.UpdateStatus(ctx, p, id, domain.OrderStatus(status))
		return orderResponse(order), err
	})
}

// updateStatus decodes a StatusUpdateRequest and hands the new status to apply.
func updateStatus[Resp any](w http.ResponseWriter, r *http.Request, resource string,
	apply func(ctx context.Context, p domain.Principal, id, status string) (Resp, error),
) {
	p, _ := principalFrom(r.Context())
	id, ok := pathID(w, r, resource)
	if !ok {
		return
	}
	req, ok := decode[marketsdk.StatusUpdateRequest](w, r)
	if !ok {
		return
	}

	resp, err := apply(r.Context(), p, id, req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
