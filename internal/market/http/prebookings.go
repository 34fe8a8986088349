package http

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/internal/market/service"
	"github.com/aussiebroadwan/harvest/pkg/httpx"
	"github.com/aussiebroadwan/harvest/pkg/marketsdk"
)

type PrebookingsHandler struct {
	PrebookingService *service.PrebookingService
}

// HandleCreate quotes and records a drone or machinery service request.
//
//	@Summary		Create pre-booking
//	@Description	booking_fee = max(200, acres × 30); total_amount = booking_fee + acres × 80, in INR.
//	@Tags			Prebookings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marketsdk.PrebookingRequest			true	"Pre-booking"
//	@Success		201		{object}	marketsdk.PrebookingResponse		"Created pre-booking"
//	@Failure		400		{object}	marketsdk.ValidationErrorResponse	"Validation failed"
//	@Failure		403		{object}	marketsdk.ErrorResponse				"Farmer role required"
//	@Security		BearerAuth
//	@Router			/v1/prebookings [post].
func (h *PrebookingsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r.Context())

	req, ok := decode[marketsdk.PrebookingRequest](w, r)
	if !ok {
		return
	}

	pb, err := h.PrebookingService.Create(r.Context(), p, service.PrebookingInput{
		ServiceType:   req.ServiceType,
		CropType:      req.CropType,
		AreaAcres:     req.AreaAcres,
		Location:      req.Location,
		PreferredDate: req.PreferredDate,
		Notes:         req.Notes,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, prebookingResponse(pb))
}

// HandleList returns the caller's pre-bookings, or all of them for admins.
//
//	@Summary		List pre-bookings
//	@Tags			Prebookings
//	@Produce		json
//	@Param			status	query		string													false	"pending, confirmed, completed or cancelled"
//	@Param			page	query		int														false	"Page number"	default(1)
//	@Param			limit	query		int														false	"Page size"		default(20)	maximum(100)
//	@Success		200		{object}	marketsdk.ListResponse[marketsdk.PrebookingResponse]	"One page of pre-bookings"
//	@Failure		400		{object}	marketsdk.ErrorResponse									"Unknown status"
//	@Security		BearerAuth
//	@Router			/v1/prebookings [get].
func (h *PrebookingsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r.Context())
	pg, page, limit := pageFrom(r)

	var status domain.PrebookingStatus
	if v := r.URL.Query().Get("status"); v != "" {
		var ok bool
		if status, ok = domain.ParsePrebookingStatus(v); !ok {
			writeErrorCode(w, http.StatusBadRequest, marketsdk.ErrorCodeInvalidRequest, "unknown status "+v)
			return
		}
	}

	items, err := h.PrebookingService.List(r.Context(), p, status, pg)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, listOf(items, prebookingResponse, page, limit))
}

// HandleGet returns one pre-booking to its farmer or an admin.
//
//	@Summary		Get pre-booking
//	@Tags			Prebookings
//	@Produce		json
//	@Param			id	path		string							true	"Pre-booking ID"
//	@Success		200	{object}	marketsdk.PrebookingResponse	"Pre-booking"
//	@Failure		403	{object}	marketsdk.ErrorResponse			"Not the owner"
//	@Failure		404	{object}	marketsdk.ErrorResponse			"Pre-booking not found"
//	@Security		BearerAuth
//	@Router			/v1/prebookings/{id} [get].
func (h *PrebookingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r.Context())
	id, ok := pathID(w, r, "Prebooking")
	if !ok {
		return
	}

	pb, err := h.PrebookingService.Get(r.Context(), p, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, prebookingResponse(pb))
}

// HandleUpdateStatus is admin-driven; farmers may cancel their pending requests.
//
//	@Summary		Update pre-booking status
//	@Tags			Prebookings
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Pre-booking ID"
//	@Param			request	body		marketsdk.StatusUpdateRequest	true	"New status"
//	@Success		200		{object}	marketsdk.PrebookingResponse	"Updated pre-booking"
//	@Failure		403		{object}	marketsdk.ErrorResponse			"Not allowed to make this change"
//	@Failure		404		{object}	marketsdk.ErrorResponse			"Pre-booking not found"
//	@Failure		409		{object}	marketsdk.ErrorResponse			"Transition not allowed"
//	@Security		BearerAuth
//	@Router			/v1/prebookings/{id}/status [put].
func (h *PrebookingsHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	updateStatus(w, r, "Prebooking", func(ctx context.Context, p domain.Principal, id, status string) (marketsdk.PrebookingResponse, error) {
		pb, err := h.PrebookingService.UpdateStatus(ctx, p, id, domain.PrebookingStatus(status))
		return prebookingResponse(pb), err
	})
}
