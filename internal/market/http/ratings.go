package http

import (
	"net/http"

	"github.com/aussiebroadwan/harvest/internal/market/service"
	"github.com/aussiebroadwan/harvest/pkg/httpx"
	"github.com/aussiebroadwan/harvest/pkg/marketsdk"
)

type RatingsHandler struct {
	RatingService *service.RatingService
}

// HandleRate rates a farmer.
//
//	@Summary		Rate farmer
//	@Description	Experts, dealers and admins may rate a farmer once. The farmer's average rating is recomputed.
//	@Tags			Ratings
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Farmer user ID"
//	@Param			request	body		marketsdk.RatingRequest				true	"Rating"
//	@Success		201		{object}	marketsdk.RatingResponse			"Created rating"
//	@Failure		400		{object}	marketsdk.ValidationErrorResponse	"Rating must be 1 to 5"
//	@Failure		403		{object}	marketsdk.ErrorResponse				"Farmers cannot rate farmers"
//	@Failure		404		{object}	marketsdk.ErrorResponse				"Farmer profile not found"
//	@Failure		409		{object}	marketsdk.ErrorResponse				"Already rated"
//	@Security		BearerAuth
//	@Router			/v1/farmers/{id}/ratings [post].
func (h *RatingsHandler) HandleRate(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r.Context())
	farmerID, ok := pathID(w, r, "Farmer profile")
	if !ok {
		return
	}
	req, ok := decode[marketsdk.RatingRequest](w, r)
	if !ok {
		return
	}

	rating, err := h.RatingService.Rate(r.Context(), p, farmerID, req.Rating, req.Comment)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, ratingResponse(rating))
}

// HandleList lists ratings received by a farmer, newest first.
//
//	@Summary		List farmer ratings
//	@Tags			Ratings
//	@Produce		json
//	@Param			id		path		string											true	"Farmer user ID"
//	@Param			page	query		int												false	"Page number"	default(1)
//	@Param			limit	query		int												false	"Page size"		default(20)	maximum(100)
//	@Success		200		{object}	marketsdk.ListResponse[marketsdk.RatingResponse]	"One page of ratings"
//	@Security		BearerAuth
//	@Router			/v1/farmers/{id}/ratings [get].
func (h *RatingsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	farmerID, ok := pathID(w, r, "Farmer profile")
	if !ok {
		return
	}
	pg, page, limit := pageFrom(r)

	items, err := h.RatingService.List(r.Context(), farmerID, pg)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, listOf(items, ratingResponse, page, limit))
}

// HandleDelete removes a rating. Only its author or an admin may do so.
//
//	@Summary		Delete rating
//	@Tags			Ratings
//	@Param			id	path	string	true	"Rating ID"
//	@Success		204	"Deleted"
//	@Failure		403	{object}	marketsdk.ErrorResponse	"Not the rater"
//	@Failure		404	{object}	marketsdk.ErrorResponse	"Rating not found"
//	@Security		BearerAuth
//	@Router			/v1/ratings/{id} [delete].
func (h *RatingsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r.Context())
	id, ok := pathID(w, r, "Rating")
	if !ok {
		return
	}
	if err := h.RatingService.Delete(r.Context(), p, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
