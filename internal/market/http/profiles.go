package http

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/internal/market/service"
	"github.com/aussiebroadwan/harvest/pkg/httpx"
)

// ProfilesHandler serves farmer, expert and dealer sub-profiles. The /me
// routes sit behind RequireRole for the matching kind.
type ProfilesHandler struct {
	ProfileService *service.ProfileService
}

func decodeAndSave[Req validator, P, Resp any](
	w http.ResponseWriter, r *http.Request, status int,
	save func(context.Context, domain.Principal, P) (P, error), from func(Req) P, to func(P) Resp,
) {
	p, _ := principalFrom(r.Context())

	req, ok := decode[Req](w, r)
	if !ok {
		return
	}
	prof, err := save(r.Context(), p, from(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, status, to(prof))
}

func getProfile[P, Resp any](w http.ResponseWriter, r *http.Request, userID string, get func(context.Context, string) (P, error), to func(P) Resp) {
	prof, err := get(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, to(prof))
}

func listProfiles[P, Resp any](w http.ResponseWriter, r *http.Request, list func(context.Context, domain.Page) ([]P, error), to func(P) Resp) {
	pg, page, limit := pageFrom(r)
	items, err := list(r.Context(), pg)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, listOf(items, to, page, limit))
}

func me(r *http.Request) string {
	p, _ := principalFrom(r.Context())
	return p.ID()
}

// ============================================================================
// Farmers
// ============================================================================

// HandleCreateFarmer creates the caller's farmer profile.
//
//	@Summary		Create own farmer profile
//	@Tags			Farmers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marketsdk.FarmerProfileRequest		true	"Profile"
//	@Success		201		{object}	marketsdk.FarmerProfileResponse		"Created profile"
//	@Failure		400		{object}	marketsdk.ValidationErrorResponse	"Validation failed"
//	@Failure		403		{object}	marketsdk.ErrorResponse				"Farmer role required"
//	@Failure		409		{object}	marketsdk.ErrorResponse				"Profile already exists"
//	@Security		BearerAuth
//	@Router			/v1/farmers/me [post].
func (h *ProfilesHandler) HandleCreateFarmer(w http.ResponseWriter, r *http.Request) {
	decodeAndSave(w, r, http.StatusCreated, h.ProfileService.CreateFarmer, farmerFromRequest, farmerResponse)
}

// HandleUpdateFarmer replaces the caller's farmer profile.
//
//	@Summary		Update own farmer profile
//	@Tags			Farmers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marketsdk.FarmerProfileRequest		true	"Profile"
//	@Success		200		{object}	marketsdk.FarmerProfileResponse		"Updated profile"
//	@Failure		400		{object}	marketsdk.ValidationErrorResponse	"Validation failed"
//	@Failure		404		{object}	marketsdk.ErrorResponse				"Profile not found"
//	@Security		BearerAuth
//	@Router			/v1/farmers/me [put].
func (h *ProfilesHandler) HandleUpdateFarmer(w http.ResponseWriter, r *http.Request) {
	decodeAndSave(w, r, http.StatusOK, h.ProfileService.UpdateFarmer, farmerFromRequest, farmerResponse)
}

// HandleGetMyFarmer returns the caller's farmer profile.
//
//	@Summary		Get own farmer profile
//	@Tags			Farmers
//	@Produce		json
//	@Success		200	{object}	marketsdk.FarmerProfileResponse	"Profile"
//	@Failure		404	{object}	marketsdk.ErrorResponse			"Profile not found"
//	@Security		BearerAuth
//	@Router			/v1/farmers/me [get].
func (h *ProfilesHandler) HandleGetMyFarmer(w http.ResponseWriter, r *http.Request) {
	getProfile(w, r, me(r), h.ProfileService.GetFarmer, farmerResponse)
}

// HandleGetFarmer returns a farmer profile by user id.
//
//	@Summary		Get farmer profile
//	@Tags			Farmers
//	@Produce		json
//	@Param			id	path		string							true	"User ID"
//	@Success		200	{object}	marketsdk.FarmerProfileResponse	"Profile"
//	@Failure		404	{object}	marketsdk.ErrorResponse			"Profile not found"
//	@Security		BearerAuth
//	@Router			/v1/farmers/{id} [get].
func (h *ProfilesHandler) HandleGetFarmer(w http.ResponseWriter, r *http.Request) {
	if id, ok := pathID(w, r, "Farmer profile"); ok {
		getProfile(w, r, id, h.ProfileService.GetFarmer, farmerResponse)
	}
}

// HandleListFarmers lists farmer profiles of active users.
//
//	@Summary		List farmers
//	@Tags			Farmers
//	@Produce		json
//	@Param			page	query		int													false	"Page number"	default(1)
//	@Param			limit	query		int													false	"Page size"		default(20)	maximum(100)
//	@Success		200		{object}	marketsdk.ListResponse[marketsdk.FarmerProfileResponse]	"One page of profiles"
//	@Security		BearerAuth
//	@Router			/v1/farmers [get].
func (h *ProfilesHandler) HandleListFarmers(w http.ResponseWriter, r *http.Request) {
	listProfiles(w, r, h.ProfileService.ListFarmers, farmerResponse)
}

// ============================================================================
// Experts
// ============================================================================

// HandleCreateExpert creates the caller's expert profile.
//
//	@Summary		Create own expert profile
//	@Tags			Experts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marketsdk.ExpertProfileRequest		true	"Profile"
//	@Success		201		{object}	marketsdk.ExpertProfileResponse		"Created profile"
//	@Failure		400		{object}	marketsdk.ValidationErrorResponse	"Validation failed"
//	@Failure		403		{object}	marketsdk.ErrorResponse				"Expert role required"
//	@Failure		409		{object}	marketsdk.ErrorResponse				"Profile already exists"
//	@Security		BearerAuth
//	@Router			/v1/experts/me [post].
func (h *ProfilesHandler) HandleCreateExpert(w http.ResponseWriter, r *http.Request) {
	decodeAndSave(w, r, http.StatusCreated, h.ProfileService.CreateExpert, expertFromRequest, expertResponse)
}

// HandleUpdateExpert replaces the caller's expert profile.
//
//	@Summary		Update own expert profile
//	@Tags			Experts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marketsdk.ExpertProfileRequest		true	"Profile"
//	@Success		200		{object}	marketsdk.ExpertProfileResponse		"Updated profile"
//	@Failure		404		{object}	marketsdk.ErrorResponse				"Profile not found"
//	@Security		BearerAuth
//	@Router			/v1/experts/me [put].
func (h *ProfilesHandler) HandleUpdateExpert(w http.ResponseWriter, r *http.Request) {
	decodeAndSave(w, r, http.StatusOK, h.ProfileService.UpdateExpert, expertFromRequest, expertResponse)
}

// HandleGetMyExpert returns the caller's expert profile.
//
//	@Summary		Get own expert profile
//	@Tags			Experts
//	@Produce		json
//	@Success		200	{object}	marketsdk.ExpertProfileResponse	"Profile"
//	@Failure		404	{object}	marketsdk.ErrorResponse			"Profile not found"
//	@Security		BearerAuth
//	@Router			/v1/experts/me [get].
func (h *ProfilesHandler) HandleGetMyExpert(w http.ResponseWriter, r *http.Request) {
	getProfile(w, r, me(r), h.ProfileService.GetExpert, expertResponse)
}

// HandleGetExpert returns an expert profile by user id.
//
//	@Summary		Get expert profile
//	@Tags			Experts
//	@Produce		json
//	@Param			id	path		string							true	"User ID"
//	@Success		200	{object}	marketsdk.ExpertProfileResponse	"Profile"
//	@Failure		404	{object}	marketsdk.ErrorResponse			"Profile not found"
//	@Security		BearerAuth
//	@Router			/v1/experts/{id} [get].
func (h *ProfilesHandler) HandleGetExpert(w http.ResponseWriter, r *http.Request) {
	if id, ok := pathID(w, r, "Expert profile"); ok {
		getProfile(w, r, id, h.ProfileService.GetExpert, expertResponse)
	}
}

// HandleListExperts lists expert profiles of active users.
//
//	@Summary		List experts
//	@Tags			Experts
//	@Produce		json
//	@Param			page	query		int													false	"Page number"	default(1)
//	@Param			limit	query		int													false	"Page size"		default(20)	maximum(100)
//	@Success		200		{object}	marketsdk.ListResponse[marketsdk.ExpertProfileResponse]	"One page of profiles"
//	@Security		BearerAuth
//	@Router			/v1/experts [get].
func (h *ProfilesHandler) HandleListExperts(w http.ResponseWriter, r *http.Request) {
	listProfiles(w, r, h.ProfileService.ListExperts, expertResponse)
}

// ============================================================================
// Dealers
// ============================================================================

// HandleCreateDealer creates the caller's dealer profile.
//
//	@Summary		Create own dealer profile
//	@Tags			Dealers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marketsdk.DealerProfileRequest		true	"Profile"
//	@Success		201		{object}	marketsdk.DealerProfileResponse		"Created profile"
//	@Failure		400		{object}	marketsdk.ValidationErrorResponse	"Validation failed"
//	@Failure		403		{object}	marketsdk.ErrorResponse				"Dealer role required"
//	@Failure		409		{object}	marketsdk.ErrorResponse				"Profile already exists"
//	@Security		BearerAuth
//	@Router			/v1/dealers/me [post].
func (h *ProfilesHandler) HandleCreateDealer(w http.ResponseWriter, r *http.Request) {
	decodeAndSave(w, r, http.StatusCreated, h.ProfileService.CreateDealer, dealerFromRequest, dealerResponse)
}

// HandleUpdateDealer replaces the caller's dealer profile.
//
//	@Summary		Update own dealer profile
//	@Tags			Dealers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marketsdk.DealerProfileRequest		true	"Profile"
//	@Success		200		{object}	marketsdk.DealerProfileResponse		"Updated profile"
//	@Failure		404		{object}	marketsdk.ErrorResponse				"Profile not found"
//	@Security		BearerAuth
//	@Router			/v1/dealers/me [put].
func (h *ProfilesHandler) HandleUpdateDealer(w http.ResponseWriter, r *http.Request) {
	decodeAndSave(w, r, http.StatusOK, h.ProfileService.UpdateDealer, dealerFromRequest, dealerResponse)
}

// HandleGetMyDealer returns the caller's dealer profile.
//
//	@Summary		Get own dealer profile
//	@Tags			Dealers
//	@Produce		json
//	@Success		200	{object}	marketsdk.DealerProfileResponse	"Profile"
//	@Failure		404	{object}	marketsdk.ErrorResponse			"Profile not found"
//	@Security		BearerAuth
//	@Router			/v1/dealers/me [get].
func (h *ProfilesHandler) HandleGetMyDealer(w http.ResponseWriter, r *http.Request) {
	getProfile(w, r, me(r), h.ProfileService.GetDealer, dealerResponse)
}

// HandleGetDealer returns a dealer profile by user id.
//
//	@Summary		Get dealer profile
//	@Tags			Dealers
//	@Produce		json
//	@Param			id	path		string							true	"User ID"
//	@Success		200	{object}	marketsdk.DealerProfileResponse	"Profile"
//	@Failure		404	{object}	marketsdk.ErrorResponse			"Profile not found"
//	@Security		BearerAuth
//	@Router			/v1/dealers/{id} [get].
func (h *ProfilesHandler) HandleGetDealer(w http.ResponseWriter, r *http.Request) {
	if id, ok := pathID(w, r, "Dealer profile"); ok {
		getProfile(w, r, id, h.ProfileService.GetDealer, dealerResponse)
	}
}

// HandleListDealers lists dealer profiles of active users.
//
//	@Summary		List dealers
//	@Tags			Dealers
//	@Produce		json
//	@Param			page	query		int													false	"Page number"	default(1)
//	@Param			limit	query		int													false	"Page size"		default(20)	maximum(100)
//	@Success		200		{object}	marketsdk.ListResponse[marketsdk.DealerProfileResponse]	"One page of profiles"
//	@Security		BearerAuth
//	@Router			/v1/dealers [get].
func (h *ProfilesHandler) HandleListDealers(w http.ResponseWriter, r *http.Request) {
	listProfiles(w, r, h.ProfileService.ListDealers, dealerResponse)
}
