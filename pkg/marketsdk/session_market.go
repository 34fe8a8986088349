package marketsdk

import (
	"context"
	"net/http"
	"net/url"
)

// ============================================================================
// Profiles
// ============================================================================

func (s *Session) CreateFarmerProfile(ctx context.Context, req FarmerProfileRequest) (*FarmerProfileResponse, error) {
	return call[FarmerProfileResponse](ctx, s, http.MethodPost, "/v1/farmers/me", req, http.StatusCreated)
}

func (s *Session) UpdateFarmerProfile(ctx context.Context, req FarmerProfileRequest) (*FarmerProfileResponse, error) {
	return call[FarmerProfileResponse](ctx, s, http.MethodPut, "/v1/farmers/me", req, http.StatusOK)
}

func (s *Session) MyFarmerProfile(ctx context.Context) (*FarmerProfileResponse, error) {
	return call[FarmerProfileResponse](ctx, s, http.MethodGet, "/v1/farmers/me", nil, http.StatusOK)
}

func (s *Session) GetFarmerProfile(ctx context.Context, userID string) (*FarmerProfileResponse, error) {
	return call[FarmerProfileResponse](ctx, s, http.MethodGet, "/v1/farmers/"+url.PathEscape(userID), nil, http.StatusOK)
}

func (s *Session) ListFarmers(ctx context.Context, page, limit int) (*ListResponse[FarmerProfileResponse], error) {
	path := withQuery("/v1/farmers", map[string]string{"page": itoa(page), "limit": itoa(limit)})
	return call[ListResponse[FarmerProfileResponse]](ctx, s, http.MethodGet, path, nil, http.StatusOK)
}

func (s *Session) CreateExpertProfile(ctx context.Context, req ExpertProfileRequest) (*ExpertProfileResponse, error) {
	return call[ExpertProfileResponse](ctx, s, http.MethodPost, "/v1/experts/me", req, http.StatusCreated)
}

func (s *Session) UpdateExpertProfile(ctx context.Context, req ExpertProfileRequest) (*ExpertProfileResponse, error) {
	return call[ExpertProfileResponse](ctx, s, http.MethodPut, "/v1/experts/me", req, http.StatusOK)
}

func (s *Session) MyExpertProfile(ctx context.Context) (*ExpertProfileResponse, error) {
	return call[ExpertProfileResponse](ctx, s, http.MethodGet, "/v1/experts/me", nil, http.StatusOK)
}

func (s *Session) GetExpertProfile(ctx context.Context, userID string) (*ExpertProfileResponse, error) {
	return call[ExpertProfileResponse](ctx, s, http.MethodGet, "/v1/experts/"+url.PathEscape(userID), nil, http.StatusOK)
}

func (s *Session) ListExperts(ctx context.Context, page, limit int) (*ListResponse[ExpertProfileResponse], error) {
	path := withQuery("/v1/experts", map[string]string{"page": itoa(page), "limit": itoa(limit)})
	return call[ListResponse[ExpertProfileResponse]](ctx, s, http.MethodGet, path, nil, http.StatusOK)
}

func (s *Session) CreateDealerProfile(ctx context.Context, req DealerProfileRequest) (*DealerProfileResponse, error) {
	return call[DealerProfileResponse](ctx, s, http.MethodPost, "/v1/dealers/me", req, http.StatusCreated)
}

func (s *Session) UpdateDealerProfile(ctx context.Context, req DealerProfileRequest) (*DealerProfileResponse, error) {
	return call[DealerProfileResponse](ctx, s, http.MethodPut, "/v1/dealers/me", req, http.StatusOK)
}

func (s *Session) MyDealerProfile(ctx context.Context) (*DealerProfileResponse, error) {
	return call[DealerProfileResponse](ctx, s, http.MethodGet, "/v1/dealers/me", nil, http.StatusOK)
}

func (s *Session) GetDealerProfile(ctx context.Context, userID string) (*DealerProfileResponse, error) {
	return call[DealerProfileResponse](ctx, s, http.MethodGet, "/v1/dealers/"+url.PathEscape(userID), nil, http.StatusOK)
}

func (s *Session) ListDealers(ctx context.Context, page, limit int) (*ListResponse[DealerProfileResponse], error) {
	path := withQuery("/v1/dealers", map[string]string{"page": itoa(page), "limit": itoa(limit)})
	return call[ListResponse[DealerProfileResponse]](ctx, s, http.MethodGet, path, nil, http.StatusOK)
}

// ============================================================================
// Products
// ============================================================================

func (s *Session) CreateProduct(ctx context.Context, req ProductRequest) (*ProductResponse, error) {
	return call[ProductResponse](ctx, s, http.MethodPost, "/v1/products", req, http.StatusCreated)
}

func (s *Session) UpdateProduct(ctx context.Context, id string, req ProductRequest) (*ProductResponse, error) {
	return call[ProductResponse](ctx, s, http.MethodPut, "/v1/products/"+url.PathEscape(id), req, http.StatusOK)
}

func (s *Session) DeleteProduct(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/products/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ============================================================================
// Orders
// ============================================================================

func (s *Session) PlaceOrder(ctx context.Context, req OrderRequest) (*OrderResponse, error) {
	return call[OrderResponse](ctx, s, http.MethodPost, "/v1/orders", req, http.StatusCreated)
}

func (s *Session) ListOrders(ctx context.Context, page, limit int) (*ListResponse[OrderResponse], error) {
	path := withQuery("/v1/orders", map[string]string{"page": itoa(page), "limit": itoa(limit)})
	return call[ListResponse[OrderResponse]](ctx, s, http.MethodGet, path, nil, http.StatusOK)
}

func (s *Session) GetOrder(ctx context.Context, id string) (*OrderResponse, error) {
	return call[OrderResponse](ctx, s, http.MethodGet, "/v1/orders/"+url.PathEscape(id), nil, http.StatusOK)
}

func (s *Session) UpdateOrderStatus(ctx context.Context, id, status string) (*OrderResponse, error) {
	path := "/v1/orders/" + url.PathEscape(id) + "/status"
	return call[OrderResponse](ctx, s, http.MethodPut, path, StatusUpdateRequest{Status: status}, http.StatusOK)
}

// ============================================================================
// Appointments
// ============================================================================

func (s *Session) BookAppointment(ctx context.Context, req AppointmentRequest) (*AppointmentResponse, error) {
	return call[AppointmentResponse](ctx, s, http.MethodPost, "/v1/appointments", req, http.StatusCreated)
}

func (s *Session) ListAppointments(ctx context.Context, page, limit int) (*ListResponse[AppointmentResponse], error) {
	path := withQuery("/v1/appointments", map[string]string{"page": itoa(page), "limit": itoa(limit)})
	return call[ListResponse[AppointmentResponse]](ctx, s, http.MethodGet, path, nil, http.StatusOK)
}

func (s *Session) UpdateAppointmentStatus(ctx context.Context, id, status string) (*AppointmentResponse, error) {
	path := "/v1/appointments/" + url.PathEscape(id) + "/status"
	return call[AppointmentResponse](ctx, s, http.MethodPut, path, StatusUpdateRequest{Status: status}, http.StatusOK)
}

// ============================================================================
// Pre-bookings
// ============================================================================

func (s *Session) CreatePrebooking(ctx context.Context, req PrebookingRequest) (*PrebookingResponse, error) {
	return call[PrebookingResponse](ctx, s, http.MethodPost, "/v1/prebookings", req, http.StatusCreated)
}

func (s *Session) ListPrebookings(ctx context.Context, status string, page, limit int) (*ListResponse[PrebookingResponse], error) {
	path := withQuery("/v1/prebookings", map[string]string{"status": status, "page": itoa(page), "limit": itoa(limit)})
	return call[ListResponse[PrebookingResponse]](ctx, s, http.MethodGet, path, nil, http.StatusOK)
}

func (s *Session) GetPrebooking(ctx context.Context, id string) (*PrebookingResponse, error) {
	return call[PrebookingResponse](ctx, s, http.MethodGet, "/v1/prebookings/"+url.PathEscape(id), nil, http.StatusOK)
}

func (s *Session) UpdatePrebookingStatus(ctx context.Context, id, status string) (*PrebookingResponse, error) {
	path := "/v1/prebookings/" + url.PathEscape(id) + "/status"
	return call[PrebookingResponse](ctx, s, http.MethodPut, path, StatusUpdateRequest{Status: status}, http.StatusOK)
}

// ============================================================================
// Ratings
// ============================================================================

func (s *Session) RateFarmer(ctx context.Context, farmerID string, req RatingRequest) (*RatingResponse, error) {
	path := "/v1/farmers/" + url.PathEscape(farmerID) + "/ratings"
	return call[RatingResponse](ctx, s, http.MethodPost, path, req, http.StatusCreated)
}

func (s *Session) ListFarmerRatings(ctx context.Context, farmerID string, page, limit int) (*ListResponse[RatingResponse], error) {
	path := withQuery("/v1/farmers/"+url.PathEscape(farmerID)+"/ratings", map[string]string{"page": itoa(page), "limit": itoa(limit)})
	return call[ListResponse[RatingResponse]](ctx, s, http.MethodGet, path, nil, http.StatusOK)
}

func (s *Session) DeleteRating(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/ratings/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
