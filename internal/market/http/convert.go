package http

import (
	"net/http"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/pkg/httpx"
	"github.com/aussiebroadwan/harvest/pkg/marketsdk"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// pageFrom reads ?page and ?limit.
func pageFrom(r *http.Request) (domain.Page, int, int) {
	page := httpx.QueryInt(r, "page", 1, 0)
	limit := httpx.QueryInt(r, "limit", defaultPageSize, maxPageSize)
	return domain.NewPage(page, limit), page, limit
}

func listOf[T, R any](items []T, conv func(T) R, page, limit int) marketsdk.ListResponse[R] {
	out := marketsdk.ListResponse[R]{Items: make([]R, len(items)), Page: page, Limit: limit}
	for i, it := range items {
		out.Items[i] = conv(it)
	}
	return out
}

func userResponse(u domain.User) marketsdk.UserResponse {
	return marketsdk.UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Phone:      u.Phone,
		Name:       u.Name,
		Country:    u.Country,
		Role:       string(u.Role),
		Status:     string(u.Status),
		IsActive:   u.Active,
		IsVerified: u.Verified,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func farmerFromRequest(req marketsdk.FarmerProfileRequest) domain.FarmerProfile {
	return domain.FarmerProfile{
		FarmSize:        req.FarmSize,
		CropTypes:       req.CropTypes,
		ExperienceYears: req.ExperienceYears,
		Location:        req.Location,
		Bio:             req.Bio,
	}
}

func farmerResponse(p domain.FarmerProfile) marketsdk.FarmerProfileResponse {
	crops := p.CropTypes
	if crops == nil {
		crops = []string{}
	}
	return marketsdk.FarmerProfileResponse{
		UserID:          p.UserID,
		FarmSize:        p.FarmSize,
		CropTypes:       crops,
		ExperienceYears: p.ExperienceYears,
		Location:        p.Location,
		Bio:             p.Bio,
		Rating:          p.Rating,
		TotalOrders:     p.TotalOrders,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func expertFromRequest(req marketsdk.ExpertProfileRequest) domain.ExpertProfile {
	return domain.ExpertProfile{
		Specialization:  req.Specialization,
		Qualification:   req.Qualification,
		ExperienceYears: req.ExperienceYears,
		ConsultationFee: req.ConsultationFee,
		Bio:             req.Bio,
	}
}

func expertResponse(p domain.ExpertProfile) marketsdk.ExpertProfileResponse {
	return marketsdk.ExpertProfileResponse{
		UserID:             p.UserID,
		Specialization:     p.Specialization,
		Qualification:      p.Qualification,
		ExperienceYears:    p.ExperienceYears,
		ConsultationFee:    p.ConsultationFee,
		Bio:                p.Bio,
		Rating:             p.Rating,
		TotalConsultations: p.TotalConsultations,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func dealerFromRequest(req marketsdk.DealerProfileRequest) domain.DealerProfile {
	return domain.DealerProfile{
		CompanyName:     req.CompanyName,
		BusinessType:    req.BusinessType,
		ProductsOffered: req.ProductsOffered,
		Location:        req.Location,
	}
}

func dealerResponse(p domain.DealerProfile) marketsdk.DealerProfileResponse {
	offered := p.ProductsOffered
	if offered == nil {
		offered = []string{}
	}
	return marketsdk.DealerProfileResponse{
		UserID:          p.UserID,
		CompanyName:     p.CompanyName,
		BusinessType:    p.BusinessType,
		ProductsOffered: offered,
		Location:        p.Location,
		Rating:          p.Rating,
		TotalSales:      p.TotalSales,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func productFromRequest(req marketsdk.ProductRequest) domain.Product {
	return domain.Product{
		Name:          req.Name,
		Description:   req.Description,
		Category:      domain.ProductCategory(req.Category),
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		ImageURL:      req.ImageURL,
	}
}

func productResponse(p domain.Product) marketsdk.ProductResponse {
	return marketsdk.ProductResponse{
		ID:            p.ID,
		DealerID:      p.DealerID,
		Name:          p.Name,
		Description:   p.Description,
		Category:      string(p.Category),
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		ImageURL:      p.ImageURL,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func orderResponse(o domain.Order) marketsdk.OrderResponse {
	return marketsdk.OrderResponse{
		ID:              o.ID,
		FarmerID:        o.FarmerID,
		ProductID:       o.ProductID,
		DealerID:        o.DealerID,
		Quantity:        o.Quantity,
		TotalAmount:     o.TotalAmount,
		Status:          string(o.Status),
		DeliveryAddress: o.DeliveryAddress,
		DeliveredAt:     o.DeliveredAt,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func appointmentResponse(a domain.Appointment) marketsdk.AppointmentResponse {
	return marketsdk.AppointmentResponse{
		ID:            a.ID,
		FarmerID:      a.FarmerID,
		ExpertID:      a.ExpertID,
		ServiceType:   a.ServiceType,
		PreferredDate: a.PreferredDate,
		Notes:         a.Notes,
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func prebookingResponse(p domain.Prebooking) marketsdk.PrebookingResponse {
	return marketsdk.PrebookingResponse{
		ID:            p.ID,
		FarmerID:      p.FarmerID,
		ServiceType:   p.ServiceType,
		CropType:      p.CropType,
		AreaAcres:     p.AreaAcres,
		Location:      p.Location,
		PreferredDate: p.PreferredDate,
		Notes:         p.Notes,
		BookingFee:    p.BookingFee,
		TotalAmount:   p.TotalAmount,
		Currency:      p.Currency,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func ratingResponse(r domain.Rating) marketsdk.RatingResponse {
	return marketsdk.RatingResponse{
		ID:        r.ID,
		FarmerID:  r.FarmerID,
		RaterID:   r.RaterID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}
