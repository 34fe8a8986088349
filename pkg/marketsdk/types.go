package marketsdk

import "time"

// ============================================================================
// Health
// ============================================================================

type HealthResponse struct {
	Status  string            `json:"status"`
	Uptime  string            `json:"uptime,omitempty"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// ============================================================================
// Accounts
// ============================================================================

// RegisterRequest creates a farmer, expert or dealer account. Admin accounts
// are created through bootstrap only.
type RegisterRequest struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Name     string `json:"name"`
	Country  string `json:"country,omitempty"` // defaults to "India"
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateMeRequest changes the caller's contact details. Empty fields are left
// unchanged.
type UpdateMeRequest struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Country string `json:"country,omitempty"`
}

type UserResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Name       string    `json:"name"`
	Country    string    `json:"country"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	IsActive   bool      `json:"is_active"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TokenResponse is returned by login and refresh.
type TokenResponse struct {
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer"
	TokenType string `json:"token_type"`

	// ExpiresIn is the token lifetime in seconds
	ExpiresIn int `json:"expires_in"`

	User UserResponse `json:"user"`
}

// BootstrapRequest creates the first admin account.
type BootstrapRequest struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Name     string `json:"name"`
	Country  string `json:"country,omitempty"`
	Password string `json:"password"`
}

// ============================================================================
// Admin
// ============================================================================

type RejectRequest struct {
	// Reason is logged with the transition and not stored
	Reason string `json:"reason,omitempty"`
}

type SetActiveRequest struct {
	Active *bool `json:"active"`
}

// StatusChangeResponse reports the outcome of an approval transition.
type StatusChangeResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// UserQuery filters GET /v1/admin/users. Zero values are omitted.
type UserQuery struct {
	Role   string
	Status string
	Page   int
	Limit  int
}

// ============================================================================
// Profiles
// ============================================================================

type FarmerProfileRequest struct {
	FarmSize        float64  `json:"farm_size"`
	CropTypes       []string `json:"crop_types"`
	ExperienceYears int      `json:"experience_years"`
	Location        string   `json:"location"`
	Bio             string   `json:"bio,omitempty"`
}

type FarmerProfileResponse struct {
	UserID          string    `json:"user_id"`
	FarmSize        float64   `json:"farm_size"`
	CropTypes       []string  `json:"crop_types"`
	ExperienceYears int       `json:"experience_years"`
	Location        string    `json:"location"`
	Bio             string    `json:"bio"`
	Rating          float64   `json:"rating"`
	TotalOrders     int       `json:"total_orders"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ExpertProfileRequest struct {
	Specialization  string  `json:"specialization"`
	Qualification   string  `json:"qualification"`
	ExperienceYears int     `json:"experience_years"`
	ConsultationFee float64 `json:"consultation_fee"`
	Bio             string  `json:"bio,omitempty"`
}

type ExpertProfileResponse struct {
	UserID             string    `json:"user_id"`
	Specialization     string    `json:"specialization"`
	Qualification      string    `json:"qualification"`
	ExperienceYears    int       `json:"experience_years"`
	ConsultationFee    float64   `json:"consultation_fee"`
	Bio                string    `json:"bio"`
	Rating             float64   `json:"rating"`
	TotalConsultations int       `json:"total_consultations"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type DealerProfileRequest struct {
	CompanyName     string   `json:"company_name"`
	BusinessType    string   `json:"business_type"`
	ProductsOffered []string `json:"products_offered"`
	Location        string   `json:"location"`
}

type DealerProfileResponse struct {
	UserID          string    `json:"user_id"`
	CompanyName     string    `json:"company_name"`
	BusinessType    string    `json:"business_type"`
	ProductsOffered []string  `json:"products_offered"`
	Location        string    `json:"location"`
	Rating          float64   `json:"rating"`
	TotalSales      int       `json:"total_sales"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ListResponse is one page of a paginated listing.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// ============================================================================
// Products and orders
// ============================================================================

type ProductRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	ImageURL      string  `json:"image_url,omitempty"`
}

type ProductResponse struct {
	ID            string    `json:"id"`
	DealerID      string    `json:"dealer_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stock_quantity"`
	ImageURL      string    `json:"image_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProductQuery filters GET /v1/products. Zero values are omitted.
type ProductQuery struct {
	Category string
	DealerID string
	Page     int
	Limit    int
}

type OrderRequest struct {
	ProductID       string `json:"product_id"`
	Quantity        int    `json:"quantity"`
	DeliveryAddress string `json:"delivery_address"`
}

type OrderResponse struct {
	ID              string     `json:"id"`
	FarmerID        string     `json:"farmer_id"`
	ProductID       string     `json:"product_id"`
	DealerID        string     `json:"dealer_id"`
	Quantity        int        `json:"quantity"`
	TotalAmount     float64    `json:"total_amount"`
	Status          string     `json:"status"`
	DeliveryAddress string     `json:"delivery_address"`
	DeliveredAt     *time.Time `json:"delivered_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// StatusUpdateRequest moves an order, appointment or pre-booking to a new status.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// ============================================================================
// Appointments and pre-bookings
// ============================================================================

type AppointmentRequest struct {
	ExpertID      string    `json:"expert_id"`
	ServiceType   string    `json:"service_type"`
	PreferredDate time.Time `json:"preferred_date"`
	Notes         string    `json:"notes,omitempty"`
}

type AppointmentResponse struct {
	ID            string    `json:"id"`
	FarmerID      string    `json:"farmer_id"`
	ExpertID      string    `json:"expert_id"`
	ServiceType   string    `json:"service_type"`
	PreferredDate time.Time `json:"preferred_date"`
	Notes         string    `json:"notes,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type PrebookingRequest struct {
	ServiceType   string    `json:"service_type"`
	CropType      string    `json:"crop_type"`
	AreaAcres     float64   `json:"area_acres"`
	Location      string    `json:"location"`
	PreferredDate time.Time `json:"preferred_date"`
	Notes         string    `json:"notes,omitempty"`
}

type PrebookingResponse struct {
	ID            string    `json:"id"`
	FarmerID      string    `json:"farmer_id"`
	ServiceType   string    `json:"service_type"`
	CropType      string    `json:"crop_type"`
	AreaAcres     float64   `json:"area_acres"`
	Location      string    `json:"location"`
	PreferredDate time.Time `json:"preferred_date"`
	Notes         string    `json:"notes,omitempty"`
	BookingFee    float64   `json:"booking_fee"`
	TotalAmount   float64   `json:"total_amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ============================================================================
// Ratings
// ============================================================================

type RatingRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

type RatingResponse struct {
	ID        string    `json:"id"`
	FarmerID  string    `json:"farmer_id"`
	RaterID   string    `json:"rater_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
