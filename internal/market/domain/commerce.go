package domain

import (
	"math"
	"slices"
	"time"
)

type ProductCategory string

const (
	CategoryDrones      ProductCategory = "drones"
	CategoryTractors    ProductCategory = "tractors"
	CategoryRobots      ProductCategory = "robots"
	CategorySeeds       ProductCategory = "seeds"
	CategoryFertilizers ProductCategory = "fertilizers"
	CategoryMachinery   ProductCategory = "machinery"
)

var ProductCategories = []ProductCategory{
	CategoryDrones, CategoryTractors, CategoryRobots,
	CategorySeeds, CategoryFertilizers, CategoryMachinery,
}

func (c ProductCategory) IsValid() bool { return slices.Contains(ProductCategories, c) }

type Product struct {
	ID            string
	DealerID      string
	Name          string
	Description   string
	Category      ProductCategory
	Price         float64
	StockQuantity int
	ImageURL      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ProductFilter struct {
	Category ProductCategory
	DealerID string
	Page
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderShipped, OrderCancelled},
	OrderShipped:   {OrderDelivered},
}

// CanTransition reports whether an order may move from s to next.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	return slices.Contains(orderTransitions[s], next)
}

type Order struct {
	ID              string
	FarmerID        string
	ProductID       string
	DealerID        string // owner of the product at order time
	Quantity        int
	TotalAmount     float64
	Status          OrderStatus
	DeliveryAddress string
	DeliveredAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderFilter scopes listings. Empty fields match everything.
type OrderFilter struct {
	FarmerID string
	DealerID string
	Page
}

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentPending:   {AppointmentConfirmed, AppointmentCancelled},
	AppointmentConfirmed: {AppointmentCompleted, AppointmentCancelled},
}

func (s AppointmentStatus) CanTransition(next AppointmentStatus) bool {
	return slices.Contains(appointmentTransitions[s], next)
}

type Appointment struct {
	ID            string
	FarmerID      string
	ExpertID      string
	ServiceType   string
	PreferredDate time.Time
	Notes         string
	Status        AppointmentStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type AppointmentFilter struct {
	FarmerID string
	ExpertID string
	Page
}

type PrebookingStatus string

const (
	PrebookingPending   PrebookingStatus = "pending"
	PrebookingConfirmed PrebookingStatus = "confirmed"
	PrebookingCompleted PrebookingStatus = "completed"
	PrebookingCancelled PrebookingStatus = "cancelled"
)

var prebookingTransitions = map[PrebookingStatus][]PrebookingStatus{
	PrebookingPending:   {PrebookingConfirmed, PrebookingCancelled},
	PrebookingConfirmed: {PrebookingCompleted},
}

func (s PrebookingStatus) CanTransition(next PrebookingStatus) bool {
	return slices.Contains(prebookingTransitions[s], next)
}

func ParsePrebookingStatus(s string) (PrebookingStatus, bool) {
	st := PrebookingStatus(s)
	switch st {
	case PrebookingPending, PrebookingConfirmed, PrebookingCompleted, PrebookingCancelled:
		return st, true
	}
	return "", false
}

// Pre-booking pricing, in rupees.
const (
	PrebookingCurrency       = "INR"
	PrebookingMinBookingFee  = 200.0
	PrebookingFeePerAcre     = 30.0
	PrebookingServicePerAcre = 80.0
)

// PrebookingQuote returns the booking fee and total for an area in acres.
// fee = max(200, acres*30); total = fee + acres*80.
func PrebookingQuote(acres float64) (fee, total float64) {
	fee = math.Max(PrebookingMinBookingFee, acres*PrebookingFeePerAcre)
	return fee, fee + acres*PrebookingServicePerAcre
}

type Prebooking struct {
	ID            string
	FarmerID      string
	ServiceType   string
	CropType      string
	AreaAcres     float64
	Location      string
	PreferredDate time.Time
	Notes         string
	BookingFee    float64
	TotalAmount   float64
	Currency      string
	Status        PrebookingStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type PrebookingFilter struct {
	FarmerID string
	Status   PrebookingStatus
	Page
}

type Rating struct {
	ID        string
	FarmerID  string
	RaterID   string
	Rating    int // 1..5
	Comment   string
	CreatedAt time.Time
}
