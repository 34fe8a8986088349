package domain

import "time"

// Profiles are keyed by the owning user's id; a user has at most one profile
// of the kind matching their role.

type FarmerProfile struct {
	UserID          string
	FarmSize        float64 // acres
	CropTypes       []string
	ExperienceYears int
	Location        string
	Bio             string
	Rating          float64 // average of received ratings, 0 when none
	TotalOrders     int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ExpertProfile struct {
	UserID             string
	Specialization     string
	Qualification      string
	ExperienceYears    int
	ConsultationFee    float64
	Bio                string
	Rating             float64
	TotalConsultations int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type DealerProfile struct {
	UserID          string
	CompanyName     string
	BusinessType    string
	ProductsOffered []string
	Location        string
	Rating          float64
	TotalSales      int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Page is a limit/offset window.
type Page struct {
	Limit  int
	Offset int
}

// NewPage converts a 1-based page number and size into a Page.
func NewPage(page, limit int) Page {
	if page < 1 {
		page = 1
	}
	return Page{Limit: limit, Offset: (page - 1) * limit}
}
