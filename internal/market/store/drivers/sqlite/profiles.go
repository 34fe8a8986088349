package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/internal/market/store/drivers/sqlite/gen"
)

type farmersRepo struct {
	q   *gen.Queries
	now func() time.Time
}

func (r *farmersRepo) CreateFarmer(ctx context.Context, p domain.FarmerProfile) error {
	now := r.now()
	err := r.q.CreateFarmerProfile(ctx, gen.CreateFarmerProfileParams{
		UserID:          p.UserID,
		FarmSize:        p.FarmSize,
		CropTypes:       joinList(p.CropTypes),
		ExperienceYears: int64(p.ExperienceYears),
		Location:        p.Location,
		Bio:             p.Bio,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	return mapConstraint(err)
}

func (r *farmersRepo) GetFarmer(ctx context.Context, userID string) (domain.FarmerProfile, error) {
	row, err := r.q.GetFarmerProfile(ctx, userID)
	if err != nil {
		return domain.FarmerProfile{}, mapNotFound(err)
	}
	return mapFarmer(row), nil
}

func (r *farmersRepo) UpdateFarmer(ctx context.Context, p domain.FarmerProfile) error {
	return requireRow(r.q.UpdateFarmerProfile(ctx, gen.UpdateFarmerProfileParams{
		FarmSize:        p.FarmSize,
		CropTypes:       joinList(p.CropTypes),
		ExperienceYears: int64(p.ExperienceYears),
		Location:        p.Location,
		Bio:             p.Bio,
		UpdatedAt:       r.now(),
		UserID:          p.UserID,
	}))
}

func (r *farmersRepo) ListFarmers(ctx context.Context, page domain.Page) ([]domain.FarmerProfile, error) {
	rows, err := r.q.ListFarmerProfiles(ctx, gen.ListFarmerProfilesParams{
		Limit:  int64(page.Limit),
		Offset: int64(page.Offset),
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.FarmerProfile, len(rows))
	for i, row := range rows {
		out[i] = mapFarmer(row)
	}
	return out, nil
}

func (r *farmersRepo) SetFarmerRating(ctx context.Context, userID string, rating float64) error {
	return requireRow(r.q.SetFarmerRating(ctx, gen.SetFarmerRatingParams{
		Rating:    rating,
		UpdatedAt: r.now(),
		UserID:    userID,
	}))
}

func (r *farmersRepo) IncrementFarmerOrders(ctx context.Context, userID string) error {
	return requireRow(r.q.IncrementFarmerOrders(ctx, gen.IncrementFarmerOrdersParams{
		UpdatedAt: r.now(),
		UserID:    userID,
	}))
}

type expertsRepo struct {
	q   *gen.Queries
	now func() time.Time
}

func (r *expertsRepo) CreateExpert(ctx context.Context, p domain.ExpertProfile) error {
	now := r.now()
	err := r.q.CreateExpertProfile(ctx, gen.CreateExpertProfileParams{
		UserID:          p.UserID,
		Specialization:  p.Specialization,
		Qualification:   p.Qualification,
		ExperienceYears: int64(p.ExperienceYears),
		ConsultationFee: p.ConsultationFee,
		Bio:             p.Bio,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	return mapConstraint(err)
}

func (r *expertsRepo) GetExpert(ctx context.Context, userID string) (domain.ExpertProfile, error) {
	row, err := r.q.GetExpertProfile(ctx, userID)
	if err != nil {
		return domain.ExpertProfile{}, mapNotFound(err)
	}
	return mapExpert(row), nil
}

func (r *expertsRepo) UpdateExpert(ctx context.Context, p domain.ExpertProfile) error {
	return requireRow(r.q.UpdateExpertProfile(ctx, gen.UpdateExpertProfileParams{
		Specialization:  p.Specialization,
		Qualification:   p.Qualification,
		ExperienceYears: int64(p.ExperienceYears),
		ConsultationFee: p.ConsultationFee,
		Bio:             p.Bio,
		UpdatedAt:       r.now(),
		UserID:          p.UserID,
	}))
}

func (r *expertsRepo) ListExperts(ctx context.Context, page domain.Page) ([]domain.ExpertProfile, error) {
	rows, err := r.q.ListExpertProfiles(ctx, gen.ListExpertProfilesParams{
		Limit:  int64(page.Limit),
		Offset: int64(page.Offset),
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.ExpertProfile, len(rows))
	for i, row := range rows {
		out[i] = mapExpert(row)
	}
	return out, nil
}

func (r *expertsRepo) IncrementExpertConsultations(ctx context.Context, userID string) error {
	return requireRow(r.q.IncrementExpertConsultations(ctx, gen.IncrementExpertConsultationsParams{
		UpdatedAt: r.now(),
		UserID:    userID,
	}))
}

type dealersRepo struct {
	q   *gen.Queries
	now func() time.Time
}

func (r *dealersRepo) CreateDealer(ctx context.Context, p domain.DealerProfile) error {
	now := r.now()
	err := r.q.CreateDealerProfile(ctx, gen.CreateDealerProfileParams{
		UserID:          p.UserID,
		CompanyName:     p.CompanyName,
		BusinessType:    p.BusinessType,
		ProductsOffered: joinList(p.ProductsOffered),
		Location:        p.Location,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	return mapConstraint(err)
}

func (r *dealersRepo) GetDealer(ctx context.Context, userID string) (domain.DealerProfile, error) {
	row, err := r.q.GetDealerProfile(ctx, userID)
	if err != nil {
		return domain.DealerProfile{}, mapNotFound(err)
	}
	return mapDealer(row), nil
}

func (r *dealersRepo) UpdateDealer(ctx context.Context, p domain.DealerProfile) error {
	return requireRow(r.q.UpdateDealerProfile(ctx, gen.UpdateDealerProfileParams{
		CompanyName:     p.CompanyName,
		BusinessType:    p.BusinessType,
		ProductsOffered: joinList(p.ProductsOffered),
		Location:        p.Location,
		UpdatedAt:       r.now(),
		UserID:          p.UserID,
	}))
}

func (r *dealersRepo) ListDealers(ctx context.Context, page domain.Page) ([]domain.DealerProfile, error) {
	rows, err := r.q.ListDealerProfiles(ctx, gen.ListDealerProfilesParams{
		Limit:  int64(page.Limit),
		Offset: int64(page.Offset),
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.DealerProfile, len(rows))
	for i, row := range rows {
		out[i] = mapDealer(row)
	}
	return out, nil
}

func (r *dealersRepo) IncrementDealerSales(ctx context.Context, userID string) error {
	return requireRow(r.q.IncrementDealerSales(ctx, gen.IncrementDealerSalesParams{
		UpdatedAt: r.now(),
		UserID:    userID,
	}))
}
