package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/internal/market/store"
)

// ProfileService manages the per-role sub-profiles. Each user has at most
// one profile, of the kind matching their role.
type ProfileService struct {
	Store store.Store
}

func profileErr(err error, kind string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return withMessage(ErrNotFound, "%s profile not found", kind)
	case errors.Is(err, store.ErrAlreadyExists):
		return withMessage(ErrConflict, "%s profile already exists", kind)
	}
	return err
}

// ============================================================================
// Farmers
// ============================================================================

func (s *ProfileService) CreateFarmer(ctx context.Context, p domain.Principal, prof domain.FarmerProfile) (domain.FarmerProfile, error) {
	if _, err := RequireRole(p, domain.RoleFarmer); err != nil {
		return domain.FarmerProfile{}, err
	}
	prof.UserID = p.ID()
	if err := s.Store.Farmers().CreateFarmer(ctx, prof); err != nil {
		return domain.FarmerProfile{}, profileErr(err, "Farmer")
	}
	return s.GetFarmer(ctx, p.ID())
}

func (s *ProfileService) UpdateFarmer(ctx context.Context, p domain.Principal, prof domain.FarmerProfile) (domain.FarmerProfile, error) {
	if _, err := RequireRole(p, domain.RoleFarmer); err != nil {
		return domain.FarmerProfile{}, err
	}
	prof.UserID = p.ID()
	if err := s.Store.Farmers().UpdateFarmer(ctx, prof); err != nil {
		return domain.FarmerProfile{}, profileErr(err, "Farmer")
	}
	return s.GetFarmer(ctx, p.ID())
}

func (s *ProfileService) GetFarmer(ctx context.Context, userID string) (domain.FarmerProfile, error) {
	prof, err := s.Store.Farmers().GetFarmer(ctx, userID)
	return prof, profileErr(err, "Farmer")
}

func (s *ProfileService) ListFarmers(ctx context.Context, page domain.Page) ([]domain.FarmerProfile, error) {
	return s.Store.Farmers().ListFarmers(ctx, page)
}

// ============================================================================
// Experts
// ============================================================================

func (s *ProfileService) CreateExpert(ctx context.Context, p domain.Principal, prof domain.ExpertProfile) (domain.ExpertProfile, error) {
	if _, err := RequireRole(p, domain.RoleExpert); err != nil {
		return domain.ExpertProfile{}, err
	}
	prof.UserID = p.ID()
	if err := s.Store.Experts().CreateExpert(ctx, prof); err != nil {
		return domain.ExpertProfile{}, profileErr(err, "Expert")
	}
	return s.GetExpert(ctx, p.ID())
}

func (s *ProfileService) UpdateExpert(ctx context.Context, p domain.Principal, prof domain.ExpertProfile) (domain.ExpertProfile, error) {
	if _, err := RequireRole(p, domain.RoleExpert); err != nil {
		return domain.ExpertProfile{}, err
	}
	prof.UserID = p.ID()
	if err := s.Store.Experts().UpdateExpert(ctx, prof); err != nil {
		return domain.ExpertProfile{}, profileErr(err, "Expert")
	}
	return s.GetExpert(ctx, p.ID())
}

func (s *ProfileService) GetExpert(ctx context.Context, userID string) (domain.ExpertProfile, error) {
	prof, err := s.Store.Experts().GetExpert(ctx, userID)
	return prof, profileErr(err, "Expert")
}

func (s *ProfileService) ListExperts(ctx context.Context, page domain.Page) ([]domain.ExpertProfile, error) {
	return s.Store.Experts().ListExperts(ctx, page)
}

// ============================================================================
// Dealers
// ============================================================================

func (s *ProfileService) CreateDealer(ctx context.Context, p domain.Principal, prof domain.DealerProfile) (domain.DealerProfile, error) {
	if _, err := RequireRole(p, domain.RoleDealer); err != nil {
		return domain.DealerProfile{}, err
	}
	prof.UserID = p.ID()
	if err := s.Store.Dealers().CreateDealer(ctx, prof); err != nil {
		return domain.DealerProfile{}, profileErr(err, "Dealer")
	}
	return s.GetDealer(ctx, p.ID())
}

func (s *ProfileService) UpdateDealer(ctx context.Context, p domain.Principal, prof domain.DealerProfile) (domain.DealerProfile, error) {
	if _, err := RequireRole(p, domain.RoleDealer); err != nil {
		return domain.DealerProfile{}, err
	}
	prof.UserID = p.ID()
	if err := s.Store.Dealers().UpdateDealer(ctx, prof); err != nil {
		return domain.DealerProfile{}, profileErr(err, "Dealer")
	}
	return s.GetDealer(ctx, p.ID())
}

func (s *ProfileService) GetDealer(ctx context.Context, userID string) (domain.DealerProfile, error) {
	prof, err := s.Store.Dealers().GetDealer(ctx, userID)
	return prof, profileErr(err, "Dealer")
}

func (s *ProfileService) ListDealers(ctx context.Context, page domain.Page) ([]domain.DealerProfile, error) {
	return s.Store.Dealers().ListDealers(ctx, page)
}
