package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/internal/market/store"
	"github.com/aussiebroadwan/harvest/pkg/idx"
	"github.com/aussiebroadwan/harvest/pkg/slogx"
)

type PrebookingInput struct {
	ServiceType   string
	CropType      string
	AreaAcres     float64
	Location      string
	PreferredDate time.Time
	Notes         string
}

// PrebookingService handles drone and machinery service requests.
type PrebookingService struct {
	Store store.Store
}

// Create quotes and records a pending pre-booking for the calling farmer.
func (s *PrebookingService) Create(ctx context.Context, p domain.Principal, in PrebookingInput) (domain.Prebooking, error) {
	if _, err := RequireRole(p, domain.RoleFarmer); err != nil {
		return domain.Prebooking{}, err
	}
	if in.AreaAcres <= 0 {
		return domain.Prebooking{}, withMessage(ErrInvalid, "area_acres must be greater than 0")
	}

	fee, total := domain.PrebookingQuote(in.AreaAcres)
	pb := domain.Prebooking{
		ID:            idx.NewString(),
		FarmerID:      p.ID(),
		ServiceType:   strings.TrimSpace(in.ServiceType),
		CropType:      strings.TrimSpace(in.CropType),
		AreaAcres:     in.AreaAcres,
		Location:      strings.TrimSpace(in.Location),
		PreferredDate: in.PreferredDate,
		Notes:         in.Notes,
		BookingFee:    fee,
		TotalAmount:   total,
		Currency:      domain.PrebookingCurrency,
		Status:        domain.PrebookingPending,
	}
	if err := s.Store.Prebookings().CreatePrebooking(ctx, pb); err != nil {
		return domain.Prebooking{}, err
	}

	slogx.FromContext(ctx).Info("prebooking created",
		slog.String("prebooking_id", pb.ID),
		slog.Float64("area_acres", pb.AreaAcres),
		slog.Float64("total_amount", pb.TotalAmount),
	)
	return s.Store.Prebookings().GetPrebooking(ctx, pb.ID)
}

// List returns the farmer's own pre-bookings, or all of them for admins.
func (s *PrebookingService) List(ctx context.Context, p domain.Principal, status domain.PrebookingStatus, page domain.Page) ([]domain.Prebooking, error) {
	f := domain.PrebookingFilter{Status: status, Page: page}
	switch p.Role() {
	case domain.RoleFarmer:
		f.FarmerID = p.ID()
	case domain.RoleAdmin:
	default:
		return nil, withMessage(ErrForbidden, "Access denied. Farmer or Admin role required.")
	}
	return s.Store.Prebookings().ListPrebookings(ctx, f)
}

func (s *PrebookingService) Get(ctx context.Context, p domain.Principal, id string) (domain.Prebooking, error) {
	pb, err := s.Store.Prebookings().GetPrebooking(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Prebooking{}, withMessage(ErrNotFound, "Prebooking not found")
		}
		return domain.Prebooking{}, err
	}
	if !p.Is(domain.RoleAdmin) && pb.FarmerID != p.ID() {
		return domain.Prebooking{}, withMessage(ErrForbidden, "Not authorized to view this prebooking")
	}
	return pb, nil
}

// UpdateStatus is admin-driven; the owning farmer may cancel while pending.
func (s *PrebookingService) UpdateStatus(ctx context.Context, p domain.Principal, id string, next domain.PrebookingStatus) (domain.Prebooking, error) {
	pb, err := s.Get(ctx, p, id)
	if err != nil {
		return domain.Prebooking{}, err
	}
	if !p.Is(domain.RoleAdmin) {
		if !p.Is(domain.RoleFarmer) || next != domain.PrebookingCancelled {
			return domain.Prebooking{}, withMessage(ErrForbidden, "Farmers may only cancel prebookings")
		}
	}
	if !pb.Status.CanTransition(next) {
		return domain.Prebooking{}, withMessage(ErrConflict, "Cannot change prebooking from %s to %s", pb.Status, next)
	}

	if err := s.Store.Prebookings().UpdatePrebookingStatus(ctx, id, next); err != nil {
		return domain.Prebooking{}, err
	}
	slogx.FromContext(ctx).Info("prebooking status changed",
		slog.String("prebooking_id", id),
		slog.String("from", string(pb.Status)),
		slog.String("to", string(next)),
	)
	return s.Store.Prebookings().GetPrebooking(ctx, id)
}
