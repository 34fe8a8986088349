package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/internal/market/store/drivers/sqlite/gen"
)

type prebookingsRepo struct {
	q   *gen.Queries
	now func() time.Time
}

func (r *prebookingsRepo) CreatePrebooking(ctx context.Context, p domain.Prebooking) error {
	now := r.now()
	err := r.q.CreatePrebooking(ctx, gen.CreatePrebookingParams{
		ID:            p.ID,
		FarmerID:      p.FarmerID,
		ServiceType:   p.ServiceType,
		CropType:      p.CropType,
		AreaAcres:     p.AreaAcres,
		Location:      p.Location,
		PreferredDate: p.PreferredDate.UTC(),
		Notes:         mapStringNull(p.Notes),
		BookingFee:    p.BookingFee,
		TotalAmount:   p.TotalAmount,
		Currency:      p.Currency,
		Status:        string(p.Status),
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	return mapConstraint(err)
}

func (r *prebookingsRepo) GetPrebooking(ctx context.Context, id string) (domain.Prebooking, error) {
	row, err := r.q.GetPrebooking(ctx, id)
	if err != nil {
		return domain.Prebooking{}, mapNotFound(err)
	}
	return mapPrebooking(row), nil
}

func (r *prebookingsRepo) ListPrebookings(ctx context.Context, f domain.PrebookingFilter) ([]domain.Prebooking, error) {
	rows, err := r.q.ListPrebookings(ctx, gen.ListPrebookingsParams{
		FarmerID: f.FarmerID,
		Status:   string(f.Status),
		Limit:    int64(f.Limit),
		Offset:   int64(f.Offset),
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Prebooking, len(rows))
	for i, row := range rows {
		out[i] = mapPrebooking(row)
	}
	return out, nil
}

func (r *prebookingsRepo) UpdatePrebookingStatus(ctx context.Context, id string, status domain.PrebookingStatus) error {
	return requireRow(r.q.UpdatePrebookingStatus(ctx, gen.UpdatePrebookingStatusParams{
		Status:    string(status),
		UpdatedAt: r.now(),
		ID:        id,
	}))
}
