package sqlite

import (
	"context"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/internal/market/store/drivers/sqlite/gen"
)

type ratingsRepo struct {
	q *gen.Queries
}

func (r *ratingsRepo) CreateRating(ctx context.Context, rt domain.Rating) error {
	err := r.q.CreateRating(ctx, gen.CreateRatingParams{
		ID:        rt.ID,
		FarmerID:  rt.FarmerID,
		RaterID:   rt.RaterID,
		Rating:    int64(rt.Rating),
		Comment:   mapStringNull(rt.Comment),
		CreatedAt: rt.CreatedAt,
	})
	return mapConstraint(err)
}

func (r *ratingsRepo) GetRating(ctx context.Context, id string) (domain.Rating, error) {
	row, err := r.q.GetRating(ctx, id)
	if err != nil {
		return domain.Rating{}, mapNotFound(err)
	}
	return mapRating(row), nil
}

func (r *ratingsRepo) DeleteRating(ctx context.Context, id string) error {
	return requireRow(r.q.DeleteRating(ctx, id))
}

func (r *ratingsRepo) ListRatings(ctx context.Context, farmerID string, page domain.Page) ([]domain.Rating, error) {
	rows, err := r.q.ListRatings(ctx, gen.ListRatingsParams{
		FarmerID: farmerID,
		Limit:    int64(page.Limit),
		Offset:   int64(page.Offset),
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Rating, len(rows))
	for i, row := range rows {
		out[i] = mapRating(row)
	}
	return out, nil
}

func (r *ratingsRepo) AverageRating(ctx context.Context, farmerID string) (float64, error) {
	return r.q.AverageRating(ctx, farmerID)
}
