package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/internal/market/store"
	"github.com/aussiebroadwan/harvest/pkg/idx"
	"github.com/aussiebroadwan/harvest/pkg/slogx"
)

// RatingService records ratings of farmers by experts, dealers and admins and
// keeps the farmer profile's average in step.
type RatingService struct {
	Store store.Store
	Now   func() time.Time
}

func (s *RatingService) Rate(ctx context.Context, p domain.Principal, farmerID string, score int, comment string) (domain.Rating, error) {
	if p.Is(domain.RoleFarmer) {
		return domain.Rating{}, withMessage(ErrForbidden, "Farmers cannot rate farmers")
	}
	if score < 1 || score > 5 {
		return domain.Rating{}, withMessage(ErrInvalid, "rating must be between 1 and 5")
	}

	r := domain.Rating{
		ID:        idx.NewString(),
		FarmerID:  farmerID,
		RaterID:   p.ID(),
		Rating:    score,
		Comment:   comment,
		CreatedAt: clock(s.Now),
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Farmers().GetFarmer(ctx, farmerID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return withMessage(ErrNotFound, "Farmer profile not found")
			}
			return err
		}
		if err := tx.Ratings().CreateRating(ctx, r); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return withMessage(ErrConflict, "You have already rated this farmer")
			}
			return err
		}
		return recomputeRating(ctx, tx, farmerID)
	})
	if err != nil {
		return domain.Rating{}, err
	}

	slogx.FromContext(ctx).Info("farmer rated",
		slog.String("farmer_id", farmerID),
		slog.Int("rating", score),
	)
	return r, nil
}

func (s *RatingService) List(ctx context.Context, farmerID string, page domain.Page) ([]domain.Rating, error) {
	return s.Store.Ratings().ListRatings(ctx, farmerID, page)
}

// Delete removes a rating. Only its author or an admin may do so.
func (s *RatingService) Delete(ctx context.Context, p domain.Principal, id string) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		r, err := tx.Ratings().GetRating(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return withMessage(ErrNotFound, "Rating not found")
			}
			return err
		}
		if r.RaterID != p.ID() && !p.Is(domain.RoleAdmin) {
			return withMessage(ErrForbidden, "Not authorized to delete this rating")
		}
		if err := tx.Ratings().DeleteRating(ctx, id); err != nil {
			return err
		}
		return recomputeRating(ctx, tx, r.FarmerID)
	})
}

func recomputeRating(ctx context.Context, tx store.Tx, farmerID string) error {
	avg, err := tx.Ratings().AverageRating(ctx, farmerID)
	if err != nil {
		return err
	}
	return ignoreNotFound(tx.Farmers().SetFarmerRating(ctx, farmerID, avg))
}
