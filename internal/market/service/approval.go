package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/internal/market/store"
	"github.com/aussiebroadwan/harvest/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var approvalTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "harvest",
	Subsystem: "market",
	Name:      "approval_transitions_total",
	Help:      "Approval state transitions by resulting status.",
}, []string{"status"})

type transitionOptions struct {
	reason string
	actor  domain.ActorRef
}

type TransitionOption func(*transitionOptions)

// WithReason attaches a reason to the transition log line. It is not stored.
func WithReason(reason string) TransitionOption {
	return func(o *transitionOptions) { o.reason = reason }
}

// WithActor records which admin performed the transition.
func WithActor(actor domain.ActorRef) TransitionOption {
	return func(o *transitionOptions) { o.actor = actor }
}

// ApprovalService moves users between pending, approved and rejected. Any
// state can move to approved or rejected; only a no-op move is refused.
type ApprovalService struct {
	Store store.Store
	Now   func() time.Time
}

func (s *ApprovalService) Approve(ctx context.Context, userID string, opts ...TransitionOption) (domain.User, error) {
	return s.transition(ctx, userID, domain.StatusApproved, opts)
}

func (s *ApprovalService) Reject(ctx context.Context, userID string, opts ...TransitionOption) (domain.User, error) {
	return s.transition(ctx, userID, domain.StatusRejected, opts)
}

func (s *ApprovalService) transition(
	ctx context.Context,
	userID string,
	to domain.Status,
	opts []TransitionOption,
) (domain.User, error) {
	l := slogx.FromContext(ctx)

	var o transitionOptions
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Load the user
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, withMessage(ErrNotFound, "User not found")
		}
		return domain.User{}, err
	}

	// 2. Refuse redundant transitions
	if user.Status == to {
		return domain.User{}, withMessage(ErrAlreadyInState, "User already %s", to)
	}

	// 3. Single-row write; concurrent transitions resolve last-write-wins
	at := clock(s.Now)
	if err := s.Store.Users().UpdateStatus(ctx, userID, to, at); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, withMessage(ErrNotFound, "User not found")
		}
		return domain.User{}, err
	}

	approvalTransitions.WithLabelValues(string(to)).Inc()
	l.Info("user status changed",
		slog.String("user_id", userID),
		slog.String("from", string(user.Status)),
		slog.String("to", string(to)),
		slog.String("actor_id", o.actor.ID),
		slog.String("actor_email", o.actor.Email),
		slog.String("reason", o.reason),
	)

	user.Status = to
	user.UpdatedAt = at
	return user, nil
}

func clock(now func() time.Time) time.Time {
	if now == nil {
		return time.Now().UTC()
	}
	return now().UTC()
}
