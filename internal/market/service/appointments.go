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

type BookAppointmentInput struct {
	ExpertID      string
	ServiceType   string
	PreferredDate time.Time
	Notes         string
}

type AppointmentService struct {
	Store store.Store
}

// Book requests a consultation with an approved, active expert.
func (s *AppointmentService) Book(ctx context.Context, p domain.Principal, in BookAppointmentInput) (domain.Appointment, error) {
	if _, err := RequireRole(p, domain.RoleFarmer); err != nil {
		return domain.Appointment{}, err
	}
	if strings.TrimSpace(in.ServiceType) == "" || in.PreferredDate.IsZero() {
		return domain.Appointment{}, withMessage(ErrInvalid, "service_type and preferred_date are required")
	}

	expert, err := s.Store.Users().GetUserByID(ctx, in.ExpertID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return domain.Appointment{}, err
	}
	if err != nil || expert.Role != domain.RoleExpert || !expert.Active || expert.Status != domain.StatusApproved {
		return domain.Appointment{}, withMessage(ErrNotFound, "Expert not found")
	}

	appt := domain.Appointment{
		ID:            idx.NewString(),
		FarmerID:      p.ID(),
		ExpertID:      expert.ID,
		ServiceType:   strings.TrimSpace(in.ServiceType),
		PreferredDate: in.PreferredDate,
		Notes:         in.Notes,
		Status:        domain.AppointmentPending,
	}
	if err := s.Store.Appointments().CreateAppointment(ctx, appt); err != nil {
		return domain.Appointment{}, err
	}

	slogx.FromContext(ctx).Info("appointment booked",
		slog.String("appointment_id", appt.ID),
		slog.String("expert_id", appt.ExpertID),
	)
	return s.Store.Appointments().GetAppointment(ctx, appt.ID)
}

func (s *AppointmentService) List(ctx context.Context, p domain.Principal, page domain.Page) ([]domain.Appointment, error) {
	f := domain.AppointmentFilter{Page: page}
	switch p.Role() {
	case domain.RoleFarmer:
		f.FarmerID = p.ID()
	case domain.RoleExpert:
		f.ExpertID = p.ID()
	case domain.RoleAdmin:
	default:
		return nil, withMessage(ErrForbidden, "Access denied. Farmer, Expert or Admin role required.")
	}
	return s.Store.Appointments().ListAppointments(ctx, f)
}

// UpdateStatus lets the expert confirm, complete or cancel and the farmer
// cancel. Completion counts towards the expert's consultations.
func (s *AppointmentService) UpdateStatus(ctx context.Context, p domain.Principal, id string, next domain.AppointmentStatus) (domain.Appointment, error) {
	var appt domain.Appointment
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		appt, err = tx.Appointments().GetAppointment(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return withMessage(ErrNotFound, "Appointment not found")
			}
			return err
		}

		switch {
		case p.Is(domain.RoleExpert) && p.ID() == appt.ExpertID:
		case p.Is(domain.RoleFarmer) && p.ID() == appt.FarmerID:
			if next != domain.AppointmentCancelled {
				return withMessage(ErrForbidden, "Farmers may only cancel appointments")
			}
		default:
			return withMessage(ErrForbidden, "Not authorized to update this appointment")
		}

		if !appt.Status.CanTransition(next) {
			return withMessage(ErrConflict, "Cannot change appointment from %s to %s", appt.Status, next)
		}
		if err := tx.Appointments().UpdateAppointmentStatus(ctx, id, next); err != nil {
			return err
		}
		if next == domain.AppointmentCompleted {
			if err := ignoreNotFound(tx.Experts().IncrementExpertConsultations(ctx, appt.ExpertID)); err != nil {
				return err
			}
		}

		appt, err = tx.Appointments().GetAppointment(ctx, id)
		return err
	})
	if err != nil {
		return domain.Appointment{}, err
	}

	slogx.FromContext(ctx).Info("appointment status changed",
		slog.String("appointment_id", id),
		slog.String("status", string(next)),
	)
	return appt, nil
}
