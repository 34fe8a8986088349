package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/internal/market/store/drivers/sqlite/gen"
)

type appointmentsRepo struct {
	q   *gen.Queries
	now func() time.Time
}

func (r *appointmentsRepo) CreateAppointment(ctx context.Context, a domain.Appointment) error {
	now := r.now()
	err := r.q.CreateAppointment(ctx, gen.CreateAppointmentParams{
		ID:            a.ID,
		FarmerID:      a.FarmerID,
		ExpertID:      a.ExpertID,
		ServiceType:   a.ServiceType,
		PreferredDate: a.PreferredDate.UTC(),
		Notes:         mapStringNull(a.Notes),
		Status:        string(a.Status),
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	return mapConstraint(err)
}

func (r *appointmentsRepo) GetAppointment(ctx context.Context, id string) (domain.Appointment, error) {
	row, err := r.q.GetAppointment(ctx, id)
	if err != nil {
		return domain.Appointment{}, mapNotFound(err)
	}
	return mapAppointment(row), nil
}

func (r *appointmentsRepo) ListAppointments(ctx context.Context, f domain.AppointmentFilter) ([]domain.Appointment, error) {
	rows, err := r.q.ListAppointments(ctx, gen.ListAppointmentsParams{
		FarmerID: f.FarmerID,
		ExpertID: f.ExpertID,
		Limit:    int64(f.Limit),
		Offset:   int64(f.Offset),
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Appointment, len(rows))
	for i, row := range rows {
		out[i] = mapAppointment(row)
	}
	return out, nil
}

func (r *appointmentsRepo) UpdateAppointmentStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	return requireRow(r.q.UpdateAppointmentStatus(ctx, gen.UpdateAppointmentStatusParams{
		Status:    string(status),
		UpdatedAt: r.now(),
		ID:        id,
	}))
}
