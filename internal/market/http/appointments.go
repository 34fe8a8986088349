package http

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/internal/market/service"
	"github.com/aussiebroadwan/harvest/pkg/httpx"
	"github.com/aussiebroadwan/harvest/pkg/marketsdk"
)

type AppointmentsHandler struct {
	AppointmentService *service.AppointmentService
}

// HandleBook requests a consultation with an expert.
//
//	@Summary		Book appointment
//	@Tags			Appointments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marketsdk.AppointmentRequest		true	"Appointment"
//	@Success		201		{object}	marketsdk.AppointmentResponse		"Created appointment"
//	@Failure		400		{object}	marketsdk.ValidationErrorResponse	"Validation failed"
//	@Failure		403		{object}	marketsdk.ErrorResponse				"Farmer role required"
//	@Failure		404		{object}	marketsdk.ErrorResponse				"Expert not found"
//	@Security		BearerAuth
//	@Router			/v1/appointments [post].
func (h *AppointmentsHandler) HandleBook(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r.Context())

	req, ok := decode[marketsdk.AppointmentRequest](w, r)
	if !ok {
		return
	}

	appt, err := h.AppointmentService.Book(r.Context(), p, service.BookAppointmentInput{
		ExpertID:      req.ExpertID,
		ServiceType:   req.ServiceType,
		PreferredDate: req.PreferredDate,
		Notes:         req.Notes,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, appointmentResponse(appt))
}

// HandleList returns the caller's appointments.
//
//	@Summary		List appointments
//	@Tags			Appointments
//	@Produce		json
//	@Param			page	query		int														false	"Page number"	default(1)
//	@Param			limit	query		int														false	"Page size"		default(20)	maximum(100)
//	@Success		200		{object}	marketsdk.ListResponse[marketsdk.AppointmentResponse]	"One page of appointments"
//	@Failure		403		{object}	marketsdk.ErrorResponse									"Dealers have no appointments"
//	@Security		BearerAuth
//	@Router			/v1/appointments [get].
func (h *AppointmentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r.Context())
	pg, page, limit := pageFrom(r)

	items, err := h.AppointmentService.List(r.Context(), p, pg)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, listOf(items, appointmentResponse, page, limit))
}

// HandleUpdateStatus confirms, completes or cancels an appointment.
//
//	@Summary		Update appointment status
//	@Tags			Appointments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Appointment ID"
//	@Param			request	body		marketsdk.StatusUpdateRequest	true	"New status"
//	@Success		200		{object}	marketsdk.AppointmentResponse	"Updated appointment"
//	@Failure		403		{object}	marketsdk.ErrorResponse			"Not allowed to make this change"
//	@Failure		404		{object}	marketsdk.ErrorResponse			"Appointment not found"
//	@Failure		409		{object}	marketsdk.ErrorResponse			"Transition not allowed"
//	@Security		BearerAuth
//	@Router			/v1/appointments/{id}/status [put].
func (h *AppointmentsHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	updateStatus(w, r, "Appointment", func(ctx context.Context, p domain.Principal, id, status string) (marketsdk.AppointmentResponse, error) {
		appt, err := h.AppointmentService.UpdateStatus(ctx, p, id, domain.AppointmentStatus(status))
		return appointmentResponse(appt), err
	})
}
